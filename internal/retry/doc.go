// Package retry provides retry logic with exponential backoff for
// transient database failures during catalog export.
//
// The Executor combines an ErrorClassifier (decides whether an error is
// worth retrying) with a BackoffStrategy (decides how long to wait
// between attempts). Fatal errors return immediately.
package retry
