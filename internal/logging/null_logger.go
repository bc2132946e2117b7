package logging

// NullLogger discards every message. The reader falls back to it when a
// caller passes a nil logger, so catalog ingestion stays silent without
// nil checks at each call site. Safe for concurrent use.
type NullLogger struct{}

// NewNullLogger creates a discarding logger.
func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

func (l *NullLogger) Verbose(format string, args ...interface{}) {}

func (l *NullLogger) Info(format string, args ...interface{}) {}

func (l *NullLogger) Error(format string, args ...interface{}) {}
