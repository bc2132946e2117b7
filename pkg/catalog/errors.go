package catalog

import (
	"errors"
	"os"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	cat, err := quakeml.NewReader(logger).ReadFile(path)
//	if errors.Is(err, catalog.ErrParse) {
//	    // Handle a malformed catalog document
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrParse indicates the catalog document could not be ingested.
	// Ingestion is all-or-nothing: no partial catalog accompanies this error.
	ErrParse = errors.New("catalog parse failed")

	// ErrCatalogNotFound indicates the catalog document was not found.
	ErrCatalogNotFound = errors.New("catalog file not found")

	// ErrInvalidValue indicates a setter was given a value of the wrong shape.
	ErrInvalidValue = errors.New("invalid value")

	// ErrConnectionFailed indicates the database connection failed.
	ErrConnectionFailed = errors.New("connection failed")

	// ErrExportFailed indicates the catalog export did not complete.
	ErrExportFailed = errors.New("export failed")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrConnectionFailed):
		return ExitConnectionError
	case errors.Is(err, ErrParse):
		return ExitParseError
	case errors.Is(err, ErrExportFailed):
		return ExitExportFailed
	case errors.Is(err, ErrCatalogNotFound), errors.Is(err, os.ErrNotExist):
		return ExitCatalogMissing
	}

	errStr := err.Error()

	// Check for CLI usage error patterns
	if strings.Contains(errStr, "unknown flag") ||
		strings.Contains(errStr, "unknown shorthand flag") ||
		strings.Contains(errStr, "unknown command") ||
		strings.Contains(errStr, "invalid argument") ||
		strings.Contains(errStr, "required flag") ||
		strings.Contains(errStr, "accepts") && strings.Contains(errStr, "arg(s)") {
		return ExitUsageError
	}

	// Check for common connection error patterns
	if strings.Contains(errStr, "failed to connect") ||
		strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "no such host") {
		return ExitConnectionError
	}

	return ExitGeneralError
}
