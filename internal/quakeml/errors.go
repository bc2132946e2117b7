package quakeml

import (
	"encoding/xml"
	"fmt"

	"github.com/vvka-141/marsquake/pkg/catalog"
)

// StructuralError reports a catalog document that cannot be ingested:
// malformed XML, or a mandatory element/attribute missing where a
// builder requires it. It aborts the whole ingestion call; no partial
// catalog is returned alongside it.
type StructuralError struct {
	Source  string // document path or source identifier
	Element string // offending element context, e.g. `origin "smi:...O1"`
	Line    int    // line number (0 if unknown)
	Message string // primary error message
	Hint    string // actionable suggestion for fixing
}

// Error implements the error interface with rich formatting.
func (e *StructuralError) Error() string {
	location := e.Source
	if location == "" {
		location = "catalog document"
	}
	if e.Line > 0 {
		location = fmt.Sprintf("%s (line %d)", location, e.Line)
	}

	msg := fmt.Sprintf("structural error in %s: %s", location, e.Message)
	if e.Element != "" {
		msg = fmt.Sprintf("structural error in %s [element: %s]: %s", location, e.Element, e.Message)
	}

	if e.Hint != "" {
		msg += "\n\nHint: " + e.Hint
	}
	return msg
}

// Unwrap classifies every structural error under catalog.ErrParse so
// callers can test with errors.Is.
func (e *StructuralError) Unwrap() error { return catalog.ErrParse }

// wrapXMLError converts xml package errors to StructuralError with line
// numbers when available.
func wrapXMLError(err error, source string) error {
	if syntaxErr, ok := err.(*xml.SyntaxError); ok {
		return &StructuralError{
			Source:  source,
			Line:    syntaxErr.Line,
			Message: syntaxErr.Msg,
			Hint:    "The catalog document is not well-formed XML. Check that all tags are closed and attributes quoted.",
		}
	}
	return &StructuralError{
		Source:  source,
		Message: err.Error(),
		Hint:    "The catalog document could not be decoded as XML.",
	}
}

// missingError builds the StructuralError for a mandatory element or
// attribute a builder found absent.
func missingError(source, element, what string) error {
	return &StructuralError{
		Source:  source,
		Element: element,
		Message: fmt.Sprintf("required %s is missing", what),
		Hint:    "Mandatory catalog fields (publicID, time values, the event description block) must be present for ingestion to proceed.",
	}
}
