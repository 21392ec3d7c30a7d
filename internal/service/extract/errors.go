package extract

import (
	"fmt"

	"github.com/octobees/lead-parser/internal/entity"
)

// Reasons reported by ParseError.
const (
	ReasonUnsupported = "unsupported source"
	ReasonMissing     = "required field not found"
	ReasonMalformed   = "malformed document"
	ReasonInvalid     = "value withheld or invalid"
)

// FieldSource is reported when the input cannot be attributed to a supported platform.
const FieldSource = "source"

// ParseError signals that an email does not match the expected template. Field names the
// first required field that could not be located, or "source" for unrecognised input.
type ParseError struct {
	Source entity.Source
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("parse error: %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("parse %s: %s: %s", e.Source, e.Field, e.Reason)
}

func unsupportedSource() *ParseError {
	return &ParseError{Field: FieldSource, Reason: ReasonUnsupported}
}

func missingField(source entity.Source, field string) *ParseError {
	return &ParseError{Source: source, Field: field, Reason: ReasonMissing}
}
