// Package rendering turns portfolio records into HTML card fragments.
package rendering

import (
	"fmt"

	"github.com/yaswanthreddy/portfolio/internal/types"
)

// MissingFieldError reports a record that lacks a required field.
// Field uses the content-file name of the field, e.g. "role" or "period.start".
type MissingFieldError struct {
	Kind  types.Kind
	Field string
	// Index is the position of the offending record in the rendered sequence.
	Index int
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field: %s record #%d has no %q", e.Kind, e.Index, e.Field)
}

// TemplateError represents an error parsing or executing a card template
type TemplateError struct {
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("template error: %s", e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// RenderError represents a general rendering failure
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
