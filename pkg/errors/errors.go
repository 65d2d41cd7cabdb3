package errors

import (
	"fmt"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError reports a rejected config value or composer argument.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// CompositionError is returned when a message cannot be assembled, for
// example because a phrase list for the requested category is empty.
type CompositionError struct {
	Stage string
	Err   error
}

// NewCompositionError constructs a CompositionError for the given stage.
func NewCompositionError(stage string, err error) error {
	return &CompositionError{Stage: stage, Err: err}
}

func (e *CompositionError) Error() string {
	if e == nil {
		return ""
	}
	if e.Stage != "" {
		return fmt.Sprintf("composition error in %s: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("composition error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *CompositionError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ClipboardError indicates a failed copy through one clipboard backend.
type ClipboardError struct {
	Backend string
	Message string
	Err     error
}

// NewClipboardError constructs a ClipboardError for the given backend.
func NewClipboardError(backend string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ClipboardError{Backend: backend, Message: message, Err: err}
}

func (e *ClipboardError) Error() string {
	if e == nil {
		return ""
	}
	if e.Backend != "" {
		return fmt.Sprintf("clipboard error [%s]: %s", e.Backend, e.Message)
	}
	return fmt.Sprintf("clipboard error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ClipboardError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
