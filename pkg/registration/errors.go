package registration

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/regcheck/pkg/sanitizer"
)

var (
	// ErrParse matches every *ParseError.
	ErrParse = errors.New("parse error")

	// ErrField matches every *FieldError.
	ErrField = errors.New("field validation failed")

	// ErrCrossField matches every *CrossFieldError.
	ErrCrossField = errors.New("cross-field validation failed")

	// ErrInternal is reported when validation panics.
	ErrInternal = errors.New("internal error")
)

// ParseError reports input that is not a structured record in the expected format.
type ParseError struct {
	Format Format
	Err    error
}

func (e *ParseError) Error() string {
	return sanitizer.SingleLine(fmt.Sprintf("failed to parse %s: %v", e.Format.Label(), e.Err))
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}

// FieldError reports a single field that failed its own constraint. Errors in
// nested records are chained through Err, so the address city failure is a
// FieldError for "address" wrapping a FieldError for "city".
type FieldError struct {
	Field   string
	Message string
	Err     error
}

func (e *FieldError) Error() string {
	return e.Path() + ": " + e.Reason()
}

// Path returns the dotted field path, e.g. "address.city".
func (e *FieldError) Path() string {
	var inner *FieldError
	if errors.As(e.Err, &inner) {
		return e.Field + "." + inner.Path()
	}
	return e.Field
}

// Reason returns the innermost constraint description.
func (e *FieldError) Reason() string {
	var inner *FieldError
	if errors.As(e.Err, &inner) {
		return inner.Reason()
	}
	return e.Message
}

func (e *FieldError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrField}
	}
	return []error{ErrField, e.Err}
}

// CrossFieldError reports individually valid fields whose combination is not allowed.
type CrossFieldError struct {
	Fields  []string
	Message string
}

func (e *CrossFieldError) Error() string {
	return e.Message
}

func (e *CrossFieldError) Unwrap() error {
	return ErrCrossField
}

// FormatError renders err as the single-line failure output.
func FormatError(err error) string {
	if err == nil {
		err = ErrInternal
	}
	return ErrorPrefix + sanitizer.SingleLine(err.Error())
}

// ErrorPrefix starts every failure output.
const ErrorPrefix = "Validation Error: "
