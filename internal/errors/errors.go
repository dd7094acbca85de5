// Package errors provides the rejection taxonomy for bundle manifest parsing.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// DetailError captures a single rejection with enough context to report it.
type DetailError struct {
	// Code is the stable rejection code (required).
	Code Code

	// Message is the specific description (required).
	Message string

	// Location is the package or file the manifest came from (optional).
	Location string

	// Field is the manifest path of the offending value, e.g. "app.bundleName" (optional).
	Field string

	// Context contains additional key-value context (optional).
	Context map[string]string

	// Hint provides actionable guidance (optional).
	Hint string

	// Err is an underlying error, such as a filesystem failure (optional).
	Err error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString(e.Code.String())
	if e.Field != "" {
		b.WriteString(" [")
		b.WriteString(e.Field)
		b.WriteString("]")
	}
	b.WriteString(": ")
	b.WriteString(e.Message)
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}

	return b.String()
}

// Detail renders the multi-line report printed by the CLI.
func (e *DetailError) Detail() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Code.String())
	fmt.Fprintf(&b, " (code %d)\n", uint8(e.Code))

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}
	if e.Field != "" {
		b.WriteString("  Field: ")
		b.WriteString(e.Field)
		b.WriteString("\n")
	}
	for k, v := range e.Context {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap exposes the category sentinel and the underlying error.
func (e *DetailError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if cat := e.Code.Category(); cat != nil {
		errs = append(errs, cat)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// Is matches ErrValidation for every manifest-content rejection.
func (e *DetailError) Is(target error) bool {
	return target == ErrValidation && e.Code.IsValidation()
}

// New creates a rejection for the given code.
func New(code Code, field, message string) error {
	return &DetailError{
		Code:    code,
		Field:   field,
		Message: message,
	}
}

// Newf creates a rejection with a formatted message.
func Newf(code Code, field, format string, args ...any) error {
	return New(code, field, fmt.Sprintf(format, args...))
}

// WrapCode attaches a rejection code to an underlying error.
func WrapCode(code Code, field, message string, err error) error {
	return &DetailError{
		Code:    code,
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// WithLocation sets the location on a DetailError and returns it unchanged
// otherwise. The first location set wins.
func WithLocation(err error, location string) error {
	var detail *DetailError
	if errors.As(err, &detail) && detail.Location == "" {
		detail.Location = location
	}
	return err
}

// CodeOf extracts the rejection code from err. A nil error yields CodeOK and
// an uncoded error yields CodeInternal.
func CodeOf(err error) Code {
	if err == nil {
		return CodeOK
	}
	var detail *DetailError
	if errors.As(err, &detail) {
		return detail.Code
	}
	return CodeInternal
}

// IsRetryable reports whether a caller may retry the operation. Only internal
// failures qualify; a rejected manifest stays rejected.
func IsRetryable(err error) bool {
	return err != nil && errors.Is(err, ErrInternal)
}
