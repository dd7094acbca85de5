package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	oerrors "github.com/litebms/bms/internal/errors"
	"github.com/litebms/bms/internal/output"
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	Err  error
	Code int

	// Printed is set once the command has reported Err itself.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, oerrors.ErrAPIVersion):
		return ExitAPIVersion
	case errors.Is(err, oerrors.ErrValidation):
		return ExitValidationError
	case errors.Is(err, oerrors.ErrResourceNotFound), errors.Is(err, fs.ErrNotExist):
		return ExitNotFound
	case errors.Is(err, oerrors.ErrInternal):
		return ExitInternal
	default:
		return ExitGeneralError
	}
}

// PrintError reports err on w. Coded rejections get the multi-line detail
// view; anything else is logged as a single line.
func PrintError(w io.Writer, err error) {
	var detail *oerrors.DetailError
	if errors.As(err, &detail) {
		fmt.Fprint(w, detail.Detail())
	} else {
		output.Error(err.Error())
	}
	if oerrors.IsRetryable(err) {
		output.Warn("internal failure, the command may succeed if retried")
	}
}

// reported prints err and marks it so main does not print it again.
func reported(w io.Writer, err error) error {
	PrintError(w, err)
	code := ExitCodeFromError(err)
	output.Debug("command failed", "exit", code, "reason", ExitCodeName(code))
	return &ExitError{Err: err, Code: code, Printed: true}
}
