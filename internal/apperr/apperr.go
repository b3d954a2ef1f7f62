// Package apperr defines the user-facing fatal error class. An *Error
// travels unmodified (or wrapped with %w) up to the command, which prints
// its message and exits with ExitCode.
package apperr

import (
	"errors"
	"fmt"
)

// ExitCode is the process exit status for an application error.
const ExitCode = 2

// Error is a failure the user can act on, such as an output file that
// cannot be opened.
type Error struct {
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an application error with a formatted message.
func New(format string, args ...any) error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an application error carrying err as its cause.
func Wrap(err error, format string, args ...any) error {
	return &Error{Message: fmt.Sprintf(format, args...), Err: err}
}

// As returns the application error in err's chain, if any.
func As(err error) (*Error, bool) {
	var ae *Error
	if errors.As(err, &ae) {
		return ae, true
	}

	return nil, false
}
