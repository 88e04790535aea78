package clierr

import (
	"errors"
	"fmt"

	"github.com/KostasZigo/commitlint/internal/constants"
)

// DefaultCode is used for errors that carry no exit code of their own,
// such as argument errors from cobra.
const DefaultCode = constants.ExitFailure

// ExitError is an error that carries an explicit process exit code.
// It supports wrapping via Unwrap so errors.Is/As work as expected.
type ExitError struct {
	code  int
	msg   string
	cause error
}

func (e *ExitError) Error() string {
	if e.cause == nil {
		return e.msg
	}
	return fmt.Sprintf("%s: %v", e.msg, e.cause)
}

func (e *ExitError) ExitCode() int { return e.code }

func (e *ExitError) Unwrap() error { return e.cause }

// New creates an ExitError with a message.
func New(code int, msg string) error {
	return &ExitError{code: normalize(code), msg: msg}
}

// Wrap creates an ExitError that wraps an underlying cause.
func Wrap(code int, msg string, cause error) error {
	if cause == nil {
		return New(code, msg)
	}
	return &ExitError{code: normalize(code), msg: msg, cause: cause}
}

// ExitCodeOf extracts an exit code from any error, defaulting to DefaultCode.
func ExitCodeOf(err error) int {
	if err == nil {
		return 0
	}
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.ExitCode()
	}
	return DefaultCode
}

// Exit code 0 means success; errors should never be 0.
func normalize(code int) int {
	if code <= 0 {
		return DefaultCode
	}
	return code
}
