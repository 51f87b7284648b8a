// Package errors provides the error helpers used across the project.
//
// Failure kinds are declared as constant Sentinel values and returned wrapped with
// the failing operation, so callers match them with Is regardless of the context
// added on the way up.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel is a constant error value.
type Sentinel string

func (s Sentinel) Error() string { return string(s) }

type wrappedError struct {
	cause error
	msg   string
}

func (w *wrappedError) Error() string { return w.msg + ": " + w.cause.Error() }
func (w *wrappedError) Unwrap() error { return w.cause }

// New calls [errors.New].
func New(text string) error {
	return errors.New(text) //nolint:err113
}

// Wrap prefixes cause with text. It returns nil if cause is nil.
func Wrap(cause error, text string) error {
	if cause == nil {
		return nil
	}

	return &wrappedError{cause: cause, msg: text}
}

// Wrapf prefixes cause with a formatted message. It returns nil if cause is nil.
func Wrapf(cause error, format string, vals ...any) error {
	if cause == nil {
		return nil
	}

	return &wrappedError{cause: cause, msg: fmt.Sprintf(format, vals...)}
}

// Is calls [errors.Is].
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// Unwrap calls [errors.Unwrap].
func Unwrap(err error) error {
	return errors.Unwrap(err)
}
