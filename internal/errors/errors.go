// Package errors is the single import point for error handling in gatehouse.
// Matching goes through the standard library, annotation through pkg/errors
// so wrapped failures keep their stack trace.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// New returns a plain error carrying text.
func New(text string) error {
	return stderrors.New(text)
}

// Is reports whether err or anything it wraps matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain assignable to target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Join combines errs into one error; nil entries are dropped.
func Join(errs ...error) error {
	return stderrors.Join(errs...)
}

// Wrap annotates err with message and a stack trace. Wrap(nil, ...) is nil.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

// Wrapf is Wrap with a format string.
func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// WithStack records the caller's stack on err.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

// Errorf formats a new error with a stack trace.
func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}
