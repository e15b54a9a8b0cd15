// Package errors puts the standard library and pkg/errors behind one import.
// Matching goes through the standard library; wrapping goes through pkg/errors
// so wrapped errors record a stack trace.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// Matching.

func Is(err, target error) bool { return stderrors.Is(err, target) }

func As(err error, target any) bool { return stderrors.As(err, target) }

// Cause returns the innermost error of a pkg/errors wrap chain.
func Cause(err error) error { return pkgerrors.Cause(err) }

// Construction.

// New returns a plain sentinel without a stack trace; use it for package-level error values.
func New(text string) error { return stderrors.New(text) }

func Errorf(format string, args ...any) error { return pkgerrors.Errorf(format, args...) }

func Join(errs ...error) error { return stderrors.Join(errs...) }

// Wrapping. All of these return nil when err is nil.

func Wrap(err error, message string) error { return pkgerrors.Wrap(err, message) }

func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

func WithStack(err error) error { return pkgerrors.WithStack(err) }

// WithMessage annotates err without recording another stack trace.
func WithMessage(err error, message string) error { return pkgerrors.WithMessage(err, message) }
