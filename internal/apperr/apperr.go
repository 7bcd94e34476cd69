// Package apperr defines the error type shared by classfocus packages
package apperr

import (
	"errors"
	"fmt"
)

// Error is an application error whose Message may contain printf verbs.
type Error struct {
	Cause   error
	Message string
	tmpl    string
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}

	return e.Message
}

// Fmt returns a copy of the error with its message formatted using args. The
// copy still matches the original with errors.Is.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		Message: fmt.Sprintf(e.Message, args...),
		tmpl:    e.template(),
		Cause:   e.Cause,
	}
}

// Wrap returns a copy of the error that records cause.
func (e *Error) Wrap(cause error) *Error {
	return &Error{
		Message: e.Message,
		tmpl:    e.template(),
		Cause:   cause,
	}
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target was derived from the same template.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}

	return e.template() == t.template()
}

func (e *Error) template() string {
	if e.tmpl != "" {
		return e.tmpl
	}

	return e.Message
}
