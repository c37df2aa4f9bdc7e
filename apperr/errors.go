// Package apperr holds the error kinds shared by every service. Callers wrap a kind with
// fmt.Errorf("%w: ...") and boundaries match it with errors.Is.
package apperr

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidState = errors.New("invalid state")
	ErrSecurity     = errors.New("security check failed")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
)

func Validation(format string, args ...any) error {
	return wrap(ErrValidation, format, args...)
}

func NotFound(format string, args ...any) error {
	return wrap(ErrNotFound, format, args...)
}

func Forbidden(format string, args ...any) error {
	return wrap(ErrForbidden, format, args...)
}

func InvalidState(format string, args ...any) error {
	return wrap(ErrInvalidState, format, args...)
}

func Security(format string, args ...any) error {
	return wrap(ErrSecurity, format, args...)
}

func Conflict(format string, args ...any) error {
	return wrap(ErrConflict, format, args...)
}

func Unauthorized(format string, args ...any) error {
	return wrap(ErrUnauthorized, format, args...)
}

func wrap(kind error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...))
}

// Message returns the text after the kind prefix, which is what clients get to see.
func Message(err error) string {
	for _, kind := range []error{ErrValidation, ErrNotFound, ErrForbidden, ErrInvalidState, ErrSecurity, ErrConflict, ErrUnauthorized} {
		if errors.Is(err, kind) {
			msg := err.Error()
			if idx := strings.LastIndex(msg, kind.Error()+": "); idx >= 0 {
				return msg[idx+len(kind.Error())+2:]
			}
			return msg
		}
	}
	return err.Error()
}
