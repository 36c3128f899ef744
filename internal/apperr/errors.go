// Package apperr defines the error taxonomy shared by the engine packages.
//
// Every error returned across a package boundary wraps exactly one of the
// kind sentinels below, so callers classify with errors.Is or KindOf and
// never by string matching.
package apperr

import (
	"context"
	"errors"
	"fmt"
)

// Kind sentinels.
var (
	ErrValidation    = errors.New("validation error")
	ErrNotFound      = errors.New("not found")
	ErrStateConflict = errors.New("state conflict")
	ErrUnavailable   = errors.New("collaborator unavailable")
	ErrInternal      = errors.New("internal error")
)

// State-machine and selection errors.
var (
	ErrSessionAlreadyActive = fmt.Errorf("%w: session already active", ErrStateConflict)
	ErrInvalidLoopSequence  = fmt.Errorf("%w: invalid loop sequence", ErrStateConflict)
	ErrLoopAlreadySealed    = fmt.Errorf("%w: loop already sealed", ErrStateConflict)
	ErrSessionTerminal      = fmt.Errorf("%w: session is terminal", ErrStateConflict)
	ErrNoSkillsAvailable    = fmt.Errorf("%w: no skills available", ErrValidation)
)

// Kind is the coarse classification of an error.
type Kind string

const (
	KindNone          Kind = ""
	KindValidation    Kind = "validation"
	KindNotFound      Kind = "not_found"
	KindStateConflict Kind = "state_conflict"
	KindUnavailable   Kind = "unavailable"
	KindInternal      Kind = "internal"
)

// KindOf classifies err. Errors that wrap no sentinel are internal, except
// context deadline errors which count as an unavailable collaborator.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrStateConflict):
		return KindStateConflict
	case errors.Is(err, ErrUnavailable), errors.Is(err, context.DeadlineExceeded):
		return KindUnavailable
	default:
		return KindInternal
	}
}

// Invalid returns a validation error with a formatted message.
func Invalid(format string, args ...any) error {
	return wrap(ErrValidation, format, args...)
}

// NotFound returns a not-found error with a formatted message.
func NotFound(format string, args ...any) error {
	return wrap(ErrNotFound, format, args...)
}

// Conflict returns a state-conflict error with a formatted message.
func Conflict(format string, args ...any) error {
	return wrap(ErrStateConflict, format, args...)
}

// Unavailable marks err as a collaborator failure. A nil err yields nil.
func Unavailable(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrUnavailable) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %w", op, ErrUnavailable, err)
}

// Internal marks err as an internal failure. A nil err yields nil.
func Internal(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", op, ErrInternal, err)
}

func wrap(kind error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...))
}
