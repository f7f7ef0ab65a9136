package errdefs

import (
	"errors"
	"fmt"
)

// Base kinds. Every business-rule failure wraps one of these so callers can
// classify with errors.Is without matching message text.
var (
	ErrNotFound         = errors.New("not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrInvalidState     = errors.New("invalid state")
	ErrAlreadyExists    = errors.New("already exists")
	ErrValidation       = errors.New("validation error")
)

// Specific failures, each carrying its base kind.
var (
	ErrNotOwner         = fmt.Errorf("%w: not the owner", ErrPermissionDenied)
	ErrNotEnrolled      = fmt.Errorf("%w: student not enrolled in the work's space", ErrValidation)
	ErrNotIndividual    = fmt.Errorf("%w: work is not individually assignable", ErrValidation)
	ErrDeadlineExceeded = fmt.Errorf("%w: deadline exceeded", ErrValidation)
	ErrScoreOutOfRange  = fmt.Errorf("%w: score out of range", ErrValidation)
	ErrNotDelivered     = fmt.Errorf("%w: assignment not delivered", ErrInvalidState)
	ErrAlreadyDelivered = fmt.Errorf("%w: assignment already delivered", ErrInvalidState)
	ErrAlreadyEvaluated = fmt.Errorf("%w: assignment already evaluated", ErrAlreadyExists)
)

// Internal wraps unexpected storage or transport failures. These are logged
// and surfaced as a generic failure, never with the inner detail.
func Internal(err error) error {
	return fmt.Errorf("internal error: %w", err)
}

// IsBusiness reports whether err is a recoverable business-rule violation
// rather than an infrastructure failure.
func IsBusiness(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrPermissionDenied) ||
		errors.Is(err, ErrInvalidState) ||
		errors.Is(err, ErrAlreadyExists) ||
		errors.Is(err, ErrValidation)
}
