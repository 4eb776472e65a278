package repository

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by every store. Handlers map these onto HTTP codes;
// anything else bubbling out of the driver is treated as the store being
// unavailable.
var (
	ErrInvalidIdentifier = errors.New("invalid identifier")
	ErrNotFound          = errors.New("not found")
	ErrForbidden         = errors.New("forbidden")
)

// ValidationError rejects a well-formed request whose values break a domain
// rule: negative duration, negative interruption count, unknown enum value.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func validationf(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}
