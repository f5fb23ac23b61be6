package engine

import (
	"errors"
	"fmt"

	"github.com/seantiz/roster/internal/store"
)

// ErrInvalidEmail is returned when an email does not have a basic address shape.
var ErrInvalidEmail = errors.New("invalid email")

// Failure kinds reported by Kind.
const (
	KindInvalidEmail     = "invalid_email"
	KindActivityNotFound = "activity_not_found"
	KindAlreadyEnrolled  = "already_enrolled"
	KindCapacityExceeded = "capacity_exceeded"
	KindNotEnrolled      = "not_enrolled"
	KindUnknown          = "unknown"
)

// EnrollmentError describes a rejected signup or removal.
type EnrollmentError struct {
	Op       string
	Activity string
	Email    string
	Err      error
}

func (e *EnrollmentError) Error() string {
	return fmt.Sprintf("%s %q for %q: %v", e.Op, e.Email, e.Activity, e.Err)
}

func (e *EnrollmentError) Unwrap() error {
	return e.Err
}

// Kind classifies err into one of the Kind constants.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrInvalidEmail):
		return KindInvalidEmail
	case errors.Is(err, store.ErrActivityNotFound):
		return KindActivityNotFound
	case errors.Is(err, store.ErrAlreadyEnrolled):
		return KindAlreadyEnrolled
	case errors.Is(err, store.ErrCapacityExceeded):
		return KindCapacityExceeded
	case errors.Is(err, store.ErrNotEnrolled):
		return KindNotEnrolled
	default:
		return KindUnknown
	}
}
