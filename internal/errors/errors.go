// Package errors defines the domain error taxonomy shared by services
// and handlers. Handlers translate these into HTTP statuses; anything
// not recognized here surfaces as a 500 with a generic body.
package errors

import (
	"errors"
	"fmt"
)

var ErrUserNotFound = errors.New("user not found")
var ErrFlightNotFound = errors.New("flight not found")
var ErrBookingNotFound = errors.New("booking not found")

// ErrForbidden means the caller is authenticated but does not own the
// resource. The handler supplies the operation-specific message.
var ErrForbidden = errors.New("operation is forbidden for user")

// ErrInvalidCredentials is returned for both unknown email and wrong
// password. Do not split these apart: the uniform message prevents
// user enumeration.
var ErrInvalidCredentials = errors.New("invalid credentials")

var ErrEmailRegistered = errors.New("this email is already registered")

var ErrBookingCancelled = errors.New("cannot modify a cancelled booking")
var ErrAlreadyCancelled = errors.New("booking is already cancelled")

// ValidationError marks malformed or out-of-range input
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Validation builds a ValidationError with the given message
func Validation(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// CapacityError means seat demand exceeds supply. AvailableSeats is the
// ceiling reported back to the client alongside the error body.
type CapacityError struct {
	AvailableSeats int
}

func (e *CapacityError) Error() string { return "not enough available seats" }
