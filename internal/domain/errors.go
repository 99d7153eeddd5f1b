package domain

import (
	"errors"
	"strings"
)

var (
	ErrValidation    = errors.New("validation failed")
	ErrNotFound      = errors.New("not found")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrInvalidOTP    = errors.New("invalid OTP")
	ErrOTPExpired    = errors.New("OTP expired")
	ErrEmailDelivery = errors.New("email delivery failed")
)

// ValidationError describes a rejected request. It matches ErrValidation
// under errors.Is.
type ValidationError struct {
	Missing []string
	Reason  string
}

func (e *ValidationError) Error() string {
	switch {
	case len(e.Missing) > 0 && e.Reason != "":
		return "missing required fields: " + strings.Join(e.Missing, ", ") + "; " + e.Reason
	case len(e.Missing) > 0:
		return "missing required fields: " + strings.Join(e.Missing, ", ")
	case e.Reason != "":
		return e.Reason
	default:
		return ErrValidation.Error()
	}
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// MissingFields returns a ValidationError naming the absent fields, or nil
// when none are given.
func MissingFields(fields ...string) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Missing: fields}
}

func Invalid(reason string) error {
	return &ValidationError{Reason: reason}
}
