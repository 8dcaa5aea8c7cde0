package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across internal layers.
var (
	ErrNotFound         = errors.New("not found")
	ErrAlreadyExists    = errors.New("already exists")
	ErrExtensionMissing = errors.New("citext extension is not installed")
	ErrCasingMismatch   = errors.New("casing mismatch")
)

// CasingError reports a value that came back from the database with a
// casing policy other than the expected one.
type CasingError struct {
	Check string
	Want  string
	Got   string
}

func (e *CasingError) Error() string {
	return fmt.Sprintf("%s: want %q, got %q", e.Check, e.Want, e.Got)
}

func (e *CasingError) Unwrap() error { return ErrCasingMismatch }

// NewCasingError creates a CasingError for the named check.
func NewCasingError(check, want, got string) *CasingError {
	return &CasingError{Check: check, Want: want, Got: got}
}
