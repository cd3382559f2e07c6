package service

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("resource not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrConflict        = errors.New("conflict")
	ErrTooManyAttempts = errors.New("too many attempts")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrNoChanges       = errors.New("no changes")
)

// PINMismatchError reports a wrong PIN along with the attempts left before
// the client is locked out.
type PINMismatchError struct {
	Remaining int
}

func (e *PINMismatchError) Error() string {
	return fmt.Sprintf("PIN mismatch, %d attempts remaining", e.Remaining)
}
