package profiles

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrInvalidInput    = errors.New("invalid input")
)

// NotFoundError represents an error when a profile is not found
type NotFoundError struct {
	Kind   string
	UserID uint
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s profile for user %d not found", e.Kind, e.UserID)
}

func (e NotFoundError) Is(target error) bool {
	return target == ErrProfileNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(kind string, userID uint) error {
	return NotFoundError{Kind: kind, UserID: userID}
}

// IsNotFound checks if an error is a profile not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrProfileNotFound)
}
