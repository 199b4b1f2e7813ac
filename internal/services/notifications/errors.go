package notifications

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrForbidden            = errors.New("notification belongs to another user")
)

// NotFoundError represents an error when a notification is not found
type NotFoundError struct {
	ID uint
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("notification %d not found", e.ID)
}

func (e NotFoundError) Is(target error) bool {
	return target == ErrNotificationNotFound
}
