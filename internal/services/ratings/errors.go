package ratings

import (
	"errors"
	"fmt"
	"strings"

	"github.com/labelreader/label-api/internal/models"
)

// Common errors
var (
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrRatingNotFound     = errors.New("rating not found")
	ErrInvalidScore       = fmt.Errorf("score must be between %d and %d", models.MinRatingScore, models.MaxRatingScore)
	ErrAggregationBusy    = errors.New("rating aggregation retries exhausted")
)

// NotFoundError represents an error when a rating or submission is not found
type NotFoundError struct {
	Resource string
	ID       interface{}
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s with identifier %v not found", e.Resource, e.ID)
}

func (e NotFoundError) Is(target error) bool {
	switch e.Resource {
	case "submission":
		return target == ErrSubmissionNotFound
	default:
		return target == ErrRatingNotFound
	}
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource string, id interface{}) error {
	return NotFoundError{Resource: resource, ID: id}
}

// IsRetryable reports whether an aggregation transaction failed on a lock
// conflict and is worth retrying. SQLite surfaces writer contention as a
// busy/locked error rather than a serialization failure.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "database is locked") ||
		strings.Contains(msg, "database table is locked") ||
		strings.Contains(msg, "SQLITE_BUSY")
}
