package submissions

import (
	"errors"
	"fmt"
)

var (
	// ErrSubmissionNotFound is returned when a submission doesn't exist
	ErrSubmissionNotFound = errors.New("submission not found")

	// ErrNotOwner is returned when an artist touches a submission that
	// belongs to someone else
	ErrNotOwner = errors.New("submission belongs to another artist")

	// ErrInvalidTransition is returned for a status change the state
	// machine does not allow
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrMissingAudio is returned when a submission arrives without an
	// audio payload
	ErrMissingAudio = errors.New("audio payload is required")
)

// TransitionError reports the rejected from/to pair
type TransitionError struct {
	From string
	To   string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot transition submission from %s to %s", e.From, e.To)
}

func (e *TransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

// ValidationError reports a rejected metadata field
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}
