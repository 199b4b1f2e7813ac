package plays

import "errors"

// ErrSubmissionNotFound is returned when a play targets a submission that
// doesn't exist
var ErrSubmissionNotFound = errors.New("submission not found")
