package submissions

import (
	"context"

	"github.com/labelreader/label-api/internal/models"
)

// SubmissionInput carries the artist-supplied track metadata
type SubmissionInput struct {
	Title        string `json:"title"`
	ArtistName   string `json:"artist_name"`
	Genre        string `json:"genre,omitempty"`
	SubGenre     string `json:"sub_genre,omitempty"`
	BPM          *int   `json:"bpm,omitempty"`
	KeySignature string `json:"key_signature,omitempty"`
	Description  string `json:"description,omitempty"`
	Lyrics       string `json:"lyrics,omitempty"`
	DurationSeconds *int `json:"duration_seconds,omitempty"`
}

// AudioUpload is the validated audio payload handed in by the HTTP layer
type AudioUpload struct {
	Data        []byte
	ContentType string
}

// ListFilter narrows the label-facing review listing
type ListFilter struct {
	Genre  string
	Status string
}

// PageRequest carries stable pagination and sorting semantics.
// SortBy must be one of the whitelisted sort fields; zero values fall back
// to creation time, descending.
type PageRequest struct {
	Page    int
	Size    int
	SortBy  string
	SortAsc bool
}

// SubmissionRepository defines the interface for submission persistence
type SubmissionRepository interface {
	Create(ctx context.Context, submission *models.Submission) error
	GetByID(ctx context.Context, id uint) (*models.Submission, error)
	ListByArtist(ctx context.Context, artistID uint, page, limit int) ([]models.Submission, int64, error)
	ListForReview(ctx context.Context, filter ListFilter, page PageRequest) ([]models.Submission, int64, error)
	// DeleteCascade removes the submission together with its ratings and
	// play events in one transaction
	DeleteCascade(ctx context.Context, id uint) error
	// UpdateStatus applies a state-machine transition under the row lock
	UpdateStatus(ctx context.Context, id uint, newStatus string) (*models.Submission, error)
}

// SubmissionService defines the business logic interface for the
// submission lifecycle
type SubmissionService interface {
	Create(ctx context.Context, artistID uint, input SubmissionInput, audio AudioUpload) (*models.Submission, error)
	Get(ctx context.Context, submissionID, requesterArtistID uint) (*models.Submission, error)
	ListByArtist(ctx context.Context, artistID uint, page, limit int) ([]models.Submission, int64, error)
	Delete(ctx context.Context, submissionID, requesterArtistID uint) error
	Transition(ctx context.Context, submissionID uint, newStatus string) (*models.Submission, error)
	GetForReview(ctx context.Context, submissionID uint) (*models.Submission, error)
	ListForReview(ctx context.Context, filter ListFilter, page PageRequest) ([]models.Submission, int64, error)
}
