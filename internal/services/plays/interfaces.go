package plays

import (
	"context"

	"github.com/labelreader/label-api/internal/models"
)

// PlayRepository defines the interface for play event persistence
type PlayRepository interface {
	// RecordPlay appends a play event and bumps the submission's play
	// count in one transaction
	RecordPlay(ctx context.Context, event *models.PlayEvent) (*models.Submission, error)
	ListForSubmission(ctx context.Context, submissionID uint, page, limit int) ([]models.PlayEvent, int64, error)
	CountForSubmission(ctx context.Context, submissionID uint) (int64, error)
}

// PlayService defines the business logic interface for play tracking
type PlayService interface {
	RecordPlay(ctx context.Context, submissionID uint, listenerID *uint, clientIP string) (*models.Submission, error)
	ListForSubmission(ctx context.Context, submissionID uint, page, limit int) ([]models.PlayEvent, int64, error)
}
