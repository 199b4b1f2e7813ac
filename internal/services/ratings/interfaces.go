package ratings

import (
	"context"

	"github.com/labelreader/label-api/internal/models"
)

// RatingInput carries the writable fields of a rating upsert
type RatingInput struct {
	Score           int    `json:"score"`
	ReviewText      string `json:"review_text,omitempty"`
	Interested      bool   `json:"interested"`
	ListenedSeconds *int   `json:"listened_seconds,omitempty"`
}

// UpsertResult is what one aggregation transaction produced
type UpsertResult struct {
	Rating     *models.Rating
	Submission *models.Submission
	// IsNew is true when the transaction created the rating row rather
	// than overwriting an existing one
	IsNew bool
}

// RatingRepository defines the interface for rating persistence.
// UpsertWithAggregate is the transactional boundary of the whole system:
// the rating write, the average/count recompute and the submission update
// commit or fail together, with the submission row held for the duration.
type RatingRepository interface {
	UpsertWithAggregate(ctx context.Context, submissionID, labelID uint, input RatingInput) (*UpsertResult, error)
	GetByPair(ctx context.Context, submissionID, labelID uint) (*models.Rating, error)
	ListByLabel(ctx context.Context, labelID uint, page, limit int) ([]models.Rating, int64, error)
	CountForSubmission(ctx context.Context, submissionID uint) (int64, error)
}

// RatingService defines the business logic interface for rating operations
type RatingService interface {
	UpsertRating(ctx context.Context, submissionID, labelID uint, input RatingInput) (*models.Rating, error)
	GetRating(ctx context.Context, submissionID, labelID uint) (*models.Rating, error)
	ListRatingsForLabel(ctx context.Context, labelID uint, page, limit int) ([]models.Rating, int64, error)
}
