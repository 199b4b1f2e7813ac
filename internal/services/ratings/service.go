package ratings

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/labelreader/label-api/internal/models"
	"github.com/labelreader/label-api/internal/services/notifications"
	"github.com/labelreader/label-api/internal/services/profiles"
)

// Defaults for the aggregation retry loop
const (
	DefaultMaxRetries = 3
	DefaultRetryDelay = 25 * time.Millisecond
)

// Service implements the RatingService interface with business logic
type Service struct {
	repository RatingRepository
	counters   profiles.Counters
	notifier   notifications.Notifier
	maxRetries int
	retryDelay time.Duration
}

var _ RatingService = (*Service)(nil)

// ServiceOption is a functional option for configuring the service
type ServiceOption func(*Service)

// WithMaxRetries sets the bounded retry count for aggregation conflicts
func WithMaxRetries(n int) ServiceOption {
	return func(s *Service) {
		if n > 0 {
			s.maxRetries = n
		}
	}
}

// WithRetryDelay sets the pause between aggregation retries
func WithRetryDelay(d time.Duration) ServiceOption {
	return func(s *Service) {
		if d > 0 {
			s.retryDelay = d
		}
	}
}

// NewService creates a new rating service with optional configuration
func NewService(repository RatingRepository, counters profiles.Counters, notifier notifications.Notifier, opts ...ServiceOption) *Service {
	s := &Service{
		repository: repository,
		counters:   counters,
		notifier:   notifications.LoggingNotifier{Next: notifier},
		maxRetries: DefaultMaxRetries,
		retryDelay: DefaultRetryDelay,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// UpsertRating creates or overwrites the label's rating for a submission and
// brings the submission's average/count in line within the same unit of
// work. Counter and notification side effects run only after the
// transaction committed and never fail the call.
func (s *Service) UpsertRating(ctx context.Context, submissionID, labelID uint, input RatingInput) (*models.Rating, error) {
	if input.Score < models.MinRatingScore || input.Score > models.MaxRatingScore {
		return nil, ErrInvalidScore
	}

	result, err := s.upsertWithRetry(ctx, submissionID, labelID, input)
	if err != nil {
		return nil, err
	}

	if result.IsNew {
		if err := s.counters.AddLabelReviews(ctx, labelID, 1); err != nil {
			log.Printf("[ERROR] Failed to bump review counter for label %d: %v", labelID, err)
		}
	}

	_ = s.notifier.Notify(ctx, result.Submission.ArtistID,
		models.NotificationNewRating,
		"New rating received",
		fmt.Sprintf("%q was rated %d/5", result.Submission.Title, result.Rating.Score),
		fmt.Sprintf("/submissions/%d", result.Submission.ID),
	)

	return result.Rating, nil
}

// upsertWithRetry retries the aggregation transaction a bounded number of
// times on lock conflicts before giving up.
func (s *Service) upsertWithRetry(ctx context.Context, submissionID, labelID uint, input RatingInput) (*UpsertResult, error) {
	var lastErr error
	for attempt := 0; attempt < s.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(s.retryDelay):
			}
		}

		result, err := s.repository.UpsertWithAggregate(ctx, submissionID, labelID, input)
		if err == nil {
			return result, nil
		}
		if !IsRetryable(err) {
			return nil, err
		}
		log.Printf("[DEBUG] Aggregation conflict on submission %d (attempt %d/%d): %v",
			submissionID, attempt+1, s.maxRetries, err)
		lastErr = err
	}

	return nil, fmt.Errorf("%w: %v", ErrAggregationBusy, lastErr)
}

// GetRating returns the label's rating for a submission, if any
func (s *Service) GetRating(ctx context.Context, submissionID, labelID uint) (*models.Rating, error) {
	return s.repository.GetByPair(ctx, submissionID, labelID)
}

// ListRatingsForLabel returns a page of the label's ratings, newest first
func (s *Service) ListRatingsForLabel(ctx context.Context, labelID uint, page, limit int) ([]models.Rating, int64, error) {
	return s.repository.ListByLabel(ctx, labelID, page, limit)
}
