package ratings

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/labelreader/label-api/internal/models"
	"github.com/labelreader/label-api/internal/services/notifications"
	"github.com/labelreader/label-api/internal/services/profiles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// captureNotifier records notified users for assertions
type captureNotifier struct {
	mu    sync.Mutex
	calls []uint
}

func (n *captureNotifier) Notify(ctx context.Context, userID uint, kind, title, message, link string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, userID)
	return nil
}

func newTestService(t *testing.T) (*Service, *gorm.DB, *captureNotifier) {
	db := setupTestDB(t)
	notifier := &captureNotifier{}
	svc := NewService(
		NewRepository(db),
		profiles.NewCounters(db, profiles.CounterModeIncremental),
		notifier,
	)
	return svc, db, notifier
}

func TestServiceUpsertRejectsOutOfRangeScore(t *testing.T) {
	svc, db, _ := newTestService(t)
	sub := createTestSubmission(t, db, 1)

	for _, score := range []int{0, -1, 6, 100} {
		_, err := svc.UpsertRating(context.Background(), sub.ID, 10, RatingInput{Score: score})
		assert.ErrorIs(t, err, ErrInvalidScore, "score %d", score)
	}

	// Nothing was written
	var count int64
	require.NoError(t, db.Model(&models.Rating{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestServiceUpsertBumpsReviewCounterOnceAndNotifies(t *testing.T) {
	svc, db, notifier := newTestService(t)
	sub := createTestSubmission(t, db, 7)
	require.NoError(t, db.Create(&models.LabelProfile{UserID: 10, LabelName: "Deep Cuts"}).Error)
	ctx := context.Background()

	_, err := svc.UpsertRating(ctx, sub.ID, 10, RatingInput{Score: 4})
	require.NoError(t, err)

	// Re-rating must not bump the counter again
	_, err = svc.UpsertRating(ctx, sub.ID, 10, RatingInput{Score: 2})
	require.NoError(t, err)

	var profile models.LabelProfile
	require.NoError(t, db.Where("user_id = ?", 10).First(&profile).Error)
	assert.Equal(t, 1, profile.TotalReviews)

	// The owning artist was notified for each rating write
	assert.Equal(t, []uint{7, 7}, notifier.calls)
}

func TestServiceRatingScenario(t *testing.T) {
	// No ratings, then A rates 4, B rates 5, then A re-rates 2
	svc, db, _ := newTestService(t)
	sub := createTestSubmission(t, db, 1)
	ctx := context.Background()

	_, err := svc.UpsertRating(ctx, sub.ID, 100, RatingInput{Score: 4})
	require.NoError(t, err)
	_, err = svc.UpsertRating(ctx, sub.ID, 200, RatingInput{Score: 5})
	require.NoError(t, err)

	var stored models.Submission
	require.NoError(t, db.First(&stored, sub.ID).Error)
	assert.Equal(t, 4.5, stored.AverageRating)
	assert.Equal(t, 2, stored.TotalRatings)

	_, err = svc.UpsertRating(ctx, sub.ID, 100, RatingInput{Score: 2})
	require.NoError(t, err)

	require.NoError(t, db.First(&stored, sub.ID).Error)
	assert.Equal(t, 3.5, stored.AverageRating)
	assert.Equal(t, 2, stored.TotalRatings, "re-rating must not change the count")
}

func TestServiceConcurrentUpsertsFromDistinctLabels(t *testing.T) {
	svc, db, _ := newTestService(t)
	sub := createTestSubmission(t, db, 1)

	const n = 16
	var wg sync.WaitGroup
	errs := make([]error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.UpsertRating(context.Background(), sub.ID, uint(1000+i), RatingInput{Score: 1 + i%5})
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "label %d", i)
	}

	var stored models.Submission
	require.NoError(t, db.First(&stored, sub.ID).Error)
	assert.Equal(t, n, stored.TotalRatings, "no rating write may be lost")

	var rowCount int64
	require.NoError(t, db.Model(&models.Rating{}).Where("submission_id = ?", sub.ID).Count(&rowCount).Error)
	assert.Equal(t, int64(n), rowCount)
	assert.Equal(t, int(rowCount), stored.TotalRatings)
}

// flakyRepository fails with a retryable error a fixed number of times
type flakyRepository struct {
	RatingRepository
	failures  int
	attempted int
}

func (f *flakyRepository) UpsertWithAggregate(ctx context.Context, submissionID, labelID uint, input RatingInput) (*UpsertResult, error) {
	f.attempted++
	if f.attempted <= f.failures {
		return nil, fmt.Errorf("upserting rating: database is locked")
	}
	return f.RatingRepository.UpsertWithAggregate(ctx, submissionID, labelID, input)
}

func TestServiceRetriesLockConflicts(t *testing.T) {
	db := setupTestDB(t)
	sub := createTestSubmission(t, db, 1)

	flaky := &flakyRepository{RatingRepository: NewRepository(db), failures: 2}
	svc := NewService(flaky, profiles.NewCounters(db, profiles.CounterModeIncremental), notifications.NoopNotifier{}, WithRetryDelay(1))

	rating, err := svc.UpsertRating(context.Background(), sub.ID, 10, RatingInput{Score: 4})
	require.NoError(t, err)
	assert.Equal(t, 4, rating.Score)
	assert.Equal(t, 3, flaky.attempted)
}

func TestServiceSurfacesExhaustedRetries(t *testing.T) {
	db := setupTestDB(t)
	sub := createTestSubmission(t, db, 1)

	flaky := &flakyRepository{RatingRepository: NewRepository(db), failures: 100}
	svc := NewService(flaky, profiles.NewCounters(db, profiles.CounterModeIncremental), notifications.NoopNotifier{},
		WithMaxRetries(3), WithRetryDelay(1))

	_, err := svc.UpsertRating(context.Background(), sub.ID, 10, RatingInput{Score: 4})
	assert.ErrorIs(t, err, ErrAggregationBusy)
	assert.Equal(t, 3, flaky.attempted)
}

func TestServiceDoesNotRetryNotFound(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.UpsertRating(context.Background(), 9999, 10, RatingInput{Score: 4})
	assert.ErrorIs(t, err, ErrSubmissionNotFound)
	assert.False(t, errors.Is(err, ErrAggregationBusy))
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(errors.New("database is locked (5) (SQLITE_BUSY)")))
	assert.True(t, IsRetryable(fmt.Errorf("saving rating: %w", errors.New("database table is locked"))))
	assert.False(t, IsRetryable(nil))
	assert.False(t, IsRetryable(errors.New("UNIQUE constraint failed")))
}
