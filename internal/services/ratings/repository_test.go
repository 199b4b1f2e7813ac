package ratings

import (
	"context"
	"testing"

	"github.com/labelreader/label-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// A single connection keeps the in-memory database shared across
	// goroutines and serializes writers the way a row lock would.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(&models.Submission{}, &models.Rating{}, &models.ArtistProfile{}, &models.LabelProfile{}, &models.PlayEvent{})
	require.NoError(t, err)

	return db
}

func createTestSubmission(t *testing.T, db *gorm.DB, artistID uint) *models.Submission {
	submission := &models.Submission{
		ArtistID:   artistID,
		Title:      "Night Drive",
		ArtistName: "Test Artist",
		Genre:      "techno",
		AudioRef:   "blob-1.mp3",
		Status:     models.StatusPending,
	}
	require.NoError(t, db.Create(submission).Error)
	return submission
}

func TestRepositoryUpsertCreatesRatingAndAggregate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	sub := createTestSubmission(t, db, 1)

	result, err := repo.UpsertWithAggregate(context.Background(), sub.ID, 10, RatingInput{Score: 4, ReviewText: "solid groove"})
	require.NoError(t, err)
	assert.True(t, result.IsNew)
	assert.NotZero(t, result.Rating.ID)
	assert.Equal(t, 4, result.Rating.Score)

	var stored models.Submission
	require.NoError(t, db.First(&stored, sub.ID).Error)
	assert.Equal(t, 4.0, stored.AverageRating)
	assert.Equal(t, 1, stored.TotalRatings)
}

func TestRepositoryUpsertOverwritesExistingRow(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	sub := createTestSubmission(t, db, 1)
	ctx := context.Background()

	first, err := repo.UpsertWithAggregate(ctx, sub.ID, 10, RatingInput{Score: 5, Interested: true})
	require.NoError(t, err)

	second, err := repo.UpsertWithAggregate(ctx, sub.ID, 10, RatingInput{Score: 2, ReviewText: "changed my mind"})
	require.NoError(t, err)
	assert.False(t, second.IsNew)
	assert.Equal(t, first.Rating.ID, second.Rating.ID)

	var count int64
	require.NoError(t, db.Model(&models.Rating{}).Where("submission_id = ?", sub.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	var stored models.Submission
	require.NoError(t, db.First(&stored, sub.ID).Error)
	assert.Equal(t, 2.0, stored.AverageRating)
	assert.Equal(t, 1, stored.TotalRatings)
}

func TestRepositoryUpsertMissingSubmission(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	_, err := repo.UpsertWithAggregate(context.Background(), 999, 10, RatingInput{Score: 3})
	assert.ErrorIs(t, err, ErrSubmissionNotFound)
}

func TestRepositoryAverageRoundsHalfUp(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	sub := createTestSubmission(t, db, 1)
	ctx := context.Background()

	// 5+5+5+5+5+4+4+4 = 37 over 8 ratings = 4.625, which rounds up to 4.63
	scores := []int{5, 5, 5, 5, 5, 4, 4, 4}
	for i, score := range scores {
		_, err := repo.UpsertWithAggregate(ctx, sub.ID, uint(100+i), RatingInput{Score: score})
		require.NoError(t, err)
	}

	var stored models.Submission
	require.NoError(t, db.First(&stored, sub.ID).Error)
	assert.Equal(t, 4.63, stored.AverageRating)
	assert.Equal(t, 8, stored.TotalRatings)
}

func TestRepositoryFirstRatingMovesPendingToUnderReview(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	sub := createTestSubmission(t, db, 1)

	result, err := repo.UpsertWithAggregate(context.Background(), sub.ID, 10, RatingInput{Score: 3})
	require.NoError(t, err)
	assert.Equal(t, models.StatusUnderReview, result.Submission.Status)

	var stored models.Submission
	require.NoError(t, db.First(&stored, sub.ID).Error)
	assert.Equal(t, models.StatusUnderReview, stored.Status)
}

func TestRepositoryUpsertKeepsApprovedStatus(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	sub := createTestSubmission(t, db, 1)
	require.NoError(t, db.Model(sub).Update("status", models.StatusApproved).Error)

	_, err := repo.UpsertWithAggregate(context.Background(), sub.ID, 10, RatingInput{Score: 5})
	require.NoError(t, err)

	var stored models.Submission
	require.NoError(t, db.First(&stored, sub.ID).Error)
	assert.Equal(t, models.StatusApproved, stored.Status)
}

func TestRepositoryGetByPair(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	sub := createTestSubmission(t, db, 1)
	ctx := context.Background()

	_, err := repo.GetByPair(ctx, sub.ID, 10)
	assert.ErrorIs(t, err, ErrRatingNotFound)

	_, err = repo.UpsertWithAggregate(ctx, sub.ID, 10, RatingInput{Score: 4})
	require.NoError(t, err)

	rating, err := repo.GetByPair(ctx, sub.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, 4, rating.Score)
}

func TestRepositoryListByLabel(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		sub := createTestSubmission(t, db, uint(i+1))
		_, err := repo.UpsertWithAggregate(ctx, sub.ID, 10, RatingInput{Score: 3})
		require.NoError(t, err)
	}
	other := createTestSubmission(t, db, 99)
	_, err := repo.UpsertWithAggregate(ctx, other.ID, 20, RatingInput{Score: 5})
	require.NoError(t, err)

	list, total, err := repo.ListByLabel(ctx, 10, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, list, 3)

	list, total, err = repo.ListByLabel(ctx, 10, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, list, 2)
}
