package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/labelreader/label-api/internal/models"
	"github.com/labelreader/label-api/internal/services/profiles"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(&models.Submission{}, &models.Rating{}, &models.PlayEvent{}, &models.ArtistProfile{}, &models.LabelProfile{})
	require.NoError(t, err)

	return db
}

func newTestService(db *gorm.DB) *Service {
	return NewService(NewRepository(db), profiles.NewRepository(db), DefaultOptions())
}

func seedSubmission(t *testing.T, db *gorm.DB, artistID uint, title, genre, status string, avg float64, totalRatings, playCount int) *models.Submission {
	sub := &models.Submission{
		ArtistID:      artistID,
		Title:         title,
		ArtistName:    "Artist",
		Genre:         genre,
		AudioRef:      "blob.mp3",
		Status:        status,
		Published:     true,
		AverageRating: avg,
		TotalRatings:  totalRatings,
		PlayCount:     playCount,
	}
	require.NoError(t, db.Create(sub).Error)
	return sub
}

func seedRating(t *testing.T, db *gorm.DB, submissionID, labelID uint, score int) {
	require.NoError(t, db.Create(&models.Rating{SubmissionID: submissionID, LabelID: labelID, Score: score}).Error)
}

func seedPlay(t *testing.T, db *gorm.DB, submissionID uint, playedAt time.Time) {
	require.NoError(t, db.Create(&models.PlayEvent{SubmissionID: submissionID, PlayedAt: playedAt}).Error)
}

func TestForArtistAggregatesTotals(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(db)
	ctx := context.Background()

	rated := seedSubmission(t, db, 1, "One", "techno", models.StatusUnderReview, 4.5, 2, 0)
	unrated := seedSubmission(t, db, 1, "Two", "techno", models.StatusPending, 0, 0, 0)
	seedSubmission(t, db, 2, "Other", "house", models.StatusPending, 0, 0, 0)

	seedRating(t, db, rated.ID, 10, 4)
	seedRating(t, db, rated.ID, 11, 5)
	now := time.Now().UTC()
	seedPlay(t, db, rated.ID, now)
	seedPlay(t, db, unrated.ID, now)

	view, err := svc.ForArtist(ctx, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), view.TotalSubmissions)
	assert.Equal(t, int64(2), view.TotalPlays)
	assert.Equal(t, int64(2), view.TotalRatings)
	// Unrated submissions are excluded from the mean
	assert.Equal(t, 4.5, view.AverageRating)
}

func TestForArtistEmptyHasZeroes(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(db)

	view, err := svc.ForArtist(context.Background(), 99, 0)
	require.NoError(t, err)
	assert.Zero(t, view.TotalSubmissions)
	assert.Zero(t, view.TotalPlays)
	assert.Zero(t, view.TotalRatings)
	assert.Zero(t, view.AverageRating)
	assert.Empty(t, view.PlaysByDate)
	assert.Empty(t, view.TopSubmissions)
}

func TestForArtistPlaysByDateWindow(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(db)
	sub := seedSubmission(t, db, 1, "One", "techno", models.StatusPending, 0, 0, 0)

	now := time.Now().UTC()
	seedPlay(t, db, sub.ID, now)
	seedPlay(t, db, sub.ID, now)
	seedPlay(t, db, sub.ID, now.AddDate(0, 0, -2))
	// Outside a 7-day window
	seedPlay(t, db, sub.ID, now.AddDate(0, 0, -30))

	view, err := svc.ForArtist(context.Background(), 1, 7)
	require.NoError(t, err)
	require.Len(t, view.PlaysByDate, 2)
	// Ascending by date
	assert.Equal(t, int64(1), view.PlaysByDate[0].Plays)
	assert.Equal(t, int64(2), view.PlaysByDate[1].Plays)
	assert.Less(t, view.PlaysByDate[0].Date, view.PlaysByDate[1].Date)
}

func TestForArtistTopSubmissionsCapped(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(db)

	for i := 0; i < 7; i++ {
		seedSubmission(t, db, 1, "Track", "techno", models.StatusPending, 0, 0, i*10)
	}

	view, err := svc.ForArtist(context.Background(), 1, 0)
	require.NoError(t, err)
	require.Len(t, view.TopSubmissions, 5)
	assert.Equal(t, 60, view.TopSubmissions[0].PlayCount)
	assert.Equal(t, 20, view.TopSubmissions[4].PlayCount)
}

func TestForLabelTotalsAndGenres(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(db)

	techno1 := seedSubmission(t, db, 1, "One", "techno", models.StatusUnderReview, 0, 0, 0)
	techno2 := seedSubmission(t, db, 1, "Two", "techno", models.StatusUnderReview, 0, 0, 0)
	house := seedSubmission(t, db, 2, "Three", "house", models.StatusUnderReview, 0, 0, 0)

	seedRating(t, db, techno1.ID, 10, 5)
	seedRating(t, db, techno2.ID, 10, 4)
	seedRating(t, db, house.ID, 10, 2)
	// Another label's rating stays out of label 10's view
	seedRating(t, db, house.ID, 11, 1)

	view, err := svc.ForLabel(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), view.TotalReviews)
	assert.Equal(t, 3.67, view.AverageRatingGiven)

	require.Len(t, view.ReviewsByGenre, 2)
	assert.Equal(t, "techno", view.ReviewsByGenre[0].Genre)
	assert.Equal(t, int64(2), view.ReviewsByGenre[0].Count)

	require.Len(t, view.RecentlyReviewed, 3)
	assert.Equal(t, house.ID, view.RecentlyReviewed[0].SubmissionID)
}

func TestForLabelNoReviews(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(db)

	view, err := svc.ForLabel(context.Background(), 77)
	require.NoError(t, err)
	assert.Zero(t, view.TotalReviews)
	assert.Zero(t, view.AverageRatingGiven)
	assert.Empty(t, view.ReviewsByGenre)
	assert.Empty(t, view.RecentlyReviewed)
}

func TestForPlatformCountsAndDistribution(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(db)

	require.NoError(t, db.Create(&models.ArtistProfile{UserID: 1, ArtistName: "A"}).Error)
	require.NoError(t, db.Create(&models.ArtistProfile{UserID: 2, ArtistName: "B"}).Error)
	require.NoError(t, db.Create(&models.LabelProfile{UserID: 10, LabelName: "L"}).Error)

	seedSubmission(t, db, 1, "One", "techno", models.StatusApproved, 4.5, 2, 100)
	seedSubmission(t, db, 1, "Two", "techno", models.StatusApproved, 4.5, 5, 50)
	sub := seedSubmission(t, db, 2, "Three", "house", models.StatusPending, 5.0, 1, 500)
	seedRating(t, db, sub.ID, 10, 5)
	seedPlay(t, db, sub.ID, time.Now().UTC())

	view, err := svc.ForPlatform(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), view.TotalArtists)
	assert.Equal(t, int64(1), view.TotalLabels)
	assert.Equal(t, int64(3), view.TotalSubmissions)
	assert.Equal(t, int64(1), view.TotalRatings)
	assert.Equal(t, int64(1), view.TotalPlays)

	require.Len(t, view.GenreDistribution, 2)
	var sum float64
	for _, share := range view.GenreDistribution {
		sum += share.Percentage
	}
	assert.InDelta(t, 100.0, sum, 0.02)
	assert.Equal(t, "techno", view.GenreDistribution[0].Genre)
	assert.InDelta(t, 66.67, view.GenreDistribution[0].Percentage, 0.001)

	// Only APPROVED submissions rank; ties on average break by rating count
	require.Len(t, view.TopRated, 2)
	assert.Equal(t, "Two", view.TopRated[0].Title)
	assert.Equal(t, "One", view.TopRated[1].Title)

	require.Len(t, view.MostPlayed, 2)
	assert.Equal(t, "One", view.MostPlayed[0].Title)
}

func TestForPlatformEmpty(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(db)

	view, err := svc.ForPlatform(context.Background())
	require.NoError(t, err)
	assert.Zero(t, view.TotalSubmissions)
	assert.Empty(t, view.GenreDistribution)
	assert.Empty(t, view.TopRated)
	assert.Empty(t, view.MostPlayed)
}

func TestWindowClamping(t *testing.T) {
	svc := NewService(nil, nil, Options{DefaultWindowDays: 30, MaxWindowDays: 90})
	assert.Equal(t, 30, svc.options.DefaultWindowDays)
	assert.Equal(t, 90, svc.options.MaxWindowDays)

	// Max below default gets raised to the default
	svc = NewService(nil, nil, Options{DefaultWindowDays: 30, MaxWindowDays: 7})
	assert.Equal(t, 30, svc.options.MaxWindowDays)
}
