package analytics

import (
	"context"
	"fmt"
	"math"
	"time"

	"gorm.io/gorm"

	"github.com/labelreader/label-api/internal/models"
)

// Repository implements AnalyticsRepository using GORM. Every method is a
// read; the views never write.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new analytics repository
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) ArtistTotals(ctx context.Context, artistID uint) (int64, int64, int64, error) {
	var submissions int64
	err := r.db.WithContext(ctx).Model(&models.Submission{}).
		Where("artist_id = ?", artistID).Count(&submissions).Error
	if err != nil {
		return 0, 0, 0, fmt.Errorf("failed to count submissions: %w", err)
	}

	var plays int64
	err = r.db.WithContext(ctx).Model(&models.PlayEvent{}).
		Joins("JOIN submissions ON submissions.id = play_events.submission_id").
		Where("submissions.artist_id = ?", artistID).
		Count(&plays).Error
	if err != nil {
		return 0, 0, 0, fmt.Errorf("failed to count plays: %w", err)
	}

	var ratings int64
	err = r.db.WithContext(ctx).Model(&models.Rating{}).
		Joins("JOIN submissions ON submissions.id = ratings.submission_id").
		Where("submissions.artist_id = ?", artistID).
		Count(&ratings).Error
	if err != nil {
		return 0, 0, 0, fmt.Errorf("failed to count ratings: %w", err)
	}

	return submissions, plays, ratings, nil
}

// ArtistAverageRating averages only over submissions that have at least one
// rating. Unrated tracks don't drag the mean toward zero.
func (r *Repository) ArtistAverageRating(ctx context.Context, artistID uint) (float64, error) {
	var average float64
	err := r.db.WithContext(ctx).Model(&models.Submission{}).
		Where("artist_id = ? AND average_rating > 0", artistID).
		Select("COALESCE(AVG(average_rating), 0)").
		Scan(&average).Error
	if err != nil {
		return 0, fmt.Errorf("failed to compute average rating: %w", err)
	}
	return math.Round(average*100) / 100, nil
}

func (r *Repository) PlaysByDate(ctx context.Context, artistID uint, since time.Time) ([]DailyPlays, error) {
	var rows []DailyPlays
	err := r.db.WithContext(ctx).Model(&models.PlayEvent{}).
		Select("date(play_events.played_at) AS date, COUNT(*) AS plays").
		Joins("JOIN submissions ON submissions.id = play_events.submission_id").
		Where("submissions.artist_id = ? AND play_events.played_at >= ?", artistID, since).
		Group("date(play_events.played_at)").
		Order("date ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to group plays by date: %w", err)
	}
	return rows, nil
}

func (r *Repository) TopSubmissionsByPlays(ctx context.Context, artistID uint, limit int) ([]models.Submission, error) {
	var submissions []models.Submission
	err := r.db.WithContext(ctx).
		Where("artist_id = ?", artistID).
		Order("play_count DESC, created_at DESC").
		Limit(limit).
		Find(&submissions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list top submissions: %w", err)
	}
	return submissions, nil
}

func (r *Repository) LabelReviewTotals(ctx context.Context, labelID uint) (int64, float64, error) {
	var reviews int64
	err := r.db.WithContext(ctx).Model(&models.Rating{}).
		Where("label_id = ?", labelID).Count(&reviews).Error
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count reviews: %w", err)
	}
	if reviews == 0 {
		return 0, 0, nil
	}

	var average float64
	err = r.db.WithContext(ctx).Model(&models.Rating{}).
		Where("label_id = ?", labelID).
		Select("COALESCE(AVG(score), 0)").
		Scan(&average).Error
	if err != nil {
		return 0, 0, fmt.Errorf("failed to compute average score: %w", err)
	}
	return reviews, math.Round(average*100) / 100, nil
}

func (r *Repository) ReviewsByGenre(ctx context.Context, labelID uint) ([]GenreCount, error) {
	var rows []GenreCount
	err := r.db.WithContext(ctx).Model(&models.Rating{}).
		Select("submissions.genre AS genre, COUNT(*) AS count").
		Joins("JOIN submissions ON submissions.id = ratings.submission_id").
		Where("ratings.label_id = ?", labelID).
		Group("submissions.genre").
		Order("count DESC, genre ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to group reviews by genre: %w", err)
	}
	return rows, nil
}

func (r *Repository) RecentlyReviewed(ctx context.Context, labelID uint, limit int) ([]ReviewedSubmission, error) {
	var rows []ReviewedSubmission
	err := r.db.WithContext(ctx).Model(&models.Rating{}).
		Select("ratings.submission_id AS submission_id, submissions.title AS title, submissions.artist_name AS artist_name, submissions.genre AS genre, ratings.score AS score, ratings.updated_at AS reviewed_at").
		Joins("JOIN submissions ON submissions.id = ratings.submission_id").
		Where("ratings.label_id = ?", labelID).
		Order("ratings.updated_at DESC, ratings.id DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recent reviews: %w", err)
	}
	return rows, nil
}

func (r *Repository) PlatformTotals(ctx context.Context) (int64, int64, int64, error) {
	var submissions, ratings, plays int64
	if err := r.db.WithContext(ctx).Model(&models.Submission{}).Count(&submissions).Error; err != nil {
		return 0, 0, 0, fmt.Errorf("failed to count submissions: %w", err)
	}
	if err := r.db.WithContext(ctx).Model(&models.Rating{}).Count(&ratings).Error; err != nil {
		return 0, 0, 0, fmt.Errorf("failed to count ratings: %w", err)
	}
	if err := r.db.WithContext(ctx).Model(&models.PlayEvent{}).Count(&plays).Error; err != nil {
		return 0, 0, 0, fmt.Errorf("failed to count plays: %w", err)
	}
	return submissions, ratings, plays, nil
}

// GenreDistribution reports each genre's share of all submissions.
// Percentages are rounded to two decimals; an empty platform yields an
// empty slice rather than a division by zero.
func (r *Repository) GenreDistribution(ctx context.Context) ([]GenreShare, error) {
	var rows []GenreShare
	err := r.db.WithContext(ctx).Model(&models.Submission{}).
		Select("genre, COUNT(*) AS count").
		Group("genre").
		Order("count DESC, genre ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to group submissions by genre: %w", err)
	}

	var total int64
	for _, row := range rows {
		total += row.Count
	}
	if total == 0 {
		return rows, nil
	}
	for i := range rows {
		rows[i].Percentage = math.Round(float64(rows[i].Count)/float64(total)*10000) / 100
	}
	return rows, nil
}

func (r *Repository) TopRated(ctx context.Context, limit int) ([]models.Submission, error) {
	var submissions []models.Submission
	err := r.db.WithContext(ctx).
		Where("status = ? AND total_ratings > 0", models.StatusApproved).
		Order("average_rating DESC, total_ratings DESC").
		Limit(limit).
		Find(&submissions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list top rated submissions: %w", err)
	}
	return submissions, nil
}

func (r *Repository) MostPlayed(ctx context.Context, limit int) ([]models.Submission, error) {
	var submissions []models.Submission
	err := r.db.WithContext(ctx).
		Where("status = ?", models.StatusApproved).
		Order("play_count DESC, created_at DESC").
		Limit(limit).
		Find(&submissions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list most played submissions: %w", err)
	}
	return submissions, nil
}
