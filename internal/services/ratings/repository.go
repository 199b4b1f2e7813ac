package ratings

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/labelreader/label-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository struct {
	db *gorm.DB
}

// Ensure Repository implements RatingRepository interface
var _ RatingRepository = (*Repository)(nil)

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// UpsertWithAggregate runs the whole upsert-recompute-update sequence in one
// transaction with the submission row locked. No reader can observe the new
// rating row without the matching average/count, and two labels rating the
// same submission serialize on the row lock instead of losing an update.
func (r *Repository) UpsertWithAggregate(ctx context.Context, submissionID, labelID uint, input RatingInput) (*UpsertResult, error) {
	result := &UpsertResult{}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var submission models.Submission
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&submission, submissionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NewNotFoundError("submission", submissionID)
			}
			return fmt.Errorf("locking submission: %w", err)
		}

		var rating models.Rating
		err := tx.Where("submission_id = ? AND label_id = ?", submissionID, labelID).
			First(&rating).Error
		switch {
		case err == nil:
			result.IsNew = false
		case errors.Is(err, gorm.ErrRecordNotFound):
			result.IsNew = true
			rating = models.Rating{SubmissionID: submissionID, LabelID: labelID}
		default:
			return fmt.Errorf("looking up rating: %w", err)
		}

		rating.Score = input.Score
		rating.ReviewText = input.ReviewText
		rating.Interested = input.Interested
		rating.ListenedSeconds = input.ListenedSeconds

		if err := tx.Save(&rating).Error; err != nil {
			return fmt.Errorf("saving rating: %w", err)
		}

		average, count, err := aggregateForSubmission(tx, submissionID)
		if err != nil {
			return err
		}

		updates := map[string]interface{}{
			"average_rating": average,
			"total_ratings":  count,
		}
		// The first rating pulls a pending submission into review
		if submission.Status == models.StatusPending {
			updates["status"] = models.StatusUnderReview
			submission.Status = models.StatusUnderReview
		}

		if err := tx.Model(&submission).Updates(updates).Error; err != nil {
			return fmt.Errorf("updating submission aggregate: %w", err)
		}

		submission.AverageRating = average
		submission.TotalRatings = count
		result.Rating = &rating
		result.Submission = &submission
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// aggregateForSubmission recomputes the mean and count over the current
// rating rows, with the mean rounded half-up to 2 decimals.
func aggregateForSubmission(tx *gorm.DB, submissionID uint) (float64, int, error) {
	var count int64
	if err := tx.Model(&models.Rating{}).
		Where("submission_id = ?", submissionID).
		Count(&count).Error; err != nil {
		return 0, 0, fmt.Errorf("counting ratings: %w", err)
	}
	if count == 0 {
		return 0, 0, nil
	}

	var average float64
	if err := tx.Model(&models.Rating{}).
		Select("AVG(score)").
		Where("submission_id = ?", submissionID).
		Scan(&average).Error; err != nil {
		return 0, 0, fmt.Errorf("averaging ratings: %w", err)
	}

	return math.Round(average*100) / 100, int(count), nil
}

func (r *Repository) GetByPair(ctx context.Context, submissionID, labelID uint) (*models.Rating, error) {
	var rating models.Rating
	if err := r.db.WithContext(ctx).
		Where("submission_id = ? AND label_id = ?", submissionID, labelID).
		First(&rating).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("rating", fmt.Sprintf("%d/%d", submissionID, labelID))
		}
		return nil, fmt.Errorf("getting rating: %w", err)
	}
	return &rating, nil
}

func (r *Repository) ListByLabel(ctx context.Context, labelID uint, page, limit int) ([]models.Rating, int64, error) {
	var list []models.Rating
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Rating{}).Where("label_id = ?", labelID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("counting label ratings: %w", err)
	}

	offset := (page - 1) * limit
	if err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("listing label ratings: %w", err)
	}

	return list, total, nil
}

func (r *Repository) CountForSubmission(ctx context.Context, submissionID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Rating{}).
		Where("submission_id = ?", submissionID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("counting submission ratings: %w", err)
	}
	return count, nil
}
