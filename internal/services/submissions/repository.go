package submissions

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/labelreader/label-api/internal/models"
)

// sortColumns whitelists the fields the review listing may order by
var sortColumns = map[string]string{
	"created_at":     "created_at",
	"title":          "title",
	"average_rating": "average_rating",
	"play_count":     "play_count",
	"bpm":            "bpm",
}

// Repository implements SubmissionRepository using GORM
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new submission repository
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, submission *models.Submission) error {
	if err := r.db.WithContext(ctx).Create(submission).Error; err != nil {
		return fmt.Errorf("failed to create submission: %w", err)
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id uint) (*models.Submission, error) {
	var submission models.Submission
	err := r.db.WithContext(ctx).First(&submission, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}
	return &submission, nil
}

func (r *Repository) ListByArtist(ctx context.Context, artistID uint, page, limit int) ([]models.Submission, int64, error) {
	var submissions []models.Submission
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Submission{}).Where("artist_id = ?", artistID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count submissions: %w", err)
	}

	offset := (page - 1) * limit
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&submissions).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list submissions: %w", err)
	}
	return submissions, total, nil
}

func (r *Repository) ListForReview(ctx context.Context, filter ListFilter, page PageRequest) ([]models.Submission, int64, error) {
	var submissions []models.Submission
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Submission{}).Where("published = ?", true)
	if filter.Genre != "" {
		query = query.Where("genre = ?", filter.Genre)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count submissions: %w", err)
	}

	column, ok := sortColumns[page.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if page.SortAsc {
		direction = "ASC"
	}

	offset := (page.Page - 1) * page.Size
	err := query.Order(column + " " + direction).Limit(page.Size).Offset(offset).Find(&submissions).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list submissions for review: %w", err)
	}
	return submissions, total, nil
}

// DeleteCascade removes the submission row along with its ratings and play
// events. All three deletes commit or none do, so aggregates never point at
// a missing submission.
func (r *Repository) DeleteCascade(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var submission models.Submission
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&submission, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSubmissionNotFound
			}
			return fmt.Errorf("failed to lock submission: %w", err)
		}
		if err := tx.Where("submission_id = ?", id).Delete(&models.Rating{}).Error; err != nil {
			return fmt.Errorf("failed to delete ratings: %w", err)
		}
		if err := tx.Where("submission_id = ?", id).Delete(&models.PlayEvent{}).Error; err != nil {
			return fmt.Errorf("failed to delete play events: %w", err)
		}
		if err := tx.Delete(&models.Submission{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete submission: %w", err)
		}
		return nil
	})
	return err
}

// UpdateStatus validates the transition against the current status under a
// row lock, then applies it.
func (r *Repository) UpdateStatus(ctx context.Context, id uint, newStatus string) (*models.Submission, error) {
	var submission models.Submission
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&submission, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSubmissionNotFound
			}
			return fmt.Errorf("failed to lock submission: %w", err)
		}
		if !models.CanTransition(submission.Status, newStatus) {
			return &TransitionError{From: submission.Status, To: newStatus}
		}
		if err := tx.Model(&submission).Update("status", newStatus).Error; err != nil {
			return fmt.Errorf("failed to update status: %w", err)
		}
		submission.Status = newStatus
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &submission, nil
}
