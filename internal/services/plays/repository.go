package plays

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/labelreader/label-api/internal/models"
)

// Repository implements PlayRepository using GORM
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new play event repository
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// RecordPlay appends the event and increments the submission's play count.
// The counter update is a single SQL expression, so concurrent plays never
// lose increments.
func (r *Repository) RecordPlay(ctx context.Context, event *models.PlayEvent) (*models.Submission, error) {
	var submission models.Submission
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&submission, event.SubmissionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSubmissionNotFound
			}
			return fmt.Errorf("failed to get submission: %w", err)
		}
		if err := tx.Create(event).Error; err != nil {
			return fmt.Errorf("failed to record play event: %w", err)
		}
		if err := tx.Model(&models.Submission{}).
			Where("id = ?", event.SubmissionID).
			Update("play_count", gorm.Expr("play_count + 1")).Error; err != nil {
			return fmt.Errorf("failed to increment play count: %w", err)
		}
		submission.PlayCount++
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

func (r *Repository) ListForSubmission(ctx context.Context, submissionID uint, page, limit int) ([]models.PlayEvent, int64, error) {
	var events []models.PlayEvent
	var total int64

	query := r.db.WithContext(ctx).Model(&models.PlayEvent{}).Where("submission_id = ?", submissionID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count play events: %w", err)
	}

	offset := (page - 1) * limit
	err := query.Order("played_at DESC").Limit(limit).Offset(offset).Find(&events).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list play events: %w", err)
	}
	return events, total, nil
}

func (r *Repository) CountForSubmission(ctx context.Context, submissionID uint) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.PlayEvent{}).
		Where("submission_id = ?", submissionID).Count(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count play events: %w", err)
	}
	return total, nil
}
