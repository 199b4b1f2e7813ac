package profiles

import (
	"context"
	"fmt"

	"github.com/labelreader/label-api/internal/models"
	"gorm.io/gorm"
)

// CounterMode selects the counter maintenance strategy at construction
type CounterMode string

const (
	// CounterModeIncremental bumps counters with atomic in-place updates.
	// Cheap per write; a failed bump can leave a small drift versus the
	// true row counts.
	CounterModeIncremental CounterMode = "incremental"

	// CounterModeRecomputed refreshes counters from a COUNT(*) over the
	// source rows on every change. Drift-free but pays a count query per
	// write.
	CounterModeRecomputed CounterMode = "recomputed"
)

// NewCounters returns the counter strategy for the given mode
func NewCounters(db *gorm.DB, mode CounterMode) Counters {
	if mode == CounterModeRecomputed {
		return &RecomputedCounters{db: db}
	}
	return &IncrementalCounters{db: db}
}

// IncrementalCounters maintains profile counters with atomic in-place
// updates, floored at zero. A missing profile row is a silent no-op, the
// same way the submission write path treats counter maintenance.
type IncrementalCounters struct {
	db *gorm.DB
}

var _ Counters = (*IncrementalCounters)(nil)

func (c *IncrementalCounters) AddArtistSubmissions(ctx context.Context, artistUserID uint, delta int) error {
	return c.db.WithContext(ctx).
		Model(&models.ArtistProfile{}).
		Where("user_id = ?", artistUserID).
		Update("total_submissions", gorm.Expr("MAX(total_submissions + ?, 0)", delta)).Error
}

func (c *IncrementalCounters) AddArtistPlays(ctx context.Context, artistUserID uint, delta int) error {
	return c.db.WithContext(ctx).
		Model(&models.ArtistProfile{}).
		Where("user_id = ?", artistUserID).
		Update("total_plays", gorm.Expr("MAX(total_plays + ?, 0)", delta)).Error
}

func (c *IncrementalCounters) AddLabelReviews(ctx context.Context, labelUserID uint, delta int) error {
	return c.db.WithContext(ctx).
		Model(&models.LabelProfile{}).
		Where("user_id = ?", labelUserID).
		Update("total_reviews", gorm.Expr("MAX(total_reviews + ?, 0)", delta)).Error
}

// RecomputedCounters refreshes the affected counter from the source rows
// instead of applying a delta. The delta argument only signals that a change
// happened; the stored value always becomes the true count.
type RecomputedCounters struct {
	db *gorm.DB
}

var _ Counters = (*RecomputedCounters)(nil)

func (c *RecomputedCounters) AddArtistSubmissions(ctx context.Context, artistUserID uint, _ int) error {
	var count int64
	if err := c.db.WithContext(ctx).
		Model(&models.Submission{}).
		Where("artist_id = ?", artistUserID).
		Count(&count).Error; err != nil {
		return fmt.Errorf("recomputing submission count: %w", err)
	}
	return c.db.WithContext(ctx).
		Model(&models.ArtistProfile{}).
		Where("user_id = ?", artistUserID).
		Update("total_submissions", count).Error
}

func (c *RecomputedCounters) AddArtistPlays(ctx context.Context, artistUserID uint, _ int) error {
	var count int64
	if err := c.db.WithContext(ctx).
		Model(&models.PlayEvent{}).
		Joins("JOIN submissions ON submissions.id = play_events.submission_id").
		Where("submissions.artist_id = ?", artistUserID).
		Count(&count).Error; err != nil {
		return fmt.Errorf("recomputing play count: %w", err)
	}
	return c.db.WithContext(ctx).
		Model(&models.ArtistProfile{}).
		Where("user_id = ?", artistUserID).
		Update("total_plays", count).Error
}

func (c *RecomputedCounters) AddLabelReviews(ctx context.Context, labelUserID uint, _ int) error {
	var count int64
	if err := c.db.WithContext(ctx).
		Model(&models.Rating{}).
		Where("label_id = ?", labelUserID).
		Count(&count).Error; err != nil {
		return fmt.Errorf("recomputing review count: %w", err)
	}
	return c.db.WithContext(ctx).
		Model(&models.LabelProfile{}).
		Where("user_id = ?", labelUserID).
		Update("total_reviews", count).Error
}
