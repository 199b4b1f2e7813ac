package profiles

import (
	"context"
	"errors"
	"fmt"

	"github.com/labelreader/label-api/internal/models"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

// Ensure Repository implements ProfileRepository interface
var _ ProfileRepository = (*Repository)(nil)

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetArtistProfileByUserID(ctx context.Context, userID uint) (*models.ArtistProfile, error) {
	var profile models.ArtistProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("artist", userID)
		}
		return nil, fmt.Errorf("getting artist profile: %w", err)
	}
	return &profile, nil
}

func (r *Repository) GetLabelProfileByUserID(ctx context.Context, userID uint) (*models.LabelProfile, error) {
	var profile models.LabelProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("label", userID)
		}
		return nil, fmt.Errorf("getting label profile: %w", err)
	}
	return &profile, nil
}

func (r *Repository) CreateArtistProfile(ctx context.Context, profile *models.ArtistProfile) error {
	if err := r.db.WithContext(ctx).Create(profile).Error; err != nil {
		return fmt.Errorf("creating artist profile: %w", err)
	}
	return nil
}

func (r *Repository) CreateLabelProfile(ctx context.Context, profile *models.LabelProfile) error {
	if err := r.db.WithContext(ctx).Create(profile).Error; err != nil {
		return fmt.Errorf("creating label profile: %w", err)
	}
	return nil
}

func (r *Repository) UpdateArtistProfile(ctx context.Context, profile *models.ArtistProfile) error {
	result := r.db.WithContext(ctx).Save(profile)
	if result.Error != nil {
		return fmt.Errorf("updating artist profile: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return NewNotFoundError("artist", profile.UserID)
	}
	return nil
}

func (r *Repository) UpdateLabelProfile(ctx context.Context, profile *models.LabelProfile) error {
	result := r.db.WithContext(ctx).Save(profile)
	if result.Error != nil {
		return fmt.Errorf("updating label profile: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return NewNotFoundError("label", profile.UserID)
	}
	return nil
}

func (r *Repository) CountArtists(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.ArtistProfile{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("counting artists: %w", err)
	}
	return count, nil
}

func (r *Repository) CountLabels(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.LabelProfile{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("counting labels: %w", err)
	}
	return count, nil
}

func (r *Repository) GetArtistSubmissionBreakdown(ctx context.Context, artistUserID uint) (*SubmissionBreakdown, error) {
	var rows []struct {
		Status string
		Count  int
	}
	if err := r.db.WithContext(ctx).
		Model(&models.Submission{}).
		Select("status, COUNT(*) as count").
		Where("artist_id = ?", artistUserID).
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("counting submissions by status: %w", err)
	}

	breakdown := &SubmissionBreakdown{}
	for _, row := range rows {
		switch row.Status {
		case models.StatusPending:
			breakdown.Pending = row.Count
		case models.StatusUnderReview:
			breakdown.UnderReview = row.Count
		case models.StatusApproved:
			breakdown.Approved = row.Count
		case models.StatusRejected:
			breakdown.Rejected = row.Count
		}
	}

	// Unrated submissions carry average_rating 0 and are excluded from the mean
	var mean *float64
	if err := r.db.WithContext(ctx).
		Model(&models.Submission{}).
		Select("AVG(average_rating)").
		Where("artist_id = ? AND average_rating > 0", artistUserID).
		Scan(&mean).Error; err != nil {
		return nil, fmt.Errorf("averaging submission ratings: %w", err)
	}
	if mean != nil {
		breakdown.MeanRating = *mean
	}

	return breakdown, nil
}
