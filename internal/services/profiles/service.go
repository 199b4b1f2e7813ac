package profiles

import (
	"context"
	"errors"
	"math"

	"github.com/labelreader/label-api/internal/models"
)

// Service implements the ProfileService interface
type Service struct {
	repository ProfileRepository
}

var _ ProfileService = (*Service)(nil)

// NewService creates a new profile service
func NewService(repository ProfileRepository) *Service {
	return &Service{repository: repository}
}

func (s *Service) GetArtistProfile(ctx context.Context, userID uint) (*models.ArtistProfile, error) {
	return s.repository.GetArtistProfileByUserID(ctx, userID)
}

// UpdateArtistProfile merges the supplied fields into the profile. A first
// update creates the profile row, so PUT behaves as an upsert.
func (s *Service) UpdateArtistProfile(ctx context.Context, userID uint, update ArtistProfileUpdate) (*models.ArtistProfile, error) {
	created := false
	profile, err := s.repository.GetArtistProfileByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, ErrProfileNotFound) {
			return nil, err
		}
		profile = &models.ArtistProfile{UserID: userID}
		created = true
	}

	if update.ArtistName != nil {
		profile.ArtistName = *update.ArtistName
	}
	if update.Genre != nil {
		profile.Genre = *update.Genre
	}
	if update.WebsiteURL != nil {
		profile.WebsiteURL = *update.WebsiteURL
	}
	if update.SpotifyURL != nil {
		profile.SpotifyURL = *update.SpotifyURL
	}
	if update.SoundcloudURL != nil {
		profile.SoundcloudURL = *update.SoundcloudURL
	}
	if update.InstagramHandle != nil {
		profile.InstagramHandle = *update.InstagramHandle
	}
	if update.TwitterHandle != nil {
		profile.TwitterHandle = *update.TwitterHandle
	}

	if created {
		if err := s.repository.CreateArtistProfile(ctx, profile); err != nil {
			return nil, err
		}
		return profile, nil
	}
	if err := s.repository.UpdateArtistProfile(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *Service) GetLabelProfile(ctx context.Context, userID uint) (*models.LabelProfile, error) {
	return s.repository.GetLabelProfileByUserID(ctx, userID)
}

func (s *Service) UpdateLabelProfile(ctx context.Context, userID uint, update LabelProfileUpdate) (*models.LabelProfile, error) {
	created := false
	profile, err := s.repository.GetLabelProfileByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, ErrProfileNotFound) {
			return nil, err
		}
		profile = &models.LabelProfile{UserID: userID}
		created = true
	}

	if update.LabelName != nil {
		profile.LabelName = *update.LabelName
	}
	if update.CompanyName != nil {
		profile.CompanyName = *update.CompanyName
	}
	if update.Country != nil {
		profile.Country = *update.Country
	}
	if update.WebsiteURL != nil {
		profile.WebsiteURL = *update.WebsiteURL
	}
	if update.GenresInterested != nil {
		profile.GenresInterested = *update.GenresInterested
	}

	if created {
		if err := s.repository.CreateLabelProfile(ctx, profile); err != nil {
			return nil, err
		}
		return profile, nil
	}
	if err := s.repository.UpdateLabelProfile(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *Service) ArtistStats(ctx context.Context, userID uint) (*ArtistStats, error) {
	profile, err := s.repository.GetArtistProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	breakdown, err := s.repository.GetArtistSubmissionBreakdown(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &ArtistStats{
		TotalSubmissions:       profile.TotalSubmissions,
		TotalPlays:             profile.TotalPlays,
		AverageRating:          math.Round(breakdown.MeanRating*100) / 100,
		PendingSubmissions:     breakdown.Pending,
		ApprovedSubmissions:    breakdown.Approved,
		RejectedSubmissions:    breakdown.Rejected,
		UnderReviewSubmissions: breakdown.UnderReview,
	}, nil
}
