package analytics

import (
	"context"
	"time"

	"github.com/labelreader/label-api/internal/services/profiles"
)

// Options bounds the analytics windows and list sizes
type Options struct {
	DefaultWindowDays int
	MaxWindowDays     int
	TopSubmissions    int
	TopRanked         int
}

// DefaultOptions mirrors the settings the server uses out of the box
func DefaultOptions() Options {
	return Options{
		DefaultWindowDays: 30,
		MaxWindowDays:     365,
		TopSubmissions:    5,
		TopRanked:         10,
	}
}

// Service implements the AnalyticsService interface
type Service struct {
	repository AnalyticsRepository
	profiles   profiles.ProfileRepository
	options    Options

	// now is swappable for deterministic window tests
	now func() time.Time
}

// NewService creates a new analytics service
func NewService(repository AnalyticsRepository, profileRepo profiles.ProfileRepository, options Options) *Service {
	if options.DefaultWindowDays < 1 {
		options.DefaultWindowDays = 30
	}
	if options.MaxWindowDays < options.DefaultWindowDays {
		options.MaxWindowDays = options.DefaultWindowDays
	}
	if options.TopSubmissions < 1 {
		options.TopSubmissions = 5
	}
	if options.TopRanked < 1 {
		options.TopRanked = 10
	}
	return &Service{
		repository: repository,
		profiles:   profileRepo,
		options:    options,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// ForArtist builds the artist dashboard. windowDays outside [1, max] is
// clamped rather than rejected.
func (s *Service) ForArtist(ctx context.Context, artistID uint, windowDays int) (*ArtistAnalytics, error) {
	if windowDays < 1 {
		windowDays = s.options.DefaultWindowDays
	}
	if windowDays > s.options.MaxWindowDays {
		windowDays = s.options.MaxWindowDays
	}

	submissions, plays, ratings, err := s.repository.ArtistTotals(ctx, artistID)
	if err != nil {
		return nil, err
	}

	average, err := s.repository.ArtistAverageRating(ctx, artistID)
	if err != nil {
		return nil, err
	}

	since := s.now().AddDate(0, 0, -windowDays)
	byDate, err := s.repository.PlaysByDate(ctx, artistID, since)
	if err != nil {
		return nil, err
	}

	top, err := s.repository.TopSubmissionsByPlays(ctx, artistID, s.options.TopSubmissions)
	if err != nil {
		return nil, err
	}

	return &ArtistAnalytics{
		TotalSubmissions: submissions,
		TotalPlays:       plays,
		AverageRating:    average,
		TotalRatings:     ratings,
		PlaysByDate:      byDate,
		TopSubmissions:   top,
	}, nil
}

func (s *Service) ForLabel(ctx context.Context, labelID uint) (*LabelAnalytics, error) {
	reviews, average, err := s.repository.LabelReviewTotals(ctx, labelID)
	if err != nil {
		return nil, err
	}

	byGenre, err := s.repository.ReviewsByGenre(ctx, labelID)
	if err != nil {
		return nil, err
	}

	recent, err := s.repository.RecentlyReviewed(ctx, labelID, s.options.TopSubmissions)
	if err != nil {
		return nil, err
	}

	return &LabelAnalytics{
		TotalReviews:       reviews,
		AverageRatingGiven: average,
		ReviewsByGenre:     byGenre,
		RecentlyReviewed:   recent,
	}, nil
}

func (s *Service) ForPlatform(ctx context.Context) (*PlatformAnalytics, error) {
	submissions, ratings, plays, err := s.repository.PlatformTotals(ctx)
	if err != nil {
		return nil, err
	}

	artists, err := s.profiles.CountArtists(ctx)
	if err != nil {
		return nil, err
	}
	labels, err := s.profiles.CountLabels(ctx)
	if err != nil {
		return nil, err
	}

	genres, err := s.repository.GenreDistribution(ctx)
	if err != nil {
		return nil, err
	}

	topRated, err := s.repository.TopRated(ctx, s.options.TopRanked)
	if err != nil {
		return nil, err
	}

	mostPlayed, err := s.repository.MostPlayed(ctx, s.options.TopRanked)
	if err != nil {
		return nil, err
	}

	return &PlatformAnalytics{
		TotalArtists:      artists,
		TotalLabels:       labels,
		TotalSubmissions:  submissions,
		TotalRatings:      ratings,
		TotalPlays:        plays,
		GenreDistribution: genres,
		TopRated:          topRated,
		MostPlayed:        mostPlayed,
	}, nil
}
