package profiles

import (
	"context"

	"github.com/labelreader/label-api/internal/models"
)

// ProfileRepository defines the interface for profile persistence
type ProfileRepository interface {
	GetArtistProfileByUserID(ctx context.Context, userID uint) (*models.ArtistProfile, error)
	GetLabelProfileByUserID(ctx context.Context, userID uint) (*models.LabelProfile, error)
	CreateArtistProfile(ctx context.Context, profile *models.ArtistProfile) error
	CreateLabelProfile(ctx context.Context, profile *models.LabelProfile) error
	UpdateArtistProfile(ctx context.Context, profile *models.ArtistProfile) error
	UpdateLabelProfile(ctx context.Context, profile *models.LabelProfile) error
	CountArtists(ctx context.Context) (int64, error)
	CountLabels(ctx context.Context) (int64, error)
	GetArtistSubmissionBreakdown(ctx context.Context, artistUserID uint) (*SubmissionBreakdown, error)
}

// SubmissionBreakdown is the per-status submission count for one artist,
// with the mean rating over submissions that have at least one rating.
type SubmissionBreakdown struct {
	Pending     int
	UnderReview int
	Approved    int
	Rejected    int
	MeanRating  float64
}

// Counters is the write path for the denormalized profile counters.
// Every service that touches a counter goes through this interface so the
// maintenance strategy can be swapped at construction time.
//
// Implementations are best-effort: a failed counter write is logged by the
// caller and never rolls back the primary operation.
type Counters interface {
	AddArtistSubmissions(ctx context.Context, artistUserID uint, delta int) error
	AddArtistPlays(ctx context.Context, artistUserID uint, delta int) error
	AddLabelReviews(ctx context.Context, labelUserID uint, delta int) error
}

// ProfileService defines the business logic interface for profile operations
type ProfileService interface {
	GetArtistProfile(ctx context.Context, userID uint) (*models.ArtistProfile, error)
	UpdateArtistProfile(ctx context.Context, userID uint, update ArtistProfileUpdate) (*models.ArtistProfile, error)
	GetLabelProfile(ctx context.Context, userID uint) (*models.LabelProfile, error)
	UpdateLabelProfile(ctx context.Context, userID uint, update LabelProfileUpdate) (*models.LabelProfile, error)
	ArtistStats(ctx context.Context, userID uint) (*ArtistStats, error)
}

// ArtistProfileUpdate carries the writable artist profile fields
type ArtistProfileUpdate struct {
	ArtistName      *string `json:"artist_name,omitempty"`
	Genre           *string `json:"genre,omitempty"`
	WebsiteURL      *string `json:"website_url,omitempty"`
	SpotifyURL      *string `json:"spotify_url,omitempty"`
	SoundcloudURL   *string `json:"soundcloud_url,omitempty"`
	InstagramHandle *string `json:"instagram_handle,omitempty"`
	TwitterHandle   *string `json:"twitter_handle,omitempty"`
}

// LabelProfileUpdate carries the writable label profile fields
type LabelProfileUpdate struct {
	LabelName        *string `json:"label_name,omitempty"`
	CompanyName      *string `json:"company_name,omitempty"`
	Country          *string `json:"country,omitempty"`
	WebsiteURL       *string `json:"website_url,omitempty"`
	GenresInterested *string `json:"genres_interested,omitempty"`
}

// ArtistStats is the artist's counter snapshot with a status breakdown
type ArtistStats struct {
	TotalSubmissions       int     `json:"total_submissions"`
	TotalPlays             int     `json:"total_plays"`
	AverageRating          float64 `json:"average_rating"`
	PendingSubmissions     int     `json:"pending_submissions"`
	ApprovedSubmissions    int     `json:"approved_submissions"`
	RejectedSubmissions    int     `json:"rejected_submissions"`
	UnderReviewSubmissions int     `json:"under_review_submissions"`
}
