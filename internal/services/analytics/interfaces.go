package analytics

import (
	"context"
	"time"

	"github.com/labelreader/label-api/internal/models"
)

// DailyPlays is one day's play volume within the requested window
type DailyPlays struct {
	Date  string `json:"date"`
	Plays int64  `json:"plays"`
}

// GenreCount pairs a genre with a row count
type GenreCount struct {
	Genre string `json:"genre"`
	Count int64  `json:"count"`
}

// GenreShare adds this genre's share of all submissions
type GenreShare struct {
	Genre      string  `json:"genre"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
}

// ReviewedSubmission is one entry in a label's recent review history
type ReviewedSubmission struct {
	SubmissionID uint      `json:"submission_id"`
	Title        string    `json:"title"`
	ArtistName   string    `json:"artist_name"`
	Genre        string    `json:"genre"`
	Score        int       `json:"score"`
	ReviewedAt   time.Time `json:"reviewed_at"`
}

// ArtistAnalytics is the per-artist dashboard view
type ArtistAnalytics struct {
	TotalSubmissions int64               `json:"total_submissions"`
	TotalPlays       int64               `json:"total_plays"`
	AverageRating    float64             `json:"average_rating"`
	TotalRatings     int64               `json:"total_ratings"`
	PlaysByDate      []DailyPlays        `json:"plays_by_date"`
	TopSubmissions   []models.Submission `json:"top_submissions"`
}

// LabelAnalytics is the per-label dashboard view
type LabelAnalytics struct {
	TotalReviews       int64                `json:"total_reviews"`
	AverageRatingGiven float64              `json:"average_rating_given"`
	ReviewsByGenre     []GenreCount         `json:"reviews_by_genre"`
	RecentlyReviewed   []ReviewedSubmission `json:"recently_reviewed"`
}

// PlatformAnalytics is the global dashboard view
type PlatformAnalytics struct {
	TotalArtists      int64               `json:"total_artists"`
	TotalLabels       int64               `json:"total_labels"`
	TotalSubmissions  int64               `json:"total_submissions"`
	TotalRatings      int64               `json:"total_ratings"`
	TotalPlays        int64               `json:"total_plays"`
	GenreDistribution []GenreShare        `json:"genre_distribution"`
	TopRated          []models.Submission `json:"top_rated"`
	MostPlayed        []models.Submission `json:"most_played"`
}

// AnalyticsRepository defines the read-only query surface behind the views
type AnalyticsRepository interface {
	ArtistTotals(ctx context.Context, artistID uint) (submissions, plays, ratings int64, err error)
	ArtistAverageRating(ctx context.Context, artistID uint) (float64, error)
	PlaysByDate(ctx context.Context, artistID uint, since time.Time) ([]DailyPlays, error)
	TopSubmissionsByPlays(ctx context.Context, artistID uint, limit int) ([]models.Submission, error)

	LabelReviewTotals(ctx context.Context, labelID uint) (reviews int64, average float64, err error)
	ReviewsByGenre(ctx context.Context, labelID uint) ([]GenreCount, error)
	RecentlyReviewed(ctx context.Context, labelID uint, limit int) ([]ReviewedSubmission, error)

	PlatformTotals(ctx context.Context) (submissions, ratings, plays int64, err error)
	GenreDistribution(ctx context.Context) ([]GenreShare, error)
	TopRated(ctx context.Context, limit int) ([]models.Submission, error)
	MostPlayed(ctx context.Context, limit int) ([]models.Submission, error)
}

// AnalyticsService defines the business logic interface for the three
// dashboard views
type AnalyticsService interface {
	ForArtist(ctx context.Context, artistID uint, windowDays int) (*ArtistAnalytics, error)
	ForLabel(ctx context.Context, labelID uint) (*LabelAnalytics, error)
	ForPlatform(ctx context.Context) (*PlatformAnalytics, error)
}
