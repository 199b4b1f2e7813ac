package types

import (
	"github.com/labelreader/label-api/internal/models"
	"github.com/labelreader/label-api/internal/services/analytics"
)

// Status constants for API responses
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// BaseResponse contains fields common to all API responses
type BaseResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ErrorResponse for detailed error information
type ErrorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Error   string      `json:"error,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

// SingleSubmissionResponse for getting one submission
type SingleSubmissionResponse struct {
	BaseResponse
	Submission *models.Submission `json:"submission"`
}

// SubmissionsResponse for submission lists
type SubmissionsResponse struct {
	BaseResponse
	Submissions []models.Submission `json:"submissions"`
	Count       int                 `json:"count"`
	Total       int64               `json:"total"`
	Page        int                 `json:"page"`
}

// SingleRatingResponse for getting or writing one rating
type SingleRatingResponse struct {
	BaseResponse
	Rating *models.Rating `json:"rating"`
	// Submission carries the post-aggregation state after an upsert
	Submission *models.Submission `json:"submission,omitempty"`
}

// RatingsResponse for a label's rating history
type RatingsResponse struct {
	BaseResponse
	Ratings []models.Rating `json:"ratings"`
	Count   int             `json:"count"`
	Total   int64           `json:"total"`
	Page    int             `json:"page"`
}

// PlayResponse confirms a recorded play
type PlayResponse struct {
	BaseResponse
	SubmissionID uint `json:"submission_id"`
	PlayCount    int  `json:"play_count"`
}

// ArtistAnalyticsResponse for the artist dashboard
type ArtistAnalyticsResponse struct {
	BaseResponse
	Analytics *analytics.ArtistAnalytics `json:"analytics"`
}

// LabelAnalyticsResponse for the label dashboard
type LabelAnalyticsResponse struct {
	BaseResponse
	Analytics *analytics.LabelAnalytics `json:"analytics"`
}

// PlatformAnalyticsResponse for the global dashboard
type PlatformAnalyticsResponse struct {
	BaseResponse
	Analytics *analytics.PlatformAnalytics `json:"analytics"`
}

// ArtistProfileResponse for artist profile operations
type ArtistProfileResponse struct {
	BaseResponse
	Profile *models.ArtistProfile `json:"profile"`
}

// LabelProfileResponse for label profile operations
type LabelProfileResponse struct {
	BaseResponse
	Profile *models.LabelProfile `json:"profile"`
}

// NotificationsResponse for the notification inbox
type NotificationsResponse struct {
	BaseResponse
	Notifications []models.Notification `json:"notifications"`
	Count         int                   `json:"count"`
	Total         int64                 `json:"total"`
	Unread        int64                 `json:"unread"`
}

// HealthResponse for health check endpoint
type HealthResponse struct {
	BaseResponse
	Version  string                 `json:"version,omitempty"`
	Services map[string]interface{} `json:"services,omitempty"`
}
