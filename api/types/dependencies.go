package types

import (
	"github.com/labelreader/label-api/internal/database"
	"github.com/labelreader/label-api/internal/services/analytics"
	"github.com/labelreader/label-api/internal/services/auth"
	"github.com/labelreader/label-api/internal/services/notifications"
	"github.com/labelreader/label-api/internal/services/plays"
	"github.com/labelreader/label-api/internal/services/profiles"
	"github.com/labelreader/label-api/internal/services/ratings"
	"github.com/labelreader/label-api/internal/services/storage"
	"github.com/labelreader/label-api/internal/services/submissions"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB                  *database.DB
	SubmissionService   submissions.SubmissionService
	RatingService       ratings.RatingService
	PlayService         plays.PlayService
	AnalyticsService    analytics.AnalyticsService
	ProfileService      profiles.ProfileService
	NotificationService *notifications.Service
	AuthService         *auth.Service
	BlobStore           storage.BlobStore
}
