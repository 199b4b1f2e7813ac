package api

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/labelreader/label-api/api/analytics"
	"github.com/labelreader/label-api/api/discover"
	"github.com/labelreader/label-api/api/health"
	"github.com/labelreader/label-api/api/notifications"
	"github.com/labelreader/label-api/api/profiles"
	"github.com/labelreader/label-api/api/ratings"
	"github.com/labelreader/label-api/api/submissions"
	"github.com/labelreader/label-api/api/types"
	"github.com/labelreader/label-api/api/version"
	_ "github.com/labelreader/label-api/docs/swagger"
	"github.com/labelreader/label-api/internal/models"
	analyticsService "github.com/labelreader/label-api/internal/services/analytics"
	"github.com/labelreader/label-api/internal/services/auth"
	cacheService "github.com/labelreader/label-api/internal/services/cache"
	notificationsService "github.com/labelreader/label-api/internal/services/notifications"
	playsService "github.com/labelreader/label-api/internal/services/plays"
	profilesService "github.com/labelreader/label-api/internal/services/profiles"
	ratingsService "github.com/labelreader/label-api/internal/services/ratings"
	"github.com/labelreader/label-api/internal/services/storage"
	submissionsService "github.com/labelreader/label-api/internal/services/submissions"
	"github.com/labelreader/label-api/pkg/config"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	// Public routes, no rate limiting
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine)

	// Swagger documentation
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	engine.NoRoute(NotFoundHandler())

	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	if deps == nil {
		deps = &types.Dependencies{}
	}
	if deps.DB != nil && deps.DB.DB != nil {
		initializeServices(deps, cfg)
	}

	authRequired := authMiddleware(deps, cfg)
	artistOnly := RequireRole(models.RoleArtist)
	labelOnly := RequireRole(models.RoleLabel)
	generalLimit := PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 10, 20)
	// Uploads are heavier, keep them slower
	uploadLimit := PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 2, 5)

	v1 := engine.Group("/api/v1")

	// Artist-facing submission lifecycle; label-driven status transitions
	// and rating writes share the /submissions/:id prefix
	submissionGroup := v1.Group("/submissions")
	submissionGroup.Use(generalLimit, authRequired)
	submissions.RegisterRoutes(submissionGroup, deps, artistOnly, labelOnly, uploadLimit)
	ratings.RegisterSubmissionRoutes(submissionGroup, deps, labelOnly)

	// Label rating history
	ratingGroup := v1.Group("/ratings")
	ratingGroup.Use(generalLimit, authRequired, labelOnly)
	ratings.RegisterRoutes(ratingGroup, deps)

	// Label discovery listing plus the public play endpoint
	discoverGroup := v1.Group("/discover")
	discoverGroup.Use(generalLimit)
	discover.RegisterRoutes(discoverGroup, deps, authRequired, labelOnly)

	// The platform dashboard is identical for every caller, so it gets a
	// short-TTL response cache
	var platformCache gin.HandlerFunc
	if cfg.Cache.Enabled {
		platformCache = CacheResponse(cacheService.NewMemory(cfg.Cache.MaxSizeMB), cfg.Cache.TTL)
	}

	analyticsGroup := v1.Group("/analytics")
	analyticsGroup.Use(generalLimit)
	analytics.RegisterRoutes(analyticsGroup, deps, authRequired, artistOnly, labelOnly, platformCache)

	profileGroup := v1.Group("/profiles")
	profileGroup.Use(generalLimit, authRequired)
	profiles.RegisterRoutes(profileGroup, deps, artistOnly, labelOnly)

	notificationGroup := v1.Group("/notifications")
	notificationGroup.Use(generalLimit, authRequired)
	notifications.RegisterRoutes(notificationGroup, deps)

	return nil
}

// initializeServices builds any service the caller didn't inject. Tests
// inject fakes; the serve command passes only the database.
func initializeServices(deps *types.Dependencies, cfg *config.Config) {
	db := deps.DB.DB
	counters := profilesService.NewCounters(db, profilesService.CounterModeIncremental)

	if deps.BlobStore == nil {
		store, err := storage.NewLocalBlobStore(cfg.Storage.Path)
		if err != nil {
			panic(fmt.Sprintf("failed to initialize blob storage at %s: %v", cfg.Storage.Path, err))
		}
		deps.BlobStore = store
	}
	if deps.NotificationService == nil {
		deps.NotificationService = notificationsService.NewService(notificationsService.NewRepository(db))
	}
	if deps.SubmissionService == nil {
		deps.SubmissionService = submissionsService.NewService(
			submissionsService.NewRepository(db), deps.BlobStore, counters, deps.NotificationService)
	}
	if deps.RatingService == nil {
		deps.RatingService = ratingsService.NewService(
			ratingsService.NewRepository(db), counters, deps.NotificationService,
			ratingsService.WithMaxRetries(cfg.Ratings.MaxRetries),
			ratingsService.WithRetryDelay(cfg.Ratings.RetryDelay))
	}
	if deps.PlayService == nil {
		deps.PlayService = playsService.NewService(playsService.NewRepository(db), counters)
	}
	if deps.ProfileService == nil {
		deps.ProfileService = profilesService.NewService(profilesService.NewRepository(db))
	}
	if deps.AnalyticsService == nil {
		deps.AnalyticsService = analyticsService.NewService(
			analyticsService.NewRepository(db),
			profilesService.NewRepository(db),
			analyticsService.Options{
				DefaultWindowDays: cfg.Analytics.DefaultWindowDays,
				MaxWindowDays:     cfg.Analytics.MaxWindowDays,
				TopSubmissions:    cfg.Analytics.TopSubmissions,
				TopRanked:         cfg.Analytics.TopRanked,
			})
	}
	if deps.AuthService == nil {
		deps.AuthService = auth.NewService(cfg.Auth.JWTSecret)
	}
}

// authMiddleware picks real token validation or the header-based dev
// identity, depending on configuration
func authMiddleware(deps *types.Dependencies, cfg *config.Config) gin.HandlerFunc {
	if cfg.Auth.Enabled {
		return RequireAuth(deps.AuthService)
	}
	return devIdentity()
}

// devIdentity trusts X-User-ID and X-User-Role headers. Local development
// only; never enabled when auth is on.
func devIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.ParseUint(c.GetHeader("X-User-ID"), 10, 32)
		role := c.GetHeader("X-User-Role")
		if err != nil || userID == 0 || (role != models.RoleArtist && role != models.RoleLabel) {
			c.AbortWithStatusJSON(401, types.ErrorResponse{
				Status: types.StatusError,
				Error:  "Missing dev identity headers",
			})
			return
		}
		types.SetActor(c, &auth.Actor{UserID: uint(userID), Role: role})
		c.Next()
	}
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(404, gin.H{
			"status":  "error",
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
