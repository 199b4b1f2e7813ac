package discover

import (
	"github.com/gin-gonic/gin"

	"github.com/labelreader/label-api/api/types"
)

// RegisterRoutes registers the label-facing discovery routes and the
// public play endpoint
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies, authRequired, labelOnly gin.HandlerFunc) {
	// GET /api/v1/discover - Browse published submissions for review
	router.GET("", authRequired, labelOnly, List(deps))

	// GET /api/v1/discover/:id - Inspect one submission for review
	router.GET("/:id", authRequired, labelOnly, Get(deps))

	// GET /api/v1/discover/:id/audio - Stream the audio for review
	router.GET("/:id/audio", authRequired, labelOnly, GetAudio(deps))

	// POST /api/v1/discover/:id/play - Record a play. Anonymous listeners
	// are allowed, so no auth.
	router.POST("/:id/play", RecordPlay(deps))
}
