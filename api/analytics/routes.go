package analytics

import (
	"github.com/gin-gonic/gin"

	"github.com/labelreader/label-api/api/types"
)

// RegisterRoutes registers the three dashboard views. platformCache may be
// nil; the per-actor views are never cached because their output depends on
// the caller.
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies, authRequired, artistOnly, labelOnly, platformCache gin.HandlerFunc) {
	// GET /api/v1/analytics/artist - The authenticated artist's dashboard
	router.GET("/artist", authRequired, artistOnly, GetArtist(deps))

	// GET /api/v1/analytics/label - The authenticated label's dashboard
	router.GET("/label", authRequired, labelOnly, GetLabel(deps))

	// GET /api/v1/analytics/platform - Global platform metrics
	if platformCache != nil {
		router.GET("/platform", platformCache, GetPlatform(deps))
	} else {
		router.GET("/platform", GetPlatform(deps))
	}
}
