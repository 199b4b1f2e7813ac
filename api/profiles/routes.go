package profiles

import (
	"github.com/gin-gonic/gin"

	"github.com/labelreader/label-api/api/types"
)

// RegisterRoutes registers profile routes. The group already carries
// authentication.
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies, artistOnly, labelOnly gin.HandlerFunc) {
	// GET /api/v1/profiles/artist - The authenticated artist's profile
	router.GET("/artist", artistOnly, GetArtist(deps))

	// PUT /api/v1/profiles/artist - Create or update the artist profile
	router.PUT("/artist", artistOnly, UpdateArtist(deps))

	// GET /api/v1/profiles/artist/stats - Counter snapshot with status breakdown
	router.GET("/artist/stats", artistOnly, GetArtistStats(deps))

	// GET /api/v1/profiles/label - The authenticated label's profile
	router.GET("/label", labelOnly, GetLabel(deps))

	// PUT /api/v1/profiles/label - Create or update the label profile
	router.PUT("/label", labelOnly, UpdateLabel(deps))
}
