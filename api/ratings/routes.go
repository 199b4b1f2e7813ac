package ratings

import (
	"github.com/gin-gonic/gin"

	"github.com/labelreader/label-api/api/types"
)

// RegisterSubmissionRoutes registers the per-submission rating routes on
// the shared /submissions group
func RegisterSubmissionRoutes(router *gin.RouterGroup, deps *types.Dependencies, labelOnly gin.HandlerFunc) {
	// PUT /api/v1/submissions/:id/rating - Create or overwrite the label's rating
	router.PUT("/:id/rating", labelOnly, Upsert(deps))

	// GET /api/v1/submissions/:id/rating - The label's own rating for a submission
	router.GET("/:id/rating", labelOnly, Get(deps))
}

// RegisterRoutes registers the label's rating history routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// GET /api/v1/ratings - The label's rating history, newest first
	router.GET("", List(deps))
}
