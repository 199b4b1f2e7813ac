package submissions

import (
	"github.com/gin-gonic/gin"

	"github.com/labelreader/label-api/api/types"
)

// RegisterRoutes registers submission lifecycle routes.
// The group already carries rate limiting and authentication; role checks
// are applied per route because status transitions belong to labels.
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies, artistOnly, labelOnly, uploadLimit gin.HandlerFunc) {
	// POST /api/v1/submissions - Upload a new track
	router.POST("", artistOnly, uploadLimit, Create(deps))

	// GET /api/v1/submissions - List the artist's own submissions
	router.GET("", artistOnly, List(deps))

	// GET /api/v1/submissions/:id - Get one of the artist's submissions
	router.GET("/:id", artistOnly, Get(deps))

	// DELETE /api/v1/submissions/:id - Delete a submission and its history
	router.DELETE("/:id", artistOnly, Delete(deps))

	// POST /api/v1/submissions/:id/status - Label moves a submission
	// through the review lifecycle
	router.POST("/:id/status", labelOnly, Transition(deps))
}
