package notifications

import (
	"github.com/gin-gonic/gin"

	"github.com/labelreader/label-api/api/types"
)

// RegisterRoutes registers the notification inbox routes. The group
// already carries authentication; every route operates on the actor's own
// inbox.
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// GET /api/v1/notifications - The actor's inbox
	router.GET("", List(deps))

	// POST /api/v1/notifications/:id/read - Mark one notification read
	router.POST("/:id/read", MarkRead(deps))

	// POST /api/v1/notifications/read-all - Mark the whole inbox read
	router.POST("/read-all", MarkAllRead(deps))

	// DELETE /api/v1/notifications/:id - Remove a notification
	router.DELETE("/:id", Delete(deps))
}
