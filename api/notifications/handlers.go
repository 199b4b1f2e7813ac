package notifications

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/labelreader/label-api/api/types"
	notificationsService "github.com/labelreader/label-api/internal/services/notifications"
	"github.com/labelreader/label-api/pkg/config"
)

// List returns the actor's notification inbox
// @Summary      List notifications
// @Description  Page through the authenticated user's notifications, newest first. Pass
// @Description  unread=true to hide read ones. The response carries the unread count.
// @Tags         notifications
// @Produce      json
// @Param        unread query bool false "Only unread notifications"
// @Param        page query int false "Page number" default(1)
// @Param        size query int false "Page size" default(20)
// @Success      200 {object} types.NotificationsResponse "Notification page"
// @Security     BearerAuth
// @Router       /api/v1/notifications [get]
func List(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := types.MustActor(c)
		if !ok {
			return
		}
		page := types.ParsePagination(c, config.GetInt("pagination.default_size"), config.GetInt("pagination.max_size"))
		unreadOnly := c.Query("unread") == "true"

		notifications, total, err := deps.NotificationService.ListForUser(c.Request.Context(), actor.UserID, unreadOnly, page.Page, page.Size)
		if err != nil {
			log.Printf("[ERROR] Failed to list notifications for user %d: %v", actor.UserID, err)
			types.SendInternalError(c, "Failed to list notifications")
			return
		}

		unread, err := deps.NotificationService.CountUnread(c.Request.Context(), actor.UserID)
		if err != nil {
			log.Printf("[ERROR] Failed to count unread notifications for user %d: %v", actor.UserID, err)
			types.SendInternalError(c, "Failed to list notifications")
			return
		}

		c.JSON(http.StatusOK, types.NotificationsResponse{
			BaseResponse:  types.BaseResponse{Status: types.StatusOK, Message: "Notifications retrieved"},
			Notifications: notifications,
			Count:         len(notifications),
			Total:         total,
			Unread:        unread,
		})
	}
}

// MarkRead marks one notification as read
// @Summary      Mark notification read
// @Tags         notifications
// @Produce      json
// @Param        id path int true "Notification ID"
// @Success      200 {object} types.BaseResponse "Marked read"
// @Failure      403 {object} types.ErrorResponse "Notification belongs to another user"
// @Failure      404 {object} types.ErrorResponse "Notification not found"
// @Security     BearerAuth
// @Router       /api/v1/notifications/{id}/read [post]
func MarkRead(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := types.MustActor(c)
		if !ok {
			return
		}
		notificationID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		if _, err := deps.NotificationService.MarkRead(c.Request.Context(), notificationID, actor.UserID); err != nil {
			respondNotificationError(c, notificationID, err)
			return
		}

		c.JSON(http.StatusOK, types.BaseResponse{Status: types.StatusOK, Message: "Notification marked read"})
	}
}

// MarkAllRead marks the actor's whole inbox as read
// @Summary      Mark all notifications read
// @Tags         notifications
// @Produce      json
// @Success      200 {object} types.BaseResponse "Inbox marked read"
// @Security     BearerAuth
// @Router       /api/v1/notifications/read-all [post]
func MarkAllRead(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := types.MustActor(c)
		if !ok {
			return
		}

		if err := deps.NotificationService.MarkAllRead(c.Request.Context(), actor.UserID); err != nil {
			log.Printf("[ERROR] Failed to mark notifications read for user %d: %v", actor.UserID, err)
			types.SendInternalError(c, "Failed to mark notifications read")
			return
		}

		c.JSON(http.StatusOK, types.BaseResponse{Status: types.StatusOK, Message: "All notifications marked read"})
	}
}

// Delete removes one notification from the actor's inbox
// @Summary      Delete notification
// @Tags         notifications
// @Produce      json
// @Param        id path int true "Notification ID"
// @Success      200 {object} types.BaseResponse "Notification deleted"
// @Failure      403 {object} types.ErrorResponse "Notification belongs to another user"
// @Failure      404 {object} types.ErrorResponse "Notification not found"
// @Security     BearerAuth
// @Router       /api/v1/notifications/{id} [delete]
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := types.MustActor(c)
		if !ok {
			return
		}
		notificationID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		if err := deps.NotificationService.Delete(c.Request.Context(), notificationID, actor.UserID); err != nil {
			respondNotificationError(c, notificationID, err)
			return
		}

		c.JSON(http.StatusOK, types.BaseResponse{Status: types.StatusOK, Message: "Notification deleted"})
	}
}

func respondNotificationError(c *gin.Context, notificationID uint, err error) {
	switch {
	case errors.Is(err, notificationsService.ErrNotificationNotFound):
		types.SendNotFound(c, "Notification not found")
	case errors.Is(err, notificationsService.ErrForbidden):
		types.SendForbidden(c, "Notification belongs to another user")
	default:
		log.Printf("[ERROR] Notification operation failed for %d: %v", notificationID, err)
		types.SendInternalError(c, "Notification operation failed")
	}
}
