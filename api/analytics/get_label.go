package analytics

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/labelreader/label-api/api/types"
)

// GetLabel returns the authenticated label's dashboard
// @Summary      Label dashboard
// @Description  Review totals, average score given, reviews per genre, and the most recently
// @Description  reviewed submissions for the authenticated label.
// @Tags         analytics
// @Produce      json
// @Success      200 {object} types.LabelAnalyticsResponse "Label dashboard"
// @Security     BearerAuth
// @Router       /api/v1/analytics/label [get]
func GetLabel(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := types.MustActor(c)
		if !ok {
			return
		}

		view, err := deps.AnalyticsService.ForLabel(c.Request.Context(), actor.UserID)
		if err != nil {
			log.Printf("[ERROR] Failed to build label analytics for %d: %v", actor.UserID, err)
			types.SendInternalError(c, "Failed to build analytics")
			return
		}

		c.JSON(http.StatusOK, types.LabelAnalyticsResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Analytics retrieved",
			},
			Analytics: view,
		})
	}
}
