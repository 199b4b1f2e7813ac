package analytics

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/labelreader/label-api/api/types"
)

// GetPlatform returns the global platform dashboard
// @Summary      Platform dashboard
// @Description  Platform-wide totals, genre distribution, and the top rated and most played
// @Description  approved submissions.
// @Tags         analytics
// @Produce      json
// @Success      200 {object} types.PlatformAnalyticsResponse "Platform dashboard"
// @Router       /api/v1/analytics/platform [get]
func GetPlatform(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		view, err := deps.AnalyticsService.ForPlatform(c.Request.Context())
		if err != nil {
			log.Printf("[ERROR] Failed to build platform analytics: %v", err)
			types.SendInternalError(c, "Failed to build analytics")
			return
		}

		c.JSON(http.StatusOK, types.PlatformAnalyticsResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Analytics retrieved",
			},
			Analytics: view,
		})
	}
}
