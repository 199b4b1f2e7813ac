package analytics

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/labelreader/label-api/api/types"
)

// GetArtist returns the authenticated artist's dashboard
// @Summary      Artist dashboard
// @Description  Submission, play, and rating totals for the authenticated artist, with daily
// @Description  play volume over the requested window and the most played submissions.
// @Tags         analytics
// @Produce      json
// @Param        window query int false "Window in days for plays-by-date" default(30)
// @Success      200 {object} types.ArtistAnalyticsResponse "Artist dashboard"
// @Security     BearerAuth
// @Router       /api/v1/analytics/artist [get]
func GetArtist(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := types.MustActor(c)
		if !ok {
			return
		}
		windowDays, _ := strconv.Atoi(c.DefaultQuery("window", "0"))

		view, err := deps.AnalyticsService.ForArtist(c.Request.Context(), actor.UserID, windowDays)
		if err != nil {
			log.Printf("[ERROR] Failed to build artist analytics for %d: %v", actor.UserID, err)
			types.SendInternalError(c, "Failed to build analytics")
			return
		}

		c.JSON(http.StatusOK, types.ArtistAnalyticsResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Analytics retrieved",
			},
			Analytics: view,
		})
	}
}
