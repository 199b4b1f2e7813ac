package ratings

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/labelreader/label-api/api/types"
	"github.com/labelreader/label-api/pkg/config"
)

// List returns the authenticated label's rating history
// @Summary      List own ratings
// @Description  Page through every rating the authenticated label has given, newest first.
// @Tags         ratings
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        size query int false "Page size" default(20)
// @Success      200 {object} types.RatingsResponse "Rating page"
// @Security     BearerAuth
// @Router       /api/v1/ratings [get]
func List(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := types.MustActor(c)
		if !ok {
			return
		}
		page := types.ParsePagination(c, config.GetInt("pagination.default_size"), config.GetInt("pagination.max_size"))

		ratings, total, err := deps.RatingService.ListRatingsForLabel(c.Request.Context(), actor.UserID, page.Page, page.Size)
		if err != nil {
			log.Printf("[ERROR] Failed to list ratings for label %d: %v", actor.UserID, err)
			types.SendInternalError(c, "Failed to list ratings")
			return
		}

		c.JSON(http.StatusOK, types.RatingsResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Ratings retrieved",
			},
			Ratings: ratings,
			Count:   len(ratings),
			Total:   total,
			Page:    page.Page,
		})
	}
}
