package ratings

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/labelreader/label-api/api/types"
	ratingsService "github.com/labelreader/label-api/internal/services/ratings"
)

// Get returns the authenticated label's rating for a submission
// @Summary      Get own rating
// @Description  Retrieve the authenticated label's rating for a submission, if one exists.
// @Tags         ratings
// @Produce      json
// @Param        id path int true "Submission ID"
// @Success      200 {object} types.SingleRatingResponse "The label's rating"
// @Failure      404 {object} types.ErrorResponse "No rating for this submission"
// @Security     BearerAuth
// @Router       /api/v1/submissions/{id}/rating [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := types.MustActor(c)
		if !ok {
			return
		}
		submissionID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		rating, err := deps.RatingService.GetRating(c.Request.Context(), submissionID, actor.UserID)
		if err != nil {
			switch {
			case errors.Is(err, ratingsService.ErrRatingNotFound), errors.Is(err, ratingsService.ErrSubmissionNotFound):
				types.SendNotFound(c, "No rating for this submission")
			default:
				log.Printf("[ERROR] Failed to get rating for submission %d by label %d: %v", submissionID, actor.UserID, err)
				types.SendInternalError(c, "Failed to get rating")
			}
			return
		}

		c.JSON(http.StatusOK, types.SingleRatingResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Rating retrieved",
			},
			Rating: rating,
		})
	}
}
