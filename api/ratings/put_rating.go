package ratings

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/labelreader/label-api/api/types"
	ratingsService "github.com/labelreader/label-api/internal/services/ratings"
)

// Upsert creates or overwrites the label's rating for a submission
// @Summary      Rate a submission
// @Description  Create or overwrite the authenticated label's rating for a submission.
// @Description  A label holds at most one rating per submission; rating again replaces the
// @Description  previous score and review. The submission's average and count are updated
// @Description  in the same transaction.
// @Tags         ratings
// @Accept       json
// @Produce      json
// @Param        id path int true "Submission ID"
// @Param        request body types.RateSubmissionRequest true "Score (1-5) and optional review"
// @Success      200 {object} types.SingleRatingResponse "Stored rating with the fresh aggregate"
// @Failure      400 {object} types.ErrorResponse "Score out of range"
// @Failure      404 {object} types.ErrorResponse "Submission not found"
// @Failure      503 {object} types.ErrorResponse "Aggregation contention, retry later"
// @Security     BearerAuth
// @Router       /api/v1/submissions/{id}/rating [put]
func Upsert(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := types.MustActor(c)
		if !ok {
			return
		}
		submissionID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		var request types.RateSubmissionRequest
		if !types.BindJSONOrError(c, &request) {
			return
		}

		rating, err := deps.RatingService.UpsertRating(c.Request.Context(), submissionID, actor.UserID,
			ratingsService.RatingInput{
				Score:           request.Score,
				ReviewText:      request.ReviewText,
				Interested:      request.Interested,
				ListenedSeconds: request.ListenedSeconds,
			})
		if err != nil {
			switch {
			case errors.Is(err, ratingsService.ErrInvalidScore):
				types.SendBadRequest(c, "Score must be between 1 and 5")
			case errors.Is(err, ratingsService.ErrSubmissionNotFound):
				types.SendNotFound(c, "Submission not found")
			case errors.Is(err, ratingsService.ErrAggregationBusy):
				c.JSON(http.StatusServiceUnavailable, types.ErrorResponse{
					Status: types.StatusError,
					Error:  "Rating could not be stored under contention, retry",
				})
			default:
				log.Printf("[ERROR] Failed to upsert rating for submission %d by label %d: %v", submissionID, actor.UserID, err)
				types.SendInternalError(c, "Failed to store rating")
			}
			return
		}

		c.JSON(http.StatusOK, types.SingleRatingResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Rating stored",
			},
			Rating: rating,
		})
	}
}
