package submissions

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/labelreader/label-api/api/types"
	submissionsService "github.com/labelreader/label-api/internal/services/submissions"
)

// Get returns one of the authenticated artist's submissions
// @Summary      Get a submission
// @Description  Retrieve a single submission owned by the authenticated artist, including its current rating aggregate.
// @Tags         submissions
// @Produce      json
// @Param        id path int true "Submission ID"
// @Success      200 {object} types.SingleSubmissionResponse "Submission details"
// @Failure      403 {object} types.ErrorResponse "Submission belongs to another artist"
// @Failure      404 {object} types.ErrorResponse "Submission not found"
// @Security     BearerAuth
// @Router       /api/v1/submissions/{id} [get]
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

		submission, err := deps.SubmissionService.Get(c.Request.Context(), submissionID, actor.UserID)
		if err != nil {
			switch {
			case errors.Is(err, submissionsService.ErrSubmissionNotFound):
				types.SendNotFound(c, "Submission not found")
			case errors.Is(err, submissionsService.ErrNotOwner):
				types.SendForbidden(c, "Submission belongs to another artist")
			default:
				log.Printf("[ERROR] Failed to get submission %d: %v", submissionID, err)
				types.SendInternalError(c, "Failed to get submission")
			}
			return
		}

		c.JSON(http.StatusOK, types.SingleSubmissionResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Submission retrieved",
			},
			Submission: submission,
		})
	}
}
