package submissions

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/labelreader/label-api/api/types"
	submissionsService "github.com/labelreader/label-api/internal/services/submissions"
)

// Transition moves a submission through its review lifecycle
// @Summary      Change submission status
// @Description  Move a submission to a new lifecycle status. Only transitions the state machine
// @Description  allows are accepted; APPROVED and REJECTED are terminal.
// @Tags         submissions
// @Accept       json
// @Produce      json
// @Param        id path int true "Submission ID"
// @Param        request body types.TransitionRequest true "Target status"
// @Success      200 {object} types.SingleSubmissionResponse "Updated submission"
// @Failure      400 {object} types.ErrorResponse "Unknown status"
// @Failure      404 {object} types.ErrorResponse "Submission not found"
// @Failure      409 {object} types.ErrorResponse "Transition not allowed from the current status"
// @Security     BearerAuth
// @Router       /api/v1/submissions/{id}/status [post]
func Transition(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		submissionID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		var request types.TransitionRequest
		if !types.BindJSONOrError(c, &request) {
			return
		}

		submission, err := deps.SubmissionService.Transition(c.Request.Context(), submissionID, request.Status)
		if err != nil {
			var vErr *submissionsService.ValidationError
			switch {
			case errors.Is(err, submissionsService.ErrSubmissionNotFound):
				types.SendNotFound(c, "Submission not found")
			case errors.Is(err, submissionsService.ErrInvalidTransition):
				types.SendConflict(c, err.Error())
			case errors.As(err, &vErr):
				types.SendBadRequest(c, err.Error())
			default:
				log.Printf("[ERROR] Failed to transition submission %d: %v", submissionID, err)
				types.SendInternalError(c, "Failed to update submission status")
			}
			return
		}

		c.JSON(http.StatusOK, types.SingleSubmissionResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Submission status updated",
			},
			Submission: submission,
		})
	}
}
