package submissions

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/labelreader/label-api/api/types"
	submissionsService "github.com/labelreader/label-api/internal/services/submissions"
)

// Delete removes a submission together with its ratings and play history
// @Summary      Delete a submission
// @Description  Delete one of the authenticated artist's submissions. Ratings and play events
// @Description  attached to it are removed in the same transaction and the stored audio is released.
// @Tags         submissions
// @Produce      json
// @Param        id path int true "Submission ID"
// @Success      200 {object} types.BaseResponse "Submission deleted"
// @Failure      403 {object} types.ErrorResponse "Submission belongs to another artist"
// @Failure      404 {object} types.ErrorResponse "Submission not found"
// @Security     BearerAuth
// @Router       /api/v1/submissions/{id} [delete]
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := types.MustActor(c)
		if !ok {
			return
		}
		submissionID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		err := deps.SubmissionService.Delete(c.Request.Context(), submissionID, actor.UserID)
		if err != nil {
			switch {
			case errors.Is(err, submissionsService.ErrSubmissionNotFound):
				types.SendNotFound(c, "Submission not found")
			case errors.Is(err, submissionsService.ErrNotOwner):
				types.SendForbidden(c, "Submission belongs to another artist")
			default:
				log.Printf("[ERROR] Failed to delete submission %d: %v", submissionID, err)
				types.SendInternalError(c, "Failed to delete submission")
			}
			return
		}

		c.JSON(http.StatusOK, types.BaseResponse{
			Status:  types.StatusOK,
			Message: "Submission deleted",
		})
	}
}
