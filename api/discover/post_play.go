package discover

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/labelreader/label-api/api/types"
	playsService "github.com/labelreader/label-api/internal/services/plays"
)

// RecordPlay appends a play event for a submission
// @Summary      Record a play
// @Description  Append a play event for a submission and bump its play count. Authenticated
// @Description  listeners are attributed; anonymous plays are recorded without a listener.
// @Tags         discover
// @Produce      json
// @Param        id path int true "Submission ID"
// @Success      200 {object} types.PlayResponse "Updated play count"
// @Failure      404 {object} types.ErrorResponse "Submission not found"
// @Router       /api/v1/discover/{id}/play [post]
func RecordPlay(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		submissionID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		// The play endpoint sits outside the auth middleware; attribute
		// the play when an actor happens to be present
		var listenerID *uint
		if actor := types.GetActor(c); actor != nil {
			listenerID = &actor.UserID
		}

		submission, err := deps.PlayService.RecordPlay(c.Request.Context(), submissionID, listenerID, c.ClientIP())
		if err != nil {
			if errors.Is(err, playsService.ErrSubmissionNotFound) {
				types.SendNotFound(c, "Submission not found")
				return
			}
			log.Printf("[ERROR] Failed to record play for submission %d: %v", submissionID, err)
			types.SendInternalError(c, "Failed to record play")
			return
		}

		c.JSON(http.StatusOK, types.PlayResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Play recorded",
			},
			SubmissionID: submission.ID,
			PlayCount:    submission.PlayCount,
		})
	}
}
