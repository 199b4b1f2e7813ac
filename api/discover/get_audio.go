package discover

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/labelreader/label-api/api/types"
	"github.com/labelreader/label-api/internal/services/storage"
	submissionsService "github.com/labelreader/label-api/internal/services/submissions"
)

// GetAudio streams the submission's audio file
// @Summary      Listen to a submission
// @Description  Stream the uploaded audio of a published submission. Supports range requests.
// @Tags         discover
// @Produce      audio/mpeg
// @Param        id path int true "Submission ID"
// @Success      200 "Audio stream"
// @Failure      404 {object} types.ErrorResponse "Submission or audio not found"
// @Security     BearerAuth
// @Router       /api/v1/discover/{id}/audio [get]
func GetAudio(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		submissionID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		submission, err := deps.SubmissionService.GetForReview(c.Request.Context(), submissionID)
		if err != nil {
			if errors.Is(err, submissionsService.ErrSubmissionNotFound) {
				types.SendNotFound(c, "Submission not found")
				return
			}
			log.Printf("[ERROR] Failed to get submission %d for streaming: %v", submissionID, err)
			types.SendInternalError(c, "Failed to get submission")
			return
		}

		reader, err := deps.BlobStore.Open(c.Request.Context(), submission.AudioRef)
		if err != nil {
			if errors.Is(err, storage.ErrBlobNotFound) {
				types.SendNotFound(c, "Audio not available")
				return
			}
			log.Printf("[ERROR] Failed to open audio for submission %d: %v", submissionID, err)
			types.SendInternalError(c, "Failed to open audio")
			return
		}
		defer reader.Close()

		// ServeContent handles range headers for seeking in the player
		http.ServeContent(c.Writer, c.Request, submission.AudioRef, submission.UpdatedAt, reader)
	}
}
