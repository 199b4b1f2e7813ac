package discover

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/labelreader/label-api/api/types"
	submissionsService "github.com/labelreader/label-api/internal/services/submissions"
)

// Get returns one published submission for review
// @Summary      Inspect a submission
// @Description  Retrieve a published submission with its metadata and current rating aggregate.
// @Description  Any label may inspect any published submission.
// @Tags         discover
// @Produce      json
// @Param        id path int true "Submission ID"
// @Success      200 {object} types.SingleSubmissionResponse "Submission details"
// @Failure      404 {object} types.ErrorResponse "Submission not found or unpublished"
// @Security     BearerAuth
// @Router       /api/v1/discover/{id} [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
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
			log.Printf("[ERROR] Failed to get submission %d for review: %v", submissionID, err)
			types.SendInternalError(c, "Failed to get submission")
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
