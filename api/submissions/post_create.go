package submissions

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/labelreader/label-api/api/types"
	submissionsService "github.com/labelreader/label-api/internal/services/submissions"
	"github.com/labelreader/label-api/pkg/config"
)

// Create handles a new track upload
// @Summary      Submit a track
// @Description  Upload an audio file with its metadata as a new submission.
// @Description  The submission starts in PENDING and becomes visible to labels immediately.
// @Tags         submissions
// @Accept       multipart/form-data
// @Produce      json
// @Param        title formData string true "Track title"
// @Param        artist_name formData string true "Performing artist name"
// @Param        genre formData string false "Genre"
// @Param        audio formData file true "Audio file (mp3, wav, or flac)"
// @Success      201 {object} types.SingleSubmissionResponse "Created submission"
// @Failure      400 {object} types.ErrorResponse "Invalid metadata or missing audio"
// @Failure      500 {object} types.ErrorResponse "Failed to store the submission"
// @Security     BearerAuth
// @Router       /api/v1/submissions [post]
func Create(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := types.MustActor(c)
		if !ok {
			return
		}

		var metadata types.SubmissionMetadataRequest
		if err := c.ShouldBind(&metadata); err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Error:   "Invalid submission metadata",
				Details: err.Error(),
			})
			return
		}

		fileHeader, err := c.FormFile("audio")
		if err != nil {
			types.SendBadRequest(c, "Audio file is required")
			return
		}
		if maxSize := int64(config.GetInt("storage.max_file_size")); maxSize > 0 && fileHeader.Size > maxSize {
			types.SendBadRequest(c, "Audio file exceeds the maximum upload size")
			return
		}
		file, err := fileHeader.Open()
		if err != nil {
			types.SendBadRequest(c, "Could not read audio file")
			return
		}
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			types.SendBadRequest(c, "Could not read audio file")
			return
		}

		submission, err := deps.SubmissionService.Create(c.Request.Context(), actor.UserID,
			submissionsService.SubmissionInput{
				Title:           metadata.Title,
				ArtistName:      metadata.ArtistName,
				Genre:           metadata.Genre,
				SubGenre:        metadata.SubGenre,
				BPM:             metadata.BPM,
				KeySignature:    metadata.KeySignature,
				Description:     metadata.Description,
				Lyrics:          metadata.Lyrics,
				DurationSeconds: metadata.DurationSeconds,
			},
			submissionsService.AudioUpload{
				Data:        data,
				ContentType: fileHeader.Header.Get("Content-Type"),
			})
		if err != nil {
			var vErr *submissionsService.ValidationError
			if errors.As(err, &vErr) || errors.Is(err, submissionsService.ErrMissingAudio) {
				types.SendBadRequest(c, err.Error())
				return
			}
			log.Printf("[ERROR] Failed to create submission for artist %d: %v", actor.UserID, err)
			types.SendInternalError(c, "Failed to store the submission")
			return
		}

		c.JSON(http.StatusCreated, types.SingleSubmissionResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Submission created",
			},
			Submission: submission,
		})
	}
}
