package submissions

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/labelreader/label-api/api/types"
	"github.com/labelreader/label-api/pkg/config"
)

// List returns the authenticated artist's submissions, newest first
// @Summary      List own submissions
// @Description  Page through the authenticated artist's submissions, newest first.
// @Tags         submissions
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        size query int false "Page size" default(20)
// @Success      200 {object} types.SubmissionsResponse "Submission page"
// @Security     BearerAuth
// @Router       /api/v1/submissions [get]
func List(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := types.MustActor(c)
		if !ok {
			return
		}
		page := types.ParsePagination(c, config.GetInt("pagination.default_size"), config.GetInt("pagination.max_size"))

		submissions, total, err := deps.SubmissionService.ListByArtist(c.Request.Context(), actor.UserID, page.Page, page.Size)
		if err != nil {
			log.Printf("[ERROR] Failed to list submissions for artist %d: %v", actor.UserID, err)
			types.SendInternalError(c, "Failed to list submissions")
			return
		}

		c.JSON(http.StatusOK, types.SubmissionsResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Submissions retrieved",
			},
			Submissions: submissions,
			Count:       len(submissions),
			Total:       total,
			Page:        page.Page,
		})
	}
}
