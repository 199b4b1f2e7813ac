package discover

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/labelreader/label-api/api/types"
	submissionsService "github.com/labelreader/label-api/internal/services/submissions"
	"github.com/labelreader/label-api/pkg/config"
)

// List returns published submissions for label review
// @Summary      Browse submissions
// @Description  Page through published submissions, optionally filtered by genre and lifecycle
// @Description  status. Sortable by created_at, title, average_rating, play_count, or bpm.
// @Tags         discover
// @Produce      json
// @Param        genre query string false "Filter by genre"
// @Param        status query string false "Filter by lifecycle status"
// @Param        page query int false "Page number" default(1)
// @Param        size query int false "Page size" default(20)
// @Param        sortBy query string false "Sort field" default(created_at)
// @Param        sortDir query string false "asc or desc" default(desc)
// @Success      200 {object} types.SubmissionsResponse "Submission page"
// @Failure      400 {object} types.ErrorResponse "Unknown status filter"
// @Security     BearerAuth
// @Router       /api/v1/discover [get]
func List(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		page := types.ParsePagination(c, config.GetInt("pagination.default_size"), config.GetInt("pagination.max_size"))
		sortBy, ascending := types.ParseSort(c)

		submissions, total, err := deps.SubmissionService.ListForReview(c.Request.Context(),
			submissionsService.ListFilter{
				Genre:  c.Query("genre"),
				Status: c.Query("status"),
			},
			submissionsService.PageRequest{
				Page:    page.Page,
				Size:    page.Size,
				SortBy:  sortBy,
				SortAsc: ascending,
			})
		if err != nil {
			var vErr *submissionsService.ValidationError
			if errors.As(err, &vErr) {
				types.SendBadRequest(c, err.Error())
				return
			}
			log.Printf("[ERROR] Failed to list submissions for review: %v", err)
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
