package profiles

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/labelreader/label-api/api/types"
	profilesService "github.com/labelreader/label-api/internal/services/profiles"
)

// GetLabel returns the authenticated label's profile
// @Summary      Get label profile
// @Tags         profiles
// @Produce      json
// @Success      200 {object} types.LabelProfileResponse "Label profile"
// @Failure      404 {object} types.ErrorResponse "Profile not created yet"
// @Security     BearerAuth
// @Router       /api/v1/profiles/label [get]
func GetLabel(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := types.MustActor(c)
		if !ok {
			return
		}

		profile, err := deps.ProfileService.GetLabelProfile(c.Request.Context(), actor.UserID)
		if err != nil {
			if errors.Is(err, profilesService.ErrProfileNotFound) {
				types.SendNotFound(c, "Profile not created yet")
				return
			}
			log.Printf("[ERROR] Failed to get label profile %d: %v", actor.UserID, err)
			types.SendInternalError(c, "Failed to get profile")
			return
		}

		c.JSON(http.StatusOK, types.LabelProfileResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "Profile retrieved"},
			Profile:      profile,
		})
	}
}

// UpdateLabel creates or updates the authenticated label's profile
// @Summary      Update label profile
// @Description  Merge the supplied fields into the label profile. The first update creates it.
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        request body profiles.LabelProfileUpdate true "Fields to change"
// @Success      200 {object} types.LabelProfileResponse "Updated profile"
// @Failure      400 {object} types.ErrorResponse "Invalid request body"
// @Security     BearerAuth
// @Router       /api/v1/profiles/label [put]
func UpdateLabel(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := types.MustActor(c)
		if !ok {
			return
		}
		var update profilesService.LabelProfileUpdate
		if !types.BindJSONOrError(c, &update) {
			return
		}

		profile, err := deps.ProfileService.UpdateLabelProfile(c.Request.Context(), actor.UserID, update)
		if err != nil {
			log.Printf("[ERROR] Failed to update label profile %d: %v", actor.UserID, err)
			types.SendInternalError(c, "Failed to update profile")
			return
		}

		c.JSON(http.StatusOK, types.LabelProfileResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "Profile updated"},
			Profile:      profile,
		})
	}
}
