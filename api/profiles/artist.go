package profiles

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/labelreader/label-api/api/types"
	profilesService "github.com/labelreader/label-api/internal/services/profiles"
)

// GetArtist returns the authenticated artist's profile
// @Summary      Get artist profile
// @Tags         profiles
// @Produce      json
// @Success      200 {object} types.ArtistProfileResponse "Artist profile"
// @Failure      404 {object} types.ErrorResponse "Profile not created yet"
// @Security     BearerAuth
// @Router       /api/v1/profiles/artist [get]
func GetArtist(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := types.MustActor(c)
		if !ok {
			return
		}

		profile, err := deps.ProfileService.GetArtistProfile(c.Request.Context(), actor.UserID)
		if err != nil {
			if errors.Is(err, profilesService.ErrProfileNotFound) {
				types.SendNotFound(c, "Profile not created yet")
				return
			}
			log.Printf("[ERROR] Failed to get artist profile %d: %v", actor.UserID, err)
			types.SendInternalError(c, "Failed to get profile")
			return
		}

		c.JSON(http.StatusOK, types.ArtistProfileResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "Profile retrieved"},
			Profile:      profile,
		})
	}
}

// UpdateArtist creates or updates the authenticated artist's profile
// @Summary      Update artist profile
// @Description  Merge the supplied fields into the artist profile. The first update creates it.
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        request body profiles.ArtistProfileUpdate true "Fields to change"
// @Success      200 {object} types.ArtistProfileResponse "Updated profile"
// @Failure      400 {object} types.ErrorResponse "Invalid request body"
// @Security     BearerAuth
// @Router       /api/v1/profiles/artist [put]
func UpdateArtist(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := types.MustActor(c)
		if !ok {
			return
		}
		var update profilesService.ArtistProfileUpdate
		if !types.BindJSONOrError(c, &update) {
			return
		}

		profile, err := deps.ProfileService.UpdateArtistProfile(c.Request.Context(), actor.UserID, update)
		if err != nil {
			log.Printf("[ERROR] Failed to update artist profile %d: %v", actor.UserID, err)
			types.SendInternalError(c, "Failed to update profile")
			return
		}

		c.JSON(http.StatusOK, types.ArtistProfileResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "Profile updated"},
			Profile:      profile,
		})
	}
}

// GetArtistStats returns the artist's counter snapshot and status breakdown
// @Summary      Artist stats
// @Description  Denormalized submission and play counters together with the per-status
// @Description  submission breakdown and the mean rating over rated submissions.
// @Tags         profiles
// @Produce      json
// @Success      200 {object} profilesService.ArtistStats "Artist stats"
// @Failure      404 {object} types.ErrorResponse "Profile not created yet"
// @Security     BearerAuth
// @Router       /api/v1/profiles/artist/stats [get]
func GetArtistStats(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := types.MustActor(c)
		if !ok {
			return
		}

		stats, err := deps.ProfileService.ArtistStats(c.Request.Context(), actor.UserID)
		if err != nil {
			if errors.Is(err, profilesService.ErrProfileNotFound) {
				types.SendNotFound(c, "Profile not created yet")
				return
			}
			log.Printf("[ERROR] Failed to get artist stats %d: %v", actor.UserID, err)
			types.SendInternalError(c, "Failed to get stats")
			return
		}

		c.JSON(http.StatusOK, stats)
	}
}
