package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
	"github.com/BruksfildServices01/clinic-scheduler/internal/usecase/profile"
)

// ProfileHandler serves user profiles of doctors, patients and pharmacies.
type ProfileHandler struct {
	profile *profile.GetProfile
}

func NewProfileHandler(uc *profile.GetProfile) *ProfileHandler {
	return &ProfileHandler{profile: uc}
}

// GetUserProfile loads the profile named by the :id path segment.
func (h *ProfileHandler) GetUserProfile(c *gin.Context) {
	h.write(c, c.Param("id"))
}

// GetMe loads the profile of the session's own user.
func (h *ProfileHandler) GetMe(c *gin.Context) {
	id := c.GetString(middleware.ContextUserID)
	if id == "" {
		httperr.Unauthorized(c, "user_not_in_context", "Unauthorized")
		return
	}
	h.write(c, id)
}

func (h *ProfileHandler) write(c *gin.Context, id string) {
	if id == "" {
		httperr.BadRequest(c, "user_id_required", "User ID is required")
		return
	}

	user, err := h.profile.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, "User profile fetched successfully", user)
}
