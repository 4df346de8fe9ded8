package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"careermatch/models"
	"careermatch/utils"
)

type ProfileHandler struct {
	profiles *models.ResumeProfileModel
}

func NewProfileHandler(db *sql.DB) *ProfileHandler {
	return &ProfileHandler{profiles: models.NewResumeProfileModel(db)}
}

// GetProfile returns the caller's stored Resume Profile.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedError(c, "User not authenticated")
		return
	}

	stored, err := h.profiles.GetByUserID(userID)
	if err == sql.ErrNoRows {
		utils.NotFoundError(c, "No resume profile on record")
		return
	}
	if err != nil {
		utils.LogError("failed to load resume profile", err)
		utils.InternalServerError(c, "Failed to load profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"fileName":  stored.FileName,
		"profile":   json.RawMessage(stored.Profile),
		"updatedAt": stored.UpdatedAt,
	})
}

type UpdateProfileRequest struct {
	FileName string               `json:"fileName"`
	Profile  models.ResumeProfile `json:"profile"`
}

// UpdateProfile replaces the caller's stored Resume Profile with an edited
// version. The client may reorganize fields; the stored profile remains the
// authoritative fact source for tailoring.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedError(c, "User not authenticated")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestError(c, "Invalid request format", err)
		return
	}

	if errs := ValidateResumeForMatch(req.Profile); len(errs) > 0 {
		utils.BadRequestError(c, "Validation failed", errs)
		return
	}

	raw, err := json.Marshal(req.Profile)
	if err != nil {
		utils.InternalServerError(c, "Failed to encode profile")
		return
	}

	if err := h.profiles.Save(userID, req.FileName, raw); err != nil {
		utils.LogError("failed to save resume profile", err)
		utils.InternalServerError(c, "Failed to save profile")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Profile saved", nil)
}
