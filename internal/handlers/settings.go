package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jestatech/jts-site/internal/dto"
	apierrors "github.com/jestatech/jts-site/internal/errors"
	"github.com/jestatech/jts-site/internal/services"
)

// SettingsHandler serves per-user back-office settings.
type SettingsHandler struct {
	settingsService *services.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(settingsService *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetSettings returns the user's settings, creating defaults on first read.
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	userID, ok := parseID(c, c.Param("userId"))
	if !ok {
		return
	}

	settings, err := h.settingsService.GetSettings(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateSettings merges the non-null body fields onto the user's settings.
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	userID, ok := parseID(c, c.Param("userId"))
	if !ok {
		return
	}

	var patch dto.SettingsPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	settings, err := h.settingsService.UpdateSettings(userID, patch)
	if err != nil {
		apierrors.InternalError(c, "Failed to update settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}
