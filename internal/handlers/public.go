package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/jestatech/jts-site/internal/errors"
	"github.com/jestatech/jts-site/internal/services"
)

// PublicHandler serves the unauthenticated project API backing the
// marketing pages.
type PublicHandler struct {
	projectService *services.ProjectService
}

// NewPublicHandler creates a new PublicHandler.
func NewPublicHandler(projectService *services.ProjectService) *PublicHandler {
	return &PublicHandler{projectService: projectService}
}

// LatestProjects returns projects newest first for the portfolio strip.
func (h *PublicHandler) LatestProjects(c *gin.Context) {
	projects, err := h.projectService.GetLatestProjects()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch projects")
		return
	}
	c.JSON(http.StatusOK, projects)
}

// AllProjects returns every project.
func (h *PublicHandler) AllProjects(c *gin.Context) {
	projects, err := h.projectService.GetAllProjects()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch projects")
		return
	}
	c.JSON(http.StatusOK, projects)
}
