package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jestatech/jts-site/internal/dto"
	apierrors "github.com/jestatech/jts-site/internal/errors"
	"github.com/jestatech/jts-site/internal/services"
	"github.com/jestatech/jts-site/internal/storage"
)

// ProjectHandler serves the admin project API, including uploads.
type ProjectHandler struct {
	projectService *services.ProjectService
	store          *storage.Store
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projectService *services.ProjectService, store *storage.Store) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		store:          store,
	}
}

// ListProjects returns every project.
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.projectService.GetAllProjects()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch projects")
		return
	}
	c.JSON(http.StatusOK, projects)
}

// GetProject returns one project by ID.
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, ok := parseID(c, c.Param("id"))
	if !ok {
		return
	}

	project, err := h.projectService.GetProjectByID(id)
	if err != nil {
		respondProjectError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// CreateProject creates a project from the request body.
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	project, err := h.projectService.CreateProject(req.ToModel())
	if err != nil {
		apierrors.InternalError(c, "Failed to create project")
		return
	}
	c.JSON(http.StatusOK, project)
}

// UpdateProject merges the non-null body fields onto a stored project.
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, ok := parseID(c, c.Param("id"))
	if !ok {
		return
	}

	var patch dto.ProjectPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	project, err := h.projectService.UpdateProject(id, patch)
	if err != nil {
		respondProjectError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// DeleteProject removes a project by ID.
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, ok := parseID(c, c.Param("id"))
	if !ok {
		return
	}

	if err := h.projectService.DeleteProject(id); err != nil {
		respondProjectError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// UploadFiles stores each multipart file under the upload directory and
// returns the generated web paths.
func (h *ProjectHandler) UploadFiles(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.UploadResponse{
			Success: false,
			Message: "Invalid multipart request",
		})
		return
	}

	files := form.File["files"]
	webPaths, err := h.store.SaveProjectFiles(files)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.UploadResponse{
			Success: false,
			Message: "Failed to upload files: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.UploadResponse{
		Success:   true,
		FilePaths: webPaths,
		Message:   strconv.Itoa(len(webPaths)) + " file(s) uploaded successfully",
	})
}

// VerifyFile reports whether an uploaded file is still present and readable.
func (h *ProjectHandler) VerifyFile(c *gin.Context) {
	filePath := c.Query("filePath")
	if filePath == "" {
		apierrors.BadRequest(c, "filePath is required")
		return
	}

	info, err := h.store.Verify(filePath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.VerifyFileResponse{
		Success:      true,
		FilePath:     filePath,
		ResolvedPath: info.ResolvedPath,
		Exists:       info.Exists,
		Readable:     info.Readable,
		Size:         info.Size,
	})
}

// DeleteFile removes one file from a project's stored list and, best-effort,
// from disk.
func (h *ProjectHandler) DeleteFile(c *gin.Context) {
	projectID, ok := parseID(c, c.Query("projectId"))
	if !ok {
		return
	}
	filePath := c.Query("filePath")
	if filePath == "" {
		apierrors.BadRequest(c, "filePath is required")
		return
	}

	result, err := h.projectService.RemoveFile(projectID, filePath)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProjectNotFound):
			c.JSON(http.StatusNotFound, dto.DeleteFileResponse{Success: false, Error: "Project not found"})
		case errors.Is(err, services.ErrFileNotInProject):
			c.JSON(http.StatusNotFound, dto.DeleteFileResponse{Success: false, Error: "File not found in project"})
		case errors.Is(err, services.ErrProjectHasNoFiles):
			c.JSON(http.StatusBadRequest, dto.DeleteFileResponse{Success: false, Error: "No files found in project"})
		case errors.Is(err, services.ErrInvalidFilePathList):
			c.JSON(http.StatusBadRequest, dto.DeleteFileResponse{Success: false, Error: "Invalid file paths format"})
		default:
			c.JSON(http.StatusInternalServerError, dto.DeleteFileResponse{Success: false, Error: "Failed to delete file"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.DeleteFileResponse{
		Success:        true,
		Message:        "File deleted successfully",
		DeletedFile:    filePath,
		RemainingFiles: result.RemainingFiles,
		UpdatedProject: result.Project,
		FileDeleted:    result.FileDeleted,
	})
}

func respondProjectError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrProjectNotFound) {
		apierrors.NotFound(c, err.Error())
		return
	}
	apierrors.InternalError(c, "")
}

// parseID parses a decimal ID, answering 400 itself on bad input.
func parseID(c *gin.Context, raw string) (uint64, bool) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid id")
		return 0, false
	}
	return id, true
}
