package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jestatech/jts-site/internal/database"
	"github.com/jestatech/jts-site/internal/dto"
	"github.com/jestatech/jts-site/internal/models"
	"github.com/jestatech/jts-site/internal/repository"
	"github.com/jestatech/jts-site/internal/services"
	"github.com/jestatech/jts-site/internal/storage"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ProjectHandlerTestSuite defines the test suite for ProjectHandler
type ProjectHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	store   *storage.Store
	handler *ProjectHandler
	router  *gin.Engine
}

// SetupTest runs before each test
func (suite *ProjectHandlerTestSuite) SetupTest() {
	var err error

	// Create in-memory SQLite database
	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	// Run migrations
	err = suite.db.AutoMigrate(&models.Project{})
	suite.Require().NoError(err)

	// Set the test DB as the default database
	database.SetDB(suite.db)

	suite.store, err = storage.New(suite.T().TempDir())
	suite.Require().NoError(err)

	projectRepo := repository.NewProjectRepository(suite.db)
	projectService := services.NewProjectService(projectRepo, suite.store)
	suite.handler = NewProjectHandler(projectService, suite.store)

	// Set Gin to test mode
	gin.SetMode(gin.TestMode)

	// Create router
	suite.router = gin.New()
	suite.router.GET("/api/admin/projects", suite.handler.ListProjects)
	suite.router.POST("/api/admin/projects/create", suite.handler.CreateProject)
	suite.router.POST("/api/admin/projects/upload-files", suite.handler.UploadFiles)
	suite.router.DELETE("/api/admin/projects/delete-file", suite.handler.DeleteFile)
	suite.router.GET("/api/admin/projects/:id", suite.handler.GetProject)
	suite.router.PUT("/api/admin/projects/:id", suite.handler.UpdateProject)
	suite.router.DELETE("/api/admin/projects/delete/:id", suite.handler.DeleteProject)
}

// TearDownTest runs after each test
func (suite *ProjectHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *ProjectHandlerTestSuite) createTestProject(name string, filePaths *string, imageURL *string) *models.Project {
	project := &models.Project{
		Name:        name,
		Description: "Test Description",
		Status:      models.ProjectStatusActive,
		FilePaths:   filePaths,
		ImageURL:    imageURL,
	}
	suite.db.Create(project)
	return project
}

func (suite *ProjectHandlerTestSuite) serveJSON(method, url string, payload interface{}) *httptest.ResponseRecorder {
	var req *http.Request
	if payload != nil {
		body, err := json.Marshal(payload)
		suite.Require().NoError(err)
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *ProjectHandlerTestSuite) TestCreateProject() {
	w := suite.serveJSON(http.MethodPost, "/api/admin/projects/create", map[string]interface{}{
		"name":       "Website Redesign",
		"status":     "ACTIVE",
		"clientName": "Acme",
	})

	suite.Equal(http.StatusOK, w.Code)

	var created models.Project
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &created))
	suite.NotZero(created.ID)
	suite.Equal("Website Redesign", created.Name)
	suite.Equal(models.ProjectStatusActive, created.Status)
}

func (suite *ProjectHandlerTestSuite) TestCreateProject_MissingName() {
	w := suite.serveJSON(http.MethodPost, "/api/admin/projects/create", map[string]interface{}{
		"status": "ACTIVE",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *ProjectHandlerTestSuite) TestGetProject() {
	project := suite.createTestProject("Website Redesign", nil, nil)

	w := suite.serveJSON(http.MethodGet, fmt.Sprintf("/api/admin/projects/%d", project.ID), nil)

	suite.Equal(http.StatusOK, w.Code)

	var fetched models.Project
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &fetched))
	suite.Equal(project.ID, fetched.ID)
	suite.Equal("Website Redesign", fetched.Name)
}

func (suite *ProjectHandlerTestSuite) TestGetProject_NotFound() {
	w := suite.serveJSON(http.MethodGet, "/api/admin/projects/9999", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *ProjectHandlerTestSuite) TestUpdateProject_PartialPatch() {
	project := suite.createTestProject("Old Name", nil, nil)

	w := suite.serveJSON(http.MethodPut, fmt.Sprintf("/api/admin/projects/%d", project.ID), map[string]interface{}{
		"name": "New Name",
	})

	suite.Equal(http.StatusOK, w.Code)

	var updated models.Project
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &updated))
	suite.Equal("New Name", updated.Name)
	// Fields absent from the patch keep their stored values.
	suite.Equal("Test Description", updated.Description)
	suite.Equal(models.ProjectStatusActive, updated.Status)
}

func (suite *ProjectHandlerTestSuite) TestDeleteProject() {
	project := suite.createTestProject("Website Redesign", nil, nil)

	w := suite.serveJSON(http.MethodDelete, fmt.Sprintf("/api/admin/projects/delete/%d", project.ID), nil)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.serveJSON(http.MethodGet, fmt.Sprintf("/api/admin/projects/%d", project.ID), nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *ProjectHandlerTestSuite) TestDeleteProject_NotFound() {
	w := suite.serveJSON(http.MethodDelete, "/api/admin/projects/delete/9999", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *ProjectHandlerTestSuite) TestUploadFiles() {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	for _, name := range []string{"photo.png", "photo.png"} {
		part, err := writer.CreateFormFile("files", name)
		suite.Require().NoError(err)
		_, err = part.Write([]byte("image-bytes"))
		suite.Require().NoError(err)
	}
	suite.Require().NoError(writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/admin/projects/upload-files", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.UploadResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Success)
	suite.Len(resp.FilePaths, 2)
	// Identical original names still produce distinct stored paths.
	suite.NotEqual(resp.FilePaths[0], resp.FilePaths[1])
	suite.Contains(resp.FilePaths[0], "/uploads/projects/")
}

func (suite *ProjectHandlerTestSuite) TestDeleteFile_PromotesNextImage() {
	filePaths := `["/uploads/projects/a.png","/uploads/projects/b.png"]`
	imageURL := "/uploads/projects/a.png"
	project := suite.createTestProject("Gallery", &filePaths, &imageURL)

	url := fmt.Sprintf(
		"/api/admin/projects/delete-file?projectId=%d&filePath=%s",
		project.ID, "/uploads/projects/a.png",
	)
	w := suite.serveJSON(http.MethodDelete, url, nil)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.DeleteFileResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Success)
	suite.Equal([]string{"/uploads/projects/b.png"}, resp.RemainingFiles)
	suite.Require().NotNil(resp.UpdatedProject)
	suite.Require().NotNil(resp.UpdatedProject.ImageURL)
	suite.Equal("/uploads/projects/b.png", *resp.UpdatedProject.ImageURL)
}

func (suite *ProjectHandlerTestSuite) TestDeleteFile_LastFileClearsImage() {
	filePaths := `["/uploads/projects/a.png"]`
	imageURL := "/uploads/projects/a.png"
	project := suite.createTestProject("Gallery", &filePaths, &imageURL)

	url := fmt.Sprintf(
		"/api/admin/projects/delete-file?projectId=%d&filePath=%s",
		project.ID, "/uploads/projects/a.png",
	)
	w := suite.serveJSON(http.MethodDelete, url, nil)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.DeleteFileResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Success)
	suite.Empty(resp.RemainingFiles)
	suite.Require().NotNil(resp.UpdatedProject)
	suite.Nil(resp.UpdatedProject.ImageURL)
	suite.Nil(resp.UpdatedProject.FilePaths)
}

func (suite *ProjectHandlerTestSuite) TestDeleteFile_NotInProject() {
	filePaths := `["/uploads/projects/a.png"]`
	project := suite.createTestProject("Gallery", &filePaths, nil)

	url := fmt.Sprintf(
		"/api/admin/projects/delete-file?projectId=%d&filePath=%s",
		project.ID, "/uploads/projects/other.png",
	)
	w := suite.serveJSON(http.MethodDelete, url, nil)

	suite.Equal(http.StatusNotFound, w.Code)

	var resp dto.DeleteFileResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.False(resp.Success)
	suite.Equal("File not found in project", resp.Error)
}

func (suite *ProjectHandlerTestSuite) TestDeleteFile_NoFiles() {
	project := suite.createTestProject("Empty", nil, nil)

	url := fmt.Sprintf(
		"/api/admin/projects/delete-file?projectId=%d&filePath=%s",
		project.ID, "/uploads/projects/a.png",
	)
	w := suite.serveJSON(http.MethodDelete, url, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

// TestProjectHandlerTestSuite runs the test suite
func TestProjectHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectHandlerTestSuite))
}
