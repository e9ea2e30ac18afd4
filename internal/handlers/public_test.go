package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jestatech/jts-site/internal/database"
	"github.com/jestatech/jts-site/internal/models"
	"github.com/jestatech/jts-site/internal/repository"
	"github.com/jestatech/jts-site/internal/services"
	"github.com/jestatech/jts-site/internal/storage"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupPublicTestEnv(t *testing.T) (*gorm.DB, *gin.Engine) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.Project{}))

	database.SetDB(db)

	store, err := storage.New(t.TempDir())
	require.NoError(t, err)

	projectRepo := repository.NewProjectRepository(db)
	handler := NewPublicHandler(services.NewProjectService(projectRepo, store))

	r := gin.New()
	r.GET("/api/projects/latest", handler.LatestProjects)
	r.GET("/api/projects/all", handler.AllProjects)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db, r
}

func TestPublicHandler_LatestProjects_NewestFirst(t *testing.T) {
	db, r := setupPublicTestEnv(t)

	older := models.Project{Name: "Older", Status: models.ProjectStatusCompleted}
	require.NoError(t, db.Create(&older).Error)
	require.NoError(t, db.Model(&older).Update("created_at", time.Now().Add(-time.Hour)).Error)

	newer := models.Project{Name: "Newer", Status: models.ProjectStatusActive}
	require.NoError(t, db.Create(&newer).Error)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/projects/latest", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var projects []models.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &projects))
	require.Len(t, projects, 2)
	require.Equal(t, "Newer", projects[0].Name)
	require.Equal(t, "Older", projects[1].Name)
}

func TestPublicHandler_AllProjects(t *testing.T) {
	db, r := setupPublicTestEnv(t)

	require.NoError(t, db.Create(&models.Project{Name: "One", Status: models.ProjectStatusActive}).Error)
	require.NoError(t, db.Create(&models.Project{Name: "Two", Status: models.ProjectStatusOnHold}).Error)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/projects/all", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var projects []models.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &projects))
	require.Len(t, projects, 2)
}
