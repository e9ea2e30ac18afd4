package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jestatech/jts-site/internal/database"
	"github.com/jestatech/jts-site/internal/models"
	"github.com/jestatech/jts-site/internal/repository"
	"github.com/jestatech/jts-site/internal/services"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSettingsTestEnv(t *testing.T) (*gorm.DB, *gin.Engine) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.Settings{}))

	database.SetDB(db)

	settingsRepo := repository.NewSettingsRepository(db)
	handler := NewSettingsHandler(services.NewSettingsService(settingsRepo))

	r := gin.New()
	r.GET("/api/admin/settings/:userId", handler.GetSettings)
	r.PUT("/api/admin/settings/:userId", handler.UpdateSettings)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db, r
}

func TestSettingsHandler_GetSettings_CreatesDefaults(t *testing.T) {
	db, r := setupSettingsTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/settings/42", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var settings models.Settings
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &settings))
	require.Equal(t, uint64(42), settings.UserID)
	require.True(t, settings.EmailNotifications)
	require.Equal(t, "en", settings.Language)
	require.Equal(t, "Asia/Kolkata", settings.Timezone)

	// The row was persisted, not just synthesized.
	var count int64
	require.NoError(t, db.Model(&models.Settings{}).Where("user_id = ?", 42).Count(&count).Error)
	require.Equal(t, int64(1), count)

	// A second read reuses the row.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/admin/settings/42", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, db.Model(&models.Settings{}).Where("user_id = ?", 42).Count(&count).Error)
	require.Equal(t, int64(1), count)
}

func TestSettingsHandler_UpdateSettings_PartialPatch(t *testing.T) {
	_, r := setupSettingsTestEnv(t)

	body, err := json.Marshal(map[string]interface{}{
		"companyName":        "Jesta Tech Solutions",
		"emailNotifications": false,
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/api/admin/settings/7", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var settings models.Settings
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &settings))
	require.Equal(t, "Jesta Tech Solutions", settings.CompanyName)
	require.False(t, settings.EmailNotifications)
	// Unpatched fields keep their defaults.
	require.True(t, settings.PushNotifications)
	require.Equal(t, "en", settings.Language)
}
