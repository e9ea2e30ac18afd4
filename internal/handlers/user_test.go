package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jestatech/jts-site/internal/database"
	"github.com/jestatech/jts-site/internal/models"
	"github.com/jestatech/jts-site/internal/repository"
	"github.com/jestatech/jts-site/internal/services"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type userTestEnv struct {
	db     *gorm.DB
	router *gin.Engine
}

func setupUserTestEnv(t *testing.T) userTestEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}))

	database.SetDB(db)

	userRepo := repository.NewUserRepository(db)
	handler := NewUserHandler(services.NewUserService(userRepo))

	r := gin.New()
	r.GET("/api/admin/users", handler.ListUsers)
	r.POST("/api/admin/users/create", handler.CreateUser)
	r.GET("/api/admin/users/:id", handler.GetUser)
	r.PUT("/api/admin/users/:id", handler.UpdateUser)
	r.DELETE("/api/admin/users/delete/:id", handler.DeleteUser)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return userTestEnv{db: db, router: r}
}

func (env userTestEnv) serveJSON(t *testing.T, method, url string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if payload != nil {
		body, err := json.Marshal(payload)
		require.NoError(t, err)
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func TestUserHandler_CreateUser(t *testing.T) {
	env := setupUserTestEnv(t)

	w := env.serveJSON(t, http.MethodPost, "/api/admin/users/create", map[string]string{
		"username": "jane",
		"email":    "jane@example.com",
		"password": "supersecret",
		"role":     "ADMIN",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var created models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotZero(t, created.ID)
	require.Equal(t, "Active", created.Status)

	// The response never carries the stored hash.
	require.NotContains(t, w.Body.String(), "passwordHash")

	// The stored hash is not the plaintext password.
	var stored models.User
	require.NoError(t, env.db.First(&stored, created.ID).Error)
	require.NotEqual(t, "supersecret", stored.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("supersecret")))
}

func TestUserHandler_CreateUser_DuplicateUsername(t *testing.T) {
	env := setupUserTestEnv(t)

	payload := map[string]string{
		"username": "jane",
		"email":    "jane@example.com",
		"password": "supersecret",
		"role":     "ADMIN",
	}
	w := env.serveJSON(t, http.MethodPost, "/api/admin/users/create", payload)
	require.Equal(t, http.StatusOK, w.Code)

	payload["email"] = "other@example.com"
	w = env.serveJSON(t, http.MethodPost, "/api/admin/users/create", payload)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "already exists")
}

func TestUserHandler_CreateUser_MissingFields(t *testing.T) {
	env := setupUserTestEnv(t)

	w := env.serveJSON(t, http.MethodPost, "/api/admin/users/create", map[string]string{
		"username": "jane",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUserHandler_UpdateUser_RehashesPassword(t *testing.T) {
	env := setupUserTestEnv(t)

	w := env.serveJSON(t, http.MethodPost, "/api/admin/users/create", map[string]string{
		"username": "jane",
		"email":    "jane@example.com",
		"password": "supersecret",
		"role":     "ADMIN",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var created models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = env.serveJSON(t, http.MethodPut, fmt.Sprintf("/api/admin/users/%d", created.ID), map[string]string{
		"password": "newpassword",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var stored models.User
	require.NoError(t, env.db.First(&stored, created.ID).Error)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("newpassword")))

	// Untouched fields survive the patch.
	require.Equal(t, "jane", stored.Username)
	require.Equal(t, "ADMIN", stored.Role)
}

func TestUserHandler_DeleteUser(t *testing.T) {
	env := setupUserTestEnv(t)

	w := env.serveJSON(t, http.MethodPost, "/api/admin/users/create", map[string]string{
		"username": "jane",
		"email":    "jane@example.com",
		"password": "supersecret",
		"role":     "ADMIN",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var created models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = env.serveJSON(t, http.MethodDelete, fmt.Sprintf("/api/admin/users/delete/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.serveJSON(t, http.MethodGet, fmt.Sprintf("/api/admin/users/%d", created.ID), nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestUserHandler_GetUser_NotFound(t *testing.T) {
	env := setupUserTestEnv(t)

	w := env.serveJSON(t, http.MethodGet, "/api/admin/users/9999", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}
