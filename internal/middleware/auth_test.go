package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/jestatech/jts-site/internal/constants"
	"github.com/stretchr/testify/require"
)

func newSessionRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	store := cookie.NewStore([]byte("secret"))
	r.Use(sessions.Sessions(constants.SessionCookieName, store))
	return r
}

func loginCookies(t *testing.T, r *gin.Engine) []*http.Cookie {
	t.Helper()

	r.POST("/test-login", func(c *gin.Context) {
		err := SetAdminSession(c, AdminSession{
			UserID:   7,
			Username: "jane",
			Email:    "jane@example.com",
			Role:     "ADMIN",
			IssuedAt: time.Now(),
		})
		require.NoError(t, err)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/test-login", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	return w.Result().Cookies()
}

func TestRequireAdmin_RejectsAnonymous(t *testing.T) {
	r := newSessionRouter()
	r.GET("/api/admin/ping", RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "UNAUTHORIZED")
}

func TestRequireAdmin_PassesSessionToContext(t *testing.T) {
	r := newSessionRouter()
	cookies := loginCookies(t, r)

	r.GET("/api/admin/ping", RequireAdmin(), func(c *gin.Context) {
		adminSession, ok := GetAdminSession(c)
		require.True(t, ok)
		require.Equal(t, uint64(7), adminSession.UserID)
		require.Equal(t, "jane", adminSession.Username)
		require.Equal(t, "ADMIN", adminSession.Role)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/ping", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAdminPage_RedirectsAnonymous(t *testing.T) {
	r := newSessionRouter()
	r.GET("/admin/dashboard", RequireAdminPage(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/admin/login", w.Header().Get("Location"))
}

func TestRequireAdminPage_AllowsSession(t *testing.T) {
	r := newSessionRouter()
	cookies := loginCookies(t, r)

	r.GET("/admin/dashboard", RequireAdminPage(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
}
