package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	apierrors "github.com/jestatech/jts-site/internal/errors"
	"github.com/jestatech/jts-site/internal/middleware"
	"github.com/jestatech/jts-site/internal/services"
)

// AuthHandler coordinates admin login, logout and session introspection.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login processes the admin login form. The form posts either an email or a
// username field depending on which page submitted it.
func (h *AuthHandler) Login(c *gin.Context) {
	loginID := c.PostForm("email")
	if loginID == "" {
		loginID = c.PostForm("username")
	}
	password := c.PostForm("password")

	identity, err := h.authService.Authenticate(loginID, password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.Redirect(http.StatusFound, "/admin/login?error=invalid")
			return
		}
		c.Redirect(http.StatusFound, "/admin/login?error=server")
		return
	}

	adminSession := middleware.AdminSession{
		UserID:   identity.UserID,
		Username: identity.Username,
		Email:    identity.Email,
		Role:     identity.Role,
		IssuedAt: time.Now(),
	}
	if err := middleware.SetAdminSession(c, adminSession); err != nil {
		apierrors.InternalError(c, "Failed to save session")
		return
	}

	c.Redirect(http.StatusFound, "/admin/dashboard")
}

// Logout destroys the admin session and returns to the login page.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := middleware.ClearAdminSession(c); err != nil {
		apierrors.InternalError(c, "Failed to logout")
		return
	}
	c.Redirect(http.StatusFound, "/admin/login")
}

// GetCurrentUser returns the admin session as JSON.
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	adminSession, ok := middleware.ReadAdminSession(c)
	if !ok {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}
	c.JSON(http.StatusOK, adminSession)
}
