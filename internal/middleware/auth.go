package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jestatech/jts-site/internal/constants"
	apierrors "github.com/jestatech/jts-site/internal/errors"
)

// RequireAdmin gates admin API routes: requests without an admin session get
// a 401 JSON response.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		adminSession, ok := ReadAdminSession(c)
		if !ok {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyAdminSession, adminSession)
		c.Next()
	}
}

// RequireAdminPage gates admin HTML pages: requests without an admin session
// are redirected to the login page.
func RequireAdminPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		adminSession, ok := ReadAdminSession(c)
		if !ok {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyAdminSession, adminSession)
		c.Next()
	}
}
