package middleware

import (
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/jestatech/jts-site/internal/constants"
)

// AdminSession is the authenticated admin's session state.
type AdminSession struct {
	UserID   uint64    `json:"userId"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IssuedAt time.Time `json:"issuedAt"`
}

// SetAdminSession stores the admin identity in the request's session.
func SetAdminSession(c *gin.Context, adminSession AdminSession) error {
	session := sessions.Default(c)
	session.Set(constants.SessionKeyUserID, adminSession.UserID)
	session.Set(constants.SessionKeyUsername, adminSession.Username)
	session.Set(constants.SessionKeyEmail, adminSession.Email)
	session.Set(constants.SessionKeyRole, adminSession.Role)
	session.Set(constants.SessionKeyIssuedAt, adminSession.IssuedAt.Unix())
	return session.Save()
}

// ClearAdminSession destroys the session.
func ClearAdminSession(c *gin.Context) error {
	session := sessions.Default(c)
	session.Clear()
	return session.Save()
}

// ReadAdminSession decodes the admin session, reporting whether one exists.
func ReadAdminSession(c *gin.Context) (AdminSession, bool) {
	session := sessions.Default(c)

	username, ok := session.Get(constants.SessionKeyUsername).(string)
	if !ok || username == "" {
		return AdminSession{}, false
	}

	adminSession := AdminSession{Username: username}
	if userID, ok := session.Get(constants.SessionKeyUserID).(uint64); ok {
		adminSession.UserID = userID
	}
	if email, ok := session.Get(constants.SessionKeyEmail).(string); ok {
		adminSession.Email = email
	}
	if role, ok := session.Get(constants.SessionKeyRole).(string); ok {
		adminSession.Role = role
	}
	if issuedAt, ok := session.Get(constants.SessionKeyIssuedAt).(int64); ok {
		adminSession.IssuedAt = time.Unix(issuedAt, 0)
	}

	return adminSession, true
}

// GetAdminSession retrieves the session the auth middleware stored in the
// gin context.
func GetAdminSession(c *gin.Context) (AdminSession, bool) {
	value, exists := c.Get(constants.ContextKeyAdminSession)
	if !exists {
		return AdminSession{}, false
	}
	adminSession, ok := value.(AdminSession)
	return adminSession, ok
}
