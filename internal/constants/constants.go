package constants

// Session
const (
	SessionCookieName = "jts_admin_session"

	SessionKeyUserID   = "admin_user_id"
	SessionKeyUsername = "admin_username"
	SessionKeyEmail    = "admin_email"
	SessionKeyRole     = "admin_role"
	SessionKeyIssuedAt = "admin_issued_at"
)

// ContextKeyAdminSession is the gin context key the auth middleware stores the
// decoded admin session under.
const ContextKeyAdminSession = "admin_session"

// Bootstrap admin credentials honored when the bypass login is enabled.
const (
	BypassUsername = "admin"
	BypassEmail    = "admin@admin.com"
	BypassPassword = "admin"
)

// Entity defaults
const (
	DefaultTaskStatus   = "TODO"
	DefaultTaskPriority = "MEDIUM"
	DefaultUserStatus   = "Active"
)

// Task statuses tracked by the stats endpoint.
var TaskStatuses = []string{"TODO", "IN_PROGRESS", "REVIEW", "DONE"}
