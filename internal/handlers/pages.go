package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jestatech/jts-site/internal/middleware"
)

// PageHandler serves the HTML shells. Admin pages are gated by
// middleware.RequireAdminPage; the templates themselves live outside this
// repository and are loaded from TEMPLATES_GLOB.
type PageHandler struct{}

// NewPageHandler creates a new PageHandler.
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

func (h *PageHandler) public(template, title string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, template, gin.H{"pageTitle": title})
	}
}

// RegisterPublicPages mounts the marketing pages.
func (h *PageHandler) RegisterPublicPages(r gin.IRouter) {
	r.GET("/", h.public("public/index.html", "Home"))
	r.GET("/about", h.public("public/about.html", "About Us"))
	r.GET("/services", h.public("public/services.html", "Services"))
	r.GET("/portfolio", h.public("public/portfolio.html", "Portfolio"))
	r.GET("/contact", h.public("public/contact.html", "Contact"))
	r.GET("/privacy", h.public("public/privacy.html", "Privacy Policy"))
	r.GET("/terms", h.public("public/terms.html", "Terms & Conditions"))
}

// AdminHome sends an authenticated admin to the dashboard and everyone else
// to the login page.
func (h *PageHandler) AdminHome(c *gin.Context) {
	if _, ok := middleware.ReadAdminSession(c); ok {
		c.Redirect(http.StatusFound, "/admin/dashboard")
		return
	}
	c.Redirect(http.StatusFound, "/admin/login")
}

// LoginPage renders the login form, or skips straight to the dashboard when
// a session already exists.
func (h *PageHandler) LoginPage(c *gin.Context) {
	if _, ok := middleware.ReadAdminSession(c); ok {
		c.Redirect(http.StatusFound, "/admin/dashboard")
		return
	}
	c.HTML(http.StatusOK, "admin/login.html", gin.H{
		"pageTitle": "Admin Login",
		"error":     c.Query("error"),
	})
}

// RegisterAdminPages mounts the gated back-office pages.
func (h *PageHandler) RegisterAdminPages(r gin.IRouter) {
	pages := []struct {
		path     string
		template string
		title    string
	}{
		{"/dashboard", "admin/index.html", "Admin Dashboard"},
		{"/analytics", "admin/analytics.html", "Analytics"},
		{"/projects", "admin/projects.html", "Projects"},
		{"/users", "admin/users.html", "Users"},
		{"/billing", "admin/billing.html", "Billing"},
		{"/settings", "admin/settings.html", "Settings"},
		{"/tasks", "admin/tasks.html", "Tasks"},
		{"/forms", "admin/forms.html", "Forms"},
	}
	for _, p := range pages {
		r.GET(p.path, h.public(p.template, p.title))
	}
}
