package controllers

import (
	"path/filepath"

	"github.com/gofiber/fiber/v2"

	"github.com/liberiadate/liberiadate/internal/pkg/session"
)

// publicPagePaths are the visitor-facing pages. An authenticated admin who
// requests one is sent to the dashboard instead; the product keeps the admin
// and visitor views strictly apart.
var publicPagePaths = map[string]bool{
	"/":            true,
	"/index.html":  true,
	"/regis.html":  true,
	"/report.html": true,
}

// PageController gates the static admin pages behind the session registry.
type PageController struct {
	sessions  session.Store
	publicDir string
}

func NewPageController(sessions session.Store, publicDir string) *PageController {
	return &PageController{sessions: sessions, publicDir: publicDir}
}

func (pc *PageController) hasValidSession(c *fiber.Ctx) bool {
	token := session.TokenFromRequest(c)
	if token == "" || !pc.sessions.Validate(token) {
		return false
	}
	session.SetCookie(c, token)
	return true
}

// HandleAdminDashboard serves the dashboard to a logged-in admin and sends
// everyone else to the login page.
// GET /admin.html
func (pc *PageController) HandleAdminDashboard(c *fiber.Ctx) error {
	if !pc.hasValidSession(c) {
		return c.Redirect("/admin-login.html", fiber.StatusFound)
	}
	return c.SendFile(filepath.Join(pc.publicDir, "admin.html"))
}

// HandleAdminEntry bounces the bare /admin path to the login page.
// GET /admin
func (pc *PageController) HandleAdminEntry(c *fiber.Ctx) error {
	return c.Redirect("/admin-login.html", fiber.StatusFound)
}

// HandleAdminLoginPage serves the login form, or the dashboard when the
// caller is already logged in.
// GET /admin-login.html
func (pc *PageController) HandleAdminLoginPage(c *fiber.Ctx) error {
	if pc.hasValidSession(c) {
		return c.Redirect("/admin.html", fiber.StatusFound)
	}
	return c.SendFile(filepath.Join(pc.publicDir, "admin-login.html"))
}

// HandleAdminSetupPage never serves the setup form directly; setup is only
// reachable through the login page's needsSetup flow.
// GET /admin-setup.html
func (pc *PageController) HandleAdminSetupPage(c *fiber.Ctx) error {
	if pc.hasValidSession(c) {
		return c.Redirect("/admin.html", fiber.StatusFound)
	}
	return c.Redirect("/admin-login.html", fiber.StatusFound)
}

// RedirectAdminFromPublicPages moves an authenticated admin from the public
// pages to the dashboard. All other requests pass through untouched.
func (pc *PageController) RedirectAdminFromPublicPages(c *fiber.Ctx) error {
	if !publicPagePaths[c.Path()] {
		return c.Next()
	}
	if !pc.hasValidSession(c) {
		return c.Next()
	}
	return c.Redirect("/admin.html", fiber.StatusFound)
}
