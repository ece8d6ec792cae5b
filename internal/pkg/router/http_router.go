package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/liberiadate/liberiadate/app/controllers"
	"github.com/liberiadate/liberiadate/internal/pkg/session"
)

// HttpRouter owns the static site: the gated admin pages, the redirect that
// keeps a logged-in admin off the public pages, and the asset mounts.
type HttpRouter struct {
	sessions   session.Store
	publicDir  string
	uploadsDir string
}

func NewHttpRouter(sessions session.Store, publicDir, uploadsDir string) *HttpRouter {
	return &HttpRouter{sessions: sessions, publicDir: publicDir, uploadsDir: uploadsDir}
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	pages := controllers.NewPageController(h.sessions, h.publicDir)

	// Gated admin pages must be registered before the static mount so the
	// dashboard file is never served without a session check.
	app.Get("/admin", pages.HandleAdminEntry)
	app.Get("/admin.html", pages.HandleAdminDashboard)
	app.Get("/admin-login.html", pages.HandleAdminLoginPage)
	app.Get("/admin-setup.html", pages.HandleAdminSetupPage)

	app.Use(pages.RedirectAdminFromPublicPages)

	app.Static("/uploads", h.uploadsDir)
	app.Static("/", h.publicDir, fiber.Static{
		Index: "index.html",
	})
}
