package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/liberiadate/liberiadate/app/controllers"
	"github.com/liberiadate/liberiadate/app/repository"
	"github.com/liberiadate/liberiadate/internal/pkg/middleware"
	"github.com/liberiadate/liberiadate/internal/pkg/payment"
	"github.com/liberiadate/liberiadate/internal/pkg/session"
)

// ApiRouter installs the JSON API: public browsing/submission/payment
// endpoints and the cookie-gated admin endpoints.
type ApiRouter struct {
	repos      *repository.Repositories
	sessions   session.Store
	payments   *payment.Client
	uploadsDir string
}

func NewApiRouter(repos *repository.Repositories, sessions session.Store, payments *payment.Client, uploadsDir string) *ApiRouter {
	return &ApiRouter{repos: repos, sessions: sessions, payments: payments, uploadsDir: uploadsDir}
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	auth := controllers.NewAuthController(h.repos, h.sessions)
	profiles := controllers.NewProfileController(h.repos)
	reports := controllers.NewReportController(h.repos)
	uploads := controllers.NewUploadController(h.uploadsDir)
	checkout := controllers.NewCheckoutController(h.repos, h.payments)

	api := app.Group("/api", limiter.New(limiter.Config{
		Max:        120,
		Expiration: 1 * time.Minute,
	}))

	// Public endpoints
	api.Get("/profiles", profiles.HandleListApproved)
	api.Post("/profiles", profiles.HandleSubmit)
	api.Post("/reports", reports.HandleCreate)
	api.Post("/upload-media", uploads.HandleUploadMedia)
	api.Post("/create-checkout-session", checkout.HandleCreateCheckoutSession)
	api.Get("/verify-payment", checkout.HandleVerifyPayment)

	// Admin account lifecycle; these manage their own session handling.
	admin := api.Group("/admin")
	admin.Get("/setup-status", auth.HandleSetupStatus)
	admin.Post("/setup", auth.HandleSetup)
	admin.Post("/login", auth.HandleLogin)
	admin.Post("/logout", auth.HandleLogout)
	admin.Post("/reset-account", auth.HandleResetAccount)
	admin.Get("/session", auth.HandleSession)

	// Moderation endpoints behind the session cookie.
	protected := admin.Group("", middleware.RequireAdminAuth(h.sessions))
	protected.Get("/profiles", profiles.HandleAdminList)
	protected.Post("/profiles/:id/approve", profiles.HandleAdminApprove)
	protected.Delete("/profiles/:id", profiles.HandleAdminDelete)
	protected.Get("/reports", reports.HandleAdminList)
	protected.Post("/reports/:id/resolve", reports.HandleAdminResolve)
	protected.Delete("/reports/:id", reports.HandleAdminDelete)
}
