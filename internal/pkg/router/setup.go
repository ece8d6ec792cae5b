package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/liberiadate/liberiadate/app/repository"
	"github.com/liberiadate/liberiadate/internal/pkg/database"
	"github.com/liberiadate/liberiadate/internal/pkg/env"
	"github.com/liberiadate/liberiadate/internal/pkg/payment"
	"github.com/liberiadate/liberiadate/internal/pkg/session"
)

type Router interface {
	InstallRouter(app *fiber.App)
}

// InstallRouter wires the shared dependencies (repositories, the session
// registry, the payment client) and installs the page routes before the API
// routes, matching the order the page-redirect middleware relies on.
func InstallRouter(app *fiber.App) {
	repository.InitializeFactory(database.GetDB())
	repos := repository.GetGlobalRepositories()
	sessions := session.NewMemoryStore(session.DefaultTTL)
	payments := payment.NewClientFromEnv()

	publicDir := env.GetEnv("PUBLIC_DIR", "./public")
	uploadsDir := env.GetEnv("UPLOADS_DIR", "./uploads")

	setup(app,
		NewHttpRouter(sessions, publicDir, uploadsDir),
		NewApiRouter(repos, sessions, payments, uploadsDir),
	)
}

func setup(app *fiber.App, router ...Router) {
	for _, r := range router {
		r.InstallRouter(app)
	}
}
