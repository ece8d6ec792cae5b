package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/liberiadate/liberiadate/internal/pkg/database"
	"github.com/liberiadate/liberiadate/internal/pkg/env"
	"github.com/liberiadate/liberiadate/internal/pkg/router"
)

func main() {
	app := NewApplication()
	err := app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "0.0.0.0"), env.GetEnv("APP_PORT", "3000")))
	log.Fatal(err)
}

func NewApplication() *fiber.App {
	env.SetupEnvFile()
	database.SetupDatabase()

	if err := os.MkdirAll(env.GetEnv("UPLOADS_DIR", "./uploads"), 0o755); err != nil {
		log.Fatalf("unable to create uploads directory: %v", err)
	}

	app := fiber.New(fiber.Config{
		// Four media files at 50 MiB each plus multipart overhead.
		BodyLimit: 220 * 1024 * 1024,
	})
	app.Use(recover.New(), logger.New())
	app.Get("/metrics", monitor.New())

	// ROUTER
	router.InstallRouter(app)

	return app
}
