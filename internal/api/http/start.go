package http

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/fx"

	"github.com/resonara/resonara_backend/config"
	"github.com/resonara/resonara_backend/internal/api/http/router"
	"github.com/resonara/resonara_backend/internal/app"
)

// Start runs the full HTTP stack outside the cobra CLI, mainly for embedding
// in tests or auxiliary binaries.
func Start(cfg *config.Config, timeout time.Duration) {
	fx.New(
		fx.Supply(cfg),
		app.InfraModule,
		app.ServiceModule,
		app.WorkerModule,
		router.Module,
		Module, // the http.Module from server.go

		// Invoke *fiber.App because that's what NewServer returns.
		// This forces the creation of fiber.App, triggering the OnStart hook.
		fx.Invoke(func(*fiber.App) {}),

		fx.StopTimeout(timeout),
	).Run()
}
