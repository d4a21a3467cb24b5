package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/resonara/resonara_backend/internal/api/http/handler"
)

// Submission routes are fully public. Takers reach them through a shared
// link token, not an account.
func (r *Router) registerSubmissionRoutes(api fiber.Router, h *handler.SubmissionHandler) {
	api.Get("/links/:token", h.ResolveLink)
	api.Post("/links/:token/submissions", h.Start)

	api.Get("/submissions/:sid", h.Get)
	api.Post("/submissions/:sid/answers", h.RecordAnswer)
}
