package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/resonara/resonara_backend/internal/api/http/handler"
	"github.com/resonara/resonara_backend/pkg/authorize"
)

func (r *Router) registerTakerRoutes(
	api fiber.Router,
	h *handler.TakerHandler,
	authRequired fiber.Handler,
	orgHeader fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	takers := api.Group("/takers", authRequired, orgHeader)
	takers.Get("/", requirePerm(authorize.ResourceTaker, authorize.ActionList), h.List)
	takers.Get("/:tid", requirePerm(authorize.ResourceTaker, authorize.ActionRead), h.Get)

	results := api.Group("/results", authRequired, orgHeader)
	results.Get("/", requirePerm(authorize.ResourceTestResult, authorize.ActionList), h.ListResults)
}
