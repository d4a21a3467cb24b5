package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/resonara/resonara_backend/internal/api/http/handler"
	"github.com/resonara/resonara_backend/pkg/authorize"
)

func (r *Router) registerOrganizationRoutes(
	api fiber.Router,
	h *handler.OrganizationHandler,
	authRequired fiber.Handler,
	orgCtx fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	// Public branding resolver for taker-facing pages.
	api.Get("/orgs/:slug", h.Resolve)

	orgs := api.Group("/organizations", authRequired)
	orgs.Get("/", h.ListMine)
	orgs.Post("/", requirePerm(authorize.ResourceOrganization, authorize.ActionCreate), h.Create)

	mgmt := orgs.Group("/:id", orgCtx)
	mgmt.Patch("/settings", requirePerm(authorize.ResourceOrgSettings, authorize.ActionUpdate), h.UpdateSettings)
}
