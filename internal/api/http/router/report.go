package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/resonara/resonara_backend/internal/api/http/handler"
	"github.com/resonara/resonara_backend/pkg/authorize"
)

func (r *Router) registerReportRoutes(
	api fiber.Router,
	h *handler.ReportHandler,
	authRequired fiber.Handler,
	orgHeader fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	// Public report views for takers.
	api.Get("/orgs/:slug/takers/:tid/report", h.Get)
	api.Get("/orgs/:slug/takers/:tid/report.pdf", h.GetPDF)

	drafts := api.Group("/drafts", authRequired, orgHeader)
	drafts.Get("/", requirePerm(authorize.ResourceReportDraft, authorize.ActionList), h.ListDrafts)
	drafts.Put("/:profile", requirePerm(authorize.ResourceReportDraft, authorize.ActionUpdate), h.UpsertDraft)
	drafts.Delete("/:profile", requirePerm(authorize.ResourceReportDraft, authorize.ActionDelete), h.DeleteDraft)
}
