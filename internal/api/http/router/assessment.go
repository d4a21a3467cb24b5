package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/resonara/resonara_backend/internal/api/http/handler"
	"github.com/resonara/resonara_backend/pkg/authorize"
)

func (r *Router) registerAssessmentRoutes(
	api fiber.Router,
	h *handler.AssessmentHandler,
	authRequired fiber.Handler,
	orgHeader fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	tests := api.Group("/tests", authRequired, orgHeader)
	tests.Get("/", requirePerm(authorize.ResourceTest, authorize.ActionList), h.ListTests)
	tests.Post("/", requirePerm(authorize.ResourceTest, authorize.ActionCreate), h.CreateTest)
	tests.Patch("/:tid", requirePerm(authorize.ResourceTest, authorize.ActionUpdate), h.UpdateTest)
	tests.Get("/:tid/links", requirePerm(authorize.ResourceTestLink, authorize.ActionList), h.ListLinks)
	tests.Post("/:tid/links", requirePerm(authorize.ResourceTestLink, authorize.ActionCreate), h.CreateLink)

	links := api.Group("/links", authRequired, orgHeader)
	links.Delete("/:lid", requirePerm(authorize.ResourceTestLink, authorize.ActionDelete), h.DeleteLink)
	links.Post("/:lid/sms", requirePerm(authorize.ResourceTestLink, authorize.ActionExecute), h.SendLinkSMS)
}
