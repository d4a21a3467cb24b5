package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/resonara/resonara_backend/internal/api/http/handler"
	"github.com/resonara/resonara_backend/pkg/authorize"
)

func (r *Router) registerQuestionRoutes(
	api fiber.Router,
	h *handler.QuestionHandler,
	authRequired fiber.Handler,
	orgHeader fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	questions := api.Group("/questions", authRequired, orgHeader)

	questions.Get("/", requirePerm(authorize.ResourceQuestion, authorize.ActionList), h.List)
	questions.Post("/", requirePerm(authorize.ResourceQuestion, authorize.ActionCreate), h.Create)
	questions.Patch("/:qid", requirePerm(authorize.ResourceQuestion, authorize.ActionUpdate), h.Update)
	questions.Delete("/:qid", requirePerm(authorize.ResourceQuestion, authorize.ActionDelete), h.Delete)
}
