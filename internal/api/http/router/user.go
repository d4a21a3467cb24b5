package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/resonara/resonara_backend/internal/api/http/handler"
	"github.com/resonara/resonara_backend/pkg/authorize"
)

func (r *Router) registerUserRoutes(
	api fiber.Router,
	h *handler.UserHandler,
	authRequired fiber.Handler,
	orgHeader fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	me := api.Group("/users/me", authRequired)
	me.Get("/", h.GetMe)
	me.Post("/password", h.ChangePassword)

	members := api.Group("/members", authRequired, orgHeader)
	members.Get("/", requirePerm(authorize.ResourceOrgMember, authorize.ActionList), h.ListMembers)
	members.Post("/", requirePerm(authorize.ResourceOrgMember, authorize.ActionCreate), h.Invite)
	members.Patch("/:uid", requirePerm(authorize.ResourceOrgMember, authorize.ActionUpdate), h.UpdateRole)
	members.Delete("/:uid", requirePerm(authorize.ResourceOrgMember, authorize.ActionDelete), h.RemoveMember)
}
