package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/resonara/resonara_backend/internal/api/http/middleware"
	"github.com/resonara/resonara_backend/internal/service/user"
	pasetotoken "github.com/resonara/resonara_backend/pkg/paseto"
)

type UserHandler struct {
	svc user.Service
}

func NewUserHandler(svc user.Service) *UserHandler {
	return &UserHandler{svc: svc}
}

// GET /api/v1/users/me
func (h *UserHandler) GetMe(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	u, err := h.svc.GetByID(c.Context(), claims.UserID.String())
	if err != nil {
		return mapUserError(c, err)
	}
	return ok(c, u)
}

// POST /api/v1/users/me/password
func (h *UserHandler) ChangePassword(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		NewPassword string `json:"new_password"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := h.svc.ChangePassword(c.Context(), claims.UserID, body.NewPassword); err != nil {
		return mapUserError(c, err)
	}
	return ok(c, fiber.Map{"message": "password changed"})
}

// GET /api/v1/members
func (h *UserHandler) ListMembers(c fiber.Ctx) error {
	orgID, okc := middleware.OrgIDFromFiber(c)
	if !okc {
		return badRequest(c, "organization context required")
	}

	members, err := h.svc.ListMembers(c.Context(), orgID)
	if err != nil {
		return internalError(c)
	}

	out := make([]fiber.Map, 0, len(members))
	for _, m := range members {
		out = append(out, memberPayload(m))
	}
	return ok(c, out)
}

// POST /api/v1/members
func (h *UserHandler) Invite(c fiber.Ctx) error {
	orgID, okc := middleware.OrgIDFromFiber(c)
	if !okc {
		return badRequest(c, "organization context required")
	}

	var body struct {
		Email string `json:"email"`
		Name  string `json:"name"`
		Role  string `json:"role"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Email == "" || body.Name == "" || body.Role == "" {
		return badRequest(c, "email, name and role are required")
	}

	m, err := h.svc.Invite(c.Context(), orgID, user.InviteRequest{
		Email: body.Email,
		Name:  body.Name,
		Role:  body.Role,
	})
	if err != nil {
		return mapUserError(c, err)
	}
	return created(c, memberPayload(*m))
}

// PATCH /api/v1/members/:uid
func (h *UserHandler) UpdateRole(c fiber.Ctx) error {
	orgID, okc := middleware.OrgIDFromFiber(c)
	if !okc {
		return badRequest(c, "organization context required")
	}

	userID, err := uuid.Parse(c.Params("uid"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	var body struct {
		Role string `json:"role"`
	}
	if err := c.Bind().JSON(&body); err != nil || body.Role == "" {
		return badRequest(c, "role is required")
	}

	m, err := h.svc.UpdateRole(c.Context(), orgID, userID, body.Role)
	if err != nil {
		return mapUserError(c, err)
	}
	return ok(c, m)
}

// DELETE /api/v1/members/:uid
func (h *UserHandler) RemoveMember(c fiber.Ctx) error {
	orgID, okc := middleware.OrgIDFromFiber(c)
	if !okc {
		return badRequest(c, "organization context required")
	}

	userID, err := uuid.Parse(c.Params("uid"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	if err := h.svc.RemoveMember(c.Context(), orgID, userID); err != nil {
		return mapUserError(c, err)
	}
	return noContent(c)
}

func memberPayload(m user.Member) fiber.Map {
	return fiber.Map{
		"user_id": m.User.ID,
		"email":   m.User.Email,
		"name":    m.User.Name,
		"role":    m.Membership.Role,
		"joined":  m.Membership.CreatedAt,
	}
}

func mapUserError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, user.ErrUserNotFound),
		errors.Is(err, user.ErrMemberNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, user.ErrEmailTaken),
		errors.Is(err, user.ErrAlreadyMember),
		errors.Is(err, user.ErrLastOwner):
		return conflict(c, err.Error())
	case errors.Is(err, user.ErrInvalidRole),
		errors.Is(err, user.ErrPasswordTooShort):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}
