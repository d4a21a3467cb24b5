package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/resonara/resonara_backend/internal/service/organization"
	pasetotoken "github.com/resonara/resonara_backend/pkg/paseto"
)

type OrganizationHandler struct {
	svc organization.Service
}

func NewOrganizationHandler(svc organization.Service) *OrganizationHandler {
	return &OrganizationHandler{svc: svc}
}

// GET /api/v1/orgs/:slug
//
// Public resolver: only the branding fields a taker-facing page needs.
func (h *OrganizationHandler) Resolve(c fiber.Ctx) error {
	org, err := h.svc.Resolve(c.Context(), c.Params("slug"))
	if err != nil {
		return mapOrganizationError(c, err)
	}

	return ok(c, fiber.Map{
		"id":              org.ID,
		"slug":            org.Slug,
		"name":            org.Name,
		"brand_primary":   org.BrandPrimary,
		"brand_secondary": org.BrandSecondary,
		"framework":       org.Framework,
	})
}

// GET /api/v1/organizations
func (h *OrganizationHandler) ListMine(c fiber.Ctx) error {
	claims, okc := pasetotoken.ClaimsFromFiber(c)
	if !okc {
		return unauthorized(c)
	}

	orgs, err := h.svc.ListForUser(c.Context(), claims.UserID)
	if err != nil {
		return internalError(c)
	}
	return ok(c, orgs)
}

// POST /api/v1/organizations
func (h *OrganizationHandler) Create(c fiber.Ctx) error {
	claims, okc := pasetotoken.ClaimsFromFiber(c)
	if !okc {
		return unauthorized(c)
	}

	var body struct {
		Slug      string `json:"slug"`
		Name      string `json:"name"`
		Framework string `json:"framework"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Slug == "" || body.Name == "" {
		return badRequest(c, "slug and name are required")
	}

	org, err := h.svc.Create(c.Context(), organization.CreateRequest{
		Slug:      body.Slug,
		Name:      body.Name,
		Framework: body.Framework,
		OwnerID:   claims.UserID,
	})
	if err != nil {
		return mapOrganizationError(c, err)
	}

	return created(c, org)
}

// PATCH /api/v1/organizations/:id/settings
func (h *OrganizationHandler) UpdateSettings(c fiber.Ctx) error {
	orgID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid organization id")
	}

	var body struct {
		Name           *string `json:"name"`
		BrandPrimary   *string `json:"brand_primary"`
		BrandSecondary *string `json:"brand_secondary"`
		Framework      *string `json:"framework"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	org, err := h.svc.UpdateSettings(c.Context(), orgID, organization.UpdateSettingsRequest{
		Name:           body.Name,
		BrandPrimary:   body.BrandPrimary,
		BrandSecondary: body.BrandSecondary,
		Framework:      body.Framework,
	})
	if err != nil {
		return mapOrganizationError(c, err)
	}

	return ok(c, org)
}

func mapOrganizationError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, organization.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, organization.ErrSlugTaken):
		return conflict(c, err.Error())
	case errors.Is(err, organization.ErrBadFramework),
		errors.Is(err, organization.ErrInvalidColor):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}
