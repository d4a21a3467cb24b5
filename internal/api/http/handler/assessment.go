package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/resonara/resonara_backend/internal/api/http/middleware"
	"github.com/resonara/resonara_backend/internal/service/assessment"
)

type AssessmentHandler struct {
	svc assessment.Service
}

func NewAssessmentHandler(svc assessment.Service) *AssessmentHandler {
	return &AssessmentHandler{svc: svc}
}

// GET /api/v1/tests
func (h *AssessmentHandler) ListTests(c fiber.Ctx) error {
	orgID, okc := middleware.OrgIDFromFiber(c)
	if !okc {
		return badRequest(c, "organization context required")
	}

	tests, err := h.svc.ListTests(c.Context(), orgID)
	if err != nil {
		return internalError(c)
	}
	return ok(c, tests)
}

// POST /api/v1/tests
func (h *AssessmentHandler) CreateTest(c fiber.Ctx) error {
	orgID, okc := middleware.OrgIDFromFiber(c)
	if !okc {
		return badRequest(c, "organization context required")
	}

	var body struct {
		Name        string  `json:"name"`
		Description *string `json:"description"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Name == "" {
		return badRequest(c, "name is required")
	}

	t, err := h.svc.CreateTest(c.Context(), orgID, assessment.CreateTestRequest{
		Name:        body.Name,
		Description: body.Description,
	})
	if err != nil {
		return mapAssessmentError(c, err)
	}

	return created(c, t)
}

// PATCH /api/v1/tests/:tid
func (h *AssessmentHandler) UpdateTest(c fiber.Ctx) error {
	orgID, okc := middleware.OrgIDFromFiber(c)
	if !okc {
		return badRequest(c, "organization context required")
	}

	testID, err := uuid.Parse(c.Params("tid"))
	if err != nil {
		return badRequest(c, "invalid test id")
	}

	var body struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		IsActive    *bool   `json:"is_active"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	t, err := h.svc.UpdateTest(c.Context(), orgID, testID, assessment.UpdateTestRequest{
		Name:        body.Name,
		Description: body.Description,
		IsActive:    body.IsActive,
	})
	if err != nil {
		return mapAssessmentError(c, err)
	}

	return ok(c, t)
}

// GET /api/v1/tests/:tid/links
func (h *AssessmentHandler) ListLinks(c fiber.Ctx) error {
	orgID, okc := middleware.OrgIDFromFiber(c)
	if !okc {
		return badRequest(c, "organization context required")
	}

	testID, err := uuid.Parse(c.Params("tid"))
	if err != nil {
		return badRequest(c, "invalid test id")
	}

	links, err := h.svc.ListLinks(c.Context(), orgID, testID)
	if err != nil {
		return mapAssessmentError(c, err)
	}
	return ok(c, links)
}

// POST /api/v1/tests/:tid/links
func (h *AssessmentHandler) CreateLink(c fiber.Ctx) error {
	orgID, okc := middleware.OrgIDFromFiber(c)
	if !okc {
		return badRequest(c, "organization context required")
	}

	testID, err := uuid.Parse(c.Params("tid"))
	if err != nil {
		return badRequest(c, "invalid test id")
	}

	var body struct {
		MaxUses *int `json:"max_uses"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.MaxUses != nil && *body.MaxUses < 1 {
		return badRequest(c, "max_uses must be at least 1")
	}

	link, err := h.svc.CreateLink(c.Context(), orgID, assessment.CreateLinkRequest{
		TestID:  testID,
		MaxUses: body.MaxUses,
	})
	if err != nil {
		return mapAssessmentError(c, err)
	}

	return created(c, link)
}

// DELETE /api/v1/links/:lid
func (h *AssessmentHandler) DeleteLink(c fiber.Ctx) error {
	orgID, okc := middleware.OrgIDFromFiber(c)
	if !okc {
		return badRequest(c, "organization context required")
	}

	linkID, err := uuid.Parse(c.Params("lid"))
	if err != nil {
		return badRequest(c, "invalid link id")
	}

	if err := h.svc.DeleteLink(c.Context(), orgID, linkID); err != nil {
		return mapAssessmentError(c, err)
	}

	return noContent(c)
}

// POST /api/v1/links/:lid/sms
func (h *AssessmentHandler) SendLinkSMS(c fiber.Ctx) error {
	orgID, okc := middleware.OrgIDFromFiber(c)
	if !okc {
		return badRequest(c, "organization context required")
	}

	linkID, err := uuid.Parse(c.Params("lid"))
	if err != nil {
		return badRequest(c, "invalid link id")
	}

	var body struct {
		Phone string `json:"phone"`
	}
	if err := c.Bind().JSON(&body); err != nil || body.Phone == "" {
		return badRequest(c, "phone is required")
	}

	if err := h.svc.SendLinkSMS(c.Context(), orgID, linkID, body.Phone); err != nil {
		return mapAssessmentError(c, err)
	}

	return ok(c, fiber.Map{"message": "link sent"})
}

func mapAssessmentError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, assessment.ErrTestNotFound),
		errors.Is(err, assessment.ErrLinkNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, assessment.ErrTokenExhausted):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}
