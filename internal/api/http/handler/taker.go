package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/resonara/resonara_backend/internal/api/http/middleware"
	"github.com/resonara/resonara_backend/internal/service/taker"
)

type TakerHandler struct {
	svc taker.Service
}

func NewTakerHandler(svc taker.Service) *TakerHandler {
	return &TakerHandler{svc: svc}
}

// GET /api/v1/takers
func (h *TakerHandler) List(c fiber.Ctx) error {
	orgID, okc := middleware.OrgIDFromFiber(c)
	if !okc {
		return badRequest(c, "organization context required")
	}

	takers, err := h.svc.List(c.Context(), orgID)
	if err != nil {
		return internalError(c)
	}
	return ok(c, takers)
}

// GET /api/v1/results
func (h *TakerHandler) ListResults(c fiber.Ctx) error {
	orgID, okc := middleware.OrgIDFromFiber(c)
	if !okc {
		return badRequest(c, "organization context required")
	}

	results, err := h.svc.ListResults(c.Context(), orgID)
	if err != nil {
		return internalError(c)
	}
	return ok(c, results)
}

// GET /api/v1/takers/:tid
func (h *TakerHandler) Get(c fiber.Ctx) error {
	orgID, okc := middleware.OrgIDFromFiber(c)
	if !okc {
		return badRequest(c, "organization context required")
	}

	takerID, err := uuid.Parse(c.Params("tid"))
	if err != nil {
		return badRequest(c, "invalid taker id")
	}

	detail, err := h.svc.Get(c.Context(), orgID, takerID)
	if err != nil {
		if errors.Is(err, taker.ErrNotFound) {
			return notFound(c, err.Error())
		}
		return internalError(c)
	}

	return ok(c, fiber.Map{
		"taker":       detail.Taker,
		"submissions": detail.Submissions,
		"results":     detail.Results,
	})
}
