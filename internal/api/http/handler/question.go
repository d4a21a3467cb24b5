package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/resonara/resonara_backend/internal/api/http/middleware"
	"github.com/resonara/resonara_backend/internal/domain"
	"github.com/resonara/resonara_backend/internal/service/question"
)

type QuestionHandler struct {
	svc question.Service
}

func NewQuestionHandler(svc question.Service) *QuestionHandler {
	return &QuestionHandler{svc: svc}
}

type optionBody struct {
	ID      string         `json:"id"`
	Label   string         `json:"label"`
	Weights map[string]int `json:"weights"`
}

func toOptions(in []optionBody) []domain.Option {
	out := make([]domain.Option, 0, len(in))
	for _, o := range in {
		out = append(out, domain.Option{ID: o.ID, Label: o.Label, Weights: o.Weights})
	}
	return out
}

// GET /api/v1/questions
func (h *QuestionHandler) List(c fiber.Ctx) error {
	orgID, okc := middleware.OrgIDFromFiber(c)
	if !okc {
		return badRequest(c, "organization context required")
	}

	questions, err := h.svc.List(c.Context(), orgID)
	if err != nil {
		return internalError(c)
	}
	return ok(c, questions)
}

// POST /api/v1/questions
func (h *QuestionHandler) Create(c fiber.Ctx) error {
	orgID, okc := middleware.OrgIDFromFiber(c)
	if !okc {
		return badRequest(c, "organization context required")
	}

	var body struct {
		Position int          `json:"position"`
		Prompt   string       `json:"prompt"`
		Options  []optionBody `json:"options"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Prompt == "" {
		return badRequest(c, "prompt is required")
	}

	q, err := h.svc.Create(c.Context(), orgID, question.CreateRequest{
		Position: body.Position,
		Prompt:   body.Prompt,
		Options:  toOptions(body.Options),
	})
	if err != nil {
		return mapQuestionError(c, err)
	}

	return created(c, q)
}

// PATCH /api/v1/questions/:qid
func (h *QuestionHandler) Update(c fiber.Ctx) error {
	orgID, okc := middleware.OrgIDFromFiber(c)
	if !okc {
		return badRequest(c, "organization context required")
	}

	questionID, err := uuid.Parse(c.Params("qid"))
	if err != nil {
		return badRequest(c, "invalid question id")
	}

	var body struct {
		Position *int         `json:"position"`
		Prompt   *string      `json:"prompt"`
		Options  []optionBody `json:"options"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	var opts []domain.Option
	if body.Options != nil {
		opts = toOptions(body.Options)
	}

	q, err := h.svc.Update(c.Context(), orgID, questionID, question.UpdateRequest{
		Position: body.Position,
		Prompt:   body.Prompt,
		Options:  opts,
	})
	if err != nil {
		return mapQuestionError(c, err)
	}

	return ok(c, q)
}

// DELETE /api/v1/questions/:qid
func (h *QuestionHandler) Delete(c fiber.Ctx) error {
	orgID, okc := middleware.OrgIDFromFiber(c)
	if !okc {
		return badRequest(c, "organization context required")
	}

	questionID, err := uuid.Parse(c.Params("qid"))
	if err != nil {
		return badRequest(c, "invalid question id")
	}

	if err := h.svc.Delete(c.Context(), orgID, questionID); err != nil {
		return mapQuestionError(c, err)
	}

	return noContent(c)
}

func mapQuestionError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, question.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, question.ErrPositionTaken):
		return conflict(c, err.Error())
	case errors.Is(err, question.ErrNoOptions),
		errors.Is(err, question.ErrUnknownBucket):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}
