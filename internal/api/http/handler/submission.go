package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/resonara/resonara_backend/internal/service/submission"
)

type SubmissionHandler struct {
	svc submission.Service
}

func NewSubmissionHandler(svc submission.Service) *SubmissionHandler {
	return &SubmissionHandler{svc: svc}
}

// GET /api/v1/links/:token
//
// Public: resolves a shareable token to its test and questions. Option
// weights are stripped so takers cannot see the scoring model.
func (h *SubmissionHandler) ResolveLink(c fiber.Ctx) error {
	resolved, err := h.svc.ResolveLink(c.Context(), c.Params("token"))
	if err != nil {
		return mapSubmissionError(c, err)
	}

	questions := make([]fiber.Map, 0, len(resolved.Questions))
	for _, q := range resolved.Questions {
		opts := make([]fiber.Map, 0, len(q.Options))
		for _, o := range q.Options {
			opts = append(opts, fiber.Map{"id": o.ID, "label": o.Label})
		}
		questions = append(questions, fiber.Map{
			"id":       q.ID,
			"position": q.Position,
			"prompt":   q.Prompt,
			"options":  opts,
		})
	}

	return ok(c, fiber.Map{
		"test": fiber.Map{
			"id":          resolved.Test.ID,
			"name":        resolved.Test.Name,
			"description": resolved.Test.Description,
		},
		"questions": questions,
	})
}

// POST /api/v1/links/:token/submissions
func (h *SubmissionHandler) Start(c fiber.Ctx) error {
	var body struct {
		Name  string  `json:"name"`
		Email *string `json:"email"`
		Phone *string `json:"phone"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Name == "" {
		return badRequest(c, "name is required")
	}

	started, err := h.svc.Start(c.Context(), c.Params("token"), submission.StartRequest{
		Name:  body.Name,
		Email: body.Email,
		Phone: body.Phone,
	})
	if err != nil {
		return mapSubmissionError(c, err)
	}

	return created(c, fiber.Map{
		"submission_id": started.Submission.ID,
		"taker_id":      started.Taker.ID,
	})
}

// POST /api/v1/submissions/:sid/answers
func (h *SubmissionHandler) RecordAnswer(c fiber.Ctx) error {
	submissionID, err := uuid.Parse(c.Params("sid"))
	if err != nil {
		return badRequest(c, "invalid submission id")
	}

	var body struct {
		QuestionID string `json:"question_id"`
		OptionID   string `json:"option_id"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.QuestionID == "" || body.OptionID == "" {
		return badRequest(c, "question_id and option_id are required")
	}

	sub, err := h.svc.RecordAnswer(c.Context(), submissionID, body.QuestionID, body.OptionID)
	if err != nil {
		return mapSubmissionError(c, err)
	}

	return ok(c, fiber.Map{
		"ok":           true,
		"total_points": sub.TotalPoints,
		"answered":     len(sub.Answers),
		"status":       sub.Status,
	})
}

// GET /api/v1/submissions/:sid
func (h *SubmissionHandler) Get(c fiber.Ctx) error {
	submissionID, err := uuid.Parse(c.Params("sid"))
	if err != nil {
		return badRequest(c, "invalid submission id")
	}

	sub, err := h.svc.Get(c.Context(), submissionID)
	if err != nil {
		return mapSubmissionError(c, err)
	}
	return ok(c, sub)
}

func mapSubmissionError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, submission.ErrLinkNotFound),
		errors.Is(err, submission.ErrNotFound),
		errors.Is(err, submission.ErrQuestionNotFound),
		errors.Is(err, submission.ErrOptionNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, submission.ErrLinkExhausted):
		return gone(c, err.Error())
	case errors.Is(err, submission.ErrDuplicateAnswer),
		errors.Is(err, submission.ErrCompleted),
		errors.Is(err, submission.ErrConflict):
		return conflict(c, err.Error())
	case errors.Is(err, submission.ErrInvalidPhone):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}
