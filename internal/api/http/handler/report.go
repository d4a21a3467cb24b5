package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/resonara/resonara_backend/internal/api/http/middleware"
	"github.com/resonara/resonara_backend/internal/service/organization"
	"github.com/resonara/resonara_backend/internal/service/report"
	"github.com/resonara/resonara_backend/pkg/pdf"
)

type ReportHandler struct {
	reports report.Service
	orgs    organization.Service
}

func NewReportHandler(reports report.Service, orgs organization.Service) *ReportHandler {
	return &ReportHandler{reports: reports, orgs: orgs}
}

// GET /api/v1/orgs/:slug/takers/:tid/report
//
// Public: the taker-facing narrative report as JSON.
func (h *ReportHandler) Get(c fiber.Ctx) error {
	narrative, err := h.assemble(c)
	if err != nil {
		return mapReportError(c, err)
	}
	return ok(c, narrative)
}

// GET /api/v1/orgs/:slug/takers/:tid/report.pdf
func (h *ReportHandler) GetPDF(c fiber.Ctx) error {
	narrative, err := h.assemble(c)
	if err != nil {
		return mapReportError(c, err)
	}
	if !narrative.HasResult {
		return notFound(c, "no completed result for this taker yet")
	}

	out, err := pdf.Render(narrative.Document())
	if err != nil {
		return internalError(c)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="report.pdf"`)
	return c.Send(out)
}

func (h *ReportHandler) assemble(c fiber.Ctx) (*report.Narrative, error) {
	org, err := h.orgs.Resolve(c.Context(), c.Params("slug"))
	if err != nil {
		return nil, err
	}

	takerID, err := uuid.Parse(c.Params("tid"))
	if err != nil {
		return nil, report.ErrTakerNotFound
	}

	return h.reports.Assemble(c.Context(), org.ID, takerID)
}

// ---------------------------------------------------------------------------
// Report drafts (admin)
// ---------------------------------------------------------------------------

// GET /api/v1/drafts
func (h *ReportHandler) ListDrafts(c fiber.Ctx) error {
	orgID, okc := middleware.OrgIDFromFiber(c)
	if !okc {
		return badRequest(c, "organization context required")
	}

	drafts, err := h.reports.ListDrafts(c.Context(), orgID)
	if err != nil {
		return internalError(c)
	}
	return ok(c, drafts)
}

// PUT /api/v1/drafts/:profile
func (h *ReportHandler) UpsertDraft(c fiber.Ctx) error {
	orgID, okc := middleware.OrgIDFromFiber(c)
	if !okc {
		return badRequest(c, "organization context required")
	}

	var body struct {
		Sections map[string]string `json:"sections"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if len(body.Sections) == 0 {
		return badRequest(c, "sections are required")
	}

	draft, err := h.reports.UpsertDraft(c.Context(), orgID, c.Params("profile"), body.Sections)
	if err != nil {
		return mapReportError(c, err)
	}
	return ok(c, draft)
}

// DELETE /api/v1/drafts/:profile
func (h *ReportHandler) DeleteDraft(c fiber.Ctx) error {
	orgID, okc := middleware.OrgIDFromFiber(c)
	if !okc {
		return badRequest(c, "organization context required")
	}

	if err := h.reports.DeleteDraft(c.Context(), orgID, c.Params("profile")); err != nil {
		return mapReportError(c, err)
	}
	return noContent(c)
}

func mapReportError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, organization.ErrNotFound),
		errors.Is(err, report.ErrOrgNotFound),
		errors.Is(err, report.ErrTakerNotFound),
		errors.Is(err, report.ErrDraftNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, report.ErrBadProfile):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}
