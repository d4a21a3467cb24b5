// Package report assembles narrative reports out of a taker's stored result,
// the organization's framework catalog entry and any per-profile draft
// overrides the organization has saved.
package report

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/resonara/resonara_backend/internal/catalog"
	"github.com/resonara/resonara_backend/internal/repo"
	entdraft "github.com/resonara/resonara_backend/internal/repo/reportdraft"
	enttaker "github.com/resonara/resonara_backend/internal/repo/taker"
	entresult "github.com/resonara/resonara_backend/internal/repo/testresult"
)

// FrequencyRow is one scored frequency in the assembled report, ordered the
// way the framework declares them.
type FrequencyRow struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Color       string `json:"color"`
	Points      int    `json:"points"`
	Description string `json:"description"`
}

// Profile is the winning profile narrative, with draft overrides applied.
type Profile struct {
	Code      string            `json:"code"`
	Name      string            `json:"name"`
	Frequency string            `json:"frequency"`
	Summary   string            `json:"summary"`
	Narrative string            `json:"narrative"`
	Sections  map[string]string `json:"sections,omitempty"`
}

// Brand carries the organization colors down to the renderer.
type Brand struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
}

// Narrative is the full assembled report. HasResult is false when the taker
// has not completed a test yet; every other field is zero in that case
// except Org and Taker.
type Narrative struct {
	OrgName     string         `json:"org_name"`
	TakerName   string         `json:"taker_name"`
	Brand       Brand          `json:"brand"`
	HasResult   bool           `json:"has_result"`
	TotalPoints int            `json:"total_points,omitempty"`
	Frequencies []FrequencyRow `json:"frequencies,omitempty"`
	Profile     *Profile       `json:"profile,omitempty"`
}

type Service interface {
	// Assemble builds the narrative for a taker. A taker without a
	// completed result yields HasResult false and a nil error.
	Assemble(ctx context.Context, orgID, takerID uuid.UUID) (*Narrative, error)

	ListDrafts(ctx context.Context, orgID uuid.UUID) ([]*repo.ReportDraft, error)
	UpsertDraft(ctx context.Context, orgID uuid.UUID, profileCode string, sections map[string]string) (*repo.ReportDraft, error)
	DeleteDraft(ctx context.Context, orgID uuid.UUID, profileCode string) error
}

type service struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &service{db: db}
}

func (s *service) Assemble(ctx context.Context, orgID, takerID uuid.UUID) (*Narrative, error) {
	org, err := s.db.Organization.Get(ctx, orgID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrOrgNotFound
		}
		return nil, fmt.Errorf("get organization: %w", err)
	}

	tk, err := s.db.Taker.Query().
		Where(enttaker.ID(takerID), enttaker.OrgID(orgID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrTakerNotFound
		}
		return nil, fmt.Errorf("get taker: %w", err)
	}

	n := &Narrative{
		OrgName:   org.Name,
		TakerName: tk.Name,
		Brand: Brand{
			Primary:   org.BrandPrimary,
			Secondary: org.BrandSecondary,
		},
	}

	result, err := s.db.TestResult.Query().
		Where(entresult.TakerID(takerID), entresult.OrgID(orgID)).
		Order(entresult.ByCreatedAt(sql.OrderDesc())).
		First(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return n, nil
		}
		return nil, fmt.Errorf("get result: %w", err)
	}

	fw, err := catalog.Get(org.Framework)
	if err != nil {
		return nil, fmt.Errorf("organization framework: %w", err)
	}

	n.HasResult = true
	n.TotalPoints = result.TotalPoints
	for _, freq := range fw.Frequencies {
		n.Frequencies = append(n.Frequencies, FrequencyRow{
			Code:        freq.Code,
			Name:        freq.Name,
			Color:       freq.Color,
			Points:      result.FrequencyTotals[freq.Code],
			Description: freq.Description,
		})
	}

	profile, err := fw.Profile(result.ProfileCode)
	if err != nil {
		return nil, fmt.Errorf("result profile: %w", err)
	}
	n.Profile = &Profile{
		Code:      profile.Code,
		Name:      profile.Name,
		Frequency: profile.Frequency,
		Summary:   profile.Summary,
		Narrative: profile.Narrative,
	}

	draft, err := s.db.ReportDraft.Query().
		Where(entdraft.OrgID(orgID), entdraft.ProfileCode(profile.Code)).
		Only(ctx)
	switch {
	case err == nil:
		n.Profile.Sections = draft.Sections
	case repo.IsNotFound(err):
		// No override saved; catalog text stands.
	default:
		return nil, fmt.Errorf("get draft: %w", err)
	}

	return n, nil
}

func (s *service) ListDrafts(ctx context.Context, orgID uuid.UUID) ([]*repo.ReportDraft, error) {
	drafts, err := s.db.ReportDraft.Query().
		Where(entdraft.OrgID(orgID)).
		Order(entdraft.ByProfileCode()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list drafts: %w", err)
	}
	return drafts, nil
}

func (s *service) UpsertDraft(ctx context.Context, orgID uuid.UUID, profileCode string, sections map[string]string) (*repo.ReportDraft, error) {
	org, err := s.db.Organization.Get(ctx, orgID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrOrgNotFound
		}
		return nil, fmt.Errorf("get organization: %w", err)
	}

	fw, err := catalog.Get(org.Framework)
	if err != nil {
		return nil, fmt.Errorf("organization framework: %w", err)
	}
	if _, err := fw.Profile(profileCode); err != nil {
		return nil, ErrBadProfile
	}

	existing, err := s.db.ReportDraft.Query().
		Where(entdraft.OrgID(orgID), entdraft.ProfileCode(profileCode)).
		Only(ctx)
	switch {
	case err == nil:
		return existing.Update().SetSections(sections).Save(ctx)
	case repo.IsNotFound(err):
		return s.db.ReportDraft.Create().
			SetOrgID(orgID).
			SetProfileCode(profileCode).
			SetSections(sections).
			Save(ctx)
	default:
		return nil, fmt.Errorf("get draft: %w", err)
	}
}

func (s *service) DeleteDraft(ctx context.Context, orgID uuid.UUID, profileCode string) error {
	n, err := s.db.ReportDraft.Delete().
		Where(entdraft.OrgID(orgID), entdraft.ProfileCode(profileCode)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}
	if n == 0 {
		return ErrDraftNotFound
	}
	return nil
}
