// Package assessment manages test definitions and their shareable links.
package assessment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/resonara/resonara_backend/config"
	"github.com/resonara/resonara_backend/internal/repo"
	entquestion "github.com/resonara/resonara_backend/internal/repo/question"
	enttest "github.com/resonara/resonara_backend/internal/repo/test"
	entlink "github.com/resonara/resonara_backend/internal/repo/testlink"
	"github.com/resonara/resonara_backend/pkg/sms"
	"github.com/resonara/resonara_backend/pkg/util/codes"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateTestRequest struct {
	Name        string
	Description *string
}

type UpdateTestRequest struct {
	Name        *string
	Description *string
	IsActive    *bool
}

type CreateLinkRequest struct {
	TestID  uuid.UUID
	MaxUses *int
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// Tests
	ListTests(ctx context.Context, orgID uuid.UUID) ([]*repo.Test, error)
	CreateTest(ctx context.Context, orgID uuid.UUID, req CreateTestRequest) (*repo.Test, error)
	UpdateTest(ctx context.Context, orgID, testID uuid.UUID, req UpdateTestRequest) (*repo.Test, error)

	// Links
	CreateLink(ctx context.Context, orgID uuid.UUID, req CreateLinkRequest) (*repo.TestLink, error)
	DeleteLink(ctx context.Context, orgID, linkID uuid.UUID) error
	ListLinks(ctx context.Context, orgID, testID uuid.UUID) ([]*repo.TestLink, error)

	// SendLinkSMS texts the link URL to a phone number.
	SendLinkSMS(ctx context.Context, orgID, linkID uuid.UUID, phone string) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type service struct {
	db  *repo.Client
	sms *sms.Client
	cfg *config.Config
}

func New(db *repo.Client, smsCli *sms.Client, cfg *config.Config) Service {
	return &service{db: db, sms: smsCli, cfg: cfg}
}

func (s *service) ListTests(ctx context.Context, orgID uuid.UUID) ([]*repo.Test, error) {
	return s.db.Test.Query().
		Where(enttest.OrgID(orgID)).
		Order(enttest.ByName()).
		All(ctx)
}

func (s *service) CreateTest(ctx context.Context, orgID uuid.UUID, req CreateTestRequest) (*repo.Test, error) {
	// The test spans the organization's whole question set.
	count, err := s.db.Question.Query().
		Where(entquestion.OrgID(orgID)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count questions: %w", err)
	}

	t, err := s.db.Test.Create().
		SetOrgID(orgID).
		SetName(req.Name).
		SetNillableDescription(req.Description).
		SetQuestionCount(count).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create test: %w", err)
	}
	return t, nil
}

func (s *service) UpdateTest(ctx context.Context, orgID, testID uuid.UUID, req UpdateTestRequest) (*repo.Test, error) {
	u := s.db.Test.Update().
		Where(enttest.ID(testID), enttest.OrgID(orgID))

	if req.Name != nil {
		u = u.SetName(*req.Name)
	}
	if req.Description != nil {
		u = u.SetDescription(*req.Description)
	}
	if req.IsActive != nil {
		u = u.SetIsActive(*req.IsActive)
	}

	n, err := u.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update test: %w", err)
	}
	if n == 0 {
		return nil, ErrTestNotFound
	}

	return s.db.Test.Get(ctx, testID)
}

// CreateLink generates a fresh random token and inserts the link. The store's
// uniqueness constraint is the collision check; on violation the token is
// regenerated, up to a small bounded number of attempts.
func (s *service) CreateLink(ctx context.Context, orgID uuid.UUID, req CreateLinkRequest) (*repo.TestLink, error) {
	exists, err := s.db.Test.Query().
		Where(enttest.ID(req.TestID), enttest.OrgID(orgID), enttest.IsActive(true)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check test: %w", err)
	}
	if !exists {
		return nil, ErrTestNotFound
	}

	tc := codes.FromCentralConfig(s.cfg.Links)

	var lastErr error
	for i := 0; i < tc.GetMaxAttempts(); i++ {
		token, err := codes.GenerateCode(tc.GetTokenLength(), tc.GetCharset())
		if err != nil {
			return nil, fmt.Errorf("generate token: %w", err)
		}

		link, err := s.db.TestLink.Create().
			SetOrgID(orgID).
			SetTestID(req.TestID).
			SetToken(token).
			SetNillableMaxUses(req.MaxUses).
			Save(ctx)
		if err == nil {
			return link, nil
		}
		if !repo.IsConstraintError(err) {
			return nil, fmt.Errorf("create link: %w", err)
		}
		lastErr = err
	}
	return nil, fmt.Errorf("%w: %v", ErrTokenExhausted, lastErr)
}

func (s *service) DeleteLink(ctx context.Context, orgID, linkID uuid.UUID) error {
	n, err := s.db.TestLink.Delete().
		Where(entlink.ID(linkID), entlink.OrgID(orgID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete link: %w", err)
	}
	if n == 0 {
		return ErrLinkNotFound
	}
	return nil
}

func (s *service) ListLinks(ctx context.Context, orgID, testID uuid.UUID) ([]*repo.TestLink, error) {
	return s.db.TestLink.Query().
		Where(entlink.OrgID(orgID), entlink.TestID(testID)).
		Order(entlink.ByCreatedAt()).
		All(ctx)
}

func (s *service) SendLinkSMS(ctx context.Context, orgID, linkID uuid.UUID, phone string) error {
	link, err := s.db.TestLink.Query().
		Where(entlink.ID(linkID), entlink.OrgID(orgID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrLinkNotFound
		}
		return fmt.Errorf("get link: %w", err)
	}

	url := s.cfg.Reports.PortalURL + "/take/" + link.Token
	return s.sms.SendLink(ctx, phone, s.cfg.SMS.SMSIR.TemplateID, url)
}
