package question

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/resonara/resonara_backend/internal/catalog"
	"github.com/resonara/resonara_backend/internal/domain"
	"github.com/resonara/resonara_backend/internal/repo"
	entorg "github.com/resonara/resonara_backend/internal/repo/organization"
	entquestion "github.com/resonara/resonara_backend/internal/repo/question"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	Position int
	Prompt   string
	Options  []domain.Option
}

type UpdateRequest struct {
	Position *int
	Prompt   *string
	Options  []domain.Option
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context, orgID uuid.UUID) ([]*repo.Question, error)
	Create(ctx context.Context, orgID uuid.UUID, req CreateRequest) (*repo.Question, error)
	Update(ctx context.Context, orgID, questionID uuid.UUID, req UpdateRequest) (*repo.Question, error)
	Delete(ctx context.Context, orgID, questionID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type service struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &service{db: db}
}

func (s *service) List(ctx context.Context, orgID uuid.UUID) ([]*repo.Question, error) {
	return s.db.Question.Query().
		Where(entquestion.OrgID(orgID)).
		Order(entquestion.ByPosition()).
		All(ctx)
}

func (s *service) Create(ctx context.Context, orgID uuid.UUID, req CreateRequest) (*repo.Question, error) {
	if err := s.validateOptions(ctx, orgID, req.Options); err != nil {
		return nil, err
	}

	taken, err := s.db.Question.Query().
		Where(entquestion.OrgID(orgID), entquestion.Position(req.Position)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check position: %w", err)
	}
	if taken {
		return nil, ErrPositionTaken
	}

	q, err := s.db.Question.Create().
		SetOrgID(orgID).
		SetPosition(req.Position).
		SetPrompt(req.Prompt).
		SetOptions(req.Options).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create question: %w", err)
	}
	return q, nil
}

func (s *service) Update(ctx context.Context, orgID, questionID uuid.UUID, req UpdateRequest) (*repo.Question, error) {
	existing, err := s.db.Question.Query().
		Where(entquestion.ID(questionID), entquestion.OrgID(orgID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get question: %w", err)
	}

	u := existing.Update()
	if req.Position != nil && *req.Position != existing.Position {
		taken, err := s.db.Question.Query().
			Where(entquestion.OrgID(orgID), entquestion.Position(*req.Position)).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("check position: %w", err)
		}
		if taken {
			return nil, ErrPositionTaken
		}
		u = u.SetPosition(*req.Position)
	}
	if req.Prompt != nil {
		u = u.SetPrompt(*req.Prompt)
	}
	if req.Options != nil {
		if err := s.validateOptions(ctx, orgID, req.Options); err != nil {
			return nil, err
		}
		u = u.SetOptions(req.Options)
	}

	q, err := u.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update question: %w", err)
	}
	return q, nil
}

func (s *service) Delete(ctx context.Context, orgID, questionID uuid.UUID) error {
	n, err := s.db.Question.Delete().
		Where(entquestion.ID(questionID), entquestion.OrgID(orgID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete question: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// validateOptions checks every option weight against the frequencies of the
// organization's active framework.
func (s *service) validateOptions(ctx context.Context, orgID uuid.UUID, opts []domain.Option) error {
	if len(opts) < 2 {
		return ErrNoOptions
	}

	org, err := s.db.Organization.Query().
		Where(entorg.ID(orgID)).
		Only(ctx)
	if err != nil {
		return fmt.Errorf("get organization: %w", err)
	}

	fw, err := catalog.Get(org.Framework)
	if err != nil {
		return fmt.Errorf("organization framework: %w", err)
	}

	for _, opt := range opts {
		for code := range opt.Weights {
			if !fw.HasFrequency(code) {
				return fmt.Errorf("%w: %q", ErrUnknownBucket, code)
			}
		}
	}
	return nil
}
