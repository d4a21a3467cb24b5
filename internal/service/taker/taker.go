// Package taker exposes read access to the people who answered tests for an
// organization, together with their submissions and results.
package taker

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/resonara/resonara_backend/internal/repo"
	entsub "github.com/resonara/resonara_backend/internal/repo/submission"
	enttaker "github.com/resonara/resonara_backend/internal/repo/taker"
	entresult "github.com/resonara/resonara_backend/internal/repo/testresult"
)

// Detail is a taker with everything an organization operator needs on the
// detail screen.
type Detail struct {
	Taker       *repo.Taker
	Submissions []*repo.Submission
	Results     []*repo.TestResult
}

type Service interface {
	List(ctx context.Context, orgID uuid.UUID) ([]*repo.Taker, error)
	Get(ctx context.Context, orgID, takerID uuid.UUID) (*Detail, error)

	// ListResults returns the organization's results, newest first.
	ListResults(ctx context.Context, orgID uuid.UUID) ([]*repo.TestResult, error)
}

type service struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &service{db: db}
}

func (s *service) List(ctx context.Context, orgID uuid.UUID) ([]*repo.Taker, error) {
	takers, err := s.db.Taker.Query().
		Where(enttaker.OrgID(orgID)).
		Order(enttaker.ByCreatedAt()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list takers: %w", err)
	}
	return takers, nil
}

func (s *service) Get(ctx context.Context, orgID, takerID uuid.UUID) (*Detail, error) {
	tk, err := s.db.Taker.Query().
		Where(enttaker.ID(takerID), enttaker.OrgID(orgID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get taker: %w", err)
	}

	subs, err := s.db.Submission.Query().
		Where(entsub.TakerID(takerID)).
		Order(entsub.ByCreatedAt()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}

	results, err := s.db.TestResult.Query().
		Where(entresult.TakerID(takerID)).
		Order(entresult.ByCreatedAt()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}

	return &Detail{Taker: tk, Submissions: subs, Results: results}, nil
}

func (s *service) ListResults(ctx context.Context, orgID uuid.UUID) ([]*repo.TestResult, error) {
	results, err := s.db.TestResult.Query().
		Where(entresult.OrgID(orgID)).
		Order(entresult.ByCreatedAt(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	return results, nil
}
