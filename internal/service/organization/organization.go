package organization

import (
	"context"
	"fmt"
	"regexp"

	"github.com/google/uuid"

	"github.com/resonara/resonara_backend/internal/catalog"
	"github.com/resonara/resonara_backend/internal/repo"
	entorg "github.com/resonara/resonara_backend/internal/repo/organization"
	entmember "github.com/resonara/resonara_backend/internal/repo/orgmember"
	"github.com/resonara/resonara_backend/pkg/authorize"
)

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	Slug      string
	Name      string
	Framework string
	OwnerID   uuid.UUID
}

type UpdateSettingsRequest struct {
	Name           *string
	BrandPrimary   *string
	BrandSecondary *string
	Framework      *string
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// Resolve maps a slug or a UUID string to an active organization.
	// Inactive and soft-deleted organizations resolve as not found.
	Resolve(ctx context.Context, slugOrID string) (*repo.Organization, error)

	Create(ctx context.Context, req CreateRequest) (*repo.Organization, error)
	UpdateSettings(ctx context.Context, orgID uuid.UUID, req UpdateSettingsRequest) (*repo.Organization, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*repo.Organization, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type service struct {
	db   *repo.Client
	auth authorize.IAuthorization
}

func New(db *repo.Client, auth authorize.IAuthorization) Service {
	return &service{db: db, auth: auth}
}

func (s *service) Resolve(ctx context.Context, slugOrID string) (*repo.Organization, error) {
	if slugOrID == "" {
		return nil, ErrNotFound
	}

	q := s.db.Organization.Query().
		Where(entorg.IsActive(true), entorg.DeletedAtIsNil())

	if id, err := uuid.Parse(slugOrID); err == nil {
		q = q.Where(entorg.ID(id))
	} else {
		q = q.Where(entorg.Slug(slugOrID))
	}

	org, err := q.Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("resolve organization: %w", err)
	}
	return org, nil
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*repo.Organization, error) {
	if _, err := catalog.Get(req.Framework); err != nil {
		return nil, ErrBadFramework
	}

	exists, err := s.db.Organization.Query().
		Where(entorg.Slug(req.Slug)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check slug: %w", err)
	}
	if exists {
		return nil, ErrSlugTaken
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	org, err := tx.Organization.Create().
		SetSlug(req.Slug).
		SetName(req.Name).
		SetFramework(req.Framework).
		Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("create organization: %w", err)
	}

	// The creator becomes the first owner.
	_, err = tx.OrgMember.Create().
		SetOrgID(org.ID).
		SetUserID(req.OwnerID).
		SetRole(entmember.RoleOwner).
		Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("create owner membership: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	if err := authorize.AssignOrgOwnerRole(ctx, s.auth, req.OwnerID.String(), org.ID.String()); err != nil {
		return nil, fmt.Errorf("assign owner role: %w", err)
	}
	return org, nil
}

func (s *service) UpdateSettings(ctx context.Context, orgID uuid.UUID, req UpdateSettingsRequest) (*repo.Organization, error) {
	u := s.db.Organization.UpdateOneID(orgID)

	if req.Name != nil {
		u = u.SetName(*req.Name)
	}
	if req.BrandPrimary != nil {
		if !hexColor.MatchString(*req.BrandPrimary) {
			return nil, ErrInvalidColor
		}
		u = u.SetBrandPrimary(*req.BrandPrimary)
	}
	if req.BrandSecondary != nil {
		if !hexColor.MatchString(*req.BrandSecondary) {
			return nil, ErrInvalidColor
		}
		u = u.SetBrandSecondary(*req.BrandSecondary)
	}
	if req.Framework != nil {
		if _, err := catalog.Get(*req.Framework); err != nil {
			return nil, ErrBadFramework
		}
		u = u.SetFramework(*req.Framework)
	}

	org, err := u.Save(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update organization: %w", err)
	}
	return org, nil
}

func (s *service) ListForUser(ctx context.Context, userID uuid.UUID) ([]*repo.Organization, error) {
	return s.db.Organization.Query().
		Where(
			entorg.IsActive(true),
			entorg.DeletedAtIsNil(),
			entorg.HasMembersWith(entmember.UserID(userID), entmember.IsActive(true)),
		).
		Order(entorg.ByName()).
		All(ctx)
}
