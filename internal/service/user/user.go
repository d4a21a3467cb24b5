// Package user manages operator accounts and organization memberships. New
// members get a generated temporary password delivered by email and a Casbin
// role grant in the organization's domain.
package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/resonara/resonara_backend/config"
	"github.com/resonara/resonara_backend/internal/repo"
	entmember "github.com/resonara/resonara_backend/internal/repo/orgmember"
	entuser "github.com/resonara/resonara_backend/internal/repo/user"
	"github.com/resonara/resonara_backend/pkg/authorize"
	"github.com/resonara/resonara_backend/pkg/email"
	"github.com/resonara/resonara_backend/pkg/util/password"
)

const tempPasswordLength = 16

type InviteRequest struct {
	Email string
	Name  string
	Role  string // owner, admin or viewer
}

// Member pairs a membership row with its user for listing.
type Member struct {
	Membership *repo.OrgMember
	User       *repo.User
}

type Service interface {
	GetByID(ctx context.Context, id string) (*repo.User, error)

	// Invite creates the user if the email is new, adds the membership and
	// grants the matching Casbin role. The invite email is best-effort.
	Invite(ctx context.Context, orgID uuid.UUID, req InviteRequest) (*Member, error)

	ListMembers(ctx context.Context, orgID uuid.UUID) ([]Member, error)
	UpdateRole(ctx context.Context, orgID, userID uuid.UUID, role string) (*repo.OrgMember, error)
	RemoveMember(ctx context.Context, orgID, userID uuid.UUID) error
	ChangePassword(ctx context.Context, userID uuid.UUID, newPassword string) error
}

type UserService struct {
	client      *repo.Client
	emailClient *email.Client
	cfg         *config.Config
	authorize   authorize.IAuthorization
}

func New(client *repo.Client, emailClient *email.Client, cfg *config.Config, authz authorize.IAuthorization) Service {
	return &UserService{
		client:      client,
		emailClient: emailClient,
		cfg:         cfg,
		authorize:   authz,
	}
}

// GetByID retrieves a user by ID, excluding soft-deleted users
func (s *UserService) GetByID(ctx context.Context, id string) (*repo.User, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrUserNotFound
	}

	u, err := s.client.User.Query().
		Where(
			entuser.ID(uid),
			entuser.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return u, nil
}

func (s *UserService) Invite(ctx context.Context, orgID uuid.UUID, req InviteRequest) (*Member, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if _, ok := authorize.OrgMemberRoleToRBACRole[req.Role]; !ok {
		return nil, ErrInvalidRole
	}

	org, err := s.client.Organization.Get(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("get organization: %w", err)
	}

	u, err := s.client.User.Query().
		Where(entuser.Email(req.Email), entuser.DeletedAtIsNil()).
		Only(ctx)

	var tempPassword string
	switch {
	case err == nil:
		// Existing account joins the organization.
	case repo.IsNotFound(err):
		tempPassword = password.Generate(tempPasswordLength)
		hash, herr := password.Hash(tempPassword)
		if herr != nil {
			return nil, fmt.Errorf("hash password: %w", herr)
		}
		u, err = s.client.User.Create().
			SetEmail(req.Email).
			SetName(req.Name).
			SetPasswordHash(hash).
			Save(ctx)
		if err != nil {
			if repo.IsConstraintError(err) {
				return nil, ErrEmailTaken
			}
			return nil, fmt.Errorf("create user: %w", err)
		}
		if err := authorize.AssignUserSelfRole(ctx, s.authorize, u.ID.String()); err != nil {
			return nil, fmt.Errorf("assign self role: %w", err)
		}
	default:
		return nil, fmt.Errorf("find user: %w", err)
	}

	exists, err := s.client.OrgMember.Query().
		Where(entmember.OrgID(orgID), entmember.UserID(u.ID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check membership: %w", err)
	}
	if exists {
		return nil, ErrAlreadyMember
	}

	m, err := s.client.OrgMember.Create().
		SetOrgID(orgID).
		SetUserID(u.ID).
		SetRole(entmember.Role(req.Role)).
		Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrAlreadyMember
		}
		return nil, fmt.Errorf("create membership: %w", err)
	}

	rbacRole := authorize.OrgMemberRoleToRBACRole[req.Role]
	if err := authorize.AssignOrgRole(ctx, s.authorize, u.ID.String(), orgID.String(), rbacRole); err != nil {
		return nil, fmt.Errorf("grant role: %w", err)
	}

	inviteName := ""
	if u.Name != nil {
		inviteName = *u.Name
	}
	msg := email.BuildMemberInviteEmail(email.MemberInviteData{
		Name:         inviteName,
		Email:        u.Email,
		OrgName:      org.Name,
		Role:         req.Role,
		PortalURL:    s.cfg.Reports.PortalURL,
		TempPassword: tempPassword,
	})
	if err := s.emailClient.Send(ctx, msg); err != nil {
		slog.Warn("failed to send invite email", "email", u.Email, "error", err)
	}

	return &Member{Membership: m, User: u}, nil
}

func (s *UserService) ListMembers(ctx context.Context, orgID uuid.UUID) ([]Member, error) {
	rows, err := s.client.OrgMember.Query().
		Where(entmember.OrgID(orgID)).
		Order(entmember.ByCreatedAt()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list memberships: %w", err)
	}

	out := make([]Member, 0, len(rows))
	for _, m := range rows {
		u, err := s.client.User.Get(ctx, m.UserID)
		if err != nil {
			return nil, fmt.Errorf("get member user: %w", err)
		}
		out = append(out, Member{Membership: m, User: u})
	}
	return out, nil
}

func (s *UserService) UpdateRole(ctx context.Context, orgID, userID uuid.UUID, role string) (*repo.OrgMember, error) {
	newRole, ok := authorize.OrgMemberRoleToRBACRole[role]
	if !ok {
		return nil, ErrInvalidRole
	}

	m, err := s.client.OrgMember.Query().
		Where(entmember.OrgID(orgID), entmember.UserID(userID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("get membership: %w", err)
	}

	oldRoleName := string(m.Role)
	if oldRoleName == role {
		return m, nil
	}
	if oldRoleName == authorize.OrgMemberRoleOwner {
		if err := s.requireAnotherOwner(ctx, orgID, userID); err != nil {
			return nil, err
		}
	}

	updated, err := m.Update().SetRole(entmember.Role(role)).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update membership: %w", err)
	}

	oldRole := authorize.OrgMemberRoleToRBACRole[oldRoleName]
	if err := authorize.RemoveOrgRole(ctx, s.authorize, userID.String(), orgID.String(), oldRole); err != nil {
		return nil, fmt.Errorf("revoke role: %w", err)
	}
	if err := authorize.AssignOrgRole(ctx, s.authorize, userID.String(), orgID.String(), newRole); err != nil {
		return nil, fmt.Errorf("grant role: %w", err)
	}

	return updated, nil
}

func (s *UserService) RemoveMember(ctx context.Context, orgID, userID uuid.UUID) error {
	m, err := s.client.OrgMember.Query().
		Where(entmember.OrgID(orgID), entmember.UserID(userID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrMemberNotFound
		}
		return fmt.Errorf("get membership: %w", err)
	}

	if string(m.Role) == authorize.OrgMemberRoleOwner {
		if err := s.requireAnotherOwner(ctx, orgID, userID); err != nil {
			return err
		}
	}

	if err := s.client.OrgMember.DeleteOne(m).Exec(ctx); err != nil {
		return fmt.Errorf("delete membership: %w", err)
	}

	role := authorize.OrgMemberRoleToRBACRole[string(m.Role)]
	if err := authorize.RemoveOrgRole(ctx, s.authorize, userID.String(), orgID.String(), role); err != nil {
		return fmt.Errorf("revoke role: %w", err)
	}
	return nil
}

func (s *UserService) ChangePassword(ctx context.Context, userID uuid.UUID, newPassword string) error {
	if len(newPassword) < 8 {
		return ErrPasswordTooShort
	}

	hash, err := password.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	n, err := s.client.User.Update().
		Where(entuser.ID(userID), entuser.DeletedAtIsNil()).
		SetPasswordHash(hash).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if n == 0 {
		return ErrUserNotFound
	}
	return nil
}

// requireAnotherOwner fails with ErrLastOwner unless some other user also
// holds the owner role in the organization.
func (s *UserService) requireAnotherOwner(ctx context.Context, orgID, userID uuid.UUID) error {
	n, err := s.client.OrgMember.Query().
		Where(
			entmember.OrgID(orgID),
			entmember.RoleEQ(entmember.RoleOwner),
			entmember.UserIDNEQ(userID),
		).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("count owners: %w", err)
	}
	if n == 0 {
		return ErrLastOwner
	}
	return nil
}
