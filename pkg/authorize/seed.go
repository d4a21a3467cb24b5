package authorize

import (
	"context"
	"log/slog"
)

// SeedDefaultPolicies sets up the baseline RBAC policies for the system.
func SeedDefaultPolicies(ctx context.Context, auth IAuthorization) error {
	logger := slog.Default()

	// System-level policies (domain: sys)
	sysPolicies := []PermissionPolicy{
		// SuperAdmin: god mode
		{RolePlatformSuperAdmin, DomainSys, WildcardResource, WildcardAction, EffectAllow},
	}

	// Organization-level policies (domain: org:*)
	orgPolicies := []PermissionPolicy{
		// Owner: full control within the organization
		{RoleOrgOwner, WildcardDomain, ResourceOrganization, ActionManage, EffectAllow},
		{RoleOrgOwner, WildcardDomain, ResourceOrgSettings, ActionManage, EffectAllow},
		{RoleOrgOwner, WildcardDomain, ResourceOrgMember, ActionManage, EffectAllow},
		{RoleOrgOwner, WildcardDomain, ResourceQuestion, ActionManage, EffectAllow},
		{RoleOrgOwner, WildcardDomain, ResourceTest, ActionManage, EffectAllow},
		{RoleOrgOwner, WildcardDomain, ResourceTestLink, ActionManage, EffectAllow},
		{RoleOrgOwner, WildcardDomain, ResourceTaker, ActionManage, EffectAllow},
		{RoleOrgOwner, WildcardDomain, ResourceSubmission, ActionManage, EffectAllow},
		{RoleOrgOwner, WildcardDomain, ResourceTestResult, ActionManage, EffectAllow},
		{RoleOrgOwner, WildcardDomain, ResourceReportDraft, ActionManage, EffectAllow},
		{RoleOrgOwner, WildcardDomain, ResourceRBAC, ActionGrant, EffectAllow},
		{RoleOrgOwner, WildcardDomain, ResourceRBAC, ActionRevoke, EffectAllow},

		// Admin: manage content but not members or RBAC
		{RoleOrgAdmin, WildcardDomain, ResourceOrgSettings, ActionUpdate, EffectAllow},
		{RoleOrgAdmin, WildcardDomain, ResourceQuestion, ActionManage, EffectAllow},
		{RoleOrgAdmin, WildcardDomain, ResourceTest, ActionManage, EffectAllow},
		{RoleOrgAdmin, WildcardDomain, ResourceTestLink, ActionManage, EffectAllow},
		{RoleOrgAdmin, WildcardDomain, ResourceTaker, ActionManage, EffectAllow},
		{RoleOrgAdmin, WildcardDomain, ResourceSubmission, ActionManage, EffectAllow},
		{RoleOrgAdmin, WildcardDomain, ResourceTestResult, ActionManage, EffectAllow},
		{RoleOrgAdmin, WildcardDomain, ResourceReportDraft, ActionManage, EffectAllow},

		// Viewer: read-only
		{RoleOrgViewer, WildcardDomain, ResourceQuestion, ActionRead, EffectAllow},
		{RoleOrgViewer, WildcardDomain, ResourceQuestion, ActionList, EffectAllow},
		{RoleOrgViewer, WildcardDomain, ResourceTest, ActionRead, EffectAllow},
		{RoleOrgViewer, WildcardDomain, ResourceTest, ActionList, EffectAllow},
		{RoleOrgViewer, WildcardDomain, ResourceTestLink, ActionList, EffectAllow},
		{RoleOrgViewer, WildcardDomain, ResourceTaker, ActionRead, EffectAllow},
		{RoleOrgViewer, WildcardDomain, ResourceTaker, ActionList, EffectAllow},
		{RoleOrgViewer, WildcardDomain, ResourceSubmission, ActionRead, EffectAllow},
		{RoleOrgViewer, WildcardDomain, ResourceTestResult, ActionRead, EffectAllow},
		{RoleOrgViewer, WildcardDomain, ResourceTestResult, ActionList, EffectAllow},
		{RoleOrgViewer, WildcardDomain, ResourceReportDraft, ActionRead, EffectAllow},
		{RoleOrgViewer, WildcardDomain, ResourceReportDraft, ActionList, EffectAllow},
	}

	// User-level policies (domain: user:*)
	userPolicies := []PermissionPolicy{
		{RoleUserSelf, WildcardDomain, ResourceUser, ActionManage, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceAuthSession, ActionManage, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceOrganization, ActionCreate, EffectAllow},
	}

	allPolicies := append(append(sysPolicies, orgPolicies...), userPolicies...)

	for _, p := range allPolicies {
		added, err := auth.AddPermission(ctx, p.Subject, p.Domain, p.Object, p.Action, p.Effect)
		if err != nil {
			logger.Error("failed to add policy", "policy", p, "error", err)
			return err
		}
		if added {
			logger.Debug("added policy", "role", p.Subject, "domain", p.Domain, "resource", p.Object, "action", p.Action)
		}
	}

	logger.Info("seeded default RBAC policies", "count", len(allPolicies))
	return nil
}

// AssignUserSelfRole assigns the user:self role in the user's private domain.
// Call this when creating a new user.
func AssignUserSelfRole(ctx context.Context, auth IAuthorization, userID string) error {
	domain := UserDomain(userID)
	subject := GroupSubject(userID)

	_, err := auth.AddRoleForUserInDomain(ctx, subject, RoleUserSelf, domain)
	return err
}

// AssignOrgOwnerRole assigns the org:owner role to a user for a specific
// organization. Call this when creating a new organization.
func AssignOrgOwnerRole(ctx context.Context, auth IAuthorization, userID, orgID string) error {
	domain := OrgDomain(orgID)
	subject := GroupSubject(userID)

	_, err := auth.AddRoleForUserInDomain(ctx, subject, RoleOrgOwner, domain)
	return err
}

// AssignOrgRole assigns an organization role to a user.
// Valid roles: RoleOrgOwner, RoleOrgAdmin, RoleOrgViewer
func AssignOrgRole(ctx context.Context, auth IAuthorization, userID, orgID string, role Role) error {
	switch role {
	case RoleOrgOwner, RoleOrgAdmin, RoleOrgViewer:
	default:
		return ErrInvalidArgs
	}

	domain := OrgDomain(orgID)
	subject := GroupSubject(userID)

	_, err := auth.AddRoleForUserInDomain(ctx, subject, role, domain)
	return err
}

// RemoveOrgRole removes an organization role from a user.
func RemoveOrgRole(ctx context.Context, auth IAuthorization, userID, orgID string, role Role) error {
	domain := OrgDomain(orgID)
	subject := GroupSubject(userID)

	_, err := auth.RemoveRoleForUserInDomain(ctx, subject, role, domain)
	return err
}

// GetOrgRoles returns all roles a user has in a specific organization.
func GetOrgRoles(ctx context.Context, auth IAuthorization, userID, orgID string) ([]Role, error) {
	domain := OrgDomain(orgID)
	subject := GroupSubject(userID)

	return auth.GetRolesForUserInDomain(ctx, subject, domain)
}

// AssignSystemRole assigns a system-level role to a user.
// Note: RolePlatformSuperAdmin should be assigned manually/carefully.
func AssignSystemRole(ctx context.Context, auth IAuthorization, userID string, role Role) error {
	switch role {
	case RolePlatformSuperAdmin:
	default:
		return ErrInvalidArgs
	}

	subject := GroupSubject(userID)
	_, err := auth.AddRoleForUserInDomain(ctx, subject, role, DomainSys)
	return err
}

// RemoveSystemRole removes a system-level role from a user.
func RemoveSystemRole(ctx context.Context, auth IAuthorization, userID string, role Role) error {
	subject := GroupSubject(userID)
	_, err := auth.RemoveRoleForUserInDomain(ctx, subject, role, DomainSys)
	return err
}
