package authorize

import (
	"fmt"
	"regexp"
)

type Action string
type Resource string
type Role string
type Domain string

// ----------------------------
// Actions
// ----------------------------

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionList   Action = "list"

	// Power actions
	ActionManage  Action = "manage"  // CRUD + list
	ActionExecute Action = "execute" // run, trigger, send, etc.

	// RBAC-specific actions
	ActionGrant  Action = "grant"
	ActionRevoke Action = "revoke"
)

const (
	WildcardAction Action = "*"
)

var KnownActions = map[Action]struct{}{
	ActionCreate: {}, ActionRead: {}, ActionUpdate: {}, ActionDelete: {}, ActionList: {},
	ActionManage: {}, ActionExecute: {},
	ActionGrant: {}, ActionRevoke: {},
}

// ----------------------------
// Resources
// ----------------------------

const (
	WildcardResource Resource = "*"

	// Identity / auth
	ResourceUser        Resource = "user"
	ResourceAuthSession Resource = "auth_session"

	// Organization (tenant management)
	ResourceOrganization Resource = "organization"
	ResourceOrgMember    Resource = "org_member"
	ResourceOrgSettings  Resource = "org_settings"

	// Assessment content
	ResourceQuestion Resource = "question"
	ResourceTest     Resource = "test"
	ResourceTestLink Resource = "test_link"

	// Taking and results
	ResourceTaker       Resource = "taker"
	ResourceSubmission  Resource = "submission"
	ResourceTestResult  Resource = "test_result"
	ResourceReportDraft Resource = "report_draft"

	// System / platform admin
	ResourceSystem Resource = "system"
	ResourceAudit  Resource = "audit"
	ResourceRBAC   Resource = "rbac"
)

var KnownResources = map[Resource]struct{}{
	ResourceUser: {}, ResourceAuthSession: {},
	ResourceOrganization: {}, ResourceOrgMember: {}, ResourceOrgSettings: {},
	ResourceQuestion: {}, ResourceTest: {}, ResourceTestLink: {},
	ResourceTaker: {}, ResourceSubmission: {}, ResourceTestResult: {}, ResourceReportDraft: {},
	ResourceSystem: {}, ResourceAudit: {}, ResourceRBAC: {},
}

// ----------------------------
// Roles
// ----------------------------
//
// These are the "policy subjects" we assign to users via grouping policies.

const (
	WildcardRole Role = "*"

	// Platform role (domain = sys)
	RolePlatformSuperAdmin Role = "role:platform:superadmin"

	// Organization roles (domain = org:<uuid>)
	RoleOrgOwner  Role = "role:org:owner"
	RoleOrgAdmin  Role = "role:org:admin"
	RoleOrgViewer Role = "role:org:viewer"

	// Private user scope (domain = user:<uuid>)
	RoleUserSelf Role = "role:user:self"
)

var KnownRoles = map[Role]struct{}{
	RolePlatformSuperAdmin: {},
	RoleOrgOwner:           {},
	RoleOrgAdmin:           {},
	RoleOrgViewer:          {},
	RoleUserSelf:           {},
}

var RoleDisplayNames = map[Role]string{
	RolePlatformSuperAdmin: "Platform Superadmin",
	RoleOrgOwner:           "Organization Owner",
	RoleOrgAdmin:           "Organization Admin",
	RoleOrgViewer:          "Organization Viewer",
	RoleUserSelf:           "Self",
}

// Organization member role strings (stored in DB org_members.role column)
const (
	OrgMemberRoleOwner  = "owner"
	OrgMemberRoleAdmin  = "admin"
	OrgMemberRoleViewer = "viewer"
)

// OrgMemberRoleToRBACRole maps DB role values to Casbin roles
var OrgMemberRoleToRBACRole = map[string]Role{
	OrgMemberRoleOwner:  RoleOrgOwner,
	OrgMemberRoleAdmin:  RoleOrgAdmin,
	OrgMemberRoleViewer: RoleOrgViewer,
}

// ----------------------------
// Domains
// ----------------------------

const (
	DomainSys Domain = "sys"
)

// Domain prefixes (for exact domains we generate per entity)
const (
	DomainPrefixOrg  Domain = "org:"
	DomainPrefixUser Domain = "user:"
)

const (
	WildcardDomain Domain = "*"
)

var (
	reUUID = regexp.MustCompile(`^[0-9a-fA-F-]{36}$`)
)

// Domain builders (typed, safe)
func OrgDomain(orgID string) Domain {
	return Domain(fmt.Sprintf("%s%s", DomainPrefixOrg, orgID))
}

func UserDomain(userID string) Domain {
	return Domain(fmt.Sprintf("%s%s", DomainPrefixUser, userID))
}

// IsValidDomain checks whether d is a recognised domain string.
func IsValidDomain(d Domain) bool {
	if d == DomainSys || d == WildcardDomain {
		return true
	}

	s := string(d)
	switch {
	case len(s) > len(DomainPrefixOrg) && s[:len(DomainPrefixOrg)] == string(DomainPrefixOrg):
		return reUUID.MatchString(s[len(DomainPrefixOrg):])
	case len(s) > len(DomainPrefixUser) && s[:len(DomainPrefixUser)] == string(DomainPrefixUser):
		return reUUID.MatchString(s[len(DomainPrefixUser):])
	default:
		return false
	}
}

// ----------------------------
// Casbin tuple helpers
// ----------------------------

type PolicyEffect string

const (
	EffectAllow PolicyEffect = "allow"
	EffectDeny  PolicyEffect = "deny"
)

// PolicySubject is the p.sub in Casbin: either a role (preferred) or a user/service id.
type PolicySubject string

// GroupSubject is the g.sub in Casbin: a concrete principal id (user_id or service_id).
type GroupSubject string

// Grouping rows: g, user_id, role, domain
type GroupingPolicy struct {
	Subject GroupSubject
	Role    Role
	Domain  Domain
}

// Permission rows: p, role, domain, resource, action, eft
type PermissionPolicy struct {
	Subject Role
	Domain  Domain
	Object  Resource
	Action  Action
	Effect  PolicyEffect
}
