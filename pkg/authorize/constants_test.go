package authorize

import (
	"testing"
)

func TestIsValidDomain(t *testing.T) {
	tests := []struct {
		name     string
		domain   Domain
		expected bool
	}{
		// Valid domains
		{"sys domain", DomainSys, true},
		{"wildcard domain", WildcardDomain, true},
		{"valid org domain", Domain("org:550e8400-e29b-41d4-a716-446655440000"), true},
		{"valid user domain", Domain("user:550e8400-e29b-41d4-a716-446655440000"), true},

		// Invalid domains
		{"empty domain", Domain(""), false},
		{"random string", Domain("random"), false},
		{"org without uuid", Domain("org:"), false},
		{"org with invalid uuid", Domain("org:invalid-uuid"), false},
		{"user without uuid", Domain("user:"), false},
		{"user with invalid uuid", Domain("user:not-a-uuid"), false},
		{"unknown prefix", Domain("unknown:550e8400-e29b-41d4-a716-446655440000"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsValidDomain(tt.domain)
			if result != tt.expected {
				t.Errorf("IsValidDomain(%q) = %v, want %v", tt.domain, result, tt.expected)
			}
		})
	}
}

func TestOrgDomain(t *testing.T) {
	orgID := "550e8400-e29b-41d4-a716-446655440000"
	expected := Domain("org:550e8400-e29b-41d4-a716-446655440000")

	result := OrgDomain(orgID)
	if result != expected {
		t.Errorf("OrgDomain(%q) = %q, want %q", orgID, result, expected)
	}
}

func TestUserDomain(t *testing.T) {
	userID := "550e8400-e29b-41d4-a716-446655440000"
	expected := Domain("user:550e8400-e29b-41d4-a716-446655440000")

	result := UserDomain(userID)
	if result != expected {
		t.Errorf("UserDomain(%q) = %q, want %q", userID, result, expected)
	}
}

func TestKnownActions(t *testing.T) {
	// Verify all expected actions are in the known map
	expectedActions := []Action{
		ActionCreate, ActionRead, ActionUpdate, ActionDelete, ActionList,
		ActionManage, ActionExecute,
		ActionGrant, ActionRevoke,
	}

	for _, action := range expectedActions {
		if _, ok := KnownActions[action]; !ok {
			t.Errorf("Expected action %q to be in KnownActions", action)
		}
	}
}

func TestKnownResources(t *testing.T) {
	// Verify all expected resources are in the known map
	expectedResources := []Resource{
		ResourceUser, ResourceAuthSession,
		ResourceOrganization, ResourceOrgMember, ResourceOrgSettings,
		ResourceQuestion, ResourceTest, ResourceTestLink,
		ResourceTaker, ResourceSubmission, ResourceTestResult, ResourceReportDraft,
		ResourceSystem, ResourceAudit, ResourceRBAC,
	}

	for _, resource := range expectedResources {
		if _, ok := KnownResources[resource]; !ok {
			t.Errorf("Expected resource %q to be in KnownResources", resource)
		}
	}
}

func TestKnownRoles(t *testing.T) {
	// Verify all expected roles are in the known map
	expectedRoles := []Role{
		RolePlatformSuperAdmin,
		RoleOrgOwner, RoleOrgAdmin, RoleOrgViewer,
		RoleUserSelf,
	}

	for _, role := range expectedRoles {
		if _, ok := KnownRoles[role]; !ok {
			t.Errorf("Expected role %q to be in KnownRoles", role)
		}
	}
}

func TestRoleDisplayNames(t *testing.T) {
	// Verify all roles have display names
	expectedRoles := []Role{
		RolePlatformSuperAdmin,
		RoleOrgOwner, RoleOrgAdmin, RoleOrgViewer,
		RoleUserSelf,
	}

	for _, role := range expectedRoles {
		if name, ok := RoleDisplayNames[role]; !ok || name == "" {
			t.Errorf("Expected role %q to have a display name", role)
		}
	}
}

func TestOrgMemberRoleMapping(t *testing.T) {
	tests := []struct {
		dbRole string
		want   Role
	}{
		{OrgMemberRoleOwner, RoleOrgOwner},
		{OrgMemberRoleAdmin, RoleOrgAdmin},
		{OrgMemberRoleViewer, RoleOrgViewer},
	}

	for _, tt := range tests {
		t.Run(tt.dbRole, func(t *testing.T) {
			got, ok := OrgMemberRoleToRBACRole[tt.dbRole]
			if !ok {
				t.Fatalf("no RBAC role mapped for db role %q", tt.dbRole)
			}
			if got != tt.want {
				t.Errorf("OrgMemberRoleToRBACRole[%q] = %q, want %q", tt.dbRole, got, tt.want)
			}
		})
	}
}
