package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/resonara/resonara_backend/internal/repo"
	entmember "github.com/resonara/resonara_backend/internal/repo/orgmember"
	entorg "github.com/resonara/resonara_backend/internal/repo/organization"
	pasetotoken "github.com/resonara/resonara_backend/pkg/paseto"
)

const (
	LocalsMemberRole = "member_role"
	LocalsMemberID   = "member_id"
)

// OrgContext reads the organization ID from the :id URL param, validates the
// organization exists and is active, and stores the org_id and member_role in
// Locals for downstream handlers and RBAC.
func OrgContext(db *repo.Client) fiber.Handler {
	return func(c fiber.Ctx) error {
		idStr := c.Params("id")
		orgID, err := uuid.Parse(idStr)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid organization id")
		}

		// Verify organization exists and is active
		exists, err := db.Organization.Query().
			Where(entorg.ID(orgID), entorg.IsActive(true), entorg.DeletedAtIsNil()).
			Exist(c.Context())
		if err != nil {
			return err
		}
		if !exists {
			return fiber.ErrNotFound
		}

		c.Locals(LocalsOrgID, orgID.String())

		// If authenticated, look up member role
		if claims, ok := pasetotoken.ClaimsFromFiber(c); ok {
			m, err := db.OrgMember.Query().
				Where(
					entmember.OrgID(orgID),
					entmember.UserID(claims.UserID),
				).
				Only(c.Context())
			if err == nil {
				c.Locals(LocalsMemberRole, string(m.Role))
				c.Locals(LocalsMemberID, m.ID.String())
			}
		}

		return c.Next()
	}
}
