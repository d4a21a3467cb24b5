package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/resonara/resonara_backend/internal/repo"
	entmember "github.com/resonara/resonara_backend/internal/repo/orgmember"
	entorg "github.com/resonara/resonara_backend/internal/repo/organization"
	pasetotoken "github.com/resonara/resonara_backend/pkg/paseto"
)

// OrgHeader reads the organization ID from the X-Org-ID header (used for
// non-nested routes like /takers, /questions, /tests that are org-scoped).
// It validates the organization is active and that the authenticated user is
// a member. On success it sets the same Locals keys as OrgContext so
// downstream middleware (RequirePermission) works identically for both entry
// paths.
func OrgHeader(db *repo.Client) fiber.Handler {
	return func(c fiber.Ctx) error {
		idStr := c.Get("X-Org-ID")
		if idStr == "" {
			return fiber.NewError(fiber.StatusBadRequest, "X-Org-ID header is required")
		}

		orgID, err := uuid.Parse(idStr)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid X-Org-ID value")
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

		// Require authenticated user to be a member
		claims, ok := pasetotoken.ClaimsFromFiber(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		m, err := db.OrgMember.Query().
			Where(
				entmember.OrgID(orgID),
				entmember.UserID(claims.UserID),
			).
			Only(c.Context())
		if err != nil {
			if repo.IsNotFound(err) {
				return fiber.ErrForbidden
			}
			return err
		}

		c.Locals(LocalsOrgID, orgID.String())
		c.Locals(LocalsMemberRole, string(m.Role))
		c.Locals(LocalsMemberID, m.ID.String())

		return c.Next()
	}
}

// OrgIDFromFiber returns the org id set by OrgContext or OrgHeader.
func OrgIDFromFiber(c fiber.Ctx) (uuid.UUID, bool) {
	s, ok := c.Locals(LocalsOrgID).(string)
	if !ok || s == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
