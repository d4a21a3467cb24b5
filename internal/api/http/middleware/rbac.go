package middleware

import (
	"github.com/gofiber/fiber/v3"

	"github.com/resonara/resonara_backend/pkg/authorize"
	pasetotoken "github.com/resonara/resonara_backend/pkg/paseto"
)

const LocalsOrgID = "org_id"

// RequirePermission checks if the authenticated user has the given permission
// in the current organization domain (set by OrgContext/OrgHeader). Without an
// organization context it checks the user's own domain, where the user:self
// role lives (organization create, self-owned resources).
func RequirePermission(auth authorize.IAuthorization, resource authorize.Resource, action authorize.Action) fiber.Handler {
	return func(c fiber.Ctx) error {
		claims, ok := pasetotoken.ClaimsFromFiber(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		var domain authorize.Domain
		if oid, ok := c.Locals(LocalsOrgID).(string); ok && oid != "" {
			domain = authorize.OrgDomain(oid)
		} else {
			domain = authorize.UserDomain(claims.UserID.String())
		}

		subject := authorize.GroupSubject(claims.UserID.String())
		if err := auth.MustEnforce(c.Context(), subject, domain, resource, action); err != nil {
			if err == authorize.ErrForbidden {
				return fiber.ErrForbidden
			}
			return err
		}

		return c.Next()
	}
}
