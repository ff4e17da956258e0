package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/mathquest/platform/internal/core/domain"
)

// Principal extracts the authenticated principal attached by Authenticate.
func Principal(c echo.Context) (*domain.Principal, bool) {
	principal, ok := c.Get(PrincipalKey).(*domain.Principal)
	return principal, ok
}

// RequireAuth rejects unauthenticated requests with 401.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := Principal(c); !ok {
				return domain.ErrUnauthorized
			}
			return next(c)
		}
	}
}

// RequireRoles enforces role-based access control: 401 without a principal,
// 403 for an authenticated principal outside the allowed set.
func RequireRoles(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := Principal(c)
			if !ok {
				return domain.ErrUnauthorized
			}
			if _, ok := allowed[principal.Role]; !ok {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
