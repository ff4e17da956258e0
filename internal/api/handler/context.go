package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/mathquest/platform/internal/api/middleware"
	"github.com/mathquest/platform/internal/core/domain"
)

// ctxPrincipal extracts the principal attached by the auth middleware. Routes
// that reach a handler without one are misconfigured or unauthenticated;
// either way the caller gets a 401.
func ctxPrincipal(c echo.Context) (domain.Principal, error) {
	principal, ok := middleware.Principal(c)
	if !ok {
		return domain.Principal{}, domain.ErrUnauthorized
	}
	return *principal, nil
}
