package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/mathquest/platform/internal/core/domain"
)

func runPolicy(t *testing.T, mw echo.MiddlewareFunc, principal *domain.Principal) error {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	if principal != nil {
		c.Set(PrincipalKey, principal)
	}
	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return handler(c)
}

func TestRequireAuth_WithoutPrincipal(t *testing.T) {
	err := runPolicy(t, RequireAuth(), nil)
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized, got %v", err)
	}
}

func TestRequireAuth_WithPrincipal(t *testing.T) {
	err := runPolicy(t, RequireAuth(), &domain.Principal{UserID: 1, Role: domain.RoleStudent})
	if err != nil {
		t.Errorf("expected request to pass, got %v", err)
	}
}

func TestRequireRoles_Allowed(t *testing.T) {
	mw := RequireRoles(domain.RoleTeacher, domain.RoleAdmin)
	err := runPolicy(t, mw, &domain.Principal{UserID: 1, Role: domain.RoleTeacher})
	if err != nil {
		t.Errorf("expected teacher to pass, got %v", err)
	}
}

func TestRequireRoles_Forbidden(t *testing.T) {
	mw := RequireRoles(domain.RoleTeacher, domain.RoleAdmin)
	err := runPolicy(t, mw, &domain.Principal{UserID: 2, Role: domain.RoleStudent})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
}

func TestRequireRoles_Unauthenticated(t *testing.T) {
	mw := RequireRoles(domain.RoleAdmin)
	err := runPolicy(t, mw, nil)
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized, got %v", err)
	}
}
