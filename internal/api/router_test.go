package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/mathquest/platform/internal/api/handler"
	"github.com/mathquest/platform/internal/api/middleware"
	"github.com/mathquest/platform/internal/core/domain"
	"github.com/mathquest/platform/internal/core/ports"
	"github.com/mathquest/platform/internal/pkg/token"
)

// routeAuthService mirrors the registration role gate so the routing tests
// can observe which actor the wiring hands to the service.
type routeAuthService struct {
	lastActor *domain.Principal
}

func (s *routeAuthService) Register(_ context.Context, input ports.RegisterInput) (*domain.User, error) {
	s.lastActor = input.Actor
	if input.Role != domain.RoleStudent {
		if input.Actor == nil || input.Actor.Role != domain.RoleAdmin {
			return nil, domain.ErrForbidden
		}
	}
	return &domain.User{
		ID:       42,
		Username: input.Username,
		Email:    input.Email,
		Role:     input.Role,
		RoleName: input.Role.String(),
	}, nil
}

func (s *routeAuthService) Login(context.Context, string, string) (*ports.LoginResult, error) {
	return nil, domain.ErrInvalidCredentials
}

func (s *routeAuthService) Logout(context.Context, string, time.Time) error { return nil }

func (s *routeAuthService) ChangePassword(context.Context, uint, string, string) error { return nil }

type routeResolver struct {
	principals map[uint]*domain.Principal
}

func (r *routeResolver) ResolveByID(_ context.Context, id uint) (*domain.Principal, error) {
	p, ok := r.principals[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return p, nil
}

type routeRevocation struct{}

func (routeRevocation) IsRevoked(context.Context, string) (bool, error) { return false, nil }

// newAuthRoutes wires the register route exactly as the router does: the
// authenticator runs globally with the production skip list.
func newAuthRoutes(t *testing.T, svc ports.AuthService, resolver ports.PrincipalResolver) (*echo.Echo, *token.Codec) {
	t.Helper()
	codec := token.NewCodec("route-test-secret", time.Hour)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())
	e.Use(middleware.Authenticate(
		codec,
		resolver,
		routeRevocation{},
		middleware.PublicPathSkipper(publicPaths...),
		zerolog.Nop(),
	))

	authHandler := handler.NewAuthHandler(svc)
	auth := e.Group("/auth")
	auth.POST("/register", authHandler.Register)
	return e, codec
}

func postRegister(t *testing.T, e *echo.Echo, bearer, role string) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(map[string]string{
		"username": "new" + role,
		"email":    "new-" + role + "@school.test",
		"password": "s3cretpass",
		"role":     role,
	})
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if bearer != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRegisterRoute_AdminTokenCreatesTeacher(t *testing.T) {
	svc := &routeAuthService{}
	resolver := &routeResolver{principals: map[uint]*domain.Principal{
		1: {UserID: 1, Username: "root", Role: domain.RoleAdmin},
	}}
	e, codec := newAuthRoutes(t, svc, resolver)

	bearer, err := codec.Issue(1)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	rec := postRegister(t, e, bearer, "teacher")
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, http.StatusCreated, rec.Body.String())
	}
	if svc.lastActor == nil {
		t.Fatal("registration reached the service without the admin principal")
	}
	if svc.lastActor.UserID != 1 || svc.lastActor.Role != domain.RoleAdmin {
		t.Errorf("actor = %+v, want admin user 1", svc.lastActor)
	}
}

func TestRegisterRoute_AnonymousTeacherForbidden(t *testing.T) {
	svc := &routeAuthService{}
	e, _ := newAuthRoutes(t, svc, &routeResolver{})

	rec := postRegister(t, e, "", "teacher")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, http.StatusForbidden, rec.Body.String())
	}
	if svc.lastActor != nil {
		t.Errorf("actor = %+v, want nil for anonymous caller", svc.lastActor)
	}
}

func TestRegisterRoute_AnonymousStudentAllowed(t *testing.T) {
	svc := &routeAuthService{}
	e, _ := newAuthRoutes(t, svc, &routeResolver{})

	rec := postRegister(t, e, "", "student")
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, http.StatusCreated, rec.Body.String())
	}
}

func TestRegisterRoute_NotOnSkipList(t *testing.T) {
	skip := middleware.PublicPathSkipper(publicPaths...)
	req := httptest.NewRequest(http.MethodPost, "/auth/register", nil)
	c := echo.New().NewContext(req, httptest.NewRecorder())
	if skip(c) {
		t.Fatal("/auth/register must pass through the authenticator")
	}
}
