package ports

import (
	"context"
	"time"

	"github.com/mathquest/platform/internal/core/domain"
)

// RegisterInput carries everything needed to create an account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     domain.Role
	// Actor is the authenticated principal performing the registration, nil
	// for anonymous self-registration (students only).
	Actor *domain.Principal
}

// LoginResult is returned on successful authentication.
type LoginResult struct {
	Token string
	User  *domain.User
}

// AuthService implements registration, login, logout and password change.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login resolves the account by username first, then by email.
	Login(ctx context.Context, usernameOrEmail, password string) (*LoginResult, error)
	// Logout revokes the presented token until its natural expiry.
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
	ChangePassword(ctx context.Context, userID uint, currentPassword, newPassword string) error
}

// PrincipalResolver rehydrates a live principal from a verified token
// identity. Soft-deleted accounts and accounts whose temporary password has
// expired must fail to resolve, so stale tokens stop working as soon as the
// account state changes.
type PrincipalResolver interface {
	ResolveByID(ctx context.Context, userID uint) (*domain.Principal, error)
}
