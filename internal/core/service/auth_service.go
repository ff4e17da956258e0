package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/mathquest/platform/internal/core/domain"
	"github.com/mathquest/platform/internal/core/ports"
	"github.com/mathquest/platform/internal/pkg/password"
	"github.com/mathquest/platform/internal/pkg/token"
)

// TokenRevoker abstracts the revocation store (Redis). A revoked token ID is
// treated as unauthenticated until its natural expiry.
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// AuthService implements registration, login, logout, password change and
// principal resolution.
type AuthService struct {
	users   ports.UserRepository
	codec   *token.Codec
	revoker TokenRevoker
	log     zerolog.Logger
}

func NewAuthService(users ports.UserRepository, codec *token.Codec, revoker TokenRevoker, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, codec: codec, revoker: revoker, log: log}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Username == "" || input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if !input.Role.Valid() {
		return nil, domain.ErrUnknownRole
	}
	if !password.Acceptable(input.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	// Only admins may create privileged accounts. Anonymous registration is
	// limited to students.
	if input.Role != domain.RoleStudent {
		if input.Actor == nil || input.Actor.Role != domain.RoleAdmin {
			return nil, domain.ErrForbidden
		}
	}

	hash, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         input.Role,
		RoleName:     input.Role.String(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("username", created.Username).Str("role", created.RoleName).Msg("user registered")
	return created, nil
}

// Login authenticates by username-or-email and returns a signed token plus
// the resolved user. Soft-deleted accounts never match; an expired temporary
// password fails as if the account did not exist.
func (s *AuthService) Login(ctx context.Context, usernameOrEmail, pass string) (*ports.LoginResult, error) {
	if usernameOrEmail == "" || pass == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.resolve(ctx, usernameOrEmail)
	if err != nil {
		return nil, err
	}

	if !password.Verify(pass, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	signed, err := s.codec.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("username", user.Username).Msg("login succeeded")
	return &ports.LoginResult{Token: signed, User: user}, nil
}

// Logout revokes the token ID until its embedded expiry.
func (s *AuthService) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if tokenID == "" {
		return domain.ErrInvalidArgument
	}
	return s.revoker.Revoke(ctx, tokenID, expiresAt)
}

func (s *AuthService) ChangePassword(ctx context.Context, userID uint, currentPassword, newPassword string) error {
	if !password.Acceptable(newPassword) {
		return domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if !password.Verify(currentPassword, user.PasswordHash) {
		return domain.ErrInvalidCredentials
	}

	hash, err := password.Hash(newPassword)
	if err != nil {
		return err
	}

	user.PasswordHash = hash
	// A successful change ends any temporary-password state.
	user.TemporaryPassword = false
	user.TempPasswordExpiresAt = nil
	user.UpdatedAt = time.Now().UTC()

	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	s.log.Info().Uint("user_id", userID).Msg("password changed")
	return nil
}

// ResolveByID rehydrates the live principal for a verified token identity.
// The same account-state checks as login apply, so a role change, deletion or
// temporary-password expiry invalidates outstanding tokens on their next use.
func (s *AuthService) ResolveByID(ctx context.Context, userID uint) (*domain.Principal, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.CredentialUsable(time.Now().UTC()) {
		return nil, domain.ErrUserNotFound
	}
	return &domain.Principal{UserID: user.ID, Username: user.Username, Role: user.Role}, nil
}

// resolve looks the account up by username first, falling back to email, and
// rejects accounts whose temporary password has expired.
func (s *AuthService) resolve(ctx context.Context, usernameOrEmail string) (*domain.User, error) {
	user, err := s.users.FindByUsername(ctx, usernameOrEmail)
	if errors.Is(err, domain.ErrUserNotFound) {
		user, err = s.users.FindByEmail(ctx, usernameOrEmail)
	}
	if err != nil {
		return nil, err
	}

	if !user.CredentialUsable(time.Now().UTC()) {
		s.log.Warn().Str("username", user.Username).Msg("expired temporary password rejected")
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}
