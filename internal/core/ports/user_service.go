package ports

import (
	"context"

	"github.com/mathquest/platform/internal/core/domain"
)

// UpdateUserInput carries the mutable profile fields. Nil means "unchanged".
type UpdateUserInput struct {
	Username *string
	Email    *string
}

// ListUsersResult pages through accounts.
type ListUsersResult struct {
	Items      []domain.User
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// UserService defines account management use-cases.
type UserService interface {
	Get(ctx context.Context, id uint) (*domain.User, error)
	List(ctx context.Context, page, limit int) (*ListUsersResult, error)
	Update(ctx context.Context, id uint, input UpdateUserInput, actor domain.Principal) (*domain.User, error)
	// Deactivate soft-deletes the account; the user can no longer authenticate.
	Deactivate(ctx context.Context, id uint, actor domain.Principal) error
}
