package ports

import (
	"context"

	"github.com/mathquest/platform/internal/core/domain"
)

// UserRepository is the persistence port for user accounts. Implementations
// must exclude soft-deleted rows from every lookup.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id uint) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	// SoftDelete marks the user deleted without removing the row.
	SoftDelete(ctx context.Context, id uint) error
	List(ctx context.Context, page, limit int) ([]domain.User, int64, error)
}
