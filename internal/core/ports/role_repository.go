package ports

import (
	"context"

	"github.com/mathquest/platform/internal/core/domain"
)

// RoleRepository is the persistence port for the role reference table.
type RoleRepository interface {
	// Exists reports whether a role row with the given primary key is present.
	Exists(ctx context.Context, id uint) (bool, error)
	// Create inserts a role row with an explicit primary key.
	Create(ctx context.Context, id uint, role domain.Role) error
}
