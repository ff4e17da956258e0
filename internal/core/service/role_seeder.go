package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mathquest/platform/internal/core/domain"
	"github.com/mathquest/platform/internal/core/ports"
)

// SeedRoles ensures one persisted row per Role enum value, keyed by
// ordinal + 1. Runs once at startup before the server accepts traffic and is
// idempotent: existing rows are left untouched. Returns the roles whose rows
// were created on this run so the caller can report them.
func SeedRoles(ctx context.Context, repo ports.RoleRepository, log zerolog.Logger) ([]domain.Role, error) {
	var created []domain.Role
	for _, role := range domain.AllRoles() {
		id := role.SeedID()

		exists, err := repo.Exists(ctx, id)
		if err != nil {
			return created, fmt.Errorf("seed roles: check %s: %w", role, err)
		}
		if exists {
			continue
		}

		if err := repo.Create(ctx, id, role); err != nil {
			return created, fmt.Errorf("seed roles: create %s: %w", role, err)
		}
		created = append(created, role)
		log.Info().Uint("role_id", id).Str("role", role.String()).Msg("role seeded")
	}
	return created, nil
}
