package ports

import (
	"context"

	"github.com/mathquest/platform/internal/core/domain"
)

// GameFilter narrows a game listing. Zero values mean "no filter".
type GameFilter struct {
	Kind       string
	Difficulty domain.Difficulty
}

// GameRepository is the persistence port for games.
type GameRepository interface {
	Create(ctx context.Context, game *domain.Game) (*domain.Game, error)
	FindByID(ctx context.Context, id uint) (*domain.Game, error)
	List(ctx context.Context, filter GameFilter) ([]domain.Game, error)
	Update(ctx context.Context, game *domain.Game) error
	SoftDelete(ctx context.Context, id uint) error
}
