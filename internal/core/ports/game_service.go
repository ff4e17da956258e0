package ports

import (
	"context"
	"encoding/json"

	"github.com/mathquest/platform/internal/core/domain"
)

// CreateGameInput carries the fields for a new game.
type CreateGameInput struct {
	Title      string
	Kind       string
	Difficulty domain.Difficulty
	Config     json.RawMessage
}

// UpdateGameInput carries mutable game fields. Nil means "unchanged".
type UpdateGameInput struct {
	Title      *string
	Difficulty *domain.Difficulty
	Config     json.RawMessage
}

// GameService defines game use-cases. Creation and mutation are reserved to
// teachers and admins; any authenticated user may browse.
type GameService interface {
	Create(ctx context.Context, input CreateGameInput, actor domain.Principal) (*domain.Game, error)
	Get(ctx context.Context, id uint) (*domain.Game, error)
	List(ctx context.Context, filter GameFilter) ([]domain.Game, error)
	Update(ctx context.Context, id uint, input UpdateGameInput, actor domain.Principal) (*domain.Game, error)
	Delete(ctx context.Context, id uint, actor domain.Principal) error
}
