package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/mathquest/platform/internal/core/domain"
	"github.com/mathquest/platform/internal/core/ports"
)

// GameService implements game use-cases. Only teachers and admins create or
// mutate games; any authenticated user may browse the catalogue.
type GameService struct {
	games ports.GameRepository
	log   zerolog.Logger
}

func NewGameService(games ports.GameRepository, log zerolog.Logger) *GameService {
	return &GameService{games: games, log: log}
}

func (s *GameService) Create(ctx context.Context, input ports.CreateGameInput, actor domain.Principal) (*domain.Game, error) {
	if actor.Role != domain.RoleTeacher && actor.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	if input.Title == "" || input.Kind == "" {
		return nil, domain.ErrInvalidArgument
	}
	if !input.Difficulty.Valid() {
		return nil, domain.ErrInvalidDifficulty
	}

	now := time.Now().UTC()
	game := &domain.Game{
		Title:      input.Title,
		Kind:       input.Kind,
		Difficulty: input.Difficulty,
		Config:     input.Config,
		CreatedBy:  actor.UserID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := s.games.Create(ctx, game)
	if err != nil {
		return nil, err
	}

	s.log.Info().Uint("game_id", created.ID).Uint("creator_id", actor.UserID).Msg("game created")
	return created, nil
}

func (s *GameService) Get(ctx context.Context, id uint) (*domain.Game, error) {
	return s.games.FindByID(ctx, id)
}

func (s *GameService) List(ctx context.Context, filter ports.GameFilter) ([]domain.Game, error) {
	if filter.Difficulty != "" && !filter.Difficulty.Valid() {
		return nil, domain.ErrInvalidDifficulty
	}
	return s.games.List(ctx, filter)
}

func (s *GameService) Update(ctx context.Context, id uint, input ports.UpdateGameInput, actor domain.Principal) (*domain.Game, error) {
	game, err := s.games.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeWrite(game, actor); err != nil {
		return nil, err
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, domain.ErrInvalidArgument
		}
		game.Title = *input.Title
	}
	if input.Difficulty != nil {
		if !input.Difficulty.Valid() {
			return nil, domain.ErrInvalidDifficulty
		}
		game.Difficulty = *input.Difficulty
	}
	if input.Config != nil {
		game.Config = input.Config
	}
	game.UpdatedAt = time.Now().UTC()

	if err := s.games.Update(ctx, game); err != nil {
		return nil, err
	}
	return game, nil
}

func (s *GameService) Delete(ctx context.Context, id uint, actor domain.Principal) error {
	game, err := s.games.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authorizeWrite(game, actor); err != nil {
		return err
	}
	return s.games.SoftDelete(ctx, id)
}

// authorizeWrite grants mutation access to admins and the creating teacher.
func (s *GameService) authorizeWrite(game *domain.Game, actor domain.Principal) error {
	if actor.Role == domain.RoleAdmin {
		return nil
	}
	if actor.Role == domain.RoleTeacher && game.CreatedBy == actor.UserID {
		return nil
	}
	return domain.ErrForbidden
}
