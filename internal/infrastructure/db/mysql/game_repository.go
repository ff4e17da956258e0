package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/mathquest/platform/internal/core/domain"
	"github.com/mathquest/platform/internal/core/ports"
)

type gameRepository struct {
	db *gorm.DB
}

func NewGameRepository(db *gorm.DB) ports.GameRepository {
	return &gameRepository{db: db}
}

func (r *gameRepository) Create(ctx context.Context, game *domain.Game) (*domain.Game, error) {
	model := gameFromDomain(game)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return nil, err
	}
	return model.toDomain(), nil
}

func (r *gameRepository) FindByID(ctx context.Context, id uint) (*domain.Game, error) {
	var model gameModel
	err := r.db.WithContext(ctx).First(&model, id).Error
	if err != nil {
		return nil, translateNotFound(err, domain.ErrGameNotFound)
	}
	return model.toDomain(), nil
}

func (r *gameRepository) List(ctx context.Context, filter ports.GameFilter) ([]domain.Game, error) {
	query := r.db.WithContext(ctx).Model(&gameModel{})
	if filter.Kind != "" {
		query = query.Where("kind = ?", filter.Kind)
	}
	if filter.Difficulty != "" {
		query = query.Where("difficulty = ?", string(filter.Difficulty))
	}

	var models []gameModel
	if err := query.Order("title").Find(&models).Error; err != nil {
		return nil, err
	}

	games := make([]domain.Game, 0, len(models))
	for i := range models {
		games = append(games, *models[i].toDomain())
	}
	return games, nil
}

func (r *gameRepository) Update(ctx context.Context, game *domain.Game) error {
	result := r.db.WithContext(ctx).
		Model(&gameModel{}).
		Where("id = ?", game.ID).
		Updates(map[string]any{
			"title":      game.Title,
			"difficulty": string(game.Difficulty),
			"config":     []byte(game.Config),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrGameNotFound
	}
	return nil
}

func (r *gameRepository) SoftDelete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&gameModel{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrGameNotFound
	}
	return nil
}
