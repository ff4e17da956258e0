package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/mathquest/platform/internal/core/domain"
	"github.com/mathquest/platform/internal/core/ports"
)

type lessonRepository struct {
	db *gorm.DB
}

func NewLessonRepository(db *gorm.DB) ports.LessonRepository {
	return &lessonRepository{db: db}
}

func (r *lessonRepository) Create(ctx context.Context, lesson *domain.Lesson) (*domain.Lesson, error) {
	model := lessonFromDomain(lesson)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return nil, err
	}
	return model.toDomain(), nil
}

func (r *lessonRepository) FindByID(ctx context.Context, id uint) (*domain.Lesson, error) {
	var model lessonModel
	err := r.db.WithContext(ctx).
		Preload("Blocks", func(db *gorm.DB) *gorm.DB {
			return db.Order("content_blocks.position")
		}).
		First(&model, id).Error
	if err != nil {
		return nil, translateNotFound(err, domain.ErrLessonNotFound)
	}
	return model.toDomain(), nil
}

func (r *lessonRepository) ListByClassroom(ctx context.Context, classroomID uint) ([]domain.Lesson, error) {
	var models []lessonModel
	err := r.db.WithContext(ctx).
		Where("classroom_id = ?", classroomID).
		Order("position").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	lessons := make([]domain.Lesson, 0, len(models))
	for i := range models {
		lessons = append(lessons, *models[i].toDomain())
	}
	return lessons, nil
}

func (r *lessonRepository) Update(ctx context.Context, lesson *domain.Lesson) error {
	result := r.db.WithContext(ctx).
		Model(&lessonModel{}).
		Where("id = ?", lesson.ID).
		Updates(map[string]any{
			"title":    lesson.Title,
			"summary":  lesson.Summary,
			"position": lesson.Position,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrLessonNotFound
	}
	return nil
}

func (r *lessonRepository) SoftDelete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&lessonModel{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrLessonNotFound
	}
	return nil
}

func (r *lessonRepository) AddBlock(ctx context.Context, block *domain.ContentBlock) (*domain.ContentBlock, error) {
	model := blockFromDomain(block)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return nil, err
	}
	return model.toDomain(), nil
}

func (r *lessonRepository) FindBlock(ctx context.Context, blockID uint) (*domain.ContentBlock, error) {
	var model contentBlockModel
	err := r.db.WithContext(ctx).First(&model, blockID).Error
	if err != nil {
		return nil, translateNotFound(err, domain.ErrBlockNotFound)
	}
	return model.toDomain(), nil
}

func (r *lessonRepository) UpdateBlock(ctx context.Context, block *domain.ContentBlock) error {
	result := r.db.WithContext(ctx).
		Model(&contentBlockModel{}).
		Where("id = ?", block.ID).
		Updates(map[string]any{
			"kind":     string(block.Kind),
			"content":  block.Content,
			"position": block.Position,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrBlockNotFound
	}
	return nil
}

func (r *lessonRepository) DeleteBlock(ctx context.Context, blockID uint) error {
	result := r.db.WithContext(ctx).Delete(&contentBlockModel{}, blockID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrBlockNotFound
	}
	return nil
}

func (r *lessonRepository) ReorderBlocks(ctx context.Context, lessonID uint, orderedIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for position, blockID := range orderedIDs {
			result := tx.Model(&contentBlockModel{}).
				Where("id = ? AND lesson_id = ?", blockID, lessonID).
				Update("position", position)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return domain.ErrBlockNotFound
			}
		}
		return nil
	})
}
