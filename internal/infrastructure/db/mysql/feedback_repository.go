package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/mathquest/platform/internal/core/domain"
	"github.com/mathquest/platform/internal/core/ports"
)

type feedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) ports.FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) Create(ctx context.Context, feedback *domain.Feedback) (*domain.Feedback, error) {
	model := feedbackFromDomain(feedback)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return nil, err
	}
	return model.toDomain(), nil
}

func (r *feedbackRepository) ListByActivity(ctx context.Context, activityID uint) ([]domain.Feedback, error) {
	var models []feedbackModel
	err := r.db.WithContext(ctx).
		Where("activity_id = ?", activityID).
		Order("created_at").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	items := make([]domain.Feedback, 0, len(models))
	for i := range models {
		items = append(items, *models[i].toDomain())
	}
	return items, nil
}

func (r *feedbackRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&feedbackModel{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrFeedbackNotFound
	}
	return nil
}
