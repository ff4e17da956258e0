package ports

import (
	"context"

	"github.com/mathquest/platform/internal/core/domain"
)

// FeedbackRepository is the persistence port for activity feedback.
type FeedbackRepository interface {
	Create(ctx context.Context, feedback *domain.Feedback) (*domain.Feedback, error)
	ListByActivity(ctx context.Context, activityID uint) ([]domain.Feedback, error)
	Delete(ctx context.Context, id uint) error
}
