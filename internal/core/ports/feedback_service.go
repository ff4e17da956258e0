package ports

import (
	"context"

	"github.com/mathquest/platform/internal/core/domain"
)

// CreateFeedbackInput carries a student's rating and comment on an activity.
type CreateFeedbackInput struct {
	ActivityID uint
	Rating     int
	Comment    string
}

// FeedbackService defines feedback use-cases.
type FeedbackService interface {
	Create(ctx context.Context, input CreateFeedbackInput, actor domain.Principal) (*domain.Feedback, error)
	ListByActivity(ctx context.Context, activityID uint) ([]domain.Feedback, error)
	Delete(ctx context.Context, id uint, actor domain.Principal) error
}
