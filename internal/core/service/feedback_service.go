package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/mathquest/platform/internal/core/domain"
	"github.com/mathquest/platform/internal/core/ports"
)

const (
	minRating = 1
	maxRating = 5
)

// FeedbackService implements activity feedback use-cases.
type FeedbackService struct {
	feedback   ports.FeedbackRepository
	activities ports.ActivityRepository
	log        zerolog.Logger
}

func NewFeedbackService(feedback ports.FeedbackRepository, activities ports.ActivityRepository, log zerolog.Logger) *FeedbackService {
	return &FeedbackService{feedback: feedback, activities: activities, log: log}
}

func (s *FeedbackService) Create(ctx context.Context, input ports.CreateFeedbackInput, actor domain.Principal) (*domain.Feedback, error) {
	if actor.Role != domain.RoleStudent {
		return nil, domain.ErrForbidden
	}
	if input.Rating < minRating || input.Rating > maxRating {
		return nil, domain.ErrRatingOutOfRange
	}
	if _, err := s.activities.FindByID(ctx, input.ActivityID); err != nil {
		return nil, err
	}

	feedback := &domain.Feedback{
		ActivityID: input.ActivityID,
		StudentID:  actor.UserID,
		Rating:     input.Rating,
		Comment:    input.Comment,
		CreatedAt:  time.Now().UTC(),
	}

	created, err := s.feedback.Create(ctx, feedback)
	if err != nil {
		return nil, err
	}

	s.log.Info().Uint("activity_id", input.ActivityID).Uint("student_id", actor.UserID).Int("rating", input.Rating).Msg("feedback recorded")
	return created, nil
}

func (s *FeedbackService) ListByActivity(ctx context.Context, activityID uint) ([]domain.Feedback, error) {
	if _, err := s.activities.FindByID(ctx, activityID); err != nil {
		return nil, err
	}
	return s.feedback.ListByActivity(ctx, activityID)
}

func (s *FeedbackService) Delete(ctx context.Context, id uint, actor domain.Principal) error {
	if actor.Role != domain.RoleAdmin {
		return domain.ErrForbidden
	}
	return s.feedback.Delete(ctx, id)
}
