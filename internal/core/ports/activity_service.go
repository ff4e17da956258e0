package ports

import (
	"context"
	"time"

	"github.com/mathquest/platform/internal/core/domain"
)

// CreateActivityInput carries the fields for a new activity.
type CreateActivityInput struct {
	LessonID uint
	Title    string
	Kind     domain.ActivityKind
	MaxScore int
	DueAt    *time.Time
}

// UpdateActivityInput carries mutable activity fields. Nil means "unchanged".
type UpdateActivityInput struct {
	Title    *string
	MaxScore *int
	DueAt    *time.Time
}

// ActivityService defines activity and submission use-cases.
type ActivityService interface {
	Create(ctx context.Context, input CreateActivityInput, actor domain.Principal) (*domain.Activity, error)
	Get(ctx context.Context, id uint) (*domain.Activity, error)
	ListByLesson(ctx context.Context, lessonID uint) ([]domain.Activity, error)
	Update(ctx context.Context, id uint, input UpdateActivityInput, actor domain.Principal) (*domain.Activity, error)
	Delete(ctx context.Context, id uint, actor domain.Principal) error

	// Submit records the acting student's score. Rejected past the due date
	// or when the score exceeds the activity's maximum.
	Submit(ctx context.Context, activityID uint, score int, actor domain.Principal) (*domain.Submission, error)
	ListSubmissions(ctx context.Context, activityID uint, actor domain.Principal) ([]domain.Submission, error)
}
