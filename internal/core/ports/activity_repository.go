package ports

import (
	"context"

	"github.com/mathquest/platform/internal/core/domain"
)

// ActivityRepository is the persistence port for activities and submissions.
type ActivityRepository interface {
	Create(ctx context.Context, activity *domain.Activity) (*domain.Activity, error)
	FindByID(ctx context.Context, id uint) (*domain.Activity, error)
	ListByLesson(ctx context.Context, lessonID uint) ([]domain.Activity, error)
	Update(ctx context.Context, activity *domain.Activity) error
	SoftDelete(ctx context.Context, id uint) error

	// UpsertSubmission records a score, overwriting any previous submission
	// by the same student on the same activity.
	UpsertSubmission(ctx context.Context, submission *domain.Submission) (*domain.Submission, error)
	ListSubmissions(ctx context.Context, activityID uint) ([]domain.Submission, error)
	// SubmissionsByClassroom returns every submission on activities belonging
	// to the classroom's lessons. Feeds the report service.
	SubmissionsByClassroom(ctx context.Context, classroomID uint) ([]domain.Submission, error)
}
