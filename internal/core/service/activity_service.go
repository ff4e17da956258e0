package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/mathquest/platform/internal/core/domain"
	"github.com/mathquest/platform/internal/core/ports"
)

// ActivityService implements activity and submission use-cases.
type ActivityService struct {
	activities ports.ActivityRepository
	lessons    ports.LessonRepository
	classrooms ports.ClassroomRepository
	log        zerolog.Logger
}

func NewActivityService(
	activities ports.ActivityRepository,
	lessons ports.LessonRepository,
	classrooms ports.ClassroomRepository,
	log zerolog.Logger,
) *ActivityService {
	return &ActivityService{activities: activities, lessons: lessons, classrooms: classrooms, log: log}
}

func (s *ActivityService) Create(ctx context.Context, input ports.CreateActivityInput, actor domain.Principal) (*domain.Activity, error) {
	if input.Title == "" || input.MaxScore <= 0 {
		return nil, domain.ErrInvalidArgument
	}
	if !input.Kind.Valid() {
		return nil, domain.ErrInvalidArgument
	}
	if err := s.authorizeLesson(ctx, input.LessonID, actor); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	activity := &domain.Activity{
		LessonID:  input.LessonID,
		Title:     input.Title,
		Kind:      input.Kind,
		MaxScore:  input.MaxScore,
		DueAt:     input.DueAt,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.activities.Create(ctx, activity)
	if err != nil {
		return nil, err
	}

	s.log.Info().Uint("activity_id", created.ID).Uint("lesson_id", input.LessonID).Msg("activity created")
	return created, nil
}

func (s *ActivityService) Get(ctx context.Context, id uint) (*domain.Activity, error) {
	return s.activities.FindByID(ctx, id)
}

func (s *ActivityService) ListByLesson(ctx context.Context, lessonID uint) ([]domain.Activity, error) {
	if _, err := s.lessons.FindByID(ctx, lessonID); err != nil {
		return nil, err
	}
	return s.activities.ListByLesson(ctx, lessonID)
}

func (s *ActivityService) Update(ctx context.Context, id uint, input ports.UpdateActivityInput, actor domain.Principal) (*domain.Activity, error) {
	activity, err := s.activities.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeLesson(ctx, activity.LessonID, actor); err != nil {
		return nil, err
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, domain.ErrInvalidArgument
		}
		activity.Title = *input.Title
	}
	if input.MaxScore != nil {
		if *input.MaxScore <= 0 {
			return nil, domain.ErrInvalidArgument
		}
		activity.MaxScore = *input.MaxScore
	}
	if input.DueAt != nil {
		activity.DueAt = input.DueAt
	}
	activity.UpdatedAt = time.Now().UTC()

	if err := s.activities.Update(ctx, activity); err != nil {
		return nil, err
	}
	return activity, nil
}

func (s *ActivityService) Delete(ctx context.Context, id uint, actor domain.Principal) error {
	activity, err := s.activities.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authorizeLesson(ctx, activity.LessonID, actor); err != nil {
		return err
	}
	return s.activities.SoftDelete(ctx, id)
}

// Submit records the acting student's score. Resubmission overwrites the
// previous score.
func (s *ActivityService) Submit(ctx context.Context, activityID uint, score int, actor domain.Principal) (*domain.Submission, error) {
	if actor.Role != domain.RoleStudent {
		return nil, domain.ErrForbidden
	}

	activity, err := s.activities.FindByID(ctx, activityID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if !activity.AcceptsSubmissions(now) {
		return nil, domain.ErrActivityPastDue
	}
	if score < 0 || score > activity.MaxScore {
		return nil, domain.ErrScoreOutOfRange
	}

	submission := &domain.Submission{
		ActivityID:  activityID,
		StudentID:   actor.UserID,
		Score:       score,
		SubmittedAt: now,
	}

	saved, err := s.activities.UpsertSubmission(ctx, submission)
	if err != nil {
		return nil, err
	}

	s.log.Info().Uint("activity_id", activityID).Uint("student_id", actor.UserID).Int("score", score).Msg("submission recorded")
	return saved, nil
}

func (s *ActivityService) ListSubmissions(ctx context.Context, activityID uint, actor domain.Principal) ([]domain.Submission, error) {
	activity, err := s.activities.FindByID(ctx, activityID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeLesson(ctx, activity.LessonID, actor); err != nil {
		return nil, err
	}
	return s.activities.ListSubmissions(ctx, activityID)
}

func (s *ActivityService) authorizeLesson(ctx context.Context, lessonID uint, actor domain.Principal) error {
	lesson, err := s.lessons.FindByID(ctx, lessonID)
	if err != nil {
		return err
	}
	classroom, err := s.classrooms.FindByID(ctx, lesson.ClassroomID)
	if err != nil {
		return err
	}
	if actor.Role == domain.RoleAdmin {
		return nil
	}
	if actor.Role == domain.RoleTeacher && classroom.TeacherID == actor.UserID {
		return nil
	}
	return domain.ErrForbidden
}
