package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mathquest/platform/internal/core/domain"
	"github.com/mathquest/platform/internal/core/ports"
)

// ReportService computes aggregate progress views from submissions.
type ReportService struct {
	classrooms ports.ClassroomRepository
	lessons    ports.LessonRepository
	activities ports.ActivityRepository
	log        zerolog.Logger
}

func NewReportService(
	classrooms ports.ClassroomRepository,
	lessons ports.LessonRepository,
	activities ports.ActivityRepository,
	log zerolog.Logger,
) *ReportService {
	return &ReportService{classrooms: classrooms, lessons: lessons, activities: activities, log: log}
}

// ClassroomSummary aggregates roster size, content volume, submission count,
// average score percentage and completion rate for one classroom.
func (s *ReportService) ClassroomSummary(ctx context.Context, classroomID uint, actor domain.Principal) (*ports.ClassroomReport, error) {
	classroom, err := s.classrooms.FindByID(ctx, classroomID)
	if err != nil {
		return nil, err
	}
	if actor.Role != domain.RoleAdmin && !(actor.Role == domain.RoleTeacher && classroom.TeacherID == actor.UserID) {
		return nil, domain.ErrForbidden
	}

	roster, err := s.classrooms.Roster(ctx, classroomID)
	if err != nil {
		return nil, err
	}
	lessons, err := s.lessons.ListByClassroom(ctx, classroomID)
	if err != nil {
		return nil, err
	}

	activityCount := 0
	maxByActivity := make(map[uint]int)
	for _, lesson := range lessons {
		activities, err := s.activities.ListByLesson(ctx, lesson.ID)
		if err != nil {
			return nil, err
		}
		activityCount += len(activities)
		for _, a := range activities {
			maxByActivity[a.ID] = a.MaxScore
		}
	}

	submissions, err := s.activities.SubmissionsByClassroom(ctx, classroomID)
	if err != nil {
		return nil, err
	}

	// Average score is expressed as a percentage of each activity's maximum
	// so activities with different scales are comparable.
	var scoreSum float64
	scored := 0
	for _, sub := range submissions {
		max, ok := maxByActivity[sub.ActivityID]
		if !ok || max == 0 {
			continue
		}
		scoreSum += float64(sub.Score) / float64(max) * 100
		scored++
	}

	report := &ports.ClassroomReport{
		ClassroomID:   classroom.ID,
		ClassroomName: classroom.Name,
		Students:      len(roster),
		Lessons:       len(lessons),
		Activities:    activityCount,
		Submissions:   len(submissions),
	}
	if scored > 0 {
		report.AverageScore = scoreSum / float64(scored)
	}
	if possible := activityCount * len(roster); possible > 0 {
		report.CompletionRate = float64(len(submissions)) / float64(possible) * 100
	}

	return report, nil
}
