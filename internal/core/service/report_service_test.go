package service

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/mathquest/platform/internal/core/domain"
)

// newReportFixture seeds one classroom owned by teacherActor with two
// enrolled students, one lesson and two activities.
func newReportFixture(t *testing.T) (*ReportService, *stubActivityRepo, uint, []uint) {
	t.Helper()
	ctx := context.Background()

	classrooms := newStubClassroomRepo()
	classroom, err := classrooms.Create(ctx, &domain.Classroom{
		Name: "Algebra", TeacherID: teacherActor.UserID, JoinCode: "ALG12345",
	})
	if err != nil {
		t.Fatalf("seed classroom: %v", err)
	}
	for _, studentID := range []uint{10, 11} {
		if err := classrooms.Enroll(ctx, classroom.ID, studentID); err != nil {
			t.Fatalf("enroll: %v", err)
		}
	}

	lessons := newStubLessonRepo()
	lesson, err := lessons.Create(ctx, &domain.Lesson{ClassroomID: classroom.ID, Title: "Equations"})
	if err != nil {
		t.Fatalf("seed lesson: %v", err)
	}

	activities := newStubActivityRepo()
	var activityIDs []uint
	for _, maxScore := range []int{10, 20} {
		activity, err := activities.Create(ctx, &domain.Activity{
			LessonID: lesson.ID, Title: "Task", Kind: domain.ActivityQuiz, MaxScore: maxScore,
		})
		if err != nil {
			t.Fatalf("seed activity: %v", err)
		}
		activityIDs = append(activityIDs, activity.ID)
	}

	svc := NewReportService(classrooms, lessons, activities, zerolog.Nop())
	return svc, activities, classroom.ID, activityIDs
}

func TestClassroomSummary_Aggregates(t *testing.T) {
	svc, activities, classroomID, activityIDs := newReportFixture(t)
	ctx := context.Background()

	// Student 10 scores 8/10 and 10/20; student 11 never submits.
	for i, score := range []int{8, 10} {
		_, err := activities.UpsertSubmission(ctx, &domain.Submission{
			ActivityID: activityIDs[i], StudentID: 10, Score: score, SubmittedAt: time.Now().UTC(),
		})
		if err != nil {
			t.Fatalf("seed submission: %v", err)
		}
	}

	report, err := svc.ClassroomSummary(ctx, classroomID, teacherActor)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}

	if report.Students != 2 || report.Lessons != 1 || report.Activities != 2 {
		t.Errorf("counts = %d students / %d lessons / %d activities, want 2/1/2",
			report.Students, report.Lessons, report.Activities)
	}
	if report.Submissions != 2 {
		t.Errorf("submissions = %d, want 2", report.Submissions)
	}
	// (80% + 50%) / 2 = 65%.
	if math.Abs(report.AverageScore-65) > 1e-9 {
		t.Errorf("average score = %f, want 65", report.AverageScore)
	}
	// 2 submissions out of 2 activities x 2 students = 50%.
	if math.Abs(report.CompletionRate-50) > 1e-9 {
		t.Errorf("completion rate = %f, want 50", report.CompletionRate)
	}
}

func TestClassroomSummary_EmptyClassroom(t *testing.T) {
	svc, _, classroomID, _ := newReportFixture(t)

	report, err := svc.ClassroomSummary(context.Background(), classroomID, adminActor)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if report.AverageScore != 0 || report.Submissions != 0 {
		t.Errorf("expected zero scores without submissions, got %+v", report)
	}
}

func TestClassroomSummary_ForeignTeacherForbidden(t *testing.T) {
	svc, _, classroomID, _ := newReportFixture(t)

	other := domain.Principal{UserID: 77, Role: domain.RoleTeacher}
	_, err := svc.ClassroomSummary(context.Background(), classroomID, other)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	_, err = svc.ClassroomSummary(context.Background(), classroomID, studentActor)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for student, got %v", err)
	}
}
