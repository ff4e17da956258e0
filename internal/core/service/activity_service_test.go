package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/mathquest/platform/internal/core/domain"
	"github.com/mathquest/platform/internal/core/ports"
)

type stubLessonRepo struct {
	lessons map[uint]*domain.Lesson
	blocks  map[uint]*domain.ContentBlock
	deleted map[uint]bool
	nextID  uint
}

func newStubLessonRepo() *stubLessonRepo {
	return &stubLessonRepo{
		lessons: make(map[uint]*domain.Lesson),
		blocks:  make(map[uint]*domain.ContentBlock),
		deleted: make(map[uint]bool),
	}
}

func cloneLesson(l *domain.Lesson) *domain.Lesson {
	clone := *l
	clone.Blocks = append([]domain.ContentBlock(nil), l.Blocks...)
	return &clone
}

func (r *stubLessonRepo) Create(_ context.Context, l *domain.Lesson) (*domain.Lesson, error) {
	r.nextID++
	copy := cloneLesson(l)
	copy.ID = r.nextID
	r.lessons[copy.ID] = cloneLesson(copy)
	return cloneLesson(copy), nil
}

func (r *stubLessonRepo) FindByID(_ context.Context, id uint) (*domain.Lesson, error) {
	l, ok := r.lessons[id]
	if !ok || r.deleted[id] {
		return nil, domain.ErrLessonNotFound
	}
	out := cloneLesson(l)
	for _, b := range r.blocks {
		if b.LessonID == id {
			out.Blocks = append(out.Blocks, *b)
		}
	}
	return out, nil
}

func (r *stubLessonRepo) ListByClassroom(_ context.Context, classroomID uint) ([]domain.Lesson, error) {
	var out []domain.Lesson
	for id, l := range r.lessons {
		if l.ClassroomID == classroomID && !r.deleted[id] {
			out = append(out, *cloneLesson(l))
		}
	}
	return out, nil
}

func (r *stubLessonRepo) Update(_ context.Context, l *domain.Lesson) error {
	if _, ok := r.lessons[l.ID]; !ok {
		return domain.ErrLessonNotFound
	}
	r.lessons[l.ID] = cloneLesson(l)
	return nil
}

func (r *stubLessonRepo) SoftDelete(_ context.Context, id uint) error {
	r.deleted[id] = true
	return nil
}

func (r *stubLessonRepo) AddBlock(_ context.Context, b *domain.ContentBlock) (*domain.ContentBlock, error) {
	r.nextID++
	copy := *b
	copy.ID = r.nextID
	r.blocks[copy.ID] = &copy
	out := copy
	return &out, nil
}

func (r *stubLessonRepo) FindBlock(_ context.Context, blockID uint) (*domain.ContentBlock, error) {
	b, ok := r.blocks[blockID]
	if !ok {
		return nil, domain.ErrBlockNotFound
	}
	copy := *b
	return &copy, nil
}

func (r *stubLessonRepo) UpdateBlock(_ context.Context, b *domain.ContentBlock) error {
	if _, ok := r.blocks[b.ID]; !ok {
		return domain.ErrBlockNotFound
	}
	copy := *b
	r.blocks[b.ID] = &copy
	return nil
}

func (r *stubLessonRepo) DeleteBlock(_ context.Context, blockID uint) error {
	delete(r.blocks, blockID)
	return nil
}

func (r *stubLessonRepo) ReorderBlocks(_ context.Context, lessonID uint, orderedIDs []uint) error {
	for pos, id := range orderedIDs {
		if b, ok := r.blocks[id]; ok && b.LessonID == lessonID {
			b.Position = pos
		}
	}
	return nil
}

type stubActivityRepo struct {
	activities  map[uint]*domain.Activity
	submissions map[uint]*domain.Submission
	deleted     map[uint]bool
	nextID      uint
}

func newStubActivityRepo() *stubActivityRepo {
	return &stubActivityRepo{
		activities:  make(map[uint]*domain.Activity),
		submissions: make(map[uint]*domain.Submission),
		deleted:     make(map[uint]bool),
	}
}

func (r *stubActivityRepo) Create(_ context.Context, a *domain.Activity) (*domain.Activity, error) {
	r.nextID++
	copy := *a
	copy.ID = r.nextID
	r.activities[copy.ID] = &copy
	out := copy
	return &out, nil
}

func (r *stubActivityRepo) FindByID(_ context.Context, id uint) (*domain.Activity, error) {
	a, ok := r.activities[id]
	if !ok || r.deleted[id] {
		return nil, domain.ErrActivityNotFound
	}
	copy := *a
	return &copy, nil
}

func (r *stubActivityRepo) ListByLesson(_ context.Context, lessonID uint) ([]domain.Activity, error) {
	var out []domain.Activity
	for id, a := range r.activities {
		if a.LessonID == lessonID && !r.deleted[id] {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *stubActivityRepo) Update(_ context.Context, a *domain.Activity) error {
	if _, ok := r.activities[a.ID]; !ok {
		return domain.ErrActivityNotFound
	}
	copy := *a
	r.activities[a.ID] = &copy
	return nil
}

func (r *stubActivityRepo) SoftDelete(_ context.Context, id uint) error {
	r.deleted[id] = true
	return nil
}

func (r *stubActivityRepo) UpsertSubmission(_ context.Context, s *domain.Submission) (*domain.Submission, error) {
	for _, existing := range r.submissions {
		if existing.ActivityID == s.ActivityID && existing.StudentID == s.StudentID {
			existing.Score = s.Score
			existing.SubmittedAt = s.SubmittedAt
			copy := *existing
			return &copy, nil
		}
	}
	r.nextID++
	copy := *s
	copy.ID = r.nextID
	r.submissions[copy.ID] = &copy
	out := copy
	return &out, nil
}

func (r *stubActivityRepo) ListSubmissions(_ context.Context, activityID uint) ([]domain.Submission, error) {
	var out []domain.Submission
	for _, s := range r.submissions {
		if s.ActivityID == activityID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *stubActivityRepo) SubmissionsByClassroom(_ context.Context, _ uint) ([]domain.Submission, error) {
	var out []domain.Submission
	for _, s := range r.submissions {
		out = append(out, *s)
	}
	return out, nil
}

// newActivityFixture seeds one classroom owned by teacherActor with one
// lesson, and returns a ready service plus the lesson ID.
func newActivityFixture(t *testing.T) (*ActivityService, *stubActivityRepo, uint) {
	t.Helper()

	classrooms := newStubClassroomRepo()
	classroom, err := classrooms.Create(context.Background(), &domain.Classroom{
		Name: "Algebra", TeacherID: teacherActor.UserID, JoinCode: "ALG12345",
	})
	if err != nil {
		t.Fatalf("seed classroom: %v", err)
	}

	lessons := newStubLessonRepo()
	lesson, err := lessons.Create(context.Background(), &domain.Lesson{
		ClassroomID: classroom.ID, Title: "Linear equations",
	})
	if err != nil {
		t.Fatalf("seed lesson: %v", err)
	}

	activities := newStubActivityRepo()
	svc := NewActivityService(activities, lessons, classrooms, zerolog.Nop())
	return svc, activities, lesson.ID
}

func TestActivityService_Create_StudentForbidden(t *testing.T) {
	svc, _, lessonID := newActivityFixture(t)

	_, err := svc.Create(context.Background(), ports.CreateActivityInput{
		LessonID: lessonID, Title: "Quiz 1", Kind: domain.ActivityQuiz, MaxScore: 10,
	}, studentActor)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestActivityService_Submit_ScoreBounds(t *testing.T) {
	svc, _, lessonID := newActivityFixture(t)

	activity, err := svc.Create(context.Background(), ports.CreateActivityInput{
		LessonID: lessonID, Title: "Quiz 1", Kind: domain.ActivityQuiz, MaxScore: 10,
	}, teacherActor)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Submit(context.Background(), activity.ID, 11, studentActor); !errors.Is(err, domain.ErrScoreOutOfRange) {
		t.Fatalf("expected ErrScoreOutOfRange for 11/10, got %v", err)
	}
	if _, err := svc.Submit(context.Background(), activity.ID, -1, studentActor); !errors.Is(err, domain.ErrScoreOutOfRange) {
		t.Fatalf("expected ErrScoreOutOfRange for negative, got %v", err)
	}
	if _, err := svc.Submit(context.Background(), activity.ID, 10, studentActor); err != nil {
		t.Fatalf("submit max score: %v", err)
	}
}

func TestActivityService_Submit_PastDue(t *testing.T) {
	svc, _, lessonID := newActivityFixture(t)

	due := time.Now().UTC().Add(-time.Hour)
	activity, err := svc.Create(context.Background(), ports.CreateActivityInput{
		LessonID: lessonID, Title: "Late quiz", Kind: domain.ActivityQuiz, MaxScore: 10, DueAt: &due,
	}, teacherActor)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Submit(context.Background(), activity.ID, 5, studentActor); !errors.Is(err, domain.ErrActivityPastDue) {
		t.Fatalf("expected ErrActivityPastDue, got %v", err)
	}
}

func TestActivityService_Submit_TeacherForbidden(t *testing.T) {
	svc, _, lessonID := newActivityFixture(t)

	activity, err := svc.Create(context.Background(), ports.CreateActivityInput{
		LessonID: lessonID, Title: "Quiz", Kind: domain.ActivityQuiz, MaxScore: 10,
	}, teacherActor)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Submit(context.Background(), activity.ID, 5, teacherActor); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestActivityService_Submit_ResubmissionOverwrites(t *testing.T) {
	svc, repo, lessonID := newActivityFixture(t)

	activity, err := svc.Create(context.Background(), ports.CreateActivityInput{
		LessonID: lessonID, Title: "Quiz", Kind: domain.ActivityQuiz, MaxScore: 10,
	}, teacherActor)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Submit(context.Background(), activity.ID, 4, studentActor); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	if _, err := svc.Submit(context.Background(), activity.ID, 9, studentActor); err != nil {
		t.Fatalf("second submit: %v", err)
	}

	subs, err := repo.ListSubmissions(context.Background(), activity.ID)
	if err != nil {
		t.Fatalf("list submissions: %v", err)
	}
	if len(subs) != 1 {
		t.Fatalf("expected one submission after resubmit, got %d", len(subs))
	}
	if subs[0].Score != 9 {
		t.Fatalf("expected overwritten score 9, got %d", subs[0].Score)
	}
}
