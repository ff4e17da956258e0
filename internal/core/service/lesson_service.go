package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/mathquest/platform/internal/core/domain"
	"github.com/mathquest/platform/internal/core/ports"
)

// LessonService implements lesson and content block use-cases. Mutations are
// restricted to the classroom's teacher and admins.
type LessonService struct {
	lessons    ports.LessonRepository
	classrooms ports.ClassroomRepository
	log        zerolog.Logger
}

func NewLessonService(lessons ports.LessonRepository, classrooms ports.ClassroomRepository, log zerolog.Logger) *LessonService {
	return &LessonService{lessons: lessons, classrooms: classrooms, log: log}
}

func (s *LessonService) Create(ctx context.Context, input ports.CreateLessonInput, actor domain.Principal) (*domain.Lesson, error) {
	if input.Title == "" {
		return nil, domain.ErrInvalidArgument
	}
	if err := s.authorizeClassroom(ctx, input.ClassroomID, actor); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	lesson := &domain.Lesson{
		ClassroomID: input.ClassroomID,
		Title:       input.Title,
		Summary:     input.Summary,
		Position:    input.Position,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.lessons.Create(ctx, lesson)
	if err != nil {
		return nil, err
	}

	s.log.Info().Uint("lesson_id", created.ID).Uint("classroom_id", input.ClassroomID).Msg("lesson created")
	return created, nil
}

func (s *LessonService) Get(ctx context.Context, id uint) (*domain.Lesson, error) {
	return s.lessons.FindByID(ctx, id)
}

func (s *LessonService) ListByClassroom(ctx context.Context, classroomID uint) ([]domain.Lesson, error) {
	if _, err := s.classrooms.FindByID(ctx, classroomID); err != nil {
		return nil, err
	}
	return s.lessons.ListByClassroom(ctx, classroomID)
}

func (s *LessonService) Update(ctx context.Context, id uint, input ports.UpdateLessonInput, actor domain.Principal) (*domain.Lesson, error) {
	lesson, err := s.lessons.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeClassroom(ctx, lesson.ClassroomID, actor); err != nil {
		return nil, err
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, domain.ErrInvalidArgument
		}
		lesson.Title = *input.Title
	}
	if input.Summary != nil {
		lesson.Summary = *input.Summary
	}
	if input.Position != nil {
		lesson.Position = *input.Position
	}
	lesson.UpdatedAt = time.Now().UTC()

	if err := s.lessons.Update(ctx, lesson); err != nil {
		return nil, err
	}
	return lesson, nil
}

func (s *LessonService) Delete(ctx context.Context, id uint, actor domain.Principal) error {
	lesson, err := s.lessons.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authorizeClassroom(ctx, lesson.ClassroomID, actor); err != nil {
		return err
	}
	return s.lessons.SoftDelete(ctx, id)
}

func (s *LessonService) AddBlock(ctx context.Context, lessonID uint, input ports.BlockInput, actor domain.Principal) (*domain.ContentBlock, error) {
	if !input.Kind.Valid() {
		return nil, domain.ErrInvalidBlockKind
	}

	lesson, err := s.lessons.FindByID(ctx, lessonID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeClassroom(ctx, lesson.ClassroomID, actor); err != nil {
		return nil, err
	}

	block := &domain.ContentBlock{
		LessonID: lessonID,
		Kind:     input.Kind,
		Content:  input.Content,
		Position: input.Position,
	}
	return s.lessons.AddBlock(ctx, block)
}

func (s *LessonService) UpdateBlock(ctx context.Context, blockID uint, input ports.BlockInput, actor domain.Principal) (*domain.ContentBlock, error) {
	if !input.Kind.Valid() {
		return nil, domain.ErrInvalidBlockKind
	}

	block, err := s.lessons.FindBlock(ctx, blockID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeBlock(ctx, block, actor); err != nil {
		return nil, err
	}

	block.Kind = input.Kind
	block.Content = input.Content
	block.Position = input.Position

	if err := s.lessons.UpdateBlock(ctx, block); err != nil {
		return nil, err
	}
	return block, nil
}

func (s *LessonService) DeleteBlock(ctx context.Context, blockID uint, actor domain.Principal) error {
	block, err := s.lessons.FindBlock(ctx, blockID)
	if err != nil {
		return err
	}
	if err := s.authorizeBlock(ctx, block, actor); err != nil {
		return err
	}
	return s.lessons.DeleteBlock(ctx, blockID)
}

func (s *LessonService) ReorderBlocks(ctx context.Context, lessonID uint, orderedIDs []uint, actor domain.Principal) error {
	if len(orderedIDs) == 0 {
		return domain.ErrInvalidArgument
	}

	lesson, err := s.lessons.FindByID(ctx, lessonID)
	if err != nil {
		return err
	}
	if err := s.authorizeClassroom(ctx, lesson.ClassroomID, actor); err != nil {
		return err
	}

	// Every block in the order must belong to this lesson.
	known := make(map[uint]struct{}, len(lesson.Blocks))
	for _, b := range lesson.Blocks {
		known[b.ID] = struct{}{}
	}
	for _, id := range orderedIDs {
		if _, ok := known[id]; !ok {
			return domain.ErrBlockNotFound
		}
	}

	return s.lessons.ReorderBlocks(ctx, lessonID, orderedIDs)
}

func (s *LessonService) authorizeBlock(ctx context.Context, block *domain.ContentBlock, actor domain.Principal) error {
	lesson, err := s.lessons.FindByID(ctx, block.LessonID)
	if err != nil {
		return err
	}
	return s.authorizeClassroom(ctx, lesson.ClassroomID, actor)
}

func (s *LessonService) authorizeClassroom(ctx context.Context, classroomID uint, actor domain.Principal) error {
	classroom, err := s.classrooms.FindByID(ctx, classroomID)
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
