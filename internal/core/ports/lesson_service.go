package ports

import (
	"context"

	"github.com/mathquest/platform/internal/core/domain"
)

// CreateLessonInput carries the fields for a new lesson.
type CreateLessonInput struct {
	ClassroomID uint
	Title       string
	Summary     string
	Position    int
}

// UpdateLessonInput carries mutable lesson fields. Nil means "unchanged".
type UpdateLessonInput struct {
	Title    *string
	Summary  *string
	Position *int
}

// BlockInput carries the fields for a new or updated content block.
type BlockInput struct {
	Kind     domain.BlockKind
	Content  string
	Position int
}

// LessonService defines lesson and content block use-cases.
type LessonService interface {
	Create(ctx context.Context, input CreateLessonInput, actor domain.Principal) (*domain.Lesson, error)
	Get(ctx context.Context, id uint) (*domain.Lesson, error)
	ListByClassroom(ctx context.Context, classroomID uint) ([]domain.Lesson, error)
	Update(ctx context.Context, id uint, input UpdateLessonInput, actor domain.Principal) (*domain.Lesson, error)
	Delete(ctx context.Context, id uint, actor domain.Principal) error

	AddBlock(ctx context.Context, lessonID uint, input BlockInput, actor domain.Principal) (*domain.ContentBlock, error)
	UpdateBlock(ctx context.Context, blockID uint, input BlockInput, actor domain.Principal) (*domain.ContentBlock, error)
	DeleteBlock(ctx context.Context, blockID uint, actor domain.Principal) error
	ReorderBlocks(ctx context.Context, lessonID uint, orderedIDs []uint, actor domain.Principal) error
}
