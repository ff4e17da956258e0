package ports

import (
	"context"

	"github.com/mathquest/platform/internal/core/domain"
)

// LessonRepository is the persistence port for lessons and content blocks.
type LessonRepository interface {
	Create(ctx context.Context, lesson *domain.Lesson) (*domain.Lesson, error)
	// FindByID returns the lesson with its content blocks ordered by position.
	FindByID(ctx context.Context, id uint) (*domain.Lesson, error)
	ListByClassroom(ctx context.Context, classroomID uint) ([]domain.Lesson, error)
	Update(ctx context.Context, lesson *domain.Lesson) error
	SoftDelete(ctx context.Context, id uint) error

	AddBlock(ctx context.Context, block *domain.ContentBlock) (*domain.ContentBlock, error)
	FindBlock(ctx context.Context, blockID uint) (*domain.ContentBlock, error)
	UpdateBlock(ctx context.Context, block *domain.ContentBlock) error
	DeleteBlock(ctx context.Context, blockID uint) error
	// ReorderBlocks rewrites block positions to match the given ID order.
	ReorderBlocks(ctx context.Context, lessonID uint, orderedIDs []uint) error
}
