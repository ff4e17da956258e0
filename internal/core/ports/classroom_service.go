package ports

import (
	"context"

	"github.com/mathquest/platform/internal/core/domain"
)

// CreateClassroomInput carries the fields for a new classroom. The teacher is
// taken from the acting principal.
type CreateClassroomInput struct {
	Name       string
	GradeLevel int
}

// UpdateClassroomInput carries mutable classroom fields. Nil means "unchanged".
type UpdateClassroomInput struct {
	Name       *string
	GradeLevel *int
}

// ClassroomService defines classroom and enrollment use-cases.
type ClassroomService interface {
	Create(ctx context.Context, input CreateClassroomInput, actor domain.Principal) (*domain.Classroom, error)
	Get(ctx context.Context, id uint, actor domain.Principal) (*domain.Classroom, error)
	// List scopes results by role: admins see all classrooms, teachers their
	// own, students the ones they are enrolled in.
	List(ctx context.Context, actor domain.Principal) ([]domain.Classroom, error)
	Update(ctx context.Context, id uint, input UpdateClassroomInput, actor domain.Principal) (*domain.Classroom, error)
	Delete(ctx context.Context, id uint, actor domain.Principal) error
	// Join enrols the acting student using a classroom join code.
	Join(ctx context.Context, joinCode string, actor domain.Principal) (*domain.Classroom, error)
	Roster(ctx context.Context, classroomID uint, actor domain.Principal) ([]domain.User, error)
}
