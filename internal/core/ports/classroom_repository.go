package ports

import (
	"context"

	"github.com/mathquest/platform/internal/core/domain"
)

// ClassroomRepository is the persistence port for classrooms and enrollment.
type ClassroomRepository interface {
	Create(ctx context.Context, classroom *domain.Classroom) (*domain.Classroom, error)
	FindByID(ctx context.Context, id uint) (*domain.Classroom, error)
	FindByJoinCode(ctx context.Context, joinCode string) (*domain.Classroom, error)
	Update(ctx context.Context, classroom *domain.Classroom) error
	SoftDelete(ctx context.Context, id uint) error
	ListByTeacher(ctx context.Context, teacherID uint) ([]domain.Classroom, error)
	ListByStudent(ctx context.Context, studentID uint) ([]domain.Classroom, error)
	ListAll(ctx context.Context) ([]domain.Classroom, error)

	Enroll(ctx context.Context, classroomID, studentID uint) error
	IsEnrolled(ctx context.Context, classroomID, studentID uint) (bool, error)
	Roster(ctx context.Context, classroomID uint) ([]domain.User, error)
}
