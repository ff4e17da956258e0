package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mathquest/platform/internal/core/domain"
	"github.com/mathquest/platform/internal/core/ports"
)

// ClassroomService implements classroom and enrollment use-cases.
type ClassroomService struct {
	classrooms ports.ClassroomRepository
	log        zerolog.Logger
}

func NewClassroomService(classrooms ports.ClassroomRepository, log zerolog.Logger) *ClassroomService {
	return &ClassroomService{classrooms: classrooms, log: log}
}

func (s *ClassroomService) Create(ctx context.Context, input ports.CreateClassroomInput, actor domain.Principal) (*domain.Classroom, error) {
	if actor.Role != domain.RoleTeacher && actor.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	if input.Name == "" {
		return nil, domain.ErrInvalidArgument
	}

	now := time.Now().UTC()
	classroom := &domain.Classroom{
		Name:       input.Name,
		GradeLevel: input.GradeLevel,
		JoinCode:   newJoinCode(),
		TeacherID:  actor.UserID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := s.classrooms.Create(ctx, classroom)
	if err != nil {
		return nil, err
	}

	s.log.Info().Uint("classroom_id", created.ID).Uint("teacher_id", actor.UserID).Msg("classroom created")
	return created, nil
}

func (s *ClassroomService) Get(ctx context.Context, id uint, actor domain.Principal) (*domain.Classroom, error) {
	classroom, err := s.classrooms.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, classroom, actor); err != nil {
		return nil, err
	}
	return classroom, nil
}

func (s *ClassroomService) List(ctx context.Context, actor domain.Principal) ([]domain.Classroom, error) {
	switch actor.Role {
	case domain.RoleAdmin:
		return s.classrooms.ListAll(ctx)
	case domain.RoleTeacher:
		return s.classrooms.ListByTeacher(ctx, actor.UserID)
	default:
		return s.classrooms.ListByStudent(ctx, actor.UserID)
	}
}

func (s *ClassroomService) Update(ctx context.Context, id uint, input ports.UpdateClassroomInput, actor domain.Principal) (*domain.Classroom, error) {
	classroom, err := s.classrooms.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeWrite(classroom, actor); err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, domain.ErrInvalidArgument
		}
		classroom.Name = *input.Name
	}
	if input.GradeLevel != nil {
		classroom.GradeLevel = *input.GradeLevel
	}
	classroom.UpdatedAt = time.Now().UTC()

	if err := s.classrooms.Update(ctx, classroom); err != nil {
		return nil, err
	}
	return classroom, nil
}

func (s *ClassroomService) Delete(ctx context.Context, id uint, actor domain.Principal) error {
	classroom, err := s.classrooms.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authorizeWrite(classroom, actor); err != nil {
		return err
	}

	if err := s.classrooms.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Uint("classroom_id", id).Uint("actor_id", actor.UserID).Msg("classroom deleted")
	return nil
}

func (s *ClassroomService) Join(ctx context.Context, joinCode string, actor domain.Principal) (*domain.Classroom, error) {
	if actor.Role != domain.RoleStudent {
		return nil, domain.ErrForbidden
	}
	joinCode = strings.TrimSpace(joinCode)
	if joinCode == "" {
		return nil, domain.ErrInvalidArgument
	}

	classroom, err := s.classrooms.FindByJoinCode(ctx, joinCode)
	if err != nil {
		return nil, err
	}

	enrolled, err := s.classrooms.IsEnrolled(ctx, classroom.ID, actor.UserID)
	if err != nil {
		return nil, err
	}
	if enrolled {
		return nil, domain.ErrAlreadyEnrolled
	}

	if err := s.classrooms.Enroll(ctx, classroom.ID, actor.UserID); err != nil {
		return nil, err
	}

	s.log.Info().Uint("classroom_id", classroom.ID).Uint("student_id", actor.UserID).Msg("student enrolled")
	return classroom, nil
}

func (s *ClassroomService) Roster(ctx context.Context, classroomID uint, actor domain.Principal) ([]domain.User, error) {
	classroom, err := s.classrooms.FindByID(ctx, classroomID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeWrite(classroom, actor); err != nil {
		return nil, err
	}
	return s.classrooms.Roster(ctx, classroomID)
}

// authorize grants read access to admins, the owning teacher, and enrolled
// students.
func (s *ClassroomService) authorize(ctx context.Context, classroom *domain.Classroom, actor domain.Principal) error {
	switch actor.Role {
	case domain.RoleAdmin:
		return nil
	case domain.RoleTeacher:
		if classroom.TeacherID == actor.UserID {
			return nil
		}
	case domain.RoleStudent:
		enrolled, err := s.classrooms.IsEnrolled(ctx, classroom.ID, actor.UserID)
		if err != nil {
			return err
		}
		if enrolled {
			return nil
		}
	}
	return domain.ErrForbidden
}

// authorizeWrite grants mutation access to admins and the owning teacher only.
func (s *ClassroomService) authorizeWrite(classroom *domain.Classroom, actor domain.Principal) error {
	if actor.Role == domain.RoleAdmin {
		return nil
	}
	if actor.Role == domain.RoleTeacher && classroom.TeacherID == actor.UserID {
		return nil
	}
	return domain.ErrForbidden
}

// newJoinCode returns a short, shareable enrollment code.
func newJoinCode() string {
	return strings.ToUpper(uuid.NewString()[:8])
}
