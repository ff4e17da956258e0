package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/mathquest/platform/internal/core/domain"
	"github.com/mathquest/platform/internal/core/ports"
)

type classroomRepository struct {
	db *gorm.DB
}

func NewClassroomRepository(db *gorm.DB) ports.ClassroomRepository {
	return &classroomRepository{db: db}
}

func (r *classroomRepository) Create(ctx context.Context, classroom *domain.Classroom) (*domain.Classroom, error) {
	model := classroomFromDomain(classroom)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return nil, err
	}
	return model.toDomain(), nil
}

func (r *classroomRepository) FindByID(ctx context.Context, id uint) (*domain.Classroom, error) {
	var model classroomModel
	err := r.db.WithContext(ctx).First(&model, id).Error
	if err != nil {
		return nil, translateNotFound(err, domain.ErrClassroomNotFound)
	}
	return model.toDomain(), nil
}

func (r *classroomRepository) FindByJoinCode(ctx context.Context, joinCode string) (*domain.Classroom, error) {
	var model classroomModel
	err := r.db.WithContext(ctx).Where("join_code = ?", joinCode).First(&model).Error
	if err != nil {
		return nil, translateNotFound(err, domain.ErrJoinCodeNotFound)
	}
	return model.toDomain(), nil
}

func (r *classroomRepository) Update(ctx context.Context, classroom *domain.Classroom) error {
	result := r.db.WithContext(ctx).
		Model(&classroomModel{}).
		Where("id = ?", classroom.ID).
		Updates(map[string]any{
			"name":        classroom.Name,
			"grade_level": classroom.GradeLevel,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrClassroomNotFound
	}
	return nil
}

func (r *classroomRepository) SoftDelete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&classroomModel{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrClassroomNotFound
	}
	return nil
}

func (r *classroomRepository) ListByTeacher(ctx context.Context, teacherID uint) ([]domain.Classroom, error) {
	var models []classroomModel
	err := r.db.WithContext(ctx).
		Where("teacher_id = ?", teacherID).
		Order("created_at").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return classroomsToDomain(models), nil
}

func (r *classroomRepository) ListByStudent(ctx context.Context, studentID uint) ([]domain.Classroom, error) {
	var models []classroomModel
	err := r.db.WithContext(ctx).
		Joins("JOIN enrollments ON enrollments.classroom_id = classrooms.id").
		Where("enrollments.student_id = ?", studentID).
		Order("classrooms.created_at").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return classroomsToDomain(models), nil
}

func (r *classroomRepository) ListAll(ctx context.Context) ([]domain.Classroom, error) {
	var models []classroomModel
	if err := r.db.WithContext(ctx).Order("created_at").Find(&models).Error; err != nil {
		return nil, err
	}
	return classroomsToDomain(models), nil
}

func (r *classroomRepository) Enroll(ctx context.Context, classroomID, studentID uint) error {
	err := r.db.WithContext(ctx).Create(&enrollmentModel{
		ClassroomID: classroomID,
		StudentID:   studentID,
		JoinedAt:    time.Now().UTC(),
	}).Error
	if err != nil && isDuplicateKey(err) {
		return domain.ErrAlreadyEnrolled
	}
	return err
}

func (r *classroomRepository) IsEnrolled(ctx context.Context, classroomID, studentID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&enrollmentModel{}).
		Where("classroom_id = ? AND student_id = ?", classroomID, studentID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *classroomRepository) Roster(ctx context.Context, classroomID uint) ([]domain.User, error) {
	var models []userModel
	err := r.db.WithContext(ctx).
		Joins("JOIN enrollments ON enrollments.student_id = users.id").
		Where("enrollments.classroom_id = ?", classroomID).
		Order("users.username").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	roster := make([]domain.User, 0, len(models))
	for i := range models {
		roster = append(roster, *models[i].toDomain())
	}
	return roster, nil
}

func classroomsToDomain(models []classroomModel) []domain.Classroom {
	out := make([]domain.Classroom, 0, len(models))
	for i := range models {
		out = append(out, *models[i].toDomain())
	}
	return out
}
