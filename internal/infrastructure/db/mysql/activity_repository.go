package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mathquest/platform/internal/core/domain"
	"github.com/mathquest/platform/internal/core/ports"
)

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ports.ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Create(ctx context.Context, activity *domain.Activity) (*domain.Activity, error) {
	model := activityFromDomain(activity)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return nil, err
	}
	return model.toDomain(), nil
}

func (r *activityRepository) FindByID(ctx context.Context, id uint) (*domain.Activity, error) {
	var model activityModel
	err := r.db.WithContext(ctx).First(&model, id).Error
	if err != nil {
		return nil, translateNotFound(err, domain.ErrActivityNotFound)
	}
	return model.toDomain(), nil
}

func (r *activityRepository) ListByLesson(ctx context.Context, lessonID uint) ([]domain.Activity, error) {
	var models []activityModel
	err := r.db.WithContext(ctx).
		Where("lesson_id = ?", lessonID).
		Order("created_at").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	activities := make([]domain.Activity, 0, len(models))
	for i := range models {
		activities = append(activities, *models[i].toDomain())
	}
	return activities, nil
}

func (r *activityRepository) Update(ctx context.Context, activity *domain.Activity) error {
	result := r.db.WithContext(ctx).
		Model(&activityModel{}).
		Where("id = ?", activity.ID).
		Updates(map[string]any{
			"title":     activity.Title,
			"max_score": activity.MaxScore,
			"due_at":    activity.DueAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrActivityNotFound
	}
	return nil
}

func (r *activityRepository) SoftDelete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&activityModel{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrActivityNotFound
	}
	return nil
}

func (r *activityRepository) UpsertSubmission(ctx context.Context, submission *domain.Submission) (*domain.Submission, error) {
	model := &submissionModel{
		ActivityID:  submission.ActivityID,
		StudentID:   submission.StudentID,
		Score:       submission.Score,
		SubmittedAt: time.Now().UTC(),
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "activity_id"}, {Name: "student_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"score", "submitted_at"}),
		}).
		Create(model).Error
	if err != nil {
		return nil, err
	}

	// Re-read so the caller sees the canonical row after an upsert that hit
	// the update path.
	var stored submissionModel
	err = r.db.WithContext(ctx).
		Where("activity_id = ? AND student_id = ?", submission.ActivityID, submission.StudentID).
		First(&stored).Error
	if err != nil {
		return nil, translateNotFound(err, domain.ErrSubmissionNotFound)
	}
	return stored.toDomain(), nil
}

func (r *activityRepository) ListSubmissions(ctx context.Context, activityID uint) ([]domain.Submission, error) {
	var models []submissionModel
	err := r.db.WithContext(ctx).
		Where("activity_id = ?", activityID).
		Order("submitted_at").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return submissionsToDomain(models), nil
}

func (r *activityRepository) SubmissionsByClassroom(ctx context.Context, classroomID uint) ([]domain.Submission, error) {
	var models []submissionModel
	err := r.db.WithContext(ctx).
		Joins("JOIN activities ON activities.id = submissions.activity_id").
		Joins("JOIN lessons ON lessons.id = activities.lesson_id").
		Where("lessons.classroom_id = ?", classroomID).
		Where("activities.deleted_at IS NULL AND lessons.deleted_at IS NULL").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return submissionsToDomain(models), nil
}

func submissionsToDomain(models []submissionModel) []domain.Submission {
	out := make([]domain.Submission, 0, len(models))
	for i := range models {
		out = append(out, *models[i].toDomain())
	}
	return out
}
