package mysql

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"github.com/mathquest/platform/internal/core/domain"
)

// roleModel is the role reference table. Rows are seeded at startup with
// fixed primary keys, so foreign keys stay stable across environments.
type roleModel struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:20;uniqueIndex;not null"`
}

func (roleModel) TableName() string { return "roles" }

type userModel struct {
	ID                    uint   `gorm:"primaryKey"`
	Username              string `gorm:"size:50;uniqueIndex;not null"`
	Email                 string `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash          string `gorm:"size:255;not null"`
	RoleID                uint   `gorm:"not null;index"`
	Role                  roleModel
	TemporaryPassword     bool
	TempPasswordExpiresAt *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
	DeletedAt             gorm.DeletedAt `gorm:"index"`
}

func (userModel) TableName() string { return "users" }

func (m *userModel) toDomain() *domain.User {
	role, _ := domain.RoleFromSeedID(m.RoleID)
	return &domain.User{
		ID:                    m.ID,
		Username:              m.Username,
		Email:                 m.Email,
		PasswordHash:          m.PasswordHash,
		Role:                  role,
		RoleName:              role.String(),
		TemporaryPassword:     m.TemporaryPassword,
		TempPasswordExpiresAt: m.TempPasswordExpiresAt,
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}
}

func userFromDomain(u *domain.User) *userModel {
	return &userModel{
		ID:                    u.ID,
		Username:              u.Username,
		Email:                 u.Email,
		PasswordHash:          u.PasswordHash,
		RoleID:                u.Role.SeedID(),
		TemporaryPassword:     u.TemporaryPassword,
		TempPasswordExpiresAt: u.TempPasswordExpiresAt,
	}
}

type classroomModel struct {
	ID         uint   `gorm:"primaryKey"`
	Name       string `gorm:"size:100;not null"`
	GradeLevel int    `gorm:"not null"`
	JoinCode   string `gorm:"size:8;uniqueIndex;not null"`
	TeacherID  uint   `gorm:"not null;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func (classroomModel) TableName() string { return "classrooms" }

func (m *classroomModel) toDomain() *domain.Classroom {
	return &domain.Classroom{
		ID:         m.ID,
		Name:       m.Name,
		GradeLevel: m.GradeLevel,
		JoinCode:   m.JoinCode,
		TeacherID:  m.TeacherID,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func classroomFromDomain(c *domain.Classroom) *classroomModel {
	return &classroomModel{
		ID:         c.ID,
		Name:       c.Name,
		GradeLevel: c.GradeLevel,
		JoinCode:   c.JoinCode,
		TeacherID:  c.TeacherID,
	}
}

// enrollmentModel is the classroom/student join table. The composite primary
// key makes double enrollment a constraint violation, not just a race.
type enrollmentModel struct {
	ClassroomID uint `gorm:"primaryKey;autoIncrement:false"`
	StudentID   uint `gorm:"primaryKey;autoIncrement:false"`
	JoinedAt    time.Time
}

func (enrollmentModel) TableName() string { return "enrollments" }

type lessonModel struct {
	ID          uint   `gorm:"primaryKey"`
	ClassroomID uint   `gorm:"not null;index"`
	Title       string `gorm:"size:150;not null"`
	Summary     string `gorm:"type:text"`
	Position    int    `gorm:"not null;default:0"`
	Blocks      []contentBlockModel `gorm:"foreignKey:LessonID"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (lessonModel) TableName() string { return "lessons" }

func (m *lessonModel) toDomain() *domain.Lesson {
	lesson := &domain.Lesson{
		ID:          m.ID,
		ClassroomID: m.ClassroomID,
		Title:       m.Title,
		Summary:     m.Summary,
		Position:    m.Position,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	for i := range m.Blocks {
		lesson.Blocks = append(lesson.Blocks, *m.Blocks[i].toDomain())
	}
	return lesson
}

func lessonFromDomain(l *domain.Lesson) *lessonModel {
	return &lessonModel{
		ID:          l.ID,
		ClassroomID: l.ClassroomID,
		Title:       l.Title,
		Summary:     l.Summary,
		Position:    l.Position,
	}
}

type contentBlockModel struct {
	ID       uint   `gorm:"primaryKey"`
	LessonID uint   `gorm:"not null;index"`
	Kind     string `gorm:"size:20;not null"`
	Content  string `gorm:"type:text;not null"`
	Position int    `gorm:"not null;default:0"`
}

func (contentBlockModel) TableName() string { return "content_blocks" }

func (m *contentBlockModel) toDomain() *domain.ContentBlock {
	return &domain.ContentBlock{
		ID:       m.ID,
		LessonID: m.LessonID,
		Kind:     domain.BlockKind(m.Kind),
		Content:  m.Content,
		Position: m.Position,
	}
}

func blockFromDomain(b *domain.ContentBlock) *contentBlockModel {
	return &contentBlockModel{
		ID:       b.ID,
		LessonID: b.LessonID,
		Kind:     string(b.Kind),
		Content:  b.Content,
		Position: b.Position,
	}
}

type activityModel struct {
	ID        uint   `gorm:"primaryKey"`
	LessonID  uint   `gorm:"not null;index"`
	Title     string `gorm:"size:150;not null"`
	Kind      string `gorm:"size:20;not null"`
	MaxScore  int    `gorm:"not null"`
	DueAt     *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (activityModel) TableName() string { return "activities" }

func (m *activityModel) toDomain() *domain.Activity {
	return &domain.Activity{
		ID:        m.ID,
		LessonID:  m.LessonID,
		Title:     m.Title,
		Kind:      domain.ActivityKind(m.Kind),
		MaxScore:  m.MaxScore,
		DueAt:     m.DueAt,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func activityFromDomain(a *domain.Activity) *activityModel {
	return &activityModel{
		ID:       a.ID,
		LessonID: a.LessonID,
		Title:    a.Title,
		Kind:     string(a.Kind),
		MaxScore: a.MaxScore,
		DueAt:    a.DueAt,
	}
}

// submissionModel holds one score per student per activity; the unique index
// backs the upsert.
type submissionModel struct {
	ID          uint `gorm:"primaryKey"`
	ActivityID  uint `gorm:"not null;uniqueIndex:idx_activity_student"`
	StudentID   uint `gorm:"not null;uniqueIndex:idx_activity_student"`
	Score       int  `gorm:"not null"`
	SubmittedAt time.Time
}

func (submissionModel) TableName() string { return "submissions" }

func (m *submissionModel) toDomain() *domain.Submission {
	return &domain.Submission{
		ID:          m.ID,
		ActivityID:  m.ActivityID,
		StudentID:   m.StudentID,
		Score:       m.Score,
		SubmittedAt: m.SubmittedAt,
	}
}

type gameModel struct {
	ID         uint           `gorm:"primaryKey"`
	Title      string         `gorm:"size:150;not null"`
	Kind       string         `gorm:"size:50;not null;index"`
	Difficulty string         `gorm:"size:10;not null;index"`
	Config     []byte `gorm:"type:json"`
	CreatedBy  uint   `gorm:"not null;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func (gameModel) TableName() string { return "games" }

func (m *gameModel) toDomain() *domain.Game {
	return &domain.Game{
		ID:         m.ID,
		Title:      m.Title,
		Kind:       m.Kind,
		Difficulty: domain.Difficulty(m.Difficulty),
		Config:     json.RawMessage(m.Config),
		CreatedBy:  m.CreatedBy,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func gameFromDomain(g *domain.Game) *gameModel {
	return &gameModel{
		ID:         g.ID,
		Title:      g.Title,
		Kind:       g.Kind,
		Difficulty: string(g.Difficulty),
		Config:     []byte(g.Config),
		CreatedBy:  g.CreatedBy,
	}
}

type feedbackModel struct {
	ID         uint   `gorm:"primaryKey"`
	ActivityID uint   `gorm:"not null;index"`
	StudentID  uint   `gorm:"not null;index"`
	Rating     int    `gorm:"not null"`
	Comment    string `gorm:"type:text"`
	CreatedAt  time.Time
}

func (feedbackModel) TableName() string { return "feedback" }

func (m *feedbackModel) toDomain() *domain.Feedback {
	return &domain.Feedback{
		ID:         m.ID,
		ActivityID: m.ActivityID,
		StudentID:  m.StudentID,
		Rating:     m.Rating,
		Comment:    m.Comment,
		CreatedAt:  m.CreatedAt,
	}
}

func feedbackFromDomain(f *domain.Feedback) *feedbackModel {
	return &feedbackModel{
		ID:         f.ID,
		ActivityID: f.ActivityID,
		StudentID:  f.StudentID,
		Rating:     f.Rating,
		Comment:    f.Comment,
	}
}
