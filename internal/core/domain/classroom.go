package domain

import (
	"errors"
	"time"
)

var (
	ErrClassroomNotFound = errors.New("classroom not found")
	ErrJoinCodeNotFound  = errors.New("join code not found")
	ErrAlreadyEnrolled   = errors.New("student already enrolled")
)

// Classroom groups students under one teacher. Students enrol with the
// classroom's join code.
type Classroom struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	GradeLevel int       `json:"grade_level"`
	JoinCode   string    `json:"join_code"`
	TeacherID  uint      `json:"teacher_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Enrollment links a student to a classroom.
type Enrollment struct {
	ClassroomID uint      `json:"classroom_id"`
	StudentID   uint      `json:"student_id"`
	JoinedAt    time.Time `json:"joined_at"`
}
