package domain

import (
	"errors"
	"time"
)

var (
	ErrActivityNotFound   = errors.New("activity not found")
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrScoreOutOfRange    = errors.New("score out of range")
	ErrActivityPastDue    = errors.New("activity past due")
)

// ActivityKind classifies the gradable work attached to a lesson.
type ActivityKind string

const (
	ActivityQuiz      ActivityKind = "quiz"
	ActivityWorksheet ActivityKind = "worksheet"
	ActivityChallenge ActivityKind = "challenge"
)

func (k ActivityKind) Valid() bool {
	switch k {
	case ActivityQuiz, ActivityWorksheet, ActivityChallenge:
		return true
	}
	return false
}

// Activity is a gradable task within a lesson.
type Activity struct {
	ID        uint         `json:"id"`
	LessonID  uint         `json:"lesson_id"`
	Title     string       `json:"title"`
	Kind      ActivityKind `json:"kind"`
	MaxScore  int          `json:"max_score"`
	DueAt     *time.Time   `json:"due_at,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// AcceptsSubmissions reports whether a submission at the given instant is
// still within the activity's deadline.
func (a *Activity) AcceptsSubmissions(now time.Time) bool {
	return a.DueAt == nil || now.Before(*a.DueAt)
}

// Submission records a student's score on an activity. One submission per
// student per activity; resubmission overwrites the score.
type Submission struct {
	ID          uint      `json:"id"`
	ActivityID  uint      `json:"activity_id"`
	StudentID   uint      `json:"student_id"`
	Score       int       `json:"score"`
	SubmittedAt time.Time `json:"submitted_at"`
}
