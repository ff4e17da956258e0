package domain

import (
	"errors"
	"time"
)

var (
	ErrFeedbackNotFound = errors.New("feedback not found")
	ErrRatingOutOfRange = errors.New("rating out of range")
)

// Feedback is a student's rating and comment on an activity.
type Feedback struct {
	ID         uint      `json:"id"`
	ActivityID uint      `json:"activity_id"`
	StudentID  uint      `json:"student_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
