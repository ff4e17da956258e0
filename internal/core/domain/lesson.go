package domain

import (
	"errors"
	"time"
)

var (
	ErrLessonNotFound   = errors.New("lesson not found")
	ErrBlockNotFound    = errors.New("content block not found")
	ErrInvalidBlockKind = errors.New("invalid content block kind")
)

// BlockKind is the type of a content block inside a lesson.
type BlockKind string

const (
	BlockText     BlockKind = "text"
	BlockImage    BlockKind = "image"
	BlockVideo    BlockKind = "video"
	BlockExercise BlockKind = "exercise"
)

func (k BlockKind) Valid() bool {
	switch k {
	case BlockText, BlockImage, BlockVideo, BlockExercise:
		return true
	}
	return false
}

// ContentBlock is one positioned unit of lesson content.
type ContentBlock struct {
	ID       uint      `json:"id"`
	LessonID uint      `json:"lesson_id"`
	Kind     BlockKind `json:"kind"`
	Content  string    `json:"content"`
	Position int       `json:"position"`
}

// Lesson is an ordered unit of teaching material within a classroom.
type Lesson struct {
	ID          uint           `json:"id"`
	ClassroomID uint           `json:"classroom_id"`
	Title       string         `json:"title"`
	Summary     string         `json:"summary,omitempty"`
	Position    int            `json:"position"`
	Blocks      []ContentBlock `json:"blocks,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
