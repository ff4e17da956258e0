package handler

import "time"

type createActivityRequest struct {
	LessonID uint       `json:"lesson_id" validate:"required"`
	Title    string     `json:"title"     validate:"required,min=2,max=150"`
	Kind     string     `json:"kind"      validate:"required,oneof=quiz worksheet challenge"`
	MaxScore int        `json:"max_score" validate:"required,min=1"`
	DueAt    *time.Time `json:"due_at,omitempty"`
}

type updateActivityRequest struct {
	Title    *string    `json:"title,omitempty"     validate:"omitempty,min=2,max=150"`
	MaxScore *int       `json:"max_score,omitempty" validate:"omitempty,min=1"`
	DueAt    *time.Time `json:"due_at,omitempty"`
}

type submitRequest struct {
	Score int `json:"score" validate:"min=0"`
}
