package handler

import "encoding/json"

type createGameRequest struct {
	Title      string          `json:"title"      validate:"required,min=2,max=150"`
	Kind       string          `json:"kind"       validate:"required,min=2,max=50"`
	Difficulty string          `json:"difficulty" validate:"required,oneof=easy medium hard"`
	Config     json.RawMessage `json:"config,omitempty"`
}

type updateGameRequest struct {
	Title      *string         `json:"title,omitempty"      validate:"omitempty,min=2,max=150"`
	Difficulty *string         `json:"difficulty,omitempty" validate:"omitempty,oneof=easy medium hard"`
	Config     json.RawMessage `json:"config,omitempty"`
}
