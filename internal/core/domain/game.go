package domain

import (
	"encoding/json"
	"errors"
	"time"
)

var (
	ErrGameNotFound      = errors.New("game not found")
	ErrInvalidDifficulty = errors.New("invalid difficulty")
)

// Difficulty grades a game from easiest to hardest.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Game is a reusable interactive exercise. Config is an opaque JSON payload
// interpreted by the frontend game engine, never by this service.
type Game struct {
	ID         uint            `json:"id"`
	Title      string          `json:"title"`
	Kind       string          `json:"kind"`
	Difficulty Difficulty      `json:"difficulty"`
	Config     json.RawMessage `json:"config,omitempty"`
	CreatedBy  uint            `json:"created_by"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
