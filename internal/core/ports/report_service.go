package ports

import (
	"context"

	"github.com/mathquest/platform/internal/core/domain"
)

// ClassroomReport summarises progress inside one classroom.
type ClassroomReport struct {
	ClassroomID    uint    `json:"classroom_id"`
	ClassroomName  string  `json:"classroom_name"`
	Students       int     `json:"students"`
	Lessons        int     `json:"lessons"`
	Activities     int     `json:"activities"`
	Submissions    int     `json:"submissions"`
	AverageScore   float64 `json:"average_score"`
	CompletionRate float64 `json:"completion_rate"`
}

// ReportService computes aggregate progress views.
type ReportService interface {
	ClassroomSummary(ctx context.Context, classroomID uint, actor domain.Principal) (*ClassroomReport, error)
}
