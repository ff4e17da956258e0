package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/mathquest/platform/internal/core/ports"
)

type ReportHandler struct {
	reportService ports.ReportService
	log           zerolog.Logger
}

func NewReportHandler(reportService ports.ReportService, log zerolog.Logger) *ReportHandler {
	return &ReportHandler{reportService: reportService, log: log}
}

// ClassroomSummary aggregates progress for one classroom. Owner or admin only.
//
// @Summary      Classroom progress report
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "Classroom ID"
// @Success      200  {object}  ports.ClassroomReport
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /classrooms/{id}/report [get]
func (h *ReportHandler) ClassroomSummary(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	classroomID, err := PathID(c, "id")
	if err != nil {
		return err
	}
	report, err := h.reportService.ClassroomSummary(c.Request().Context(), classroomID, principal)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report)
}
