package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/mathquest/platform/internal/core/ports"
)

type FeedbackHandler struct {
	feedbackService ports.FeedbackService
	log             zerolog.Logger
}

func NewFeedbackHandler(feedbackService ports.FeedbackService, log zerolog.Logger) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService, log: log}
}

type createFeedbackRequest struct {
	ActivityID uint   `json:"activity_id" validate:"required"`
	Rating     int    `json:"rating"      validate:"required,min=1,max=5"`
	Comment    string `json:"comment"     validate:"max=2000"`
}

// Create records a student's rating and comment on an activity.
//
// @Summary      Leave feedback
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createFeedbackRequest  true  "Feedback fields"
// @Success      201   {object}  domain.Feedback
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /feedback [post]
func (h *FeedbackHandler) Create(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req createFeedbackRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	feedback, err := h.feedbackService.Create(c.Request().Context(), ports.CreateFeedbackInput{
		ActivityID: req.ActivityID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}, principal)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, feedback)
}

// ListByActivity returns all feedback left on one activity.
//
// @Summary      Feedback on an activity
// @Tags         feedback
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "Activity ID"
// @Success      200  {array}   domain.Feedback
// @Failure      404  {object}  map[string]string
// @Router       /activities/{id}/feedback [get]
func (h *FeedbackHandler) ListByActivity(c echo.Context) error {
	activityID, err := PathID(c, "id")
	if err != nil {
		return err
	}
	items, err := h.feedbackService.ListByActivity(c.Request().Context(), activityID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Delete removes one feedback entry. Admin only.
//
// @Summary      Delete feedback
// @Tags         feedback
// @Security     BearerAuth
// @Param        id  path  int  true  "Feedback ID"
// @Success      204  "feedback deleted"
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /feedback/{id} [delete]
func (h *FeedbackHandler) Delete(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	id, err := PathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.feedbackService.Delete(c.Request().Context(), id, principal); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
