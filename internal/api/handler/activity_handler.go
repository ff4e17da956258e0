package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/mathquest/platform/internal/api/metrics"
	"github.com/mathquest/platform/internal/core/domain"
	"github.com/mathquest/platform/internal/core/ports"
)

type ActivityHandler struct {
	activityService ports.ActivityService
	log             zerolog.Logger
}

func NewActivityHandler(activityService ports.ActivityService, log zerolog.Logger) *ActivityHandler {
	return &ActivityHandler{activityService: activityService, log: log}
}

// Create attaches an activity to a lesson. Classroom owner or admin only.
//
// @Summary      Create an activity
// @Tags         activities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createActivityRequest  true  "Activity fields"
// @Success      201   {object}  domain.Activity
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /activities [post]
func (h *ActivityHandler) Create(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req createActivityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	activity, err := h.activityService.Create(c.Request().Context(), ports.CreateActivityInput{
		LessonID: req.LessonID,
		Title:    req.Title,
		Kind:     domain.ActivityKind(req.Kind),
		MaxScore: req.MaxScore,
		DueAt:    req.DueAt,
	}, principal)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, activity)
}

// ListByLesson returns the activities of one lesson.
//
// @Summary      List activities of a lesson
// @Tags         activities
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "Lesson ID"
// @Success      200  {array}   domain.Activity
// @Failure      404  {object}  map[string]string
// @Router       /lessons/{id}/activities [get]
func (h *ActivityHandler) ListByLesson(c echo.Context) error {
	lessonID, err := PathID(c, "id")
	if err != nil {
		return err
	}
	activities, err := h.activityService.ListByLesson(c.Request().Context(), lessonID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, activities)
}

// Get returns one activity.
//
// @Summary      Get an activity
// @Tags         activities
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "Activity ID"
// @Success      200  {object}  domain.Activity
// @Failure      404  {object}  map[string]string
// @Router       /activities/{id} [get]
func (h *ActivityHandler) Get(c echo.Context) error {
	id, err := PathID(c, "id")
	if err != nil {
		return err
	}
	activity, err := h.activityService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, activity)
}

// Update mutates activity fields. Classroom owner or admin only.
//
// @Summary      Update an activity
// @Tags         activities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                    true  "Activity ID"
// @Param        body  body      updateActivityRequest  true  "Fields to update"
// @Success      200   {object}  domain.Activity
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /activities/{id} [put]
func (h *ActivityHandler) Update(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	id, err := PathID(c, "id")
	if err != nil {
		return err
	}

	var req updateActivityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	activity, err := h.activityService.Update(c.Request().Context(), id, ports.UpdateActivityInput{
		Title:    req.Title,
		MaxScore: req.MaxScore,
		DueAt:    req.DueAt,
	}, principal)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, activity)
}

// Delete removes an activity. Classroom owner or admin only.
//
// @Summary      Delete an activity
// @Tags         activities
// @Security     BearerAuth
// @Param        id  path  int  true  "Activity ID"
// @Success      204  "activity deleted"
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /activities/{id} [delete]
func (h *ActivityHandler) Delete(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	id, err := PathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.activityService.Delete(c.Request().Context(), id, principal); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Submit records the acting student's score for an activity. A resubmission
// overwrites the previous score.
//
// @Summary      Submit an activity result
// @Tags         activities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int            true  "Activity ID"
// @Param        body  body      submitRequest  true  "Score"
// @Success      200   {object}  domain.Submission
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /activities/{id}/submissions [post]
func (h *ActivityHandler) Submit(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	activityID, err := PathID(c, "id")
	if err != nil {
		return err
	}

	var req submitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	submission, err := h.activityService.Submit(c.Request().Context(), activityID, req.Score, principal)
	if err != nil {
		return err
	}

	activity, actErr := h.activityService.Get(c.Request().Context(), activityID)
	if actErr == nil {
		metrics.SubmissionsTotal.WithLabelValues(string(activity.Kind)).Inc()
	}
	return c.JSON(http.StatusOK, submission)
}

// ListSubmissions returns the submissions of one activity. Classroom owner or
// admin only.
//
// @Summary      List submissions of an activity
// @Tags         activities
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "Activity ID"
// @Success      200  {array}   domain.Submission
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /activities/{id}/submissions [get]
func (h *ActivityHandler) ListSubmissions(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	activityID, err := PathID(c, "id")
	if err != nil {
		return err
	}
	submissions, err := h.activityService.ListSubmissions(c.Request().Context(), activityID, principal)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, submissions)
}
