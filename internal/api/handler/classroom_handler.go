package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/mathquest/platform/internal/core/ports"
)

type ClassroomHandler struct {
	classroomService ports.ClassroomService
	log              zerolog.Logger
}

func NewClassroomHandler(classroomService ports.ClassroomService, log zerolog.Logger) *ClassroomHandler {
	return &ClassroomHandler{classroomService: classroomService, log: log}
}

// Create opens a new classroom owned by the acting teacher.
//
// @Summary      Create a classroom
// @Tags         classrooms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createClassroomRequest  true  "Classroom fields"
// @Success      201   {object}  domain.Classroom
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /classrooms [post]
func (h *ClassroomHandler) Create(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req createClassroomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	classroom, err := h.classroomService.Create(c.Request().Context(), ports.CreateClassroomInput{
		Name:       req.Name,
		GradeLevel: req.GradeLevel,
	}, principal)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, classroom)
}

// List returns classrooms visible to the caller: all for admins, owned for
// teachers, enrolled for students.
//
// @Summary      List classrooms
// @Tags         classrooms
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Classroom
// @Failure      401  {object}  map[string]string
// @Router       /classrooms [get]
func (h *ClassroomHandler) List(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	classrooms, err := h.classroomService.List(c.Request().Context(), principal)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, classrooms)
}

// Get returns one classroom if the caller owns it, is enrolled, or is admin.
//
// @Summary      Get a classroom
// @Tags         classrooms
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "Classroom ID"
// @Success      200  {object}  domain.Classroom
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /classrooms/{id} [get]
func (h *ClassroomHandler) Get(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	id, err := PathID(c, "id")
	if err != nil {
		return err
	}
	classroom, err := h.classroomService.Get(c.Request().Context(), id, principal)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, classroom)
}

// Update mutates classroom fields. Owner or admin only.
//
// @Summary      Update a classroom
// @Tags         classrooms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                     true  "Classroom ID"
// @Param        body  body      updateClassroomRequest  true  "Fields to update"
// @Success      200   {object}  domain.Classroom
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /classrooms/{id} [put]
func (h *ClassroomHandler) Update(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	id, err := PathID(c, "id")
	if err != nil {
		return err
	}

	var req updateClassroomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	classroom, err := h.classroomService.Update(c.Request().Context(), id, ports.UpdateClassroomInput{
		Name:       req.Name,
		GradeLevel: req.GradeLevel,
	}, principal)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, classroom)
}

// Delete removes a classroom. Owner or admin only.
//
// @Summary      Delete a classroom
// @Tags         classrooms
// @Security     BearerAuth
// @Param        id  path  int  true  "Classroom ID"
// @Success      204  "classroom deleted"
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /classrooms/{id} [delete]
func (h *ClassroomHandler) Delete(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	id, err := PathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.classroomService.Delete(c.Request().Context(), id, principal); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Join enrols the acting student via a join code.
//
// @Summary      Join a classroom
// @Tags         classrooms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      joinClassroomRequest  true  "Join code"
// @Success      200   {object}  domain.Classroom
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /classrooms/join [post]
func (h *ClassroomHandler) Join(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req joinClassroomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	classroom, err := h.classroomService.Join(c.Request().Context(), req.JoinCode, principal)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, classroom)
}

// Roster lists the students enrolled in a classroom. Owner or admin only.
//
// @Summary      Classroom roster
// @Tags         classrooms
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "Classroom ID"
// @Success      200  {array}   domain.User
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /classrooms/{id}/roster [get]
func (h *ClassroomHandler) Roster(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	id, err := PathID(c, "id")
	if err != nil {
		return err
	}
	roster, err := h.classroomService.Roster(c.Request().Context(), id, principal)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, roster)
}
