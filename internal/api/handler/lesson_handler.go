package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/mathquest/platform/internal/core/domain"
	"github.com/mathquest/platform/internal/core/ports"
)

type LessonHandler struct {
	lessonService ports.LessonService
	log           zerolog.Logger
}

func NewLessonHandler(lessonService ports.LessonService, log zerolog.Logger) *LessonHandler {
	return &LessonHandler{lessonService: lessonService, log: log}
}

// Create adds a lesson to a classroom. Classroom owner or admin only.
//
// @Summary      Create a lesson
// @Tags         lessons
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createLessonRequest  true  "Lesson fields"
// @Success      201   {object}  domain.Lesson
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /lessons [post]
func (h *LessonHandler) Create(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req createLessonRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	lesson, err := h.lessonService.Create(c.Request().Context(), ports.CreateLessonInput{
		ClassroomID: req.ClassroomID,
		Title:       req.Title,
		Summary:     req.Summary,
		Position:    req.Position,
	}, principal)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, lesson)
}

// ListByClassroom returns the lessons of one classroom ordered by position.
//
// @Summary      List lessons of a classroom
// @Tags         lessons
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "Classroom ID"
// @Success      200  {array}   domain.Lesson
// @Failure      404  {object}  map[string]string
// @Router       /classrooms/{id}/lessons [get]
func (h *LessonHandler) ListByClassroom(c echo.Context) error {
	classroomID, err := PathID(c, "id")
	if err != nil {
		return err
	}
	lessons, err := h.lessonService.ListByClassroom(c.Request().Context(), classroomID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, lessons)
}

// Get returns one lesson with its content blocks.
//
// @Summary      Get a lesson
// @Tags         lessons
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "Lesson ID"
// @Success      200  {object}  domain.Lesson
// @Failure      404  {object}  map[string]string
// @Router       /lessons/{id} [get]
func (h *LessonHandler) Get(c echo.Context) error {
	id, err := PathID(c, "id")
	if err != nil {
		return err
	}
	lesson, err := h.lessonService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, lesson)
}

// Update mutates lesson fields. Classroom owner or admin only.
//
// @Summary      Update a lesson
// @Tags         lessons
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                  true  "Lesson ID"
// @Param        body  body      updateLessonRequest  true  "Fields to update"
// @Success      200   {object}  domain.Lesson
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /lessons/{id} [put]
func (h *LessonHandler) Update(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	id, err := PathID(c, "id")
	if err != nil {
		return err
	}

	var req updateLessonRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	lesson, err := h.lessonService.Update(c.Request().Context(), id, ports.UpdateLessonInput{
		Title:    req.Title,
		Summary:  req.Summary,
		Position: req.Position,
	}, principal)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, lesson)
}

// Delete removes a lesson and its blocks. Classroom owner or admin only.
//
// @Summary      Delete a lesson
// @Tags         lessons
// @Security     BearerAuth
// @Param        id  path  int  true  "Lesson ID"
// @Success      204  "lesson deleted"
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /lessons/{id} [delete]
func (h *LessonHandler) Delete(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	id, err := PathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.lessonService.Delete(c.Request().Context(), id, principal); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// AddBlock appends a content block to a lesson.
//
// @Summary      Add a content block
// @Tags         lessons
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int           true  "Lesson ID"
// @Param        body  body      blockRequest  true  "Block fields"
// @Success      201   {object}  domain.ContentBlock
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /lessons/{id}/blocks [post]
func (h *LessonHandler) AddBlock(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	lessonID, err := PathID(c, "id")
	if err != nil {
		return err
	}

	var req blockRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	block, err := h.lessonService.AddBlock(c.Request().Context(), lessonID, ports.BlockInput{
		Kind:     domain.BlockKind(req.Kind),
		Content:  req.Content,
		Position: req.Position,
	}, principal)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, block)
}

// UpdateBlock mutates one content block.
//
// @Summary      Update a content block
// @Tags         lessons
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        blockId  path      int           true  "Block ID"
// @Param        body     body      blockRequest  true  "Block fields"
// @Success      200      {object}  domain.ContentBlock
// @Failure      403      {object}  map[string]string
// @Failure      404      {object}  map[string]string
// @Router       /blocks/{blockId} [put]
func (h *LessonHandler) UpdateBlock(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	blockID, err := PathID(c, "blockId")
	if err != nil {
		return err
	}

	var req blockRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	block, err := h.lessonService.UpdateBlock(c.Request().Context(), blockID, ports.BlockInput{
		Kind:     domain.BlockKind(req.Kind),
		Content:  req.Content,
		Position: req.Position,
	}, principal)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, block)
}

// DeleteBlock removes one content block.
//
// @Summary      Delete a content block
// @Tags         lessons
// @Security     BearerAuth
// @Param        blockId  path  int  true  "Block ID"
// @Success      204  "block deleted"
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /blocks/{blockId} [delete]
func (h *LessonHandler) DeleteBlock(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	blockID, err := PathID(c, "blockId")
	if err != nil {
		return err
	}
	if err := h.lessonService.DeleteBlock(c.Request().Context(), blockID, principal); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ReorderBlocks rewrites the positions of a lesson's blocks to match the
// given ID order. Every block of the lesson must appear exactly once.
//
// @Summary      Reorder content blocks
// @Tags         lessons
// @Accept       json
// @Security     BearerAuth
// @Param        id    path  int                   true  "Lesson ID"
// @Param        body  body  reorderBlocksRequest  true  "Ordered block IDs"
// @Success      204  "blocks reordered"
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /lessons/{id}/blocks/reorder [put]
func (h *LessonHandler) ReorderBlocks(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	lessonID, err := PathID(c, "id")
	if err != nil {
		return err
	}

	var req reorderBlocksRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.lessonService.ReorderBlocks(c.Request().Context(), lessonID, req.BlockIDs, principal); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
