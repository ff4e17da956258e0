package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/mathquest/platform/internal/core/domain"
	"github.com/mathquest/platform/internal/core/ports"
)

type GameHandler struct {
	gameService ports.GameService
	log         zerolog.Logger
}

func NewGameHandler(gameService ports.GameService, log zerolog.Logger) *GameHandler {
	return &GameHandler{gameService: gameService, log: log}
}

// Create registers a new game. Teacher or admin only.
//
// @Summary      Create a game
// @Tags         games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createGameRequest  true  "Game fields"
// @Success      201   {object}  domain.Game
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /games [post]
func (h *GameHandler) Create(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req createGameRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	game, err := h.gameService.Create(c.Request().Context(), ports.CreateGameInput{
		Title:      req.Title,
		Kind:       req.Kind,
		Difficulty: domain.Difficulty(req.Difficulty),
		Config:     req.Config,
	}, principal)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, game)
}

// List returns the game catalog, optionally filtered by kind and difficulty
// query parameters.
//
// @Summary      List games
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Param        kind        query     string  false  "Filter by kind"
// @Param        difficulty  query     string  false  "Filter by difficulty"
// @Success      200  {array}   domain.Game
// @Failure      401  {object}  map[string]string
// @Router       /games [get]
func (h *GameHandler) List(c echo.Context) error {
	filter := ports.GameFilter{
		Kind:       c.QueryParam("kind"),
		Difficulty: domain.Difficulty(c.QueryParam("difficulty")),
	}
	games, err := h.gameService.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, games)
}

// Get returns one game.
//
// @Summary      Get a game
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "Game ID"
// @Success      200  {object}  domain.Game
// @Failure      404  {object}  map[string]string
// @Router       /games/{id} [get]
func (h *GameHandler) Get(c echo.Context) error {
	id, err := PathID(c, "id")
	if err != nil {
		return err
	}
	game, err := h.gameService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, game)
}

// Update mutates game fields. Creator or admin only.
//
// @Summary      Update a game
// @Tags         games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true  "Game ID"
// @Param        body  body      updateGameRequest  true  "Fields to update"
// @Success      200   {object}  domain.Game
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /games/{id} [put]
func (h *GameHandler) Update(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	id, err := PathID(c, "id")
	if err != nil {
		return err
	}

	var req updateGameRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := ports.UpdateGameInput{Title: req.Title, Config: req.Config}
	if req.Difficulty != nil {
		d := domain.Difficulty(*req.Difficulty)
		input.Difficulty = &d
	}

	game, err := h.gameService.Update(c.Request().Context(), id, input, principal)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, game)
}

// Delete removes a game. Creator or admin only.
//
// @Summary      Delete a game
// @Tags         games
// @Security     BearerAuth
// @Param        id  path  int  true  "Game ID"
// @Success      204  "game deleted"
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /games/{id} [delete]
func (h *GameHandler) Delete(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	id, err := PathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.gameService.Delete(c.Request().Context(), id, principal); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
