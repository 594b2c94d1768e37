package rest

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/rocketscienceinc/gridgame-backend/internal/apperror"
	"github.com/rocketscienceinc/gridgame-backend/internal/entity"
	"github.com/rocketscienceinc/gridgame-backend/internal/render"
)

const (
	defaultResultsLimit = 20
	maxResultsLimit     = 100

	formatText = "text"
)

type gameReader interface {
	GetGame(ctx context.Context, sessionID string) (*entity.Game, error)
	Replay(ctx context.Context, sessionID string) ([]*entity.Game, error)
	GetScore(ctx context.Context, sessionID string) (*entity.Score, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

type snakeReader interface {
	Get(ctx context.Context, sessionID string) (*entity.Snake, error)
	Delete(ctx context.Context, sessionID string) error
}

type resultLister interface {
	ListBySession(ctx context.Context, sessionID string, limit int) ([]*entity.Result, error)
}

type SessionHandler interface {
	GetGame(ctx echo.Context) error
	GetReplay(ctx echo.Context) error
	GetScore(ctx echo.Context) error
	GetSnake(ctx echo.Context) error
	GetResults(ctx echo.Context) error
	DeleteSession(ctx echo.Context) error
}

type sessionHandler struct {
	games   gameReader
	snakes  snakeReader
	results resultLister
}

func NewSessionHandler(games gameReader, snakes snakeReader, results resultLister) SessionHandler {
	return &sessionHandler{
		games:   games,
		snakes:  snakes,
		results: results,
	}
}

func (that *sessionHandler) GetGame(ctx echo.Context) error {
	game, err := that.games.GetGame(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return httpError(err)
	}

	if wantsText(ctx) {
		return ctx.String(http.StatusOK, render.Game(game))
	}

	return ctx.JSON(http.StatusOK, game)
}

func (that *sessionHandler) GetReplay(ctx echo.Context) error {
	states, err := that.games.Replay(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return httpError(err)
	}

	if wantsText(ctx) {
		views := make([]string, 0, len(states))
		for _, state := range states {
			views = append(views, render.Game(state))
		}
		return ctx.String(http.StatusOK, strings.Join(views, "\n\n"))
	}

	return ctx.JSON(http.StatusOK, states)
}

func (that *sessionHandler) GetScore(ctx echo.Context) error {
	score, err := that.games.GetScore(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return httpError(err)
	}

	if wantsText(ctx) {
		return ctx.String(http.StatusOK, render.Score(score))
	}

	return ctx.JSON(http.StatusOK, score)
}

func (that *sessionHandler) GetSnake(ctx echo.Context) error {
	state, err := that.snakes.Get(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return httpError(err)
	}

	if wantsText(ctx) {
		return ctx.String(http.StatusOK, render.Snake(state))
	}

	return ctx.JSON(http.StatusOK, state)
}

func (that *sessionHandler) GetResults(ctx echo.Context) error {
	limit := defaultResultsLimit
	if raw := ctx.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > maxResultsLimit {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be between 1 and 100")
		}
		limit = parsed
	}

	results, err := that.results.ListBySession(ctx.Request().Context(), ctx.Param("id"), limit)
	if err != nil {
		return httpError(err)
	}

	return ctx.JSON(http.StatusOK, results)
}

// DeleteSession ends a session: the snake loop is stopped and the stored
// records are removed. The result ledger keeps its rows.
func (that *sessionHandler) DeleteSession(ctx echo.Context) error {
	sessionID := ctx.Param("id")

	if err := that.snakes.Delete(ctx.Request().Context(), sessionID); err != nil {
		return httpError(err)
	}

	if err := that.games.DeleteSession(ctx.Request().Context(), sessionID); err != nil {
		return httpError(err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func wantsText(ctx echo.Context) bool {
	return ctx.QueryParam("format") == formatText
}

// httpError maps domain errors to status codes; anything else is a 500.
func httpError(err error) error {
	switch {
	case errors.Is(err, apperror.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, apperror.ErrInvalidInput), errors.Is(err, apperror.ErrIllegalMove):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, apperror.ErrDuplicateRecord):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError).SetInternal(err)
	}
}
