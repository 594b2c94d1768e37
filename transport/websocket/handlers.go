package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/gridgame-backend/internal/apperror"
	"github.com/rocketscienceinc/gridgame-backend/internal/entity"
	"github.com/rocketscienceinc/gridgame-backend/internal/render"
	"github.com/rocketscienceinc/gridgame-backend/internal/usecase"
)

const actionSnakeFrame = "snake:frame"

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Request is the union of every action payload sent by clients.
type Request struct {
	SessionID string `json:"session_id,omitempty"`

	Mode     string `json:"mode,omitempty"`
	Strategy string `json:"strategy,omitempty"`
	Size     int    `json:"size,omitempty"`
	Cell     *int   `json:"cell,omitempty"`

	Direction string `json:"direction,omitempty"`
	Enabled   *bool  `json:"enabled,omitempty"`
}

type Payload struct {
	SessionID string        `json:"session_id,omitempty"`
	Game      *entity.Game  `json:"game,omitempty"`
	Snake     *entity.Snake `json:"snake,omitempty"`
	Score     *entity.Score `json:"score,omitempty"`
	View      string        `json:"view,omitempty"`
	Error     string        `json:"error,omitempty"`
}

func (that *Server) handleConnect(ctx context.Context, client *Client, msg *Message) error {
	log := that.logger.With("method", "handleConnect")

	req, err := decodeRequest(msg)
	if err != nil {
		client.sendError(msg.Action, err.Error())
		return nil
	}

	if req.SessionID != "" {
		client.setSessionID(req.SessionID)
	}
	sessionID := client.SessionID()

	game, err := that.games.GetOrCreateGame(ctx, sessionID)
	if err != nil {
		return that.sendFailure(client, msg.Action, err)
	}

	score, err := that.games.GetScore(ctx, sessionID)
	if err != nil {
		return that.sendFailure(client, msg.Action, err)
	}

	client.sendMessage(msg.Action, gamePayload(sessionID, game, score))

	log.Info("successfully connected session", "session_id", sessionID)

	return nil
}

func (that *Server) handleNewGame(ctx context.Context, client *Client, msg *Message) error {
	req, err := decodeRequest(msg)
	if err != nil {
		client.sendError(msg.Action, err.Error())
		return nil
	}

	sessionID := client.SessionID()

	game, err := that.games.NewGame(ctx, sessionID, usecase.Options{
		Mode:     req.Mode,
		Strategy: req.Strategy,
		Size:     req.Size,
	})
	if err != nil {
		return that.sendFailure(client, msg.Action, err)
	}

	client.sendMessage(msg.Action, gamePayload(sessionID, game, nil))

	return nil
}

func (that *Server) handleGameTurn(ctx context.Context, client *Client, msg *Message) error {
	req, err := decodeRequest(msg)
	if err != nil {
		client.sendError(msg.Action, err.Error())
		return nil
	}

	if req.Cell == nil {
		client.sendError(msg.Action, "cell is required")
		return nil
	}

	sessionID := client.SessionID()

	game, err := that.games.MakeTurn(ctx, sessionID, *req.Cell)
	if err != nil && game != nil {
		// the rejected move may still come with a changed board, e.g. a resumed bot move
		payload := gamePayload(sessionID, game, nil)
		payload.Error, err = failure(msg.Action, err)
		client.sendMessage(msg.Action, payload)
		return err
	}
	if err != nil {
		return that.sendFailure(client, msg.Action, err)
	}

	var score *entity.Score
	if game.IsFinished() {
		if score, err = that.games.GetScore(ctx, sessionID); err != nil {
			return that.sendFailure(client, msg.Action, err)
		}
	}

	client.sendMessage(msg.Action, gamePayload(sessionID, game, score))

	return nil
}

func (that *Server) handleGameReset(ctx context.Context, client *Client, msg *Message) error {
	sessionID := client.SessionID()

	game, err := that.games.ResetGame(ctx, sessionID)
	if err != nil {
		return that.sendFailure(client, msg.Action, err)
	}

	client.sendMessage(msg.Action, gamePayload(sessionID, game, nil))

	return nil
}

func (that *Server) handleScoreReset(ctx context.Context, client *Client, msg *Message) error {
	sessionID := client.SessionID()

	score, err := that.games.ResetScore(ctx, sessionID)
	if err != nil {
		return that.sendFailure(client, msg.Action, err)
	}

	client.sendMessage(msg.Action, Payload{SessionID: sessionID, Score: score, View: render.Score(score)})

	return nil
}

func (that *Server) handleSnakeStart(ctx context.Context, client *Client, msg *Message) error {
	req, err := decodeRequest(msg)
	if err != nil {
		client.sendError(msg.Action, err.Error())
		return nil
	}

	sessionID := client.SessionID()

	// the loop lives as long as the connection
	state, err := that.snakes.Start(ctx, sessionID, req.Size, func(frame *entity.Snake) {
		client.sendMessage(actionSnakeFrame, snakePayload(sessionID, frame))
	})
	if err != nil {
		return that.sendFailure(client, msg.Action, err)
	}

	client.sendMessage(msg.Action, snakePayload(sessionID, state))

	return nil
}

func (that *Server) handleSnakeTurn(ctx context.Context, client *Client, msg *Message) error {
	req, err := decodeRequest(msg)
	if err != nil {
		client.sendError(msg.Action, err.Error())
		return nil
	}

	sessionID := client.SessionID()

	state, err := that.snakes.Steer(ctx, sessionID, req.Direction)
	if err != nil {
		return that.sendFailure(client, msg.Action, err)
	}

	client.sendMessage(msg.Action, snakePayload(sessionID, state))

	return nil
}

func (that *Server) handleSnakeAutoPlay(ctx context.Context, client *Client, msg *Message) error {
	req, err := decodeRequest(msg)
	if err != nil {
		client.sendError(msg.Action, err.Error())
		return nil
	}

	if req.Enabled == nil {
		client.sendError(msg.Action, "enabled is required")
		return nil
	}

	sessionID := client.SessionID()

	state, err := that.snakes.SetAutoPlay(ctx, sessionID, *req.Enabled)
	if err != nil {
		return that.sendFailure(client, msg.Action, err)
	}

	client.sendMessage(msg.Action, snakePayload(sessionID, state))

	return nil
}

func (that *Server) handleSnakeReset(ctx context.Context, client *Client, msg *Message) error {
	sessionID := client.SessionID()

	state, err := that.snakes.Reset(ctx, sessionID)
	if err != nil {
		return that.sendFailure(client, msg.Action, err)
	}

	client.sendMessage(msg.Action, snakePayload(sessionID, state))

	return nil
}

func (that *Server) handleSnakeStop(ctx context.Context, client *Client, msg *Message) error {
	sessionID := client.SessionID()

	if err := that.snakes.Stop(ctx, sessionID); err != nil {
		return that.sendFailure(client, msg.Action, err)
	}

	client.sendMessage(msg.Action, Payload{SessionID: sessionID})

	return nil
}

// sendFailure reports domain errors to the client and returns the rest for logging.
func (that *Server) sendFailure(client *Client, action string, err error) error {
	message, err := failure(action, err)
	client.sendError(action, message)

	return err
}

// failure returns the message shown to the client and the error left for logging.
func failure(action string, err error) (string, error) {
	switch {
	case errors.Is(err, apperror.ErrInvalidInput),
		errors.Is(err, apperror.ErrIllegalMove),
		errors.Is(err, apperror.ErrDuplicateRecord),
		errors.Is(err, apperror.ErrNotFound):
		return err.Error(), nil
	default:
		return "internal error", fmt.Errorf("%s failed: %w", action, err)
	}
}

func decodeRequest(msg *Message) (*Request, error) {
	var req Request
	if len(msg.Payload) == 0 {
		return &req, nil
	}

	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		return nil, fmt.Errorf("%w: malformed payload", apperror.ErrInvalidInput)
	}

	return &req, nil
}

func gamePayload(sessionID string, game *entity.Game, score *entity.Score) Payload {
	return Payload{
		SessionID: sessionID,
		Game:      game,
		Score:     score,
		View:      render.Game(game),
	}
}

func snakePayload(sessionID string, state *entity.Snake) Payload {
	return Payload{
		SessionID: sessionID,
		Snake:     state,
		View:      render.Snake(state),
	}
}
