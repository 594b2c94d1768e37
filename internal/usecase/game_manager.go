package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/gridgame-backend/internal/apperror"
	"github.com/rocketscienceinc/gridgame-backend/internal/entity"
	"github.com/rocketscienceinc/gridgame-backend/internal/metrics"
	"github.com/rocketscienceinc/gridgame-backend/internal/tictactoe"
)

// Options select the kind of game started by NewGame. Zero values fall back
// to the manager defaults.
type Options struct {
	Mode     string `json:"mode"`
	Strategy string `json:"strategy"`
	Size     int    `json:"size"`
}

type GameManagerConfig struct {
	BoardSize       int
	BotDelay        time.Duration
	DefaultStrategy string
}

type GameManager struct {
	logger *slog.Logger

	gameRepo   gameRepo
	scoreRepo  scoreRepo
	resultRepo resultRepo
	strategies strategyRegistry

	conf  GameManagerConfig
	locks *sessionLocks
	now   func() time.Time
}

func NewGameManager(
	logger *slog.Logger,
	conf GameManagerConfig,
	gameRepo gameRepo,
	scoreRepo scoreRepo,
	resultRepo resultRepo,
	strategies strategyRegistry,
) *GameManager {
	if conf.BoardSize == 0 {
		conf.BoardSize = entity.DefaultBoardSize
	}
	if conf.DefaultStrategy == "" {
		conf.DefaultStrategy = entity.StrategyRandom
	}

	return &GameManager{
		logger: logger.With("component", "game_manager"),

		gameRepo:   gameRepo,
		scoreRepo:  scoreRepo,
		resultRepo: resultRepo,
		strategies: strategies,

		conf:  conf,
		locks: newSessionLocks(),
		now:   time.Now,
	}
}

// NewGame replaces the session's game with a fresh board.
func (that *GameManager) NewGame(ctx context.Context, sessionID string, opts Options) (*entity.Game, error) {
	unlock := that.locks.Lock(sessionID)
	defer unlock()

	return that.createGame(ctx, sessionID, opts)
}

func (that *GameManager) GetGame(ctx context.Context, sessionID string) (*entity.Game, error) {
	game, err := that.gameRepo.GetBySessionID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// GetOrCreateGame returns the session's game, starting a default one on first use.
func (that *GameManager) GetOrCreateGame(ctx context.Context, sessionID string) (*entity.Game, error) {
	unlock := that.locks.Lock(sessionID)
	defer unlock()

	game, err := that.gameRepo.GetBySessionID(ctx, sessionID)
	if errors.Is(err, apperror.ErrNotFound) {
		return that.createGame(ctx, sessionID, Options{})
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

func (that *GameManager) MakeTurn(ctx context.Context, sessionID string, cell int) (*entity.Game, error) {
	unlock := that.locks.Lock(sessionID)
	defer unlock()

	game, err := that.gameRepo.GetBySessionID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	// a bot move interrupted by cancellation is finished before rejecting the human;
	// the human move counts as rejected, the bot move as accepted
	if game.IsWithBot() && game.IsOngoing() && game.Turn == game.BotMark() {
		metrics.IncMove(metrics.GameTicTacToe, metrics.ResultRejected)

		resumed, err := that.botTurn(ctx, sessionID, game)
		if err != nil {
			return game, fmt.Errorf("%w: %w", apperror.ErrNotYourTurn, err)
		}

		if resumed.IsFinished() {
			that.finishGame(ctx, sessionID, resumed)
		}

		return resumed, apperror.ErrNotYourTurn
	}

	next, err := tictactoe.Apply(game, cell)
	if err != nil {
		metrics.IncMove(metrics.GameTicTacToe, metrics.ResultRejected)
		return game, fmt.Errorf("failed to make turn: %w", err)
	}
	metrics.IncMove(metrics.GameTicTacToe, metrics.ResultAccepted)

	if err = that.updateGame(ctx, sessionID, next); err != nil {
		return nil, err
	}

	if next.IsOngoing() && next.IsWithBot() {
		next, err = that.botTurn(ctx, sessionID, next)
		if err != nil {
			return nil, err
		}
	}

	if next.IsFinished() {
		that.finishGame(ctx, sessionID, next)
	}

	return next, nil
}

// ResetGame starts a new board with the mode, strategy and size of the current one.
func (that *GameManager) ResetGame(ctx context.Context, sessionID string) (*entity.Game, error) {
	unlock := that.locks.Lock(sessionID)
	defer unlock()

	opts := Options{}

	game, err := that.gameRepo.GetBySessionID(ctx, sessionID)
	switch {
	case err == nil:
		opts = Options{Mode: game.Mode, Strategy: game.Strategy, Size: game.Size}
	case !errors.Is(err, apperror.ErrNotFound):
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return that.createGame(ctx, sessionID, opts)
}

// Replay rebuilds every intermediate state of the session's game from its history.
func (that *GameManager) Replay(ctx context.Context, sessionID string) ([]*entity.Game, error) {
	game, err := that.gameRepo.GetBySessionID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	states, err := tictactoe.Replay(game.ID, game.Size, game.History)
	if err != nil {
		return nil, fmt.Errorf("failed to replay game: %w", err)
	}

	return states, nil
}

func (that *GameManager) GetScore(ctx context.Context, sessionID string) (*entity.Score, error) {
	score, err := that.scoreRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get score: %w", err)
	}

	return score, nil
}

func (that *GameManager) ResetScore(ctx context.Context, sessionID string) (*entity.Score, error) {
	unlock := that.locks.Lock(sessionID)
	defer unlock()

	score := &entity.Score{}
	if err := that.scoreRepo.Save(ctx, sessionID, score); err != nil {
		return nil, fmt.Errorf("failed to reset score: %w", err)
	}

	return score, nil
}

// DeleteSession ends the session: its game and score are removed. Missing
// records are not an error.
func (that *GameManager) DeleteSession(ctx context.Context, sessionID string) error {
	unlock := that.locks.Lock(sessionID)
	defer unlock()

	if err := that.gameRepo.DeleteBySessionID(ctx, sessionID); err != nil && !errors.Is(err, apperror.ErrNotFound) {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	if err := that.scoreRepo.DeleteBySessionID(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to delete score: %w", err)
	}

	that.logger.Info("session deleted", "session_id", sessionID)

	return nil
}

func (that *GameManager) createGame(ctx context.Context, sessionID string, opts Options) (*entity.Game, error) {
	if opts.Mode == "" {
		opts.Mode = entity.ModePvP
	}
	if opts.Size == 0 {
		opts.Size = that.conf.BoardSize
	}
	if opts.Mode == entity.ModeBot && opts.Strategy == "" {
		opts.Strategy = that.conf.DefaultStrategy
	}
	if opts.Mode == entity.ModePvP {
		opts.Strategy = ""
	}

	if err := entity.ValidateMode(opts.Mode, opts.Strategy); err != nil {
		return nil, err
	}

	if err := entity.ValidateBoardSize(opts.Size); err != nil {
		return nil, err
	}

	game := entity.NewGame(uuid.NewString(), opts.Size)
	game.Mode = opts.Mode
	game.Strategy = opts.Strategy

	if err := that.updateGame(ctx, sessionID, game); err != nil {
		return nil, err
	}

	that.logger.Debug("game created", "session_id", sessionID, "game_id", game.ID, "mode", game.Mode, "size", game.Size)

	return game, nil
}

func (that *GameManager) botTurn(ctx context.Context, sessionID string, game *entity.Game) (*entity.Game, error) {
	strategy, err := that.strategies.Get(game.Strategy)
	if err != nil {
		return nil, fmt.Errorf("failed to get strategy: %w", err)
	}

	if that.conf.BotDelay > 0 {
		timer := time.NewTimer(that.conf.BotDelay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("bot turn canceled: %w", ctx.Err())
		case <-timer.C:
		}
	}

	cell, ok := strategy.Choose(game)
	if !ok {
		return game, nil
	}

	next, err := tictactoe.Apply(game, cell)
	if err != nil {
		return nil, fmt.Errorf("bot failed to make turn: %w", err)
	}
	metrics.IncMove(metrics.GameTicTacToe, metrics.ResultAccepted)

	if err = that.updateGame(ctx, sessionID, next); err != nil {
		return nil, err
	}

	return next, nil
}

// finishGame records the outcome. Failures are logged, the game itself is already saved.
func (that *GameManager) finishGame(ctx context.Context, sessionID string, game *entity.Game) {
	log := that.logger.With("method", "finishGame", "session_id", sessionID, "game_id", game.ID)

	metrics.IncGameFinished(metrics.GameTicTacToe, game.Status)

	score, err := that.scoreRepo.Get(ctx, sessionID)
	if err != nil {
		log.Error("failed to get score", "error", err)
		score = &entity.Score{}
	}

	score.Record(game)
	if err = that.scoreRepo.Save(ctx, sessionID, score); err != nil {
		log.Error("failed to save score", "error", err)
	}

	if err = that.resultRepo.Append(ctx, entity.NewGameResult(sessionID, game, that.now().UTC())); err != nil {
		if errors.Is(err, apperror.ErrDuplicateRecord) {
			log.Warn("result already recorded", "error", err)
			return
		}
		log.Error("failed to append result", "error", err)
		return
	}

	log.Info("game finished", "status", game.Status, "winner", game.Winner)
}

func (that *GameManager) updateGame(ctx context.Context, sessionID string, game *entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, sessionID, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}
