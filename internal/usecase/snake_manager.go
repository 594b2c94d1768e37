package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/gridgame-backend/internal/apperror"
	"github.com/rocketscienceinc/gridgame-backend/internal/entity"
	"github.com/rocketscienceinc/gridgame-backend/internal/metrics"
	"github.com/rocketscienceinc/gridgame-backend/internal/rng"
	"github.com/rocketscienceinc/gridgame-backend/internal/snake"
)

const defaultTickInterval = 150 * time.Millisecond

var (
	ErrSnakeSessionNotFound = fmt.Errorf("%w: snake session is not started", apperror.ErrNotFound)
	ErrSnakeManagerClosed   = errors.New("snake manager is closed")
)

type SnakeManagerConfig struct {
	GridSize     int
	TickInterval time.Duration
}

// SnakeManager runs one event loop per session. The loop owns the state:
// commands and ticks are applied one at a time, in arrival order.
type SnakeManager struct {
	logger *slog.Logger

	snakeRepo  snakeRepo
	resultRepo resultRepo
	source     rng.Source

	conf SnakeManagerConfig
	now  func() time.Time

	// locks serialize Start, Stop and Delete of one session
	locks *sessionLocks

	mu       sync.Mutex
	sessions map[string]*snakeSession
	closed   bool
	wg       sync.WaitGroup
}

type snakeSession struct {
	inbox  chan snakeCommand
	cancel context.CancelFunc
	done   chan struct{}
}

type snakeCommand struct {
	apply func(state *entity.Snake) (*entity.Snake, error)
	reply chan snakeReply
}

type snakeReply struct {
	state *entity.Snake
	err   error
}

func NewSnakeManager(
	logger *slog.Logger,
	conf SnakeManagerConfig,
	snakeRepo snakeRepo,
	resultRepo resultRepo,
	source rng.Source,
) *SnakeManager {
	if conf.GridSize == 0 {
		conf.GridSize = entity.DefaultSnakeSize
	}
	if conf.TickInterval <= 0 {
		conf.TickInterval = defaultTickInterval
	}

	return &SnakeManager{
		logger: logger.With("component", "snake_manager"),

		snakeRepo:  snakeRepo,
		resultRepo: resultRepo,
		source:     source,

		conf:     conf,
		now:      time.Now,
		locks:    newSessionLocks(),
		sessions: make(map[string]*snakeSession),
	}
}

// Start begins a new snake for the session, replacing a running one. The loop
// lives until ctx is done or Stop is called; publish receives every tick.
func (that *SnakeManager) Start(ctx context.Context, sessionID string, size int, publish Publisher) (*entity.Snake, error) {
	if size == 0 {
		size = that.conf.GridSize
	}

	state, err := snake.New(uuid.NewString(), size, that.source)
	if err != nil {
		return nil, fmt.Errorf("failed to create snake: %w", err)
	}

	unlock := that.locks.Lock(sessionID)
	defer unlock()

	that.stop(sessionID)

	if err = that.snakeRepo.CreateOrUpdate(ctx, sessionID, state); err != nil {
		return nil, fmt.Errorf("failed to save snake: %w", err)
	}

	loopCtx, cancel := context.WithCancel(ctx)
	session := &snakeSession{
		inbox:  make(chan snakeCommand),
		cancel: cancel,
		done:   make(chan struct{}),
	}

	that.mu.Lock()
	if that.closed {
		that.mu.Unlock()
		cancel()
		return nil, ErrSnakeManagerClosed
	}
	that.sessions[sessionID] = session
	that.wg.Add(1)
	that.mu.Unlock()

	go func() {
		defer that.wg.Done()
		defer close(session.done)

		that.loop(loopCtx, sessionID, state.Clone(), session.inbox, publish)

		that.mu.Lock()
		if that.sessions[sessionID] == session {
			delete(that.sessions, sessionID)
		}
		that.mu.Unlock()
	}()

	that.logger.Info("snake started", "session_id", sessionID, "snake_id", state.ID, "size", size)

	return state, nil
}

func (that *SnakeManager) Steer(ctx context.Context, sessionID string, direction string) (*entity.Snake, error) {
	dir, err := entity.ParseDirection(direction)
	if err != nil {
		metrics.IncMove(metrics.GameSnake, metrics.ResultRejected)
		return nil, err
	}

	state, err := that.send(ctx, sessionID, func(state *entity.Snake) (*entity.Snake, error) {
		return snake.Steer(state, dir)
	})
	if err != nil {
		metrics.IncMove(metrics.GameSnake, metrics.ResultRejected)
		return state, fmt.Errorf("failed to steer: %w", err)
	}

	metrics.IncMove(metrics.GameSnake, metrics.ResultAccepted)

	return state, nil
}

func (that *SnakeManager) SetAutoPlay(ctx context.Context, sessionID string, enabled bool) (*entity.Snake, error) {
	state, err := that.send(ctx, sessionID, func(state *entity.Snake) (*entity.Snake, error) {
		next := state.Clone()
		next.AutoPlay = enabled
		return next, nil
	})
	if err != nil {
		return state, fmt.Errorf("failed to set autoplay: %w", err)
	}

	return state, nil
}

// Reset swaps the running record for a fresh snake of the same size.
func (that *SnakeManager) Reset(ctx context.Context, sessionID string) (*entity.Snake, error) {
	state, err := that.send(ctx, sessionID, func(state *entity.Snake) (*entity.Snake, error) {
		return snake.New(uuid.NewString(), state.Size, that.source)
	})
	if err != nil {
		return state, fmt.Errorf("failed to reset snake: %w", err)
	}

	return state, nil
}

// Stop ends the session loop. The last state stays readable through Get.
func (that *SnakeManager) Stop(_ context.Context, sessionID string) error {
	unlock := that.locks.Lock(sessionID)
	defer unlock()

	if !that.stop(sessionID) {
		return ErrSnakeSessionNotFound
	}

	that.logger.Info("snake stopped", "session_id", sessionID)

	return nil
}

func (that *SnakeManager) Get(ctx context.Context, sessionID string) (*entity.Snake, error) {
	state, err := that.snakeRepo.GetBySessionID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get snake: %w", err)
	}

	return state, nil
}

// Delete stops the session loop, if any, and removes the stored snake.
func (that *SnakeManager) Delete(ctx context.Context, sessionID string) error {
	unlock := that.locks.Lock(sessionID)
	defer unlock()

	that.stop(sessionID)

	if err := that.snakeRepo.DeleteBySessionID(ctx, sessionID); err != nil && !errors.Is(err, apperror.ErrNotFound) {
		return fmt.Errorf("failed to delete snake: %w", err)
	}

	that.logger.Info("snake deleted", "session_id", sessionID)

	return nil
}

// Close stops every loop and waits for them to exit. Later Start calls fail.
func (that *SnakeManager) Close() {
	that.mu.Lock()
	that.closed = true
	for sessionID, session := range that.sessions {
		session.cancel()
		delete(that.sessions, sessionID)
	}
	that.mu.Unlock()

	that.wg.Wait()
}

func (that *SnakeManager) stop(sessionID string) bool {
	that.mu.Lock()
	session, ok := that.sessions[sessionID]
	delete(that.sessions, sessionID)
	that.mu.Unlock()

	if !ok {
		return false
	}

	session.cancel()
	<-session.done

	return true
}

func (that *SnakeManager) send(
	ctx context.Context,
	sessionID string,
	apply func(state *entity.Snake) (*entity.Snake, error),
) (*entity.Snake, error) {
	that.mu.Lock()
	session, ok := that.sessions[sessionID]
	that.mu.Unlock()

	if !ok {
		return nil, ErrSnakeSessionNotFound
	}

	cmd := snakeCommand{apply: apply, reply: make(chan snakeReply, 1)}

	select {
	case session.inbox <- cmd:
	case <-session.done:
		return nil, ErrSnakeSessionNotFound
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	select {
	case reply := <-cmd.reply:
		return reply.state, reply.err
	case <-session.done:
		return nil, ErrSnakeSessionNotFound
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (that *SnakeManager) loop(
	ctx context.Context,
	sessionID string,
	state *entity.Snake,
	inbox <-chan snakeCommand,
	publish Publisher,
) {
	log := that.logger.With("method", "loop", "session_id", sessionID)

	ticker := time.NewTicker(that.conf.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case cmd := <-inbox:
			next, err := cmd.apply(state)
			if err == nil && next != state {
				state = next
				that.save(ctx, log, sessionID, state)
			}
			cmd.reply <- snakeReply{state: state.Clone(), err: err}

		case <-ticker.C:
			if !state.IsRunning() {
				continue
			}

			if state.AutoPlay {
				state = snake.AutoSteer(state)
			}
			state = snake.Tick(state, that.source)
			metrics.IncSnakeTick()

			that.save(ctx, log, sessionID, state)

			if publish != nil {
				publish(state.Clone())
			}

			if !state.IsRunning() {
				that.finish(ctx, log, sessionID, state)
			}
		}
	}
}

func (that *SnakeManager) save(ctx context.Context, log *slog.Logger, sessionID string, state *entity.Snake) {
	if err := that.snakeRepo.CreateOrUpdate(ctx, sessionID, state); err != nil {
		log.Error("failed to save snake", "error", err)
	}
}

func (that *SnakeManager) finish(ctx context.Context, log *slog.Logger, sessionID string, state *entity.Snake) {
	metrics.IncGameFinished(metrics.GameSnake, state.Status)

	if err := that.resultRepo.Append(ctx, entity.NewSnakeResult(sessionID, state, that.now().UTC())); err != nil {
		if errors.Is(err, apperror.ErrDuplicateRecord) {
			log.Warn("result already recorded", "error", err)
			return
		}
		log.Error("failed to append result", "error", err)
		return
	}

	log.Info("snake finished", "status", state.Status, "score", state.Score)
}
