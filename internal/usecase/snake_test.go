package usecase

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gridgame-backend/internal/apperror"
	"github.com/rocketscienceinc/gridgame-backend/internal/entity"
	"github.com/rocketscienceinc/gridgame-backend/internal/rng"
	mockedUseCase "github.com/rocketscienceinc/gridgame-backend/mocks/usecase"
)

const frameTimeout = 5 * time.Second

// newTestSnakeManager returns a manager whose food always lands on the first free cell.
func newTestSnakeManager(t *testing.T, tick time.Duration) (*SnakeManager, *mockedUseCase.MocksnakeRepo, *mockedUseCase.MockresultRepo) {
	t.Helper()

	snakeRepo := mockedUseCase.NewMocksnakeRepo(t)
	resultRepo := mockedUseCase.NewMockresultRepo(t)

	snakeRepo.EXPECT().
		CreateOrUpdate(mock.Anything, "session-1", mock.AnythingOfType("*entity.Snake")).
		Return(nil).
		Maybe()

	manager := NewSnakeManager(
		newTestLogger(),
		SnakeManagerConfig{GridSize: 10, TickInterval: tick},
		snakeRepo,
		resultRepo,
		rng.NewSequence(0),
	)
	t.Cleanup(manager.Close)

	return manager, snakeRepo, resultRepo
}

func TestSnakeManager_Commands(t *testing.T) {
	ctx := context.Background()

	t.Run("Start creates a running snake", func(t *testing.T) {
		// Given: a manager that never ticks during the test
		manager, _, _ := newTestSnakeManager(t, time.Hour)

		// When: a snake is started with the default size
		state, err := manager.Start(ctx, "session-1", 0, nil)

		// Then: the snake runs on the configured grid
		require.NoError(t, err)
		assert.Equal(t, 10, state.Size)
		assert.Equal(t, entity.SnakeRunning, state.Status)
		assert.Equal(t, entity.Right, state.Direction)
		assert.Equal(t, entity.Point{}, state.Food)
	})

	t.Run("Start rejects an invalid size", func(t *testing.T) {
		manager, _, _ := newTestSnakeManager(t, time.Hour)

		_, err := manager.Start(ctx, "session-1", 2, nil)

		require.ErrorIs(t, err, apperror.ErrInvalidInput)
	})

	t.Run("Steer changes the direction", func(t *testing.T) {
		manager, _, _ := newTestSnakeManager(t, time.Hour)

		_, err := manager.Start(ctx, "session-1", 0, nil)
		require.NoError(t, err)

		// When: the snake is turned up
		state, err := manager.Steer(ctx, "session-1", "up")

		// Then: the new heading is reported
		require.NoError(t, err)
		assert.Equal(t, entity.Up, state.Direction)
	})

	t.Run("Steer rejects a reversal and keeps the state", func(t *testing.T) {
		manager, _, _ := newTestSnakeManager(t, time.Hour)

		_, err := manager.Start(ctx, "session-1", 0, nil)
		require.NoError(t, err)

		// When: the snake heading right is turned left
		state, err := manager.Steer(ctx, "session-1", "left")

		// Then: the command is an illegal move and the heading is unchanged
		require.ErrorIs(t, err, apperror.ErrReverseDirection)
		require.ErrorIs(t, err, apperror.ErrIllegalMove)
		assert.Equal(t, entity.Right, state.Direction)
	})

	t.Run("Steer rejects an unknown direction", func(t *testing.T) {
		manager, _, _ := newTestSnakeManager(t, time.Hour)

		_, err := manager.Start(ctx, "session-1", 0, nil)
		require.NoError(t, err)

		_, err = manager.Steer(ctx, "session-1", "north")

		require.ErrorIs(t, err, apperror.ErrInvalidInput)
	})

	t.Run("Commands need a started session", func(t *testing.T) {
		manager, _, _ := newTestSnakeManager(t, time.Hour)

		_, err := manager.Steer(ctx, "session-1", "up")
		require.ErrorIs(t, err, apperror.ErrNotFound)

		err = manager.Stop(ctx, "session-1")
		require.ErrorIs(t, err, ErrSnakeSessionNotFound)
	})

	t.Run("SetAutoPlay toggles the autopilot", func(t *testing.T) {
		manager, _, _ := newTestSnakeManager(t, time.Hour)

		_, err := manager.Start(ctx, "session-1", 0, nil)
		require.NoError(t, err)

		state, err := manager.SetAutoPlay(ctx, "session-1", true)

		require.NoError(t, err)
		assert.True(t, state.AutoPlay)
	})

	t.Run("Reset replaces the snake", func(t *testing.T) {
		manager, _, _ := newTestSnakeManager(t, time.Hour)

		started, err := manager.Start(ctx, "session-1", 8, nil)
		require.NoError(t, err)

		_, err = manager.Steer(ctx, "session-1", "down")
		require.NoError(t, err)

		// When: the session is reset
		state, err := manager.Reset(ctx, "session-1")

		// Then: a new snake of the same size heads right
		require.NoError(t, err)
		assert.NotEqual(t, started.ID, state.ID)
		assert.Equal(t, 8, state.Size)
		assert.Equal(t, entity.Right, state.Direction)
	})

	t.Run("Stop ends the loop", func(t *testing.T) {
		manager, _, _ := newTestSnakeManager(t, time.Hour)

		_, err := manager.Start(ctx, "session-1", 0, nil)
		require.NoError(t, err)

		require.NoError(t, manager.Stop(ctx, "session-1"))

		_, err = manager.Steer(ctx, "session-1", "up")
		require.ErrorIs(t, err, ErrSnakeSessionNotFound)
	})

	t.Run("Get reads the stored snake", func(t *testing.T) {
		manager, snakeRepo, _ := newTestSnakeManager(t, time.Hour)

		stored := entity.NewSnake("snake-1", 10)
		snakeRepo.EXPECT().GetBySessionID(mock.Anything, "session-1").Return(stored, nil).Once()

		state, err := manager.Get(ctx, "session-1")

		require.NoError(t, err)
		assert.Equal(t, stored, state)
	})
}

func TestSnakeManager_Loop(t *testing.T) {
	t.Run("Ticks are published until the snake hits the wall", func(t *testing.T) {
		// Given: a fast ticking manager on the smallest grid, food in the corner
		manager, _, resultRepo := newTestSnakeManager(t, 5*time.Millisecond)

		resultRepo.EXPECT().
			Append(mock.Anything, mock.MatchedBy(func(result *entity.Result) bool {
				return result.SessionID == "session-1" &&
					result.Kind == entity.KindSnake &&
					result.Outcome == entity.SnakeOver &&
					result.Moves == 3
			})).
			Return(nil).
			Once()

		frames := make(chan *entity.Snake, 16)
		publish := func(state *entity.Snake) {
			frames <- state
		}

		// When: the snake starts heading right from (1,2)
		_, err := manager.Start(context.Background(), "session-1", entity.MinSnakeSize, publish)
		require.NoError(t, err)

		// Then: it moves twice and dies on the third tick
		var heads []entity.Point
		for {
			select {
			case frame := <-frames:
				heads = append(heads, frame.Head())
				if frame.IsRunning() {
					continue
				}

				assert.Equal(t, []entity.Point{{Row: 1, Col: 3}, {Row: 1, Col: 4}, {Row: 1, Col: 4}}, heads)
				assert.Equal(t, 3, frame.Ticks)

				require.NoError(t, manager.Stop(context.Background(), "session-1"))
				return
			case <-time.After(frameTimeout):
				t.Fatal("no frame published")
			}
		}
	})

	t.Run("Canceled context ends the loop", func(t *testing.T) {
		manager, _, _ := newTestSnakeManager(t, time.Hour)

		ctx, cancel := context.WithCancel(context.Background())

		_, err := manager.Start(ctx, "session-1", 0, nil)
		require.NoError(t, err)

		// When: the owner of the session goes away
		cancel()

		// Then: commands are no longer accepted
		require.Eventually(t, func() bool {
			_, err = manager.Steer(context.Background(), "session-1", "up")
			return err != nil
		}, frameTimeout, 5*time.Millisecond)
		require.ErrorIs(t, err, ErrSnakeSessionNotFound)
	})
}

func TestSnakeManager_Lifecycle(t *testing.T) {
	ctx := context.Background()

	t.Run("Concurrent starts leave one loop per session", func(t *testing.T) {
		// Given: a fast ticking manager and many callers starting the same session
		manager, _, resultRepo := newTestSnakeManager(t, 2*time.Millisecond)
		resultRepo.EXPECT().Append(mock.Anything, mock.Anything).Return(nil).Maybe()

		const starters = 16
		var frames [starters]atomic.Int64

		var wg sync.WaitGroup
		for i := range starters {
			wg.Add(1)
			go func() {
				defer wg.Done()

				_, err := manager.Start(ctx, "session-1", entity.MaxSnakeSize, func(*entity.Snake) {
					frames[i].Add(1)
				})
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		// When: the surviving loop ticks a few more times
		var before [starters]int64
		for i := range starters {
			before[i] = frames[i].Load()
		}

		require.Eventually(t, func() bool {
			for i := range starters {
				if frames[i].Load() >= before[i]+3 {
					return true
				}
			}
			return false
		}, frameTimeout, time.Millisecond)

		// Then: exactly one publisher still receives frames
		ticking := 0
		for i := range starters {
			if frames[i].Load() > before[i] {
				ticking++
			}
		}
		assert.Equal(t, 1, ticking)

		manager.mu.Lock()
		assert.Len(t, manager.sessions, 1)
		manager.mu.Unlock()

		// And: Close stops it
		manager.Close()
	})

	t.Run("Start after Close is refused", func(t *testing.T) {
		manager, _, _ := newTestSnakeManager(t, time.Hour)

		manager.Close()

		_, err := manager.Start(ctx, "session-1", 0, nil)

		require.ErrorIs(t, err, ErrSnakeManagerClosed)
	})

	t.Run("Delete stops the loop and removes the snake", func(t *testing.T) {
		// Given: a running session
		manager, snakeRepo, _ := newTestSnakeManager(t, time.Hour)

		_, err := manager.Start(ctx, "session-1", 0, nil)
		require.NoError(t, err)

		snakeRepo.EXPECT().DeleteBySessionID(mock.Anything, "session-1").Return(nil).Once()

		// When: the session is deleted
		require.NoError(t, manager.Delete(ctx, "session-1"))

		// Then: the loop no longer accepts commands
		_, err = manager.Steer(ctx, "session-1", "up")
		require.ErrorIs(t, err, ErrSnakeSessionNotFound)
	})

	t.Run("Delete of an unknown session succeeds", func(t *testing.T) {
		manager, snakeRepo, _ := newTestSnakeManager(t, time.Hour)

		snakeRepo.EXPECT().DeleteBySessionID(mock.Anything, "session-1").Return(apperror.ErrNotFound).Once()

		require.NoError(t, manager.Delete(ctx, "session-1"))
	})
}

func TestSessionLocks(t *testing.T) {
	// Given: many goroutines updating a counter under the same session lock
	locks := newSessionLocks()

	var (
		wg      sync.WaitGroup
		counter int
	)

	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()

			unlock := locks.Lock("session-1")
			defer unlock()

			current := counter
			time.Sleep(time.Microsecond)
			counter = current + 1
		}()
	}

	wg.Wait()

	// Then: no update was lost and the lock table is empty again
	assert.Equal(t, 50, counter)
	assert.Empty(t, locks.locks)
}
