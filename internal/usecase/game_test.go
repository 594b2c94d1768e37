package usecase

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gridgame-backend/internal/apperror"
	"github.com/rocketscienceinc/gridgame-backend/internal/entity"
	"github.com/rocketscienceinc/gridgame-backend/internal/metrics"
	"github.com/rocketscienceinc/gridgame-backend/internal/opponent"
	"github.com/rocketscienceinc/gridgame-backend/internal/rng"
	mockedUseCase "github.com/rocketscienceinc/gridgame-backend/mocks/usecase"
)

var errRedisDown = errors.New("redis down")

type gameManagerMocks struct {
	gameRepo   *mockedUseCase.MockgameRepo
	scoreRepo  *mockedUseCase.MockscoreRepo
	resultRepo *mockedUseCase.MockresultRepo
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

// newTestGameManager wires mocked repositories and a registry whose random
// strategy always picks the first empty cell.
func newTestGameManager(t *testing.T, conf GameManagerConfig) (*GameManager, gameManagerMocks) {
	t.Helper()

	mocks := gameManagerMocks{
		gameRepo:   mockedUseCase.NewMockgameRepo(t),
		scoreRepo:  mockedUseCase.NewMockscoreRepo(t),
		resultRepo: mockedUseCase.NewMockresultRepo(t),
	}

	manager := NewGameManager(
		newTestLogger(),
		conf,
		mocks.gameRepo,
		mocks.scoreRepo,
		mocks.resultRepo,
		opponent.NewRegistry(rng.NewSequence(0), 0),
	)
	manager.now = func() time.Time { return time.UnixMilli(1_700_000_000_000) }

	return manager, mocks
}

func gameOf(mode, strategy string, board ...string) *entity.Game {
	game := entity.NewGame("game-1", 3)
	game.Mode = mode
	game.Strategy = strategy

	xCount, oCount := 0, 0
	for i, cell := range board {
		switch cell {
		case entity.PlayerX:
			xCount++
			game.History = append(game.History, entity.Move{Mark: entity.PlayerX, Cell: i})
		case entity.PlayerO:
			oCount++
			game.History = append(game.History, entity.Move{Mark: entity.PlayerO, Cell: i})
		}
		game.Board[i] = cell
	}

	if xCount > oCount {
		game.Turn = entity.PlayerO
	}

	return game
}

func TestGameManager_NewGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates a pvp game with defaults", func(t *testing.T) {
		// Given: a manager with a 4x4 default board
		manager, mocks := newTestGameManager(t, GameManagerConfig{BoardSize: 4})

		mocks.gameRepo.EXPECT().
			CreateOrUpdate(mock.Anything, "session-1", mock.MatchedBy(func(game *entity.Game) bool {
				return game.Size == 4 && game.Mode == entity.ModePvP && game.Strategy == ""
			})).
			Return(nil).
			Once()

		// When: a new game is requested without options
		game, err := manager.NewGame(ctx, "session-1", Options{})

		// Then: a fresh board is returned
		require.NoError(t, err)
		assert.NotEmpty(t, game.ID)
		assert.Equal(t, entity.PlayerX, game.Turn)
		assert.Equal(t, entity.StatusOngoing, game.Status)
		assert.Len(t, game.Board, 16)
	})

	t.Run("Bot game gets the default strategy", func(t *testing.T) {
		manager, mocks := newTestGameManager(t, GameManagerConfig{DefaultStrategy: entity.StrategyMinimax})

		mocks.gameRepo.EXPECT().
			CreateOrUpdate(mock.Anything, "session-1", mock.AnythingOfType("*entity.Game")).
			Return(nil).
			Once()

		game, err := manager.NewGame(ctx, "session-1", Options{Mode: entity.ModeBot})

		require.NoError(t, err)
		assert.Equal(t, entity.ModeBot, game.Mode)
		assert.Equal(t, entity.StrategyMinimax, game.Strategy)
	})

	t.Run("Rejects invalid options", func(t *testing.T) {
		tests := []struct {
			name string
			opts Options
		}{
			{name: "unknown mode", opts: Options{Mode: "solo"}},
			{name: "unknown strategy", opts: Options{Mode: entity.ModeBot, Strategy: "genius"}},
			{name: "board too small", opts: Options{Size: 2}},
			{name: "board too large", opts: Options{Size: entity.MaxBoardSize + 1}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				// Given: a manager whose repository must not be touched
				manager, _ := newTestGameManager(t, GameManagerConfig{})

				// When: the game is created with invalid options
				game, err := manager.NewGame(ctx, "session-1", tt.opts)

				// Then: an invalid input error is returned
				require.ErrorIs(t, err, apperror.ErrInvalidInput)
				assert.Nil(t, game)
			})
		}
	})
}

func TestGameManager_GetOrCreateGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns the stored game", func(t *testing.T) {
		manager, mocks := newTestGameManager(t, GameManagerConfig{})

		stored := gameOf(entity.ModePvP, "", entity.PlayerX)
		mocks.gameRepo.EXPECT().GetBySessionID(mock.Anything, "session-1").Return(stored, nil).Once()

		game, err := manager.GetOrCreateGame(ctx, "session-1")

		require.NoError(t, err)
		assert.Equal(t, stored, game)
	})

	t.Run("Creates a game on first use", func(t *testing.T) {
		manager, mocks := newTestGameManager(t, GameManagerConfig{})

		mocks.gameRepo.EXPECT().
			GetBySessionID(mock.Anything, "session-1").
			Return((*entity.Game)(nil), apperror.ErrNotFound).
			Once()
		mocks.gameRepo.EXPECT().
			CreateOrUpdate(mock.Anything, "session-1", mock.AnythingOfType("*entity.Game")).
			Return(nil).
			Once()

		game, err := manager.GetOrCreateGame(ctx, "session-1")

		require.NoError(t, err)
		assert.Equal(t, entity.ModePvP, game.Mode)
	})

	t.Run("Returns storage errors", func(t *testing.T) {
		manager, mocks := newTestGameManager(t, GameManagerConfig{})

		mocks.gameRepo.EXPECT().
			GetBySessionID(mock.Anything, "session-1").
			Return((*entity.Game)(nil), errRedisDown).
			Once()

		_, err := manager.GetOrCreateGame(ctx, "session-1")

		require.ErrorIs(t, err, errRedisDown)
	})
}

func TestGameManager_MakeTurn(t *testing.T) {
	ctx := context.Background()

	t.Run("Accepts a pvp move", func(t *testing.T) {
		// Given: an empty pvp game
		manager, mocks := newTestGameManager(t, GameManagerConfig{})

		mocks.gameRepo.EXPECT().
			GetBySessionID(mock.Anything, "session-1").
			Return(gameOf(entity.ModePvP, ""), nil).
			Once()
		mocks.gameRepo.EXPECT().
			CreateOrUpdate(mock.Anything, "session-1", mock.MatchedBy(func(game *entity.Game) bool {
				return game.Board[4] == entity.PlayerX && game.Turn == entity.PlayerO
			})).
			Return(nil).
			Once()

		// When: X plays the center
		game, err := manager.MakeTurn(ctx, "session-1", 4)

		// Then: the move is applied and O is next
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerX, game.Board[4])
		assert.Equal(t, entity.PlayerO, game.Turn)
	})

	t.Run("Rejects an occupied cell and keeps the state", func(t *testing.T) {
		manager, mocks := newTestGameManager(t, GameManagerConfig{})

		stored := gameOf(entity.ModePvP, "", "", "", "", "", entity.PlayerX)
		mocks.gameRepo.EXPECT().GetBySessionID(mock.Anything, "session-1").Return(stored, nil).Once()

		// When: O plays the occupied center
		game, err := manager.MakeTurn(ctx, "session-1", 4)

		// Then: the move is rejected and nothing is saved
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		require.ErrorIs(t, err, apperror.ErrIllegalMove)
		assert.Equal(t, stored, game)
	})

	t.Run("Bot answers a human move", func(t *testing.T) {
		// Given: an empty bot game with a random bot that picks the first empty cell
		manager, mocks := newTestGameManager(t, GameManagerConfig{})

		mocks.gameRepo.EXPECT().
			GetBySessionID(mock.Anything, "session-1").
			Return(gameOf(entity.ModeBot, entity.StrategyRandom), nil).
			Once()
		mocks.gameRepo.EXPECT().
			CreateOrUpdate(mock.Anything, "session-1", mock.AnythingOfType("*entity.Game")).
			Return(nil).
			Twice()

		// When: the human plays the center
		game, err := manager.MakeTurn(ctx, "session-1", 4)

		// Then: the bot took the first empty cell and it is the human's turn again
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerX, game.Board[4])
		assert.Equal(t, entity.PlayerO, game.Board[0])
		assert.Equal(t, entity.PlayerX, game.Turn)
		assert.Len(t, game.History, 2)
	})

	t.Run("Winning move updates the score and the ledger", func(t *testing.T) {
		// Given: X about to complete the top row
		manager, mocks := newTestGameManager(t, GameManagerConfig{})

		stored := gameOf(entity.ModePvP, "",
			entity.PlayerX, entity.PlayerX, "",
			entity.PlayerO, entity.PlayerO, "",
		)
		mocks.gameRepo.EXPECT().GetBySessionID(mock.Anything, "session-1").Return(stored, nil).Once()
		mocks.gameRepo.EXPECT().
			CreateOrUpdate(mock.Anything, "session-1", mock.AnythingOfType("*entity.Game")).
			Return(nil).
			Once()
		mocks.scoreRepo.EXPECT().
			Get(mock.Anything, "session-1").
			Return(&entity.Score{X: 1, Draws: 2}, nil).
			Once()
		mocks.scoreRepo.EXPECT().
			Save(mock.Anything, "session-1", &entity.Score{X: 2, Draws: 2}).
			Return(nil).
			Once()
		mocks.resultRepo.EXPECT().
			Append(mock.Anything, &entity.Result{
				SessionID:  "session-1",
				GameID:     "game-1",
				Kind:       entity.KindTicTacToe,
				Outcome:    entity.StatusWon,
				Winner:     entity.PlayerX,
				Moves:      5,
				FinishedAt: time.UnixMilli(1_700_000_000_000).UTC(),
			}).
			Return(nil).
			Once()

		// When: X plays the last cell of the row
		game, err := manager.MakeTurn(ctx, "session-1", 2)

		// Then: X wins with the top row
		require.NoError(t, err)
		assert.Equal(t, entity.StatusWon, game.Status)
		assert.Equal(t, entity.PlayerX, game.Winner)
		assert.Equal(t, []int{0, 1, 2}, game.Line)
	})

	t.Run("Duplicate ledger write does not fail the move", func(t *testing.T) {
		manager, mocks := newTestGameManager(t, GameManagerConfig{})

		stored := gameOf(entity.ModePvP, "",
			entity.PlayerX, entity.PlayerX, "",
			entity.PlayerO, entity.PlayerO, "",
		)
		mocks.gameRepo.EXPECT().GetBySessionID(mock.Anything, "session-1").Return(stored, nil).Once()
		mocks.gameRepo.EXPECT().CreateOrUpdate(mock.Anything, "session-1", mock.Anything).Return(nil).Once()
		mocks.scoreRepo.EXPECT().Get(mock.Anything, "session-1").Return(&entity.Score{}, nil).Once()
		mocks.scoreRepo.EXPECT().Save(mock.Anything, "session-1", mock.Anything).Return(nil).Once()
		mocks.resultRepo.EXPECT().Append(mock.Anything, mock.Anything).Return(apperror.ErrDuplicateRecord).Once()

		game, err := manager.MakeTurn(ctx, "session-1", 2)

		require.NoError(t, err)
		assert.True(t, game.IsFinished())
	})

	t.Run("Move on the bot's turn is rejected after the bot catches up", func(t *testing.T) {
		// Given: a bot game left on the bot's turn
		manager, mocks := newTestGameManager(t, GameManagerConfig{})

		stored := gameOf(entity.ModeBot, entity.StrategyRandom, "", "", "", "", entity.PlayerX)
		mocks.gameRepo.EXPECT().GetBySessionID(mock.Anything, "session-1").Return(stored, nil).Once()
		mocks.gameRepo.EXPECT().
			CreateOrUpdate(mock.Anything, "session-1", mock.MatchedBy(func(game *entity.Game) bool {
				return game.Board[0] == entity.PlayerO
			})).
			Return(nil).
			Once()

		accepted := testutil.ToFloat64(metrics.Moves(metrics.GameTicTacToe, metrics.ResultAccepted))
		rejected := testutil.ToFloat64(metrics.Moves(metrics.GameTicTacToe, metrics.ResultRejected))

		// When: the human tries to move
		game, err := manager.MakeTurn(ctx, "session-1", 8)

		// Then: the move is rejected but the bot has moved
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Equal(t, entity.EmptyCell, game.Board[8])
		assert.Equal(t, entity.PlayerO, game.Board[0])
		assert.Equal(t, entity.PlayerX, game.Turn)

		// And: the human move counts as rejected, the bot move as accepted
		assert.InDelta(t, rejected+1, testutil.ToFloat64(metrics.Moves(metrics.GameTicTacToe, metrics.ResultRejected)), 0)
		assert.InDelta(t, accepted+1, testutil.ToFloat64(metrics.Moves(metrics.GameTicTacToe, metrics.ResultAccepted)), 0)
	})

	t.Run("Canceled context interrupts the bot delay", func(t *testing.T) {
		// Given: a long bot delay and a context that is already canceled
		manager, mocks := newTestGameManager(t, GameManagerConfig{BotDelay: time.Hour})

		canceled, cancel := context.WithCancel(ctx)
		cancel()

		mocks.gameRepo.EXPECT().
			GetBySessionID(mock.Anything, "session-1").
			Return(gameOf(entity.ModeBot, entity.StrategyRandom), nil).
			Once()
		mocks.gameRepo.EXPECT().
			CreateOrUpdate(mock.Anything, "session-1", mock.AnythingOfType("*entity.Game")).
			Return(nil).
			Once()

		// When: the human moves
		_, err := manager.MakeTurn(canceled, "session-1", 4)

		// Then: the human move was saved and the bot gave up
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("Move on a finished game is rejected", func(t *testing.T) {
		manager, mocks := newTestGameManager(t, GameManagerConfig{})

		stored := gameOf(entity.ModePvP, "")
		stored.Status = entity.StatusDrawn
		mocks.gameRepo.EXPECT().GetBySessionID(mock.Anything, "session-1").Return(stored, nil).Once()

		_, err := manager.MakeTurn(ctx, "session-1", 0)

		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}

func TestGameManager_ResetGame(t *testing.T) {
	ctx := context.Background()

	// Given: a finished 4x4 minimax game
	manager, mocks := newTestGameManager(t, GameManagerConfig{})

	stored := entity.NewGame("game-1", 4)
	stored.Mode = entity.ModeBot
	stored.Strategy = entity.StrategyMinimax
	stored.Status = entity.StatusDrawn

	mocks.gameRepo.EXPECT().GetBySessionID(mock.Anything, "session-1").Return(stored, nil).Once()
	mocks.gameRepo.EXPECT().
		CreateOrUpdate(mock.Anything, "session-1", mock.AnythingOfType("*entity.Game")).
		Return(nil).
		Once()

	// When: the game is reset
	game, err := manager.ResetGame(ctx, "session-1")

	// Then: a new ongoing game keeps the options
	require.NoError(t, err)
	assert.NotEqual(t, stored.ID, game.ID)
	assert.Equal(t, entity.StatusOngoing, game.Status)
	assert.Equal(t, 4, game.Size)
	assert.Equal(t, entity.ModeBot, game.Mode)
	assert.Equal(t, entity.StrategyMinimax, game.Strategy)
}

func TestGameManager_Replay(t *testing.T) {
	ctx := context.Background()

	manager, mocks := newTestGameManager(t, GameManagerConfig{})

	stored := gameOf(entity.ModePvP, "", entity.PlayerX, "", "", "", entity.PlayerO)
	stored.History = []entity.Move{{Mark: entity.PlayerX, Cell: 0}, {Mark: entity.PlayerO, Cell: 4}}
	mocks.gameRepo.EXPECT().GetBySessionID(mock.Anything, "session-1").Return(stored, nil).Once()

	states, err := manager.Replay(ctx, "session-1")

	require.NoError(t, err)
	require.Len(t, states, 3)
	assert.Equal(t, stored.Board, states[2].Board)
	assert.Equal(t, stored.Turn, states[2].Turn)
}

func TestGameManager_Score(t *testing.T) {
	ctx := context.Background()

	t.Run("GetScore returns the stored tally", func(t *testing.T) {
		manager, mocks := newTestGameManager(t, GameManagerConfig{})

		mocks.scoreRepo.EXPECT().Get(mock.Anything, "session-1").Return(&entity.Score{O: 3}, nil).Once()

		score, err := manager.GetScore(ctx, "session-1")

		require.NoError(t, err)
		assert.Equal(t, &entity.Score{O: 3}, score)
	})

	t.Run("ResetScore saves a zero tally", func(t *testing.T) {
		manager, mocks := newTestGameManager(t, GameManagerConfig{})

		mocks.scoreRepo.EXPECT().Save(mock.Anything, "session-1", &entity.Score{}).Return(nil).Once()

		score, err := manager.ResetScore(ctx, "session-1")

		require.NoError(t, err)
		assert.Equal(t, &entity.Score{}, score)
	})
}

func TestGameManager_DeleteSession(t *testing.T) {
	ctx := context.Background()

	t.Run("Removes the game and the score", func(t *testing.T) {
		// Given: a session with a stored game and score
		manager, mocks := newTestGameManager(t, GameManagerConfig{})

		mocks.gameRepo.EXPECT().DeleteBySessionID(mock.Anything, "session-1").Return(nil).Once()
		mocks.scoreRepo.EXPECT().DeleteBySessionID(mock.Anything, "session-1").Return(nil).Once()

		// When: the session is deleted
		err := manager.DeleteSession(ctx, "session-1")

		// Then: both records are removed
		require.NoError(t, err)
	})

	t.Run("Missing game is not an error", func(t *testing.T) {
		manager, mocks := newTestGameManager(t, GameManagerConfig{})

		mocks.gameRepo.EXPECT().DeleteBySessionID(mock.Anything, "session-1").Return(apperror.ErrNotFound).Once()
		mocks.scoreRepo.EXPECT().DeleteBySessionID(mock.Anything, "session-1").Return(nil).Once()

		err := manager.DeleteSession(ctx, "session-1")

		require.NoError(t, err)
	})

	t.Run("Storage failure is returned", func(t *testing.T) {
		manager, mocks := newTestGameManager(t, GameManagerConfig{})

		mocks.gameRepo.EXPECT().DeleteBySessionID(mock.Anything, "session-1").Return(errRedisDown).Once()

		err := manager.DeleteSession(ctx, "session-1")

		require.ErrorIs(t, err, errRedisDown)
	})
}
