package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/gridgame-backend/internal/config"
	"github.com/rocketscienceinc/gridgame-backend/internal/opponent"
	"github.com/rocketscienceinc/gridgame-backend/internal/repository"
	"github.com/rocketscienceinc/gridgame-backend/internal/repository/storage"
	"github.com/rocketscienceinc/gridgame-backend/internal/rng"
	"github.com/rocketscienceinc/gridgame-backend/internal/usecase"
	"github.com/rocketscienceinc/gridgame-backend/transport/rest"
	"github.com/rocketscienceinc/gridgame-backend/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	if conf.Redis.Host == "" || conf.Redis.Port == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.New(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	sqliteStorage, err := storage.NewSQLiteStorage(conf.SQLiteStoragePath)
	if err != nil {
		return fmt.Errorf("could not open sqlite storage: %w", err)
	}

	defer func() {
		if err = sqliteStorage.Close(); err != nil {
			log.Error("could not close sqlite storage", "error", err)
		}
	}()

	if err = sqliteStorage.Init(ctx); err != nil {
		return fmt.Errorf("could not init sqlite storage: %w", err)
	}

	gameRepo := repository.NewGameRepository(redisStorage, conf.Session.TTL)
	snakeRepo := repository.NewSnakeRepository(redisStorage, conf.Session.TTL)
	scoreRepo := repository.NewScoreRepository(redisStorage, conf.Session.TTL)
	resultRepo := repository.NewResultRepository(sqliteStorage.Connection)

	source := rng.New(conf.RandomSeed)
	strategies := opponent.NewRegistry(source, conf.TicTacToe.MinimaxDepth)

	gameUseCase := usecase.NewGameManager(logger, usecase.GameManagerConfig{
		BoardSize:       conf.TicTacToe.BoardSize,
		BotDelay:        conf.TicTacToe.BotDelay,
		DefaultStrategy: conf.TicTacToe.DefaultStrategy,
	}, gameRepo, scoreRepo, resultRepo, strategies)

	snakeUseCase := usecase.NewSnakeManager(logger, usecase.SnakeManagerConfig{
		GridSize:     conf.Snake.GridSize,
		TickInterval: conf.Snake.TickInterval,
	}, snakeRepo, resultRepo, source)
	defer snakeUseCase.Close()

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		restServer := rest.New(logger, gameUseCase, snakeUseCase, resultRepo)
		if httpErr := restServer.Start(ctx, conf.HTTPPort); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		wsServer := websocket.New(logger, gameUseCase, snakeUseCase)
		if wsErr := wsServer.Start(ctx, conf.SocketPort); wsErr != nil {
			log.Error("WebSocket server error", "error", wsErr)
			wsErrCh <- wsErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err = <-wsErrCh:
		return fmt.Errorf("WebSocket server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
