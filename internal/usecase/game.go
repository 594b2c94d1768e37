package usecase

import (
	"context"

	"github.com/rocketscienceinc/gridgame-backend/internal/entity"
	"github.com/rocketscienceinc/gridgame-backend/internal/opponent"
)

type GameUseCase interface {
	NewGame(ctx context.Context, sessionID string, opts Options) (*entity.Game, error)
	GetGame(ctx context.Context, sessionID string) (*entity.Game, error)
	GetOrCreateGame(ctx context.Context, sessionID string) (*entity.Game, error)
	MakeTurn(ctx context.Context, sessionID string, cell int) (*entity.Game, error)
	ResetGame(ctx context.Context, sessionID string) (*entity.Game, error)
	Replay(ctx context.Context, sessionID string) ([]*entity.Game, error)

	GetScore(ctx context.Context, sessionID string) (*entity.Score, error)
	ResetScore(ctx context.Context, sessionID string) (*entity.Score, error)

	DeleteSession(ctx context.Context, sessionID string) error
}

type SnakeUseCase interface {
	Start(ctx context.Context, sessionID string, size int, publish Publisher) (*entity.Snake, error)
	Steer(ctx context.Context, sessionID string, direction string) (*entity.Snake, error)
	SetAutoPlay(ctx context.Context, sessionID string, enabled bool) (*entity.Snake, error)
	Reset(ctx context.Context, sessionID string) (*entity.Snake, error)
	Stop(ctx context.Context, sessionID string) error
	Get(ctx context.Context, sessionID string) (*entity.Snake, error)
	Delete(ctx context.Context, sessionID string) error
}

// Publisher receives every snake frame produced by a session loop.
type Publisher func(state *entity.Snake)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, sessionID string, game *entity.Game) error
	GetBySessionID(ctx context.Context, sessionID string) (*entity.Game, error)
	DeleteBySessionID(ctx context.Context, sessionID string) error
}

type snakeRepo interface {
	CreateOrUpdate(ctx context.Context, sessionID string, snake *entity.Snake) error
	GetBySessionID(ctx context.Context, sessionID string) (*entity.Snake, error)
	DeleteBySessionID(ctx context.Context, sessionID string) error
}

type scoreRepo interface {
	Save(ctx context.Context, sessionID string, score *entity.Score) error
	Get(ctx context.Context, sessionID string) (*entity.Score, error)
	DeleteBySessionID(ctx context.Context, sessionID string) error
}

type resultRepo interface {
	Append(ctx context.Context, result *entity.Result) error
}

type strategyRegistry interface {
	Get(name string) (opponent.Strategy, error)
}
