package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/gridgame-backend/internal/apperror"
	"github.com/rocketscienceinc/gridgame-backend/internal/entity"
)

var ErrGameNotFound = fmt.Errorf("game %w", apperror.ErrNotFound)

type GameRepository interface {
	CreateOrUpdate(ctx context.Context, sessionID string, game *entity.Game) error
	GetBySessionID(ctx context.Context, sessionID string) (*entity.Game, error)
	DeleteBySessionID(ctx context.Context, sessionID string) error
}

type dbGame struct {
	client *redis.Client
	ttl    time.Duration
}

func NewGameRepository(client *redis.Client, ttl time.Duration) GameRepository {
	return &dbGame{
		client: client,
		ttl:    ttl,
	}
}

func gameKey(sessionID string) string {
	return "ttt:" + sessionID
}

func (that *dbGame) CreateOrUpdate(ctx context.Context, sessionID string, game *entity.Game) error {
	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	if err = that.client.Set(ctx, gameKey(sessionID), gameJSON, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set game: %w", err)
	}

	return nil
}

func (that *dbGame) GetBySessionID(ctx context.Context, sessionID string) (*entity.Game, error) {
	response, err := that.client.Get(ctx, gameKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrGameNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game by session id: %w", err)
	}

	var existingGame entity.Game
	if err = json.Unmarshal([]byte(response), &existingGame); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &existingGame, nil
}

func (that *dbGame) DeleteBySessionID(ctx context.Context, sessionID string) error {
	deleted, err := that.client.Del(ctx, gameKey(sessionID)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete game by session id: %w", err)
	}

	if deleted == 0 {
		return ErrGameNotFound
	}

	return nil
}
