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

var ErrSnakeNotFound = fmt.Errorf("snake %w", apperror.ErrNotFound)

type SnakeRepository interface {
	CreateOrUpdate(ctx context.Context, sessionID string, snake *entity.Snake) error
	GetBySessionID(ctx context.Context, sessionID string) (*entity.Snake, error)
	DeleteBySessionID(ctx context.Context, sessionID string) error
}

type dbSnake struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSnakeRepository(client *redis.Client, ttl time.Duration) SnakeRepository {
	return &dbSnake{
		client: client,
		ttl:    ttl,
	}
}

func snakeKey(sessionID string) string {
	return "snake:" + sessionID
}

func (that *dbSnake) CreateOrUpdate(ctx context.Context, sessionID string, snake *entity.Snake) error {
	snakeJSON, err := json.Marshal(snake)
	if err != nil {
		return fmt.Errorf("could not marshal snake: %w", err)
	}

	if err = that.client.Set(ctx, snakeKey(sessionID), snakeJSON, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set snake: %w", err)
	}

	return nil
}

func (that *dbSnake) GetBySessionID(ctx context.Context, sessionID string) (*entity.Snake, error) {
	response, err := that.client.Get(ctx, snakeKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSnakeNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get snake by session id: %w", err)
	}

	var existing entity.Snake
	if err = json.Unmarshal([]byte(response), &existing); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snake: %w", err)
	}

	return &existing, nil
}

func (that *dbSnake) DeleteBySessionID(ctx context.Context, sessionID string) error {
	if err := that.client.Del(ctx, snakeKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete snake by session id: %w", err)
	}

	return nil
}
