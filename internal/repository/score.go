package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/gridgame-backend/internal/entity"
)

type ScoreRepository interface {
	Save(ctx context.Context, sessionID string, score *entity.Score) error
	// Get returns a zero score for sessions that never finished a game.
	Get(ctx context.Context, sessionID string) (*entity.Score, error)
	DeleteBySessionID(ctx context.Context, sessionID string) error
}

type dbScore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewScoreRepository(client *redis.Client, ttl time.Duration) ScoreRepository {
	return &dbScore{
		client: client,
		ttl:    ttl,
	}
}

func scoreKey(sessionID string) string {
	return "score:" + sessionID
}

func (that *dbScore) Save(ctx context.Context, sessionID string, score *entity.Score) error {
	scoreJSON, err := json.Marshal(score)
	if err != nil {
		return fmt.Errorf("could not marshal score: %w", err)
	}

	if err = that.client.Set(ctx, scoreKey(sessionID), scoreJSON, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set score: %w", err)
	}

	return nil
}

func (that *dbScore) Get(ctx context.Context, sessionID string) (*entity.Score, error) {
	response, err := that.client.Get(ctx, scoreKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return &entity.Score{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get score: %w", err)
	}

	var score entity.Score
	if err = json.Unmarshal([]byte(response), &score); err != nil {
		return nil, fmt.Errorf("failed to unmarshal score: %w", err)
	}

	return &score, nil
}

func (that *dbScore) DeleteBySessionID(ctx context.Context, sessionID string) error {
	if err := that.client.Del(ctx, scoreKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete score: %w", err)
	}

	return nil
}
