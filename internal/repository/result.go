package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rocketscienceinc/gridgame-backend/internal/apperror"
	"github.com/rocketscienceinc/gridgame-backend/internal/entity"
)

type ResultRepository interface {
	Append(ctx context.Context, result *entity.Result) error
	ListBySession(ctx context.Context, sessionID string, limit int) ([]*entity.Result, error)
}

type resultRepository struct {
	conn *sql.DB
}

func NewResultRepository(conn *sql.DB) ResultRepository {
	return &resultRepository{
		conn: conn,
	}
}

func (that *resultRepository) Append(ctx context.Context, result *entity.Result) error {
	query := `INSERT OR IGNORE INTO results
		(session_id, game_id, kind, outcome, winner, score, moves, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	res, err := that.conn.ExecContext(ctx, query,
		result.SessionID,
		result.GameID,
		result.Kind,
		result.Outcome,
		result.Winner,
		result.Score,
		result.Moves,
		result.FinishedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("can't save result: %w", err)
	}

	inserted, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("can't count saved results: %w", err)
	}

	if inserted == 0 {
		return fmt.Errorf("%w: game %s of session %s", apperror.ErrDuplicateRecord, result.GameID, result.SessionID)
	}

	return nil
}

func (that *resultRepository) ListBySession(ctx context.Context, sessionID string, limit int) ([]*entity.Result, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit %d", apperror.ErrInvalidInput, limit)
	}

	query := `SELECT session_id, game_id, kind, outcome, winner, score, moves, finished_at
		FROM results WHERE session_id = ?
		ORDER BY finished_at DESC, rowid DESC
		LIMIT ?`

	rows, err := that.conn.QueryContext(ctx, query, sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("can't list results: %w", err)
	}
	defer rows.Close()

	results := make([]*entity.Result, 0, limit)
	for rows.Next() {
		var (
			result     entity.Result
			finishedAt int64
		)

		if err = rows.Scan(
			&result.SessionID,
			&result.GameID,
			&result.Kind,
			&result.Outcome,
			&result.Winner,
			&result.Score,
			&result.Moves,
			&finishedAt,
		); err != nil {
			return nil, fmt.Errorf("can't scan result: %w", err)
		}

		result.FinishedAt = time.UnixMilli(finishedAt).UTC()
		results = append(results, &result)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't read results: %w", err)
	}

	return results, nil
}
