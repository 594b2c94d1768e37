package storage

import (
	"context"
	"database/sql"
	"fmt"

	// import the SQLite driver to register it with the database/sql package.
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

type Storage struct {
	Connection *sql.DB
}

func NewSQLiteStorage(path string) (*Storage, error) {
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("can't open database: %w", err)
	}

	if err = conn.Ping(); err != nil {
		return nil, fmt.Errorf("can't connect to database: %w", err)
	}

	// a single writer keeps appends ordered
	conn.SetMaxOpenConns(1)

	return &Storage{Connection: conn}, nil
}

func (that *Storage) Init(ctx context.Context) error {
	query := `CREATE TABLE IF NOT EXISTS results (
		session_id  TEXT    NOT NULL,
		game_id     TEXT    NOT NULL,
		kind        TEXT    NOT NULL,
		outcome     TEXT    NOT NULL,
		winner      TEXT    NOT NULL DEFAULT '',
		score       INTEGER NOT NULL DEFAULT 0,
		moves       INTEGER NOT NULL DEFAULT 0,
		finished_at INTEGER NOT NULL,
		PRIMARY KEY (session_id, game_id)
	)`

	_, err := that.Connection.ExecContext(ctx, query)
	if err != nil {
		return fmt.Errorf("can't create table: %w", err)
	}

	return nil
}

func (that *Storage) Close() error {
	if err := that.Connection.Close(); err != nil {
		return fmt.Errorf("can't close database: %w", err)
	}
	return nil
}
