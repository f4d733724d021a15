package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const clearsSchema = `
CREATE TABLE IF NOT EXISTS clears (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	puzzle TEXT NOT NULL,
	moves INTEGER NOT NULL,
	elapsed_ms INTEGER NOT NULL,
	cleared_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_clears_puzzle ON clears (puzzle, elapsed_ms);
`

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(ctx context.Context, path string) (Repository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}

	if _, err := db.ExecContext(ctx, clearsSchema); err != nil {
		return nil, fmt.Errorf("failed to apply schema: %v", err)
	}

	return &SQLiteRepository{
		db: db,
	}, nil
}

func (r *SQLiteRepository) SaveClear(ctx context.Context, record ClearRecord) error {
	q := `
	INSERT INTO clears (puzzle, moves, elapsed_ms, cleared_at)
	VALUES (?, ?, ?, ?);
	`
	_, err := r.db.ExecContext(ctx, q, record.Puzzle, record.Moves, record.Elapsed.Milliseconds(), record.ClearedAt.Unix())
	if err != nil {
		return fmt.Errorf("failed to insert clear record: %v", err)
	}
	return nil
}

func (r *SQLiteRepository) BestClear(ctx context.Context, puzzle string) (*ClearRecord, error) {
	q := `
	SELECT moves, elapsed_ms, cleared_at FROM clears
	WHERE puzzle = ?
	ORDER BY elapsed_ms ASC
	LIMIT 1;
	`
	row := r.db.QueryRowContext(ctx, q, puzzle)

	var moves int
	var elapsedMS, clearedAt int64
	if err := row.Scan(&moves, &elapsedMS, &clearedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query best clear: %v", err)
	}

	return &ClearRecord{
		Puzzle:    puzzle,
		Moves:     moves,
		Elapsed:   time.Duration(elapsedMS) * time.Millisecond,
		ClearedAt: time.Unix(clearedAt, 0),
	}, nil
}

func (r *SQLiteRepository) Close(ctx context.Context) error {
	return r.db.Close()
}
