package repositories

import (
	"context"
	"time"
)

// ClearRecord is one completed run of a puzzle.
type ClearRecord struct {
	Puzzle    string
	Moves     int
	Elapsed   time.Duration
	ClearedAt time.Time
}

// Repository stores clear records.
type Repository interface {
	// SaveClear records a completed run.
	SaveClear(ctx context.Context, record ClearRecord) error
	// BestClear returns the fastest recorded run for a puzzle, or nil when
	// the puzzle has never been cleared.
	BestClear(ctx context.Context, puzzle string) (*ClearRecord, error)
	Close(ctx context.Context) error
}
