package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryRepository_BestClear(t *testing.T) {
	ctx := context.Background()
	r := NewInMemoryRepository()

	best, err := r.BestClear(ctx, "crossing-7x7")
	require.NoError(t, err)
	assert.Nil(t, best, "no record before any clear")

	require.NoError(t, r.SaveClear(ctx, ClearRecord{Puzzle: "crossing-7x7", Moves: 12, Elapsed: 90 * time.Second}))
	require.NoError(t, r.SaveClear(ctx, ClearRecord{Puzzle: "crossing-7x7", Moves: 9, Elapsed: 61 * time.Second}))
	require.NoError(t, r.SaveClear(ctx, ClearRecord{Puzzle: "other", Moves: 3, Elapsed: 10 * time.Second}))

	best, err = r.BestClear(ctx, "crossing-7x7")
	require.NoError(t, err)
	require.NotNil(t, best)
	assert.Equal(t, 61*time.Second, best.Elapsed)
	assert.Equal(t, 9, best.Moves)
}
