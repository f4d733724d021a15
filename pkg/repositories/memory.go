package repositories

import (
	"context"
	"sync"
)

// InMemoryRepository keeps clear records in memory. Used in tests and as the
// fallback when no records path is configured.
type InMemoryRepository struct {
	lock    sync.Mutex
	records []ClearRecord
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) SaveClear(ctx context.Context, record ClearRecord) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.records = append(r.records, record)
	return nil
}

func (r *InMemoryRepository) BestClear(ctx context.Context, puzzle string) (*ClearRecord, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	var best *ClearRecord
	for i := range r.records {
		record := r.records[i]
		if record.Puzzle != puzzle {
			continue
		}
		if best == nil || record.Elapsed < best.Elapsed {
			best = &record
		}
	}
	return best, nil
}

func (r *InMemoryRepository) Close(ctx context.Context) error {
	return nil
}
