package ingest

import (
	"context"
	"sync"
)

// MemoryRepo stores call records in a slice, for tests.
type MemoryRepo struct {
	mu    sync.Mutex
	Calls []CallRecord

	FailInsert error
}

func NewMemoryRepo() *MemoryRepo { return &MemoryRepo{} }

func (r *MemoryRepo) InsertCall(ctx context.Context, rec CallRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailInsert != nil {
		return r.FailInsert
	}
	r.Calls = append(r.Calls, rec)
	return nil
}
