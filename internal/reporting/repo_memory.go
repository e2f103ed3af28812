package reporting

import (
	"context"
	"sort"
	"sync"

	"dhwani-platform/internal/ingest"
)

// MemoryRepo serves reporting queries from a slice of call records.
type MemoryRepo struct {
	mu    sync.Mutex
	Calls []ingest.CallRecord
}

func NewMemoryRepo() *MemoryRepo { return &MemoryRepo{} }

func (r *MemoryRepo) ListCallsByCampaign(ctx context.Context, campaignID string) ([]ingest.CallRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]ingest.CallRecord, 0)
	for _, c := range r.Calls {
		if c.CampaignID == campaignID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].StartedAt.Equal(out[j].StartedAt) {
			return out[i].StartedAt.After(out[j].StartedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}
