package campaigns

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo is an in-memory campaign repository for tests and early
// development. Activation applies the same one-active-inbound rule as the
// postgres implementation, under the repo mutex.
type MemoryRepo struct {
	mu sync.Mutex

	Campaigns   []Campaign
	Memberships []Membership

	clock func() time.Time
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{clock: time.Now}
}

func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.Campaigns {
		if c.ID == id {
			return c, nil
		}
	}
	return Campaign{}, ErrCampaignNotFound
}

func (r *MemoryRepo) ListActiveByUser(ctx context.Context, userID string) ([]Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Campaign, 0)
	for _, c := range r.Campaigns {
		if c.UserID == userID && c.Status == CampaignStatusActive {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].UpdatedAt.After(out[j].UpdatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *MemoryRepo) HasMembership(ctx context.Context, campaignID, contactID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.Memberships {
		if m.CampaignID == campaignID && m.ContactID == contactID {
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryRepo) Activate(ctx context.Context, campaignID string) (Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i, c := range r.Campaigns {
		if c.ID == campaignID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Campaign{}, ErrCampaignNotFound
	}
	target := r.Campaigns[idx]

	if target.Settings.Type() == CampaignTypeInbound {
		for _, c := range r.Campaigns {
			if c.ID == target.ID || c.UserID != target.UserID {
				continue
			}
			if c.Status == CampaignStatusActive && c.Settings.Type() == CampaignTypeInbound {
				return Campaign{}, ErrActiveInboundExists
			}
		}
	}

	r.Campaigns[idx].Status = CampaignStatusActive
	r.Campaigns[idx].UpdatedAt = r.clock().UTC()
	return r.Campaigns[idx], nil
}
