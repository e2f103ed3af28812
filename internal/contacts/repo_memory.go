package contacts

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"dhwani-platform/internal/phone"
)

// MemoryRepo is an in-memory contact repository for tests and early
// development. It matches by scanning all contacts and normalizing each
// stored phone, the same observable behavior as the indexed postgres
// lookup.
type MemoryRepo struct {
	mu sync.Mutex

	Contacts []Contact

	// FailTouch simulates a failing last_called update.
	FailTouch bool
}

func NewMemoryRepo() *MemoryRepo { return &MemoryRepo{} }

func (r *MemoryRepo) FindByNormalizedPhone(ctx context.Context, normalized string) (Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	matches := make([]Contact, 0, 1)
	for _, c := range r.Contacts {
		if c.Phone != "" && phone.Normalize(c.Phone) == normalized {
			matches = append(matches, c)
		}
	}
	if len(matches) == 0 {
		return Contact{}, ErrContactNotFound
	}
	sort.Slice(matches, func(i, j int) bool {
		if !matches[i].CreatedAt.Equal(matches[j].CreatedAt) {
			return matches[i].CreatedAt.Before(matches[j].CreatedAt)
		}
		return matches[i].ID < matches[j].ID
	})
	return matches[0], nil
}

func (r *MemoryRepo) TouchLastCalled(ctx context.Context, contactID string, calledAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.FailTouch {
		return errors.New("touch failed")
	}
	for i := range r.Contacts {
		if r.Contacts[i].ID == contactID {
			t := calledAt
			r.Contacts[i].LastCalled = &t
			return nil
		}
	}
	return ErrContactNotFound
}

// Get returns a stored contact by id, for test assertions.
func (r *MemoryRepo) Get(id string) (Contact, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.Contacts {
		if c.ID == id {
			return c, true
		}
	}
	return Contact{}, false
}
