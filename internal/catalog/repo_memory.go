package catalog

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory Repository used by tests.
type MemoryRepo struct {
	mu sync.RWMutex

	Agents         []Agent
	Scripts        []Script
	KnowledgeBases []KnowledgeBase
	Profiles       []Profile

	// FailAgent and friends force load errors for a given id.
	FailAgent   map[string]error
	FailScript  map[string]error
	FailProfile map[string]error
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func (r *MemoryRepo) GetAgent(ctx context.Context, id string) (Agent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if err, ok := r.FailAgent[id]; ok {
		return Agent{}, err
	}
	for _, a := range r.Agents {
		if a.ID == id {
			return a, nil
		}
	}
	return Agent{}, ErrNotFound
}

func (r *MemoryRepo) GetScript(ctx context.Context, id string) (Script, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if err, ok := r.FailScript[id]; ok {
		return Script{}, err
	}
	for _, s := range r.Scripts {
		if s.ID == id {
			return s, nil
		}
	}
	return Script{}, ErrNotFound
}

func (r *MemoryRepo) GetPublishedKnowledgeBase(ctx context.Context, id string) (KnowledgeBase, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, kb := range r.KnowledgeBases {
		if kb.ID == id {
			if kb.Status != KBStatusPublished {
				return KnowledgeBase{}, ErrNotFound
			}
			return kb, nil
		}
	}
	return KnowledgeBase{}, ErrNotFound
}

func (r *MemoryRepo) GetProfile(ctx context.Context, userID string) (Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if err, ok := r.FailProfile[userID]; ok {
		return Profile{}, err
	}
	for _, p := range r.Profiles {
		if p.ID == userID {
			return p, nil
		}
	}
	return Profile{}, ErrNotFound
}
