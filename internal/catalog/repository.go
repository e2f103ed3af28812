package catalog

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("catalog: not found")

// Repository loads call assets by id.
type Repository interface {
	GetAgent(ctx context.Context, id string) (Agent, error)
	GetScript(ctx context.Context, id string) (Script, error)

	// GetPublishedKnowledgeBase returns ErrNotFound for entries that are
	// absent or still in draft; callers treat both the same way.
	GetPublishedKnowledgeBase(ctx context.Context, id string) (KnowledgeBase, error)

	GetProfile(ctx context.Context, userID string) (Profile, error)
}
