package contacts

import (
	"context"
	"errors"
	"time"

	"dhwani-platform/internal/phone"
)

var ErrContactNotFound = errors.New("contact not found")

// Repository abstracts contact lookups for the resolver.
//
// FindByNormalizedPhone must return contacts in (created_at, id) order and
// pick the first when several rows share a normalized phone. The ordering
// makes the ambiguous case deterministic; it is not a business rule.
type Repository interface {
	FindByNormalizedPhone(ctx context.Context, normalized string) (Contact, error)

	// TouchLastCalled is a best-effort side effect of call ingestion.
	TouchLastCalled(ctx context.Context, contactID string, calledAt time.Time) error
}

// Resolver maps raw phone strings to contacts.
//
// The matching algorithm (indexed column, cached index, or full scan) is an
// implementation detail of the Repository; callers only see the contract.
type Resolver struct {
	repo Repository
}

func NewResolver(repo Repository) *Resolver {
	return &Resolver{repo: repo}
}

// ResolveByPhone normalizes the input and returns the matching contact.
// Returns ErrContactNotFound when no stored contact normalizes to the same
// number.
func (r *Resolver) ResolveByPhone(ctx context.Context, rawPhone string) (Contact, error) {
	normalized := phone.Normalize(rawPhone)
	if normalized == "" {
		return Contact{}, ErrContactNotFound
	}
	return r.repo.FindByNormalizedPhone(ctx, normalized)
}
