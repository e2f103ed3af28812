package campaigns

import (
	"context"
	"errors"
	"sort"

	"dhwani-platform/internal/contacts"
	"dhwani-platform/pkg/logger"
)

var (
	ErrCampaignNotFound        = errors.New("campaign not found")
	ErrNoActiveInboundCampaign = errors.New("no active inbound campaigns found for this contact")
	ErrCampaignNotOutbound     = errors.New("campaign is not an outbound campaign")
	ErrContactNotInCampaign    = errors.New("contact not found in the specified campaign")
	ErrNoAgentAssigned         = errors.New("no agent assigned to this campaign")
	ErrActiveInboundExists     = errors.New("an active inbound campaign already exists for this user")
	ErrInvalidArgument         = errors.New("campaigns: invalid argument")
)

// Repository abstracts campaign data access for selection and activation.
type Repository interface {
	// GetByID returns ErrCampaignNotFound when no row exists.
	GetByID(ctx context.Context, id string) (Campaign, error)

	// ListActiveByUser returns a user's active campaigns, most recently
	// updated first.
	ListActiveByUser(ctx context.Context, userID string) ([]Campaign, error)

	// HasMembership reports whether the (campaign, contact) pair exists.
	HasMembership(ctx context.Context, campaignID, contactID string) (bool, error)

	// Activate flips a campaign to active, refusing a second active inbound
	// campaign for the same user (ErrActiveInboundExists). Implementations
	// must make the check-and-flip atomic.
	Activate(ctx context.Context, campaignID string) (Campaign, error)
}

// Selector applies the campaign resolution rules for both call directions.
// The two modes share no state; they are methods on one type only because
// they read the same repository.
type Selector struct {
	repo Repository
}

func NewSelector(repo Repository) *Selector {
	return &Selector{repo: repo}
}

// SelectInbound picks the active inbound campaign of the contact's owner.
//
// At most one such campaign should exist (the activation guard enforces
// it), but data written before the guard may violate that. A violation is
// resolved deterministically, newest update wins, and logged as an anomaly
// rather than silently taking whatever the store returned first.
func (s *Selector) SelectInbound(ctx context.Context, contact contacts.Contact) (Campaign, error) {
	if contact.UserID == "" {
		return Campaign{}, ErrInvalidArgument
	}

	active, err := s.repo.ListActiveByUser(ctx, contact.UserID)
	if err != nil {
		return Campaign{}, err
	}

	inbound := active[:0:0]
	for _, c := range active {
		if c.Settings.Type() == CampaignTypeInbound {
			inbound = append(inbound, c)
		}
	}
	if len(inbound) == 0 {
		return Campaign{}, ErrNoActiveInboundCampaign
	}
	if len(inbound) > 1 {
		logger.From(ctx).Warn("multiple active inbound campaigns for user",
			"user_id", contact.UserID, "count", len(inbound))
		sort.Slice(inbound, func(i, j int) bool {
			if !inbound[i].UpdatedAt.Equal(inbound[j].UpdatedAt) {
				return inbound[i].UpdatedAt.After(inbound[j].UpdatedAt)
			}
			return inbound[i].ID < inbound[j].ID
		})
	}
	return inbound[0], nil
}

// SelectOutbound resolves an explicitly named campaign for a contact.
//
// An inbound campaign can never be resolved through this path, even by id.
// Outbound calls additionally require a membership row and an assigned
// agent; without a persona there is nothing to place the call with.
func (s *Selector) SelectOutbound(ctx context.Context, campaignID string, contact contacts.Contact) (Campaign, error) {
	if campaignID == "" || contact.ID == "" {
		return Campaign{}, ErrInvalidArgument
	}

	c, err := s.repo.GetByID(ctx, campaignID)
	if err != nil {
		return Campaign{}, err
	}
	if c.Settings.Type() == CampaignTypeInbound {
		return Campaign{}, ErrCampaignNotOutbound
	}

	ok, err := s.repo.HasMembership(ctx, campaignID, contact.ID)
	if err != nil {
		return Campaign{}, err
	}
	if !ok {
		return Campaign{}, ErrContactNotInCampaign
	}

	if c.AgentID == "" {
		return Campaign{}, ErrNoAgentAssigned
	}
	return c, nil
}
