package campaigns

import (
	"context"
)

// Service exposes the one campaign mutation this API owns: activation.
// All other campaign CRUD happens in the console; it lives here because
// activation is where the "at most one active inbound campaign per user"
// invariant must be enforced, and resolution depends on that invariant.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Activate transitions a campaign to active.
// Returns ErrActiveInboundExists when the campaign is inbound and its owner
// already has another active inbound campaign.
func (s *Service) Activate(ctx context.Context, campaignID string) (Campaign, error) {
	if campaignID == "" {
		return Campaign{}, ErrInvalidArgument
	}
	return s.repo.Activate(ctx, campaignID)
}
