// Package lookup aggregates the full call context for the two runtime
// entrypoints: "a call just arrived from this number" and "place a call to
// this contact under this campaign". It owns nothing itself; it composes
// the contact resolver, the campaign selector, and the catalog.
package lookup

import (
	"context"
	"errors"

	"dhwani-platform/internal/campaigns"
	"dhwani-platform/internal/catalog"
	"dhwani-platform/internal/contacts"
	"dhwani-platform/pkg/logger"
)

type Service struct {
	resolver *contacts.Resolver
	selector *campaigns.Selector
	catalog  catalog.Repository
}

func NewService(resolver *contacts.Resolver, selector *campaigns.Selector, cat catalog.Repository) *Service {
	return &Service{resolver: resolver, selector: selector, catalog: cat}
}

// Inbound resolves the contact behind a calling number and bundles the
// context of the owner's active inbound campaign.
func (s *Service) Inbound(ctx context.Context, phone string) (InboundResponse, error) {
	contact, err := s.resolver.ResolveByPhone(ctx, phone)
	if err != nil {
		return InboundResponse{}, err
	}

	campaign, err := s.selector.SelectInbound(ctx, contact)
	if err != nil {
		return InboundResponse{}, err
	}

	agent, script, user, kbs := s.aggregate(ctx, campaign)

	resp := InboundResponse{
		Success:    true,
		CampaignID: campaign.ID,
		Caller: CallerContext{
			Contact:        contactView(contact),
			Campaign:       campaignView(campaign),
			Agent:          agent,
			Script:         script,
			User:           user,
			KnowledgeBases: kbs,
		},
	}
	if agent != nil {
		resp.VoiceID = &agent.VoiceID
	}
	return resp, nil
}

// Outbound resolves the contact and validates the named campaign against
// it. Unlike the inbound path an agent is mandatory here; a campaign whose
// agent link points at a deleted row is treated the same as one with no
// link at all.
func (s *Service) Outbound(ctx context.Context, campaignID, phone string) (OutboundResponse, error) {
	contact, err := s.resolver.ResolveByPhone(ctx, phone)
	if err != nil {
		return OutboundResponse{}, err
	}

	campaign, err := s.selector.SelectOutbound(ctx, campaignID, contact)
	if err != nil {
		return OutboundResponse{}, err
	}

	a, err := s.catalog.GetAgent(ctx, campaign.AgentID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return OutboundResponse{}, campaigns.ErrNoAgentAssigned
		}
		return OutboundResponse{}, err
	}
	agent := agentView(a)

	script, user, kbs := s.aggregateAround(ctx, campaign)

	return OutboundResponse{
		Success:    true,
		CampaignID: campaign.ID,
		VoiceID:    &agent.VoiceID,
		OutboundCall: OutboundContext{
			Campaign:       campaignView(campaign),
			Agent:          agent,
			Script:         script,
			User:           user,
			KnowledgeBases: kbs,
			Contact:        contactView(contact),
		},
	}, nil
}

// aggregate loads the optional context pieces for a campaign. Every piece
// degrades independently: a missing or unloadable agent/script/user comes
// back nil, an ineligible knowledge base comes back as an empty list. The
// lookup as a whole never fails because an asset does.
func (s *Service) aggregate(ctx context.Context, campaign campaigns.Campaign) (*AgentView, *ScriptView, *UserView, []KnowledgeBaseView) {
	var agent *AgentView
	if campaign.AgentID != "" {
		a, err := s.catalog.GetAgent(ctx, campaign.AgentID)
		if err != nil {
			logger.From(ctx).Warn("agent load failed during lookup",
				"campaign_id", campaign.ID, "agent_id", campaign.AgentID, "error", err)
		} else {
			agent = agentView(a)
		}
	}

	script, user, kbs := s.aggregateAround(ctx, campaign)
	return agent, script, user, kbs
}

// aggregateAround is aggregate minus the agent, for the outbound path
// where the agent has already been loaded as a hard requirement.
func (s *Service) aggregateAround(ctx context.Context, campaign campaigns.Campaign) (*ScriptView, *UserView, []KnowledgeBaseView) {
	var script *ScriptView
	if campaign.ScriptID != "" {
		sc, err := s.catalog.GetScript(ctx, campaign.ScriptID)
		if err != nil {
			logger.From(ctx).Warn("script load failed during lookup",
				"campaign_id", campaign.ID, "script_id", campaign.ScriptID, "error", err)
		} else {
			script = scriptView(sc)
		}
	}

	var user *UserView
	p, err := s.catalog.GetProfile(ctx, campaign.UserID)
	if err != nil {
		logger.From(ctx).Warn("owner profile load failed during lookup",
			"campaign_id", campaign.ID, "user_id", campaign.UserID, "error", err)
	} else {
		user = userView(p)
	}

	kbs := []KnowledgeBaseView{}
	if campaign.KnowledgeBaseID != "" {
		kb, err := s.catalog.GetPublishedKnowledgeBase(ctx, campaign.KnowledgeBaseID)
		switch {
		case err == nil:
			kbs = append(kbs, kbView(kb))
		case errors.Is(err, catalog.ErrNotFound):
			// Draft or deleted entries are simply not part of the context.
		default:
			logger.From(ctx).Warn("knowledge base load failed during lookup",
				"campaign_id", campaign.ID, "knowledge_base_id", campaign.KnowledgeBaseID, "error", err)
		}
	}

	return script, user, kbs
}
