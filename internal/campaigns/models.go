package campaigns

import (
	"encoding/json"
	"time"
)

// Campaign is a configured calling program owned by one user.
//
// AgentID, ScriptID, and KnowledgeBaseID are each 0..1 links; an empty
// string means unset.
type Campaign struct {
	ID     string `json:"id" db:"id"`
	UserID string `json:"user_id" db:"user_id"`

	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`

	Status   CampaignStatus `json:"status" db:"status"`
	Settings Settings       `json:"settings" db:"settings"`

	AgentID         string `json:"agent_id,omitempty" db:"agent_id"`
	ScriptID        string `json:"script_id,omitempty" db:"script_id"`
	KnowledgeBaseID string `json:"knowledge_base_id,omitempty" db:"knowledge_base_id"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "draft"
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusPaused    CampaignStatus = "paused"
	CampaignStatusCompleted CampaignStatus = "completed"
)

type CampaignType string

const (
	CampaignTypeInbound  CampaignType = "inbound"
	CampaignTypeOutbound CampaignType = "outbound"
)

// Settings is the typed form of the campaigns.settings JSONB column.
//
// The console historically wrote the campaign type under two spellings,
// "campaignType" and "campaign_type". Both are accepted here, once, at the
// data-access boundary; the rest of the codebase only ever sees the
// canonical field. Serialization always emits "campaign_type".
type Settings struct {
	CampaignType CampaignType `json:"campaign_type"`
}

func (s *Settings) UnmarshalJSON(data []byte) error {
	var raw struct {
		CampaignType CampaignType `json:"campaignType"`
		Legacy       CampaignType `json:"campaign_type"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch {
	case raw.CampaignType != "":
		s.CampaignType = raw.CampaignType
	default:
		s.CampaignType = raw.Legacy
	}
	return nil
}

// Type returns the campaign direction, defaulting to outbound when the
// settings never recorded one. Campaigns created before the inbound
// feature existed have no type at all.
func (s Settings) Type() CampaignType {
	if s.CampaignType == "" {
		return CampaignTypeOutbound
	}
	return s.CampaignType
}

// Membership authorizes an outbound campaign to address a contact.
// Inbound campaigns have no membership requirement.
type Membership struct {
	ID         string    `json:"id" db:"id"`
	CampaignID string    `json:"campaign_id" db:"campaign_id"`
	ContactID  string    `json:"contact_id" db:"contact_id"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
