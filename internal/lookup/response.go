package lookup

import (
	"encoding/json"

	"dhwani-platform/internal/campaigns"
	"dhwani-platform/internal/catalog"
	"dhwani-platform/internal/contacts"
)

// View types are the wire shapes of the two lookup endpoints. They are
// deliberately separate from the storage models so the payload a calling
// runtime depends on cannot drift when a column is added.

type CampaignView struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Status       string `json:"status"`
	CampaignType string `json:"campaign_type"`
}

type ContactView struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
	Status  string `json:"status"`
}

type AgentView struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Voice        string `json:"voice"`
	VoiceID      string `json:"voice_id"`
	Status       string `json:"status"`
	Description  string `json:"description"`
	SystemPrompt string `json:"system_prompt"`
	FirstMessage string `json:"first_message"`
	Company      string `json:"company"`
	AgentType    string `json:"agent_type"`
}

type ScriptView struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Company      string          `json:"company"`
	AgentType    string          `json:"agent_type"`
	Voice        string          `json:"voice"`
	FirstMessage string          `json:"first_message"`
	Sections     json.RawMessage `json:"sections"`
}

type UserView struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

type KnowledgeBaseView struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Content     string `json:"content"`
	Status      string `json:"status"`
}

// CallerContext is the aggregated bundle for an inbound call. Agent,
// script and user may be null when the campaign does not reference them
// or the load failed; knowledge_bases is always present, possibly empty.
type CallerContext struct {
	Contact        ContactView         `json:"contact"`
	Campaign       CampaignView        `json:"campaign"`
	Agent          *AgentView          `json:"agent"`
	Script         *ScriptView         `json:"script"`
	User           *UserView           `json:"user"`
	KnowledgeBases []KnowledgeBaseView `json:"knowledge_bases"`
}

// OutboundContext mirrors CallerContext for the outbound path, where the
// agent is guaranteed and the contact rides inside the bundle.
type OutboundContext struct {
	Campaign       CampaignView        `json:"campaign"`
	Agent          *AgentView          `json:"agent"`
	Script         *ScriptView         `json:"script"`
	User           *UserView           `json:"user"`
	KnowledgeBases []KnowledgeBaseView `json:"knowledge_bases"`
	Contact        ContactView         `json:"contact"`
}

type InboundResponse struct {
	Success    bool          `json:"success"`
	CampaignID string        `json:"campaign_id"`
	VoiceID    *string       `json:"voice_id"`
	Caller     CallerContext `json:"caller"`
}

type OutboundResponse struct {
	Success      bool            `json:"success"`
	CampaignID   string          `json:"campaign_id"`
	VoiceID      *string         `json:"voice_id"`
	OutboundCall OutboundContext `json:"outbound_call"`
}

func campaignView(c campaigns.Campaign) CampaignView {
	return CampaignView{
		ID:           c.ID,
		Name:         c.Name,
		Description:  c.Description,
		Status:       string(c.Status),
		CampaignType: string(c.Settings.Type()),
	}
}

func contactView(c contacts.Contact) ContactView {
	return ContactView{
		ID:      c.ID,
		Name:    c.Name,
		Email:   c.Email,
		Phone:   c.Phone,
		Address: c.Address,
		City:    c.City,
		State:   c.State,
		ZipCode: c.ZipCode,
		Status:  string(c.Status),
	}
}

func agentView(a catalog.Agent) *AgentView {
	return &AgentView{
		ID:           a.ID,
		Name:         a.Name,
		Voice:        a.Voice,
		VoiceID:      a.Voice,
		Status:       a.Status,
		Description:  a.Description,
		SystemPrompt: a.SystemPrompt,
		FirstMessage: a.FirstMessage,
		Company:      a.Company,
		AgentType:    a.AgentType,
	}
}

func scriptView(s catalog.Script) *ScriptView {
	return &ScriptView{
		ID:           s.ID,
		Name:         s.Name,
		Description:  s.Description,
		Company:      s.Company,
		AgentType:    s.AgentType,
		Voice:        s.Voice,
		FirstMessage: s.FirstMessage,
		Sections:     s.Sections,
	}
}

func userView(p catalog.Profile) *UserView {
	return &UserView{ID: p.ID, FullName: p.FullName, Email: p.Email}
}

func kbView(kb catalog.KnowledgeBase) KnowledgeBaseView {
	return KnowledgeBaseView{
		ID:          kb.ID,
		Title:       kb.Title,
		Type:        kb.Type,
		Description: kb.Description,
		Content:     kb.Content,
		Status:      string(kb.Status),
	}
}
