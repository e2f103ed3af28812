// Package catalog is the read-side store for the call assets a campaign
// references: agent personas, scripts, knowledge base entries, and owner
// profiles. All four are authored in the console; this service only loads
// them.
package catalog

import (
	"encoding/json"
	"time"
)

// Agent is a voice persona used during a call.
type Agent struct {
	ID     string `json:"id" db:"id"`
	UserID string `json:"user_id" db:"user_id"`

	Name         string `json:"name" db:"name"`
	Voice        string `json:"voice" db:"voice"`
	Status       string `json:"status" db:"status"`
	Description  string `json:"description" db:"description"`
	SystemPrompt string `json:"system_prompt" db:"system_prompt"`
	FirstMessage string `json:"first_message" db:"first_message"`
	Company      string `json:"company" db:"company"`
	AgentType    string `json:"agent_type" db:"agent_type"`
}

// Script holds ordered conversation sections plus opening defaults.
// Sections are stored as JSON authored by the console's script builder;
// this service passes them through opaquely.
type Script struct {
	ID     string `json:"id" db:"id"`
	UserID string `json:"user_id" db:"user_id"`

	Name         string          `json:"name" db:"name"`
	Description  string          `json:"description" db:"description"`
	Company      string          `json:"company" db:"company"`
	AgentType    string          `json:"agent_type" db:"agent_type"`
	Voice        string          `json:"voice" db:"voice"`
	FirstMessage string          `json:"first_message" db:"first_message"`
	Sections     json.RawMessage `json:"sections" db:"sections"`
}

// KnowledgeBase is reference content made available to an agent.
// Only published entries are eligible for call resolution.
type KnowledgeBase struct {
	ID     string `json:"id" db:"id"`
	UserID string `json:"user_id" db:"user_id"`

	Title       string   `json:"title" db:"title"`
	Type        string   `json:"type" db:"type"`
	Description string   `json:"description" db:"description"`
	Content     string   `json:"content" db:"content"`
	Status      KBStatus `json:"status" db:"status"`

	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

type KBStatus string

const (
	KBStatusDraft     KBStatus = "draft"
	KBStatusPublished KBStatus = "published"
)

// Profile is the account owner's public identity.
type Profile struct {
	ID       string `json:"id" db:"id"`
	FullName string `json:"full_name" db:"full_name"`
	Email    string `json:"email" db:"email"`
}
