package reporting

import (
	"encoding/json"
	"time"
)

// CampaignSummary aggregates the recorded calls of one campaign.
type CampaignSummary struct {
	CampaignID string `json:"campaign_id"`

	TotalCalls             int `json:"total_calls"`
	TotalDurationSeconds   int `json:"total_duration_seconds"`
	AverageDurationSeconds int `json:"average_duration_seconds"`
	RecordedCalls          int `json:"recorded_calls"`

	ByStatus     map[string]int `json:"by_status"`
	ByDirection  map[string]int `json:"by_direction"`
	ByCallStatus map[string]int `json:"by_call_status"`

	// ObjectiveRate is met / reported; calls that never reported the
	// tri-state objective flag are excluded from the denominator.
	ObjectiveReported int     `json:"objective_reported"`
	ObjectiveMet      int     `json:"objective_met"`
	ObjectiveRate     float64 `json:"objective_rate"`
}

// ExtractedRow is one call's structured extraction, as collected by the
// runtime during the conversation.
type ExtractedRow struct {
	CallID    string          `json:"call_id"`
	ContactID string          `json:"contact_id"`
	Phone     string          `json:"phone"`
	CallAt    time.Time       `json:"call_at"`
	Data      json.RawMessage `json:"data"`
}

// CampaignExtractedData is the listing returned to the console's export
// screen.
type CampaignExtractedData struct {
	CampaignID string         `json:"campaign_id"`
	Rows       []ExtractedRow `json:"rows"`
	TotalCalls int            `json:"total_calls"`
}
