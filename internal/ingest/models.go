package ingest

import "time"

// CallRecord is one completed (or attempted) call as reported by the
// calling runtime. Almost every field is optional; the runtime sends what
// it has and the record keeps it.
type CallRecord struct {
	ID         string `json:"id" db:"id"`
	ContactID  string `json:"contact_id" db:"contact_id"`
	CampaignID string `json:"campaign_id,omitempty" db:"campaign_id"`
	UserID     string `json:"user_id" db:"user_id"`

	Phone     string `json:"phone" db:"phone"`
	Duration  int    `json:"duration" db:"duration"`
	Status    string `json:"status" db:"status"`
	Direction string `json:"direction" db:"direction"`

	RecordingURL   string `json:"recording_url,omitempty" db:"recording_url"`
	Transcript     string `json:"transcript,omitempty" db:"transcript"`
	ExternalCallID string `json:"call_id,omitempty" db:"external_call_id"`
	Notes          string `json:"notes,omitempty" db:"notes"`
	Outcome        string `json:"outcome,omitempty" db:"outcome"`

	Sentiment *float64   `json:"sentiment,omitempty" db:"sentiment"`
	StartedAt time.Time  `json:"started_at" db:"started_at"`
	EndedAt   *time.Time `json:"ended_at,omitempty" db:"ended_at"`

	ExtractedData map[string]any `json:"extracted_data,omitempty" db:"extracted_data"`

	// CallStatus is the disposition lifecycle (completed, rescheduled,
	// no_answer, ...), distinct from Status which is the runtime's own
	// outcome label. RescheduledFor is stored as given; nothing ties it
	// to CallStatus at write time.
	CallStatus     string `json:"call_status" db:"call_status"`
	RescheduledFor string `json:"rescheduled_for,omitempty" db:"rescheduled_for"`

	ObjectiveMet *bool `json:"objective_met,omitempty" db:"objective_met"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
