// Package ingest records call outcomes reported by the calling runtime
// after a call ends. It is the only writer in the service.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"dhwani-platform/internal/contacts"
	"dhwani-platform/pkg/logger"
)

var ErrPhoneRequired = errors.New("phone number is required")

// Repository persists call records.
type Repository interface {
	InsertCall(ctx context.Context, rec CallRecord) error
}

// Report is the inbound payload of a call outcome. Phone is the only
// required field.
type Report struct {
	Phone      string `json:"phone"`
	CampaignID string `json:"campaign_id"`

	Duration  int    `json:"duration"`
	Status    string `json:"status"`
	Direction string `json:"direction"`

	RecordingURL   string `json:"recording_url"`
	Transcript     string `json:"transcript"`
	ExternalCallID string `json:"call_id"`
	Notes          string `json:"notes"`
	Outcome        string `json:"outcome"`

	Sentiment *float64   `json:"sentiment"`
	StartedAt *time.Time `json:"started_at"`
	EndedAt   *time.Time `json:"ended_at"`

	ExtractedData map[string]any `json:"extracted_data"`

	CallStatus     string `json:"call_status"`
	RescheduledFor string `json:"rescheduled_for"`
	ObjectiveMet   *bool  `json:"objective_met"`
}

// ContactSummary is the slice of the contact echoed back to the runtime.
type ContactSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type Result struct {
	CallID     string
	CampaignID string
	Contact    ContactSummary
}

type Service struct {
	calls    Repository
	resolver *contacts.Resolver
	contacts contacts.Repository

	clock func() time.Time
}

func NewService(calls Repository, resolver *contacts.Resolver, contactRepo contacts.Repository) *Service {
	return &Service{calls: calls, resolver: resolver, contacts: contactRepo, clock: time.Now}
}

// Ingest resolves the reported phone to a contact, writes the call record,
// and touches the contact's last_called marker.
//
// The record insert is the hard write; the last_called update is best
// effort and its failure only produces a warn log. There is no idempotency
// on the external call id: the runtime occasionally re-reports a call and
// each report becomes its own row.
func (s *Service) Ingest(ctx context.Context, rep Report) (Result, error) {
	if rep.Phone == "" {
		return Result{}, ErrPhoneRequired
	}

	contact, err := s.resolver.ResolveByPhone(ctx, rep.Phone)
	if err != nil {
		return Result{}, err
	}

	now := s.clock().UTC()
	rec := CallRecord{
		ID:             uuid.NewString(),
		ContactID:      contact.ID,
		CampaignID:     rep.CampaignID,
		UserID:         contact.UserID,
		Phone:          rep.Phone,
		Duration:       rep.Duration,
		Status:         rep.Status,
		Direction:      rep.Direction,
		RecordingURL:   rep.RecordingURL,
		Transcript:     rep.Transcript,
		ExternalCallID: rep.ExternalCallID,
		Notes:          rep.Notes,
		Outcome:        rep.Outcome,
		Sentiment:      rep.Sentiment,
		StartedAt:      now,
		EndedAt:        rep.EndedAt,
		ExtractedData:  rep.ExtractedData,
		CallStatus:     rep.CallStatus,
		RescheduledFor: rep.RescheduledFor,
		ObjectiveMet:   rep.ObjectiveMet,
		CreatedAt:      now,
	}
	if rep.StartedAt != nil {
		rec.StartedAt = *rep.StartedAt
	}
	if rec.Status == "" {
		rec.Status = "unknown"
	}
	if rec.Direction == "" {
		rec.Direction = "outbound"
	}
	if rec.CallStatus == "" {
		rec.CallStatus = "completed"
	}

	if err := s.calls.InsertCall(ctx, rec); err != nil {
		return Result{}, fmt.Errorf("insert call record: %w", err)
	}

	calledAt := now
	switch {
	case rec.EndedAt != nil:
		calledAt = *rec.EndedAt
	case rep.StartedAt != nil:
		calledAt = rec.StartedAt
	}
	if err := s.contacts.TouchLastCalled(ctx, contact.ID, calledAt); err != nil {
		logger.From(ctx).Warn("last_called update failed",
			"contact_id", contact.ID, "call_id", rec.ID, "error", err)
	}

	return Result{
		CallID:     rec.ID,
		CampaignID: rec.CampaignID,
		Contact: ContactSummary{
			ID:    contact.ID,
			Name:  contact.Name,
			Phone: contact.Phone,
		},
	}, nil
}
