// Package reporting computes per-campaign call aggregates and extracted
// data listings. It only reads what ingest wrote; there is no separate
// analytics store.
package reporting

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"dhwani-platform/internal/ingest"
)

var ErrInvalidRequest = errors.New("reporting: invalid request")

// Repository abstracts read access to recorded calls.
type Repository interface {
	// ListCallsByCampaign returns a campaign's calls, newest first.
	ListCallsByCampaign(ctx context.Context, campaignID string) ([]ingest.CallRecord, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service { return &Service{repo: repo} }

func (s *Service) CampaignSummary(ctx context.Context, campaignID string) (CampaignSummary, error) {
	if campaignID == "" {
		return CampaignSummary{}, ErrInvalidRequest
	}

	rows, err := s.repo.ListCallsByCampaign(ctx, campaignID)
	if err != nil {
		return CampaignSummary{}, err
	}

	out := CampaignSummary{
		CampaignID:   campaignID,
		ByStatus:     map[string]int{},
		ByDirection:  map[string]int{},
		ByCallStatus: map[string]int{},
	}
	for _, c := range rows {
		out.TotalCalls++
		out.TotalDurationSeconds += c.Duration
		if c.RecordingURL != "" {
			out.RecordedCalls++
		}
		out.ByStatus[c.Status]++
		out.ByDirection[c.Direction]++
		out.ByCallStatus[c.CallStatus]++
		if c.ObjectiveMet != nil {
			out.ObjectiveReported++
			if *c.ObjectiveMet {
				out.ObjectiveMet++
			}
		}
	}
	if out.TotalCalls > 0 {
		out.AverageDurationSeconds = out.TotalDurationSeconds / out.TotalCalls
	}
	if out.ObjectiveReported > 0 {
		out.ObjectiveRate = float64(out.ObjectiveMet) / float64(out.ObjectiveReported)
	}
	return out, nil
}

// ExtractedData lists the structured data captured during a campaign's
// calls. Calls that captured nothing are counted but not listed.
func (s *Service) ExtractedData(ctx context.Context, campaignID string) (CampaignExtractedData, error) {
	if campaignID == "" {
		return CampaignExtractedData{}, ErrInvalidRequest
	}

	rows, err := s.repo.ListCallsByCampaign(ctx, campaignID)
	if err != nil {
		return CampaignExtractedData{}, err
	}

	out := CampaignExtractedData{
		CampaignID: campaignID,
		Rows:       []ExtractedRow{},
		TotalCalls: len(rows),
	}
	for _, c := range rows {
		if len(c.ExtractedData) == 0 {
			continue
		}
		b, err := json.Marshal(c.ExtractedData)
		if err != nil {
			return CampaignExtractedData{}, fmt.Errorf("marshal extracted data for call %s: %w", c.ID, err)
		}
		out.Rows = append(out.Rows, ExtractedRow{
			CallID:    c.ID,
			ContactID: c.ContactID,
			Phone:     c.Phone,
			CallAt:    c.StartedAt,
			Data:      b,
		})
	}
	return out, nil
}
