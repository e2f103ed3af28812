package reporting

import (
	"context"
	"errors"
	"testing"
	"time"

	"dhwani-platform/internal/ingest"
)

func boolPtr(v bool) *bool { return &v }

func seedCalls() []ingest.CallRecord {
	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	return []ingest.CallRecord{
		{
			ID: "c-1", CampaignID: "cp-1", ContactID: "ct-1", Phone: "+15550101234",
			Duration: 120, Status: "answered", Direction: "outbound",
			CallStatus: "completed", RecordingURL: "https://rec/1",
			ObjectiveMet: boolPtr(true), StartedAt: base,
			ExtractedData: map[string]any{"plan": "pro"},
		},
		{
			ID: "c-2", CampaignID: "cp-1", ContactID: "ct-2", Phone: "+15550105678",
			Duration: 60, Status: "answered", Direction: "outbound",
			CallStatus: "rescheduled", ObjectiveMet: boolPtr(false),
			StartedAt: base.Add(time.Hour),
		},
		{
			ID: "c-3", CampaignID: "cp-1", ContactID: "ct-3", Phone: "+15550109999",
			Duration: 0, Status: "no_answer", Direction: "outbound",
			CallStatus: "missed", StartedAt: base.Add(2 * time.Hour),
		},
		{
			ID: "c-other", CampaignID: "cp-2", ContactID: "ct-1", Phone: "+15550101234",
			Duration: 30, Status: "answered", Direction: "inbound",
			CallStatus: "completed", StartedAt: base,
		},
	}
}

func TestCampaignSummary(t *testing.T) {
	repo := NewMemoryRepo()
	repo.Calls = seedCalls()
	svc := NewService(repo)

	sum, err := svc.CampaignSummary(context.Background(), "cp-1")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if sum.TotalCalls != 3 {
		t.Fatalf("total = %d, want 3 (other campaign excluded)", sum.TotalCalls)
	}
	if sum.TotalDurationSeconds != 180 || sum.AverageDurationSeconds != 60 {
		t.Fatalf("durations = %d/%d", sum.TotalDurationSeconds, sum.AverageDurationSeconds)
	}
	if sum.RecordedCalls != 1 {
		t.Fatalf("recorded = %d", sum.RecordedCalls)
	}
	if sum.ByStatus["answered"] != 2 || sum.ByStatus["no_answer"] != 1 {
		t.Fatalf("by_status = %v", sum.ByStatus)
	}
	if sum.ByCallStatus["rescheduled"] != 1 {
		t.Fatalf("by_call_status = %v", sum.ByCallStatus)
	}
	if sum.ObjectiveReported != 2 || sum.ObjectiveMet != 1 || sum.ObjectiveRate != 0.5 {
		t.Fatalf("objective = %d/%d rate %v", sum.ObjectiveMet, sum.ObjectiveReported, sum.ObjectiveRate)
	}
}

func TestCampaignSummaryEmptyCampaign(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	sum, err := svc.CampaignSummary(context.Background(), "cp-none")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if sum.TotalCalls != 0 || sum.AverageDurationSeconds != 0 || sum.ObjectiveRate != 0 {
		t.Fatalf("empty campaign summary = %+v", sum)
	}
}

func TestCampaignSummaryRequiresID(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	if _, err := svc.CampaignSummary(context.Background(), ""); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("err = %v, want ErrInvalidRequest", err)
	}
}

func TestExtractedDataListsOnlyCapturingCalls(t *testing.T) {
	repo := NewMemoryRepo()
	repo.Calls = seedCalls()
	svc := NewService(repo)

	data, err := svc.ExtractedData(context.Background(), "cp-1")
	if err != nil {
		t.Fatalf("extracted data: %v", err)
	}
	if data.TotalCalls != 3 {
		t.Fatalf("total_calls = %d", data.TotalCalls)
	}
	if len(data.Rows) != 1 || data.Rows[0].CallID != "c-1" {
		t.Fatalf("rows = %+v", data.Rows)
	}
	if string(data.Rows[0].Data) != `{"plan":"pro"}` {
		t.Fatalf("data = %s", data.Rows[0].Data)
	}
}
