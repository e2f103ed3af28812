package ingest

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

type PostgresRepo struct {
	db *sql.DB
}

func NewPostgresRepo(db *sql.DB) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) InsertCall(ctx context.Context, rec CallRecord) error {
	extracted := []byte("{}")
	if rec.ExtractedData != nil {
		b, err := json.Marshal(rec.ExtractedData)
		if err != nil {
			return fmt.Errorf("marshal extracted_data: %w", err)
		}
		extracted = b
	}

	const q = `
INSERT INTO calls (
    id, contact_id, campaign_id, user_id, phone,
    duration, status, direction,
    recording_url, transcript, external_call_id, notes, outcome,
    sentiment, started_at, ended_at, extracted_data,
    call_status, rescheduled_for, objective_met, created_at
) VALUES (
    $1, $2, NULLIF($3, ''), $4, $5,
    $6, $7, $8,
    NULLIF($9, ''), NULLIF($10, ''), NULLIF($11, ''), NULLIF($12, ''), NULLIF($13, ''),
    $14, $15, $16, $17,
    $18, NULLIF($19, ''), $20, $21
)
`
	_, err := r.db.ExecContext(ctx, q,
		rec.ID, rec.ContactID, rec.CampaignID, rec.UserID, rec.Phone,
		rec.Duration, rec.Status, rec.Direction,
		rec.RecordingURL, rec.Transcript, rec.ExternalCallID, rec.Notes, rec.Outcome,
		rec.Sentiment, rec.StartedAt, rec.EndedAt, extracted,
		rec.CallStatus, rec.RescheduledFor, rec.ObjectiveMet, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert call: %w", err)
	}
	return nil
}
