package reporting

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"dhwani-platform/internal/ingest"
)

type PostgresRepo struct {
	db *sql.DB
}

func NewPostgresRepo(db *sql.DB) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) ListCallsByCampaign(ctx context.Context, campaignID string) ([]ingest.CallRecord, error) {
	const q = `
SELECT id, contact_id, COALESCE(campaign_id::text, ''), user_id, phone,
       COALESCE(duration, 0), status, direction,
       COALESCE(recording_url, ''), COALESCE(external_call_id, ''),
       started_at, call_status, objective_met,
       COALESCE(extracted_data, '{}'::jsonb)
FROM calls
WHERE campaign_id = $1
ORDER BY started_at DESC, id
`
	rows, err := r.db.QueryContext(ctx, q, campaignID)
	if err != nil {
		return nil, fmt.Errorf("list calls: %w", err)
	}
	defer rows.Close()

	var out []ingest.CallRecord
	for rows.Next() {
		var c ingest.CallRecord
		var objective sql.NullBool
		var extracted []byte
		err := rows.Scan(
			&c.ID, &c.ContactID, &c.CampaignID, &c.UserID, &c.Phone,
			&c.Duration, &c.Status, &c.Direction,
			&c.RecordingURL, &c.ExternalCallID,
			&c.StartedAt, &c.CallStatus, &objective,
			&extracted,
		)
		if err != nil {
			return nil, fmt.Errorf("scan call: %w", err)
		}
		if objective.Valid {
			v := objective.Bool
			c.ObjectiveMet = &v
		}
		if len(extracted) > 0 && string(extracted) != "{}" {
			if err := json.Unmarshal(extracted, &c.ExtractedData); err != nil {
				return nil, fmt.Errorf("decode extracted_data for call %s: %w", c.ID, err)
			}
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
