package campaigns

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"dhwani-platform/pkg/utils"
)

// PostgresRepo reads campaigns and memberships from the relational store.
//
// Assumes the console's tables:
//   - campaigns (settings JSONB, agent_id/script_id/knowledge_base_id nullable)
//   - campaign_contacts (campaign_id, contact_id)
type PostgresRepo struct {
	db *sql.DB
}

func NewPostgresRepo(db *sql.DB) *PostgresRepo {
	return &PostgresRepo{db: db}
}

const campaignColumns = `
  id, user_id, name, COALESCE(description, ''), status,
  COALESCE(settings, '{}'::jsonb),
  COALESCE(agent_id::text, ''), COALESCE(script_id::text, ''),
  COALESCE(knowledge_base_id::text, ''), created_at, updated_at
`

func (r *PostgresRepo) GetByID(ctx context.Context, id string) (Campaign, error) {
	const q = `
SELECT` + campaignColumns + `
FROM campaigns
WHERE id = $1
`
	return scanCampaign(r.db.QueryRowContext(ctx, q, id))
}

func (r *PostgresRepo) ListActiveByUser(ctx context.Context, userID string) ([]Campaign, error) {
	const q = `
SELECT` + campaignColumns + `
FROM campaigns
WHERE user_id = $1 AND status = 'active'
ORDER BY updated_at DESC, id
`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Campaign, 0)
	for rows.Next() {
		c, err := scanCampaignRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) HasMembership(ctx context.Context, campaignID, contactID string) (bool, error) {
	const q = `
SELECT EXISTS (
  SELECT 1 FROM campaign_contacts
  WHERE campaign_id = $1 AND contact_id = $2
)
`
	var ok bool
	if err := r.db.QueryRowContext(ctx, q, campaignID, contactID).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}

// Activate makes the check-and-flip atomic with a per-user transaction
// lock, closing the read-then-write race the console's plain update had.
func (r *PostgresRepo) Activate(ctx context.Context, campaignID string) (Campaign, error) {
	var out Campaign
	err := utils.WithTx(ctx, r.db, &sql.TxOptions{}, func(ctx context.Context, tx *sql.Tx) error {
		const lockTarget = `
SELECT` + campaignColumns + `
FROM campaigns
WHERE id = $1
FOR UPDATE
`
		target, err := scanCampaign(tx.QueryRowContext(ctx, lockTarget, campaignID))
		if err != nil {
			return err
		}

		if target.Settings.Type() == CampaignTypeInbound {
			// Serialize concurrent activations for this owner.
			if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, target.UserID); err != nil {
				return err
			}

			const conflict = `
SELECT EXISTS (
  SELECT 1 FROM campaigns
  WHERE user_id = $1 AND status = 'active' AND id <> $2
    AND (settings->>'campaign_type' = 'inbound' OR settings->>'campaignType' = 'inbound')
)
`
			var exists bool
			if err := tx.QueryRowContext(ctx, conflict, target.UserID, target.ID).Scan(&exists); err != nil {
				return err
			}
			if exists {
				return ErrActiveInboundExists
			}
		}

		const flip = `
UPDATE campaigns
SET status = 'active', updated_at = now()
WHERE id = $1
RETURNING` + campaignColumns + `
`
		updated, err := scanCampaign(tx.QueryRowContext(ctx, flip, campaignID))
		if err != nil {
			return err
		}
		out = updated
		return nil
	})
	if err != nil {
		return Campaign{}, err
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCampaign(row *sql.Row) (Campaign, error) {
	c, err := scanCampaignRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Campaign{}, ErrCampaignNotFound
		}
		return Campaign{}, err
	}
	return c, nil
}

func scanCampaignRow(row rowScanner) (Campaign, error) {
	var c Campaign
	var settings []byte
	err := row.Scan(
		&c.ID,
		&c.UserID,
		&c.Name,
		&c.Description,
		&c.Status,
		&settings,
		&c.AgentID,
		&c.ScriptID,
		&c.KnowledgeBaseID,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return Campaign{}, err
	}
	if len(settings) > 0 {
		if err := json.Unmarshal(settings, &c.Settings); err != nil {
			return Campaign{}, fmt.Errorf("campaign %s settings: %w", c.ID, err)
		}
	}
	return c, nil
}
