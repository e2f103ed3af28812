package contacts

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"dhwani-platform/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// PostgresRepo resolves contacts with an indexed lookup on a precomputed
// normalized-phone column instead of scanning the whole table in-process.
//
// Assumes:
//
//	ALTER TABLE contacts ADD COLUMN phone_normalized TEXT
//	  GENERATED ALWAYS AS (regexp_replace(coalesce(phone, ''), '[\s\-\(\)\.]', '', 'g')) STORED;
//	CREATE INDEX contacts_phone_normalized_idx ON contacts (phone_normalized);
//
// An optional redis client caches normalized phone -> contact id. Cache
// failures fall through to the database; they are logged, never surfaced.
type PostgresRepo struct {
	db       *sql.DB
	cache    *redis.Client
	cacheTTL time.Duration
}

func NewPostgresRepo(db *sql.DB, cache *redis.Client, cacheTTL time.Duration) *PostgresRepo {
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	return &PostgresRepo{db: db, cache: cache, cacheTTL: cacheTTL}
}

const contactColumns = `
  id, user_id, name, COALESCE(email, ''), COALESCE(phone, ''),
  COALESCE(address, ''), COALESCE(city, ''), COALESCE(state, ''),
  COALESCE(zip_code, ''), status, last_called, created_at, updated_at
`

const phoneIndexKeyPrefix = "phone_index:"

func (r *PostgresRepo) FindByNormalizedPhone(ctx context.Context, normalized string) (Contact, error) {
	if r.cache != nil {
		if id, err := r.cache.Get(ctx, phoneIndexKeyPrefix+normalized).Result(); err == nil && id != "" {
			c, err := r.getByID(ctx, id)
			if err == nil {
				return c, nil
			}
			// Stale index entry (contact deleted or renumbered); fall through.
			if !errors.Is(err, ErrContactNotFound) {
				return Contact{}, err
			}
		}
	}

	const q = `
SELECT` + contactColumns + `
FROM contacts
WHERE phone_normalized = $1
ORDER BY created_at, id
LIMIT 1
`
	c, err := r.scanOne(r.db.QueryRowContext(ctx, q, normalized))
	if err != nil {
		return Contact{}, err
	}

	if r.cache != nil {
		if err := r.cache.Set(ctx, phoneIndexKeyPrefix+normalized, c.ID, r.cacheTTL).Err(); err != nil {
			logger.From(ctx).Warn("phone index cache set failed", "err", err)
		}
	}
	return c, nil
}

func (r *PostgresRepo) TouchLastCalled(ctx context.Context, contactID string, calledAt time.Time) error {
	const q = `
UPDATE contacts
SET last_called = $2, updated_at = now()
WHERE id = $1
`
	res, err := r.db.ExecContext(ctx, q, contactID, calledAt)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrContactNotFound
	}
	return nil
}

func (r *PostgresRepo) getByID(ctx context.Context, id string) (Contact, error) {
	const q = `
SELECT` + contactColumns + `
FROM contacts
WHERE id = $1
`
	return r.scanOne(r.db.QueryRowContext(ctx, q, id))
}

func (r *PostgresRepo) scanOne(row *sql.Row) (Contact, error) {
	var c Contact
	var lastCalled sql.NullTime
	err := row.Scan(
		&c.ID,
		&c.UserID,
		&c.Name,
		&c.Email,
		&c.Phone,
		&c.Address,
		&c.City,
		&c.State,
		&c.ZipCode,
		&c.Status,
		&lastCalled,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Contact{}, ErrContactNotFound
		}
		return Contact{}, err
	}
	if lastCalled.Valid {
		t := lastCalled.Time
		c.LastCalled = &t
	}
	return c, nil
}
