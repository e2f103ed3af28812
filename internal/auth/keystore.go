package auth

import (
	"context"
	"database/sql"
	"errors"
	"sync"
)

var ErrUnknownAPIKey = errors.New("auth: unknown api key")

// KeyStore resolves a full API key (prefix included) to the owning user.
// Calling runtimes authenticate with these keys instead of session tokens.
type KeyStore interface {
	ResolveAPIKey(ctx context.Context, key string) (userID string, err error)
}

// PostgresKeyStore reads keys from the user_settings table the console
// writes them to.
type PostgresKeyStore struct {
	db *sql.DB
}

func NewPostgresKeyStore(db *sql.DB) *PostgresKeyStore {
	return &PostgresKeyStore{db: db}
}

func (s *PostgresKeyStore) ResolveAPIKey(ctx context.Context, key string) (string, error) {
	const q = `
SELECT user_id
FROM user_settings
WHERE setting_key = 'api_key' AND setting_value = $1
`
	var userID string
	err := s.db.QueryRowContext(ctx, q, key).Scan(&userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrUnknownAPIKey
		}
		return "", err
	}
	return userID, nil
}

// MemoryKeyStore maps keys to user ids, for tests.
type MemoryKeyStore struct {
	mu   sync.RWMutex
	Keys map[string]string
}

func NewMemoryKeyStore() *MemoryKeyStore {
	return &MemoryKeyStore{Keys: map[string]string{}}
}

func (s *MemoryKeyStore) ResolveAPIKey(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if userID, ok := s.Keys[key]; ok {
		return userID, nil
	}
	return "", ErrUnknownAPIKey
}
