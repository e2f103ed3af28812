package catalog

import (
	"context"
	"database/sql"
	"errors"
)

// PostgresRepo reads agents, scripts, knowledge_base, and profiles tables.
type PostgresRepo struct {
	db *sql.DB
}

func NewPostgresRepo(db *sql.DB) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) GetAgent(ctx context.Context, id string) (Agent, error) {
	const q = `
SELECT id, user_id, name, voice, status,
       COALESCE(description, ''), COALESCE(system_prompt, ''),
       COALESCE(first_message, ''), COALESCE(company, ''), agent_type
FROM agents
WHERE id = $1
`
	var a Agent
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&a.ID,
		&a.UserID,
		&a.Name,
		&a.Voice,
		&a.Status,
		&a.Description,
		&a.SystemPrompt,
		&a.FirstMessage,
		&a.Company,
		&a.AgentType,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Agent{}, ErrNotFound
		}
		return Agent{}, err
	}
	return a, nil
}

func (r *PostgresRepo) GetScript(ctx context.Context, id string) (Script, error) {
	const q = `
SELECT id, user_id, name, COALESCE(description, ''), COALESCE(company, ''),
       agent_type, voice, COALESCE(first_message, ''),
       COALESCE(sections, '[]'::jsonb)
FROM scripts
WHERE id = $1
`
	var s Script
	var sections []byte
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&s.ID,
		&s.UserID,
		&s.Name,
		&s.Description,
		&s.Company,
		&s.AgentType,
		&s.Voice,
		&s.FirstMessage,
		&sections,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Script{}, ErrNotFound
		}
		return Script{}, err
	}
	s.Sections = sections
	return s, nil
}

func (r *PostgresRepo) GetPublishedKnowledgeBase(ctx context.Context, id string) (KnowledgeBase, error) {
	const q = `
SELECT id, user_id, title, type, COALESCE(description, ''),
       COALESCE(content, ''), status, updated_at
FROM knowledge_base
WHERE id = $1 AND status = 'published'
`
	var kb KnowledgeBase
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&kb.ID,
		&kb.UserID,
		&kb.Title,
		&kb.Type,
		&kb.Description,
		&kb.Content,
		&kb.Status,
		&kb.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return KnowledgeBase{}, ErrNotFound
		}
		return KnowledgeBase{}, err
	}
	return kb, nil
}

func (r *PostgresRepo) GetProfile(ctx context.Context, userID string) (Profile, error) {
	const q = `
SELECT id, COALESCE(full_name, ''), COALESCE(email, '')
FROM profiles
WHERE id = $1
`
	var p Profile
	err := r.db.QueryRowContext(ctx, q, userID).Scan(&p.ID, &p.FullName, &p.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, err
	}
	return p, nil
}
