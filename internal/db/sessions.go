package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/personakit/personafind/internal/types"
)

// SaveSession stores a search session: the input persona, the synthesized
// queries, and the ranked results.
func (db *DB) SaveSession(ctx context.Context, session *types.Session) error {
	personaJSON, err := json.Marshal(session.Persona)
	if err != nil {
		return fmt.Errorf("failed to marshal persona: %w", err)
	}
	queriesJSON, err := json.Marshal(session.Queries)
	if err != nil {
		return fmt.Errorf("failed to marshal queries: %w", err)
	}
	resultsJSON, err := json.Marshal(session.Results)
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO sessions (id, persona, queries, results, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (id) DO UPDATE SET persona = $2, queries = $3, results = $4`,
		session.ID, personaJSON, queriesJSON, resultsJSON, session.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// GetSession retrieves a session by ID. Returns (nil, nil) when not found.
func (db *DB) GetSession(ctx context.Context, id uuid.UUID) (*types.Session, error) {
	var session types.Session
	var personaJSON, queriesJSON, resultsJSON []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, persona, queries, results, created_at FROM sessions WHERE id = $1`,
		id,
	).Scan(&session.ID, &personaJSON, &queriesJSON, &resultsJSON, &session.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if err := json.Unmarshal(personaJSON, &session.Persona); err != nil {
		return nil, fmt.Errorf("failed to unmarshal persona: %w", err)
	}
	if err := json.Unmarshal(queriesJSON, &session.Queries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal queries: %w", err)
	}
	if err := json.Unmarshal(resultsJSON, &session.Results); err != nil {
		return nil, fmt.Errorf("failed to unmarshal results: %w", err)
	}
	return &session, nil
}

// ListSessions retrieves recent sessions, newest first, without their result
// payloads.
func (db *DB) ListSessions(ctx context.Context, limit int) ([]types.Session, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, persona, created_at FROM sessions ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []types.Session
	for rows.Next() {
		var session types.Session
		var personaJSON []byte
		if err := rows.Scan(&session.ID, &personaJSON, &session.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		if err := json.Unmarshal(personaJSON, &session.Persona); err != nil {
			return nil, fmt.Errorf("failed to unmarshal persona: %w", err)
		}
		sessions = append(sessions, session)
	}
	return sessions, nil
}

// DeleteSession removes a session by ID.
func (db *DB) DeleteSession(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("session not found: %s", id)
	}
	return nil
}
