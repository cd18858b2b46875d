package types

import (
	"time"

	"github.com/google/uuid"
)

// Session groups one persona search run: the seed persona, the queries that
// were synthesized for it, and the ranked results. Sessions are what the db
// package persists; the scoring core itself never touches storage.
type Session struct {
	ID        uuid.UUID     `json:"id"`
	Persona   Persona       `json:"persona"`
	Queries   []Query       `json:"queries,omitempty"`
	Results   []ScoreResult `json:"results,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}

// NewSession creates a Session for a persona with a fresh ID.
func NewSession(persona Persona) *Session {
	return &Session{
		ID:        uuid.New(),
		Persona:   persona,
		CreatedAt: time.Now().UTC(),
	}
}
