// Package session owns the live analysis sessions. Each session holds its
// own criterion set and score matrix; sessions never share mutable state, so
// no coordination is needed across them.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/arcline-analytics/vantage/internal/cpm"
)

// Session is one user's analysis in progress. HTTP handlers serving the same
// session may overlap, so callers hold the session lock around any read or
// mutation of Criteria and Scores.
type Session struct {
	ID        uuid.UUID
	Criteria  *cpm.CriterionSet
	Scores    *cpm.ScoreMatrix
	CreatedAt time.Time

	mu        sync.Mutex
	updatedAt time.Time
}

func (s *Session) Lock()   { s.mu.Lock() }
func (s *Session) Unlock() { s.mu.Unlock() }

// Touch records a mutation. Call with the lock held.
func (s *Session) Touch() { s.updatedAt = time.Now().UTC() }

// UpdatedAt returns the last mutation time. Call with the lock held.
func (s *Session) UpdatedAt() time.Time { return s.updatedAt }
