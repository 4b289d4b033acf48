package session

import (
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/arcline-analytics/vantage/internal/cpm"
)

// Manager is the TTL-expiring registry of live sessions. Idle sessions are
// evicted after the configured TTL; any access refreshes the clock.
type Manager struct {
	sessions *gocache.Cache
	rng      cpm.ScoreRange
	ttl      time.Duration
}

func NewManager(ttl time.Duration, rng cpm.ScoreRange) *Manager {
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	cleanup := ttl / 2
	if cleanup <= 0 {
		cleanup = 0
	}
	return &Manager{
		sessions: gocache.New(ttl, cleanup),
		rng:      rng,
		ttl:      ttl,
	}
}

// Create registers a fresh, empty session using the manager's score range.
func (m *Manager) Create() *Session {
	return m.CreateWithRange(m.rng)
}

// CreateWithRange registers a fresh session with an explicit score range.
// Used when restoring a snapshot taken under a different configuration.
func (m *Manager) CreateWithRange(rng cpm.ScoreRange) *Session {
	now := time.Now().UTC()
	s := &Session{
		ID:        uuid.New(),
		Criteria:  cpm.NewCriterionSet(),
		Scores:    cpm.NewScoreMatrix(rng),
		CreatedAt: now,
		updatedAt: now,
	}
	m.sessions.Set(s.ID.String(), s, m.ttl)
	return s
}

// Get returns a live session and refreshes its TTL.
func (m *Manager) Get(id uuid.UUID) (*Session, bool) {
	v, ok := m.sessions.Get(id.String())
	if !ok {
		return nil, false
	}
	s := v.(*Session)
	m.sessions.Set(id.String(), s, m.ttl)
	return s, true
}

// Delete removes a session. Deleting an unknown ID is a no-op.
func (m *Manager) Delete(id uuid.UUID) {
	m.sessions.Delete(id.String())
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	return m.sessions.ItemCount()
}
