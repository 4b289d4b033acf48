package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore keeps snapshots in process memory. Used when no database is
// configured; snapshots are lost on restart.
type MemoryStore struct {
	mu        sync.RWMutex
	snapshots map[uuid.UUID]*Snapshot
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{snapshots: make(map[uuid.UUID]*Snapshot)}
}

func (s *MemoryStore) SaveSnapshot(_ context.Context, snap *Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if snap.ID == uuid.Nil {
		snap.ID = uuid.New()
	}
	if snap.CreatedAt.IsZero() {
		snap.CreatedAt = time.Now().UTC()
	}
	cp := *snap
	s.snapshots[snap.ID] = &cp
	return nil
}

func (s *MemoryStore) GetSnapshot(_ context.Context, id uuid.UUID) (*Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap, ok := s.snapshots[id]
	if !ok {
		return nil, nil
	}
	cp := *snap
	return &cp, nil
}

func (s *MemoryStore) ListSnapshots(_ context.Context, filter SnapshotFilter) ([]*Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*Snapshot
	for _, snap := range s.snapshots {
		if filter.Name != "" && !strings.Contains(
			strings.ToLower(snap.Name), strings.ToLower(filter.Name)) {
			continue
		}
		cp := *snap
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})

	if filter.Offset > 0 {
		if filter.Offset >= len(out) {
			return nil, nil
		}
		out = out[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(out) {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (s *MemoryStore) DeleteSnapshot(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.snapshots, id)
	return nil
}

func (s *MemoryStore) GetStats(_ context.Context) (*Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stats := &Stats{TotalSnapshots: len(s.snapshots)}
	for _, snap := range s.snapshots {
		if stats.LatestSavedAt == nil || snap.CreatedAt.After(*stats.LatestSavedAt) {
			t := snap.CreatedAt
			stats.LatestSavedAt = &t
		}
	}
	return stats, nil
}

func (s *MemoryStore) Close() error { return nil }
