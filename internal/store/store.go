package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/arcline-analytics/vantage/internal/cpm"
)

// ScoreRecord is one raw score cell as persisted in a snapshot.
type ScoreRecord struct {
	AlternativeID string  `json:"alternative_id"`
	CriterionID   string  `json:"criterion_id"`
	Value         float64 `json:"value"`
}

// Snapshot is a saved analysis: the ranked criteria, the registered
// alternatives, the raw scores, and the ranking that was current when the
// snapshot was taken. Alternatives are listed separately from the scores so
// an alternative with no scores yet survives a save/restore round trip. Live
// sessions stay in memory; only explicit snapshots are persisted.
type Snapshot struct {
	ID           uuid.UUID        `json:"snapshot_id"`
	Name         string           `json:"name"`
	SessionID    uuid.UUID        `json:"session_id"`
	ScoreMin     float64          `json:"score_min"`
	ScoreMax     float64          `json:"score_max"`
	Criteria     []cpm.Criterion  `json:"criteria"`
	Alternatives []string         `json:"alternatives"`
	Scores       []ScoreRecord    `json:"scores"`
	Result       cpm.RankedResult `json:"result,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
}

type SnapshotFilter struct {
	Name   string
	Limit  int
	Offset int
}

type Stats struct {
	TotalSnapshots int        `json:"total_snapshots"`
	LatestSavedAt  *time.Time `json:"latest_saved_at,omitempty"`
}

// Store persists analysis snapshots. GetSnapshot returns (nil, nil) for an
// unknown ID.
type Store interface {
	SaveSnapshot(ctx context.Context, s *Snapshot) error
	GetSnapshot(ctx context.Context, id uuid.UUID) (*Snapshot, error)
	ListSnapshots(ctx context.Context, filter SnapshotFilter) ([]*Snapshot, error)
	DeleteSnapshot(ctx context.Context, id uuid.UUID) error
	GetStats(ctx context.Context) (*Stats, error)
	Close() error
}
