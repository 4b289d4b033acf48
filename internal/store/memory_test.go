package store

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/arcline-analytics/vantage/internal/cpm"
)

func sampleSnapshot(name string) *Snapshot {
	return &Snapshot{
		Name:      name,
		SessionID: uuid.New(),
		ScoreMin:  0,
		ScoreMax:  5,
		Criteria: []cpm.Criterion{
			{ID: "price", Label: "Price", Rank: 1},
			{ID: "quality", Label: "Quality", Rank: 2},
		},
		Alternatives: []string{"x", "y"},
		Scores: []ScoreRecord{
			{AlternativeID: "x", CriterionID: "price", Value: 5},
			{AlternativeID: "x", CriterionID: "quality", Value: 1},
		},
	}
}

func TestMemoryStoreSaveAndGet(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	snap := sampleSnapshot("q3 vendor review")
	if err := s.SaveSnapshot(ctx, snap); err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}
	if snap.ID == uuid.Nil {
		t.Fatal("expected assigned snapshot ID")
	}
	if snap.CreatedAt.IsZero() {
		t.Fatal("expected assigned creation time")
	}

	got, err := s.GetSnapshot(ctx, snap.ID)
	if err != nil {
		t.Fatalf("GetSnapshot failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected snapshot")
	}
	if got.Name != "q3 vendor review" || len(got.Criteria) != 2 || len(got.Scores) != 2 {
		t.Errorf("snapshot round-trip mangled: %+v", got)
	}
	if len(got.Alternatives) != 2 {
		t.Errorf("expected 2 alternatives, got %v", got.Alternatives)
	}
}

func TestMemoryStoreGetUnknown(t *testing.T) {
	s := NewMemoryStore()
	got, err := s.GetSnapshot(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("GetSnapshot failed: %v", err)
	}
	if got != nil {
		t.Error("expected nil for unknown snapshot")
	}
}

func TestMemoryStoreListFilterAndLimit(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	for _, name := range []string{"alpha review", "beta review", "alpha final"} {
		if err := s.SaveSnapshot(ctx, sampleSnapshot(name)); err != nil {
			t.Fatalf("SaveSnapshot failed: %v", err)
		}
	}

	all, err := s.ListSnapshots(ctx, SnapshotFilter{})
	if err != nil {
		t.Fatalf("ListSnapshots failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 snapshots, got %d", len(all))
	}

	alphas, err := s.ListSnapshots(ctx, SnapshotFilter{Name: "Alpha"})
	if err != nil {
		t.Fatalf("ListSnapshots failed: %v", err)
	}
	if len(alphas) != 2 {
		t.Errorf("expected 2 alpha snapshots, got %d", len(alphas))
	}

	limited, err := s.ListSnapshots(ctx, SnapshotFilter{Limit: 1})
	if err != nil {
		t.Fatalf("ListSnapshots failed: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("expected 1 snapshot with limit, got %d", len(limited))
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	snap := sampleSnapshot("doomed")
	_ = s.SaveSnapshot(ctx, snap)

	if err := s.DeleteSnapshot(ctx, snap.ID); err != nil {
		t.Fatalf("DeleteSnapshot failed: %v", err)
	}
	got, _ := s.GetSnapshot(ctx, snap.ID)
	if got != nil {
		t.Error("expected snapshot gone after delete")
	}
}

func TestMemoryStoreStats(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	stats, err := s.GetStats(ctx)
	if err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}
	if stats.TotalSnapshots != 0 || stats.LatestSavedAt != nil {
		t.Errorf("expected empty stats, got %+v", stats)
	}

	_ = s.SaveSnapshot(ctx, sampleSnapshot("one"))
	_ = s.SaveSnapshot(ctx, sampleSnapshot("two"))

	stats, err = s.GetStats(ctx)
	if err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}
	if stats.TotalSnapshots != 2 {
		t.Errorf("expected 2 snapshots, got %d", stats.TotalSnapshots)
	}
	if stats.LatestSavedAt == nil {
		t.Error("expected latest saved timestamp")
	}
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	snap := sampleSnapshot("original")
	_ = s.SaveSnapshot(ctx, snap)

	got, _ := s.GetSnapshot(ctx, snap.ID)
	got.Name = "mutated"

	again, _ := s.GetSnapshot(ctx, snap.ID)
	if again.Name != "original" {
		t.Error("caller mutation leaked into the store")
	}
}
