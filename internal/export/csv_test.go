package export

import (
	"bytes"
	"encoding/csv"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/arcline-analytics/vantage/internal/cpm"
)

func buildAnalysis(t *testing.T) ([]cpm.Criterion, []float64, *cpm.ScoreMatrix, cpm.RankedResult) {
	t.Helper()
	cs := cpm.NewCriterionSet()
	if err := cs.AddOrUpdate("price", "Price", 1); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := cs.AddOrUpdate("quality", "Quality", 2); err != nil {
		t.Fatalf("seed: %v", err)
	}

	m := cpm.NewScoreMatrix(cpm.DefaultScoreRange())
	_ = m.SetScore("x", "price", 5)
	_ = m.SetScore("x", "quality", 1)
	_ = m.SetScore("y", "price", 1)
	_ = m.SetScore("y", "quality", 5)

	weights, err := cpm.ComputeWeights(cs.Len())
	if err != nil {
		t.Fatalf("ComputeWeights: %v", err)
	}
	engine := cpm.NewEngine(slog.New(slog.NewTextHandler(io.Discard, nil)))
	result, err := engine.Rank(cs, m)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	return cs.Ranks(), weights, m, result
}

func TestWriteAnalysisSections(t *testing.T) {
	criteria, weights, m, result := buildAnalysis(t)

	var buf bytes.Buffer
	if err := WriteAnalysis(&buf, criteria, weights, m, result); err != nil {
		t.Fatalf("WriteAnalysis failed: %v", err)
	}

	sections := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n\n")
	if len(sections) != 3 {
		t.Fatalf("expected 3 sections, got %d:\n%s", len(sections), buf.String())
	}

	// Weights section: header plus one row per criterion, priority order.
	wr := csv.NewReader(strings.NewReader(sections[0]))
	rows, err := wr.ReadAll()
	if err != nil {
		t.Fatalf("parse weights section: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 weight rows, got %d", len(rows))
	}
	if rows[1][0] != "price" || rows[1][2] != "1" || rows[1][3] != "0.75" {
		t.Errorf("unexpected rank-1 row: %v", rows[1])
	}
	if rows[2][0] != "quality" || rows[2][3] != "0.25" {
		t.Errorf("unexpected rank-2 row: %v", rows[2])
	}

	// Ratings section: alternatives as rows, criteria as columns.
	rr := csv.NewReader(strings.NewReader(sections[1]))
	rows, err = rr.ReadAll()
	if err != nil {
		t.Fatalf("parse ratings section: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rating rows, got %d", len(rows))
	}
	if rows[0][1] != "price" || rows[0][2] != "quality" {
		t.Errorf("unexpected ratings header: %v", rows[0])
	}
	if rows[1][0] != "x" || rows[1][1] != "5" || rows[1][2] != "1" {
		t.Errorf("unexpected x row: %v", rows[1])
	}

	// Ranking section: best first.
	kr := csv.NewReader(strings.NewReader(sections[2]))
	rows, err = kr.ReadAll()
	if err != nil {
		t.Fatalf("parse ranking section: %v", err)
	}
	if rows[1][0] != "x" || rows[1][1] != "4" {
		t.Errorf("unexpected best row: %v", rows[1])
	}
	if rows[2][0] != "y" || rows[2][1] != "2" {
		t.Errorf("unexpected second row: %v", rows[2])
	}
}

func TestWriteAnalysisWithoutResult(t *testing.T) {
	criteria, weights, m, _ := buildAnalysis(t)

	var buf bytes.Buffer
	if err := WriteAnalysis(&buf, criteria, weights, m, nil); err != nil {
		t.Fatalf("WriteAnalysis failed: %v", err)
	}
	sections := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n\n")
	if len(sections) != 2 {
		t.Fatalf("expected 2 sections without result, got %d", len(sections))
	}
}

func TestWriteAnalysisWeightCountMismatch(t *testing.T) {
	criteria, _, m, result := buildAnalysis(t)
	var buf bytes.Buffer
	if err := WriteAnalysis(&buf, criteria, []float64{1.0}, m, result); err == nil {
		t.Error("expected error for mismatched weight count")
	}
}
