package cpm

import (
	"fmt"
	"log/slog"
	"sort"
)

// RankedAlternative is one row of a ranking.
type RankedAlternative struct {
	AlternativeID string  `json:"alternative_id"`
	Composite     float64 `json:"composite"`
	RawSum        float64 `json:"raw_sum"`
	Normalized    float64 `json:"normalized"` // composite on a 0-100 scale
}

// RankedResult lists alternatives best-first.
type RankedResult []RankedAlternative

// Engine aggregates a criterion set and a score matrix into a ranking. It
// holds no state between calls: Rank is a pure function of its two inputs,
// so the caller can re-invoke it after every edit.
type Engine struct {
	logger *slog.Logger
}

func NewEngine(logger *slog.Logger) *Engine {
	return &Engine{logger: logger}
}

// Rank computes ROC weights from the criterion ranks, aggregates weighted
// scores per alternative, and returns the alternatives best-first. Ties on
// the composite score break ascending by alternative ID.
func (e *Engine) Rank(cs *CriterionSet, m *ScoreMatrix) (RankedResult, error) {
	n := cs.Len()
	if n == 0 {
		return nil, ErrEmptyCriterionSet
	}
	ids := cs.IDs()
	if !m.IsComplete(ids) {
		return nil, fmt.Errorf("%w: every alternative needs a score for all %d criteria",
			ErrIncompleteScores, n)
	}

	weights, err := ComputeWeights(n)
	if err != nil {
		return nil, err
	}

	// Resolve each criterion's weight through its assigned rank. Rank 1
	// maps to weights[0]; this is the only place the 1-based rank meets
	// the 0-based weight vector.
	weightByID := make(map[string]float64, n)
	for _, c := range cs.Ranks() {
		weightByID[c.ID] = weights[c.Rank-1]
	}

	maxScore := m.Range().Max
	alts := m.Alternatives()
	result := make(RankedResult, 0, len(alts))
	for _, alt := range alts {
		var composite, rawSum float64
		for _, id := range ids {
			score, err := m.Score(alt, id)
			if err != nil {
				return nil, err
			}
			rawSum += score
			composite += weightByID[id] * score
		}
		row := RankedAlternative{
			AlternativeID: alt,
			Composite:     composite,
			RawSum:        rawSum,
		}
		if maxScore > 0 {
			row.Normalized = composite / maxScore * 100
		}
		result = append(result, row)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Composite != result[j].Composite {
			return result[i].Composite > result[j].Composite
		}
		return result[i].AlternativeID < result[j].AlternativeID
	})

	if e.logger != nil {
		e.logger.Debug("ranking computed", "criteria", n, "alternatives", len(result))
	}
	return result, nil
}
