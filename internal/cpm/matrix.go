package cpm

import (
	"fmt"
	"sort"
)

// ScoreRange bounds the raw scores a ScoreMatrix accepts.
type ScoreRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// DefaultScoreRange is the 0..5 input scale of the scoring controls.
func DefaultScoreRange() ScoreRange { return ScoreRange{Min: 0, Max: 5} }

type scoreKey struct {
	alt  string
	crit string
}

// ScoreMatrix stores raw per-alternative, per-criterion scores. Absent
// entries stay absent: reads fail with ErrMissingScore instead of yielding a
// default, so incomplete input can never leak into a ranking.
type ScoreMatrix struct {
	rng    ScoreRange
	alts   map[string]bool
	scores map[scoreKey]float64
}

func NewScoreMatrix(rng ScoreRange) *ScoreMatrix {
	return &ScoreMatrix{
		rng:    rng,
		alts:   make(map[string]bool),
		scores: make(map[scoreKey]float64),
	}
}

func (m *ScoreMatrix) Range() ScoreRange { return m.rng }

// AddAlternative registers an alternative with no scores yet.
func (m *ScoreMatrix) AddAlternative(alt string) {
	m.alts[alt] = true
}

// RemoveAlternative drops an alternative and all of its scores.
func (m *ScoreMatrix) RemoveAlternative(alt string) {
	delete(m.alts, alt)
	for k := range m.scores {
		if k.alt == alt {
			delete(m.scores, k)
		}
	}
}

// RemoveCriterion drops every score recorded against a criterion. Called
// when the criterion leaves the active set.
func (m *ScoreMatrix) RemoveCriterion(crit string) {
	for k := range m.scores {
		if k.crit == crit {
			delete(m.scores, k)
		}
	}
}

// SetScore records a raw score, registering the alternative if needed.
func (m *ScoreMatrix) SetScore(alt, crit string, value float64) error {
	if value < m.rng.Min || value > m.rng.Max {
		return fmt.Errorf("%w: %g outside [%g, %g]",
			ErrScoreOutOfRange, value, m.rng.Min, m.rng.Max)
	}
	m.alts[alt] = true
	m.scores[scoreKey{alt: alt, crit: crit}] = value
	return nil
}

// Score returns the stored score for one (alternative, criterion) pair.
func (m *ScoreMatrix) Score(alt, crit string) (float64, error) {
	v, ok := m.scores[scoreKey{alt: alt, crit: crit}]
	if !ok {
		return 0, fmt.Errorf("%w: alternative %q, criterion %q", ErrMissingScore, alt, crit)
	}
	return v, nil
}

// Alternatives returns the registered alternative IDs sorted ascending.
func (m *ScoreMatrix) Alternatives() []string {
	out := make([]string, 0, len(m.alts))
	for alt := range m.alts {
		out = append(out, alt)
	}
	sort.Strings(out)
	return out
}

// IsComplete reports whether every registered alternative has a score for
// every given criterion ID.
func (m *ScoreMatrix) IsComplete(criterionIDs []string) bool {
	for alt := range m.alts {
		for _, crit := range criterionIDs {
			if _, ok := m.scores[scoreKey{alt: alt, crit: crit}]; !ok {
				return false
			}
		}
	}
	return true
}
