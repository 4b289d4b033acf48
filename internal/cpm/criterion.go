package cpm

import (
	"fmt"
	"sort"
)

// Criterion is one critical success factor with its priority rank.
// Rank 1 is the most important.
type Criterion struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Rank  int    `json:"rank"`
}

// CriterionSet holds the active criteria keyed by ID. Ranks always form a
// permutation of 1..N: every mutation either preserves that invariant or is
// rejected whole.
type CriterionSet struct {
	order []string
	byID  map[string]*Criterion
}

func NewCriterionSet() *CriterionSet {
	return &CriterionSet{byID: make(map[string]*Criterion)}
}

func (cs *CriterionSet) Len() int { return len(cs.order) }

// IDs returns the criterion IDs in insertion order.
func (cs *CriterionSet) IDs() []string {
	out := make([]string, len(cs.order))
	copy(out, cs.order)
	return out
}

// Get looks up a criterion by ID.
func (cs *CriterionSet) Get(id string) (Criterion, bool) {
	c, ok := cs.byID[id]
	if !ok {
		return Criterion{}, false
	}
	return *c, true
}

// AddOrUpdate inserts a new criterion at the given rank or updates an
// existing one. The rank must lie within 1..N after the change and must not
// collide with another criterion's rank; a collision is rejected rather than
// resolved, so reordering several criteria at once goes through SetRanks.
func (cs *CriterionSet) AddOrUpdate(id, label string, rank int) error {
	existing := cs.byID[id]
	n := len(cs.order)
	if existing == nil {
		n++ // prospective size
	}
	if rank < 1 || rank > n {
		return fmt.Errorf("%w: rank %d outside 1..%d", ErrInvalidRank, rank, n)
	}
	for _, c := range cs.byID {
		if c.Rank == rank && c.ID != id {
			return fmt.Errorf("%w: rank %d already held by %q", ErrInvalidRank, rank, c.ID)
		}
	}
	if existing != nil {
		existing.Label = label
		existing.Rank = rank
		return nil
	}
	cs.byID[id] = &Criterion{ID: id, Label: label, Rank: rank}
	cs.order = append(cs.order, id)
	return nil
}

// SetRanks atomically assigns ranks 1..N following orderedIDs (index 0 =
// rank 1). This is the primary reorder path: it cannot leave the set in a
// partially reordered state. orderedIDs must be exactly a permutation of the
// current criterion IDs.
func (cs *CriterionSet) SetRanks(orderedIDs []string) error {
	if len(orderedIDs) != len(cs.order) {
		return fmt.Errorf("%w: got %d ids, have %d criteria",
			ErrDuplicateOrMissingCriterion, len(orderedIDs), len(cs.order))
	}
	seen := make(map[string]bool, len(orderedIDs))
	for _, id := range orderedIDs {
		if _, ok := cs.byID[id]; !ok {
			return fmt.Errorf("%w: unknown criterion %q", ErrDuplicateOrMissingCriterion, id)
		}
		if seen[id] {
			return fmt.Errorf("%w: duplicate criterion %q", ErrDuplicateOrMissingCriterion, id)
		}
		seen[id] = true
	}
	for i, id := range orderedIDs {
		cs.byID[id].Rank = i + 1
	}
	return nil
}

// Remove deletes a criterion and compacts the remaining ranks so they stay a
// contiguous 1..N permutation. Returns false if the ID is unknown.
func (cs *CriterionSet) Remove(id string) bool {
	c, ok := cs.byID[id]
	if !ok {
		return false
	}
	vacated := c.Rank
	delete(cs.byID, id)
	for i, oid := range cs.order {
		if oid == id {
			cs.order = append(cs.order[:i], cs.order[i+1:]...)
			break
		}
	}
	for _, other := range cs.byID {
		if other.Rank > vacated {
			other.Rank--
		}
	}
	return true
}

// Ranks returns the criteria sorted by rank, most important first.
func (cs *CriterionSet) Ranks() []Criterion {
	out := make([]Criterion, 0, len(cs.order))
	for _, id := range cs.order {
		out = append(out, *cs.byID[id])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Rank < out[j].Rank })
	return out
}
