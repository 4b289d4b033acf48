package cpm

import "fmt"

// ComputeWeights returns the Rank-Order-Centroid weight vector for n
// criteria. Slot 0 holds the weight for rank 1. For rank r in 1..n:
//
//	w(r) = (1/n) * sum_{i=r}^{n} 1/i
//
// The weights are strictly positive, non-increasing by rank, and sum to 1
// within floating-point tolerance. The vector is indexed by rank only;
// mapping criterion IDs to ranks is the caller's job.
func ComputeWeights(n int) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCriterionCount, n)
	}
	weights := make([]float64, n)
	// Accumulate the harmonic tail from rank n down to rank 1, so each
	// rank's sum is built exactly once and the vector length is n by
	// construction.
	var tail float64
	for r := n; r >= 1; r-- {
		tail += 1.0 / float64(r)
		weights[r-1] = tail / float64(n)
	}
	return weights, nil
}
