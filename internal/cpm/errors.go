package cpm

import "errors"

// All core failures are one of these kinds, wrapped with context at the call
// site. They are recoverable input errors: the caller surfaces them and the
// user corrects the inputs; nothing is retried or silently defaulted.
var (
	ErrInvalidRank                 = errors.New("invalid rank")
	ErrDuplicateOrMissingCriterion = errors.New("ids are not a permutation of the criterion set")
	ErrInvalidCriterionCount       = errors.New("criterion count must be at least 1")
	ErrScoreOutOfRange             = errors.New("score out of range")
	ErrMissingScore                = errors.New("missing score")
	ErrEmptyCriterionSet           = errors.New("criterion set is empty")
	ErrIncompleteScores            = errors.New("score matrix is incomplete")
)
