package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/arcline-analytics/vantage/internal/cpm"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeCoreError maps the scoring core's error kinds onto HTTP statuses.
// Validation failures are 422, rankings requested before the matrix is
// complete are 409, and absent data is 404. The core never produces a
// partial result for any of these, so the body is always just the error.
func writeCoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, cpm.ErrIncompleteScores):
		writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
	case errors.Is(err, cpm.ErrMissingScore):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, cpm.ErrInvalidRank),
		errors.Is(err, cpm.ErrDuplicateOrMissingCriterion),
		errors.Is(err, cpm.ErrInvalidCriterionCount),
		errors.Is(err, cpm.ErrScoreOutOfRange),
		errors.Is(err, cpm.ErrEmptyCriterionSet):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}
