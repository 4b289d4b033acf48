package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/arcline-analytics/vantage/internal/session"
)

type CriteriaHandler struct {
	mgr *session.Manager
}

func NewCriteriaHandler(mgr *session.Manager) *CriteriaHandler {
	return &CriteriaHandler{mgr: mgr}
}

type SetRanksRequest struct {
	OrderedIDs []string `json:"ordered_ids"`
}

// SetRanks handles PUT /api/v1/sessions/{id}/criteria/ranks. This is the
// atomic reorder path: index 0 of ordered_ids becomes rank 1.
func (h *CriteriaHandler) SetRanks(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFromRequest(h.mgr, w, r)
	if !ok {
		return
	}
	var req SetRanksRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	s.Lock()
	defer s.Unlock()
	if err := s.Criteria.SetRanks(req.OrderedIDs); err != nil {
		writeCoreError(w, err)
		return
	}
	s.Touch()
	writeJSON(w, http.StatusOK, sessionResponse(s))
}

type AddCriterionRequest struct {
	ID    string `json:"id"`
	Label string `json:"label,omitempty"`
	Rank  int    `json:"rank"`
}

// AddOrUpdate handles POST /api/v1/sessions/{id}/criteria.
func (h *CriteriaHandler) AddOrUpdate(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFromRequest(h.mgr, w, r)
	if !ok {
		return
	}
	var req AddCriterionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.ID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "criterion id required"})
		return
	}
	label := req.Label
	if label == "" {
		label = req.ID
	}

	s.Lock()
	defer s.Unlock()
	if err := s.Criteria.AddOrUpdate(req.ID, label, req.Rank); err != nil {
		writeCoreError(w, err)
		return
	}
	s.Touch()
	writeJSON(w, http.StatusOK, sessionResponse(s))
}

// Remove handles DELETE /api/v1/sessions/{id}/criteria/{criterionID}. Scores
// recorded against the criterion are dropped with it.
func (h *CriteriaHandler) Remove(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFromRequest(h.mgr, w, r)
	if !ok {
		return
	}
	criterionID := chi.URLParam(r, "criterionID")

	s.Lock()
	defer s.Unlock()
	if !s.Criteria.Remove(criterionID) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "criterion not found"})
		return
	}
	s.Scores.RemoveCriterion(criterionID)
	s.Touch()
	writeJSON(w, http.StatusOK, sessionResponse(s))
}
