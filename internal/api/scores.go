package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/arcline-analytics/vantage/internal/session"
)

type ScoresHandler struct {
	mgr *session.Manager
}

func NewScoresHandler(mgr *session.Manager) *ScoresHandler {
	return &ScoresHandler{mgr: mgr}
}

type AddAlternativeRequest struct {
	ID string `json:"id"`
}

func (h *ScoresHandler) AddAlternative(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFromRequest(h.mgr, w, r)
	if !ok {
		return
	}
	var req AddAlternativeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.ID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "alternative id required"})
		return
	}

	s.Lock()
	defer s.Unlock()
	s.Scores.AddAlternative(req.ID)
	s.Touch()
	writeJSON(w, http.StatusCreated, sessionResponse(s))
}

func (h *ScoresHandler) RemoveAlternative(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFromRequest(h.mgr, w, r)
	if !ok {
		return
	}
	alternativeID := chi.URLParam(r, "alternativeID")

	s.Lock()
	defer s.Unlock()
	s.Scores.RemoveAlternative(alternativeID)
	s.Touch()
	writeJSON(w, http.StatusOK, sessionResponse(s))
}

type SetScoreRequest struct {
	AlternativeID string  `json:"alternative_id"`
	CriterionID   string  `json:"criterion_id"`
	Value         float64 `json:"value"`
}

// SetScore handles PUT /api/v1/sessions/{id}/scores. The criterion must be
// in the active set; scoring against a retired or misspelled criterion is
// rejected rather than stored.
func (h *ScoresHandler) SetScore(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFromRequest(h.mgr, w, r)
	if !ok {
		return
	}
	var req SetScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.AlternativeID == "" || req.CriterionID == "" {
		writeJSON(w, http.StatusBadRequest,
			map[string]string{"error": "alternative_id and criterion_id required"})
		return
	}

	s.Lock()
	defer s.Unlock()
	if _, ok := s.Criteria.Get(req.CriterionID); !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown criterion"})
		return
	}
	if err := s.Scores.SetScore(req.AlternativeID, req.CriterionID, req.Value); err != nil {
		writeCoreError(w, err)
		return
	}
	s.Touch()
	writeJSON(w, http.StatusOK, sessionResponse(s))
}
