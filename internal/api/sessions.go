package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/arcline-analytics/vantage/internal/cpm"
	"github.com/arcline-analytics/vantage/internal/events"
	"github.com/arcline-analytics/vantage/internal/session"
)

type SessionsHandler struct {
	mgr    *session.Manager
	events events.Client
	logger *slog.Logger
}

func NewSessionsHandler(mgr *session.Manager, ev events.Client, logger *slog.Logger) *SessionsHandler {
	return &SessionsHandler{mgr: mgr, events: ev, logger: logger}
}

// SeedCriterion seeds one criterion at session creation; list order is
// priority order (first = rank 1).
type SeedCriterion struct {
	ID    string `json:"id"`
	Label string `json:"label,omitempty"`
}

type CreateSessionRequest struct {
	Criteria     []SeedCriterion `json:"criteria,omitempty"`
	Alternatives []string        `json:"alternatives,omitempty"`
}

type SessionResponse struct {
	SessionID    string          `json:"session_id"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	ScoreRange   cpm.ScoreRange  `json:"score_range"`
	Criteria     []cpm.Criterion `json:"criteria"`
	Alternatives []string        `json:"alternatives"`
}

// sessionResponse builds the API view of a session. Call with the session
// lock held.
func sessionResponse(s *session.Session) SessionResponse {
	resp := SessionResponse{
		SessionID:    s.ID.String(),
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt(),
		ScoreRange:   s.Scores.Range(),
		Criteria:     s.Criteria.Ranks(),
		Alternatives: s.Scores.Alternatives(),
	}
	if resp.Criteria == nil {
		resp.Criteria = []cpm.Criterion{}
	}
	if resp.Alternatives == nil {
		resp.Alternatives = []string{}
	}
	return resp
}

// sessionFromRequest resolves the {id} URL param to a live session, writing
// the error response itself on failure.
func sessionFromRequest(mgr *session.Manager, w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid session id"})
		return nil, false
	}
	s, ok := mgr.Get(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "session not found"})
		return nil, false
	}
	return s, true
}

func (h *SessionsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	for _, c := range req.Criteria {
		if c.ID == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "criterion id required"})
			return
		}
	}

	s := h.mgr.Create()
	s.Lock()
	defer s.Unlock()

	for i, c := range req.Criteria {
		label := c.Label
		if label == "" {
			label = c.ID
		}
		if err := s.Criteria.AddOrUpdate(c.ID, label, i+1); err != nil {
			h.mgr.Delete(s.ID)
			writeCoreError(w, err)
			return
		}
	}
	for _, alt := range req.Alternatives {
		s.Scores.AddAlternative(alt)
	}
	s.Touch()

	sessionsCreatedTotal.Inc()
	if h.events != nil {
		_ = h.events.Publish(events.SubjectSessionCreated(s.ID.String()), events.SessionCreatedEvent{
			SessionID:    s.ID.String(),
			Criteria:     s.Criteria.Len(),
			Alternatives: len(s.Scores.Alternatives()),
			Timestamp:    time.Now().UTC(),
		})
	}
	h.logger.Info("session created", "session_id", s.ID, "criteria", s.Criteria.Len())

	writeJSON(w, http.StatusCreated, sessionResponse(s))
}

func (h *SessionsHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFromRequest(h.mgr, w, r)
	if !ok {
		return
	}
	s.Lock()
	defer s.Unlock()
	writeJSON(w, http.StatusOK, sessionResponse(s))
}

func (h *SessionsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid session id"})
		return
	}
	h.mgr.Delete(id)
	if h.events != nil {
		_ = h.events.Publish(events.SubjectSessionDeleted(id.String()), events.SessionDeletedEvent{
			SessionID: id.String(),
			Timestamp: time.Now().UTC(),
		})
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
