package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/arcline-analytics/vantage/internal/cpm"
	"github.com/arcline-analytics/vantage/internal/events"
	"github.com/arcline-analytics/vantage/internal/session"
	"github.com/arcline-analytics/vantage/internal/store"
)

type SnapshotsHandler struct {
	mgr    *session.Manager
	store  store.Store
	engine *cpm.Engine
	events events.Client
}

func NewSnapshotsHandler(mgr *session.Manager, st store.Store, engine *cpm.Engine,
	ev events.Client) *SnapshotsHandler {
	return &SnapshotsHandler{mgr: mgr, store: st, engine: engine, events: ev}
}

type CreateSnapshotRequest struct {
	Name string `json:"name"`
}

// Create handles POST /api/v1/sessions/{id}/snapshots. The snapshot captures
// whatever the session holds; an incomplete matrix is saved without a
// ranking rather than rejected.
func (h *SnapshotsHandler) Create(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFromRequest(h.mgr, w, r)
	if !ok {
		return
	}
	var req CreateSnapshotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name required"})
		return
	}

	s.Lock()
	snap := snapshotOf(s, req.Name)
	result, err := h.engine.Rank(s.Criteria, s.Scores)
	s.Unlock()
	switch {
	case err == nil:
		snap.Result = result
	case errors.Is(err, cpm.ErrIncompleteScores), errors.Is(err, cpm.ErrEmptyCriterionSet):
		// saved without a ranking
	default:
		writeCoreError(w, err)
		return
	}

	if err := h.store.SaveSnapshot(r.Context(), snap); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	snapshotsSavedTotal.Inc()
	if h.events != nil {
		_ = h.events.Publish(events.SubjectSnapshotSaved(snap.ID.String()), events.SnapshotSavedEvent{
			SnapshotID: snap.ID.String(),
			SessionID:  snap.SessionID.String(),
			Name:       snap.Name,
			Timestamp:  time.Now().UTC(),
		})
	}
	writeJSON(w, http.StatusCreated, snap)
}

// snapshotOf captures a session's criteria, alternatives, and scores. Call
// with the session lock held.
func snapshotOf(s *session.Session, name string) *store.Snapshot {
	rng := s.Scores.Range()
	snap := &store.Snapshot{
		Name:         name,
		SessionID:    s.ID,
		ScoreMin:     rng.Min,
		ScoreMax:     rng.Max,
		Criteria:     s.Criteria.Ranks(),
		Alternatives: s.Scores.Alternatives(),
	}
	for _, alt := range s.Scores.Alternatives() {
		for _, id := range s.Criteria.IDs() {
			v, err := s.Scores.Score(alt, id)
			if err != nil {
				continue // unscored cell, not part of the snapshot
			}
			snap.Scores = append(snap.Scores, store.ScoreRecord{
				AlternativeID: alt,
				CriterionID:   id,
				Value:         v,
			})
		}
	}
	return snap
}

func (h *SnapshotsHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := store.SnapshotFilter{Name: r.URL.Query().Get("name")}
	snaps, err := h.store.ListSnapshots(r.Context(), filter)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if snaps == nil {
		snaps = []*store.Snapshot{}
	}
	writeJSON(w, http.StatusOK, snaps)
}

func (h *SnapshotsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid snapshot id"})
		return
	}
	snap, err := h.store.GetSnapshot(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if snap == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "snapshot not found"})
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (h *SnapshotsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid snapshot id"})
		return
	}
	if err := h.store.DeleteSnapshot(r.Context(), id); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if h.events != nil {
		_ = h.events.Publish(events.SubjectSnapshotDeleted(id.String()),
			map[string]string{"snapshot_id": id.String()})
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// Restore handles POST /api/v1/snapshots/{id}/restore: rebuilds a saved
// analysis as a brand-new session, under the score range the snapshot was
// taken with.
func (h *SnapshotsHandler) Restore(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid snapshot id"})
		return
	}
	snap, err := h.store.GetSnapshot(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if snap == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "snapshot not found"})
		return
	}

	s := h.mgr.CreateWithRange(cpm.ScoreRange{Min: snap.ScoreMin, Max: snap.ScoreMax})
	s.Lock()
	defer s.Unlock()
	for _, c := range snap.Criteria {
		if err := s.Criteria.AddOrUpdate(c.ID, c.Label, c.Rank); err != nil {
			h.mgr.Delete(s.ID)
			writeJSON(w, http.StatusInternalServerError,
				map[string]string{"error": "corrupt snapshot: " + err.Error()})
			return
		}
	}
	// Register alternatives before replaying scores so an unscored
	// alternative is not dropped from the restored session.
	for _, alt := range snap.Alternatives {
		s.Scores.AddAlternative(alt)
	}
	for _, rec := range snap.Scores {
		if err := s.Scores.SetScore(rec.AlternativeID, rec.CriterionID, rec.Value); err != nil {
			h.mgr.Delete(s.ID)
			writeJSON(w, http.StatusInternalServerError,
				map[string]string{"error": "corrupt snapshot: " + err.Error()})
			return
		}
	}
	s.Touch()

	if h.events != nil {
		_ = h.events.Publish(events.SubjectSnapshotRestored(id.String()), events.SnapshotRestoredEvent{
			SnapshotID:   id.String(),
			NewSessionID: s.ID.String(),
			Timestamp:    time.Now().UTC(),
		})
	}
	writeJSON(w, http.StatusCreated, sessionResponse(s))
}
