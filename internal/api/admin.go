package api

import (
	"net/http"

	"github.com/arcline-analytics/vantage/internal/session"
	"github.com/arcline-analytics/vantage/internal/store"
)

type AdminHandler struct {
	mgr   *session.Manager
	store store.Store
}

func NewAdminHandler(mgr *session.Manager, st store.Store) *AdminHandler {
	return &AdminHandler{mgr: mgr, store: st}
}

type StatsResponse struct {
	LiveSessions int          `json:"live_sessions"`
	Snapshots    *store.Stats `json:"snapshots"`
}

func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.store.GetStats(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, StatsResponse{
		LiveSessions: h.mgr.Count(),
		Snapshots:    stats,
	})
}
