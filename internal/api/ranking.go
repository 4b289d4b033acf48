package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/arcline-analytics/vantage/internal/cpm"
	"github.com/arcline-analytics/vantage/internal/events"
	"github.com/arcline-analytics/vantage/internal/export"
	"github.com/arcline-analytics/vantage/internal/session"
)

type RankingHandler struct {
	mgr    *session.Manager
	engine *cpm.Engine
	events events.Client
	logger *slog.Logger
}

func NewRankingHandler(mgr *session.Manager, engine *cpm.Engine, ev events.Client,
	logger *slog.Logger) *RankingHandler {
	return &RankingHandler{mgr: mgr, engine: engine, events: ev, logger: logger}
}

type WeightRow struct {
	CriterionID string  `json:"criterion_id"`
	Label       string  `json:"label"`
	Rank        int     `json:"rank"`
	Weight      float64 `json:"weight"`
}

// Weights handles GET /api/v1/sessions/{id}/weights: the ROC weight table
// for the current priority order.
func (h *RankingHandler) Weights(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFromRequest(h.mgr, w, r)
	if !ok {
		return
	}

	s.Lock()
	defer s.Unlock()
	rows, err := weightRows(s.Criteria)
	if err != nil {
		writeCoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"session_id": s.ID.String(),
		"weights":    rows,
	})
}

// weightRows pairs each criterion with its rank's ROC weight. Call with the
// session lock held.
func weightRows(cs *cpm.CriterionSet) ([]WeightRow, error) {
	if cs.Len() == 0 {
		return nil, cpm.ErrEmptyCriterionSet
	}
	weights, err := cpm.ComputeWeights(cs.Len())
	if err != nil {
		return nil, err
	}
	criteria := cs.Ranks()
	rows := make([]WeightRow, 0, len(criteria))
	for _, c := range criteria {
		rows = append(rows, WeightRow{
			CriterionID: c.ID,
			Label:       c.Label,
			Rank:        c.Rank,
			Weight:      weights[c.Rank-1],
		})
	}
	return rows, nil
}

type RankingResponse struct {
	SessionID  string           `json:"session_id"`
	ComputedAt time.Time        `json:"computed_at"`
	Results    cpm.RankedResult `json:"results"`
}

// Rank handles GET /api/v1/sessions/{id}/ranking. The caller invokes this
// after every edit; the engine recomputes from scratch each time.
func (h *RankingHandler) Rank(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFromRequest(h.mgr, w, r)
	if !ok {
		return
	}

	s.Lock()
	start := time.Now()
	result, err := h.engine.Rank(s.Criteria, s.Scores)
	nCriteria := s.Criteria.Len()
	s.Unlock()
	if err != nil {
		writeCoreError(w, err)
		return
	}

	rankingsTotal.Inc()
	rankingDuration.Observe(time.Since(start).Seconds())
	if h.events != nil {
		ev := events.RankingComputedEvent{
			SessionID:    s.ID.String(),
			Criteria:     nCriteria,
			Alternatives: len(result),
			Timestamp:    time.Now().UTC(),
		}
		if len(result) > 0 {
			ev.Best = result[0].AlternativeID
		}
		_ = h.events.Publish(events.SubjectSessionRanked(s.ID.String()), ev)
	}

	writeJSON(w, http.StatusOK, RankingResponse{
		SessionID:  s.ID.String(),
		ComputedAt: time.Now().UTC(),
		Results:    result,
	})
}

// Export handles GET /api/v1/sessions/{id}/export: the whole analysis as
// CSV. An incomplete matrix still exports weights and ratings; only the
// ranking section is omitted then.
func (h *RankingHandler) Export(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFromRequest(h.mgr, w, r)
	if !ok {
		return
	}

	s.Lock()
	defer s.Unlock()

	if s.Criteria.Len() == 0 {
		writeCoreError(w, cpm.ErrEmptyCriterionSet)
		return
	}
	weights, err := cpm.ComputeWeights(s.Criteria.Len())
	if err != nil {
		writeCoreError(w, err)
		return
	}

	result, err := h.engine.Rank(s.Criteria, s.Scores)
	if err != nil {
		if !errors.Is(err, cpm.ErrIncompleteScores) {
			writeCoreError(w, err)
			return
		}
		result = nil // partial analysis: export without the ranking section
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="vantage_analysis_%s.csv"`, s.ID))
	w.WriteHeader(http.StatusOK)

	if err := export.WriteAnalysis(w, s.Criteria.Ranks(), weights, s.Scores, result); err != nil {
		h.logger.Error("csv export failed", "session_id", s.ID, "error", err)
	}
}
