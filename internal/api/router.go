package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/arcline-analytics/vantage/internal/cpm"
	"github.com/arcline-analytics/vantage/internal/events"
	"github.com/arcline-analytics/vantage/internal/session"
	"github.com/arcline-analytics/vantage/internal/store"
)

func NewRouter(mgr *session.Manager, st store.Store, ev events.Client,
	engine *cpm.Engine, adminToken string, rateLimitPerMinute int,
	logger *slog.Logger) http.Handler {

	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(RateLimitMiddleware(rateLimitPerMinute))

	sessions := NewSessionsHandler(mgr, ev, logger)
	criteria := NewCriteriaHandler(mgr)
	scores := NewScoresHandler(mgr)
	ranking := NewRankingHandler(mgr, engine, ev, logger)
	snapshots := NewSnapshotsHandler(mgr, st, engine, ev)
	admin := NewAdminHandler(mgr, st)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/sessions", sessions.Create)
		r.Get("/sessions/{id}", sessions.Get)
		r.Delete("/sessions/{id}", sessions.Delete)

		r.Put("/sessions/{id}/criteria/ranks", criteria.SetRanks)
		r.Post("/sessions/{id}/criteria", criteria.AddOrUpdate)
		r.Delete("/sessions/{id}/criteria/{criterionID}", criteria.Remove)

		r.Post("/sessions/{id}/alternatives", scores.AddAlternative)
		r.Delete("/sessions/{id}/alternatives/{alternativeID}", scores.RemoveAlternative)
		r.Put("/sessions/{id}/scores", scores.SetScore)

		r.Get("/sessions/{id}/weights", ranking.Weights)
		r.Get("/sessions/{id}/ranking", ranking.Rank)
		r.Get("/sessions/{id}/export", ranking.Export)

		r.Post("/sessions/{id}/snapshots", snapshots.Create)
		r.Get("/snapshots", snapshots.List)
		r.Get("/snapshots/{id}", snapshots.Get)
		r.Delete("/snapshots/{id}", snapshots.Delete)
		r.Post("/snapshots/{id}/restore", snapshots.Restore)

		r.Group(func(r chi.Router) {
			r.Use(AdminAuthMiddleware(adminToken))
			r.Get("/stats", admin.Stats)
		})
	})

	return r
}

func NewMetricsRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	return r
}
