package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sessionsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vantage_sessions_created_total",
		Help: "Analysis sessions created.",
	})
	rankingsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vantage_rankings_total",
		Help: "Rankings computed successfully.",
	})
	rankingDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "vantage_ranking_duration_seconds",
		Help:    "Time spent computing one ranking.",
		Buckets: prometheus.ExponentialBuckets(1e-6, 10, 8),
	})
	snapshotsSavedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vantage_snapshots_saved_total",
		Help: "Analysis snapshots saved.",
	})
)
