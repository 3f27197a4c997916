// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	FetchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "archiv_index_fetches_total",
		Help: "Contents listing requests by outcome.",
	}, []string{"status"})

	FetchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "archiv_index_fetch_duration_seconds",
		Help:    "Time spent fetching the contents listing.",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	})

	LinksRendered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "archiv_index_links_rendered_total",
		Help: "Version links rendered from directory entries, excluding the current link.",
	})

	PagesServed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "archiv_index_pages_served_total",
		Help: "Rendered responses by surface (page, fragment, api).",
	}, []string{"surface"})
)
