package main

import (
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"trackfinder/types"
)

type Metrics struct {
	registry     *prometheus.Registry
	Fetches      *prometheus.CounterVec
	Extractions  *prometheus.CounterVec
	SearchTracks prometheus.Histogram
}

// NewMetrics registers on a private registry so several servers (tests)
// can coexist in one process.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Fetches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trackfinder_fetches_total",
				Help: "Outbound page fetches by header profile and outcome",
			},
			[]string{"profile", "outcome"},
		),
		Extractions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trackfinder_extractions_total",
				Help: "Track extractions by source and outcome",
			},
			[]string{"source", "outcome"},
		),
		SearchTracks: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "trackfinder_search_tracks",
				Help:    "Embeddable tracks returned per keyword search",
				Buckets: prometheus.LinearBuckets(0, 1, 6),
			},
		),
	}

	m.registry.MustRegister(
		m.Fetches,
		m.Extractions,
		m.SearchTracks,
		collectors.NewGoCollector(),
	)

	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) RecordFetch(profile string, err error) {
	m.Fetches.WithLabelValues(profile, outcome(err)).Inc()
}

func (m *Metrics) RecordExtraction(source types.SourceKind, err error) {
	m.Extractions.WithLabelValues(source.String(), outcome(err)).Inc()
}

func (m *Metrics) RecordSearch(tracks int) {
	m.SearchTracks.Observe(float64(tracks))
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, types.ErrFetch):
		return "fetch_failed"
	case errors.Is(err, types.ErrExtraction):
		return "extraction_failed"
	case errors.Is(err, types.ErrMissingInput):
		return "missing_input"
	}
	return "error"
}
