// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package monitoring exposes Prometheus metrics for blueprint generation,
// the result cache, and the HTTP API. Each Metrics owns its registry so
// servers and tests never collide on the global one.
package monitoring

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pdiddy/blueprint-engine/pkg/types"
)

// Generation sources.
const (
	SourceGenerated = "generated"
	SourceCache     = "cache"
)

// Metrics holds every collector.
type Metrics struct {
	registry *prometheus.Registry

	GenerationsTotal   *prometheus.CounterVec
	GenerationDuration *prometheus.HistogramVec
	CacheLookups       *prometheus.CounterVec
	ArchivedRuns       *prometheus.CounterVec

	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// NewMetrics registers every collector on a fresh registry, along with the
// Go runtime and process collectors.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	register := func(c prometheus.Collector) { reg.MustRegister(c) }

	m := &Metrics{
		registry: reg,
		GenerationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "blueprint_generations_total",
				Help: "Blueprints served, by engine and source",
			},
			[]string{"engine", "source"},
		),
		GenerationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "blueprint_generation_duration_seconds",
				Help:    "Time spent deriving a blueprint",
				Buckets: []float64{.0001, .00025, .0005, .001, .0025, .005, .01, .025, .05},
			},
			[]string{"engine"},
		),
		CacheLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "blueprint_cache_lookups_total",
				Help: "Result cache lookups, by engine and outcome",
			},
			[]string{"engine", "outcome"},
		),
		ArchivedRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "blueprint_archived_runs_total",
				Help: "Runs written to the archive",
			},
			[]string{"engine"},
		),
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "blueprint_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "blueprint_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
			},
			[]string{"method", "path"},
		),
	}

	register(m.GenerationsTotal)
	register(m.GenerationDuration)
	register(m.CacheLookups)
	register(m.ArchivedRuns)
	register(m.RequestsTotal)
	register(m.RequestDuration)
	register(collectors.NewGoCollector())
	register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	return m
}

// Registry returns the registry backing m.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// RecordGeneration counts one served blueprint. Duration is only observed
// for fresh generations.
func (m *Metrics) RecordGeneration(engine types.Engine, source string, d time.Duration) {
	m.GenerationsTotal.WithLabelValues(string(engine), source).Inc()
	if source == SourceGenerated {
		m.GenerationDuration.WithLabelValues(string(engine)).Observe(d.Seconds())
	}
}

// RecordCacheLookup counts a cache hit or miss.
func (m *Metrics) RecordCacheLookup(engine types.Engine, hit bool) {
	outcome := "miss"
	if hit {
		outcome = "hit"
	}
	m.CacheLookups.WithLabelValues(string(engine), outcome).Inc()
}

// RecordArchived counts one archived run.
func (m *Metrics) RecordArchived(engine types.Engine) {
	m.ArchivedRuns.WithLabelValues(string(engine)).Inc()
}

// RecordHTTPRequest records one completed request.
func (m *Metrics) RecordHTTPRequest(method, path, status string, d time.Duration) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(d.Seconds())
}
