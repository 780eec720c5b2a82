// Package metrics provides Prometheus-compatible instrumentation for the
// transition cost engine's hot path: expansions, cache hits/misses, and
// the labels held by the most recently built LabelSet.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics collects counters, gauges, and histograms for the expander and
// transition functor, all namespaced with "mapmatch_". All methods are
// nil-receiver-safe and no-ops when disabled, so instrumentation can be
// threaded through hot-path code unconditionally.
type Metrics struct {
	expansionsTotal   *prometheus.CounterVec
	cacheHitsTotal    *prometheus.CounterVec
	cacheMissesTotal  *prometheus.CounterVec
	expansionDuration *prometheus.HistogramVec
	labelsHeld        prometheus.Gauge
	breakagesTotal    *prometheus.CounterVec

	mu      sync.RWMutex
	enabled bool
}

// New creates and registers every metric with registry. If registry is
// nil, the Prometheus default registerer is used.
func New(registry prometheus.Registerer) *Metrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registry)

	m := &Metrics{enabled: true}

	m.expansionsTotal = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mapmatch",
		Name:      "expansions_total",
		Help:      "Bounded shortest-path expansions performed by UpdateRoute",
	}, []string{"mode"})

	m.cacheHitsTotal = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mapmatch",
		Name:      "route_cache_hits_total",
		Help:      "Transition cost lookups answered from an already-routed left state",
	}, []string{"mode"})

	m.cacheMissesTotal = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mapmatch",
		Name:      "route_cache_misses_total",
		Help:      "Transition cost lookups that triggered a fresh expansion",
	}, []string{"mode"})

	m.expansionDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "mapmatch",
		Name:      "expansion_duration_seconds",
		Help:      "Wall-clock duration of a single bounded expansion",
		Buckets:   prometheus.DefBuckets,
	}, []string{"mode"})

	m.labelsHeld = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: "mapmatch",
		Name:      "labels_held",
		Help:      "Labels stored in the most recently built LabelSet",
	})

	m.breakagesTotal = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mapmatch",
		Name:      "breakages_total",
		Help:      "Transitions returning the no-transition sentinel (unreachable within budget)",
	}, []string{"mode"})

	return m
}

// Enable turns instrumentation on. New Metrics are enabled by default.
func (m *Metrics) Enable() {
	if m == nil {
		return
	}
	m.mu.Lock()
	m.enabled = true
	m.mu.Unlock()
}

// Disable turns instrumentation off; all recording methods become no-ops
// until Enable is called again.
func (m *Metrics) Disable() {
	if m == nil {
		return
	}
	m.mu.Lock()
	m.enabled = false
	m.mu.Unlock()
}

func (m *Metrics) isEnabled() bool {
	if m == nil {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.enabled
}

// RecordExpansion records one UpdateRoute expansion for mode, along with
// its wall-clock duration in seconds.
func (m *Metrics) RecordExpansion(mode string, durationSeconds float64) {
	if !m.isEnabled() {
		return
	}
	m.expansionsTotal.WithLabelValues(mode).Inc()
	m.expansionDuration.WithLabelValues(mode).Observe(durationSeconds)
}

// RecordCacheHit records a Cost call answered without expanding.
func (m *Metrics) RecordCacheHit(mode string) {
	if !m.isEnabled() {
		return
	}
	m.cacheHitsTotal.WithLabelValues(mode).Inc()
}

// RecordCacheMiss records a Cost call that triggered UpdateRoute.
func (m *Metrics) RecordCacheMiss(mode string) {
	if !m.isEnabled() {
		return
	}
	m.cacheMissesTotal.WithLabelValues(mode).Inc()
}

// RecordBreakage records a Cost call that returned the no-transition
// sentinel.
func (m *Metrics) RecordBreakage(mode string) {
	if !m.isEnabled() {
		return
	}
	m.breakagesTotal.WithLabelValues(mode).Inc()
}

// SetLabelsHeld sets the labels-held gauge to n; the transition functor
// reports the size of the LabelSet its latest expansion built.
func (m *Metrics) SetLabelsHeld(n int) {
	if !m.isEnabled() {
		return
	}
	m.labelsHeld.Set(float64(n))
}
