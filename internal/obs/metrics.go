// Package obs provides Prometheus instrumentation for the accommodation
// search pipeline.
package obs

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors for the service.
// All recording methods are safe to call on a nil receiver, so components
// can be wired without metrics in tests.
type Metrics struct {
	SearchesTotal    prometheus.Counter
	CacheHitsTotal   prometheus.Counter
	FallbackTotal    prometheus.Counter
	ProviderFailures *prometheus.CounterVec
	ProviderResults  *prometheus.CounterVec
	ProviderLatency  *prometheus.HistogramVec
	Registry         *prometheus.Registry
}

// New creates the collectors and registers them on the given registry.
func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		SearchesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "accommodation_searches_total",
			Help: "Total number of single-destination searches",
		}),
		CacheHitsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "accommodation_cache_hits_total",
			Help: "Number of searches served from the result cache",
		}),
		FallbackTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "accommodation_fallback_total",
			Help: "Searches resolved by the terminal fallback provider",
		}),
		ProviderFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "accommodation_provider_failures_total",
			Help: "Errors and panics surfaced by each provider",
		}, []string{"provider"}),
		ProviderResults: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "accommodation_provider_results_total",
			Help: "Searches won by each provider (first non-empty result)",
		}, []string{"provider"}),
		ProviderLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "accommodation_provider_latency_seconds",
			Help:    "Latency of individual provider search calls",
			Buckets: prometheus.DefBuckets,
		}, []string{"provider"}),
		Registry: reg,
	}

	reg.MustRegister(
		m.SearchesTotal,
		m.CacheHitsTotal,
		m.FallbackTotal,
		m.ProviderFailures,
		m.ProviderResults,
		m.ProviderLatency,
	)

	return m
}

// IncSearches records one coordinator search.
func (m *Metrics) IncSearches() {
	if m == nil {
		return
	}
	m.SearchesTotal.Inc()
}

// IncCacheHits records a search served from cache.
func (m *Metrics) IncCacheHits() {
	if m == nil {
		return
	}
	m.CacheHitsTotal.Inc()
}

// IncFallback records a search resolved by the terminal provider.
func (m *Metrics) IncFallback() {
	if m == nil {
		return
	}
	m.FallbackTotal.Inc()
}

// IncProviderFailure records an error or panic from a provider.
func (m *Metrics) IncProviderFailure(provider string) {
	if m == nil {
		return
	}
	m.ProviderFailures.WithLabelValues(provider).Inc()
}

// IncProviderResult records which provider won a search.
func (m *Metrics) IncProviderResult(provider string) {
	if m == nil {
		return
	}
	m.ProviderResults.WithLabelValues(provider).Inc()
}

// ObserveProviderLatency records the duration of one provider call.
func (m *Metrics) ObserveProviderLatency(provider string, seconds float64) {
	if m == nil {
		return
	}
	m.ProviderLatency.WithLabelValues(provider).Observe(seconds)
}

// Handler returns an http.Handler that serves the registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
