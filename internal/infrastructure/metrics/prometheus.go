package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tuiter/tuiter/internal/domain/entity"
	"github.com/tuiter/tuiter/internal/usecase"
)

const namespace = "tuiter"

// MetricsManager owns the service registry and its collectors.
type MetricsManager struct {
	Registry *prometheus.Registry

	httpRequests   *prometheus.CounterVec
	httpLatency    *prometheus.HistogramVec
	toggles        *prometheus.CounterVec
	toggleFailures *prometheus.CounterVec
	cacheLookups   *prometheus.CounterVec
	cacheLatency   *prometheus.HistogramVec
}

var (
	_ usecase.ToggleObserver = (*MetricsManager)(nil)
	_ usecase.CacheObserver  = (*MetricsManager)(nil)
)

func NewMetricsManager() *MetricsManager {
	m := &MetricsManager{
		Registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		toggles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reaction_toggles_total",
			Help:      "Completed reaction toggles by kind and transition.",
		}, []string{"kind", "transition"}),
		toggleFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reaction_toggle_failures_total",
			Help:      "Reaction toggles that did not complete.",
		}, []string{"kind"}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tuit_cache_lookups_total",
			Help:      "Tuit cache lookups by result.",
		}, []string{"result"}),
		cacheLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "tuit_cache_lookup_seconds",
			Help:      "Tuit cache lookup latency by result.",
			Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1},
		}, []string{"result"}),
	}

	m.Registry.MustRegister(
		m.httpRequests,
		m.httpLatency,
		m.toggles,
		m.toggleFailures,
		m.cacheLookups,
		m.cacheLatency,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *MetricsManager) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

func (m *MetricsManager) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpLatency.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *MetricsManager) ObserveToggle(kind entity.ReactionKind, transition string) {
	m.toggles.WithLabelValues(string(kind), transition).Inc()
}

func (m *MetricsManager) ObserveToggleFailure(kind entity.ReactionKind) {
	m.toggleFailures.WithLabelValues(string(kind)).Inc()
}

func (m *MetricsManager) ObserveCacheHit(elapsed time.Duration) {
	m.cacheLookups.WithLabelValues("hit").Inc()
	m.cacheLatency.WithLabelValues("hit").Observe(elapsed.Seconds())
}

func (m *MetricsManager) ObserveCacheMiss(elapsed time.Duration) {
	m.cacheLookups.WithLabelValues("miss").Inc()
	m.cacheLatency.WithLabelValues("miss").Observe(elapsed.Seconds())
}
