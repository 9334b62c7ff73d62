package metrics

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "alaska_weather"

// Metrics holds the Prometheus collectors of the service.
type Metrics struct {
	RequestLatency   *prometheus.HistogramVec // labels: path, method, code
	SamplesGenerated prometheus.Counter
	UpsertFailures   prometheus.Counter
	ViewCache        *prometheus.CounterVec // labels: view, result={hit,miss}
	Invalidations    *prometheus.CounterVec // labels: view
	ChangeEvents     *prometheus.CounterVec // labels: table
}

func newMetrics() *Metrics {
	return &Metrics{
		RequestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_latency_seconds",
			Help:      "HTTP request latencies in seconds.",
			Buckets:   []float64{0.001, 0.01, 0.1, 0.2, 0.4, 0.8, 1.0, 2.0, 4.0, 8.0},
		}, []string{"path", "method", "code"}),
		SamplesGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "weather_samples_generated_total",
			Help:      "Total synthetic weather samples generated.",
		}),
		UpsertFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "weather_upsert_failures_total",
			Help:      "Total weather upserts that failed and were skipped.",
		}),
		ViewCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "view_cache_total",
			Help:      "Dashboard view cache lookups by view and result.",
		}, []string{"view", "result"}),
		Invalidations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "view_invalidations_total",
			Help:      "Dashboard view invalidations by view.",
		}, []string{"view"}),
		ChangeEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "change_events_total",
			Help:      "Realtime change notifications received by table.",
		}, []string{"table"}),
	}
}

// New creates and registers all metrics with the default Prometheus registry.
func New() *Metrics {
	m := newMetrics()

	prometheus.MustRegister(
		m.RequestLatency,
		m.SamplesGenerated,
		m.UpsertFailures,
		m.ViewCache,
		m.Invalidations,
		m.ChangeEvents,
	)

	return m
}

// NewForTesting creates unregistered metrics to avoid "already registered"
// panics when called from multiple tests.
func NewForTesting() *Metrics {
	return newMetrics()
}

// LatencyHandler records request latency labelled with the matched route template.
func (m *Metrics) LatencyHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		if route := mux.CurrentRoute(r); route != nil {
			if tpl, err := route.GetPathTemplate(); err == nil {
				path = tpl
			}
		}

		obs := m.RequestLatency.MustCurryWith(prometheus.Labels{"path": path})
		promhttp.InstrumentHandlerDuration(obs, next).ServeHTTP(w, r)
	})
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
