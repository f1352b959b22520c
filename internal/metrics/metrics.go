// Package metrics exposes Prometheus instrumentation for grid searches.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/gridpath/core"
)

const namespace = "gridpath"

// Metrics holds the search collectors.
type Metrics struct {
	Searches   *prometheus.CounterVec
	Duration   *prometheus.HistogramVec
	Expanded   *prometheus.HistogramVec
	PathLength *prometheus.HistogramVec
}

// New creates the search collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "searches_total",
			Help: "Completed searches by algorithm and outcome",
		}, []string{"algorithm", "found"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Name: "search_duration_seconds",
			Help:    "Search wall time",
			Buckets: prometheus.ExponentialBuckets(0.00005, 4, 10),
		}, []string{"algorithm"}),
		Expanded: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Name: "expanded_nodes",
			Help:    "Cells in the visited set per search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}, []string{"algorithm"}),
		PathLength: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Name: "path_length",
			Help:    "Steps in the returned path of successful searches",
			Buckets: prometheus.ExponentialBuckets(1, 2, 14),
		}, []string{"algorithm"}),
	}
	if reg != nil {
		reg.MustRegister(m.Searches, m.Duration, m.Expanded, m.PathLength)
	}

	return m
}

// Init creates a registry holding the search collectors plus the Go
// runtime and process collectors.
func Init(logger zerolog.Logger) (*prometheus.Registry, *Metrics) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := New(reg)
	logger.Debug().Msg("prometheus metrics initialized")

	return reg, m
}

// Observe records one finished search. A nil res is ignored.
func (m *Metrics) Observe(algorithm string, res *core.Result, dur time.Duration) {
	if m == nil || res == nil {
		return
	}
	m.Searches.WithLabelValues(algorithm, strconv.FormatBool(res.Found)).Inc()
	m.Duration.WithLabelValues(algorithm).Observe(dur.Seconds())
	m.Expanded.WithLabelValues(algorithm).Observe(float64(len(res.ExpandedNodes)))
	if res.Found {
		m.PathLength.WithLabelValues(algorithm).Observe(float64(res.Hops()))
	}
}

// Handler serves reg in the Prometheus exposition format. It never compresses
// the body itself; response encoding belongs to the HTTP middleware.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{DisableCompression: true})
}
