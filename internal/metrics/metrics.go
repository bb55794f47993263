package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics holds the landing server collectors. Each server gets its own
// registry so tests can build as many servers as they like.
type Metrics struct {
	Registry *prometheus.Registry

	Requests     *prometheus.CounterVec
	PageRenders  prometheus.Counter
	RenderErrors prometheus.Counter
	RenderTime   prometheus.Histogram
}

// New registers the collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "landing_http_requests_total",
			Help: "HTTP requests served, by route pattern and status code",
		}, []string{"route", "code"}),
		PageRenders: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "landing_page_renders_total",
			Help: "Landing pages prerendered",
		}),
		RenderErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "landing_page_render_errors_total",
			Help: "Landing page renders that failed while writing the response",
		}),
		RenderTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "landing_page_render_seconds",
			Help:    "Time spent prerendering the landing page",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 12),
		}),
	}

	m.Registry.MustRegister(
		m.Requests,
		m.PageRenders,
		m.RenderErrors,
		m.RenderTime,
		collectors.NewGoCollector(),
	)

	return m
}
