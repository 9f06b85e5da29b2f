package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

const namespace = "payoutopt"

// Metrics holds the server's Prometheus collectors on a private registry.
type Metrics struct {
	registry     *prometheus.Registry
	calculations *prometheus.CounterVec
	duration     prometheus.Histogram
	recommended  *prometheus.CounterVec
}

// NewMetrics registers the calculation collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calculations_total",
			Help:      "Calculation requests by outcome.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "calculation_duration_seconds",
			Help:      "Time spent optimizing a profile.",
			Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}),
		recommended: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recommended_strategy_total",
			Help:      "Recommended strategy family per successful calculation.",
		}, []string{"code"}),
	}
	m.registry.MustRegister(m.calculations, m.duration, m.recommended)
	return m
}

func (m *Metrics) observe(outcome, code string, seconds float64) {
	m.calculations.WithLabelValues(outcome).Inc()
	if outcome == OutcomeSuccess {
		m.duration.Observe(seconds)
		m.recommended.WithLabelValues(code).Inc()
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() fasthttp.RequestHandler {
	return fasthttpadaptor.NewFastHTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
