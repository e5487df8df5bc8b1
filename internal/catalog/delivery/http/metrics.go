package http

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors of the catalog HTTP API
type Metrics struct {
	requestCounter    *prometheus.CounterVec
	requestLatency    *prometheus.HistogramVec
	requestSummary    *prometheus.SummaryVec
	totalProducts     prometheus.Gauge
	categoriesTouched prometheus.Counter
}

// NewMetrics creates the collectors and registers them on reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requestCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_service_requests_total",
				Help: "Total number of requests to catalog service",
			},
			[]string{"method", "endpoint", "status"},
		),
		requestLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "catalog_service_request_duration_seconds",
				Help:    "Duration of catalog service requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),
		// Summary metric for percentile calculation (p50, p90, p95, p99)
		requestSummary: prometheus.NewSummaryVec(
			prometheus.SummaryOpts{
				Name: "catalog_service_request_duration_summary",
				Help: "Summary of request durations with percentiles (client-side quantiles)",
				Objectives: map[float64]float64{
					0.5:  0.05,
					0.9:  0.01,
					0.95: 0.01,
					0.99: 0.001,
				},
				MaxAge: 10 * time.Minute,
			},
			[]string{"method", "endpoint"},
		),
		totalProducts: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "catalog_products_total",
				Help: "Total number of products in the catalog",
			},
		),
		categoriesTouched: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "catalog_categories_touched_total",
				Help: "Number of category find-or-create calls made by uploads and edits",
			},
		),
	}

	reg.MustRegister(
		m.requestCounter,
		m.requestLatency,
		m.requestSummary,
		m.totalProducts,
		m.categoriesTouched,
	)
	return m
}
