// Package metrics provides Prometheus metrics collection for the dashboard backend.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "grbpwr_dashboard"

// Build results.
const (
	ResultOK         = "ok"
	ResultError      = "error"
	ResultSuperseded = "superseded"
	ResultDegraded   = "degraded"
)

// Collector holds all Prometheus metrics.
type Collector struct {
	registry *prometheus.Registry

	// Report metrics
	ReportBuilds   *prometheus.CounterVec
	ReportDuration prometheus.Histogram
	FetchFailures  *prometheus.CounterVec

	// Insight metrics
	InsightRequests *prometheus.CounterVec
	InsightDuration prometheus.Histogram

	// Stock alert metrics
	CriticalProducts prometheus.Gauge
	StockAlertsSent  prometheus.Counter

	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// New creates a collector on its own registry with Go runtime and process collectors.
func New() *Collector {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return NewWithRegistry(reg)
}

// NewWithRegistry registers every metric with reg.
func NewWithRegistry(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)

	c := &Collector{
		ReportBuilds: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "report_builds_total",
				Help:      "Dashboard builds by result",
			},
			[]string{"result"},
		),
		ReportDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "report_build_duration_seconds",
				Help:      "Time to fetch records and aggregate a dashboard",
				Buckets:   []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
			},
		),
		FetchFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "fetch_failures_total",
				Help:      "Record fetches that failed and were replaced by empty input",
			},
			[]string{"source"},
		),
		InsightRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "insight_requests_total",
				Help:      "Insight generations by result",
			},
			[]string{"result"},
		),
		InsightDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "insight_duration_seconds",
				Help:      "Round trip to the text generation endpoint",
				Buckets:   []float64{.25, .5, 1, 2.5, 5, 10, 20, 30, 60},
			},
		),
		CriticalProducts: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "stock_critical_products",
				Help:      "Products projected to stock out within a week at the last check",
			},
		),
		StockAlertsSent: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "stock_alerts_sent_total",
				Help:      "Stock alert emails sent",
			},
		),
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests processed",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "route"},
		),
	}
	if r, ok := reg.(*prometheus.Registry); ok {
		c.registry = r
	}
	return c
}

// Handler serves the collector's registry. Falls back to the default gatherer when
// the collector was built on a foreign registerer.
func (c *Collector) Handler() http.Handler {
	if c.registry == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
