// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors for the API server.
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	httpRequestErrors   *prometheus.CounterVec

	// Domain metrics
	planEvaluations *prometheus.CounterVec
	resultRows      *prometheus.HistogramVec
}

// New creates the collectors and registers them, together with the Go
// runtime and process collectors, on a fresh registry.
func New() (*Metrics, error) {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status_code"},
	)

	m.httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Time taken for HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	m.httpRequestErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_request_errors_total",
			Help: "Total number of HTTP request errors",
		},
		[]string{"route", "error_type"}, // error_type: validation, database
	)

	m.planEvaluations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "application_plan_evaluations_total",
			Help: "Application plans evaluated, by whether the choices were logically ordered",
		},
		[]string{"logical_order"},
	)

	m.resultRows = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "query_result_rows",
			Help:    "Rows returned by draw queries",
			Buckets: []float64{0, 1, 5, 10, 25, 50},
		},
		[]string{"query"},
	)

	for _, c := range []prometheus.Collector{
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.httpRequestErrors,
		m.planEvaluations,
		m.resultRows,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	} {
		if err := m.registry.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		Registry:      m.registry,
		ErrorHandling: promhttp.HTTPErrorOnError,
	})
}

// ObserveRequest records one completed HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// RecordError counts a failed request by error type.
func (m *Metrics) RecordError(route, errorType string) {
	if m == nil {
		return
	}
	m.httpRequestErrors.WithLabelValues(route, errorType).Inc()
}

// RecordPlan counts an evaluated application plan.
func (m *Metrics) RecordPlan(logical bool) {
	if m == nil {
		return
	}
	m.planEvaluations.WithLabelValues(strconv.FormatBool(logical)).Inc()
}

// RecordResultRows observes the size of a query result.
func (m *Metrics) RecordResultRows(query string, n int) {
	if m == nil {
		return
	}
	m.resultRows.WithLabelValues(query).Observe(float64(n))
}
