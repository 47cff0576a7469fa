// Package metrics records reconcile, operation and transport metrics with
// Prometheus.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "meraki_rm"

// Metrics holds every collector on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	reconciles        *prometheus.CounterVec
	reconcileDuration *prometheus.HistogramVec
	operations        *prometheus.CounterVec
	dashboardRequests *prometheus.CounterVec
	dashboardLatency  *prometheus.HistogramVec
	httpRequests      *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
}

// New creates the collectors and registers them with Go and process
// collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		reconciles: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "reconciles_total",
				Help:      "Reconcile invocations by resource, state and outcome.",
			},
			[]string{"resource", "state", "outcome"},
		),
		reconcileDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "reconcile_duration_seconds",
				Help:      "Wall time of reconcile invocations.",
				Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
			},
			[]string{"resource", "state"},
		),
		operations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "operations_total",
				Help:      "Planned create, update and delete operations by resource.",
			},
			[]string{"resource", "op", "check_mode"},
		),
		dashboardRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "dashboard",
				Name:      "requests_total",
				Help:      "Dashboard API exchanges by method and status, retries included.",
			},
			[]string{"method", "status"},
		),
		dashboardLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "dashboard",
				Name:      "request_duration_seconds",
				Help:      "Dashboard API exchange latency.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method"},
		),
		httpRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Served HTTP requests by route and status.",
			},
			[]string{"method", "route", "status"},
		),
		httpDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Served HTTP request latency.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveReconcile records one finished invocation. ops counts planned
// operations by kind.
func (m *Metrics) ObserveReconcile(resource, state, outcome string, checkMode bool, ops map[string]int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.reconciles.WithLabelValues(resource, state, outcome).Inc()
	m.reconcileDuration.WithLabelValues(resource, state).Observe(elapsed.Seconds())
	check := strconv.FormatBool(checkMode)
	for op, count := range ops {
		if count > 0 {
			m.operations.WithLabelValues(resource, op, check).Add(float64(count))
		}
	}
}

// ObserveDashboard matches the dashboard client observer signature.
func (m *Metrics) ObserveDashboard(method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	m.dashboardRequests.WithLabelValues(method, label).Inc()
	m.dashboardLatency.WithLabelValues(method).Observe(elapsed.Seconds())
}

// Middleware records served requests under their chi route pattern.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.httpRequests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		m.httpDuration.WithLabelValues(r.Method, route).Observe(time.Since(started).Seconds())
	})
}
