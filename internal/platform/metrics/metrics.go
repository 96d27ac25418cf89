// Package metrics expone contadores Prometheus del servicio.
package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"med-schedule/internal/domain/medicines"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "medschedule"

type Metrics struct {
	registry *prometheus.Registry

	statusChanges *prometheus.CounterVec
	captures      *prometheus.CounterVec
	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
}

// New registra los collectors en un registry propio (sin estado global).
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		statusChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "status_changes_total",
			Help:      "Status overwrites by destination status.",
		}, []string{"status"}),
		captures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "captures_total",
			Help:      "Placeholder prescription captures by source.",
		}, []string{"source"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route pattern and status code.",
		}, []string{"method", "route", "code"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	reg.MustRegister(
		m.statusChanges,
		m.captures,
		m.httpRequests,
		m.httpDuration,
		collectors.NewGoCollector(),
	)
	return m
}

// Record implementa medicines.ChangeRecorder.
func (m *Metrics) Record(_ context.Context, c medicines.StatusChange) error {
	m.statusChanges.WithLabelValues(string(c.To)).Inc()
	return nil
}

// RecordCapture implementa medicines.CaptureRecorder.
func (m *Metrics) RecordCapture(_ context.Context, _ medicines.Medicine, source string) {
	// solo plantillas conocidas como label
	m.captures.WithLabelValues(medicines.CaptureSource(source)).Inc()
}

// Handler sirve /metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry permite leer los valores en tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Middleware cuenta requests por patrón de ruta de chi (no por path crudo).
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		m.httpRequests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		m.httpDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
