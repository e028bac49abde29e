// Package metrics exposes Prometheus counters for authentication outcomes.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "gatehouse"

// AuthMetrics holds all Prometheus metrics of the service.
type AuthMetrics struct {
	registry *prometheus.Registry

	AuthEventsTotal      *prometheus.CounterVec
	EventsDroppedTotal   prometheus.Counter
	PublishFailuresTotal prometheus.Counter
	TokensPrunedTotal    *prometheus.CounterVec

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

// New creates the metrics on a dedicated registry.
func New() *AuthMetrics {
	registry := prometheus.NewRegistry()

	m := &AuthMetrics{
		registry: registry,
		AuthEventsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "auth_events_total",
				Help:      "Authentication events emitted by guards",
			},
			[]string{"group", "type", "guard"},
		),
		EventsDroppedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "auth_events_dropped_total",
				Help:      "Authentication events dropped because the dispatch queue was full",
			},
		),
		PublishFailuresTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "auth_event_publish_failures_total",
				Help:      "Authentication events the publisher failed to deliver",
			},
		),
		TokensPrunedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "tokens_pruned_total",
				Help:      "Expired tokens removed by the pruning job",
			},
			[]string{"kind"},
		),
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.AuthEventsTotal,
		m.EventsDroppedTotal,
		m.PublishFailuresTotal,
		m.TokensPrunedTotal,
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
	)

	return m
}

// Registry is the registry every metric is registered on.
func (m *AuthMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *AuthMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *AuthMetrics) ObserveEvent(group, eventType, guard string) {
	m.AuthEventsTotal.WithLabelValues(group, eventType, guard).Inc()
}

func (m *AuthMetrics) EventDropped() {
	m.EventsDroppedTotal.Inc()
}

func (m *AuthMetrics) PublishFailed() {
	m.PublishFailuresTotal.Inc()
}

func (m *AuthMetrics) TokensPruned(kind string, n int64) {
	if n <= 0 {
		return
	}
	m.TokensPrunedTotal.WithLabelValues(kind).Add(float64(n))
}

// Middleware records request counts and latencies by route pattern. Errors
// are rendered here so the recorded status is the one the client receives.
func (m *AuthMetrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			if err := next(c); err != nil {
				c.Error(err)
			}

			path := c.Path()
			if path == "" {
				path = "unknown"
			}
			method := c.Request().Method

			m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(c.Response().Status)).Inc()
			m.HTTPRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())

			return nil
		}
	}
}
