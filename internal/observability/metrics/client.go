package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ClientMetrics counts gateway outcomes, fallback activations, stale
// discards, and raised notifications on a private registry.
type ClientMetrics struct {
	registry *prometheus.Registry
	service  string

	requestTotal       *prometheus.CounterVec
	requestDuration    *prometheus.HistogramVec
	fallbackTotal      *prometheus.CounterVec
	staleDiscardTotal  *prometheus.CounterVec
	notificationTotal  *prometheus.CounterVec
	refreshCyclesTotal *prometheus.CounterVec
}

func NewClientMetrics(service string) *ClientMetrics {
	registry := prometheus.NewRegistry()

	requestTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "grantdesk",
			Subsystem: "gateway",
			Name:      "requests_total",
			Help:      "Total backend requests by operation and outcome.",
		},
		[]string{"service", "operation", "outcome"},
	)
	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "grantdesk",
			Subsystem: "gateway",
			Name:      "request_duration_seconds",
			Help:      "Backend request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "operation"},
	)
	fallbackTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "grantdesk",
			Subsystem: "resolver",
			Name:      "fallback_activations_total",
			Help:      "Total views degraded to the embedded demo dataset.",
		},
		[]string{"service", "view"},
	)
	staleDiscardTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "grantdesk",
			Subsystem: "resolver",
			Name:      "stale_responses_discarded_total",
			Help:      "Total late responses discarded because the selection moved on.",
		},
		[]string{"service", "view"},
	)
	notificationTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "grantdesk",
			Subsystem: "ui",
			Name:      "notifications_total",
			Help:      "Total user-visible notifications by level.",
		},
		[]string{"service", "level"},
	)
	refreshCyclesTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "grantdesk",
			Subsystem: "dashboard",
			Name:      "refresh_cycles_total",
			Help:      "Total completed dashboard refresh cycles.",
		},
		[]string{"service"},
	)

	registry.MustRegister(requestTotal, requestDuration, fallbackTotal, staleDiscardTotal, notificationTotal, refreshCyclesTotal)

	return &ClientMetrics{
		registry:           registry,
		service:            service,
		requestTotal:       requestTotal,
		requestDuration:    requestDuration,
		fallbackTotal:      fallbackTotal,
		staleDiscardTotal:  staleDiscardTotal,
		notificationTotal:  notificationTotal,
		refreshCyclesTotal: refreshCyclesTotal,
	}
}

func (m *ClientMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *ClientMetrics) RecordRequest(operation, outcome string, duration time.Duration) {
	m.requestTotal.WithLabelValues(m.service, operation, outcome).Inc()
	m.requestDuration.WithLabelValues(m.service, operation).Observe(duration.Seconds())
}

func (m *ClientMetrics) FallbackActivated(view string) {
	m.fallbackTotal.WithLabelValues(m.service, view).Inc()
}

func (m *ClientMetrics) StaleResponseDiscarded(view string) {
	m.staleDiscardTotal.WithLabelValues(m.service, view).Inc()
}

func (m *ClientMetrics) RecordNotification(level string) {
	m.notificationTotal.WithLabelValues(m.service, level).Inc()
}

func (m *ClientMetrics) RecordRefreshCycle() {
	m.refreshCyclesTotal.WithLabelValues(m.service).Inc()
}
