// Package metrics collects auth engine metrics with Prometheus.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	domainerrors "textura/internal/domain/errors"
	"textura/internal/domain/service"
)

// Collector is the Prometheus implementation of service.AuthMetrics.
type Collector struct {
	transitions   *prometheus.CounterVec
	failures      *prometheus.CounterVec
	sessionEvents *prometheus.CounterVec
}

var _ service.AuthMetrics = (*Collector)(nil)

// NewCollector creates a Collector and registers its metrics on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "textura_auth_state_transitions_total",
			Help: "Effective changes of the authenticated state.",
		}, []string{"state"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "textura_auth_errors_total",
			Help: "Classified failures of auth operations.",
		}, []string{"operation", "kind"}),
		sessionEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "textura_auth_session_events_total",
			Help: "Session notifications received from the identity provider.",
		}, []string{"event"}),
	}

	reg.MustRegister(
		c.transitions,
		c.failures,
		c.sessionEvents,
	)

	return c
}

// RecordTransition counts a change of the authenticated boolean.
func (c *Collector) RecordTransition(authenticated bool) {
	c.transitions.WithLabelValues(stateLabel(authenticated)).Inc()
}

// RecordFailure counts a classified operation failure.
func (c *Collector) RecordFailure(operation string, kind domainerrors.Kind) {
	c.failures.WithLabelValues(operation, string(kind)).Inc()
}

// RecordSessionEvent counts a provider notification.
func (c *Collector) RecordSessionEvent(event service.AuthEvent) {
	c.sessionEvents.WithLabelValues(string(event)).Inc()
}

func stateLabel(authenticated bool) string {
	if authenticated {
		return "authenticated"
	}

	return "unauthenticated"
}

// Handler returns the HTTP handler for Prometheus scrapes.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// NewRegistry creates the process registry with the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

// NewAuthMetrics registers the auth collector on the process registry.
func NewAuthMetrics(reg *prometheus.Registry) service.AuthMetrics {
	return NewCollector(reg)
}

// Module provides the metrics FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewRegistry,
		NewAuthMetrics,
	),
)
