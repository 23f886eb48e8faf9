// Package metrics exposes Prometheus collectors for commands, notifications
// and lock contention. A nil *Metrics is valid and records nothing.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "partyline"

// Notification outcomes
const (
	NotificationDelivered = "delivered"
	NotificationSkipped   = "skipped"
	NotificationFailed    = "failed"
)

// Metrics holds the collectors registered on its own registry
type Metrics struct {
	registry        *prometheus.Registry
	commands        *prometheus.CounterVec
	commandDuration *prometheus.HistogramVec
	notifications   *prometheus.CounterVec
	lockTimeouts    *prometheus.CounterVec
}

// New creates and registers the collectors
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commands_total",
			Help:      "Commands handled by the coordinator, by action and outcome.",
		}, []string{"action", "outcome"}),
		commandDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "command_duration_seconds",
			Help:      "Time spent handling a command including notification fan-out.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"action"}),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "Per-recipient notification results.",
		}, []string{"action", "result"}),
		lockTimeouts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lock_timeouts_total",
			Help:      "Keyed lock acquisitions abandoned because the deadline passed.",
		}, []string{"scope"}),
	}

	m.registry.MustRegister(
		m.commands,
		m.commandDuration,
		m.notifications,
		m.lockTimeouts,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveCommand records one handled command. outcome is "ok" or an error kind.
func (m *Metrics) ObserveCommand(action, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.commands.WithLabelValues(action, outcome).Inc()
	m.commandDuration.WithLabelValues(action).Observe(elapsed.Seconds())
}

// ObserveNotifications records the results of one broadcast
func (m *Metrics) ObserveNotifications(action string, delivered, skipped, failed int) {
	if m == nil {
		return
	}
	m.notifications.WithLabelValues(action, NotificationDelivered).Add(float64(delivered))
	m.notifications.WithLabelValues(action, NotificationSkipped).Add(float64(skipped))
	m.notifications.WithLabelValues(action, NotificationFailed).Add(float64(failed))
}

// LockTimeout records an abandoned lock wait for scope ("party" or "user")
func (m *Metrics) LockTimeout(scope string) {
	if m == nil {
		return
	}
	m.lockTimeouts.WithLabelValues(scope).Inc()
}

// Registry returns the registry the collectors live on
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
