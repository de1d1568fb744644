package feed

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics collects fan-out counters shared by all hubs. All methods are
// safe on a nil receiver so wiring metrics stays optional in tests.
type Metrics struct {
	listeners *prometheus.GaugeVec
	events    *prometheus.CounterVec
	dropped   *prometheus.CounterVec
}

// NewMetrics registers the fan-out collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		listeners: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "seizurelog_feed_listeners",
			Help: "Currently registered hub listeners.",
		}, []string{"kind"}),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "seizurelog_feed_events_total",
			Help: "Normalized change events broadcast by the hub.",
		}, []string{"kind", "change"}),
		dropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "seizurelog_feed_dropped_total",
			Help: "Events dropped because a subscriber queue was full.",
		}, []string{"kind"}),
	}
	reg.MustRegister(m.listeners, m.events, m.dropped)
	return m
}

func (m *Metrics) listenerAdded(kind string) {
	if m == nil {
		return
	}
	m.listeners.WithLabelValues(kind).Inc()
}

func (m *Metrics) listenerRemoved(kind string) {
	if m == nil {
		return
	}
	m.listeners.WithLabelValues(kind).Dec()
}

func (m *Metrics) eventBroadcast(kind string, change ChangeType) {
	if m == nil {
		return
	}
	m.events.WithLabelValues(kind, change.String()).Inc()
}

func (m *Metrics) eventDropped(kind string) {
	if m == nil {
		return
	}
	m.dropped.WithLabelValues(kind).Inc()
}
