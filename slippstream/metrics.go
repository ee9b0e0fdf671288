package slippstream

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics are the stream client's Prometheus collectors. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	MessagesReceived *prometheus.CounterVec
	EmptyPackets     prometheus.Counter
	ConnectAttempts  prometheus.Counter
	Handshakes       prometheus.Counter
	Disconnects      prometheus.Counter
	EnvelopeErrors   prometheus.Counter
	InboxDepth       prometheus.Gauge
}

// NewMetrics creates the collectors. They still need to be registered.
func NewMetrics() *Metrics {
	return &Metrics{
		MessagesReceived: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "libmelee",
				Subsystem: "slippstream",
				Name:      "messages_received_total",
				Help:      "Total number of envelopes delivered to the caller",
			},
			[]string{"type"},
		),

		EmptyPackets: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "libmelee",
				Subsystem: "slippstream",
				Name:      "empty_packets_total",
				Help:      "Total number of zero-length packets skipped",
			},
		),

		ConnectAttempts: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "libmelee",
				Subsystem: "slippstream",
				Name:      "connect_attempts_total",
				Help:      "Total number of service waits spent waiting for the link to come up",
			},
		),

		Handshakes: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "libmelee",
				Subsystem: "slippstream",
				Name:      "handshakes_total",
				Help:      "Total number of connect requests sent",
			},
		),

		Disconnects: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "libmelee",
				Subsystem: "slippstream",
				Name:      "disconnects_total",
				Help:      "Total number of sessions closed by the console",
			},
		),

		EnvelopeErrors: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "libmelee",
				Subsystem: "slippstream",
				Name:      "envelope_errors_total",
				Help:      "Total number of packets that were not valid envelopes",
			},
		),

		InboxDepth: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "libmelee",
				Subsystem: "slippstream",
				Name:      "inbox_depth",
				Help:      "Messages received but not yet dispatched",
			},
		),
	}
}

// Register adds every collector to reg.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{
		m.MessagesReceived,
		m.EmptyPackets,
		m.ConnectAttempts,
		m.Handshakes,
		m.Disconnects,
		m.EnvelopeErrors,
		m.InboxDepth,
	} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

func (m *Metrics) recordMessage(t MessageType) {
	if m == nil {
		return
	}
	m.MessagesReceived.WithLabelValues(string(t)).Inc()
}

func (m *Metrics) recordEmptyPacket() {
	if m == nil {
		return
	}
	m.EmptyPackets.Inc()
}

func (m *Metrics) recordConnectAttempt() {
	if m == nil {
		return
	}
	m.ConnectAttempts.Inc()
}

func (m *Metrics) recordHandshake() {
	if m == nil {
		return
	}
	m.Handshakes.Inc()
}

func (m *Metrics) recordDisconnect() {
	if m == nil {
		return
	}
	m.Disconnects.Inc()
}

func (m *Metrics) recordEnvelopeError() {
	if m == nil {
		return
	}
	m.EnvelopeErrors.Inc()
}

func (m *Metrics) recordInboxDepth(n int) {
	if m == nil {
		return
	}
	m.InboxDepth.Set(float64(n))
}
