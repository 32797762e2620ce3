package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Relay holds the Prometheus collectors describing relay traffic.
type Relay struct {
	registry *prometheus.Registry

	MessagesTotal   *prometheus.CounterVec
	OutcomesTotal   *prometheus.CounterVec
	UpstreamLatency *prometheus.HistogramVec
	RepliesTotal    prometheus.Counter
}

// NewRelay registers the relay collectors on a private registry.
func NewRelay() *Relay {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Relay{
		registry: reg,
		MessagesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "linkrelay_messages_total",
				Help: "Chat messages inspected, partitioned by whether they carried a YouTube link.",
			},
			[]string{"matched"},
		),
		OutcomesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "linkrelay_outcomes_total",
				Help: "Final reply branches taken for matched messages.",
			},
			[]string{"outcome"},
		),
		UpstreamLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "linkrelay_upstream_duration_seconds",
				Help:    "Latency of summarization endpoint calls.",
				Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 40, 80, 150},
			},
			[]string{"status"},
		),
		RepliesTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "linkrelay_replies_total",
				Help: "Replies handed to the chat host.",
			},
		),
	}
}

// ObserveMessage counts an inspected message.
func (m *Relay) ObserveMessage(matched bool) {
	if m == nil {
		return
	}
	label := "false"
	if matched {
		label = "true"
	}
	m.MessagesTotal.WithLabelValues(label).Inc()
}

// ObserveOutcome counts the branch that produced the final reply.
func (m *Relay) ObserveOutcome(outcome string) {
	if m == nil {
		return
	}
	m.OutcomesTotal.WithLabelValues(outcome).Inc()
}

// ObserveUpstream records the duration of one summarization call.
func (m *Relay) ObserveUpstream(status string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.UpstreamLatency.WithLabelValues(status).Observe(elapsed.Seconds())
}

// ObserveReply counts a reply sent to the host.
func (m *Relay) ObserveReply() {
	if m == nil {
		return
	}
	m.RepliesTotal.Inc()
}

// Handler exposes the registry in the Prometheus text format.
func (m *Relay) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
