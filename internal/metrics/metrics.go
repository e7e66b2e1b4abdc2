// Package metrics provides Prometheus instrumentation for the relay.
// It exposes gauges for connection and presence counts plus counters
// for message and signaling throughput.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// ConnectionsActive tracks the current number of open WebSocket connections.
	ConnectionsActive = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "chatrelay_connections_active",
		Help: "Current number of open WebSocket connections",
	})

	// UsersOnline tracks the current number of bound usernames.
	UsersOnline = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "chatrelay_users_online",
		Help: "Current number of registered usernames",
	})

	// MessagesTotal counts broadcast chat messages, labeled by kind ("text" or "file").
	MessagesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "chatrelay_messages_total",
		Help: "Total number of chat messages broadcast",
	}, []string{"kind"})

	// DeletionsTotal counts confirmed message deletions.
	DeletionsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "chatrelay_deletions_total",
		Help: "Total number of messages deleted from the log",
	})

	// SignalsTotal counts relayed call-signaling events, labeled by type.
	SignalsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "chatrelay_signals_total",
		Help: "Total number of call-signaling events relayed",
	}, []string{"type"})

	// SignalsDropped counts signaling events whose target had no live binding.
	SignalsDropped = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "chatrelay_signals_dropped_total",
		Help: "Total number of signaling events dropped for unknown targets",
	})

	// SlowClientDrops counts events discarded because a client send queue was full.
	SlowClientDrops = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "chatrelay_slow_client_drops_total",
		Help: "Total number of events dropped due to full client send queues",
	})
)

func init() {
	prometheus.MustRegister(
		ConnectionsActive,
		UsersOnline,
		MessagesTotal,
		DeletionsTotal,
		SignalsTotal,
		SignalsDropped,
		SlowClientDrops,
	)
}

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
