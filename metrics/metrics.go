// Package metrics provides Prometheus metrics for the Wikibase MCP server.
// It tracks tool call counts, latencies, authentication and token-exchange
// outcomes, and write operation results.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace for all metrics
const (
	Namespace = "wikibase_mcp"
)

var (
	// RequestsTotal counts total MCP tool calls by tool name and status
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "requests_total",
		Help:      "Total number of MCP tool calls",
	}, []string{"tool", "status"})

	// RequestDuration measures request latency distribution
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "request_duration_seconds",
		Help:      "Request latency distribution by tool",
		Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"tool"})

	// RequestInFlight tracks currently executing requests
	RequestInFlight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "requests_in_flight",
		Help:      "Number of requests currently being processed",
	}, []string{"tool"})

	// TokenFetches counts anti-forgery token fetches by token type and outcome
	TokenFetches = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "token_fetches_total",
		Help:      "Anti-forgery token fetches by type and outcome",
	}, []string{"type", "status"})

	// AuthFailures counts authentication failures by reason
	AuthFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "auth_failures_total",
		Help:      "Authentication failure count by reason",
	}, []string{"reason"})

	// EditOperations counts write operations by type and reported outcome
	EditOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "edit_operations_total",
		Help:      "Write operations by type and status",
	}, []string{"operation", "status"})

	// PanicsRecovered counts recovered panics in tool handlers
	PanicsRecovered = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "panics_recovered_total",
		Help:      "Number of panics recovered in tool handlers",
	}, []string{"tool"})
)

// RecordRequest records a completed request with its duration and status
func RecordRequest(tool string, duration float64, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	RequestsTotal.WithLabelValues(tool, status).Inc()
	RequestDuration.WithLabelValues(tool).Observe(duration)
}

// RecordEdit records a write operation's reported outcome
func RecordEdit(operation string, success bool) {
	status := "success"
	if !success {
		status = "failure"
	}
	EditOperations.WithLabelValues(operation, status).Inc()
}
