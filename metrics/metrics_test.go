package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestRecordRequest(t *testing.T) {
	tests := []struct {
		name       string
		tool       string
		duration   float64
		success    bool
		wantStatus string
	}{
		{
			name:       "successful request",
			tool:       "test_tool",
			duration:   0.5,
			success:    true,
			wantStatus: "success",
		},
		{
			name:       "failed request",
			tool:       "test_tool",
			duration:   1.0,
			success:    false,
			wantStatus: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			RecordRequest(tt.tool, tt.duration, tt.success)

			counter, err := RequestsTotal.GetMetricWithLabelValues(tt.tool, tt.wantStatus)
			if err != nil {
				t.Fatalf("failed to get metric: %v", err)
			}

			var m dto.Metric
			if err := counter.Write(&m); err != nil {
				t.Fatalf("failed to write metric: %v", err)
			}

			if m.Counter.GetValue() < 1 {
				t.Error("expected counter to be incremented")
			}
		})
	}
}

func TestRecordEdit(t *testing.T) {
	tests := []struct {
		name       string
		operation  string
		success    bool
		wantStatus string
	}{
		{
			name:       "successful edit",
			operation:  "edit",
			success:    true,
			wantStatus: "success",
		},
		{
			name:       "failed create",
			operation:  "create",
			success:    false,
			wantStatus: "failure",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			RecordEdit(tt.operation, tt.success)

			counter, err := EditOperations.GetMetricWithLabelValues(tt.operation, tt.wantStatus)
			if err != nil {
				t.Fatalf("failed to get metric: %v", err)
			}

			var m dto.Metric
			if err := counter.Write(&m); err != nil {
				t.Fatalf("failed to write metric: %v", err)
			}

			if m.Counter.GetValue() < 1 {
				t.Error("expected counter to be incremented")
			}
		})
	}
}

func TestTokenFetchOutcomes(t *testing.T) {
	initial := getCounterValue(t, TokenFetches.WithLabelValues("csrf", "success"))

	TokenFetches.WithLabelValues("csrf", "success").Inc()

	if got := getCounterValue(t, TokenFetches.WithLabelValues("csrf", "success")); got != initial+1 {
		t.Errorf("expected token fetch counter %v, got %v", initial+1, got)
	}
}

func TestMetricsRegistered(t *testing.T) {
	// Verify all metrics are registered by checking they can be collected
	metrics := []prometheus.Collector{
		RequestsTotal,
		RequestDuration,
		RequestInFlight,
		TokenFetches,
		AuthFailures,
		EditOperations,
		PanicsRecovered,
	}

	for i, m := range metrics {
		if m == nil {
			t.Errorf("metric at index %d is nil", i)
		}
	}
}

func TestNamespace(t *testing.T) {
	if Namespace != "wikibase_mcp" {
		t.Errorf("expected namespace 'wikibase_mcp', got '%s'", Namespace)
	}
}

// Helper to get counter value
func getCounterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}
	return m.Counter.GetValue()
}
