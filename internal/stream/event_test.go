package stream

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMetricEvent_Valid(t *testing.T) {
	payload := map[string]any{
		"node_id":     "api-gateway",
		"metric_name": "latency_ms",
		"value":       12.5,
		"timestamp":   float64(1700000000),
	}

	ev, err := ParseMetricEvent(payload)
	require.NoError(t, err)

	assert.Equal(t, "api-gateway", ev.NodeID)
	assert.Equal(t, "latency_ms", ev.Metric)
	assert.Equal(t, 12.5, ev.Value)
	assert.Equal(t, time.Unix(1700000000, 0), ev.Timestamp)
}

func TestParseMetricEvent_ExtraFieldsIgnored(t *testing.T) {
	payload := map[string]any{
		"node_id":     "a",
		"metric_name": "cpu_percent",
		"value":       42.0,
		"timestamp":   float64(1700000000),
		"region":      "us-east-1",
		"severity":    "info",
	}

	ev, err := ParseMetricEvent(payload)
	require.NoError(t, err)
	assert.Equal(t, 42.0, ev.Value)
}

func TestParseMetricEvent_IntegerValue(t *testing.T) {
	payload := map[string]any{
		"node_id":     "a",
		"metric_name": "queue_depth",
		"value":       7,
	}

	ev, err := ParseMetricEvent(payload)
	require.NoError(t, err)
	assert.Equal(t, 7.0, ev.Value)
}

func TestParseMetricEvent_RFC3339Timestamp(t *testing.T) {
	payload := map[string]any{
		"node_id":     "a",
		"metric_name": "latency_ms",
		"value":       1.0,
		"timestamp":   "2024-06-01T12:00:00Z",
	}

	ev, err := ParseMetricEvent(payload)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC), ev.Timestamp)
}

func TestParseMetricEvent_MissingTimestampFallsBack(t *testing.T) {
	before := time.Now()
	ev, err := ParseMetricEvent(map[string]any{
		"node_id":     "a",
		"metric_name": "latency_ms",
		"value":       1.0,
	})
	require.NoError(t, err)
	assert.False(t, ev.Timestamp.Before(before))
}

func TestParseMetricEvent_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		payload any
		wantMsg string
	}{
		{
			name:    "not an object",
			payload: "latency=12",
			wantMsg: "want object",
		},
		{
			name: "missing node_id",
			payload: map[string]any{
				"metric_name": "latency_ms",
				"value":       1.0,
			},
			wantMsg: "missing node_id",
		},
		{
			name: "empty node_id",
			payload: map[string]any{
				"node_id":     "",
				"metric_name": "latency_ms",
				"value":       1.0,
			},
			wantMsg: "missing node_id",
		},
		{
			name: "missing metric_name",
			payload: map[string]any{
				"node_id": "a",
				"value":   1.0,
			},
			wantMsg: "missing metric_name",
		},
		{
			name: "missing value",
			payload: map[string]any{
				"node_id":     "a",
				"metric_name": "latency_ms",
			},
			wantMsg: "missing numeric value",
		},
		{
			name: "non-numeric value",
			payload: map[string]any{
				"node_id":     "a",
				"metric_name": "latency_ms",
				"value":       "high",
			},
			wantMsg: "missing numeric value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMetricEvent(tt.payload)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "connected", StateConnected.String())
	assert.Equal(t, "disconnected", StateDisconnected.String())
	assert.Equal(t, "unknown", State(99).String())
}
