package stream

import (
	"fmt"
	"time"
)

// State is the connectivity of the push channel as last reported by the
// transport. It is observational only; reconnection is the transport's job.
type State int

const (
	StateDisconnected State = iota
	StateConnected
)

// Connected reports whether the channel is currently connected.
func (s State) Connected() bool {
	return s == StateConnected
}

// String returns a human-readable connectivity label.
func (s State) String() string {
	switch s {
	case StateConnected:
		return "connected"
	case StateDisconnected:
		return "disconnected"
	default:
		return "unknown"
	}
}

// MetricEvent is one metric update for one node, as delivered by the
// push channel.
type MetricEvent struct {
	NodeID    string
	Metric    string
	Value     float64
	Timestamp time.Time
}

// ParseMetricEvent validates and converts a decoded wire payload into a
// MetricEvent. The wire schema is {node_id, metric_name, value, timestamp};
// extra fields are ignored, missing required fields reject the event.
func ParseMetricEvent(data any) (MetricEvent, error) {
	payload, ok := data.(map[string]any)
	if !ok {
		return MetricEvent{}, fmt.Errorf("event payload is %T, want object", data)
	}

	nodeID, ok := asString(payload["node_id"])
	if !ok || nodeID == "" {
		return MetricEvent{}, fmt.Errorf("event missing node_id")
	}

	metric, ok := asString(payload["metric_name"])
	if !ok || metric == "" {
		return MetricEvent{}, fmt.Errorf("event missing metric_name")
	}

	value, ok := asFloat(payload["value"])
	if !ok {
		return MetricEvent{}, fmt.Errorf("event missing numeric value")
	}

	ev := MetricEvent{
		NodeID:    nodeID,
		Metric:    metric,
		Value:     value,
		Timestamp: parseTimestamp(payload["timestamp"]),
	}
	return ev, nil
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// parseTimestamp accepts unix seconds (number) or RFC 3339 (string).
// A missing or unparseable timestamp falls back to receipt time; the
// event itself is still valid.
func parseTimestamp(v any) time.Time {
	switch ts := v.(type) {
	case float64:
		sec := int64(ts)
		nsec := int64((ts - float64(sec)) * 1e9)
		return time.Unix(sec, nsec)
	case string:
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			return t
		}
	}
	return time.Now()
}
