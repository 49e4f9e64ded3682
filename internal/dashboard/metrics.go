package dashboard

import (
	"sort"
	"time"

	"github.com/depwatch/depwatch/internal/stream"
)

// MetricsState is the accumulated latest-value view of the metric stream:
// node ID -> metric name -> last delivered value. Events are folded in
// strictly in delivery order, last write wins per (node, metric) key.
// The state accumulates for the whole session; it is never globally reset.
type MetricsState struct {
	values map[string]map[string]float64
	last   time.Time
}

// NewMetricsState returns an empty state.
func NewMetricsState() *MetricsState {
	return &MetricsState{values: make(map[string]map[string]float64)}
}

// Apply folds one event into the state.
func (m *MetricsState) Apply(ev stream.MetricEvent) {
	byMetric, ok := m.values[ev.NodeID]
	if !ok {
		byMetric = make(map[string]float64)
		m.values[ev.NodeID] = byMetric
	}
	byMetric[ev.Metric] = ev.Value
	if ev.Timestamp.After(m.last) {
		m.last = ev.Timestamp
	}
}

// Get returns the last value for a (node, metric) key.
func (m *MetricsState) Get(nodeID, metric string) (float64, bool) {
	byMetric, ok := m.values[nodeID]
	if !ok {
		return 0, false
	}
	v, ok := byMetric[metric]
	return v, ok
}

// Node returns a copy of all latest metrics for a node, or nil if none
// have arrived.
func (m *MetricsState) Node(nodeID string) map[string]float64 {
	byMetric, ok := m.values[nodeID]
	if !ok {
		return nil
	}
	out := make(map[string]float64, len(byMetric))
	for k, v := range byMetric {
		out[k] = v
	}
	return out
}

// MetricNames returns the sorted metric names seen for a node.
func (m *MetricsState) MetricNames(nodeID string) []string {
	byMetric, ok := m.values[nodeID]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(byMetric))
	for name := range byMetric {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NodeCount returns how many nodes have reported at least one metric.
func (m *MetricsState) NodeCount() int {
	return len(m.values)
}

// LastUpdate returns the newest event timestamp folded in so far.
func (m *MetricsState) LastUpdate() time.Time {
	return m.last
}
