package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	snaptest "github.com/depwatch/depwatch/internal/snapshot/testing"
	"github.com/depwatch/depwatch/internal/stream"
	streamtest "github.com/depwatch/depwatch/internal/stream/testing"
)

func TestViewModel_EmptyBeforeLoad(t *testing.T) {
	m := newTestModel(snaptest.NewFakeLoader(nil), streamtest.NewFakeMonitor())
	m.loading = true

	vm := m.ViewModel()
	assert.True(t, vm.Loading)
	assert.False(t, vm.HasSnapshot)
	assert.Empty(t, vm.Nodes)
	assert.False(t, vm.Connected)
}

func TestViewModel_ProjectsSnapshot(t *testing.T) {
	loader := snaptest.NewFakeLoader(testSnapshot())
	m := newTestModel(loader, streamtest.NewFakeMonitor())

	m, cmd := step(t, m, m.loadCmd())
	m, _ = step(t, m, cmd)
	m.connectivity = stream.StateConnected

	vm := m.ViewModel()
	assert.True(t, vm.HasSnapshot)
	assert.True(t, vm.Connected)
	require.Len(t, vm.Nodes, 3)

	api := vm.Nodes[0]
	assert.Equal(t, "api", api.ID)
	assert.Equal(t, 2, api.DepCount)
	assert.Equal(t, 0, api.UsedByCount)
	assert.True(t, api.Cursor)

	db := vm.Nodes[1]
	assert.Equal(t, 0, db.DepCount)
	assert.Equal(t, 1, db.UsedByCount)
	assert.False(t, db.Cursor)
}

func TestViewModel_MetricsOnlyWhenOverlayShown(t *testing.T) {
	loader := snaptest.NewFakeLoader(testSnapshot())
	m := newTestModel(loader, streamtest.NewFakeMonitor())

	m, cmd := step(t, m, m.loadCmd())
	m, _ = step(t, m, cmd)
	m.metrics.Apply(stream.MetricEvent{NodeID: "api", Metric: "cpu", Value: 42})

	vm := m.ViewModel()
	assert.False(t, vm.ShowMetrics)
	assert.Nil(t, vm.Nodes[0].Metrics)

	m.overlay = m.overlay.Toggle()
	vm = m.ViewModel()
	assert.True(t, vm.ShowMetrics)
	assert.Equal(t, map[string]float64{"cpu": 42}, vm.Nodes[0].Metrics)
}

func TestViewModel_IsADetachedCopy(t *testing.T) {
	loader := snaptest.NewFakeLoader(testSnapshot())
	m := newTestModel(loader, streamtest.NewFakeMonitor())

	m, cmd := step(t, m, m.loadCmd())
	m, _ = step(t, m, cmd)
	m.overlay = m.overlay.Toggle()
	m.metrics.Apply(stream.MetricEvent{NodeID: "api", Metric: "cpu", Value: 1})

	vm := m.ViewModel()
	vm.Nodes[0].Metrics["cpu"] = 999

	// Mutating the projection does not leak back into session state
	v, _ := m.metrics.Get("api", "cpu")
	assert.Equal(t, 1.0, v)

	// A new projection reflects the state, not the mutated old frame
	fresh := m.ViewModel()
	assert.Equal(t, 1.0, fresh.Nodes[0].Metrics["cpu"])
}
