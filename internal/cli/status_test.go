package cli

import (
	"encoding/json"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/depwatch/depwatch/internal/errors"
	"github.com/depwatch/depwatch/internal/graph"
)

// captureStdout runs fn with os.Stdout redirected and returns what it wrote.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()

	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func statusSnapshot() *graph.Snapshot {
	return graph.NewSnapshot(
		[]graph.Node{
			{ID: "api", Type: "service"},
			{ID: "db", Type: "database"},
		},
		[]graph.Edge{{Source: "api", Target: "db"}},
		graph.Stats{
			NodeCount: 2,
			EdgeCount: 1,
			IsDAG:     true,
			Density:   0.5,
			NodeTypes: map[string]int{"service": 1, "database": 1},
		},
	)
}

func TestOutputStatusJSON_Success(t *testing.T) {
	out := captureStdout(t, func() {
		require.NoError(t, outputStatusJSON("http://localhost:8000", statusSnapshot(), nil))
	})

	var decoded StatusOutput
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))

	assert.Equal(t, "http://localhost:8000", decoded.Server)
	assert.True(t, decoded.Reachable)
	assert.Empty(t, decoded.Error)
	require.NotNil(t, decoded.Stats)
	assert.Equal(t, 2, decoded.Stats.NodeCount)
	assert.Equal(t, []string{"api", "db"}, decoded.Nodes)
}

func TestOutputStatusJSON_Failure(t *testing.T) {
	fetchErr := errors.New(errors.ErrFetch, "connection refused", "")

	out := captureStdout(t, func() {
		require.NoError(t, outputStatusJSON("http://localhost:8000", nil, fetchErr))
	})

	var decoded StatusOutput
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))

	assert.False(t, decoded.Reachable)
	assert.Contains(t, decoded.Error, "connection refused")
	assert.Nil(t, decoded.Stats)
	assert.Empty(t, decoded.Nodes)
}

func TestOutputStatusText(t *testing.T) {
	out := captureStdout(t, func() {
		outputStatusText("http://localhost:8000", statusSnapshot())
	})

	assert.Contains(t, out, "http://localhost:8000")
	assert.Contains(t, out, "Nodes:      2")
	assert.Contains(t, out, "Edges:      1")
	assert.Contains(t, out, "acyclic")
	assert.Contains(t, out, "Node types")
	assert.Contains(t, out, "service")
	assert.Contains(t, out, "database")
}

func TestOutputStatusText_Cycles(t *testing.T) {
	snap := graph.NewSnapshot(
		[]graph.Node{{ID: "a", Type: "service"}, {ID: "b", Type: "service"}},
		[]graph.Edge{{Source: "a", Target: "b"}, {Source: "b", Target: "a"}},
		graph.Stats{NodeCount: 2, EdgeCount: 2, IsDAG: false, HasCycles: true},
	)

	out := captureStdout(t, func() {
		outputStatusText("http://localhost:8000", snap)
	})

	assert.Contains(t, out, "contains cycles")
}
