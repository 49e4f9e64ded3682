package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testSnapshot builds a small indexed snapshot for lookup tests.
func testSnapshot(t *testing.T) *Snapshot {
	t.Helper()
	snap := &Snapshot{
		Nodes: []Node{
			{ID: "api-gateway", Type: "api"},
			{ID: "auth-service", Type: "service", Label: "Auth"},
			{ID: "users-db", Type: "database"},
		},
		Edges: []Edge{
			{Source: "api-gateway", Target: "auth-service"},
			{Source: "auth-service", Target: "users-db"},
			{Source: "api-gateway", Target: "users-db"},
		},
		Stats: Stats{NodeCount: 3, EdgeCount: 3, IsDAG: true},
	}
	snap.index()
	return snap
}

func TestSnapshot_HasNode(t *testing.T) {
	snap := testSnapshot(t)

	assert.True(t, snap.HasNode("api-gateway"))
	assert.True(t, snap.HasNode("users-db"))
	assert.False(t, snap.HasNode("missing"))
	assert.False(t, snap.HasNode(""))
}

func TestSnapshot_HasNode_Nil(t *testing.T) {
	var snap *Snapshot
	assert.False(t, snap.HasNode("anything"))
}

func TestSnapshot_Node(t *testing.T) {
	snap := testSnapshot(t)

	n := snap.Node("auth-service")
	require.NotNil(t, n)
	assert.Equal(t, "service", n.Type)
	assert.Equal(t, "Auth", n.Label)

	assert.Nil(t, snap.Node("missing"))
}

func TestSnapshot_Dependencies(t *testing.T) {
	snap := testSnapshot(t)

	assert.Equal(t, []string{"auth-service", "users-db"}, snap.Dependencies("api-gateway"))
	assert.Equal(t, []string{"users-db"}, snap.Dependencies("auth-service"))
	assert.Empty(t, snap.Dependencies("users-db"))
}

func TestSnapshot_Dependents(t *testing.T) {
	snap := testSnapshot(t)

	assert.Equal(t, []string{"auth-service", "api-gateway"}, snap.Dependents("users-db"))
	assert.Equal(t, []string{"api-gateway"}, snap.Dependents("auth-service"))
	assert.Empty(t, snap.Dependents("api-gateway"))
}

func TestSnapshot_NodeIDs(t *testing.T) {
	snap := testSnapshot(t)
	assert.Equal(t, []string{"api-gateway", "auth-service", "users-db"}, snap.NodeIDs())
}

func TestNode_DisplayName(t *testing.T) {
	assert.Equal(t, "Auth", Node{ID: "auth-service", Label: "Auth"}.DisplayName())
	assert.Equal(t, "auth-service", Node{ID: "auth-service"}.DisplayName())
}
