package dashboard

import (
	"fmt"

	"github.com/depwatch/depwatch/internal/errors"
	"github.com/depwatch/depwatch/internal/graph"
)

// Selection tracks which single node, if any, is inspected in detail.
// Two states: no selection (empty) or Selected(nodeID). A selection only
// ever names a node present in the snapshot it was validated against.
type Selection struct {
	nodeID string
}

// IsSet reports whether a node is selected.
func (s Selection) IsSet() bool {
	return s.nodeID != ""
}

// NodeID returns the selected node's ID, or "" when nothing is selected.
func (s Selection) NodeID() string {
	return s.nodeID
}

// Select transitions to Selected(nodeID) if the node exists in snap.
// An unknown node is rejected as a soft SELECTION condition and the prior
// state is kept.
func (s Selection) Select(nodeID string, snap *graph.Snapshot) (Selection, error) {
	if !snap.HasNode(nodeID) {
		return s, errors.New(errors.ErrSelection,
			fmt.Sprintf("Node %q is not in the current snapshot", nodeID),
			"Reload the snapshot with 'r' if the graph changed server-side")
	}
	return Selection{nodeID: nodeID}, nil
}

// Clear transitions to no selection from any state.
func (s Selection) Clear() Selection {
	return Selection{}
}

// Revalidate keeps the selection only if the node still exists in snap.
// Used after a snapshot reload.
func (s Selection) Revalidate(snap *graph.Snapshot) Selection {
	if s.IsSet() && !snap.HasNode(s.nodeID) {
		return Selection{}
	}
	return s
}
