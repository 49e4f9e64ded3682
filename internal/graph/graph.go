// Package graph defines the dependency-graph snapshot model served by the
// monitoring backend: nodes, edges, and aggregate statistics.
package graph

// Node is a single component in the dependency graph.
type Node struct {
	ID       string         `json:"id"`
	Type     string         `json:"type"`
	Label    string         `json:"label,omitempty"`
	Group    string         `json:"group,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// Edge is a directed dependency: Source depends on Target.
type Edge struct {
	Source   string         `json:"source"`
	Target   string         `json:"target"`
	Label    string         `json:"label,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// Stats holds the aggregate statistics computed server-side for a snapshot.
type Stats struct {
	NodeCount           int            `json:"node_count"`
	EdgeCount           int            `json:"edge_count"`
	IsDAG               bool           `json:"is_dag"`
	ConnectedComponents int            `json:"connected_components,omitempty"`
	Density             float64        `json:"density,omitempty"`
	NodeTypes           map[string]int `json:"node_types,omitempty"`
	HasCycles           bool           `json:"has_cycles,omitempty"`
}

// Snapshot is a fully materialized graph at a point in time. It is immutable
// after construction: a reload replaces the whole value, never patches it.
type Snapshot struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
	Stats Stats  `json:"stats"`

	// byID is built once at parse time for O(1) lookups.
	byID map[string]int
}

// NewSnapshot builds an indexed snapshot from already-validated parts.
// ParseSnapshot is the path for wire payloads; this one serves code that
// assembles graphs directly, such as fakes and fixtures.
func NewSnapshot(nodes []Node, edges []Edge, stats Stats) *Snapshot {
	s := &Snapshot{Nodes: nodes, Edges: edges, Stats: stats}
	s.index()
	return s
}

// DisplayName returns the label if set, otherwise the node ID.
func (n Node) DisplayName() string {
	if n.Label != "" {
		return n.Label
	}
	return n.ID
}

// HasNode reports whether the snapshot contains a node with the given ID.
func (s *Snapshot) HasNode(id string) bool {
	if s == nil {
		return false
	}
	_, ok := s.byID[id]
	return ok
}

// Node returns the node with the given ID, or nil if absent.
func (s *Snapshot) Node(id string) *Node {
	if s == nil {
		return nil
	}
	i, ok := s.byID[id]
	if !ok {
		return nil
	}
	return &s.Nodes[i]
}

// Dependencies returns the IDs of nodes the given node depends on
// (outgoing edges), in edge order.
func (s *Snapshot) Dependencies(id string) []string {
	if s == nil {
		return nil
	}
	var deps []string
	for _, e := range s.Edges {
		if e.Source == id {
			deps = append(deps, e.Target)
		}
	}
	return deps
}

// Dependents returns the IDs of nodes that depend on the given node
// (incoming edges), in edge order.
func (s *Snapshot) Dependents(id string) []string {
	if s == nil {
		return nil
	}
	var deps []string
	for _, e := range s.Edges {
		if e.Target == id {
			deps = append(deps, e.Source)
		}
	}
	return deps
}

// NodeIDs returns all node IDs in snapshot order.
func (s *Snapshot) NodeIDs() []string {
	if s == nil {
		return nil
	}
	ids := make([]string, len(s.Nodes))
	for i, n := range s.Nodes {
		ids[i] = n.ID
	}
	return ids
}

// index rebuilds the node lookup table. Called by ParseSnapshot after decode.
func (s *Snapshot) index() {
	s.byID = make(map[string]int, len(s.Nodes))
	for i, n := range s.Nodes {
		s.byID[n.ID] = i
	}
}
