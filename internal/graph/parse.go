package graph

import (
	"encoding/json"
	"fmt"

	"github.com/depwatch/depwatch/internal/errors"
)

// ParseSnapshot decodes and validates a snapshot payload from the server.
// Any malformed payload is a FETCH error: the caller must treat the load as
// failed rather than keep a partial graph.
func ParseSnapshot(data []byte) (*Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrFetch,
			"Graph payload is not valid JSON",
			"Check that the server URL points at a depwatch-compatible backend")
	}

	if err := validate(&snap); err != nil {
		return nil, err
	}

	snap.index()
	return &snap, nil
}

// validate enforces the structural invariants the dashboard relies on:
// every node has an ID, IDs are unique, and edges reference known nodes.
func validate(s *Snapshot) error {
	seen := make(map[string]bool, len(s.Nodes))
	for i, n := range s.Nodes {
		if n.ID == "" {
			return errors.New(errors.ErrFetch,
				fmt.Sprintf("Node at index %d has no id", i),
				"The server returned an incomplete graph; check its logs")
		}
		if seen[n.ID] {
			return errors.New(errors.ErrFetch,
				fmt.Sprintf("Duplicate node id %q", n.ID),
				"The server returned an inconsistent graph; check its logs")
		}
		seen[n.ID] = true
	}

	for _, e := range s.Edges {
		if !seen[e.Source] {
			return errors.New(errors.ErrFetch,
				fmt.Sprintf("Edge references unknown source node %q", e.Source),
				"The server returned an inconsistent graph; check its logs")
		}
		if !seen[e.Target] {
			return errors.New(errors.ErrFetch,
				fmt.Sprintf("Edge references unknown target node %q", e.Target),
				"The server returned an inconsistent graph; check its logs")
		}
	}

	return nil
}
