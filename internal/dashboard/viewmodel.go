package dashboard

import (
	"github.com/depwatch/depwatch/internal/graph"
	"github.com/depwatch/depwatch/internal/stream"
)

// ViewModel is the immutable render projection of the session state. It is
// rebuilt wholesale on every View call; the renderer never reaches back
// into the model, so a frame can never observe a half-applied update.
type ViewModel struct {
	Loading   bool
	Spinner   string
	LoadError string

	HasSnapshot bool
	Stats       graph.Stats
	Nodes       []NodeRow

	Connected    bool
	Selected     string
	Mode         ViewMode
	ShowMetrics  bool
	ShowHelp     bool
	Notice       string
	MetricsNodes int
}

// NodeRow is one list entry in the node table.
type NodeRow struct {
	ID          string
	Label       string
	Type        string
	Cursor      bool
	Selected    bool
	DepCount    int
	UsedByCount int
	Metrics     map[string]float64
}

// ViewModel builds a fresh projection of the current state.
func (m Model) ViewModel() ViewModel {
	vm := ViewModel{
		Loading:      m.loading,
		Spinner:      m.LoadingSpinner(),
		LoadError:    m.loadErr,
		Connected:    m.connectivity == stream.StateConnected,
		Selected:     m.selection.NodeID(),
		Mode:         m.viewMode,
		ShowMetrics:  m.overlay.Visible(),
		ShowHelp:     m.showHelp,
		Notice:       m.notice,
		MetricsNodes: m.metrics.NodeCount(),
	}

	if m.snap == nil {
		return vm
	}

	vm.HasSnapshot = true
	vm.Stats = m.snap.Stats
	vm.Nodes = make([]NodeRow, 0, len(m.snap.Nodes))
	for i, node := range m.snap.Nodes {
		row := NodeRow{
			ID:          node.ID,
			Label:       node.DisplayName(),
			Type:        node.Type,
			Cursor:      i == m.cursor,
			Selected:    m.selection.NodeID() == node.ID,
			DepCount:    len(m.snap.Dependencies(node.ID)),
			UsedByCount: len(m.snap.Dependents(node.ID)),
		}
		if vm.ShowMetrics {
			row.Metrics = m.metrics.Node(node.ID)
		}
		vm.Nodes = append(vm.Nodes, row)
	}
	return vm
}
