package dashboard

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/depwatch/depwatch/internal/graph"
	"github.com/depwatch/depwatch/internal/logger"
	"github.com/depwatch/depwatch/internal/snapshot"
	"github.com/depwatch/depwatch/internal/stream"
)

// ViewMode defines the current display mode of the dashboard.
type ViewMode int

const (
	ViewList ViewMode = iota
	ViewDetail
)

// spinnerInterval is the animation frame rate for the loading spinner.
const spinnerInterval = 150 * time.Millisecond

// Model is the Bubble Tea model for the graph dashboard. It is the single
// writer of all session state: the snapshot, connectivity, accumulated
// metrics, selection, and overlay visibility are mutated only in Update,
// so no frame can observe a half-applied change.
type Model struct {
	loader  snapshot.Loader
	monitor stream.Monitor
	log     logger.Logger
	ctx     context.Context

	// Session state
	loading      bool
	loadErr      string
	snap         *graph.Snapshot
	connectivity stream.State
	metrics      *MetricsState
	history      *History
	selection    Selection
	overlay      Overlay
	showHelp     bool
	notice       string // soft condition surfaced in the footer

	// Streaming state
	sub        stream.Source
	subscribed bool

	// Navigation and layout
	cursor       int
	viewMode     ViewMode
	width        int
	height       int
	spinnerFrame int
	quitting     bool

	// Detail view viewport for scrollable content
	detailViewport viewport.Model
	viewportReady  bool
}

// Messages produced by the model's commands.
type (
	// snapshotMsg carries a successfully loaded snapshot.
	snapshotMsg struct {
		snap *graph.Snapshot
	}

	// snapshotErrMsg carries a failed snapshot load.
	snapshotErrMsg struct {
		err error
	}

	// subscribedMsg carries the opened push-channel subscription.
	subscribedMsg struct {
		sub stream.Source
	}

	// subscribeErrMsg carries a failed subscription attempt.
	subscribeErrMsg struct {
		err error
	}

	// metricMsg carries one metric event from the stream. ok is false when
	// the stream has ended.
	metricMsg struct {
		ev stream.MetricEvent
		ok bool
	}

	// connectivityMsg carries one connectivity transition from the stream.
	connectivityMsg struct {
		state stream.State
		ok    bool
	}

	// spinnerTickMsg signals a spinner animation frame update.
	spinnerTickMsg time.Time
)

// NewModel creates a dashboard model. historySize tunes the per-metric
// sample retention (0 uses the default).
func NewModel(ctx context.Context, loader snapshot.Loader, monitor stream.Monitor, historySize int, log logger.Logger) Model {
	if log == nil {
		log = logger.NewEnvLogger("[dashboard]")
	}
	return Model{
		loader:  loader,
		monitor: monitor,
		log:     log,
		ctx:     ctx,
		// The initial load is in flight from the first frame; Init fires
		// the fetch on a value receiver, so the flag is set here.
		loading:      true,
		connectivity: stream.StateDisconnected,
		metrics:      NewMetricsState(),
		history:      NewHistory(historySize),
	}
}

// Init starts the snapshot load and the spinner animation. loading is true
// from construction until the load resolves either way.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.loadCmd(),
		m.spinnerTickCmd(),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg)
		if handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Initialize or resize the detail viewport.
		// Reserve space for header and footer.
		headerHeight := 3
		footerHeight := 2
		viewportHeight := m.height - headerHeight - footerHeight
		if viewportHeight < 1 {
			viewportHeight = 1
		}

		if !m.viewportReady {
			m.detailViewport = viewport.New(m.width, viewportHeight)
			m.detailViewport.YPosition = headerHeight
			m.viewportReady = true
		} else {
			m.detailViewport.Width = m.width
			m.detailViewport.Height = viewportHeight
		}

		if m.viewMode == ViewDetail {
			m.updateDetailViewportContent()
		}

	case spinnerTickMsg:
		m.spinnerFrame = (m.spinnerFrame + 1) % 10000
		return m, m.spinnerTickCmd()

	case snapshotMsg:
		// A result landing after the session ended must not resurrect state.
		if m.quitting {
			return m, nil
		}
		return m.applySnapshot(msg.snap)

	case snapshotErrMsg:
		if m.quitting {
			return m, nil
		}
		m.loading = false
		m.loadErr = msg.err.Error()
		m.log.Error("snapshot load failed: %v", msg.err)
		// No snapshot, no subscription.
		return m, nil

	case subscribedMsg:
		m.sub = msg.sub
		return m, tea.Batch(m.pollEventCmd(), m.pollConnectivityCmd())

	case subscribeErrMsg:
		m.log.Error("push channel subscribe failed: %v", msg.err)
		m.connectivity = stream.StateDisconnected
		return m, nil

	case metricMsg:
		if !msg.ok {
			// Stream ended; stop polling events.
			return m, nil
		}
		m.metrics.Apply(msg.ev)
		m.history.Push(msg.ev.NodeID, msg.ev.Metric, msg.ev.Value)
		if m.viewMode == ViewDetail {
			m.updateDetailViewportContent()
		}
		return m, m.pollEventCmd()

	case connectivityMsg:
		if !msg.ok {
			return m, nil
		}
		m.connectivity = msg.state
		return m, m.pollConnectivityCmd()
	}

	return m, nil
}

// View renders the dashboard from the current view model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.render(m.ViewModel())
}

// applySnapshot stores a freshly loaded snapshot and, on the first load of
// the session, opens the push channel. Subscription strictly happens-after
// a successful load; a reload keeps the existing stream.
func (m Model) applySnapshot(snap *graph.Snapshot) (tea.Model, tea.Cmd) {
	m.loading = false
	m.loadErr = ""
	m.snap = snap

	// A reload may have dropped the selected node.
	m.selection = m.selection.Revalidate(snap)
	if m.cursor >= len(snap.Nodes) {
		m.cursor = len(snap.Nodes) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}

	m.log.Debug("snapshot applied: %d nodes, %d edges", len(snap.Nodes), len(snap.Edges))

	if m.subscribed {
		return m, nil
	}
	m.subscribed = true
	return m, m.subscribeCmd()
}

// loadCmd returns a command that fetches the graph snapshot.
func (m Model) loadCmd() tea.Cmd {
	loader := m.loader
	ctx := m.ctx
	return func() tea.Msg {
		snap, err := loader.Load(ctx)
		if err != nil {
			return snapshotErrMsg{err: err}
		}
		return snapshotMsg{snap: snap}
	}
}

// subscribeCmd returns a command that opens the push channel.
func (m Model) subscribeCmd() tea.Cmd {
	monitor := m.monitor
	ctx := m.ctx
	return func() tea.Msg {
		sub, err := monitor.Subscribe(ctx)
		if err != nil {
			return subscribeErrMsg{err: err}
		}
		return subscribedMsg{sub: sub}
	}
}

// pollEventCmd returns a command that waits for the next metric event.
// Events are consumed one per message, so delivery order is preserved and
// user input interleaves in arrival order.
func (m Model) pollEventCmd() tea.Cmd {
	sub := m.sub
	return func() tea.Msg {
		if sub == nil {
			return nil
		}
		ev, ok := <-sub.Events()
		return metricMsg{ev: ev, ok: ok}
	}
}

// pollConnectivityCmd returns a command that waits for the next
// connectivity transition.
func (m Model) pollConnectivityCmd() tea.Cmd {
	sub := m.sub
	return func() tea.Msg {
		if sub == nil {
			return nil
		}
		state, ok := <-sub.Connectivity()
		return connectivityMsg{state: state, ok: ok}
	}
}

// spinnerTickCmd returns a command that sends a spinner tick for animation.
func (m Model) spinnerTickCmd() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

// selectNode validates and applies a selection. Unknown nodes are a soft
// condition: the prior selection is kept and a notice is surfaced.
func (m *Model) selectNode(nodeID string) {
	next, err := m.selection.Select(nodeID, m.snap)
	if err != nil {
		m.log.Warn("invalid selection: %v", err)
		m.notice = "unknown node: " + nodeID
		return
	}
	m.selection = next
	m.notice = ""
}

// CursorNode returns the ID of the node under the list cursor.
func (m Model) CursorNode() string {
	if m.snap == nil || m.cursor < 0 || m.cursor >= len(m.snap.Nodes) {
		return ""
	}
	return m.snap.Nodes[m.cursor].ID
}

// SelectedNode returns the selected node's ID, or "".
func (m Model) SelectedNode() string {
	return m.selection.NodeID()
}

// Loading reports whether the snapshot load is in flight.
func (m Model) Loading() bool {
	return m.loading
}

// Connectivity returns the push channel's last reported state.
func (m Model) Connectivity() stream.State {
	return m.connectivity
}

// LoadingSpinner returns the current spinner character for the loading
// animation.
func (m Model) LoadingSpinner() string {
	return LoadingSpinnerFrames[m.spinnerFrame%len(LoadingSpinnerFrames)]
}

// teardown releases the push channel. Called on quit; idempotent because
// the monitor tolerates repeated Close calls.
func (m *Model) teardown() {
	if m.sub != nil {
		m.sub.Close()
	}
	m.monitor.Close()
}
