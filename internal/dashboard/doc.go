// Package dashboard implements a real-time TUI for a live dependency graph.
//
// The dashboard shows the nodes and edges of a service dependency graph
// fetched once at startup, then folds in metric updates pushed over a
// socket channel, with per-node detail views and sparkline history.
//
// # Architecture
//
// The package uses the Bubble Tea framework, which follows The Elm
// Architecture (Model-Update-View pattern):
//
//   - Model: Holds all session state (snapshot, metrics, selection, overlay)
//   - Update: Processes messages (keystrokes, load results, stream events)
//   - View: Projects the state into an immutable ViewModel and renders it
//
// The Model is the single writer. Commands run concurrently, but their
// results come back as messages and are folded in one at a time, so no
// state is ever mutated outside Update.
//
// # Message Flow
//
// Startup is a strict two-phase sequence:
//
//  1. Init() issues loadCmd, which fetches the graph snapshot over HTTP
//  2. snapshotMsg arrives; the snapshot is stored and subscribeCmd opens
//     the push channel (never before a successful load, never on failure)
//  3. subscribedMsg arrives; pollEventCmd and pollConnectivityCmd begin
//     consuming the subscription one message at a time, preserving the
//     channel's delivery order
//  4. metricMsg folds each event into MetricsState and History, then
//     re-polls
//
// A reload (r) refetches the snapshot but keeps the existing subscription,
// accumulated metrics, and history. A load result that lands after the
// session has quit is discarded.
//
// # State Machines
//
//	Selection  - no selection or Selected(node); only nodes present in the
//	             current snapshot can be selected, and a reload that drops
//	             the selected node clears the selection
//	Overlay    - Hidden or Shown; toggled with m, initial state Hidden
//
// # Metrics and History
//
// MetricsState keeps the latest value per (node, metric) key, last write
// wins in delivery order. History keeps a ring buffer of recent values per
// key for sparkline rendering in the detail view.
//
// # Keyboard Shortcuts
//
// Navigation and control is handled via keybindings defined in keybindings.go:
//
//	q, Ctrl+C   - Quit
//	r           - Reload the graph
//	j/k, ↑/↓    - Navigate node list (scroll in detail view)
//	Enter       - Inspect selected node
//	Esc         - Back / clear selection
//	m           - Toggle metrics overlay
//	?           - Toggle help overlay
package dashboard
