package dashboard

import tea "github.com/charmbracelet/bubbletea"

// Key bindings as constants for consistency.
const (
	KeyQuit          = "q"
	KeyQuitAlt       = "ctrl+c"
	KeyReload        = "r"
	KeySelectPrev    = "up"
	KeySelectPrevK   = "k"
	KeySelectNext    = "down"
	KeySelectNextJ   = "j"
	KeySelectFirst   = "home"
	KeySelectLast    = "end"
	KeyInspect       = "enter"
	KeyBack          = "esc"
	KeyToggleMetrics = "m"
	KeyToggleHelp    = "?"
)

// HandleKeyMsg processes keyboard input and returns updated model state and command.
// Returns true if the key was handled, false otherwise.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	key := msg.String()

	// Help toggle takes priority
	if key == KeyToggleHelp {
		m.showHelp = !m.showHelp
		return true, nil
	}

	// If help is showing, Esc closes it
	if m.showHelp && key == KeyBack {
		m.showHelp = false
		return true, nil
	}

	// Detail view: Esc returns to list and clears the selection
	if m.viewMode == ViewDetail && key == KeyBack {
		m.viewMode = ViewList
		m.selection = m.selection.Clear()
		return true, nil
	}

	switch key {
	case KeyQuit, KeyQuitAlt:
		m.quitting = true
		m.teardown()
		return true, tea.Quit

	case KeyReload:
		if m.loading {
			return true, nil
		}
		m.loading = true
		return true, m.loadCmd()

	case KeyToggleMetrics:
		m.overlay = m.overlay.Toggle()
		return true, nil

	case KeySelectPrev, KeySelectPrevK:
		if m.viewMode == ViewDetail {
			m.detailViewport.ScrollUp(1)
			return true, nil
		}
		if m.cursor > 0 {
			m.cursor--
		}
		return true, nil

	case KeySelectNext, KeySelectNextJ:
		if m.viewMode == ViewDetail {
			m.detailViewport.ScrollDown(1)
			return true, nil
		}
		if m.snap != nil && m.cursor < len(m.snap.Nodes)-1 {
			m.cursor++
		}
		return true, nil

	case KeySelectFirst:
		m.cursor = 0
		return true, nil

	case KeySelectLast:
		if m.snap != nil && len(m.snap.Nodes) > 0 {
			m.cursor = len(m.snap.Nodes) - 1
		}
		return true, nil

	case KeyInspect:
		if m.viewMode == ViewList && m.snap != nil && len(m.snap.Nodes) > 0 {
			m.selectNode(m.CursorNode())
			if m.selection.IsSet() {
				m.viewMode = ViewDetail
				m.updateDetailViewportContent()
			}
		}
		return true, nil

	case KeyBack:
		m.viewMode = ViewList
		m.selection = m.selection.Clear()
		return true, nil
	}

	return false, nil
}
