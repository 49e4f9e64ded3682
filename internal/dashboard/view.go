package dashboard

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// render renders the full frame from the view model.
func (m Model) render(vm ViewModel) string {
	var base string

	switch {
	case vm.Loading && !vm.HasSnapshot:
		base = m.renderLoading(vm)
	case vm.LoadError != "" && !vm.HasSnapshot:
		base = m.renderLoadError(vm)
	case vm.Mode == ViewDetail:
		base = m.renderDetailView()
	default:
		base = m.renderList(vm)
	}

	if vm.ShowHelp {
		return m.renderHelpOverlay(base)
	}
	return base
}

// renderLoading renders the initial loading screen.
func (m Model) renderLoading(vm ViewModel) string {
	spinner := lipgloss.NewStyle().Foreground(ColorWarning).Render(vm.Spinner)
	text := LabelStyle.Render(" Loading dependency graph...")
	content := spinner + text
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

// renderLoadError renders the screen shown when no snapshot could be loaded.
func (m Model) renderLoadError(vm ViewModel) string {
	var b strings.Builder
	b.WriteString(ErrorStyle.Render("Could not load the dependency graph"))
	b.WriteString("\n\n")
	b.WriteString(LabelStyle.Render(vm.LoadError))
	b.WriteString("\n\n")
	b.WriteString(FooterStyle.Render("r retry | q quit"))
	content := b.String()
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

// renderList renders the node table with the stats header and footer.
func (m Model) renderList(vm ViewModel) string {
	var b strings.Builder

	b.WriteString(m.renderHeader(vm))
	b.WriteString("\n\n")

	if len(vm.Nodes) == 0 {
		b.WriteString(LabelStyle.Render("The graph is empty"))
	} else {
		for _, row := range vm.Nodes {
			b.WriteString(m.renderRow(row, vm.ShowMetrics))
			b.WriteString("\n")
		}
	}

	if vm.Notice != "" {
		b.WriteString("\n")
		b.WriteString(NoticeStyle.Render(vm.Notice))
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter(vm))

	return b.String()
}

// renderHeader renders the title bar with graph stats and connectivity.
func (m Model) renderHeader(vm ViewModel) string {
	title := lipgloss.NewStyle().
		Foreground(ColorAccent).
		Bold(true).
		Render("depwatch")

	var conn string
	if vm.Connected {
		conn = StatusConnectedStyle.Render(StatusConnected + " live")
	} else {
		conn = StatusDisconnectedStyle.Render(StatusDisconnected + " offline")
	}

	dag := "cyclic"
	if vm.Stats.IsDAG {
		dag = "acyclic"
	}

	stats := lipgloss.NewStyle().
		Foreground(ColorTextSecondary).
		Render(fmt.Sprintf(" | %d nodes | %d edges | %s | density %.2f | ",
			vm.Stats.NodeCount, vm.Stats.EdgeCount, dag, vm.Stats.Density))

	var reloading string
	if vm.Loading {
		reloading = lipgloss.NewStyle().Foreground(ColorWarning).Render(" " + vm.Spinner)
	}

	return HeaderStyle.Render(title + stats + conn + reloading)
}

// renderRow renders a single node entry.
func (m Model) renderRow(row NodeRow, showMetrics bool) string {
	typeTag := NodeTypeStyle(row.Type).Render(fmt.Sprintf("[%s]", row.Type))
	edges := LabelStyle.Render(fmt.Sprintf("deps %d · used by %d", row.DepCount, row.UsedByCount))

	line := fmt.Sprintf("%-24s %s  %s", row.Label, typeTag, edges)

	if showMetrics && len(row.Metrics) > 0 {
		line += "  " + m.renderRowMetrics(row)
	}

	marker := "  "
	if row.Selected {
		marker = lipgloss.NewStyle().Foreground(ColorAccent).Render("* ")
	}

	if row.Cursor {
		return RowCursorStyle.Render("> " + line)
	}
	return RowStyle.Render(marker + line)
}

// renderRowMetrics renders the inline latest-value readout for a row when
// the metrics overlay is shown.
func (m Model) renderRowMetrics(row NodeRow) string {
	names := make([]string, 0, len(row.Metrics))
	for name := range row.Metrics {
		names = append(names, name)
	}
	// Stable order so the row does not jitter between frames.
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s=%.1f", name, row.Metrics[name]))
	}
	return ValueStyle.Render(strings.Join(parts, " "))
}

// renderFooter renders the keyboard help footer.
func (m Model) renderFooter(vm ViewModel) string {
	hints := []string{
		"q quit",
		"r reload",
		"↑↓ select",
		"enter inspect",
	}
	if vm.ShowMetrics {
		hints = append(hints, "m hide metrics")
	} else {
		hints = append(hints, "m show metrics")
	}
	hints = append(hints, "? help")

	return FooterStyle.Render(strings.Join(hints, " | "))
}
