package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Detail view styles
var (
	detailContainerStyle = lipgloss.NewStyle().
				Padding(1, 2)

	detailSectionStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorder).
				Padding(0, 1).
				MarginBottom(1)

	sparklineChars = []rune{'_', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
)

// sparklineSamples is how many history points a detail sparkline shows.
const sparklineSamples = 30

// updateDetailViewportContent refreshes the scrollable detail content.
func (m *Model) updateDetailViewportContent() {
	if !m.viewportReady {
		return
	}
	m.detailViewport.SetContent(m.renderDetailBody())
}

// renderDetailView renders the expanded single-node detail view.
func (m Model) renderDetailView() string {
	nodeID := m.selection.NodeID()
	if nodeID == "" {
		return LabelStyle.Render("No node selected")
	}

	var b strings.Builder
	b.WriteString(m.renderDetailHeader(nodeID))
	b.WriteString("\n\n")

	if m.viewportReady {
		b.WriteString(m.detailViewport.View())
	} else {
		b.WriteString(m.renderDetailBody())
	}

	b.WriteString("\n")
	b.WriteString(m.renderDetailFooter())

	return detailContainerStyle.Render(b.String())
}

// renderDetailHeader renders the node name, type, and connectivity.
func (m Model) renderDetailHeader(nodeID string) string {
	node := m.snap.Node(nodeID)
	if node == nil {
		return LabelStyle.Render(nodeID)
	}

	title := lipgloss.NewStyle().
		Foreground(ColorAccent).
		Bold(true).
		Render(node.DisplayName())

	typeTag := NodeTypeStyle(node.Type).Render(fmt.Sprintf("[%s]", node.Type))

	var conn string
	if m.connectivity.Connected() {
		conn = StatusConnectedStyle.Render(StatusConnected + " live")
	} else {
		conn = StatusDisconnectedStyle.Render(StatusDisconnected + " offline")
	}

	return fmt.Sprintf("%s %s  %s", title, typeTag, conn)
}

// renderDetailBody renders the sections shown inside the viewport.
func (m Model) renderDetailBody() string {
	nodeID := m.selection.NodeID()
	if nodeID == "" {
		return ""
	}

	contentWidth := m.width - 6
	if contentWidth < 40 {
		contentWidth = 40
	}

	var b strings.Builder
	b.WriteString(m.renderDetailEdgesSection(nodeID, contentWidth))
	b.WriteString("\n")
	b.WriteString(m.renderDetailMetricsSection(nodeID, contentWidth))
	return b.String()
}

// renderDetailEdgesSection renders the node's dependencies and dependents.
func (m Model) renderDetailEdgesSection(nodeID string, width int) string {
	titleStyle := lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)

	var lines []string
	lines = append(lines, titleStyle.Render("Edges"))
	lines = append(lines, "")

	deps := m.snap.Dependencies(nodeID)
	if len(deps) == 0 {
		lines = append(lines, LabelStyle.Render("  Depends on: nothing"))
	} else {
		lines = append(lines, LabelStyle.Render("  Depends on:"))
		for _, dep := range deps {
			lines = append(lines, fmt.Sprintf("    → %s", m.renderNodeRef(dep)))
		}
	}

	lines = append(lines, "")

	dependents := m.snap.Dependents(nodeID)
	if len(dependents) == 0 {
		lines = append(lines, LabelStyle.Render("  Used by: nothing"))
	} else {
		lines = append(lines, LabelStyle.Render("  Used by:"))
		for _, dep := range dependents {
			lines = append(lines, fmt.Sprintf("    ← %s", m.renderNodeRef(dep)))
		}
	}

	content := strings.Join(lines, "\n")
	return detailSectionStyle.Width(width).Render(content)
}

// renderNodeRef renders a referenced node's label with its type tag.
func (m Model) renderNodeRef(nodeID string) string {
	node := m.snap.Node(nodeID)
	if node == nil {
		return nodeID
	}
	return NodeNameStyle.Render(node.DisplayName()) + " " +
		NodeTypeStyle(node.Type).Render(fmt.Sprintf("[%s]", node.Type))
}

// renderDetailMetricsSection renders latest values with history sparklines.
func (m Model) renderDetailMetricsSection(nodeID string, width int) string {
	titleStyle := lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)

	var lines []string
	lines = append(lines, titleStyle.Render("Metrics"))
	lines = append(lines, "")

	names := m.metrics.MetricNames(nodeID)
	if len(names) == 0 {
		lines = append(lines, LabelStyle.Render("  Waiting for metrics data..."))
		content := strings.Join(lines, "\n")
		return detailSectionStyle.Width(width).Render(content)
	}

	for _, name := range names {
		value, _ := m.metrics.Get(nodeID, name)
		valueText := ValueStyle.Render(fmt.Sprintf("%10.2f", value))
		lines = append(lines, fmt.Sprintf("  %-18s %s", name, valueText))

		history := m.history.Get(nodeID, name, sparklineSamples)
		if len(history) > 1 {
			sparkline := renderSparkline(history, width-6)
			lines = append(lines, fmt.Sprintf("  %s", sparkline))
		}
		lines = append(lines, "")
	}

	// Remove trailing empty line
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	content := strings.Join(lines, "\n")
	return detailSectionStyle.Width(width).Render(content)
}

// renderDetailFooter renders navigation hints for the detail view.
func (m Model) renderDetailFooter() string {
	hints := []string{"Esc back", "↑↓ scroll", "r reload", "q quit"}
	return FooterStyle.Render(strings.Join(hints, " | "))
}

// renderSparkline converts a slice of values into a sparkline string.
func renderSparkline(values []float64, maxWidth int) string {
	if len(values) == 0 {
		return ""
	}

	if maxWidth > 0 && len(values) > maxWidth {
		values = values[len(values)-maxWidth:]
	}

	minVal, maxVal := values[0], values[0]
	for _, v := range values {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}

	var result strings.Builder
	for _, v := range values {
		var idx int
		if maxVal == minVal {
			idx = len(sparklineChars) / 2
		} else {
			normalized := (v - minVal) / (maxVal - minVal)
			idx = int(normalized * float64(len(sparklineChars)-1))
		}
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparklineChars) {
			idx = len(sparklineChars) - 1
		}
		result.WriteRune(sparklineChars[idx])
	}

	return lipgloss.NewStyle().Foreground(ColorGraph).Render(result.String())
}
