package dashboard

import (
	"github.com/charmbracelet/lipgloss"
)

// Dashboard color palette
const (
	ColorDarkBg    = lipgloss.Color("#0A0A0F")
	ColorSurfaceBg = lipgloss.Color("#12121A")
	ColorBorder    = lipgloss.Color("#2A2A4A")

	ColorHealthy  = lipgloss.Color("#39FF14")
	ColorWarning  = lipgloss.Color("#FFAA00")
	ColorCritical = lipgloss.Color("#FF0055")

	ColorTextPrimary   = lipgloss.Color("#FFFFFF")
	ColorTextSecondary = lipgloss.Color("#B4B4D0")
	ColorTextMuted     = lipgloss.Color("#6B6B8D")

	ColorAccent    = lipgloss.Color("#FF2E97")
	ColorAccentDim = lipgloss.Color("#BF40FF")
	ColorGraph     = lipgloss.Color("#00FFFF")
)

// Base styles for the dashboard
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Background(ColorSurfaceBg).
			Bold(true).
			Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	RowStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary).
			Padding(0, 1)

	RowCursorStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Background(ColorSurfaceBg).
			Bold(true).
			Padding(0, 1)

	NodeNameStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary)

	NoticeStyle = lipgloss.NewStyle().
			Foreground(ColorWarning).
			Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorCritical).
			Bold(true)

	StatusConnectedStyle = lipgloss.NewStyle().
				Foreground(ColorHealthy)

	StatusDisconnectedStyle = lipgloss.NewStyle().
				Foreground(ColorCritical)
)

// Connectivity indicator characters
const (
	StatusConnected    = "◉"
	StatusDisconnected = "◌"
)

// LoadingSpinnerFrames are the animation frames for the loading state.
var LoadingSpinnerFrames = []string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"}

// nodeTypeColors maps well-known node types to accent colors. Unknown
// types fall back to the muted text color.
var nodeTypeColors = map[string]lipgloss.Color{
	"service":  ColorGraph,
	"database": ColorAccentDim,
	"cache":    ColorWarning,
	"queue":    ColorAccent,
	"external": ColorTextMuted,
}

// NodeTypeStyle returns a style for rendering a node's type tag.
func NodeTypeStyle(nodeType string) lipgloss.Style {
	color, ok := nodeTypeColors[nodeType]
	if !ok {
		color = ColorTextMuted
	}
	return lipgloss.NewStyle().Foreground(color)
}
