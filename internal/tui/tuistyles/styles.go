// Package tuistyles holds the shared palette so scenes and components can
// style themselves without importing the root tui package.
package tuistyles

import "github.com/charmbracelet/lipgloss"

var (
	ColorPrimary = lipgloss.Color("#2E86AB")
	ColorAccent  = lipgloss.Color("#F18F01")
	ColorSuccess = lipgloss.Color("#3BB273")
	ColorDanger  = lipgloss.Color("#C73E1D")
	ColorMuted   = lipgloss.Color("#7A7A7A")
	ColorBorder  = lipgloss.Color("#4A4A4A")

	// Bar colors per income source
	ColorLumpSum = lipgloss.Color("#F18F01")
	ColorPension = lipgloss.Color("#2E86AB")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(0, 1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)

	TabStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 2)

	ActiveTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Underline(true).
			Padding(0, 2)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)

	MetricLabelStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	MetricValueStyle = lipgloss.NewStyle().Bold(true)

	MetricPositiveStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	MetricNegativeStyle = lipgloss.NewStyle().Foreground(ColorDanger)

	TableHeaderStyle    = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).BorderForeground(ColorBorder)
	TableHighlightStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(ColorPrimary)

	ErrorStyle = lipgloss.NewStyle().Foreground(ColorDanger).Bold(true).Padding(1, 2)
	InfoStyle  = lipgloss.NewStyle().Foreground(ColorMuted).Italic(true)
)

// MetricTrendStyle colors a delta by direction.
func MetricTrendStyle(positive bool) lipgloss.Style {
	if positive {
		return MetricPositiveStyle
	}
	return MetricNegativeStyle
}

// TrendIndicator returns an arrow for a delta direction.
func TrendIndicator(positive bool) string {
	if positive {
		return "▲"
	}
	return "▼"
}
