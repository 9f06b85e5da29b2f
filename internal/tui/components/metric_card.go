package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/payoutopt/internal/output"
	"github.com/rgehrsitz/payoutopt/internal/tui/tuistyles"
	"github.com/shopspring/decimal"
)

// MetricCard displays a single amount with an optional delta
type MetricCard struct {
	Label       string
	Value       string
	Delta       string
	Positive    bool
	Description string
	Width       int
}

// NewMetricCard creates a card for an amount in 万円.
func NewMetricCard(label string, amount decimal.Decimal) *MetricCard {
	return &MetricCard{Label: label, Value: output.FormatMan(amount), Width: 28}
}

// NewRateCard creates a card for a fraction shown as a percentage.
func NewRateCard(label string, fraction decimal.Decimal) *MetricCard {
	return &MetricCard{Label: label, Value: output.FormatPercentage(fraction), Width: 28}
}

// WithDelta shows the difference to a reference amount. higherIsBetter picks
// the color for a positive delta.
func (m *MetricCard) WithDelta(delta decimal.Decimal, higherIsBetter bool) *MetricCard {
	sign := ""
	if delta.IsPositive() {
		sign = "+"
	}
	m.Delta = sign + output.FormatMan(delta)
	m.Positive = delta.IsPositive() == higherIsBetter || delta.IsZero()
	return m
}

// WithDescription adds a subtitle
func (m *MetricCard) WithDescription(desc string) *MetricCard {
	m.Description = desc
	return m
}

// WithWidth sets the card width
func (m *MetricCard) WithWidth(width int) *MetricCard {
	m.Width = width
	return m
}

// Render returns the styled metric card
func (m *MetricCard) Render() string {
	content := tuistyles.MetricLabelStyle.Render(m.Label) + "\n" + tuistyles.MetricValueStyle.Render(m.Value)
	if m.Delta != "" {
		style := tuistyles.MetricTrendStyle(m.Positive)
		content += "\n" + style.Render(fmt.Sprintf("%s %s", tuistyles.TrendIndicator(m.Positive), m.Delta))
	}
	if m.Description != "" {
		content += "\n" + tuistyles.InfoStyle.Render(m.Description)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(tuistyles.ColorBorder).
		Padding(0, 1).
		Width(m.Width).
		Render(content)
}

// MetricGrid renders cards in rows of the given number of columns.
func MetricGrid(cards []*MetricCard, columns int) string {
	if len(cards) == 0 || columns < 1 {
		return ""
	}

	var rows, current []string
	for i, card := range cards {
		current = append(current, card.Render())
		if (i+1)%columns == 0 || i == len(cards)-1 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, current...))
			current = nil
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
