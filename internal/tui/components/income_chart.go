package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/payoutopt/internal/domain"
	"github.com/rgehrsitz/payoutopt/internal/output"
	"github.com/rgehrsitz/payoutopt/internal/tui/tuistyles"
	"github.com/shopspring/decimal"
)

const barRune = "█"

// IncomeChart draws one horizontal bar per age for the net income of a
// cashflow. Ages with a lump sum are drawn in the lump-sum color.
type IncomeChart struct {
	Title string
	Rows  []domain.CashflowYear
	Width int
}

// NewIncomeChart creates a chart over cashflow rows.
func NewIncomeChart(title string, rows []domain.CashflowYear) *IncomeChart {
	return &IncomeChart{Title: title, Rows: rows, Width: 40}
}

// WithWidth sets the maximum bar length
func (c *IncomeChart) WithWidth(width int) *IncomeChart {
	c.Width = width
	return c
}

// BarLength scales net to the chart width relative to peak. Any positive
// amount gets at least one cell.
func BarLength(net, peak decimal.Decimal, width int) int {
	if !net.IsPositive() || !peak.IsPositive() || width <= 0 {
		return 0
	}
	n := int(net.Div(peak).Mul(decimal.NewFromInt(int64(width))).Round(0).IntPart())
	return min(max(n, 1), width)
}

// Render returns the styled chart
func (c *IncomeChart) Render() string {
	if len(c.Rows) == 0 {
		return tuistyles.InfoStyle.Render("No cashflow to display")
	}

	peak := decimal.Zero
	for _, r := range c.Rows {
		peak = decimal.Max(peak, r.Net)
	}

	lump := lipgloss.NewStyle().Foreground(tuistyles.ColorLumpSum)
	pension := lipgloss.NewStyle().Foreground(tuistyles.ColorPension)

	var sb strings.Builder
	if c.Title != "" {
		sb.WriteString(tuistyles.TitleStyle.Render(c.Title))
		sb.WriteString("\n\n")
	}
	for _, r := range c.Rows {
		style := pension
		if r.LumpSumGross.IsPositive() {
			style = lump
		}
		bar := strings.Repeat(barRune, BarLength(r.Net, peak, c.Width))
		fmt.Fprintf(&sb, "%3d │%s %s\n", r.Age, style.Render(bar), output.FormatMan(r.Net))
	}
	sb.WriteString(tuistyles.InfoStyle.Render(
		lump.Render(barRune) + " lump sum year  " + pension.Render(barRune) + " pension only"))
	return sb.String()
}
