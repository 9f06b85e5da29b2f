package scenes

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/payoutopt/internal/domain"
	"github.com/rgehrsitz/payoutopt/internal/output"
	"github.com/rgehrsitz/payoutopt/internal/tui/components"
	"github.com/rgehrsitz/payoutopt/internal/tui/tuistyles"
)

// ResultsModel shows the recommended strategy
type ResultsModel struct {
	report *output.Report
	width  int
	height int
}

// NewResultsModel creates a new results scene model
func NewResultsModel() *ResultsModel {
	return &ResultsModel{}
}

// SetReport updates the report to display
func (m *ResultsModel) SetReport(report *output.Report) {
	m.report = report
}

// SetSize updates the scene dimensions
func (m *ResultsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages for the results scene. The scene is read-only.
func (m *ResultsModel) Update(msg tea.Msg) (*ResultsModel, tea.Cmd) {
	return m, nil
}

// View renders the results scene
func (m *ResultsModel) View() string {
	if m.report == nil {
		return renderEmptyState()
	}
	best := m.report.Recommended()

	header := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorPrimary).Render(
			fmt.Sprintf("Recommended: %s  %s", best.Code, best.Name)),
		tuistyles.InfoStyle.Render(best.Description),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		renderTotals(best),
		"",
		renderLumpSums(best.Lumpsum),
		"",
		renderBands(m.report.Bands),
	)
}

func renderEmptyState() string {
	return tuistyles.InfoStyle.Render("No results to display yet.")
}

func renderTotals(s domain.Strategy) string {
	cards := []*components.MetricCard{
		components.NewMetricCard("Total net", s.TotalNet),
		components.NewMetricCard("Total tax", s.TotalTax),
		components.NewRateCard("Tax rate", s.Efficiency()),
	}
	return components.MetricGrid(cards, 3)
}

func renderLumpSums(items []domain.LumpSumBreakdown) string {
	var sb strings.Builder
	sb.WriteString(tuistyles.MetricLabelStyle.Render("Lump sums"))
	sb.WriteString("\n")
	if len(items) == 0 {
		sb.WriteString("  none\n")
		return sb.String()
	}
	for _, it := range items {
		fmt.Fprintf(&sb, "  %-12s age %d  %14s  tax %12s  net %14s\n",
			it.Item, it.Age, output.FormatMan(it.Amount), output.FormatMan(it.Tax), output.FormatMan(it.Net))
	}
	return sb.String()
}

func renderBands(bands []output.Band) string {
	cards := make([]*components.MetricCard, 0, len(bands))
	for _, b := range bands {
		desc := fmt.Sprintf("gross %s", output.FormatMan(b.GrossMonthly))
		cards = append(cards, components.NewMetricCard("Monthly "+b.Label, b.NetMonthly).WithDescription(desc))
	}
	return components.MetricGrid(cards, 2)
}
