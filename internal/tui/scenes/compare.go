package scenes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/payoutopt/internal/compare"
	"github.com/rgehrsitz/payoutopt/internal/domain"
	"github.com/rgehrsitz/payoutopt/internal/tui/components"
	"github.com/rgehrsitz/payoutopt/internal/tui/tuistyles"
)

// CompareModel lists every strategy family against the recommendation
type CompareModel struct {
	result *domain.Result
	set    *compare.ComparisonSet
	table  table.Model
	width  int
	height int
}

// NewCompareModel creates a new compare scene model
func NewCompareModel() *CompareModel {
	return &CompareModel{table: components.NewStrategyTable(nil, "", 6)}
}

// SetResult rebuilds the table and the comparison against the recommendation.
func (m *CompareModel) SetResult(result *domain.Result) error {
	set, err := compare.NewCompareEngine(nil).CompareResult(result, compare.CompareOptions{})
	if err != nil {
		return err
	}
	m.result = result
	m.set = set
	m.table.SetRows(components.StrategyRows(result.Strategies, result.Best.Strategy.Code))
	m.table.SetCursor(0)
	return nil
}

// SetSize updates the model dimensions
func (m *CompareModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Selected returns the code of the highlighted family.
func (m *CompareModel) Selected() string {
	if m.result == nil {
		return ""
	}
	i := m.table.Cursor()
	if i < 0 || i >= len(m.result.Strategies) {
		return ""
	}
	return m.result.Strategies[i].Strategy.Code
}

// Update moves the table cursor
func (m *CompareModel) Update(msg tea.Msg) (*CompareModel, tea.Cmd) {
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the compare scene
func (m *CompareModel) View() string {
	if m.set == nil {
		return renderEmptyState()
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.table.View(),
		"",
		m.renderSelected(),
		"",
		renderRecommendations(m.set.Recommendations),
	)
}

func (m *CompareModel) renderSelected() string {
	code := m.Selected()
	if code == m.set.BaseCode {
		return tuistyles.InfoStyle.Render(fmt.Sprintf("%s is the recommended strategy", code))
	}
	for _, alt := range m.set.AlternativeResults {
		if alt.Code != code {
			continue
		}
		if !alt.Feasible {
			return tuistyles.InfoStyle.Render(alt.Name + ": " + alt.Description)
		}
		cards := []*components.MetricCard{
			components.NewMetricCard("Net vs "+m.set.BaseCode, alt.TotalNet).WithDelta(alt.NetDiffFromBase, true),
			components.NewMetricCard("Tax vs "+m.set.BaseCode, alt.TotalTax).WithDelta(alt.TaxDiffFromBase, false),
		}
		return components.MetricGrid(cards, 2)
	}
	return ""
}

func renderRecommendations(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(tuistyles.MetricLabelStyle.Render("Notes"))
	for _, l := range lines {
		sb.WriteString("\n  • " + l)
	}
	return sb.String()
}
