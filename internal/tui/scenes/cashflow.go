package scenes

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/payoutopt/internal/domain"
	"github.com/rgehrsitz/payoutopt/internal/tui/components"
)

// ToggleChartKey switches the cashflow scene between table and chart.
var ToggleChartKey = key.NewBinding(
	key.WithKeys("v"),
	key.WithHelp("v", "table/chart"),
)

// CashflowModel shows the yearly income of the recommended strategy
type CashflowModel struct {
	rows      []domain.CashflowYear
	table     table.Model
	showChart bool
	width     int
	height    int
}

// NewCashflowModel creates a new cashflow scene model
func NewCashflowModel() *CashflowModel {
	return &CashflowModel{table: components.NewCashflowTable(nil, 15)}
}

// SetCashflow replaces the rows
func (m *CashflowModel) SetCashflow(rows []domain.CashflowYear) {
	m.rows = rows
	m.table.SetRows(components.CashflowRows(rows))
	m.table.SetCursor(0)
}

// SetSize updates the model dimensions and fits the table to the height.
func (m *CashflowModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	if height > 6 {
		m.table.SetHeight(height - 4)
	}
}

// ShowingChart reports whether the chart view is active.
func (m *CashflowModel) ShowingChart() bool {
	return m.showChart
}

// Update toggles the view or moves the table cursor
func (m *CashflowModel) Update(msg tea.Msg) (*CashflowModel, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, ToggleChartKey) {
		m.showChart = !m.showChart
		return m, nil
	}
	if m.showChart {
		return m, nil
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the cashflow scene
func (m *CashflowModel) View() string {
	if len(m.rows) == 0 {
		return renderEmptyState()
	}
	if m.showChart {
		width := 40
		if m.width > 40 {
			width = m.width - 30
		}
		return components.NewIncomeChart("Net income by age", m.rows).WithWidth(width).Render()
	}
	return m.table.View()
}
