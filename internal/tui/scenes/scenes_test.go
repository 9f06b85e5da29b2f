package scenes

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rgehrsitz/payoutopt/internal/calculation"
	"github.com/rgehrsitz/payoutopt/internal/domain"
	"github.com/rgehrsitz/payoutopt/internal/output"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testResult(t *testing.T) *domain.Result {
	t.Helper()
	d := decimal.RequireFromString
	p := &domain.Profile{
		CurrentAge: 50, RetirementAge: 60, JoinAge: 22, ServiceYears: 38,
		SeverancePay: d("2000"),
		DCStartAge: 30, DCEndAge: 60, DCCurrentBalance: d("500"),
		DCMonthlyContribution: d("2.5"), DCReturnRate: d("0.03"),
		IDeCoStartAge: 40, IDeCoEndAge: 60, IDeCoCurrentBalance: d("200"),
		IDeCoMonthlyContribution: d("2.3"), IDeCoReturnRate: d("0.03"),
		AvgSalary: d("45"), EndAge: 90,
	}
	result, err := calculation.NewCalculationEngine().Calculate(context.Background(), p)
	require.NoError(t, err)
	return result
}

func TestResultsModel(t *testing.T) {
	m := NewResultsModel()
	assert.Contains(t, m.View(), "No results")

	result := testResult(t)
	m.SetReport(output.BuildReport(result))
	view := m.View()
	assert.Contains(t, view, "Recommended: "+result.Best.Strategy.Code)
	assert.Contains(t, view, "Monthly 60-65")
	assert.Contains(t, view, "Monthly 65+")
	assert.Contains(t, view, "Lump sums")
}

func TestCompareModel(t *testing.T) {
	m := NewCompareModel()
	assert.Contains(t, m.View(), "No results")
	assert.Empty(t, m.Selected())

	result := testResult(t)
	require.NoError(t, m.SetResult(result))
	assert.Equal(t, "A", m.Selected())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "B", m.Selected())

	view := m.View()
	assert.Contains(t, view, "Notes")
	if result.Best.Strategy.Code == "B" {
		assert.Contains(t, view, "B is the recommended strategy")
	} else {
		assert.Contains(t, view, "Net vs "+result.Best.Strategy.Code)
	}
}

func TestCashflowModel(t *testing.T) {
	m := NewCashflowModel()
	assert.Contains(t, m.View(), "No results")

	result := testResult(t)
	m.SetCashflow(output.BuildReport(result).Cashflow)
	m.SetSize(100, 30)
	assert.Contains(t, m.View(), "Age")
	assert.False(t, m.ShowingChart())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("v")})
	assert.True(t, m.ShowingChart())
	assert.Contains(t, m.View(), "Net income by age")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("v")})
	assert.False(t, m.ShowingChart())
}
