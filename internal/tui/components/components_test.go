package components

import (
	"testing"

	"github.com/rgehrsitz/payoutopt/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestBarLength(t *testing.T) {
	tests := []struct {
		name     string
		net      string
		peak     string
		width    int
		expected int
	}{
		{"peak fills width", "500", "500", 40, 40},
		{"half", "250", "500", 40, 20},
		{"tiny amount still visible", "1", "5000", 40, 1},
		{"zero", "0", "500", 40, 0},
		{"negative", "-10", "500", 40, 0},
		{"zero peak", "10", "0", 40, 0},
		{"zero width", "10", "10", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BarLength(d(tt.net), d(tt.peak), tt.width))
		})
	}
}

func TestIncomeChart_Render(t *testing.T) {
	rows := []domain.CashflowYear{
		{Age: 60, LumpSumGross: d("2000"), Net: d("1980")},
		{Age: 65, Public: d("120"), Net: d("115.5")},
	}
	out := NewIncomeChart("Net income", rows).WithWidth(20).Render()

	assert.Contains(t, out, "Net income")
	assert.Contains(t, out, " 60 │")
	assert.Contains(t, out, "1,980.0万円")
	assert.Contains(t, out, "115.5万円")

	assert.Contains(t, NewIncomeChart("", nil).Render(), "No cashflow to display")
}

func TestMetricCard(t *testing.T) {
	card := NewMetricCard("Net", d("1234.5")).WithDelta(d("50"), true).WithDescription("vs base")
	assert.Equal(t, "1,234.5万円", card.Value)
	assert.Equal(t, "+50.0万円", card.Delta)
	assert.True(t, card.Positive)

	tax := NewMetricCard("Tax", d("80")).WithDelta(d("12"), false)
	assert.False(t, tax.Positive, "more tax is worse")

	out := card.Render()
	assert.Contains(t, out, "Net")
	assert.Contains(t, out, "1,234.5万円")
	assert.Contains(t, out, "vs base")

	assert.Equal(t, "5.00%", NewRateCard("Rate", d("0.05")).Value)
	assert.Empty(t, MetricGrid(nil, 2))
}

func TestStrategyRows(t *testing.T) {
	c := domain.Candidate{}
	evals := []domain.Evaluation{
		{Candidate: &c, Strategy: domain.Strategy{Code: "A", Name: "All lump", TotalGross: d("1000"), TotalTax: d("50"), TotalNet: d("950")}},
		{Strategy: domain.Strategy{Code: "B", Name: "Nothing"}},
	}

	rows := StrategyRows(evals, "A")
	assert.Len(t, rows, 2)
	assert.Equal(t, "*A", rows[0][0])
	assert.Equal(t, "950.0万円", rows[0][2])
	assert.Equal(t, "5.00%", rows[0][4])
	assert.Equal(t, "B", rows[1][0])
	assert.Equal(t, "could not be calculated", rows[1][2])
}

func TestCashflowRows(t *testing.T) {
	rows := CashflowRows([]domain.CashflowYear{
		{Age: 60, LumpSumGross: d("2700"), LumpSumTax: d("54.7"), Net: d("2645.3")},
	})
	assert.Equal(t, []string{"60", "2,700.0万円", "0.0万円", "0.0万円", "0.0万円", "54.7万円", "2,645.3万円"}, []string(rows[0]))
}
