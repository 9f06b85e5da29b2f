package calculation

import (
	"testing"

	"github.com/rgehrsitz/payoutopt/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluator_Cashflow(t *testing.T) {
	ev := flatEvaluator()
	c := domain.Candidate{DC: domain.Lump(60), IDeCo: domain.Lump(60)}

	rows := ev.Cashflow(c)
	require.Len(t, rows, 26, "lump year plus 65..89")

	first := rows[0]
	assert.Equal(t, 60, first.Age)
	assertDecimal(t, d("2700"), first.LumpSumGross)
	assertDecimal(t, d("54.71725"), first.LumpSumTax)
	assert.True(t, first.PensionGross().IsZero())

	assert.Equal(t, 65, rows[1].Age)
	assertDecimal(t, d("77.52"), rows[1].Public)
	assert.Equal(t, 89, rows[len(rows)-1].Age)

	net := decimal.Zero
	for _, r := range rows {
		net = net.Add(r.Net)
	}
	assertDecimal(t, ev.Evaluate(c).TotalNet, net)
}

func TestEvaluator_Cashflow_PensionStreams(t *testing.T) {
	ev := flatEvaluator()
	c := domain.Candidate{DC: domain.Pension(60), IDeCo: domain.Pension(60)}

	rows := ev.Cashflow(c)
	require.Len(t, rows, 30, "severance at 60, then 60..89")
	assert.Equal(t, 60, rows[0].Age)
	assertDecimal(t, d("2000"), rows[0].LumpSumGross)
	assert.True(t, rows[0].DC.IsPositive())
	assert.True(t, rows[0].IDeCo.IsPositive())
	assert.True(t, rows[0].Public.IsZero())
	assert.True(t, rows[5].Public.IsPositive())

	assert.Equal(t, rows, CashflowFor(ev.Profile, ev.PublicPensionAnnual, c))
}
