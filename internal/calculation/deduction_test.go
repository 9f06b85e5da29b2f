package calculation

import (
	"testing"

	"github.com/rgehrsitz/payoutopt/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func event(kind domain.EventKind, age int, periods ...domain.Interval) domain.LumpSumEvent {
	return domain.LumpSumEvent{Kind: kind, Age: age, Periods: periods}
}

func TestRetirementDeduction(t *testing.T) {
	tests := []struct {
		years    int
		expected string
	}{
		{0, "80"},
		{1, "80"},
		{2, "80"},
		{3, "120"},
		{20, "800"},
		{21, "870"},
		{38, "2060"},
	}

	for _, tt := range tests {
		assertDecimal(t, d(tt.expected), RetirementDeduction(tt.years), "years=%d", tt.years)
	}
}

func TestRetirementDeduction_Monotone(t *testing.T) {
	prev := RetirementDeduction(0)
	for y := 1; y <= 60; y++ {
		cur := RetirementDeduction(y)
		assert.True(t, cur.GreaterThanOrEqual(prev), "deduction decreased at %d years", y)
		prev = cur
	}
}

func TestThresholdYears(t *testing.T) {
	sev := event(domain.KindSeverance, 60)
	dc := event(domain.KindDC, 60)
	ideco := event(domain.KindIDeCo, 60)

	assert.Equal(t, 10, ThresholdYears(dc, sev))
	assert.Equal(t, 10, ThresholdYears(ideco, sev))
	assert.Equal(t, 20, ThresholdYears(sev, dc))
	assert.Equal(t, 20, ThresholdYears(dc, ideco))
	assert.Equal(t, 20, ThresholdYears(sev, sev))
}

func TestAdjustedDeduction(t *testing.T) {
	severance := event(domain.KindSeverance, 60, iv(22, 60))

	t.Run("first event keeps base deduction", func(t *testing.T) {
		assertDecimal(t, d("2060"), AdjustedDeduction(severance, nil))
	})

	t.Run("gap below threshold removes overlapping years", func(t *testing.T) {
		dc := event(domain.KindDC, 70, iv(30, 60))
		// base(30)=1500, overlap 30 years -> 1500
		assert.True(t, AdjustedDeduction(dc, &severance).IsZero())
	})

	t.Run("gap at threshold keeps base deduction", func(t *testing.T) {
		dc := event(domain.KindDC, 80, iv(30, 60))
		assertDecimal(t, RetirementDeduction(30), AdjustedDeduction(dc, &severance))
	})

	t.Run("pension before severance uses ten years", func(t *testing.T) {
		dc := event(domain.KindDC, 60, iv(30, 60))
		sev := event(domain.KindSeverance, 70, iv(22, 70))
		assertDecimal(t, RetirementDeduction(48), AdjustedDeduction(sev, &dc))
	})

	t.Run("partial overlap", func(t *testing.T) {
		dc := event(domain.KindDC, 60, iv(30, 60))
		sev := event(domain.KindSeverance, 65, iv(25, 65))
		// base(40)=2200 minus base(30)=1500
		assertDecimal(t, d("700"), AdjustedDeduction(sev, &dc))
	})
}

func TestAdjustedDeduction_Bounds(t *testing.T) {
	for prevAge := 50; prevAge <= 75; prevAge += 5 {
		for curAge := prevAge; curAge <= 80; curAge += 3 {
			prev := event(domain.KindSeverance, prevAge, iv(prevAge-30, prevAge))
			cur := event(domain.KindIDeCo, curAge, iv(35, 60))
			base := RetirementDeduction(UnionLength(cur.Periods))
			got := AdjustedDeduction(cur, &prev)

			assert.False(t, got.IsNegative())
			assert.True(t, got.LessThanOrEqual(base))
			if curAge-prevAge >= ThresholdYears(prev, cur) {
				assert.True(t, got.Equal(base), "gap %d must keep full deduction", curAge-prevAge)
			}
		}
	}
}

func TestAssessLumpSums(t *testing.T) {
	tc := NewTaxCalculator()
	events := []domain.LumpSumEvent{
		{Kind: domain.KindSeverance, Age: 60, Amount: d("2000"), Periods: []domain.Interval{iv(22, 60)}},
		{Kind: domain.KindDC, Age: 70, Amount: d("700"), Periods: []domain.Interval{iv(30, 60), iv(40, 60)}},
	}

	got := tc.AssessLumpSums(events)
	require.Len(t, got, 2)

	assertDecimal(t, d("2060"), got[0].Deduction)
	assert.True(t, got[0].Tax.IsZero())

	assert.True(t, got[1].Deduction.IsZero())
	// 350 taxable: 27.82225 income tax + 35 resident tax
	assertDecimal(t, d("62.82225"), got[1].Tax)
}
