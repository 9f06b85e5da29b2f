package calculation

import (
	"github.com/rgehrsitz/payoutopt/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	// Minimum gap after a DC/iDeCo lump sum before a severance payment is
	// assessed without regard to the earlier one.
	pensionToSeveranceGap = 10
	// Minimum gap for every other ordering.
	defaultReceiptGap = 20
)

// RetirementDeduction is the retirement income deduction for years of service.
func RetirementDeduction(years int) decimal.Decimal {
	if years <= 20 {
		return decimal.NewFromInt(int64(max(40*years, 80)))
	}
	return decimal.NewFromInt(int64(800 + 70*(years-20)))
}

// ThresholdYears is the gap between two lump sums at which the later one
// keeps its full deduction.
func ThresholdYears(prev, cur domain.LumpSumEvent) int {
	if prev.Kind.IsPensionType() && cur.Kind == domain.KindSeverance {
		return pensionToSeveranceGap
	}
	return defaultReceiptGap
}

// AdjustedDeduction returns the deduction for cur given the lump sum received
// before it. When the two are closer than the threshold, the deduction for the
// overlapping service years is taken off the base deduction.
func AdjustedDeduction(cur domain.LumpSumEvent, prev *domain.LumpSumEvent) decimal.Decimal {
	base := RetirementDeduction(UnionLength(cur.Periods))
	if prev == nil {
		return base
	}
	if cur.Age-prev.Age >= ThresholdYears(*prev, cur) {
		return base
	}
	overlap := RetirementDeduction(OverlapLength(prev.Periods, cur.Periods))
	return maxDecimal(decimal.Zero, base.Sub(overlap))
}

// EventAssessment is a lump-sum event with its deduction and tax.
type EventAssessment struct {
	Event     domain.LumpSumEvent
	Deduction decimal.Decimal
	Tax       decimal.Decimal
}

// AssessLumpSums taxes age-ordered events, each against the one before it.
func (tc *TaxCalculator) AssessLumpSums(events []domain.LumpSumEvent) []EventAssessment {
	out := make([]EventAssessment, 0, len(events))
	var prev *domain.LumpSumEvent
	for i := range events {
		ev := events[i]
		deduction := AdjustedDeduction(ev, prev)
		out = append(out, EventAssessment{
			Event:     ev,
			Deduction: deduction,
			Tax:       tc.RetirementTax(ev.Amount, deduction),
		})
		prev = &events[i]
	}
	return out
}
