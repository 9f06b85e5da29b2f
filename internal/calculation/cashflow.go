package calculation

import (
	"sort"

	"github.com/rgehrsitz/payoutopt/internal/domain"
	"github.com/shopspring/decimal"
)

// Cashflow lists the income received at each age under a candidate, in age
// order. Ages without any income are omitted.
func (ev *Evaluator) Cashflow(c domain.Candidate) []domain.CashflowYear {
	pay := ev.resolve(c)

	lumps := make(map[int]EventAssessment)
	ages := make(map[int]bool)
	for _, a := range ev.Taxes.AssessLumpSums(ev.lumpEvents(pay)) {
		lumps[a.Event.Age] = a
		ages[a.Event.Age] = true
	}
	for age := pensionWindowStart; age < ev.Profile.EndAge; age++ {
		ages[age] = true
	}
	ordered := make([]int, 0, len(ages))
	for age := range ages {
		ordered = append(ordered, age)
	}
	sort.Ints(ordered)

	var rows []domain.CashflowYear
	for _, age := range ordered {
		row := domain.CashflowYear{Age: age}
		if a, ok := lumps[age]; ok {
			row.LumpSumGross, row.LumpSumTax = a.Event.Amount, a.Tax
		}
		if age >= pensionWindowStart && age < ev.Profile.EndAge {
			row.Public, row.DC, row.IDeCo = ev.yearlyPension(pay, age)
			if yearly := row.PensionGross(); yearly.IsPositive() {
				row.PensionTax = ev.Taxes.PensionTax(yearly, age)
			}
		}
		gross := row.LumpSumGross.Add(row.PensionGross())
		if gross.IsZero() {
			continue
		}
		row.Net = gross.Sub(row.LumpSumTax).Sub(row.PensionTax)
		rows = append(rows, row)
	}
	return rows
}

// CashflowFor is Cashflow for a one-off evaluation.
func CashflowFor(profile domain.Profile, publicPensionAnnual decimal.Decimal, c domain.Candidate) []domain.CashflowYear {
	return NewEvaluator(profile, publicPensionAnnual, nil).Cashflow(c)
}
