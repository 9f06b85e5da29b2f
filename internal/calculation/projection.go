package calculation

import (
	"github.com/shopspring/decimal"
)

// FutureValue projects a plan balance from currentAge to targetAge. Each month
// the balance grows by annualRate/12, then the monthly contribution is added
// while the running age is below contributionEndAge.
func FutureValue(balance, monthlyContribution, annualRate decimal.Decimal, currentAge, targetAge, contributionEndAge int) decimal.Decimal {
	growth := one.Add(annualRate.Div(twelve))
	for age := currentAge; age < targetAge; age++ {
		for m := 0; m < 12; m++ {
			balance = balance.Mul(growth).Round(balancePrecision)
			if age < contributionEndAge {
				balance = balance.Add(monthlyContribution)
			}
		}
	}
	return balance
}

// AnnuityPayment is the level payment that amortizes principal over the given
// number of years at annualRate per period. Years below one count as one.
func AnnuityPayment(principal, annualRate decimal.Decimal, years int) decimal.Decimal {
	if years < 1 {
		years = 1
	}
	n := decimal.NewFromInt(int64(years))
	if annualRate.IsZero() {
		return principal.Div(n)
	}
	power := powInt(one.Add(annualRate), years)
	denom := power.Sub(one)
	if denom.IsZero() {
		return principal.Div(n)
	}
	return principal.Mul(annualRate).Mul(power).Div(denom)
}
