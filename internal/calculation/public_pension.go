package calculation

import (
	"github.com/shopspring/decimal"
)

// PublicPensionCalculator estimates the annual public pension (employees'
// pension plus basic pension) in 万円.
type PublicPensionCalculator struct {
	AccrualRate      decimal.Decimal // Employees' pension accrual per month of service
	FullBasicPension decimal.Decimal
	FullBasicYears   decimal.Decimal
	ExemptionCredit  decimal.Decimal // Share of pre-60 years credited under exemption
	BasicCoverageAge int
}

// NewPublicPensionCalculator returns the calculator with current rates.
func NewPublicPensionCalculator() *PublicPensionCalculator {
	return &PublicPensionCalculator{
		AccrualRate:      decimal.RequireFromString("0.005481"),
		FullBasicPension: decimal.RequireFromString("81.6"),
		FullBasicYears:   decimal.NewFromInt(40),
		ExemptionCredit:  decimal.RequireFromString("0.5"),
		BasicCoverageAge: 60,
	}
}

// Annual returns the yearly public pension. Retiring before the basic coverage
// age still accrues basic pension years until that age, in full or at the
// exemption credit rate.
func (pc *PublicPensionCalculator) Annual(avgMonthlySalary decimal.Decimal, yearsOfService int, exemption bool, retirementAge int) decimal.Decimal {
	months := decimal.NewFromInt(int64(yearsOfService * 12))
	employee := avgMonthlySalary.Mul(pc.AccrualRate).Mul(months)

	basicYears := decimal.NewFromInt(int64(yearsOfService))
	if retirementAge < pc.BasicCoverageAge {
		gap := decimal.NewFromInt(int64(pc.BasicCoverageAge - retirementAge))
		if exemption {
			gap = gap.Mul(pc.ExemptionCredit)
		}
		basicYears = basicYears.Add(gap)
	}
	basic := pc.FullBasicPension.Mul(basicYears).Div(pc.FullBasicYears)

	return employee.Add(basic)
}
