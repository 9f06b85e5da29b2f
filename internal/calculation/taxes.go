package calculation

import (
	"github.com/shopspring/decimal"
)

// TAX CALCULATION ASSUMPTIONS:
//
// 1. Income tax: national progressive brackets with the quick-deduction method,
//    multiplied by the 2.1% reconstruction surtax. Amounts are handled in 万円
//    and converted to yen only for the bracket lookup.
//
// 2. Resident tax: flat 10%. Ordinary income also pays a 5,000 yen per-capita
//    levy; separately taxed retirement income does not.
//
// 3. Public pension deduction: the two statutory schedules (under 65, 65 and
//    over) for pension income of up to 10 million yen of other income.
//
// 4. Basic allowance: 480,000 yen, applied to pension income only.

// TaxBracket is one band of the income tax schedule. Tax within the band is
// income*Rate - QuickDeduction. A zero Max marks the open top band.
type TaxBracket struct {
	Max            decimal.Decimal
	Rate           decimal.Decimal
	QuickDeduction decimal.Decimal
}

// IncomeTaxCalculator computes national income tax on an amount in 万円.
type IncomeTaxCalculator struct {
	Brackets         []TaxBracket // Bounds and deductions in yen
	SurtaxMultiplier decimal.Decimal
}

// NewIncomeTaxCalculator returns the calculator for the current schedule.
func NewIncomeTaxCalculator() *IncomeTaxCalculator {
	return &IncomeTaxCalculator{
		Brackets: []TaxBracket{
			{decimal.NewFromInt(1949000), decimal.RequireFromString("0.05"), decimal.Zero},
			{decimal.NewFromInt(3299000), decimal.RequireFromString("0.10"), decimal.NewFromInt(97500)},
			{decimal.NewFromInt(6949000), decimal.RequireFromString("0.20"), decimal.NewFromInt(427500)},
			{decimal.NewFromInt(8999000), decimal.RequireFromString("0.23"), decimal.NewFromInt(636000)},
			{decimal.NewFromInt(17999000), decimal.RequireFromString("0.33"), decimal.NewFromInt(1536000)},
			{decimal.NewFromInt(39999000), decimal.RequireFromString("0.40"), decimal.NewFromInt(2796000)},
			{decimal.Zero, decimal.RequireFromString("0.45"), decimal.NewFromInt(4796000)},
		},
		SurtaxMultiplier: decimal.RequireFromString("1.021"),
	}
}

// Calculate returns the income tax, including surtax, on taxable income in 万円.
func (c *IncomeTaxCalculator) Calculate(income decimal.Decimal) decimal.Decimal {
	if !income.IsPositive() || len(c.Brackets) == 0 {
		return decimal.Zero
	}
	yen := income.Mul(yenPerMan)

	bracket := c.Brackets[len(c.Brackets)-1]
	for _, b := range c.Brackets {
		if b.Max.IsZero() || yen.LessThanOrEqual(b.Max) {
			bracket = b
			break
		}
	}

	tax := yen.Mul(bracket.Rate).Sub(bracket.QuickDeduction)
	tax = maxDecimal(decimal.Zero, tax.Mul(c.SurtaxMultiplier))
	return tax.Div(yenPerMan)
}

// ResidentTaxCalculator computes the flat municipal and prefectural tax.
type ResidentTaxCalculator struct {
	Rate      decimal.Decimal
	PerCapita decimal.Decimal // 万円
}

// NewResidentTaxCalculator returns the standard 10% rate with a 5,000 yen levy.
func NewResidentTaxCalculator() *ResidentTaxCalculator {
	return &ResidentTaxCalculator{
		Rate:      decimal.RequireFromString("0.10"),
		PerCapita: decimal.RequireFromString("0.5"),
	}
}

// General taxes ordinary income, per-capita levy included.
func (r *ResidentTaxCalculator) General(income decimal.Decimal) decimal.Decimal {
	if !income.IsPositive() {
		return decimal.Zero
	}
	return income.Mul(r.Rate).Add(r.PerCapita)
}

// Retirement taxes separately assessed retirement income.
func (r *ResidentTaxCalculator) Retirement(income decimal.Decimal) decimal.Decimal {
	if !income.IsPositive() {
		return decimal.Zero
	}
	return income.Mul(r.Rate)
}

// PensionDeductionTier is one piece of the pension deduction schedule:
// deduction = total*Rate + Add for totals up to UpTo. A zero UpTo is open-ended.
type PensionDeductionTier struct {
	UpTo decimal.Decimal
	Rate decimal.Decimal
	Add  decimal.Decimal
}

// PensionDeductionSchedule is a piecewise-linear public pension deduction.
type PensionDeductionSchedule []PensionDeductionTier

// Deduction returns the deduction for a yearly pension total.
func (s PensionDeductionSchedule) Deduction(total decimal.Decimal) decimal.Decimal {
	for _, t := range s {
		if t.UpTo.IsZero() || total.LessThanOrEqual(t.UpTo) {
			return total.Mul(t.Rate).Add(t.Add)
		}
	}
	return decimal.Zero
}

func pensionSchedule(minimum, firstBreak decimal.Decimal) PensionDeductionSchedule {
	return PensionDeductionSchedule{
		{firstBreak, decimal.Zero, minimum},
		{decimal.NewFromInt(410), decimal.RequireFromString("0.25"), decimal.RequireFromString("27.5")},
		{decimal.NewFromInt(770), decimal.RequireFromString("0.15"), decimal.RequireFromString("68.5")},
		{decimal.NewFromInt(1000), decimal.RequireFromString("0.05"), decimal.RequireFromString("145.5")},
		{decimal.Zero, decimal.Zero, decimal.RequireFromString("195.5")},
	}
}

// TaxCalculator bundles every schedule needed to tax lump sums and pensions.
type TaxCalculator struct {
	Income   *IncomeTaxCalculator
	Resident *ResidentTaxCalculator

	PensionUnderThreshold PensionDeductionSchedule
	PensionOverThreshold  PensionDeductionSchedule
	PensionThresholdAge   int
	BasicAllowance        decimal.Decimal
}

// NewTaxCalculator returns a calculator with the statutory defaults.
func NewTaxCalculator() *TaxCalculator {
	return &TaxCalculator{
		Income:                NewIncomeTaxCalculator(),
		Resident:              NewResidentTaxCalculator(),
		PensionUnderThreshold: pensionSchedule(decimal.NewFromInt(60), decimal.NewFromInt(130)),
		PensionOverThreshold:  pensionSchedule(decimal.NewFromInt(110), decimal.NewFromInt(330)),
		PensionThresholdAge:   65,
		BasicAllowance:        decimal.NewFromInt(48),
	}
}

// PensionDeduction returns the public pension deduction for the given age.
func (tc *TaxCalculator) PensionDeduction(total decimal.Decimal, age int) decimal.Decimal {
	if age >= tc.PensionThresholdAge {
		return tc.PensionOverThreshold.Deduction(total)
	}
	return tc.PensionUnderThreshold.Deduction(total)
}

// PensionTax returns income and resident tax on one year of pension income.
func (tc *TaxCalculator) PensionTax(total decimal.Decimal, age int) decimal.Decimal {
	taxable := total.Sub(tc.PensionDeduction(total, age)).Sub(tc.BasicAllowance)
	if !taxable.IsPositive() {
		return decimal.Zero
	}
	return tc.Income.Calculate(taxable).Add(tc.Resident.General(taxable))
}

// RetirementTax returns the tax on a retirement lump sum after deduction.
// Only half of the excess over the deduction is taxable.
func (tc *TaxCalculator) RetirementTax(amount, deduction decimal.Decimal) decimal.Decimal {
	if amount.LessThanOrEqual(deduction) {
		return decimal.Zero
	}
	taxable := amount.Sub(deduction).Div(decimal.NewFromInt(2))
	return tc.Income.Calculate(taxable).Add(tc.Resident.Retirement(taxable))
}

var defaultTaxes = NewTaxCalculator()

// IncomeTax applies the default income tax schedule.
func IncomeTax(income decimal.Decimal) decimal.Decimal {
	return defaultTaxes.Income.Calculate(income)
}

// PensionDeduction applies the default pension deduction schedules.
func PensionDeduction(total decimal.Decimal, age int) decimal.Decimal {
	return defaultTaxes.PensionDeduction(total, age)
}

// PensionTax applies the default schedules to one year of pension income.
func PensionTax(total decimal.Decimal, age int) decimal.Decimal {
	return defaultTaxes.PensionTax(total, age)
}

// RetirementTax applies the default schedules to a retirement lump sum.
func RetirementTax(amount, deduction decimal.Decimal) decimal.Decimal {
	return defaultTaxes.RetirementTax(amount, deduction)
}
