package domain

import (
	"github.com/shopspring/decimal"
)

// Profile holds everything needed to plan the receipt of severance, corporate DC
// and iDeCo benefits. Money is in 万円 (10,000 JPY); rates are annual fractions.
type Profile struct {
	CurrentAge          int             `yaml:"current_age" json:"currentAge"`
	RetirementAge       int             `yaml:"retirement_age" json:"retirementAge"`
	JoinAge             int             `yaml:"join_age" json:"joinAge"`
	ServiceYears        int             `yaml:"service_years" json:"serviceYears"`
	SeverancePay        decimal.Decimal `yaml:"severance_pay" json:"severancePay"`
	SeveranceReceiveAge int             `yaml:"severance_receive_age,omitempty" json:"severanceReceiveAge,omitempty"`

	// Corporate defined-contribution plan
	DCStartAge            int             `yaml:"dc_start_age" json:"dcStartAge"`
	DCEndAge              int             `yaml:"dc_end_age" json:"dcEndAge"`
	DCCurrentBalance      decimal.Decimal `yaml:"dc_current_balance" json:"dcCurrentBalance"`
	DCMonthlyContribution decimal.Decimal `yaml:"dc_monthly_contribution" json:"dcMonthlyContribution"`
	DCReturnRate          decimal.Decimal `yaml:"dc_return_rate" json:"dcReturnRate"`

	// Individual defined-contribution plan (iDeCo)
	IDeCoStartAge            int             `yaml:"ideco_start_age" json:"idecoStartAge"`
	IDeCoEndAge              int             `yaml:"ideco_end_age" json:"idecoEndAge"`
	IDeCoCurrentBalance      decimal.Decimal `yaml:"ideco_current_balance" json:"idecoCurrentBalance"`
	IDeCoMonthlyContribution decimal.Decimal `yaml:"ideco_monthly_contribution" json:"idecoMonthlyContribution"`
	IDeCoReturnRate          decimal.Decimal `yaml:"ideco_return_rate" json:"idecoReturnRate"`

	CurrentSalary decimal.Decimal `yaml:"current_salary" json:"currentSalary"` // Display only
	AvgSalary     decimal.Decimal `yaml:"avg_salary" json:"avgSalary"`         // Average monthly standard salary

	PensionExemption          bool `yaml:"pension_exemption" json:"pensionExemption"`
	IDeCoContinueContribution bool `yaml:"ideco_continue_contribution" json:"idecoContinueContribution"`

	EndAge int `yaml:"end_age" json:"endAge"`
}

// SeveranceAge returns the age the severance payment is received, defaulting to
// the retirement age when no explicit receipt age was given.
func (p Profile) SeveranceAge() int {
	if p.SeveranceReceiveAge > 0 {
		return p.SeveranceReceiveAge
	}
	return p.RetirementAge
}

// YearsOfService returns the service years backing the severance payment.
func (p Profile) YearsOfService() int {
	if p.ServiceYears > 0 {
		return p.ServiceYears
	}
	if y := p.RetirementAge - p.JoinAge; p.JoinAge > 0 && y > 0 {
		return y
	}
	return 0
}

// Clone returns an independent copy. Profile holds no reference types, so a
// value copy suffices.
func (p *Profile) Clone() *Profile {
	c := *p
	return &c
}
