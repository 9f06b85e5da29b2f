package output

import (
	"strings"

	"github.com/rgehrsitz/payoutopt/internal/calculation"
	"github.com/rgehrsitz/payoutopt/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	bandStartAge     = 60
	publicPensionAge = 65
)

// Band is one monthly-income age band of the recommended strategy.
type Band struct {
	Label        string                   `json:"label"`
	StartAge     int                      `json:"startAge"`
	EndAge       int                      `json:"endAge"`
	GrossMonthly decimal.Decimal          `json:"grossMonthly"`
	NetMonthly   decimal.Decimal          `json:"netMonthly"`
	Components   domain.PensionComponents `json:"components"`
}

// Report is everything the formatters render for one calculation.
type Report struct {
	Result      *domain.Result        `json:"result"`
	Bands       []Band                `json:"bands"`
	Cashflow    []domain.CashflowYear `json:"cashflow"`
	Assumptions []string              `json:"assumptions"`
}

// BuildReport derives the display views of a result. The pension breakdown and
// cashflow are recomputed from the recommended candidate; both are empty when
// no family could be calculated.
func BuildReport(result *domain.Result) *Report {
	r := &Report{Result: result, Assumptions: DefaultAssumptions}
	best := result.Best.Strategy
	p := result.Input

	r.Bands = []Band{
		{Label: "60-65", StartAge: bandStartAge, EndAge: publicPensionAge, GrossMonthly: best.Monthly60to65Gross, NetMonthly: best.Monthly60to65Net},
		{Label: "65+", StartAge: publicPensionAge, EndAge: p.EndAge, GrossMonthly: best.Monthly65PlusGross, NetMonthly: best.Monthly65PlusNet},
	}

	if c := result.Best.Candidate; c != nil {
		for i := range r.Bands {
			b := &r.Bands[i]
			b.Components = calculation.PensionComponentMonthly(p, result.PublicPensionAnnual, *c, b.StartAge, b.EndAge)
		}
		r.Cashflow = calculation.CashflowFor(p, result.PublicPensionAnnual, *c)
	}
	return r
}

// Recommended returns the recommended strategy.
func (r *Report) Recommended() domain.Strategy {
	return r.Result.Best.Strategy
}

// FormatMan formats an amount in 万円 with thousands separators and one decimal.
func FormatMan(amount decimal.Decimal) string {
	s := amount.StringFixed(1)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, frac, _ := strings.Cut(s, ".")
	var sb strings.Builder
	for i, ch := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(ch)
	}
	out := sb.String() + "." + frac + "万円"
	if neg {
		return "-" + out
	}
	return out
}

// FormatPercentage formats a fraction as a percentage
func FormatPercentage(fraction decimal.Decimal) string {
	return fraction.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}
