package domain

import (
	"github.com/shopspring/decimal"
)

// LumpSumBreakdown is the after-tax view of one lump-sum item.
type LumpSumBreakdown struct {
	Item   string          `json:"item"`
	Age    int             `json:"age"`
	Amount decimal.Decimal `json:"amount"`
	Tax    decimal.Decimal `json:"tax"`
	Net    decimal.Decimal `json:"net"`
}

// Strategy is the evaluated outcome of one candidate under a strategy family.
type Strategy struct {
	Code        string             `json:"code"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Lumpsum     []LumpSumBreakdown `json:"lumpsum"`

	TotalGross decimal.Decimal `json:"totalGross"`
	TotalTax   decimal.Decimal `json:"totalTax"`
	TotalNet   decimal.Decimal `json:"totalNet"`

	Monthly60to65Gross decimal.Decimal `json:"monthlyIncome60to65Gross"`
	Monthly60to65Net   decimal.Decimal `json:"monthlyIncome60to65Net"`
	Monthly65PlusGross decimal.Decimal `json:"monthlyIncome65plusGross"`
	Monthly65PlusNet   decimal.Decimal `json:"monthlyIncome65plusNet"`
}

// Efficiency is total tax over total gross, or 1 when nothing was received.
func (s Strategy) Efficiency() decimal.Decimal {
	if !s.TotalGross.IsPositive() {
		return decimal.NewFromInt(1)
	}
	return s.TotalTax.Div(s.TotalGross)
}

// Evaluation pairs a candidate with the strategy it produced. Candidate is nil
// when no candidate could be evaluated for the family.
type Evaluation struct {
	Candidate *Candidate `json:"candidate"`
	Strategy  Strategy   `json:"strategy"`
}

// Feasible reports whether the evaluation came from a real candidate.
func (e Evaluation) Feasible() bool {
	return e.Candidate != nil
}

// Result is the full outcome of a calculation.
type Result struct {
	Input               Profile         `json:"input"`
	PublicPensionAnnual decimal.Decimal `json:"publicPensionAnnual"`
	Strategies          []Evaluation    `json:"strategies"`
	Best                Evaluation      `json:"best"`
}

// StrategyByCode returns the evaluation for a family code.
func (r *Result) StrategyByCode(code string) (Evaluation, bool) {
	for _, e := range r.Strategies {
		if e.Strategy.Code == code {
			return e, true
		}
	}
	return Evaluation{}, false
}

// PensionComponents is the gross monthly pension income by source over an age band.
type PensionComponents struct {
	Years         int             `json:"years"`
	PublicMonthly decimal.Decimal `json:"publicM"`
	DCMonthly     decimal.Decimal `json:"dcM"`
	IDeCoMonthly  decimal.Decimal `json:"idecoM"`
	TotalMonthly  decimal.Decimal `json:"totalM"`
}

// CashflowYear is the income received at one age under a candidate.
type CashflowYear struct {
	Age          int             `json:"age"`
	LumpSumGross decimal.Decimal `json:"lumpsumGross"`
	LumpSumTax   decimal.Decimal `json:"lumpsumTax"`
	Public       decimal.Decimal `json:"publicPension"`
	DC           decimal.Decimal `json:"dcPension"`
	IDeCo        decimal.Decimal `json:"idecoPension"`
	PensionTax   decimal.Decimal `json:"pensionTax"`
	Net          decimal.Decimal `json:"net"`
}

// PensionGross is the yearly pension income from all sources.
func (y CashflowYear) PensionGross() decimal.Decimal {
	return y.Public.Add(y.DC).Add(y.IDeCo)
}
