package calculation

import (
	"sort"

	"github.com/rgehrsitz/payoutopt/internal/domain"
	"github.com/shopspring/decimal"
)

// Lump-sum item labels.
const (
	LabelSeverance = "Severance lump sum"
	LabelDC        = "Corporate DC lump sum"
	LabelIDeCo     = "iDeCo lump sum"
)

const (
	pensionWindowStart    = 60 // First age counted in pension totals
	publicPensionStartAge = 65
)

// planAccount is the projection input for one defined-contribution plan.
type planAccount struct {
	balance      decimal.Decimal
	contribution decimal.Decimal
	rate         decimal.Decimal
	endAge       int
}

// payout is a candidate resolved into amounts.
type payout struct {
	candidate   domain.Candidate
	dcLump      decimal.Decimal
	idecoLump   decimal.Decimal
	dcAnnual    decimal.Decimal
	idecoAnnual decimal.Decimal
}

// Evaluator turns a candidate into a taxed payout plan for one profile.
type Evaluator struct {
	Profile             domain.Profile
	PublicPensionAnnual decimal.Decimal
	Taxes               *TaxCalculator
}

// NewEvaluator creates an evaluator. A nil tax calculator uses the defaults.
func NewEvaluator(profile domain.Profile, publicPensionAnnual decimal.Decimal, taxes *TaxCalculator) *Evaluator {
	if taxes == nil {
		taxes = NewTaxCalculator()
	}
	return &Evaluator{Profile: profile, PublicPensionAnnual: publicPensionAnnual, Taxes: taxes}
}

func (ev *Evaluator) dcAccount() planAccount {
	p := ev.Profile
	return planAccount{p.DCCurrentBalance, p.DCMonthlyContribution, p.DCReturnRate, p.DCEndAge}
}

func (ev *Evaluator) idecoAccount() planAccount {
	p := ev.Profile
	return planAccount{p.IDeCoCurrentBalance, p.IDeCoMonthlyContribution, p.IDeCoReturnRate, p.IDeCoEndAge}
}

func (ev *Evaluator) balanceAt(acct planAccount, age int) decimal.Decimal {
	return FutureValue(acct.balance, acct.contribution, acct.rate, ev.Profile.CurrentAge, age, acct.endAge)
}

// annualPension annuitizes the balance at startAge over the years left until
// the end age.
func (ev *Evaluator) annualPension(acct planAccount, startAge int) decimal.Decimal {
	years := max(1, ev.Profile.EndAge-startAge)
	return AnnuityPayment(ev.balanceAt(acct, startAge), acct.rate, years)
}

func (ev *Evaluator) resolve(c domain.Candidate) payout {
	pay := payout{candidate: c}
	switch c.DC.Mode {
	case domain.ModeLump:
		pay.dcLump = ev.balanceAt(ev.dcAccount(), c.DC.Age)
	case domain.ModePension:
		pay.dcAnnual = ev.annualPension(ev.dcAccount(), c.DC.Age)
	}
	switch c.IDeCo.Mode {
	case domain.ModeLump:
		pay.idecoLump = ev.balanceAt(ev.idecoAccount(), c.IDeCo.Age)
	case domain.ModePension:
		pay.idecoAnnual = ev.annualPension(ev.idecoAccount(), c.IDeCo.Age)
	}
	return pay
}

func singleItemEvent(kind domain.EventKind, label string, age int, amount decimal.Decimal, period domain.Interval) domain.LumpSumEvent {
	return domain.LumpSumEvent{
		Kind:    kind,
		Age:     age,
		Items:   []domain.LumpSumItem{{Label: label, Age: age, Amount: amount}},
		Amount:  amount,
		Periods: []domain.Interval{period},
	}
}

// LumpEvents returns the merged, age-ordered lump-sum events for a candidate.
func (ev *Evaluator) LumpEvents(c domain.Candidate) []domain.LumpSumEvent {
	return ev.lumpEvents(ev.resolve(c))
}

func (ev *Evaluator) lumpEvents(pay payout) []domain.LumpSumEvent {
	p := ev.Profile
	sevAge := p.SeveranceAge()
	events := []domain.LumpSumEvent{
		singleItemEvent(domain.KindSeverance, LabelSeverance, sevAge, p.SeverancePay,
			domain.Interval{Start: sevAge - p.YearsOfService(), End: sevAge}),
	}
	if c := pay.candidate.DC; c.Mode == domain.ModeLump {
		events = append(events, singleItemEvent(domain.KindDC, LabelDC, c.Age, pay.dcLump,
			domain.Interval{Start: p.DCStartAge, End: p.DCEndAge}))
	}
	if c := pay.candidate.IDeCo; c.Mode == domain.ModeLump {
		events = append(events, singleItemEvent(domain.KindIDeCo, LabelIDeCo, c.Age, pay.idecoLump,
			domain.Interval{Start: p.IDeCoStartAge, End: p.IDeCoEndAge}))
	}
	return MergeEventsByAge(events)
}

// MergeEventsByAge combines events received at the same age and sorts the
// result by age. A merged event keeps the kind of the first event at that age.
func MergeEventsByAge(events []domain.LumpSumEvent) []domain.LumpSumEvent {
	index := make(map[int]int, len(events))
	merged := make([]domain.LumpSumEvent, 0, len(events))
	for _, e := range events {
		if i, ok := index[e.Age]; ok {
			m := &merged[i]
			m.Amount = m.Amount.Add(e.Amount)
			m.Items = append(m.Items, e.Items...)
			m.Periods = append(m.Periods, e.Periods...)
			continue
		}
		index[e.Age] = len(merged)
		e.Items = append([]domain.LumpSumItem(nil), e.Items...)
		e.Periods = append([]domain.Interval(nil), e.Periods...)
		merged = append(merged, e)
	}
	sort.SliceStable(merged, func(i, j int) bool { return merged[i].Age < merged[j].Age })
	return merged
}

func (ev *Evaluator) yearlyPension(pay payout, age int) (public, dc, ideco decimal.Decimal) {
	c := pay.candidate
	if age >= publicPensionStartAge {
		public = ev.PublicPensionAnnual
	}
	if c.DC.Mode == domain.ModePension && age >= c.DC.Age {
		dc = pay.dcAnnual
	}
	if c.IDeCo.Mode == domain.ModePension && age >= c.IDeCo.Age {
		ideco = pay.idecoAnnual
	}
	return public, dc, ideco
}

func (ev *Evaluator) yearlyTotal(pay payout, age int) decimal.Decimal {
	public, dc, ideco := ev.yearlyPension(pay, age)
	return public.Add(dc).Add(ideco)
}

func (ev *Evaluator) pensionTotals(pay payout) (gross, tax decimal.Decimal) {
	for age := pensionWindowStart; age < ev.Profile.EndAge; age++ {
		yearly := ev.yearlyTotal(pay, age)
		if !yearly.IsPositive() {
			continue
		}
		gross = gross.Add(yearly)
		tax = tax.Add(ev.Taxes.PensionTax(yearly, age))
	}
	return gross, tax
}

// bandYears clamps [start, end) to the profile's end age.
func (ev *Evaluator) bandYears(start, end int) (int, int) {
	s := max(0, start)
	e := max(s, min(end, ev.Profile.EndAge))
	return s, e
}

func (ev *Evaluator) band(pay payout, start, end int) (grossMonthly, netMonthly decimal.Decimal) {
	s, e := ev.bandYears(start, end)
	if e-s <= 0 {
		return decimal.Zero, decimal.Zero
	}
	var gross, tax decimal.Decimal
	for age := s; age < e; age++ {
		yearly := ev.yearlyTotal(pay, age)
		gross = gross.Add(yearly)
		if yearly.IsPositive() {
			tax = tax.Add(ev.Taxes.PensionTax(yearly, age))
		}
	}
	months := decimal.NewFromInt(int64((e - s) * 12))
	return gross.Div(months), gross.Sub(tax).Div(months)
}

// Evaluate computes the taxed outcome of one candidate. The returned strategy
// carries no family identity.
func (ev *Evaluator) Evaluate(c domain.Candidate) domain.Strategy {
	pay := ev.resolve(c)

	var s domain.Strategy
	var lumpGross, lumpTax decimal.Decimal
	for _, a := range ev.Taxes.AssessLumpSums(ev.lumpEvents(pay)) {
		for _, item := range a.Event.Items {
			itemTax := decimal.Zero
			if a.Event.Amount.IsPositive() {
				itemTax = a.Tax.Mul(item.Amount).Div(a.Event.Amount)
			}
			s.Lumpsum = append(s.Lumpsum, domain.LumpSumBreakdown{
				Item:   item.Label,
				Age:    item.Age,
				Amount: item.Amount,
				Tax:    itemTax,
				Net:    item.Amount.Sub(itemTax),
			})
		}
		lumpGross = lumpGross.Add(a.Event.Amount)
		lumpTax = lumpTax.Add(a.Tax)
	}

	pensionGross, pensionTax := ev.pensionTotals(pay)
	s.TotalGross = lumpGross.Add(pensionGross)
	s.TotalTax = lumpTax.Add(pensionTax)
	s.TotalNet = s.TotalGross.Sub(s.TotalTax)

	s.Monthly60to65Gross, s.Monthly60to65Net = ev.band(pay, pensionWindowStart, publicPensionStartAge)
	s.Monthly65PlusGross, s.Monthly65PlusNet = ev.band(pay, publicPensionStartAge, ev.Profile.EndAge)
	return s
}

// PensionComponents breaks the gross monthly pension over [start, end) down by
// source.
func (ev *Evaluator) PensionComponents(c domain.Candidate, start, end int) domain.PensionComponents {
	s, e := ev.bandYears(start, end)
	years := e - s
	if years <= 0 {
		return domain.PensionComponents{}
	}
	pay := ev.resolve(c)
	var public, dc, ideco decimal.Decimal
	for age := s; age < e; age++ {
		p, d, i := ev.yearlyPension(pay, age)
		public, dc, ideco = public.Add(p), dc.Add(d), ideco.Add(i)
	}
	months := decimal.NewFromInt(int64(years * 12))
	return domain.PensionComponents{
		Years:         years,
		PublicMonthly: public.Div(months),
		DCMonthly:     dc.Div(months),
		IDeCoMonthly:  ideco.Div(months),
		TotalMonthly:  public.Add(dc).Add(ideco).Div(months),
	}
}

// PensionComponentMonthly is PensionComponents for a one-off evaluation.
func PensionComponentMonthly(profile domain.Profile, publicPensionAnnual decimal.Decimal, c domain.Candidate, start, end int) domain.PensionComponents {
	return NewEvaluator(profile, publicPensionAnnual, nil).PensionComponents(c, start, end)
}
