package strategy

import (
	"github.com/rgehrsitz/payoutopt/internal/domain"
	"github.com/shopspring/decimal"
)

// FallbackDescription marks a family for which nothing could be evaluated.
const FallbackDescription = "could not be calculated"

// noAgesPriority ranks candidates without chosen ages last.
const noAgesPriority = 999

var (
	netTolerance      = decimal.RequireFromString("0.001")
	efficiencyBand    = decimal.RequireFromString("0.002")
	equalityTolerance = decimal.RequireFromString("0.00001")
)

// EvaluateFunc computes the outcome of one candidate.
type EvaluateFunc func(domain.Candidate) domain.Strategy

// scored is an evaluated candidate with its comparison keys.
type scored struct {
	eval   domain.Evaluation
	net    decimal.Decimal
	eff    decimal.Decimal
	maxAge int
	sumAge int
}

func score(c domain.Candidate, s domain.Strategy) scored {
	cand := c
	sc := scored{
		eval:   domain.Evaluation{Candidate: &cand, Strategy: s},
		net:    s.TotalNet,
		eff:    s.Efficiency(),
		maxAge: noAgesPriority,
	}
	if ages := c.ChosenAges(); len(ages) > 0 {
		sc.maxAge = ages[0]
		for _, a := range ages {
			sc.maxAge = max(sc.maxAge, a)
			sc.sumAge += a
		}
	}
	return sc
}

// searchState accumulates the best net and efficiency seen so far along with
// the current winner.
type searchState struct {
	seen    bool
	bestNet decimal.Decimal
	bestEff decimal.Decimal
	best    *scored

	// effFirst ranks efficiency ahead of net (early severance).
	effFirst bool
}

// guard reports whether a candidate is within tolerance of the best net and
// efficiency seen.
func (st searchState) guard(c scored) bool {
	netFloor := st.bestNet.Mul(decimal.NewFromInt(1).Sub(netTolerance))
	return c.net.GreaterThanOrEqual(netFloor) && c.eff.LessThanOrEqual(st.bestEff.Add(efficiencyBand))
}

// differs reports whether a and b are further apart than the equality tolerance.
func differs(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().GreaterThan(equalityTolerance)
}

// prefers reports whether c should replace the current best.
func (st searchState) prefers(c scored) bool {
	if st.best == nil {
		return true
	}
	b := *st.best
	if cOK, bOK := st.guard(c), st.guard(b); cOK != bOK {
		return cOK
	}

	byEff := func() (bool, bool) {
		if differs(c.eff, b.eff) {
			return c.eff.LessThan(b.eff), true
		}
		return false, false
	}
	byNet := func() (bool, bool) {
		if differs(c.net, b.net) {
			return c.net.GreaterThan(b.net), true
		}
		return false, false
	}
	order := []func() (bool, bool){byNet, byEff}
	if st.effFirst {
		order = []func() (bool, bool){byEff, byNet}
	}
	for _, cmp := range order {
		if win, decided := cmp(); decided {
			return win
		}
	}

	if c.maxAge != b.maxAge {
		return c.maxAge < b.maxAge
	}
	if c.sumAge != b.sumAge {
		return c.sumAge < b.sumAge
	}
	return false
}

// observe folds one evaluated candidate into the state. The best-seen
// trackers move before the comparison so the guard sees the new candidate.
func (st searchState) observe(c scored) searchState {
	if !st.seen {
		st.bestNet, st.bestEff, st.seen = c.net, c.eff, true
	} else {
		st.bestNet = decimal.Max(st.bestNet, c.net)
		st.bestEff = decimal.Min(st.bestEff, c.eff)
	}
	if st.prefers(c) {
		st.best = &c
	}
	return st
}

// Optimize evaluates every candidate of the family and returns the winner,
// labelled with the family identity. When there is nothing to evaluate the
// zeroed fallback is returned.
func Optimize(f Family, p domain.Profile, evaluate EvaluateFunc) domain.Evaluation {
	st := searchState{effFirst: p.SeveranceAge() < MinReceiptAge}
	for _, c := range f.Candidates(NewSearchSpace(p)) {
		st = st.observe(score(c, evaluate(c)))
	}
	if st.best == nil {
		return Fallback(f)
	}

	winner := st.best.eval
	winner.Strategy.Code = f.Code()
	winner.Strategy.Name = f.Name()
	winner.Strategy.Description = f.Describe(*winner.Candidate, p)
	return winner
}

// Fallback is the zeroed evaluation reported for an infeasible family.
func Fallback(f Family) domain.Evaluation {
	return domain.Evaluation{
		Strategy: domain.Strategy{
			Code:        f.Code(),
			Name:        f.Name(),
			Description: FallbackDescription,
			Lumpsum:     []domain.LumpSumBreakdown{},
		},
	}
}
