package strategy

import (
	"testing"

	"github.com/rgehrsitz/payoutopt/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedFamily offers a fixed candidate list.
type fixedFamily struct {
	candidates []domain.Candidate
}

func (fixedFamily) Code() string { return "T" }
func (fixedFamily) Name() string { return "Test family" }
func (fixedFamily) Describe(c domain.Candidate, _ domain.Profile) string {
	return "picked " + c.String()
}
func (f fixedFamily) Candidates(SearchSpace) []domain.Candidate { return f.candidates }

// outcome builds a strategy with the given net and efficiency.
func outcome(net, eff string) domain.Strategy {
	n, e := d(net), d(eff)
	// gross*(1-eff) = net
	gross := n.Div(decimal.NewFromInt(1).Sub(e))
	return domain.Strategy{TotalGross: gross, TotalTax: gross.Sub(n), TotalNet: n}
}

func evaluatorFor(results map[domain.Candidate]domain.Strategy) EvaluateFunc {
	return func(c domain.Candidate) domain.Strategy { return results[c] }
}

var (
	early = domain.Candidate{DC: domain.Lump(60), IDeCo: domain.Lump(60)}
	late  = domain.Candidate{DC: domain.Lump(75), IDeCo: domain.Lump(75)}
	mixed = domain.Candidate{DC: domain.Lump(60), IDeCo: domain.Lump(75)}
)

func TestOptimize_NetFirstForLateSeverance(t *testing.T) {
	f := fixedFamily{candidates: []domain.Candidate{early, late}}
	results := map[domain.Candidate]domain.Strategy{
		early: outcome("1000", "0.050"),
		late:  outcome("999.5", "0.049"),
	}

	got := Optimize(f, profileWith(60, 90), evaluatorFor(results))
	require.True(t, got.Feasible())
	assert.Equal(t, early, *got.Candidate)
	assert.Equal(t, "T", got.Strategy.Code)
	assert.Equal(t, "Test family", got.Strategy.Name)
	assert.Equal(t, "picked "+early.String(), got.Strategy.Description)
}

func TestOptimize_EfficiencyFirstForEarlySeverance(t *testing.T) {
	f := fixedFamily{candidates: []domain.Candidate{early, late}}
	results := map[domain.Candidate]domain.Strategy{
		early: outcome("1000", "0.050"),
		late:  outcome("999.5", "0.049"),
	}

	got := Optimize(f, profileWith(55, 90), evaluatorFor(results))
	assert.Equal(t, late, *got.Candidate)
}

func TestOptimize_GuardRejectsLargeNetLoss(t *testing.T) {
	f := fixedFamily{candidates: []domain.Candidate{early, late}}
	results := map[domain.Candidate]domain.Strategy{
		early: outcome("1000", "0.10"),
		// more efficient, but 5% less net
		late: outcome("950", "0.099"),
	}

	got := Optimize(f, profileWith(55, 90), evaluatorFor(results))
	assert.Equal(t, early, *got.Candidate)
}

func TestOptimize_TieBreakPrefersYoungerAges(t *testing.T) {
	f := fixedFamily{candidates: []domain.Candidate{late, mixed, early}}
	results := map[domain.Candidate]domain.Strategy{
		late:  outcome("1000", "0.10"),
		mixed: outcome("1000", "0.10"),
		early: outcome("1000", "0.10"),
	}

	got := Optimize(f, profileWith(60, 90), evaluatorFor(results))
	assert.Equal(t, early, *got.Candidate)

	// same max age: smaller sum wins
	f = fixedFamily{candidates: []domain.Candidate{late, mixed}}
	got = Optimize(f, profileWith(60, 90), evaluatorFor(results))
	assert.Equal(t, mixed, *got.Candidate)
}

func TestOptimize_KeepsFirstOnFullTie(t *testing.T) {
	a := domain.Candidate{DC: domain.Lump(60), IDeCo: domain.Lump(70)}
	b := domain.Candidate{DC: domain.Lump(70), IDeCo: domain.Lump(60)}
	f := fixedFamily{candidates: []domain.Candidate{a, b}}
	results := map[domain.Candidate]domain.Strategy{a: outcome("500", "0.2"), b: outcome("500", "0.2")}

	got := Optimize(f, profileWith(60, 90), evaluatorFor(results))
	assert.Equal(t, a, *got.Candidate)
}

func TestOptimize_Fallback(t *testing.T) {
	got := Optimize(fixedFamily{}, profileWith(60, 90), func(domain.Candidate) domain.Strategy {
		t.Fatal("nothing should be evaluated")
		return domain.Strategy{}
	})

	assert.False(t, got.Feasible())
	assert.Nil(t, got.Candidate)
	assert.Equal(t, FallbackDescription, got.Strategy.Description)
	assert.True(t, got.Strategy.TotalGross.IsZero())
	assert.True(t, got.Strategy.TotalNet.IsZero())
	assert.NotNil(t, got.Strategy.Lumpsum)
}

func TestOptimize_GuardProperty(t *testing.T) {
	nets := []string{"1000", "999.5", "1000.5", "990"}
	effs := []string{"0.0995", "0.099", "0.1005", "0.098"}

	var cands []domain.Candidate
	results := map[domain.Candidate]domain.Strategy{}
	maxNet := decimal.Zero
	for i := range nets {
		c := domain.Candidate{DC: domain.Lump(60 + i), IDeCo: domain.Pension(60)}
		cands = append(cands, c)
		results[c] = outcome(nets[i], effs[i])
		maxNet = decimal.Max(maxNet, d(nets[i]))
	}

	floor := maxNet.Mul(d("0.999"))
	for _, sevAge := range []int{50, 58, 60, 65} {
		got := Optimize(fixedFamily{candidates: cands}, profileWith(sevAge, 90), evaluatorFor(results))
		assert.True(t, got.Strategy.TotalNet.GreaterThanOrEqual(floor),
			"severance %d: net %s below %s", sevAge, got.Strategy.TotalNet, floor)
	}
}
