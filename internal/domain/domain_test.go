package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestProfile_SeveranceAge(t *testing.T) {
	assert.Equal(t, 60, Profile{RetirementAge: 60}.SeveranceAge(), "defaults to retirement age")
	assert.Equal(t, 62, Profile{RetirementAge: 60, SeveranceReceiveAge: 62}.SeveranceAge())
}

func TestProfile_YearsOfService(t *testing.T) {
	tests := []struct {
		name     string
		profile  Profile
		expected int
	}{
		{"explicit", Profile{JoinAge: 22, RetirementAge: 60, ServiceYears: 30}, 30},
		{"derived from join age", Profile{JoinAge: 22, RetirementAge: 60}, 38},
		{"no join age", Profile{RetirementAge: 60}, 0},
		{"join after retirement", Profile{JoinAge: 65, RetirementAge: 60}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.profile.YearsOfService())
		})
	}
}

func TestEventKind_IsPensionType(t *testing.T) {
	assert.False(t, KindSeverance.IsPensionType())
	assert.True(t, KindDC.IsPensionType())
	assert.True(t, KindIDeCo.IsPensionType())
}

func TestInterval(t *testing.T) {
	assert.Equal(t, 38, Interval{Start: 22, End: 60}.Length())
	assert.Equal(t, 0, Interval{Start: 60, End: 22}.Length())
	assert.Equal(t, "[22,60)", Interval{Start: 22, End: 60}.String())
}

func TestCandidate(t *testing.T) {
	c := Candidate{DC: Lump(70), IDeCo: Pension(60)}

	assert.Equal(t, []int{70, 60}, c.ChosenAges())
	assert.Equal(t, "dc=lump@70 ideco=pension@60", c.String())
	assert.Empty(t, Candidate{}.ChosenAges())
}

func TestStrategy_Efficiency(t *testing.T) {
	s := Strategy{TotalGross: decimal.NewFromInt(200), TotalTax: decimal.NewFromInt(30)}
	assert.True(t, s.Efficiency().Equal(decimal.RequireFromString("0.15")))

	assert.True(t, Strategy{}.Efficiency().Equal(decimal.NewFromInt(1)), "nothing received counts as fully taxed")
}

func TestResult_StrategyByCode(t *testing.T) {
	c := Candidate{DC: Lump(60), IDeCo: Lump(60)}
	r := &Result{Strategies: []Evaluation{
		{Candidate: &c, Strategy: Strategy{Code: "A"}},
		{Strategy: Strategy{Code: "B"}},
	}}

	a, ok := r.StrategyByCode("A")
	assert.True(t, ok)
	assert.True(t, a.Feasible())

	b, ok := r.StrategyByCode("B")
	assert.True(t, ok)
	assert.False(t, b.Feasible())

	_, ok = r.StrategyByCode("Z")
	assert.False(t, ok)
}

func TestProfile_Clone(t *testing.T) {
	p := &Profile{RetirementAge: 60, SeverancePay: decimal.NewFromInt(2000)}
	c := p.Clone()
	c.RetirementAge = 65

	assert.Equal(t, 60, p.RetirementAge)
	assert.True(t, c.SeverancePay.Equal(p.SeverancePay))
}
