package strategy

import (
	"testing"

	"github.com/rgehrsitz/payoutopt/internal/domain"
	"github.com/stretchr/testify/assert"
)

func coded(code, net, eff string) domain.Evaluation {
	s := outcome(net, eff)
	s.Code = code
	return domain.Evaluation{Strategy: s}
}

func TestPickBest(t *testing.T) {
	tests := []struct {
		name     string
		evals    []domain.Evaluation
		expected string
	}{
		{
			"lower efficiency wins outside the band",
			[]domain.Evaluation{coded("A", "100", "0.10"), coded("B", "90", "0.04")},
			"B",
		},
		{
			"higher net wins inside the band",
			[]domain.Evaluation{coded("A", "100", "0.10"), coded("B", "110", "0.103")},
			"B",
		},
		{
			"first is kept on equal net",
			[]domain.Evaluation{coded("A", "100", "0.10"), coded("B", "100", "0.10")},
			"A",
		},
		{
			"running best is compared, not the seed",
			[]domain.Evaluation{
				coded("A", "100", "0.10"),
				coded("B", "101", "0.104"),
				coded("C", "150", "0.20"),
				coded("D", "102", "0.108"),
			},
			"D",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PickBest(tt.evals).Strategy.Code)
		})
	}
}

func TestPickBest_ZeroGrossCountsAsFullyTaxed(t *testing.T) {
	zero := domain.Evaluation{Strategy: domain.Strategy{Code: "A", Description: FallbackDescription}}
	paid := coded("B", "10", "0.5")

	assert.Equal(t, "B", PickBest([]domain.Evaluation{zero, paid}).Strategy.Code)
}

func TestPickBest_Empty(t *testing.T) {
	assert.Equal(t, domain.Evaluation{}, PickBest(nil))
}
