package strategy

import (
	"github.com/rgehrsitz/payoutopt/internal/domain"
	"github.com/shopspring/decimal"
)

// selectionEfficiencyGap is the efficiency difference above which the more
// tax-efficient strategy wins regardless of net income.
var selectionEfficiencyGap = decimal.RequireFromString("0.005")

// PickBest chooses the overall recommendation, scanning in order from the
// first evaluation.
func PickBest(evals []domain.Evaluation) domain.Evaluation {
	if len(evals) == 0 {
		return domain.Evaluation{}
	}
	best := evals[0]
	for _, cur := range evals[1:] {
		curEff, bestEff := cur.Strategy.Efficiency(), best.Strategy.Efficiency()
		if curEff.Sub(bestEff).Abs().GreaterThan(selectionEfficiencyGap) {
			if curEff.LessThan(bestEff) {
				best = cur
			}
			continue
		}
		if cur.Strategy.TotalNet.GreaterThan(best.Strategy.TotalNet) {
			best = cur
		}
	}
	return best
}
