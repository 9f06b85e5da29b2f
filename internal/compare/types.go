package compare

import (
	"fmt"

	"github.com/rgehrsitz/payoutopt/internal/domain"
	"github.com/shopspring/decimal"
)

// ComparisonResult is one strategy family with its metrics and its deltas
// against the base strategy.
type ComparisonResult struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Feasible    bool   `json:"feasible"`
	Candidate   string `json:"candidate,omitempty"`

	// Key Metrics
	TotalGross       decimal.Decimal `json:"totalGross"`
	TotalTax         decimal.Decimal `json:"totalTax"`
	TotalNet         decimal.Decimal `json:"totalNet"`
	Efficiency       decimal.Decimal `json:"efficiency"`
	Monthly60to65Net decimal.Decimal `json:"monthlyIncome60to65Net"`
	Monthly65PlusNet decimal.Decimal `json:"monthlyIncome65plusNet"`

	// Comparison to Base
	NetDiffFromBase        decimal.Decimal `json:"netDiffFromBase"`
	NetPctFromBase         decimal.Decimal `json:"netPctFromBase"`
	TaxDiffFromBase        decimal.Decimal `json:"taxDiffFromBase"`
	EfficiencyDiffFromBase decimal.Decimal `json:"efficiencyDiffFromBase"`
}

// ComparisonSet is the recommended strategy followed by the alternatives.
type ComparisonSet struct {
	BaseCode           string             `json:"baseCode"`
	BaseResult         *ComparisonResult  `json:"baseResult"`
	AlternativeResults []ComparisonResult `json:"alternativeResults"`
	Recommendations    []string           `json:"recommendations"`
	ProfilePath        string             `json:"profilePath,omitempty"`
}

// MetricsCalculator extracts comparison metrics from evaluations
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateMetrics extracts the metrics of one evaluated strategy
func (mc *MetricsCalculator) CalculateMetrics(e domain.Evaluation) ComparisonResult {
	s := e.Strategy
	result := ComparisonResult{
		Code:             s.Code,
		Name:             s.Name,
		Description:      s.Description,
		Feasible:         e.Feasible(),
		TotalGross:       s.TotalGross,
		TotalTax:         s.TotalTax,
		TotalNet:         s.TotalNet,
		Efficiency:       s.Efficiency(),
		Monthly60to65Net: s.Monthly60to65Net,
		Monthly65PlusNet: s.Monthly65PlusNet,
	}
	if e.Candidate != nil {
		result.Candidate = e.Candidate.String()
	}
	return result
}

// CalculateComparison fills the deltas of a strategy against the base
func (mc *MetricsCalculator) CalculateComparison(alt, base ComparisonResult) ComparisonResult {
	alt.NetDiffFromBase = alt.TotalNet.Sub(base.TotalNet)
	if !base.TotalNet.IsZero() {
		alt.NetPctFromBase = alt.NetDiffFromBase.Div(base.TotalNet).Mul(decimal.NewFromInt(100))
	}
	alt.TaxDiffFromBase = alt.TotalTax.Sub(base.TotalTax)
	alt.EfficiencyDiffFromBase = alt.Efficiency.Sub(base.Efficiency)
	return alt
}

// GenerateRecommendations points out alternatives that beat the base on a
// single metric, and families that could not be calculated.
func GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}
	if compSet.BaseResult == nil {
		return recommendations
	}
	base := compSet.BaseResult

	var bestNet, lowestTax *ComparisonResult
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if !alt.Feasible {
			recommendations = append(recommendations,
				fmt.Sprintf("%s: %s", alt.Name, alt.Description))
			continue
		}
		if alt.TotalNet.GreaterThan(base.TotalNet) && (bestNet == nil || alt.TotalNet.GreaterThan(bestNet.TotalNet)) {
			bestNet = alt
		}
		if alt.TotalTax.LessThan(base.TotalTax) && (lowestTax == nil || alt.TotalTax.LessThan(lowestTax.TotalTax)) {
			lowestTax = alt
		}
	}

	if bestNet != nil {
		recommendations = append(recommendations,
			fmt.Sprintf("Highest net: %s yields %s万円 more net income than %s, at a tax rate of %s%%",
				bestNet.Name, bestNet.NetDiffFromBase.StringFixed(1), base.Code, bestNet.Efficiency.Mul(decimal.NewFromInt(100)).StringFixed(2)))
	}
	if lowestTax != nil {
		recommendations = append(recommendations,
			fmt.Sprintf("Lowest tax: %s pays %s万円 less tax than %s",
				lowestTax.Name, lowestTax.TaxDiffFromBase.Abs().StringFixed(1), base.Code))
	}
	if bestNet == nil && lowestTax == nil {
		recommendations = append(recommendations,
			fmt.Sprintf("%s has both the highest net income and the lowest tax", base.Name))
	}
	return recommendations
}
