package breakeven

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/payoutopt/internal/domain"
	"github.com/rgehrsitz/payoutopt/internal/output"
)

// OptimizeMultiDimensional runs every target for every goal and compares the
// successful runs. Failing runs are dropped.
func (s *Solver) OptimizeMultiDimensional(
	ctx context.Context,
	profile *domain.Profile,
	constraints Constraints,
	goals []OptimizationGoal,
) (*MultiDimensionalResult, error) {
	if err := constraints.Validate(); err != nil {
		return nil, err
	}

	var results []OptimizationResult
	for _, target := range Targets() {
		for _, goal := range goals {
			req := OptimizationRequest{
				Profile:       profile,
				Target:        target,
				Goal:          goal,
				Constraints:   constraints,
				MaxIterations: s.Options.MaxIterations,
				Tolerance:     s.Options.Tolerance,
			}

			result, err := s.Optimize(ctx, req)
			if err != nil {
				if ctx.Err() != nil {
					return nil, &BreakEvenError{Operation: "optimize_multi_dimensional", Message: "optimization cancelled", Cause: ctx.Err()}
				}
				continue
			}
			if result.Success {
				results = append(results, *result)
			}
		}
	}

	if len(results) == 0 {
		return nil, &BreakEvenError{
			Operation: "optimize_multi_dimensional",
			Message:   "no successful optimizations found",
		}
	}

	md := &MultiDimensionalResult{Results: results}
	for i := range results {
		if md.BestByNet == nil || results[i].TotalNet.GreaterThan(md.BestByNet.TotalNet) {
			md.BestByNet = &results[i]
		}
		if md.BestByTax == nil || results[i].TotalTax.LessThan(md.BestByTax.TotalTax) {
			md.BestByTax = &results[i]
		}
	}
	md.Recommendations = generateRecommendations(md)

	return md, nil
}

// OptimizeAllTargets is a convenience method to optimize all targets with a single goal
func (s *Solver) OptimizeAllTargets(ctx context.Context, profile *domain.Profile, constraints Constraints, goal OptimizationGoal) (*MultiDimensionalResult, error) {
	return s.OptimizeMultiDimensional(ctx, profile, constraints, []OptimizationGoal{goal})
}

func generateRecommendations(md *MultiDimensionalResult) []string {
	var recs []string

	if b := md.BestByNet; b != nil {
		recs = append(recs, fmt.Sprintf("To maximize lifetime net: %s, strategy %s (%s)",
			describeParameter(b), b.BestCode, signedMan(b.NetDiffFromBase)))
	}
	if b := md.BestByTax; b != nil {
		recs = append(recs, fmt.Sprintf("To minimize tax: %s, strategy %s (tax %s)",
			describeParameter(b), b.BestCode, signedMan(b.TaxDiffFromBase)))
	}
	if md.BestByNet != nil && md.BestByTax != nil && md.BestByNet.Target == md.BestByTax.Target {
		recs = append(recs, fmt.Sprintf("Adjusting %s improves both net income and tax", md.BestByNet.Target))
	}

	return recs
}

// describeParameter names the optimized parameter value of a result.
func describeParameter(r *OptimizationResult) string {
	switch {
	case r.OptimalAge != nil && r.Target == OptimizeSeveranceAge:
		return fmt.Sprintf("receive severance at %d", *r.OptimalAge)
	case r.OptimalAge != nil:
		return fmt.Sprintf("retire at %d", *r.OptimalAge)
	case r.OptimalRate != nil:
		return fmt.Sprintf("return rate %s", output.FormatPercentage(*r.OptimalRate))
	default:
		return string(r.Target)
	}
}
