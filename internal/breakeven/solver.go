package breakeven

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/payoutopt/internal/calculation"
	"github.com/rgehrsitz/payoutopt/internal/config"
	"github.com/rgehrsitz/payoutopt/internal/domain"
	"github.com/rgehrsitz/payoutopt/internal/transform"
	"github.com/shopspring/decimal"
)

var (
	defaultMinRate = decimal.Zero
	defaultMaxRate = decimal.RequireFromString("0.10")
	rateResolution = decimal.RequireFromString("0.00001")
)

// Solver searches a single profile parameter for the value that best meets a
// goal, re-running the full payout optimization at every probe.
type Solver struct {
	CalcEngine *calculation.CalculationEngine
	Options    SolverOptions
}

// NewSolver creates a new break-even solver
func NewSolver(calcEngine *calculation.CalculationEngine, options SolverOptions) *Solver {
	if calcEngine == nil {
		calcEngine = calculation.NewCalculationEngine()
	}
	return &Solver{
		CalcEngine: calcEngine,
		Options:    options,
	}
}

// NewDefaultSolver creates a solver with default options
func NewDefaultSolver(calcEngine *calculation.CalculationEngine) *Solver {
	return NewSolver(calcEngine, DefaultSolverOptions())
}

// Optimize performs optimization based on the request
func (s *Solver) Optimize(ctx context.Context, req OptimizationRequest) (*OptimizationResult, error) {
	if req.Profile == nil {
		return nil, &BreakEvenError{Operation: "optimize", Message: "profile is required"}
	}
	if err := req.Constraints.Validate(); err != nil {
		return nil, err
	}
	if req.Goal == GoalMatchNet && req.Constraints.TargetNet == nil {
		return nil, &BreakEvenError{Operation: "optimize", Message: "match_net requires a target net"}
	}

	if req.MaxIterations <= 0 {
		req.MaxIterations = s.Options.MaxIterations
	}
	if req.Tolerance.IsZero() {
		req.Tolerance = s.Options.Tolerance
	}

	base, err := s.calculate(ctx, req.Profile)
	if err != nil {
		return nil, &BreakEvenError{Operation: "optimize", Message: "failed to calculate base profile", Cause: err}
	}

	var result *OptimizationResult
	switch req.Target {
	case OptimizeSeveranceAge:
		result, err = s.optimizeSeveranceAge(ctx, req)
	case OptimizeRetirementAge:
		result, err = s.optimizeRetirementAge(ctx, req)
	case OptimizeReturnRate:
		result, err = s.optimizeReturnRate(ctx, req)
	default:
		return nil, &BreakEvenError{
			Operation: "optimize",
			Message:   fmt.Sprintf("unsupported optimization target: %s", req.Target),
		}
	}
	if err != nil {
		return nil, err
	}

	result.BaseNet = base.Best.Strategy.TotalNet
	result.BaseTax = base.Best.Strategy.TotalTax
	result.NetDiffFromBase = result.TotalNet.Sub(result.BaseNet)
	result.TaxDiffFromBase = result.TotalTax.Sub(result.BaseTax)
	return result, nil
}

// calculate validates a derived profile and runs the engine on it.
func (s *Solver) calculate(ctx context.Context, p *domain.Profile) (*domain.Result, error) {
	if err := config.ValidateProfile(p); err != nil {
		return nil, err
	}
	return s.CalcEngine.Calculate(ctx, p)
}

// probe applies transforms to the request profile and calculates the outcome.
func (s *Solver) probe(ctx context.Context, req OptimizationRequest, transforms ...transform.ProfileTransform) (*domain.Result, error) {
	p, err := transform.ApplyTransforms(req.Profile, transforms)
	if err != nil {
		return nil, err
	}
	return s.calculate(ctx, p)
}

// ageBounds resolves the searched age range. lo is the earliest age the
// target allows, hi the latest.
func (s *Solver) ageBounds(req OptimizationRequest, lo, hi int) (int, int) {
	minAge := lo
	if req.Constraints.MinAge != nil {
		minAge = max(*req.Constraints.MinAge, lo)
	}
	maxAge := min(minAge+s.Options.AgeSpan, hi)
	if req.Constraints.MaxAge != nil {
		maxAge = min(*req.Constraints.MaxAge, hi)
	}
	return minAge, maxAge
}

// optimizeSeveranceAge finds the best age to receive the severance payment
func (s *Solver) optimizeSeveranceAge(ctx context.Context, req OptimizationRequest) (*OptimizationResult, error) {
	p := req.Profile
	minAge, maxAge := s.ageBounds(req, p.RetirementAge, p.EndAge-1)
	return s.gridAges(ctx, req, "optimize_severance_age", minAge, maxAge, func(age int) transform.ProfileTransform {
		return &transform.SetSeveranceAge{Age: age}
	})
}

// optimizeRetirementAge finds the best age to stop working
func (s *Solver) optimizeRetirementAge(ctx context.Context, req OptimizationRequest) (*OptimizationResult, error) {
	p := req.Profile
	minAge, maxAge := s.ageBounds(req, p.RetirementAge, p.EndAge-1)
	return s.gridAges(ctx, req, "optimize_retirement_age", minAge, maxAge, func(age int) transform.ProfileTransform {
		return &transform.PostponeRetirement{Years: age - p.RetirementAge}
	})
}

// gridAges evaluates every age in [minAge, maxAge]. Ages whose derived profile
// fails validation or calculation are skipped.
func (s *Solver) gridAges(
	ctx context.Context,
	req OptimizationRequest,
	operation string,
	minAge, maxAge int,
	at func(age int) transform.ProfileTransform,
) (*OptimizationResult, error) {
	var best *OptimizationResult
	iterations := 0

	for age := minAge; age <= maxAge && iterations < req.MaxIterations; age++ {
		iterations++

		if err := ctx.Err(); err != nil {
			return nil, &BreakEvenError{Operation: operation, Message: "optimization cancelled", Cause: err}
		}

		res, err := s.probe(ctx, req, at(age))
		if err != nil {
			continue
		}

		a := age
		candidate := s.evaluateResult(req, res, &a, nil, iterations)
		if best == nil || s.isBetter(candidate, best, req.Goal) {
			best = candidate
		}
	}

	if best == nil {
		return nil, &BreakEvenError{
			Operation: operation,
			Message:   fmt.Sprintf("no valid ages found between %d and %d", minAge, maxAge),
		}
	}

	best.Iterations = iterations
	best.Success = true
	best.ConvergenceInfo = fmt.Sprintf("Evaluated %d ages", iterations)
	if req.Goal == GoalMatchNet {
		s.finishMatch(req, best)
	}
	return best, nil
}

// optimizeReturnRate finds the return rate meeting the goal. match_net
// bisects on the rate; the other goals step through a grid.
func (s *Solver) optimizeReturnRate(ctx context.Context, req OptimizationRequest) (*OptimizationResult, error) {
	minRate, maxRate := defaultMinRate, defaultMaxRate
	if req.Constraints.MinRate != nil {
		minRate = *req.Constraints.MinRate
	}
	if req.Constraints.MaxRate != nil {
		maxRate = *req.Constraints.MaxRate
	}

	if req.Goal == GoalMatchNet {
		return s.bisectReturnRate(ctx, req, minRate, maxRate)
	}

	step := s.Options.RateStep
	if !step.IsPositive() {
		step = DefaultSolverOptions().RateStep
	}

	var best *OptimizationResult
	iterations := 0
	for rate := minRate; rate.LessThanOrEqual(maxRate) && iterations < req.MaxIterations; rate = rate.Add(step) {
		iterations++

		if err := ctx.Err(); err != nil {
			return nil, &BreakEvenError{Operation: "optimize_return_rate", Message: "optimization cancelled", Cause: err}
		}

		res, err := s.probeRate(ctx, req, rate)
		if err != nil {
			continue
		}
		candidate := s.evaluateResult(req, res, nil, &rate, iterations)
		if best == nil || s.isBetter(candidate, best, req.Goal) {
			best = candidate
		}
	}

	if best == nil {
		return nil, &BreakEvenError{Operation: "optimize_return_rate", Message: "no valid return rates found"}
	}
	best.Iterations = iterations
	best.Success = true
	best.ConvergenceInfo = fmt.Sprintf("Evaluated %d return rates", iterations)
	return best, nil
}

func (s *Solver) probeRate(ctx context.Context, req OptimizationRequest, rate decimal.Decimal) (*domain.Result, error) {
	account, _ := transform.ParseAccount(string(req.Constraints.Account))
	return s.probe(ctx, req, &transform.AdjustReturnRate{Account: account, Rate: rate})
}

// bisectReturnRate assumes the lifetime net grows with the return rate. When
// the target lies outside the range the nearer bound is reported.
func (s *Solver) bisectReturnRate(ctx context.Context, req OptimizationRequest, lo, hi decimal.Decimal) (*OptimizationResult, error) {
	target := *req.Constraints.TargetNet
	two := decimal.NewFromInt(2)
	iterations := 0

	at := func(rate decimal.Decimal) (*OptimizationResult, error) {
		iterations++
		if err := ctx.Err(); err != nil {
			return nil, &BreakEvenError{Operation: "optimize_return_rate", Message: "optimization cancelled", Cause: err}
		}
		res, err := s.probeRate(ctx, req, rate)
		if err != nil {
			return nil, &BreakEvenError{
				Operation: "optimize_return_rate",
				Message:   fmt.Sprintf("failed to calculate at rate %s", rate),
				Cause:     err,
			}
		}
		return s.evaluateResult(req, res, nil, &rate, iterations), nil
	}
	done := func(r *OptimizationResult, info string) (*OptimizationResult, error) {
		r.Iterations = iterations
		r.ConvergenceInfo = info
		s.finishMatch(req, r)
		return r, nil
	}

	low, err := at(lo)
	if err != nil {
		return nil, err
	}
	if low.TotalNet.GreaterThanOrEqual(target) {
		return done(low, "Target reached at the lowest rate")
	}
	high, err := at(hi)
	if err != nil {
		return nil, err
	}
	if high.TotalNet.LessThanOrEqual(target) {
		return done(high, "Target not reached at the highest rate")
	}

	best := low
	if s.isBetter(high, low, GoalMatchNet) {
		best = high
	}
	for iterations < req.MaxIterations {
		mid := lo.Add(hi).Div(two)
		r, err := at(mid)
		if err != nil {
			return nil, err
		}
		if s.isBetter(r, best, GoalMatchNet) {
			best = r
		}

		diff := r.TotalNet.Sub(target)
		if diff.Abs().LessThanOrEqual(req.Tolerance) {
			return done(r, fmt.Sprintf("Converged to target net within %s万円", req.Tolerance.String()))
		}
		if diff.IsNegative() {
			lo = mid
		} else {
			hi = mid
		}
		if hi.Sub(lo).LessThan(rateResolution) {
			return done(best, "Bisection converged")
		}
	}
	return done(best, fmt.Sprintf("Max iterations (%d) reached", req.MaxIterations))
}

// finishMatch marks a match_net result successful when it lies within tolerance.
func (s *Solver) finishMatch(req OptimizationRequest, r *OptimizationResult) {
	diff := r.TotalNet.Sub(*req.Constraints.TargetNet).Abs()
	r.Success = diff.LessThanOrEqual(req.Tolerance)
	if !r.Success {
		r.ConvergenceInfo += fmt.Sprintf(" (closest net is %s万円 from target)", diff.StringFixed(1))
	}
}

// evaluateResult creates an optimization result from a calculation result
func (s *Solver) evaluateResult(
	req OptimizationRequest,
	res *domain.Result,
	age *int,
	rate *decimal.Decimal,
	iterations int,
) *OptimizationResult {
	best := res.Best.Strategy
	result := &OptimizationResult{
		Request:    req,
		Target:     req.Target,
		Goal:       req.Goal,
		Iterations: iterations,
		Result:     res,
		BestCode:   best.Code,
		BestName:   best.Name,
		TotalNet:   best.TotalNet,
		TotalTax:   best.TotalTax,
	}

	if age != nil {
		ageCopy := *age
		result.OptimalAge = &ageCopy
	}
	if rate != nil {
		rateCopy := *rate
		result.OptimalRate = &rateCopy
	}

	return result
}

// isBetter compares two results based on optimization goal. Ties keep the
// earlier probe.
func (s *Solver) isBetter(a, b *OptimizationResult, goal OptimizationGoal) bool {
	switch goal {
	case GoalMaximizeNet:
		return a.TotalNet.GreaterThan(b.TotalNet)
	case GoalMinimizeTax:
		return a.TotalTax.LessThan(b.TotalTax)
	case GoalMatchNet:
		if a.Request.Constraints.TargetNet == nil {
			return false
		}
		target := *a.Request.Constraints.TargetNet
		return a.TotalNet.Sub(target).Abs().LessThan(b.TotalNet.Sub(target).Abs())
	default:
		return false
	}
}
