package calculation

import (
	"context"
	"time"

	"github.com/rgehrsitz/payoutopt/internal/domain"
	"github.com/rgehrsitz/payoutopt/internal/strategy"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// EngineOptions tunes how a calculation is executed.
type EngineOptions struct {
	// Parallel optimizes the strategy families concurrently. Results are
	// identical to a sequential run.
	Parallel bool
}

// CalculationEngine orchestrates a full payout optimization
type CalculationEngine struct {
	Taxes         *TaxCalculator
	PublicPension *PublicPensionCalculator
	Options       EngineOptions
	Logger        Logger
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return NewCalculationEngineWithOptions(EngineOptions{})
}

// NewCalculationEngineWithOptions creates an engine with explicit options
func NewCalculationEngineWithOptions(opts EngineOptions) *CalculationEngine {
	return &CalculationEngine{
		Taxes:         NewTaxCalculator(),
		PublicPension: NewPublicPensionCalculator(),
		Options:       opts,
		Logger:        NopLogger{},
	}
}

// SetLogger sets the engine logger; nil restores the no-op logger.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// PublicPensionAnnual returns the yearly public pension for a profile.
func (ce *CalculationEngine) PublicPensionAnnual(p domain.Profile) decimal.Decimal {
	return ce.PublicPension.Annual(p.AvgSalary, p.YearsOfService(), p.PensionExemption, p.RetirementAge)
}

// Calculate optimizes every strategy family for the profile and picks the
// overall recommendation. The profile is expected to have passed validation.
func (ce *CalculationEngine) Calculate(ctx context.Context, profile *domain.Profile) (*domain.Result, error) {
	if profile == nil {
		return nil, &CalculationError{Operation: "calculate", Message: "profile is required"}
	}
	if err := ctx.Err(); err != nil {
		return nil, &CalculationError{Operation: "calculate", Message: "calculation cancelled", Cause: err}
	}

	started := time.Now()
	p := *profile
	public := ce.PublicPensionAnnual(p)
	ce.Logger.Debugf("public pension %s/yr over %d years of service", public.StringFixed(2), p.YearsOfService())

	ev := NewEvaluator(p, public, ce.Taxes)
	families := strategy.Families()
	evals := make([]domain.Evaluation, len(families))

	var err error
	if ce.Options.Parallel {
		err = ce.optimizeParallel(ctx, families, p, ev, evals)
	} else {
		err = ce.optimizeSequential(ctx, families, p, ev, evals)
	}
	if err != nil {
		return nil, &CalculationError{Operation: "optimize", Message: "calculation cancelled", Cause: err}
	}

	best := strategy.PickBest(evals)
	ce.Logger.Infof("recommended %s (net %s, tax %s) in %s",
		best.Strategy.Code, best.Strategy.TotalNet.StringFixed(1), best.Strategy.TotalTax.StringFixed(1), time.Since(started))

	return &domain.Result{
		Input:               p,
		PublicPensionAnnual: public,
		Strategies:          evals,
		Best:                best,
	}, nil
}

func (ce *CalculationEngine) optimizeSequential(ctx context.Context, families []strategy.Family, p domain.Profile, ev *Evaluator, out []domain.Evaluation) error {
	for i, f := range families {
		if err := ctx.Err(); err != nil {
			return err
		}
		out[i] = ce.optimize(f, p, ev)
	}
	return nil
}

// optimizeParallel writes each family into its own slot of out.
func (ce *CalculationEngine) optimizeParallel(ctx context.Context, families []strategy.Family, p domain.Profile, ev *Evaluator, out []domain.Evaluation) error {
	g, gctx := errgroup.WithContext(ctx)
	for i, f := range families {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = ce.optimize(f, p, ev)
			return nil
		})
	}
	return g.Wait()
}

func (ce *CalculationEngine) optimize(f strategy.Family, p domain.Profile, ev *Evaluator) domain.Evaluation {
	res := strategy.Optimize(f, p, ev.Evaluate)
	if !res.Feasible() {
		ce.Logger.Warnf("strategy %s: no candidate could be evaluated", f.Code())
		return res
	}
	ce.Logger.Debugf("strategy %s: %s net=%s eff=%s",
		f.Code(), res.Candidate, res.Strategy.TotalNet.StringFixed(2), res.Strategy.Efficiency().StringFixed(4))
	return res
}
