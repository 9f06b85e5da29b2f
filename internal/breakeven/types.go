package breakeven

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/payoutopt/internal/domain"
	"github.com/rgehrsitz/payoutopt/internal/transform"
	"github.com/shopspring/decimal"
)

// OptimizationTarget defines what parameter to optimize
type OptimizationTarget string

const (
	OptimizeSeveranceAge  OptimizationTarget = "severance_age"
	OptimizeRetirementAge OptimizationTarget = "retirement_age"
	OptimizeReturnRate    OptimizationTarget = "return_rate"
)

// OptimizationGoal defines what outcome to achieve
type OptimizationGoal string

const (
	GoalMaximizeNet OptimizationGoal = "maximize_net" // Highest lifetime net of the recommended strategy
	GoalMinimizeTax OptimizationGoal = "minimize_tax" // Lowest lifetime tax of the recommended strategy
	GoalMatchNet    OptimizationGoal = "match_net"    // Lifetime net closest to Constraints.TargetNet
)

// Targets lists the supported optimization targets.
func Targets() []OptimizationTarget {
	return []OptimizationTarget{OptimizeSeveranceAge, OptimizeRetirementAge, OptimizeReturnRate}
}

// ParseTarget accepts a target name in any case.
func ParseTarget(s string) (OptimizationTarget, error) {
	t := OptimizationTarget(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Targets() {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown optimization target %q (valid: severance_age, retirement_age, return_rate)", s)
}

// ParseGoal accepts a goal name in any case.
func ParseGoal(s string) (OptimizationGoal, error) {
	switch g := OptimizationGoal(strings.ToLower(strings.TrimSpace(s))); g {
	case GoalMaximizeNet, GoalMinimizeTax, GoalMatchNet:
		return g, nil
	default:
		return "", fmt.Errorf("unknown optimization goal %q (valid: maximize_net, minimize_tax, match_net)", s)
	}
}

// Constraints define bounds for optimization parameters. Unset bounds fall
// back to defaults derived from the profile.
type Constraints struct {
	// Age bounds, used by the severance and retirement age targets
	MinAge *int `json:"minAge,omitempty"`
	MaxAge *int `json:"maxAge,omitempty"`

	// Annual return rate bounds (e.g. 0.03 for 3%)
	MinRate *decimal.Decimal `json:"minRate,omitempty"`
	MaxRate *decimal.Decimal `json:"maxRate,omitempty"`

	// Account whose return rate is varied; empty means both
	Account transform.Account `json:"account,omitempty"`

	// Lifetime net target for the match_net goal, in 万円
	TargetNet *decimal.Decimal `json:"targetNet,omitempty"`
}

// OptimizationRequest defines the parameters for an optimization run
type OptimizationRequest struct {
	Profile       *domain.Profile
	Target        OptimizationTarget
	Goal          OptimizationGoal
	Constraints   Constraints
	MaxIterations int             // Maximum solver iterations
	Tolerance     decimal.Decimal // Convergence tolerance in 万円 for match_net
}

// OptimizationResult contains the results of an optimization run
type OptimizationResult struct {
	Request         OptimizationRequest `json:"-"`
	Target          OptimizationTarget  `json:"target"`
	Goal            OptimizationGoal    `json:"goal"`
	Success         bool                `json:"success"`
	Iterations      int                 `json:"iterations"`
	ConvergenceInfo string              `json:"convergenceInfo,omitempty"`

	// Optimized parameters
	OptimalAge  *int             `json:"optimalAge,omitempty"`
	OptimalRate *decimal.Decimal `json:"optimalRate,omitempty"`

	// Recommended strategy at the optimal parameters
	Result   *domain.Result  `json:"-"`
	BestCode string          `json:"bestCode"`
	BestName string          `json:"bestName"`
	TotalNet decimal.Decimal `json:"totalNet"`
	TotalTax decimal.Decimal `json:"totalTax"`

	// Comparison to the unmodified profile
	BaseNet         decimal.Decimal `json:"baseNet"`
	BaseTax         decimal.Decimal `json:"baseTax"`
	NetDiffFromBase decimal.Decimal `json:"netDiffFromBase"`
	TaxDiffFromBase decimal.Decimal `json:"taxDiffFromBase"`
}

// MultiDimensionalResult contains results when optimizing multiple parameters
type MultiDimensionalResult struct {
	Results         []OptimizationResult `json:"results"`
	BestByNet       *OptimizationResult  `json:"bestByNet,omitempty"`
	BestByTax       *OptimizationResult  `json:"bestByTax,omitempty"`
	Recommendations []string             `json:"recommendations"`
}

// SolverOptions configures the solver algorithm
type SolverOptions struct {
	Tolerance     decimal.Decimal // Convergence tolerance in 万円
	MaxIterations int             // Maximum evaluations per run
	RateStep      decimal.Decimal // Grid step for return rates
	AgeSpan       int             // Default years searched past the lower age bound
}

// DefaultSolverOptions returns default solver configuration
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{
		Tolerance:     decimal.NewFromInt(1), // 1万円
		MaxIterations: 50,
		RateStep:      decimal.RequireFromString("0.005"),
		AgeSpan:       10,
	}
}

// Validate checks if constraints are internally consistent
func (c *Constraints) Validate() error {
	if c.MinAge != nil && c.MaxAge != nil && *c.MinAge > *c.MaxAge {
		return &BreakEvenError{
			Operation: "validate_constraints",
			Message:   "min_age cannot be greater than max_age",
		}
	}

	if c.MinRate != nil && c.MinRate.IsNegative() {
		return &BreakEvenError{
			Operation: "validate_constraints",
			Message:   "min_rate cannot be negative",
		}
	}
	if c.MinRate != nil && c.MaxRate != nil && c.MinRate.GreaterThan(*c.MaxRate) {
		return &BreakEvenError{
			Operation: "validate_constraints",
			Message:   "min_rate cannot be greater than max_rate",
		}
	}

	if _, err := transform.ParseAccount(string(c.Account)); err != nil {
		return &BreakEvenError{
			Operation: "validate_constraints",
			Message:   "invalid account",
			Cause:     err,
		}
	}

	if c.TargetNet != nil && c.TargetNet.IsNegative() {
		return &BreakEvenError{
			Operation: "validate_constraints",
			Message:   "target_net cannot be negative",
		}
	}

	return nil
}

// BreakEvenError represents errors from break-even solver
type BreakEvenError struct {
	Operation string
	Message   string
	Cause     error
}

func (e *BreakEvenError) Error() string {
	if e.Cause != nil {
		return e.Operation + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.Operation + ": " + e.Message
}

func (e *BreakEvenError) Unwrap() error {
	return e.Cause
}
