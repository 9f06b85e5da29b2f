package compare

import (
	"context"
	"fmt"
	"strings"

	"github.com/rgehrsitz/payoutopt/internal/calculation"
	"github.com/rgehrsitz/payoutopt/internal/config"
	"github.com/rgehrsitz/payoutopt/internal/domain"
	"github.com/rgehrsitz/payoutopt/internal/strategy"
	"github.com/rgehrsitz/payoutopt/internal/transform"
)

// BaseProfileCode labels the unmodified profile in a template comparison.
const BaseProfileCode = "base"

// CompareEngine orchestrates strategy comparison
type CompareEngine struct {
	CalcEngine        *calculation.CalculationEngine
	MetricsCalculator *MetricsCalculator
}

// NewCompareEngine creates a new comparison engine
func NewCompareEngine(calcEngine *calculation.CalculationEngine) *CompareEngine {
	return &CompareEngine{
		CalcEngine:        calcEngine,
		MetricsCalculator: NewMetricsCalculator(),
	}
}

// CompareOptions configures comparison behavior
type CompareOptions struct {
	BaseCode    string   // Strategy to compare against; empty means the recommendation
	Codes       []string // Alternatives to include; empty means all others
	ProfilePath string
}

// Compare calculates the profile and compares its strategies
func (ce *CompareEngine) Compare(ctx context.Context, profile *domain.Profile, options CompareOptions) (*ComparisonSet, error) {
	result, err := ce.CalcEngine.Calculate(ctx, profile)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate profile: %w", err)
	}
	return ce.CompareResult(result, options)
}

// CompareResult compares the strategies of an existing result
func (ce *CompareEngine) CompareResult(result *domain.Result, options CompareOptions) (*ComparisonSet, error) {
	baseCode := strings.ToUpper(strings.TrimSpace(options.BaseCode))
	if baseCode == "" {
		baseCode = result.Best.Strategy.Code
	}
	baseEval, ok := result.StrategyByCode(baseCode)
	if !ok {
		return nil, fmt.Errorf("base strategy %q: %w", options.BaseCode, strategy.ErrUnknownFamily)
	}
	baseResult := ce.MetricsCalculator.CalculateMetrics(baseEval)

	include := map[string]bool{}
	for _, c := range options.Codes {
		f, err := strategy.CreateFamily(c)
		if err != nil {
			return nil, err
		}
		include[f.Code()] = true
	}

	alternatives := []ComparisonResult{}
	for _, e := range result.Strategies {
		code := e.Strategy.Code
		if code == baseCode || (len(include) > 0 && !include[code]) {
			continue
		}
		alt := ce.MetricsCalculator.CalculateMetrics(e)
		alternatives = append(alternatives, ce.MetricsCalculator.CalculateComparison(alt, baseResult))
	}

	compSet := &ComparisonSet{
		BaseCode:           baseCode,
		BaseResult:         &baseResult,
		AlternativeResults: alternatives,
		ProfilePath:        options.ProfilePath,
	}
	compSet.Recommendations = GenerateRecommendations(compSet)
	return compSet, nil
}

// CompareTemplates compares the recommendation for the profile against the
// recommendation for each what-if template applied to it.
func (ce *CompareEngine) CompareTemplates(ctx context.Context, profile *domain.Profile, templateNames []string, options CompareOptions) (*ComparisonSet, error) {
	if profile == nil {
		return nil, fmt.Errorf("profile is required")
	}
	if len(templateNames) == 0 {
		return nil, fmt.Errorf("at least one template is required")
	}
	if ce.CalcEngine == nil {
		ce.CalcEngine = calculation.NewCalculationEngine()
	}

	baseCalc, err := ce.CalcEngine.Calculate(ctx, profile)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate base profile: %w", err)
	}
	baseResult := ce.profileMetrics(baseCalc, BaseProfileCode, "Current profile")

	registry := transform.CreateBuiltInTemplates(profile)
	alternatives := make([]ComparisonResult, 0, len(templateNames))
	for _, name := range templateNames {
		tmpl, ok := registry.Get(name)
		if !ok {
			return nil, fmt.Errorf("template %q not found (available: %s)", name, strings.Join(registry.List(), ", "))
		}

		modified, err := transform.ApplyTemplate(profile, tmpl)
		if err != nil {
			return nil, fmt.Errorf("failed to apply template %s: %w", tmpl.Name, err)
		}
		if err := config.ValidateProfile(modified); err != nil {
			return nil, fmt.Errorf("template %s produces an invalid profile: %w", tmpl.Name, err)
		}
		res, err := ce.CalcEngine.Calculate(ctx, modified)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate template %s: %w", tmpl.Name, err)
		}

		alt := ce.profileMetrics(res, tmpl.Name, tmpl.Description)
		alternatives = append(alternatives, ce.MetricsCalculator.CalculateComparison(alt, baseResult))
	}

	compSet := &ComparisonSet{
		BaseCode:           BaseProfileCode,
		BaseResult:         &baseResult,
		AlternativeResults: alternatives,
		ProfilePath:        options.ProfilePath,
	}
	compSet.Recommendations = GenerateRecommendations(compSet)
	return compSet, nil
}

// profileMetrics summarizes a whole calculation by its recommended strategy,
// relabelled as the profile variant it came from.
func (ce *CompareEngine) profileMetrics(res *domain.Result, code, name string) ComparisonResult {
	m := ce.MetricsCalculator.CalculateMetrics(res.Best)
	best := res.Best.Strategy
	m.Description = fmt.Sprintf("%s %s: %s", best.Code, best.Name, best.Description)
	m.Code = code
	m.Name = name
	return m
}
