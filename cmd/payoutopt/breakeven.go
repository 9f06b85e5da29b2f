package main

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/payoutopt/internal/breakeven"
	"github.com/rgehrsitz/payoutopt/internal/transform"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func breakEvenCmd(a *app) *cobra.Command {
	var (
		target, goal     string
		minAge, maxAge   int
		minRate, maxRate string
		account          string
		targetNet        string
		applySpecs       []string
		all              bool
		format           string
	)
	cmd := &cobra.Command{
		Use:   "break-even [profile-file]",
		Short: "Search a profile parameter for the best payout outcome",
		Long: `Search the severance age, the retirement age or the DC/iDeCo return rate
for the value that maximizes lifetime net, minimizes lifetime tax, or matches
a target lifetime net. Every probe re-runs the full strategy optimization.

Transforms given with --apply are applied to the profile first
(name:key=value,...): postpone_retirement:years=N, set_severance_age:age=N,
adjust_return_rate:rate=R[,account=dc|ideco|both],
set_pension_exemption[:enabled=BOOL], continue_ideco:until=N.

Examples:
  payoutopt break-even profile.yaml --target severance_age
  payoutopt break-even profile.yaml --target retirement_age --goal minimize_tax --max-age 65
  payoutopt break-even profile.yaml --target return_rate --goal match_net --target-net 5000
  payoutopt break-even profile.yaml --all --apply set_pension_exemption
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := loadProfile(args[0])
			if err != nil {
				return err
			}

			registry := transform.NewTransformRegistry()
			var transforms []transform.ProfileTransform
			for _, spec := range applySpecs {
				t, err := registry.ParseTransformSpec(spec)
				if err != nil {
					return err
				}
				transforms = append(transforms, t)
			}
			if profile, err = transform.ApplyTransforms(profile, transforms); err != nil {
				return err
			}

			g, err := breakeven.ParseGoal(goal)
			if err != nil {
				return err
			}
			constraints := breakeven.Constraints{Account: transform.Account(account)}
			if cmd.Flags().Changed("min-age") {
				constraints.MinAge = &minAge
			}
			if cmd.Flags().Changed("max-age") {
				constraints.MaxAge = &maxAge
			}
			for _, f := range []struct {
				name string
				raw  string
				dst  **decimal.Decimal
			}{
				{"min-rate", minRate, &constraints.MinRate},
				{"max-rate", maxRate, &constraints.MaxRate},
				{"target-net", targetNet, &constraints.TargetNet},
			} {
				if f.raw == "" {
					continue
				}
				v, err := decimal.NewFromString(f.raw)
				if err != nil {
					return fmt.Errorf("invalid --%s %q: %w", f.name, f.raw, err)
				}
				*f.dst = &v
			}

			solver := breakeven.NewDefaultSolver(a.engine(false))
			table := &breakeven.TableFormatter{}
			asJSON := strings.EqualFold(format, "json")
			if !asJSON && !strings.EqualFold(format, "table") {
				return fmt.Errorf("unknown output format: %s (valid: table, json)", format)
			}
			jsonFormatter := &breakeven.JSONFormatter{Pretty: true}

			var out string
			if all {
				md, err := solver.OptimizeMultiDimensional(cmd.Context(), profile, constraints, []breakeven.OptimizationGoal{g})
				if err != nil {
					return err
				}
				a.logger.Debug("break-even search finished", zap.Int("results", len(md.Results)))
				if asJSON {
					if out, err = jsonFormatter.FormatMultiDimensional(md); err != nil {
						return err
					}
					out += "\n"
				} else {
					out = table.FormatMultiDimensional(md)
				}
			} else {
				t, err := breakeven.ParseTarget(target)
				if err != nil {
					return err
				}
				result, err := solver.Optimize(cmd.Context(), breakeven.OptimizationRequest{
					Profile:     profile,
					Target:      t,
					Goal:        g,
					Constraints: constraints,
				})
				if err != nil {
					return err
				}
				a.logger.Debug("break-even search finished",
					zap.String("target", string(t)), zap.Int("iterations", result.Iterations), zap.Bool("success", result.Success))
				if asJSON {
					if out, err = jsonFormatter.Format(result); err != nil {
						return err
					}
					out += "\n"
				} else {
					out = table.Format(result)
				}
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().StringVar(&target, "target", string(breakeven.OptimizeSeveranceAge), "Parameter to search (severance_age, retirement_age, return_rate)")
	cmd.Flags().StringVar(&goal, "goal", string(breakeven.GoalMaximizeNet), "Goal (maximize_net, minimize_tax, match_net)")
	cmd.Flags().IntVar(&minAge, "min-age", 0, "Lowest age searched")
	cmd.Flags().IntVar(&maxAge, "max-age", 0, "Highest age searched")
	cmd.Flags().StringVar(&minRate, "min-rate", "", "Lowest return rate searched (e.g. 0.01)")
	cmd.Flags().StringVar(&maxRate, "max-rate", "", "Highest return rate searched (e.g. 0.06)")
	cmd.Flags().StringVar(&account, "account", "both", "Account whose return rate is varied (dc, ideco, both)")
	cmd.Flags().StringVar(&targetNet, "target-net", "", "Lifetime net to match in 万円 (match_net goal)")
	cmd.Flags().StringArrayVar(&applySpecs, "apply", nil, "Transform applied to the profile before searching (repeatable)")
	cmd.Flags().BoolVar(&all, "all", false, "Search every target and compare the results")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format (table, json)")
	return cmd
}
