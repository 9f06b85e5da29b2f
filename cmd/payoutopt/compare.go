package main

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/payoutopt/internal/compare"
	"github.com/rgehrsitz/payoutopt/internal/domain"
	"github.com/rgehrsitz/payoutopt/internal/transform"
	"github.com/spf13/cobra"
)

func compareCmd(a *app) *cobra.Command {
	var (
		base          string
		codes         []string
		with          string
		listTemplates bool
		format        string
	)
	cmd := &cobra.Command{
		Use:   "compare [profile-file]",
		Short: "Compare the strategy families or what-if variations of a profile",
		Long: `Compare strategy families A-D against a base family, or compare the
recommendation for the profile with the recommendation after applying
what-if templates (--with).

Examples:
  payoutopt compare profile.yaml
  payoutopt compare profile.yaml --base A --codes C,D
  payoutopt compare profile.yaml --with postpone_1yr,severance_plus5
  payoutopt compare --list-templates
  payoutopt compare profile.yaml --format csv
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if listTemplates {
				_, err := fmt.Fprint(cmd.OutOrStdout(), transform.GetTemplateHelp(transform.CreateBuiltInTemplates(&domain.Profile{})))
				return err
			}
			if len(args) != 1 {
				return fmt.Errorf("a profile file is required")
			}

			profile, err := loadProfile(args[0])
			if err != nil {
				return err
			}

			engine := compare.NewCompareEngine(a.engine(false))
			opts := compare.CompareOptions{
				BaseCode:    base,
				Codes:       codes,
				ProfilePath: args[0],
			}
			var set *compare.ComparisonSet
			if templates := transform.ParseTemplateList(with); len(templates) > 0 {
				set, err = engine.CompareTemplates(cmd.Context(), profile, templates, opts)
			} else {
				set, err = engine.Compare(cmd.Context(), profile, opts)
			}
			if err != nil {
				return fmt.Errorf("comparison failed: %w", err)
			}

			var out string
			switch strings.ToLower(format) {
			case "csv":
				out, err = (&compare.CSVFormatter{}).Format(set)
			case "json":
				out, err = (&compare.JSONFormatter{Indent: "  "}).Format(set)
			case "table", "console", "":
				out = (&compare.TableFormatter{}).Format(set)
			case "compact":
				out = (&compare.TableFormatter{}).FormatCompact(set) + "\n"
			default:
				return fmt.Errorf("unknown output format: %s (valid: table, compact, csv, json)", format)
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().StringVar(&base, "base", "", "Base strategy code; defaults to the recommendation")
	cmd.Flags().StringSliceVar(&codes, "codes", nil, "Strategy codes to compare (default all others)")
	cmd.Flags().StringVar(&with, "with", "", "Comma-separated what-if templates to compare against the profile")
	cmd.Flags().BoolVar(&listTemplates, "list-templates", false, "List the available what-if templates")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format (table, compact, csv, json)")
	return cmd
}
