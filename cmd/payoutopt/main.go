package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	"github.com/rgehrsitz/payoutopt/internal/calculation"
	"github.com/rgehrsitz/payoutopt/internal/config"
	"github.com/rgehrsitz/payoutopt/internal/domain"
	"github.com/rgehrsitz/payoutopt/internal/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// app carries what every subcommand shares once the root pre-run has loaded
// settings and built the logger.
type app struct {
	settingsPath string
	debug        bool

	settings *config.Settings
	logger   *zap.Logger
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	s, err := config.LoadSettings(a.settingsPath)
	if err != nil {
		return err
	}
	if a.debug {
		s.Log.Level = "debug"
	}
	logger, err := newLogger(s.Log)
	if err != nil {
		return err
	}
	a.settings, a.logger = s, logger
	return nil
}

func (a *app) teardown(cmd *cobra.Command, args []string) {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// newLogger builds a stderr logger at the configured level.
func newLogger(ls config.LogSettings) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(strings.ToLower(ls.Level))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", ls.Level, err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = level
	cfg.Encoding = ls.Encoding
	if ls.Encoding == "console" {
		cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	cfg.DisableStacktrace = true
	return cfg.Build()
}

// engine returns a calculation engine logging through zap.
func (a *app) engine(parallel bool) *calculation.CalculationEngine {
	e := calculation.NewCalculationEngineWithOptions(calculation.EngineOptions{
		Parallel: parallel || a.settings.Engine.Parallel,
	})
	e.SetLogger(a.logger.Sugar())
	return e
}

func loadProfile(path string) (*domain.Profile, error) {
	return config.NewInputParser().LoadFromFile(path)
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "payoutopt",
		Short: "Retirement payout tax optimizer",
		Long: `Plans how to receive severance pay, corporate DC and iDeCo so that
total after-tax income over retirement is as large as possible.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: a.teardown,
	}
	root.PersistentFlags().StringVar(&a.settingsPath, "config", "", "Settings file (YAML); PAYOUTOPT_* environment variables override it")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging")

	root.AddCommand(
		calculateCmd(a),
		validateCmd(a),
		exportCmd(a),
		importCmd(a),
		compareCmd(a),
		breakEvenCmd(a),
		serveCmd(a),
		tuiCmd(a),
		versionCmd(),
	)
	return root
}

func calculateCmd(a *app) *cobra.Command {
	var (
		format   string
		parallel bool
		save     bool
	)
	cmd := &cobra.Command{
		Use:   "calculate [profile-file]",
		Short: "Optimize payout strategies for a profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = a.settings.Output.Format
			}
			f := output.GetFormatterByName(format)
			if f == nil {
				return fmt.Errorf("unknown output format %q (valid: %s; aliases: %s)", format,
					strings.Join(output.AvailableFormatterNames(), ", "),
					strings.Join(output.AvailableFormatAliases(), ", "))
			}

			profile, err := loadProfile(args[0])
			if err != nil {
				return err
			}
			result, err := a.engine(parallel).Calculate(cmd.Context(), profile)
			if err != nil {
				return err
			}
			report := output.BuildReport(result)

			if save {
				name, err := output.WriteFormatted(f, report, fileExtension(f.Name()))
				if err != nil {
					return err
				}
				a.logger.Info("report written", zap.String("file", name))
				fmt.Fprintln(cmd.OutOrStdout(), name)
				return nil
			}

			data, err := f.Format(report)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format (console, json, csv, cashflow-csv, html); defaults to output.format")
	cmd.Flags().BoolVar(&parallel, "parallel", false, "Optimize strategy families concurrently")
	cmd.Flags().BoolVar(&save, "save", false, "Write the report to a timestamped file instead of stdout")
	return cmd
}

func fileExtension(format string) string {
	switch {
	case format == "console":
		return "txt"
	case strings.HasSuffix(format, "csv"):
		return "csv"
	default:
		return format
	}
}

func validateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [profile-file]",
		Short: "Validate a profile file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadProfile(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Profile %s is valid\n", args[0])
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "payoutopt %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.Main.Path + " " + bi.GoVersion
	}
	return ""
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
