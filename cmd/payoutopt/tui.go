package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rgehrsitz/payoutopt/internal/calculation"
	"github.com/rgehrsitz/payoutopt/internal/tui"
	"github.com/spf13/cobra"
)

func tuiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tui [profile-file]",
		Short: "Explore the optimization interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Log lines would corrupt the alternate screen.
			engine := calculation.NewCalculationEngineWithOptions(calculation.EngineOptions{
				Parallel: a.settings.Engine.Parallel,
			})
			p := tea.NewProgram(tui.NewModel(args[0], engine), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			_, err := p.Run()
			return err
		},
	}
}
