// Package tui is an interactive terminal view of a payout optimization.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/payoutopt/internal/calculation"
	"github.com/rgehrsitz/payoutopt/internal/config"
	"github.com/rgehrsitz/payoutopt/internal/domain"
	"github.com/rgehrsitz/payoutopt/internal/output"
	"github.com/rgehrsitz/payoutopt/internal/tui/scenes"
)

// Model represents the entire application state
type Model struct {
	currentScene Scene

	width  int
	height int

	profilePath string
	profile     *domain.Profile
	engine      *calculation.CalculationEngine
	report      *output.Report

	resultsModel  *scenes.ResultsModel
	compareModel  *scenes.CompareModel
	cashflowModel *scenes.CashflowModel

	help help.Model
	keys keyMap

	err            error
	loading        bool
	loadingMessage string
}

// NewModel creates a model that loads and optimizes the profile at path.
func NewModel(profilePath string, engine *calculation.CalculationEngine) Model {
	if engine == nil {
		engine = calculation.NewCalculationEngine()
	}
	return Model{
		currentScene:   SceneResults,
		profilePath:    profilePath,
		engine:         engine,
		resultsModel:   scenes.NewResultsModel(),
		compareModel:   scenes.NewCompareModel(),
		cashflowModel:  scenes.NewCashflowModel(),
		help:           help.New(),
		keys:           keys,
		width:          80,
		height:         24,
		loading:        true,
		loadingMessage: "Loading profile...",
	}
}

// Init loads the profile (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	return loadProfileCmd(m.profilePath)
}

// Report returns the current report, nil until a calculation completes.
func (m Model) Report() *output.Report {
	return m.report
}

// CurrentScene returns the active tab.
func (m Model) CurrentScene() Scene {
	return m.currentScene
}

// Err returns the last error shown to the user.
func (m Model) Err() error {
	return m.err
}

// loadProfileCmd reads and validates the profile file
func loadProfileCmd(path string) tea.Cmd {
	return func() tea.Msg {
		profile, err := config.NewInputParser().LoadFromFile(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return ProfileLoadedMsg{Profile: profile}
	}
}

// calculateCmd runs the optimizer off the update loop
func calculateCmd(engine *calculation.CalculationEngine, profile *domain.Profile) tea.Cmd {
	return func() tea.Msg {
		result, err := engine.Calculate(context.Background(), profile)
		return CalculationCompleteMsg{Result: result, Err: err}
	}
}
