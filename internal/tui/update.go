package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/payoutopt/internal/output"
)

// chromeHeight is the rows taken by the title, tabs and help line.
const chromeHeight = 6

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		content := max(0, msg.Height-chromeHeight)
		m.resultsModel.SetSize(msg.Width, content)
		m.compareModel.SetSize(msg.Width, content)
		m.cashflowModel.SetSize(msg.Width, content)
		return m, nil

	case ErrorMsg:
		m.loading = false
		m.err = msg.Err
		return m, nil

	case ProfileLoadedMsg:
		m.profile = msg.Profile
		m.err = nil
		m.loading = true
		m.loadingMessage = "Optimizing payout strategies..."
		return m, calculateCmd(m.engine, msg.Profile)

	case CalculationCompleteMsg:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		return m.applyResult(msg)
	}

	return m.updateCurrentScene(msg)
}

func (m Model) applyResult(msg CalculationCompleteMsg) (tea.Model, tea.Cmd) {
	report := output.BuildReport(msg.Result)
	if err := m.compareModel.SetResult(msg.Result); err != nil {
		m.err = err
		return m, nil
	}
	m.report = report
	m.resultsModel.SetReport(report)
	m.cashflowModel.SetCashflow(report.Cashflow)
	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case m.err != nil:
		// Any other key dismisses the error
		m.err = nil
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Next):
		m.currentScene = (m.currentScene + 1) % sceneCount
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		m.currentScene = (m.currentScene + sceneCount - 1) % sceneCount
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		m.loading = true
		m.loadingMessage = "Loading profile..."
		return m, loadProfileCmd(m.profilePath)
	}

	return m.updateCurrentScene(msg)
}

// updateCurrentScene delegates updates to the current scene's model
func (m Model) updateCurrentScene(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.currentScene {
	case SceneResults:
		m.resultsModel, cmd = m.resultsModel.Update(msg)
	case SceneCompare:
		m.compareModel, cmd = m.compareModel.Update(msg)
	case SceneCashflow:
		m.cashflowModel, cmd = m.cashflowModel.Update(msg)
	}
	return m, cmd
}
