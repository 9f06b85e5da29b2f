package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current state of the application
func (m Model) View() string {
	var content string
	switch {
	case m.err != nil:
		content = ErrorStyle.Render(fmt.Sprintf("Error: %s\n\nPress any key to continue, q to quit.", m.err))
	case m.loading:
		content = BorderStyle.Render("⠋ " + m.loadingMessage)
	default:
		content = m.renderScene()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderTitleBar(),
		m.renderTabs(),
		content,
		m.help.View(m.keys),
	)
}

func (m Model) renderScene() string {
	switch m.currentScene {
	case SceneResults:
		return m.resultsModel.View()
	case SceneCompare:
		return m.compareModel.View()
	case SceneCashflow:
		return m.cashflowModel.View()
	default:
		return "Unknown scene"
	}
}

// renderTitleBar renders the application title and the profile in use
func (m Model) renderTitleBar() string {
	title := TitleStyle.Render("payoutopt - Retirement Payout Optimizer")
	sub := m.profilePath
	if m.profile != nil {
		sub = fmt.Sprintf("%s  (age %d, retiring at %d, horizon %d)",
			m.profilePath, m.profile.CurrentAge, m.profile.RetirementAge, m.profile.EndAge)
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, SubtitleStyle.Render(sub))
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, int(sceneCount))
	for s := Scene(0); s < sceneCount; s++ {
		style := TabStyle
		if s == m.currentScene {
			style = ActiveTabStyle
		}
		tabs = append(tabs, style.Render(s.String()))
	}
	return strings.Join(tabs, "│") + "\n"
}
