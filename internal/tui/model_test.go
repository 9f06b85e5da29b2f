package tui

import (
	"errors"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// loadedModel drives the model through profile loading and calculation.
func loadedModel(t *testing.T) Model {
	t.Helper()
	m := NewModel(filepath.Join("testdata", "profile.yaml"), nil)

	msg := m.Init()()
	loaded, ok := msg.(ProfileLoadedMsg)
	require.True(t, ok, "expected ProfileLoadedMsg, got %T", msg)
	assert.Equal(t, 50, loaded.Profile.CurrentAge)

	next, cmd := m.Update(loaded)
	m = next.(Model)
	assert.True(t, m.loading)
	require.NotNil(t, cmd)

	done, ok := cmd().(CalculationCompleteMsg)
	require.True(t, ok)
	require.NoError(t, done.Err)

	next, _ = m.Update(done)
	return next.(Model)
}

func TestModel_LoadAndCalculate(t *testing.T) {
	m := loadedModel(t)

	require.NotNil(t, m.Report())
	assert.False(t, m.loading)
	assert.NoError(t, m.Err())
	assert.Len(t, m.Report().Result.Strategies, 4)
	assert.NotEmpty(t, m.Report().Cashflow)

	view := m.View()
	assert.Contains(t, view, "Retirement Payout Optimizer")
	assert.Contains(t, view, "Recommended: "+m.Report().Recommended().Code)
	assert.Contains(t, view, "Total net")
}

func TestModel_TabNavigation(t *testing.T) {
	m := loadedModel(t)
	assert.Equal(t, SceneResults, m.CurrentScene())

	steps := []struct {
		key      tea.KeyMsg
		expected Scene
	}{
		{tea.KeyMsg{Type: tea.KeyTab}, SceneCompare},
		{tea.KeyMsg{Type: tea.KeyRight}, SceneCashflow},
		{tea.KeyMsg{Type: tea.KeyTab}, SceneResults},
		{tea.KeyMsg{Type: tea.KeyShiftTab}, SceneCashflow},
		{tea.KeyMsg{Type: tea.KeyLeft}, SceneCompare},
	}
	for _, s := range steps {
		next, _ := m.Update(s.key)
		m = next.(Model)
		assert.Equal(t, s.expected, m.CurrentScene(), "after %s", s.key)
	}

	assert.Contains(t, m.View(), "Notes")
}

func TestModel_CashflowToggle(t *testing.T) {
	m := loadedModel(t)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(Model)
	require.Equal(t, SceneCashflow, m.CurrentScene())
	assert.Contains(t, m.View(), "Lump sum")

	next, _ = m.Update(runes("v"))
	m = next.(Model)
	assert.True(t, m.cashflowModel.ShowingChart())
	assert.Contains(t, m.View(), "Net income by age")
}

func TestModel_Quit(t *testing.T) {
	m := NewModel("unused.yaml", nil)
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_Errors(t *testing.T) {
	m := NewModel(filepath.Join("testdata", "missing.yaml"), nil)
	msg := m.Init()()
	errMsg, ok := msg.(ErrorMsg)
	require.True(t, ok)

	next, _ := m.Update(errMsg)
	m = next.(Model)
	assert.Error(t, m.Err())
	assert.Contains(t, m.View(), "Error:")

	// any key dismisses the error
	next, _ = m.Update(runes("x"))
	m = next.(Model)
	assert.NoError(t, m.Err())

	next, _ = m.Update(CalculationCompleteMsg{Err: errors.New("boom")})
	m = next.(Model)
	assert.EqualError(t, m.Err(), "boom")
	assert.Nil(t, m.Report())
}

func TestModel_ReloadAndHelp(t *testing.T) {
	m := loadedModel(t)

	next, cmd := m.Update(runes("r"))
	m = next.(Model)
	assert.True(t, m.loading)
	require.NotNil(t, cmd)
	_, ok := cmd().(ProfileLoadedMsg)
	assert.True(t, ok)

	assert.False(t, m.help.ShowAll)
	next, _ = m.Update(runes("?"))
	m = next.(Model)
	assert.True(t, m.help.ShowAll)
	assert.Contains(t, m.View(), "reload profile")
}

func TestModel_WindowSize(t *testing.T) {
	m := NewModel("unused.yaml", nil)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
	assert.Equal(t, 120, m.help.Width)
}

func TestScene_String(t *testing.T) {
	assert.Equal(t, "Recommendation", SceneResults.String())
	assert.Equal(t, "Comparison", SceneCompare.String())
	assert.Equal(t, "Cashflow", SceneCashflow.String())
	assert.Equal(t, "Unknown", Scene(99).String())
}
