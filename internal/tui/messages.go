package tui

import (
	"github.com/rgehrsitz/payoutopt/internal/domain"
)

// Scene represents different screens in the TUI
type Scene int

const (
	SceneResults Scene = iota
	SceneCompare
	SceneCashflow
	sceneCount
)

// String returns a human-readable name for a scene
func (s Scene) String() string {
	switch s {
	case SceneResults:
		return "Recommendation"
	case SceneCompare:
		return "Comparison"
	case SceneCashflow:
		return "Cashflow"
	default:
		return "Unknown"
	}
}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}

// ProfileLoadedMsg signals the profile file has been read and validated
type ProfileLoadedMsg struct {
	Profile *domain.Profile
}

// CalculationCompleteMsg signals a calculation has finished
type CalculationCompleteMsg struct {
	Result *domain.Result
	Err    error
}
