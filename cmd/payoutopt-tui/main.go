package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/payoutopt/internal/tui"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: payoutopt-tui <profile-file>")
		os.Exit(1)
	}
	profilePath := os.Args[1]

	if _, err := os.Stat(profilePath); os.IsNotExist(err) {
		fmt.Printf("Error: profile not found: %s\n", profilePath)
		os.Exit(1)
	}

	p := tea.NewProgram(tui.NewModel(profilePath, nil), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
