package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Arnarsson/solar-calculator-app-sub000/internal/calculation"
	"github.com/Arnarsson/solar-calculator-app-sub000/internal/tui"
)

func main() {
	configPath := ""
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	} else {
		fmt.Println("Usage: solarcalc-tui <scenario-file>")
		os.Exit(1)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		fmt.Printf("Error: Scenario file not found: %s\n", configPath)
		os.Exit(1)
	}

	calculation.ConfigureDecimal()

	model := tui.NewModel(configPath)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
