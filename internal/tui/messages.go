package tui

import (
	"github.com/Arnarsson/solar-calculator-app-sub000/internal/domain"
)

// Scene identifies the active screen.
type Scene int

const (
	SceneSummary Scene = iota
	SceneYears
	SceneTaxScenarios
)

// Message types for the Bubble Tea update cycle

// ConfigLoadedMsg signals the scenario file has been parsed.
type ConfigLoadedMsg struct {
	Config *domain.Configuration
}

// CalculationCompleteMsg carries the full calculation result.
type CalculationCompleteMsg struct {
	Result *domain.CalculationResult
	Err    error
}

// ErrorMsg displays an error to the user.
type ErrorMsg struct {
	Err error
}
