package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all incoming messages (required by tea.Model).
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.height > 10 {
			m.yearTable.SetHeight(m.height - 10)
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextScene):
			m.currentScene = nextScene(m.currentScene)
			return m, nil
		case key.Matches(msg, m.keys.PrevScene):
			m.currentScene = prevScene(m.currentScene)
			return m, nil
		}

	case ConfigLoadedMsg:
		m.config = msg.Config
		return m, calculateCmd(m.calcEngine, m.config)

	case CalculationCompleteMsg:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.result = msg.Result
		m.yearTable.SetRows(yearRows(msg.Result.Projection))
		return m, nil

	case ErrorMsg:
		m.loading = false
		m.err = msg.Err
		return m, nil
	}

	// The year browser owns navigation keys within its scene.
	if m.currentScene == SceneYears {
		var cmd tea.Cmd
		m.yearTable, cmd = m.yearTable.Update(msg)
		return m, cmd
	}
	return m, nil
}

func nextScene(s Scene) Scene {
	switch s {
	case SceneSummary:
		return SceneYears
	case SceneYears:
		return SceneTaxScenarios
	default:
		return SceneSummary
	}
}

func prevScene(s Scene) Scene {
	switch s {
	case SceneSummary:
		return SceneTaxScenarios
	case SceneTaxScenarios:
		return SceneYears
	default:
		return SceneSummary
	}
}
