package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Arnarsson/solar-calculator-app-sub000/internal/calculation"
	"github.com/Arnarsson/solar-calculator-app-sub000/internal/domain"
)

func referenceResult(t *testing.T) *domain.CalculationResult {
	t.Helper()
	cfg := &domain.Configuration{
		Costs: domain.SetupCostInput{
			PanelsCost:       decimal.NewFromInt(47400),
			InverterCost:     decimal.NewFromInt(20625),
			InstallationCost: decimal.NewFromInt(49335),
			MountingCost:     decimal.NewFromInt(11680),
		},
		Production: domain.ProductionSpec{
			AnnualProductionKwh: decimal.NewFromInt(8800),
			SelfConsumptionRate: decimal.NewFromFloat(0.70),
		},
		Prices: domain.PriceSpec{
			ElectricityRateDkk: decimal.NewFromFloat(2.50),
		},
	}
	result, err := calculation.NewCalculationEngine().RunCalculation(cfg)
	require.NoError(t, err)
	return result
}

func TestModelSceneCycle(t *testing.T) {
	m := NewModel("scenario.yaml")
	assert.Equal(t, SceneSummary, m.currentScene)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	assert.Equal(t, SceneYears, m.currentScene)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	assert.Equal(t, SceneTaxScenarios, m.currentScene)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	assert.Equal(t, SceneSummary, m.currentScene, "Tab wraps back to the summary")
}

func TestModelCalculationComplete(t *testing.T) {
	result := referenceResult(t)

	m := NewModel("scenario.yaml")
	next, _ := m.Update(CalculationCompleteMsg{Result: result})
	m = next.(Model)

	assert.False(t, m.loading)
	require.NotNil(t, m.result)
	assert.Len(t, m.yearTable.Rows(), 25)

	view := m.View()
	assert.Contains(t, view, "Solar Investment Calculator")
	assert.Contains(t, view, "161300.00 kr")
}

func TestModelErrorState(t *testing.T) {
	m := NewModel("scenario.yaml")
	next, _ := m.Update(ErrorMsg{Err: assert.AnError})
	m = next.(Model)

	assert.False(t, m.loading)
	view := m.View()
	assert.Contains(t, view, "Error:")
}

func TestYearRows(t *testing.T) {
	result := referenceResult(t)

	rows := yearRows(result.Projection)
	require.Len(t, rows, 25)
	assert.Equal(t, "1", rows[0][0])
	assert.Equal(t, "8536.00", rows[0][1])
}

func TestModelQuit(t *testing.T) {
	m := NewModel("scenario.yaml")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
