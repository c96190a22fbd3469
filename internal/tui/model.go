package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Arnarsson/solar-calculator-app-sub000/internal/calculation"
	"github.com/Arnarsson/solar-calculator-app-sub000/internal/config"
	"github.com/Arnarsson/solar-calculator-app-sub000/internal/domain"
	"github.com/Arnarsson/solar-calculator-app-sub000/internal/output"
)

// KeyMap defines the key bindings for the application.
type KeyMap struct {
	NextScene key.Binding
	PrevScene key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the standard key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextScene: key.NewBinding(
			key.WithKeys("tab", "right"),
			key.WithHelp("tab", "next view"),
		),
		PrevScene: key.NewBinding(
			key.WithKeys("shift+tab", "left"),
			key.WithHelp("shift+tab", "previous view"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Model holds the entire application state.
type Model struct {
	currentScene Scene
	keys         KeyMap

	width  int
	height int

	configPath string
	config     *domain.Configuration

	calcEngine *calculation.CalculationEngine
	result     *domain.CalculationResult

	yearTable table.Model

	err     error
	loading bool
}

// NewModel creates the application model for the given scenario file.
func NewModel(configPath string) Model {
	return Model{
		currentScene: SceneSummary,
		keys:         DefaultKeyMap(),
		configPath:   configPath,
		calcEngine:   calculation.NewCalculationEngine(),
		yearTable:    newYearTable(),
		width:        80,
		height:       24,
		loading:      true,
	}
}

// Init loads the scenario file (required by tea.Model).
func (m Model) Init() tea.Cmd {
	return loadConfigCmd(m.configPath)
}

// loadConfigCmd returns a command that parses the scenario file.
func loadConfigCmd(path string) tea.Cmd {
	return func() tea.Msg {
		parser := config.NewInputParser()
		cfg, err := parser.LoadFromFile(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return ConfigLoadedMsg{Config: cfg}
	}
}

// calculateCmd returns a command that runs the full calculation.
func calculateCmd(engine *calculation.CalculationEngine, cfg *domain.Configuration) tea.Cmd {
	return func() tea.Msg {
		result, err := engine.RunCalculation(cfg)
		return CalculationCompleteMsg{Result: result, Err: err}
	}
}

func newYearTable() table.Model {
	columns := []table.Column{
		{Title: "Year", Width: 4},
		{Title: "Production kWh", Width: 14},
		{Title: "Rate kr/kWh", Width: 11},
		{Title: "Savings", Width: 11},
		{Title: "Maintenance", Width: 11},
		{Title: "Net", Width: 11},
		{Title: "Cumulative", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorBorder).
		BorderBottom(true).
		Foreground(ColorPrimary).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(ColorForeground).
		Background(ColorSecondary).
		Bold(false)
	t.SetStyles(styles)

	return t
}

// yearRows converts a projection into table rows.
func yearRows(projection *domain.ProjectionResult) []table.Row {
	rows := make([]table.Row, 0, len(projection.Years))
	for _, y := range projection.Years {
		rows = append(rows, table.Row{
			strconv.Itoa(y.Year),
			output.Currency(y.ProductionKwh),
			output.Rate(y.ElectricityRate),
			output.Currency(y.SavingsNominal),
			output.Currency(y.MaintenanceCost),
			output.Currency(y.NetSavingsNominal),
			output.Currency(y.CumulativeNominal),
		})
	}
	return rows
}
