package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Arnarsson/solar-calculator-app-sub000/internal/output"
)

// View renders the current scene (required by tea.Model).
func (m Model) View() string {
	if m.err != nil {
		return AppStyle.Render(ErrorStyle.Render("Error: "+m.err.Error()) + "\n\n" + m.statusBar())
	}
	if m.loading {
		return AppStyle.Render(SubtitleStyle.Render("Calculating...") + "\n\n" + m.statusBar())
	}

	var body string
	switch m.currentScene {
	case SceneYears:
		body = m.viewYears()
	case SceneTaxScenarios:
		body = m.viewTaxScenarios()
	default:
		body = m.viewSummary()
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		m.header(),
		"",
		body,
		"",
		m.statusBar(),
	)
	return AppStyle.Render(content)
}

func (m Model) header() string {
	title := TitleStyle.Render("Solar Investment Calculator")
	subtitle := SubtitleStyle.Render(m.configPath)
	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle)
}

func (m Model) viewSummary() string {
	r := m.result
	cards := []string{
		metricCard("System cost", output.FormatCurrency(r.SetupCost.TotalWithVAT), MetricValueStyle),
		metricCard("Annual savings", output.FormatCurrency(r.Payback.AnnualSavings), MetricPositiveStyle),
		metricCard("Payback", output.Currency(r.Payback.PaybackYears)+" years", MetricValueStyle),
		metricCard("Break-even", fmt.Sprintf("year %d", r.Projection.Summary.BreakEvenYearNominal), MetricValueStyle),
	}
	topRow := lipgloss.JoinHorizontal(lipgloss.Top, cards...)

	cards = []string{
		metricCard("25-year ROI", output.Currency(r.Projection.Summary.ROI25Year)+" %", MetricPositiveStyle),
		metricCard("25-year savings", output.FormatCurrency(r.Projection.Summary.TotalSavingsNominal), MetricPositiveStyle),
		metricCard("CO2 saved / year", output.Currency(r.CO2Savings.AnnualCO2SavingsTonnes)+" t", MetricValueStyle),
		metricCard("Trees equivalent", output.Currency(r.CO2Savings.EquivalentTreesYear), MetricValueStyle),
	}
	bottomRow := lipgloss.JoinHorizontal(lipgloss.Top, cards...)

	return lipgloss.JoinVertical(lipgloss.Left, topRow, bottomRow)
}

func (m Model) viewYears() string {
	return m.yearTable.View()
}

func (m Model) viewTaxScenarios() string {
	var b strings.Builder
	for i, scenario := range m.result.TaxScenarios {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(TitleStyle.Render(string(scenario.Scenario)) + "\n")
		b.WriteString(metricLine("Tax deduction", output.FormatCurrency(scenario.TaxDeduction)))
		b.WriteString(metricLine("Effective cost", output.FormatCurrency(scenario.EffectiveCost)))
		b.WriteString(metricLine("Effective payback", output.Currency(scenario.EffectivePaybackYears)+" years"))
		for _, assumption := range scenario.Assumptions {
			b.WriteString(SubtitleStyle.Render("  - "+assumption) + "\n")
		}
	}
	return b.String()
}

func (m Model) statusBar() string {
	keys := []string{
		HelpKeyStyle.Render("tab") + StatusBarStyle.Render(" switch view"),
		HelpKeyStyle.Render("↑/↓") + StatusBarStyle.Render(" scroll years"),
		HelpKeyStyle.Render("q") + StatusBarStyle.Render(" quit"),
	}
	return strings.Join(keys, StatusBarStyle.Render("  •  "))
}

func metricCard(label, value string, valueStyle lipgloss.Style) string {
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		MetricLabelStyle.Render(label),
		valueStyle.Render(value),
	)
	return CardStyle.Render(content)
}

func metricLine(label, value string) string {
	return MetricLabelStyle.Render("  "+label+": ") + MetricValueStyle.Render(value) + "\n"
}
