package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Arnarsson/solar-calculator-app-sub000/internal/domain"
)

// ReportGenerator renders a full calculation result in various formats.
type ReportGenerator struct{}

// NewReportGenerator creates a new report generator.
func NewReportGenerator() *ReportGenerator {
	return &ReportGenerator{}
}

// Generate renders the result in the requested format.
func (rg *ReportGenerator) Generate(result *domain.CalculationResult, format string) ([]byte, error) {
	switch format {
	case "console":
		return rg.generateConsole(result), nil
	case "json":
		return rg.generateJSON(result)
	case "csv":
		return rg.generateCSV(result)
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// FormatCurrency formats a decimal as a DKK amount for console display.
func FormatCurrency(d decimal.Decimal) string {
	return d.StringFixed(2) + " kr"
}

func (rg *ReportGenerator) generateConsole(result *domain.CalculationResult) []byte {
	var b strings.Builder

	b.WriteString("=====================================================\n")
	b.WriteString("SOLAR INVESTMENT ANALYSIS\n")
	b.WriteString("=====================================================\n\n")

	setup := result.SetupCost
	b.WriteString("SETUP COST\n")
	b.WriteString("----------\n")
	fmt.Fprintf(&b, "Panels:        %s\n", FormatCurrency(setup.PanelsCost))
	fmt.Fprintf(&b, "Inverter:      %s\n", FormatCurrency(setup.InverterCost))
	fmt.Fprintf(&b, "Installation:  %s\n", FormatCurrency(setup.InstallationCost))
	fmt.Fprintf(&b, "Mounting:      %s\n", FormatCurrency(setup.MountingCost))
	if !setup.BatteryCost.IsZero() {
		fmt.Fprintf(&b, "Battery:       %s\n", FormatCurrency(setup.BatteryCost))
	}
	fmt.Fprintf(&b, "Subtotal:      %s\n", FormatCurrency(setup.Subtotal))
	fmt.Fprintf(&b, "VAT (%s%%):     %s\n", setup.VATRate.Mul(decimal.NewFromInt(100)).StringFixed(0), FormatCurrency(setup.VATAmount))
	fmt.Fprintf(&b, "Total:         %s\n\n", FormatCurrency(setup.TotalWithVAT))

	payback := result.Payback
	b.WriteString("SIMPLE PAYBACK\n")
	b.WriteString("--------------\n")
	fmt.Fprintf(&b, "Self-consumption savings: %s/year\n", FormatCurrency(payback.SelfConsumptionSavings))
	fmt.Fprintf(&b, "Grid export earnings:     %s/year\n", FormatCurrency(payback.GridExportEarnings))
	fmt.Fprintf(&b, "Annual savings:           %s/year\n", FormatCurrency(payback.AnnualSavings))
	fmt.Fprintf(&b, "Payback period:           %s years (break-even in year %d)\n\n", payback.PaybackYears.StringFixed(2), payback.BreakEvenYear)

	b.WriteString("TAX SCENARIOS\n")
	b.WriteString("-------------\n")
	for _, scenario := range result.TaxScenarios {
		fmt.Fprintf(&b, "%s:\n", scenario.Scenario)
		fmt.Fprintf(&b, "  Deduction:         %s\n", FormatCurrency(scenario.TaxDeduction))
		fmt.Fprintf(&b, "  Effective cost:    %s\n", FormatCurrency(scenario.EffectiveCost))
		fmt.Fprintf(&b, "  Effective payback: %s years\n", scenario.EffectivePaybackYears.StringFixed(2))
		for _, assumption := range scenario.Assumptions {
			fmt.Fprintf(&b, "  * %s\n", assumption)
		}
	}
	b.WriteString("\n")

	co2 := result.CO2Savings
	b.WriteString("CO2 SAVINGS\n")
	b.WriteString("-----------\n")
	fmt.Fprintf(&b, "Annual:            %s kg (%s tonnes)\n", co2.AnnualCO2SavingsKg.StringFixed(0), co2.AnnualCO2SavingsTonnes.StringFixed(2))
	fmt.Fprintf(&b, "25-year lifetime:  %s tonnes\n", co2.LifetimeCO2SavingsTonnes.StringFixed(2))
	fmt.Fprintf(&b, "Equivalent to:     %s km of driving or %s trees for a year\n\n", co2.EquivalentCarKm.StringFixed(0), co2.EquivalentTreesYear.StringFixed(0))

	b.WriteString("25-YEAR PROJECTION\n")
	b.WriteString("------------------\n")
	fmt.Fprintf(&b, "%-5s %12s %14s %14s %16s\n", "Year", "kWh", "Net (nominal)", "Net (real)", "Cumulative")
	for _, year := range result.Projection.Years {
		fmt.Fprintf(&b, "%-5d %12s %14s %14s %16s\n",
			year.Year,
			year.ProductionKwh.StringFixed(0),
			year.NetSavingsNominal.StringFixed(2),
			year.NetSavingsReal.StringFixed(2),
			year.CumulativeNominal.StringFixed(2))
	}

	summary := result.Projection.Summary
	b.WriteString("\nSUMMARY\n")
	b.WriteString("-------\n")
	fmt.Fprintf(&b, "Total savings (nominal): %s\n", FormatCurrency(summary.TotalSavingsNominal))
	fmt.Fprintf(&b, "Total savings (real):    %s\n", FormatCurrency(summary.TotalSavingsReal))
	fmt.Fprintf(&b, "Total maintenance:       %s\n", FormatCurrency(summary.TotalMaintenanceCost))
	if summary.BreakEvenYearNominal > 0 {
		fmt.Fprintf(&b, "Break-even (nominal):    year %d\n", summary.BreakEvenYearNominal)
	} else {
		b.WriteString("Break-even (nominal):    not reached within 25 years\n")
	}
	if summary.BreakEvenYearReal > 0 {
		fmt.Fprintf(&b, "Break-even (real):       year %d\n", summary.BreakEvenYearReal)
	} else {
		b.WriteString("Break-even (real):       not reached within 25 years\n")
	}
	fmt.Fprintf(&b, "25-year ROI:             %s%%\n", summary.ROI25Year.StringFixed(2))

	return []byte(b.String())
}

func (rg *ReportGenerator) generateJSON(result *domain.CalculationResult) ([]byte, error) {
	return json.MarshalIndent(NewCalculationDTO(result), "", "  ")
}

func (rg *ReportGenerator) generateCSV(result *domain.CalculationResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{"Year", "ProductionKwh", "ElectricityRate", "GridFeedInRate", "SavingsNominal", "SavingsReal", "MaintenanceCost", "NetSavingsNominal", "NetSavingsReal", "CumulativeNominal", "CumulativeReal"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, year := range result.Projection.Years {
		row := []string{
			strconv.Itoa(year.Year),
			year.ProductionKwh.StringFixed(2),
			year.ElectricityRate.StringFixed(4),
			year.GridFeedInRate.StringFixed(4),
			year.SavingsNominal.StringFixed(2),
			year.SavingsReal.StringFixed(2),
			year.MaintenanceCost.StringFixed(2),
			year.NetSavingsNominal.StringFixed(2),
			year.NetSavingsReal.StringFixed(2),
			year.CumulativeNominal.StringFixed(2),
			year.CumulativeReal.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
