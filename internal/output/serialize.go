// Package output converts decimal-typed calculation results into their
// boundary representations. Decimal values cross the wire as fixed-precision
// strings (currency and energy at 2 places, rates at 4) so clients can
// redisplay them verbatim without binary floating point loss; series meant
// only for charting are converted to ordinary floats, an acceptable lossy
// conversion for display but never for computation.
package output

import (
	"github.com/shopspring/decimal"

	"github.com/Arnarsson/solar-calculator-app-sub000/internal/domain"
)

const (
	currencyPlaces = 2
	ratePlaces     = 4
)

// Currency renders a monetary or energy amount for the wire.
func Currency(d decimal.Decimal) string {
	return d.StringFixed(currencyPlaces)
}

// Rate renders a per-unit rate or fraction for the wire.
func Rate(d decimal.Decimal) string {
	return d.StringFixed(ratePlaces)
}

// SetupCostDTO is the wire form of a SetupCostResult.
type SetupCostDTO struct {
	PanelsCost       string `json:"panelsCost"`
	InverterCost     string `json:"inverterCost"`
	InstallationCost string `json:"installationCost"`
	MountingCost     string `json:"mountingCost"`
	BatteryCost      string `json:"batteryCost"`
	Subtotal         string `json:"subtotal"`
	VATRate          string `json:"vatRate"`
	VATAmount        string `json:"vatAmount"`
	TotalWithVAT     string `json:"totalWithVat"`
}

// NewSetupCostDTO serializes a setup cost result.
func NewSetupCostDTO(r *domain.SetupCostResult) SetupCostDTO {
	return SetupCostDTO{
		PanelsCost:       Currency(r.PanelsCost),
		InverterCost:     Currency(r.InverterCost),
		InstallationCost: Currency(r.InstallationCost),
		MountingCost:     Currency(r.MountingCost),
		BatteryCost:      Currency(r.BatteryCost),
		Subtotal:         Currency(r.Subtotal),
		VATRate:          Rate(r.VATRate),
		VATAmount:        Currency(r.VATAmount),
		TotalWithVAT:     Currency(r.TotalWithVAT),
	}
}

// PaybackDTO is the wire form of a PaybackResult.
type PaybackDTO struct {
	SelfConsumptionSavings string `json:"selfConsumptionSavings"`
	GridExportEarnings     string `json:"gridExportEarnings"`
	AnnualSavings          string `json:"annualSavings"`
	PaybackYears           string `json:"paybackYears"`
	BreakEvenYear          int    `json:"breakEvenYear"`
}

// NewPaybackDTO serializes a payback result.
func NewPaybackDTO(r *domain.PaybackResult) PaybackDTO {
	return PaybackDTO{
		SelfConsumptionSavings: Currency(r.SelfConsumptionSavings),
		GridExportEarnings:     Currency(r.GridExportEarnings),
		AnnualSavings:          Currency(r.AnnualSavings),
		PaybackYears:           Currency(r.PaybackYears),
		BreakEvenYear:          r.BreakEvenYear,
	}
}

// TaxScenarioDTO is the wire form of a TaxScenarioResult.
type TaxScenarioDTO struct {
	Scenario              string   `json:"scenario"`
	EligibleAmount        string   `json:"eligibleAmount"`
	DeductionRate         string   `json:"deductionRate"`
	TaxDeduction          string   `json:"taxDeduction"`
	MaxDeduction          string   `json:"maxDeduction"`
	EffectiveCost         string   `json:"effectiveCost"`
	EffectivePaybackYears string   `json:"effectivePaybackYears"`
	Assumptions           []string `json:"assumptions"`
}

// NewTaxScenarioDTOs serializes an ordered slice of tax scenario results.
func NewTaxScenarioDTOs(results []domain.TaxScenarioResult) []TaxScenarioDTO {
	dtos := make([]TaxScenarioDTO, 0, len(results))
	for _, r := range results {
		dtos = append(dtos, TaxScenarioDTO{
			Scenario:              string(r.Scenario),
			EligibleAmount:        Currency(r.EligibleAmount),
			DeductionRate:         Rate(r.DeductionRate),
			TaxDeduction:          Currency(r.TaxDeduction),
			MaxDeduction:          Currency(r.MaxDeduction),
			EffectiveCost:         Currency(r.EffectiveCost),
			EffectivePaybackYears: Currency(r.EffectivePaybackYears),
			Assumptions:           r.Assumptions,
		})
	}
	return dtos
}

// CO2SavingsDTO is the wire form of a CO2SavingsResult.
type CO2SavingsDTO struct {
	AnnualCO2SavingsKg       string `json:"annualCo2SavingsKg"`
	AnnualCO2SavingsTonnes   string `json:"annualCo2SavingsTonnes"`
	LifetimeCO2SavingsTonnes string `json:"lifetimeCo2SavingsTonnes"`
	EquivalentCarKm          string `json:"equivalentCarKm"`
	EquivalentTreesYear      string `json:"equivalentTreesYear"`
}

// NewCO2SavingsDTO serializes a CO2 savings result.
func NewCO2SavingsDTO(r *domain.CO2SavingsResult) CO2SavingsDTO {
	return CO2SavingsDTO{
		AnnualCO2SavingsKg:       Currency(r.AnnualCO2SavingsKg),
		AnnualCO2SavingsTonnes:   Currency(r.AnnualCO2SavingsTonnes),
		LifetimeCO2SavingsTonnes: Currency(r.LifetimeCO2SavingsTonnes),
		EquivalentCarKm:          Currency(r.EquivalentCarKm),
		EquivalentTreesYear:      Currency(r.EquivalentTreesYear),
	}
}

// YearDTO is the wire form of a single projection year.
type YearDTO struct {
	Year                   int    `json:"year"`
	ProductionKwh          string `json:"productionKwh"`
	ElectricityRate        string `json:"electricityRate"`
	GridFeedInRate         string `json:"gridFeedInRate"`
	SelfConsumptionSavings string `json:"selfConsumptionSavings"`
	GridExportEarnings     string `json:"gridExportEarnings"`
	SavingsNominal         string `json:"savingsNominal"`
	SavingsReal            string `json:"savingsReal"`
	MaintenanceCost        string `json:"maintenanceCost"`
	NetSavingsNominal      string `json:"netSavingsNominal"`
	NetSavingsReal         string `json:"netSavingsReal"`
	CumulativeNominal      string `json:"cumulativeNominal"`
	CumulativeReal         string `json:"cumulativeReal"`
}

// ProjectionSummaryDTO is the wire form of a ProjectionSummary.
type ProjectionSummaryDTO struct {
	TotalSavingsNominal  string `json:"totalSavingsNominal"`
	TotalSavingsReal     string `json:"totalSavingsReal"`
	TotalMaintenanceCost string `json:"totalMaintenanceCost"`
	BreakEvenYearNominal int    `json:"breakEvenYearNominal"`
	BreakEvenYearReal    int    `json:"breakEvenYearReal"`
	ROI25Year            string `json:"roi25Year"`
}

// ChartSeriesDTO carries float series for client-side charting only.
type ChartSeriesDTO struct {
	Years             []int     `json:"years"`
	CumulativeNominal []float64 `json:"cumulativeNominal"`
	CumulativeReal    []float64 `json:"cumulativeReal"`
}

// ProjectionDTO is the wire form of a full ProjectionResult.
type ProjectionDTO struct {
	Years   []YearDTO            `json:"years"`
	Summary ProjectionSummaryDTO `json:"summary"`
	Chart   ChartSeriesDTO       `json:"chart"`
}

// NewProjectionDTO serializes a projection result.
func NewProjectionDTO(r *domain.ProjectionResult) ProjectionDTO {
	years := make([]YearDTO, 0, len(r.Years))
	chart := ChartSeriesDTO{
		Years:             make([]int, 0, len(r.Years)),
		CumulativeNominal: make([]float64, 0, len(r.Years)),
		CumulativeReal:    make([]float64, 0, len(r.Years)),
	}

	for _, y := range r.Years {
		years = append(years, YearDTO{
			Year:                   y.Year,
			ProductionKwh:          Currency(y.ProductionKwh),
			ElectricityRate:        Rate(y.ElectricityRate),
			GridFeedInRate:         Rate(y.GridFeedInRate),
			SelfConsumptionSavings: Currency(y.SelfConsumptionSavings),
			GridExportEarnings:     Currency(y.GridExportEarnings),
			SavingsNominal:         Currency(y.SavingsNominal),
			SavingsReal:            Currency(y.SavingsReal),
			MaintenanceCost:        Currency(y.MaintenanceCost),
			NetSavingsNominal:      Currency(y.NetSavingsNominal),
			NetSavingsReal:         Currency(y.NetSavingsReal),
			CumulativeNominal:      Currency(y.CumulativeNominal),
			CumulativeReal:         Currency(y.CumulativeReal),
		})
		chart.Years = append(chart.Years, y.Year)
		chart.CumulativeNominal = append(chart.CumulativeNominal, y.CumulativeNominal.InexactFloat64())
		chart.CumulativeReal = append(chart.CumulativeReal, y.CumulativeReal.InexactFloat64())
	}

	return ProjectionDTO{
		Years: years,
		Summary: ProjectionSummaryDTO{
			TotalSavingsNominal:  Currency(r.Summary.TotalSavingsNominal),
			TotalSavingsReal:     Currency(r.Summary.TotalSavingsReal),
			TotalMaintenanceCost: Currency(r.Summary.TotalMaintenanceCost),
			BreakEvenYearNominal: r.Summary.BreakEvenYearNominal,
			BreakEvenYearReal:    r.Summary.BreakEvenYearReal,
			ROI25Year:            Currency(r.Summary.ROI25Year),
		},
		Chart: chart,
	}
}

// CalculationDTO is the wire form of a full calculation run.
type CalculationDTO struct {
	SetupCost    SetupCostDTO     `json:"setupCost"`
	Payback      PaybackDTO       `json:"payback"`
	TaxScenarios []TaxScenarioDTO `json:"taxScenarios"`
	CO2Savings   CO2SavingsDTO    `json:"co2Savings"`
	Projection   ProjectionDTO    `json:"projection"`
}

// NewCalculationDTO serializes a full calculation result.
func NewCalculationDTO(r *domain.CalculationResult) CalculationDTO {
	return CalculationDTO{
		SetupCost:    NewSetupCostDTO(r.SetupCost),
		Payback:      NewPaybackDTO(r.Payback),
		TaxScenarios: NewTaxScenarioDTOs(r.TaxScenarios),
		CO2Savings:   NewCO2SavingsDTO(r.CO2Savings),
		Projection:   NewProjectionDTO(r.Projection),
	}
}
