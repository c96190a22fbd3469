package domain

import "github.com/shopspring/decimal"

// ProjectionInput is the full assumption set for the 25-year projection.
// AnnualProductionKwh is the year-0 nameplate baseline, before any
// degradation is applied.
type ProjectionInput struct {
	SystemCost               decimal.Decimal `json:"systemCost"`
	AnnualProductionKwh      decimal.Decimal `json:"annualProductionKwh"`
	ElectricityRateDkk       decimal.Decimal `json:"electricityRateDkk"`
	SelfConsumptionRate      decimal.Decimal `json:"selfConsumptionRate"`
	GridFeedInRate           decimal.Decimal `json:"gridFeedInRate"`
	InflationRate            decimal.Decimal `json:"inflationRate"`
	ElectricityInflationRate decimal.Decimal `json:"electricityInflationRate"`
	MaintenanceCostYear1     decimal.Decimal `json:"maintenanceCostYear1"`
	DegradationRateFirstYear decimal.Decimal `json:"degradationRateFirstYear"`
	DegradationRateAnnual    decimal.Decimal `json:"degradationRateAnnual"`
}

// YearResult is the cash flow of a single projection year (1-based index).
// Nominal figures are in the currency of the year they occur in; real figures
// are discounted back to today's purchasing power at the general inflation
// rate.
type YearResult struct {
	Year                   int             `json:"year"`
	ProductionKwh          decimal.Decimal `json:"productionKwh"`
	ElectricityRate        decimal.Decimal `json:"electricityRate"`
	GridFeedInRate         decimal.Decimal `json:"gridFeedInRate"`
	SelfConsumptionSavings decimal.Decimal `json:"selfConsumptionSavings"`
	GridExportEarnings     decimal.Decimal `json:"gridExportEarnings"`
	SavingsNominal         decimal.Decimal `json:"savingsNominal"`
	SavingsReal            decimal.Decimal `json:"savingsReal"`
	MaintenanceCost        decimal.Decimal `json:"maintenanceCost"`
	NetSavingsNominal      decimal.Decimal `json:"netSavingsNominal"`
	NetSavingsReal         decimal.Decimal `json:"netSavingsReal"`
	CumulativeNominal      decimal.Decimal `json:"cumulativeNominal"`
	CumulativeReal         decimal.Decimal `json:"cumulativeReal"`
}

// ProjectionSummary aggregates the 25-year schedule. Totals sum the yearly
// net savings only; the initial outlay lives in the cumulative series. A
// break-even year of 0 means the investment never recovers within the
// horizon.
type ProjectionSummary struct {
	TotalSavingsNominal  decimal.Decimal `json:"totalSavingsNominal"`
	TotalSavingsReal     decimal.Decimal `json:"totalSavingsReal"`
	TotalMaintenanceCost decimal.Decimal `json:"totalMaintenanceCost"`
	BreakEvenYearNominal int             `json:"breakEvenYearNominal"`
	BreakEvenYearReal    int             `json:"breakEvenYearReal"`
	ROI25Year            decimal.Decimal `json:"roi25Year"`
}

// ProjectionResult is the ordered 25-year schedule plus its summary.
type ProjectionResult struct {
	Years   []YearResult      `json:"years"`
	Summary ProjectionSummary `json:"summary"`
}
