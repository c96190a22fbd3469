package domain

import "github.com/shopspring/decimal"

// Configuration is the complete, caller-supplied input for one calculation
// run. It is what scenario files parse into, what the HTTP boundary decodes,
// and what a saved scenario snapshots, so its shape must round-trip through
// JSON and YAML without loss.
type Configuration struct {
	Costs       SetupCostInput    `json:"costs" yaml:"costs"`
	Production  ProductionSpec    `json:"production" yaml:"production"`
	Prices      PriceSpec         `json:"prices" yaml:"prices"`
	Assumptions GlobalAssumptions `json:"assumptions" yaml:"assumptions"`
}

// ProductionSpec describes the yield side of the installation.
type ProductionSpec struct {
	AnnualProductionKwh decimal.Decimal `json:"annualProductionKwh" yaml:"annual_production_kwh"`
	SelfConsumptionRate decimal.Decimal `json:"selfConsumptionRate" yaml:"self_consumption_rate"`
}

// PriceSpec describes the electricity prices. GridFeedInRateDkk is optional;
// when nil the boundary derives it as GridFeedInFraction of the retail rate.
type PriceSpec struct {
	ElectricityRateDkk decimal.Decimal  `json:"electricityRateDkk" yaml:"electricity_rate_dkk"`
	GridFeedInRateDkk  *decimal.Decimal `json:"gridFeedInRateDkk,omitempty" yaml:"grid_feed_in_rate_dkk,omitempty"`
}

// GlobalAssumptions are the projection assumptions. Every field is optional;
// zero-value pointers are filled with the documented defaults before the
// engine runs.
type GlobalAssumptions struct {
	InflationRate            *decimal.Decimal `json:"inflationRate,omitempty" yaml:"inflation_rate,omitempty"`
	ElectricityInflationRate *decimal.Decimal `json:"electricityInflationRate,omitempty" yaml:"electricity_inflation_rate,omitempty"`
	MaintenanceCostYear1     *decimal.Decimal `json:"maintenanceCostYear1,omitempty" yaml:"maintenance_cost_year1,omitempty"`
}

// CalculationResult bundles every calculator's output for one full run.
type CalculationResult struct {
	SetupCost    *SetupCostResult    `json:"setupCost"`
	Payback      *PaybackResult      `json:"payback"`
	TaxScenarios []TaxScenarioResult `json:"taxScenarios"`
	CO2Savings   *CO2SavingsResult   `json:"co2Savings"`
	Projection   *ProjectionResult   `json:"projection"`
}
