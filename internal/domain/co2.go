package domain

import "github.com/shopspring/decimal"

// CO2SavingsInput converts annual production into avoided-emission metrics.
// A nil EmissionFactorKgPerKwh selects the Danish grid default.
type CO2SavingsInput struct {
	AnnualProductionKwh    decimal.Decimal  `json:"annualProductionKwh"`
	EmissionFactorKgPerKwh *decimal.Decimal `json:"emissionFactorKgPerKwh,omitempty"`
}

// CO2SavingsResult holds avoided emissions and everyday equivalences.
//
// LifetimeCO2SavingsTonnes is a flat 25x multiplication of the annual figure
// and deliberately ignores panel degradation. The financial projection models
// degradation rigorously; this figure stays simple and conservative on
// purpose, and the two must not be reconciled.
type CO2SavingsResult struct {
	AnnualCO2SavingsKg       decimal.Decimal `json:"annualCo2SavingsKg"`
	AnnualCO2SavingsTonnes   decimal.Decimal `json:"annualCo2SavingsTonnes"`
	LifetimeCO2SavingsTonnes decimal.Decimal `json:"lifetimeCo2SavingsTonnes"`
	EquivalentCarKm          decimal.Decimal `json:"equivalentCarKm"`
	EquivalentTreesYear      decimal.Decimal `json:"equivalentTreesYear"`
}
