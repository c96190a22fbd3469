package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/Arnarsson/solar-calculator-app-sub000/internal/domain"
)

var decimalThousand = decimal.NewFromInt(1000)

// CalculateCO2Savings converts annual production into avoided-emission
// metrics. Pure, no failure modes.
//
// The lifetime figure is a flat 25x multiplication with no degradation
// applied. That is intentionally simpler (and more conservative on the annual
// side) than the financial projection, which does model degradation; do not
// reconcile the two.
func CalculateCO2Savings(input domain.CO2SavingsInput) *domain.CO2SavingsResult {
	factor := domain.DefaultEmissionFactorKgPerKwh
	if input.EmissionFactorKgPerKwh != nil {
		factor = *input.EmissionFactorKgPerKwh
	}

	annualKg := input.AnnualProductionKwh.Mul(factor)
	annualTonnes := annualKg.Div(decimalThousand)

	return &domain.CO2SavingsResult{
		AnnualCO2SavingsKg:       annualKg,
		AnnualCO2SavingsTonnes:   annualTonnes,
		LifetimeCO2SavingsTonnes: annualTonnes.Mul(decimal.NewFromInt(domain.ProjectionYears)),
		EquivalentCarKm:          annualKg.Div(domain.CarEmissionKgPerKm),
		EquivalentTreesYear:      annualKg.Div(domain.TreeAbsorptionKgPerYear),
	}
}
