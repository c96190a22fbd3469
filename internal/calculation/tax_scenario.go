package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Arnarsson/solar-calculator-app-sub000/internal/domain"
)

// CalculateTaxScenario applies one tax treatment to the setup cost and
// recomputes the effective payback. Returns ErrNonPositiveSavings when
// AnnualSavings is zero or negative.
func CalculateTaxScenario(input domain.TaxScenarioInput, scenario domain.TaxScenarioType) (*domain.TaxScenarioResult, error) {
	if input.AnnualSavings.LessThanOrEqual(decimalZero) {
		return nil, ErrNonPositiveSavings
	}

	switch scenario {
	case domain.TaxScenarioNone:
		return &domain.TaxScenarioResult{
			Scenario:              scenario,
			EligibleAmount:        decimalZero,
			DeductionRate:         decimalZero,
			TaxDeduction:          decimalZero,
			MaxDeduction:          domain.MaxLaborDeduction,
			EffectiveCost:         input.SystemCost,
			EffectivePaybackYears: input.SystemCost.Div(input.AnnualSavings),
			Assumptions:           []string{"No tax deduction applied"},
		}, nil

	case domain.TaxScenarioLaborDeduction:
		// Only installation labor is eligible; equipment is not.
		eligible := input.InstallationLaborCost
		taxDeduction := decimal.Min(eligible.Mul(domain.LaborDeductionRate), domain.MaxLaborDeduction)
		effectiveCost := input.SystemCost.Sub(taxDeduction)

		return &domain.TaxScenarioResult{
			Scenario:              scenario,
			EligibleAmount:        eligible,
			DeductionRate:         domain.LaborDeductionRate,
			TaxDeduction:          taxDeduction,
			MaxDeduction:          domain.MaxLaborDeduction,
			EffectiveCost:         effectiveCost,
			EffectivePaybackYears: effectiveCost.Div(input.AnnualSavings),
			Assumptions: []string{
				fmt.Sprintf("Deduction rate assumed at %s%% of the eligible labor cost", domain.LaborDeductionRate.Mul(decimalHundred).StringFixed(0)),
				fmt.Sprintf("Deduction capped at %s DKK per year", domain.MaxLaborDeduction.StringFixed(0)),
				"Only installation labor is eligible; panels, inverter and other equipment costs are not",
				"Rate and cap are unverified placeholder figures; confirm against current Danish tax rules before relying on this scenario",
			},
		}, nil

	default:
		return nil, fmt.Errorf("unknown tax scenario type: %s", scenario)
	}
}

// CompareTaxScenarios runs every scenario type and returns the results in the
// fixed comparison order (NO_TAX first, then LABOR_DEDUCTION).
func CompareTaxScenarios(input domain.TaxScenarioInput) ([]domain.TaxScenarioResult, error) {
	results := make([]domain.TaxScenarioResult, 0, len(domain.TaxScenarioTypes))
	for _, scenario := range domain.TaxScenarioTypes {
		result, err := CalculateTaxScenario(input, scenario)
		if err != nil {
			return nil, fmt.Errorf("tax scenario %s: %w", scenario, err)
		}
		results = append(results, *result)
	}
	return results, nil
}
