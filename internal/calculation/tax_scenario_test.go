package calculation

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Arnarsson/solar-calculator-app-sub000/internal/domain"
)

func referenceTaxInput() domain.TaxScenarioInput {
	return domain.TaxScenarioInput{
		SystemCost:            decimal.NewFromInt(161300),
		InstallationLaborCost: decimal.NewFromInt(49335),
		PanelsCost:            decimal.NewFromInt(47400),
		InverterCost:          decimal.NewFromInt(20625),
		AnnualSavings:         decimal.NewFromInt(20680),
	}
}

func TestCalculateTaxScenario_NoTax(t *testing.T) {
	result, err := CalculateTaxScenario(referenceTaxInput(), domain.TaxScenarioNone)
	require.NoError(t, err)

	assert.Equal(t, domain.TaxScenarioNone, result.Scenario)
	assert.True(t, result.EligibleAmount.IsZero(), "Nothing is eligible without a deduction")
	assert.True(t, result.TaxDeduction.IsZero(), "No deduction should be applied")
	assert.Equal(t, "161300.00", result.EffectiveCost.StringFixed(2), "Effective cost is the full system cost")
	assert.Equal(t, "7.80", result.EffectivePaybackYears.StringFixed(2))
	assert.Equal(t, []string{"No tax deduction applied"}, result.Assumptions)
}

func TestCalculateTaxScenario_LaborDeduction(t *testing.T) {
	result, err := CalculateTaxScenario(referenceTaxInput(), domain.TaxScenarioLaborDeduction)
	require.NoError(t, err)

	assert.Equal(t, "49335.00", result.EligibleAmount.StringFixed(2), "Only labor is eligible")
	assert.Equal(t, "0.26", result.DeductionRate.StringFixed(2))
	assert.Equal(t, "12827.10", result.TaxDeduction.StringFixed(2), "26% of labor, under the cap")
	assert.Equal(t, "148472.90", result.EffectiveCost.StringFixed(2), "System cost less the deduction")
	assert.Equal(t, "7.18", result.EffectivePaybackYears.StringFixed(2))
}

func TestCalculateTaxScenario_DeductionCap(t *testing.T) {
	input := referenceTaxInput()
	input.InstallationLaborCost = decimal.NewFromInt(200000)

	result, err := CalculateTaxScenario(input, domain.TaxScenarioLaborDeduction)
	require.NoError(t, err)

	assert.Equal(t, "25000.00", result.TaxDeduction.StringFixed(2),
		"Deduction must be capped at the annual maximum")
	assert.Equal(t, "136300.00", result.EffectiveCost.StringFixed(2))
}

func TestCalculateTaxScenario_DisclosureIsMandatory(t *testing.T) {
	result, err := CalculateTaxScenario(referenceTaxInput(), domain.TaxScenarioLaborDeduction)
	require.NoError(t, err)

	require.NotEmpty(t, result.Assumptions, "Deduction scenarios must disclose their assumptions")

	joined := strings.Join(result.Assumptions, "\n")
	assert.Contains(t, joined, "26%", "Must state the deduction rate")
	assert.Contains(t, joined, "25000", "Must state the cap")
	assert.Contains(t, joined, "labor", "Must state that only labor is eligible")
	assert.Contains(t, joined, "unverified", "Must carry the placeholder disclaimer")
}

func TestCalculateTaxScenario_NonPositiveSavings(t *testing.T) {
	input := referenceTaxInput()
	input.AnnualSavings = decimal.Zero

	_, err := CalculateTaxScenario(input, domain.TaxScenarioNone)
	assert.ErrorIs(t, err, ErrNonPositiveSavings)
}

func TestCalculateTaxScenario_UnknownType(t *testing.T) {
	_, err := CalculateTaxScenario(referenceTaxInput(), domain.TaxScenarioType("FLAT_REBATE"))
	assert.Error(t, err, "Unknown scenario types must be rejected")
}

func TestCompareTaxScenarios_OrderAndOrdering(t *testing.T) {
	results, err := CompareTaxScenarios(referenceTaxInput())
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, domain.TaxScenarioNone, results[0].Scenario, "NO_TAX comes first")
	assert.Equal(t, domain.TaxScenarioLaborDeduction, results[1].Scenario, "LABOR_DEDUCTION comes second")

	noTax, labor := results[0], results[1]
	assert.True(t, labor.EffectiveCost.LessThanOrEqual(noTax.EffectiveCost),
		"The deduction can never make the system more expensive")
	assert.True(t, labor.EffectivePaybackYears.LessThanOrEqual(noTax.EffectivePaybackYears),
		"The deduction can never lengthen the payback")
}

// The cost ordering must hold for any non-negative labor cost, including zero.
func TestCompareTaxScenarios_OrderingProperty(t *testing.T) {
	laborCosts := []int64{0, 1, 500, 10000, 49335, 96153, 96154, 500000}

	for _, labor := range laborCosts {
		input := referenceTaxInput()
		input.InstallationLaborCost = decimal.NewFromInt(labor)

		results, err := CompareTaxScenarios(input)
		require.NoError(t, err)

		assert.True(t, results[1].EffectiveCost.LessThanOrEqual(results[0].EffectiveCost),
			"Ordering must hold for labor cost %d", labor)
		assert.True(t, results[1].TaxDeduction.LessThanOrEqual(domain.MaxLaborDeduction),
			"Deduction must respect the cap for labor cost %d", labor)
	}
}
