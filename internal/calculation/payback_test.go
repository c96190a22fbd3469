package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Arnarsson/solar-calculator-app-sub000/internal/domain"
)

func referencePaybackInput() domain.PaybackInput {
	return domain.PaybackInput{
		SystemCost:          decimal.NewFromInt(161300),
		AnnualProductionKwh: decimal.NewFromInt(8800),
		ElectricityRate:     decimal.NewFromFloat(2.50),
		SelfConsumptionRate: decimal.NewFromFloat(0.70),
		GridFeedInRate:      decimal.NewFromFloat(2.00),
	}
}

func TestCalculatePayback_ReferenceSystem(t *testing.T) {
	result, err := CalculatePayback(referencePaybackInput())
	require.NoError(t, err)

	assert.Equal(t, "15400.00", result.SelfConsumptionSavings.StringFixed(2), "70% of production at retail rate")
	assert.Equal(t, "5280.00", result.GridExportEarnings.StringFixed(2), "30% of production at feed-in rate")
	assert.Equal(t, "20680.00", result.AnnualSavings.StringFixed(2), "Annual savings should sum both parts")
	assert.Equal(t, "7.80", result.PaybackYears.StringFixed(2), "Payback should match reference")
	assert.Equal(t, 8, result.BreakEvenYear, "Break-even year is the ceiling of payback years")
}

func TestCalculatePayback_NonPositiveSavings(t *testing.T) {
	input := referencePaybackInput()
	input.ElectricityRate = decimal.Zero
	input.GridFeedInRate = decimal.Zero

	result, err := CalculatePayback(input)

	assert.Nil(t, result, "Should not return a result")
	assert.ErrorIs(t, err, ErrNonPositiveSavings, "Zero savings must surface the documented error")
}

func TestCalculatePayback_PositiveFinite(t *testing.T) {
	result, err := CalculatePayback(referencePaybackInput())
	require.NoError(t, err)

	assert.True(t, result.PaybackYears.GreaterThan(decimal.Zero),
		"Payback years must be positive for positive savings")
	assert.Greater(t, result.BreakEvenYear, 0, "Break-even year must be positive")
}

// Increasing the retail rate while holding the feed-in rate at a fixed 80%
// ratio must strictly decrease the payback period.
func TestCalculatePayback_MonotoneInElectricityRate(t *testing.T) {
	var previous decimal.Decimal

	for i := 1; i <= 40; i++ {
		rate := decimal.NewFromInt(int64(i)).Div(decimal.NewFromInt(8)) // 0.125 .. 5.0
		input := domain.PaybackInput{
			SystemCost:          decimal.NewFromInt(161300),
			AnnualProductionKwh: decimal.NewFromInt(8800),
			ElectricityRate:     rate,
			SelfConsumptionRate: decimal.NewFromFloat(0.70),
			GridFeedInRate:      rate.Mul(domain.GridFeedInFraction),
		}

		result, err := CalculatePayback(input)
		require.NoError(t, err)

		if i > 1 {
			assert.True(t, result.PaybackYears.LessThan(previous),
				"Payback must strictly decrease as the electricity rate rises (rate %s)", rate.String())
		}
		previous = result.PaybackYears
	}
}

func TestCalculatePayback_Idempotent(t *testing.T) {
	first, err := CalculatePayback(referencePaybackInput())
	require.NoError(t, err)
	second, err := CalculatePayback(referencePaybackInput())
	require.NoError(t, err)

	assert.Equal(t, first.PaybackYears.String(), second.PaybackYears.String(),
		"Identical inputs must produce identical decimal strings")
	assert.Equal(t, first, second, "Results must be bit-for-bit identical")
}
