package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Arnarsson/solar-calculator-app-sub000/internal/domain"
)

func referenceProjectionInput() domain.ProjectionInput {
	return domain.ProjectionInput{
		SystemCost:               decimal.NewFromInt(161300),
		AnnualProductionKwh:      decimal.NewFromInt(8800),
		ElectricityRateDkk:       decimal.NewFromFloat(2.50),
		SelfConsumptionRate:      decimal.NewFromFloat(0.70),
		GridFeedInRate:           decimal.NewFromFloat(2.00),
		InflationRate:            decimal.NewFromFloat(0.02),
		ElectricityInflationRate: decimal.NewFromFloat(0.03),
		MaintenanceCostYear1:     decimal.NewFromInt(1000),
		DegradationRateFirstYear: decimal.NewFromFloat(0.03),
		DegradationRateAnnual:    decimal.NewFromFloat(0.005),
	}
}

func TestCalculateProjection_DegradationCurve(t *testing.T) {
	result := CalculateProjection(referenceProjectionInput())
	require.Len(t, result.Years, 25)

	// Year 1 carries only the light-induced degradation.
	assert.Equal(t, "8536.00", result.Years[0].ProductionKwh.StringFixed(2), "8800 x 0.97")

	// Year 2 compounds one annual step on the year-1 baseline.
	assert.Equal(t, "8493.32", result.Years[1].ProductionKwh.StringFixed(2), "8536 x 0.995")

	// Year 25 applies 24 annual steps to the year-1 baseline, never to the
	// raw nameplate figure.
	base := decimal.NewFromInt(8536)
	retention := decimal.NewFromFloat(0.995)
	expected := base.Mul(retention.Pow(decimal.NewFromInt(24)))
	assert.True(t, result.Years[24].ProductionKwh.Equal(expected),
		"Year 25 production should be %s, got %s", expected.String(), result.Years[24].ProductionKwh.String())
}

func TestCalculateProjection_RateInflation(t *testing.T) {
	result := CalculateProjection(referenceProjectionInput())

	assert.Equal(t, "2.50", result.Years[0].ElectricityRate.StringFixed(2), "Year 1 uses the base rate")
	assert.Equal(t, "2.00", result.Years[0].GridFeedInRate.StringFixed(2))

	// Both rates inflate at the electricity inflation rate, not the general one.
	assert.Equal(t, "2.575000", result.Years[1].ElectricityRate.StringFixed(6), "2.50 x 1.03")
	assert.Equal(t, "2.060000", result.Years[1].GridFeedInRate.StringFixed(6), "2.00 x 1.03")
}

func TestCalculateProjection_NominalVersusReal(t *testing.T) {
	result := CalculateProjection(referenceProjectionInput())

	// Year 1 has a discount factor of 1, so nominal and real coincide.
	assert.True(t, result.Years[0].SavingsReal.Equal(result.Years[0].SavingsNominal),
		"Year 1 real savings equal nominal savings")

	for _, year := range result.Years[1:] {
		assert.True(t, year.SavingsReal.LessThan(year.SavingsNominal),
			"Real savings must trail nominal savings from year 2 on (year %d)", year.Year)
	}
}

func TestCalculateProjection_MaintenanceCosts(t *testing.T) {
	result := CalculateProjection(referenceProjectionInput())

	assert.Equal(t, "1000.00", result.Years[0].MaintenanceCost.StringFixed(2), "Year 1 maintenance is uninflated")
	assert.Equal(t, "1020.00", result.Years[1].MaintenanceCost.StringFixed(2), "Nominal maintenance inflates at the general rate")

	// The real-value maintenance deduction stays flat at the year-1 figure:
	// net real savings differ from gross real savings by exactly that amount,
	// every year.
	flat := decimal.NewFromInt(1000)
	for _, year := range result.Years {
		assert.True(t, year.SavingsReal.Sub(year.NetSavingsReal).Equal(flat),
			"Real maintenance must stay flat (year %d)", year.Year)
	}
}

func TestCalculateProjection_CumulativeSeries(t *testing.T) {
	input := referenceProjectionInput()
	result := CalculateProjection(input)

	// The series starts at minus the system cost.
	expectedFirst := result.Years[0].NetSavingsNominal.Sub(input.SystemCost)
	assert.True(t, result.Years[0].CumulativeNominal.Equal(expectedFirst),
		"Cumulative must open at -systemCost plus year-1 net savings")

	running := input.SystemCost.Neg()
	for _, year := range result.Years {
		running = running.Add(year.NetSavingsNominal)
		assert.True(t, year.CumulativeNominal.Equal(running),
			"Cumulative must accumulate net savings additively (year %d)", year.Year)
	}
}

func TestCalculateProjection_BreakEven(t *testing.T) {
	result := CalculateProjection(referenceProjectionInput())
	summary := result.Summary

	require.Greater(t, summary.BreakEvenYearNominal, 0, "Reference system must break even")
	assert.LessOrEqual(t, summary.BreakEvenYearNominal, 25)
	require.Greater(t, summary.BreakEvenYearReal, 0)
	assert.LessOrEqual(t, summary.BreakEvenYearReal, 25)
	assert.GreaterOrEqual(t, summary.BreakEvenYearReal, summary.BreakEvenYearNominal,
		"Discounted savings cannot break even earlier than nominal savings")

	// At the break-even year the cumulative is non-negative, and the year
	// before it is negative.
	atBreakEven := result.Years[summary.BreakEvenYearNominal-1].CumulativeNominal
	assert.True(t, atBreakEven.GreaterThanOrEqual(decimal.Zero))
	if summary.BreakEvenYearNominal > 1 {
		before := result.Years[summary.BreakEvenYearNominal-2].CumulativeNominal
		assert.True(t, before.LessThan(decimal.Zero))
	}

	// Once broken even, the cumulative series keeps strictly rising.
	for i := summary.BreakEvenYearNominal; i < len(result.Years); i++ {
		assert.True(t, result.Years[i].CumulativeNominal.GreaterThan(result.Years[i-1].CumulativeNominal),
			"Cumulative must keep rising after break-even (year %d)", i+1)
	}
}

func TestCalculateProjection_NeverBreaksEven(t *testing.T) {
	input := referenceProjectionInput()
	input.SystemCost = decimal.NewFromInt(5000000)

	result := CalculateProjection(input)

	assert.Equal(t, 0, result.Summary.BreakEvenYearNominal, "Unrecoverable investment reports 0")
	assert.Equal(t, 0, result.Summary.BreakEvenYearReal)
	assert.True(t, result.Years[24].CumulativeNominal.LessThan(decimal.Zero))
}

func TestCalculateProjection_SummaryTotals(t *testing.T) {
	input := referenceProjectionInput()
	result := CalculateProjection(input)

	totalNominal := decimal.Zero
	totalReal := decimal.Zero
	totalMaintenance := decimal.Zero
	for _, year := range result.Years {
		totalNominal = totalNominal.Add(year.NetSavingsNominal)
		totalReal = totalReal.Add(year.NetSavingsReal)
		totalMaintenance = totalMaintenance.Add(year.MaintenanceCost)
	}

	assert.True(t, result.Summary.TotalSavingsNominal.Equal(totalNominal),
		"Totals must sum net savings only, excluding the initial outlay")
	assert.True(t, result.Summary.TotalSavingsReal.Equal(totalReal))
	assert.True(t, result.Summary.TotalMaintenanceCost.Equal(totalMaintenance))

	expectedROI := totalNominal.Div(input.SystemCost).Mul(decimal.NewFromInt(100))
	assert.True(t, result.Summary.ROI25Year.Equal(expectedROI), "ROI is total nominal savings over system cost")
	assert.True(t, result.Summary.ROI25Year.GreaterThan(decimal.NewFromInt(100)),
		"Reference system should more than repay itself over 25 years")
}

func TestCalculateProjection_ZeroProduction(t *testing.T) {
	input := referenceProjectionInput()
	input.AnnualProductionKwh = decimal.Zero

	result := CalculateProjection(input)

	for _, year := range result.Years {
		assert.True(t, year.SavingsNominal.IsZero(), "Zero production yields zero savings, not an error (year %d)", year.Year)
	}
	assert.Equal(t, 0, result.Summary.BreakEvenYearNominal)
	assert.True(t, result.Summary.TotalSavingsNominal.LessThan(decimal.Zero),
		"Maintenance still accrues with no production")
}

func TestCalculateProjection_ZeroSystemCost(t *testing.T) {
	input := referenceProjectionInput()
	input.SystemCost = decimal.Zero

	result := CalculateProjection(input)

	assert.Equal(t, 1, result.Summary.BreakEvenYearNominal, "Nothing to recover breaks even immediately")
	assert.True(t, result.Summary.ROI25Year.IsZero(), "ROI is reported as zero when there is no investment")
}

func TestCalculateProjection_Idempotent(t *testing.T) {
	first := CalculateProjection(referenceProjectionInput())
	second := CalculateProjection(referenceProjectionInput())

	assert.Equal(t, first, second, "Identical inputs must yield bit-for-bit identical results")
	assert.Equal(t, first.Years[24].CumulativeNominal.String(), second.Years[24].CumulativeNominal.String())
}
