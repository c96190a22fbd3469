package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/Arnarsson/solar-calculator-app-sub000/internal/domain"
)

// CalculateProjection runs the 25-year financial projection: a deterministic
// fold over the projection horizon with a running cumulative accumulator and
// no other state.
//
// Two inflation rates are in play and they are deliberately asymmetric:
// revenue is inflated at the electricity-specific rate, then discounted back
// to today's value at the general rate. That asymmetry is the whole point of
// the nominal-vs-real distinction the results communicate.
func CalculateProjection(input domain.ProjectionInput) *domain.ProjectionResult {
	// Year-1 production after light-induced degradation. This is also the
	// compounding base for every later year: year y applies (y-1) annual
	// degradation steps to the already-degraded year-1 figure, not to the
	// raw nameplate production.
	base := input.AnnualProductionKwh.Mul(decimalOne.Sub(input.DegradationRateFirstYear))
	retention := decimalOne.Sub(input.DegradationRateAnnual)

	electricityGrowth := decimalOne.Add(input.ElectricityInflationRate)
	generalGrowth := decimalOne.Add(input.InflationRate)
	exportShare := decimalOne.Sub(input.SelfConsumptionRate)

	years := make([]domain.YearResult, 0, domain.ProjectionYears)
	cumulativeNominal := input.SystemCost.Neg()
	cumulativeReal := input.SystemCost.Neg()

	totalNominal := decimalZero
	totalReal := decimalZero
	totalMaintenance := decimalZero
	breakEvenNominal := 0
	breakEvenReal := 0

	for y := 1; y <= domain.ProjectionYears; y++ {
		exponent := decimal.NewFromInt(int64(y - 1))

		production := base
		if y > 1 {
			production = base.Mul(retention.Pow(exponent))
		}

		priceFactor := electricityGrowth.Pow(exponent)
		electricityRate := input.ElectricityRateDkk.Mul(priceFactor)
		gridFeedInRate := input.GridFeedInRate.Mul(priceFactor)

		selfConsumptionSavings := production.Mul(input.SelfConsumptionRate).Mul(electricityRate)
		gridExportEarnings := production.Mul(exportShare).Mul(gridFeedInRate)
		savingsNominal := selfConsumptionSavings.Add(gridExportEarnings)

		discountFactor := generalGrowth.Pow(exponent)
		savingsReal := savingsNominal.Div(discountFactor)

		maintenanceCost := input.MaintenanceCostYear1.Mul(discountFactor)
		netSavingsNominal := savingsNominal.Sub(maintenanceCost)
		// The real-value maintenance cost is flat: inflating at the general
		// rate and discounting back at the same rate is an identity, and
		// computing it directly avoids spurious rounding from the division.
		netSavingsReal := savingsReal.Sub(input.MaintenanceCostYear1)

		cumulativeNominal = cumulativeNominal.Add(netSavingsNominal)
		cumulativeReal = cumulativeReal.Add(netSavingsReal)

		if breakEvenNominal == 0 && cumulativeNominal.GreaterThanOrEqual(decimalZero) {
			breakEvenNominal = y
		}
		if breakEvenReal == 0 && cumulativeReal.GreaterThanOrEqual(decimalZero) {
			breakEvenReal = y
		}

		totalNominal = totalNominal.Add(netSavingsNominal)
		totalReal = totalReal.Add(netSavingsReal)
		totalMaintenance = totalMaintenance.Add(maintenanceCost)

		years = append(years, domain.YearResult{
			Year:                   y,
			ProductionKwh:          production,
			ElectricityRate:        electricityRate,
			GridFeedInRate:         gridFeedInRate,
			SelfConsumptionSavings: selfConsumptionSavings,
			GridExportEarnings:     gridExportEarnings,
			SavingsNominal:         savingsNominal,
			SavingsReal:            savingsReal,
			MaintenanceCost:        maintenanceCost,
			NetSavingsNominal:      netSavingsNominal,
			NetSavingsReal:         netSavingsReal,
			CumulativeNominal:      cumulativeNominal,
			CumulativeReal:         cumulativeReal,
		})
	}

	roi := decimalZero
	if !input.SystemCost.IsZero() {
		roi = totalNominal.Div(input.SystemCost).Mul(decimalHundred)
	}

	return &domain.ProjectionResult{
		Years: years,
		Summary: domain.ProjectionSummary{
			TotalSavingsNominal:  totalNominal,
			TotalSavingsReal:     totalReal,
			TotalMaintenanceCost: totalMaintenance,
			BreakEvenYearNominal: breakEvenNominal,
			BreakEvenYearReal:    breakEvenReal,
			ROI25Year:            roi,
		},
	}
}
