package calculation

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/Arnarsson/solar-calculator-app-sub000/internal/domain"
)

var (
	decimalOne     = decimal.NewFromInt(1)
	decimalZero    = decimal.Zero
	decimalHundred = decimal.NewFromInt(100)
)

// ErrNonPositiveSavings is returned where a payback period would require
// dividing by a zero or negative annual savings figure. shopspring/decimal
// panics on division by zero rather than producing an infinity, so the
// degenerate case is surfaced as an explicit error instead of a non-finite
// sentinel.
var ErrNonPositiveSavings = errors.New("annual savings must be positive to compute a payback period")

// CalculatePayback produces the quick-look payback estimate: a single-year
// savings figure with no degradation or inflation applied, and the number of
// such years needed to recover the system cost.
func CalculatePayback(input domain.PaybackInput) (*domain.PaybackResult, error) {
	selfConsumptionSavings := input.AnnualProductionKwh.
		Mul(input.SelfConsumptionRate).
		Mul(input.ElectricityRate)
	gridExportEarnings := input.AnnualProductionKwh.
		Mul(decimalOne.Sub(input.SelfConsumptionRate)).
		Mul(input.GridFeedInRate)

	annualSavings := selfConsumptionSavings.Add(gridExportEarnings)
	if annualSavings.LessThanOrEqual(decimalZero) {
		return nil, ErrNonPositiveSavings
	}

	paybackYears := input.SystemCost.Div(annualSavings)

	return &domain.PaybackResult{
		SelfConsumptionSavings: selfConsumptionSavings,
		GridExportEarnings:     gridExportEarnings,
		AnnualSavings:          annualSavings,
		PaybackYears:           paybackYears,
		BreakEvenYear:          int(paybackYears.Ceil().IntPart()),
	}, nil
}
