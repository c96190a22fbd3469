package domain

import "github.com/shopspring/decimal"

// ProjectionYears is the fixed horizon of the financial projection.
const ProjectionYears = 25

// Danish VAT applied on the full equipment and installation subtotal.
var VATRate = decimal.NewFromFloat(0.25)

// Labor-cost tax deduction policy ("haandvaerkerfradrag"). The rate and the
// annual cap are rule-of-thumb placeholders, not verified against current
// Danish tax law; every result that uses them must carry a disclosure string.
var (
	LaborDeductionRate = decimal.NewFromFloat(0.26)
	MaxLaborDeduction  = decimal.NewFromInt(25000)
)

// CO2 equivalence factors.
var (
	// DefaultEmissionFactorKgPerKwh is the average Danish grid emission factor.
	DefaultEmissionFactorKgPerKwh = decimal.NewFromFloat(0.5)
	CarEmissionKgPerKm            = decimal.NewFromFloat(0.12)
	TreeAbsorptionKgPerYear       = decimal.NewFromInt(21)
)

// Defaults injected at the boundary when the caller leaves a field unset.
var (
	DefaultInflationRate            = decimal.NewFromFloat(0.02)
	DefaultElectricityInflationRate = decimal.NewFromFloat(0.03)
	DefaultMaintenanceCostYear1     = decimal.NewFromInt(1000)
)

// Panel degradation rates. These are fixed installation characteristics, not
// caller-configurable assumptions.
var (
	// DegradationRateFirstYear is the one-time light-induced degradation (LID)
	// applied in the first year of operation.
	DegradationRateFirstYear = decimal.NewFromFloat(0.03)
	// DegradationRateAnnual is the steady-state yearly efficiency loss.
	DegradationRateAnnual = decimal.NewFromFloat(0.005)
)

// GridFeedInFraction is the assumed ratio of the feed-in price to the retail
// electricity price when no explicit feed-in rate is supplied.
var GridFeedInFraction = decimal.NewFromFloat(0.8)
