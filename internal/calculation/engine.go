package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Arnarsson/solar-calculator-app-sub000/internal/domain"
)

// CalculationEngine orchestrates the individual calculators over a full
// Configuration: it prices the setup, derives the quick payback, compares tax
// scenarios, converts emissions and runs the 25-year projection. The engine
// holds no per-run state; a single instance is safe for concurrent use.
type CalculationEngine struct {
	Logger Logger
	Debug  bool
}

// NewCalculationEngine creates a new calculation engine.
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger used for debug output. A nil logger installs the
// no-op logger.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	ce.Logger = l
}

// RunCalculation executes the full pipeline for one configuration. The
// configuration is trusted to be validated upstream (config.InputParser or
// the API boundary); unresolved optional fields are filled with the
// documented defaults.
func (ce *CalculationEngine) RunCalculation(cfg *domain.Configuration) (*domain.CalculationResult, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}

	setup := CalculateSetupCost(cfg.Costs)
	feedInRate := ResolveFeedInRate(cfg.Prices)

	if ce.Debug {
		ce.Logger.Debugf("setup cost total %s DKK, feed-in rate %s DKK/kWh",
			setup.TotalWithVAT.StringFixed(2), feedInRate.StringFixed(4))
	}

	payback, err := CalculatePayback(domain.PaybackInput{
		SystemCost:          setup.TotalWithVAT,
		AnnualProductionKwh: cfg.Production.AnnualProductionKwh,
		ElectricityRate:     cfg.Prices.ElectricityRateDkk,
		SelfConsumptionRate: cfg.Production.SelfConsumptionRate,
		GridFeedInRate:      feedInRate,
	})
	if err != nil {
		return nil, fmt.Errorf("payback calculation: %w", err)
	}

	taxScenarios, err := CompareTaxScenarios(domain.TaxScenarioInput{
		SystemCost:            setup.TotalWithVAT,
		InstallationLaborCost: cfg.Costs.InstallationCost,
		PanelsCost:            cfg.Costs.PanelsCost,
		InverterCost:          cfg.Costs.InverterCost,
		AnnualSavings:         payback.AnnualSavings,
	})
	if err != nil {
		return nil, fmt.Errorf("tax scenario comparison: %w", err)
	}

	co2 := CalculateCO2Savings(domain.CO2SavingsInput{
		AnnualProductionKwh: cfg.Production.AnnualProductionKwh,
	})

	projection := CalculateProjection(ce.BuildProjectionInput(cfg))

	return &domain.CalculationResult{
		SetupCost:    setup,
		Payback:      payback,
		TaxScenarios: taxScenarios,
		CO2Savings:   co2,
		Projection:   projection,
	}, nil
}

// RunProjection runs the 25-year projection alone.
func (ce *CalculationEngine) RunProjection(cfg *domain.Configuration) (*domain.ProjectionResult, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	return CalculateProjection(ce.BuildProjectionInput(cfg)), nil
}

// BuildProjectionInput resolves a Configuration into a fully specified
// ProjectionInput: system cost from the priced setup, defaults for unset
// assumptions, the derived feed-in rate and the fixed degradation rates.
func (ce *CalculationEngine) BuildProjectionInput(cfg *domain.Configuration) domain.ProjectionInput {
	setup := CalculateSetupCost(cfg.Costs)

	return domain.ProjectionInput{
		SystemCost:               setup.TotalWithVAT,
		AnnualProductionKwh:      cfg.Production.AnnualProductionKwh,
		ElectricityRateDkk:       cfg.Prices.ElectricityRateDkk,
		SelfConsumptionRate:      cfg.Production.SelfConsumptionRate,
		GridFeedInRate:           ResolveFeedInRate(cfg.Prices),
		InflationRate:            orDefault(cfg.Assumptions.InflationRate, domain.DefaultInflationRate),
		ElectricityInflationRate: orDefault(cfg.Assumptions.ElectricityInflationRate, domain.DefaultElectricityInflationRate),
		MaintenanceCostYear1:     orDefault(cfg.Assumptions.MaintenanceCostYear1, domain.DefaultMaintenanceCostYear1),
		DegradationRateFirstYear: domain.DegradationRateFirstYear,
		DegradationRateAnnual:    domain.DegradationRateAnnual,
	}
}

// ResolveFeedInRate returns the explicit feed-in rate when supplied,
// otherwise the assumed fraction of the retail rate.
func ResolveFeedInRate(prices domain.PriceSpec) decimal.Decimal {
	if prices.GridFeedInRateDkk != nil {
		return *prices.GridFeedInRateDkk
	}
	return prices.ElectricityRateDkk.Mul(domain.GridFeedInFraction)
}

func orDefault(value *decimal.Decimal, fallback decimal.Decimal) decimal.Decimal {
	if value != nil {
		return *value
	}
	return fallback
}
