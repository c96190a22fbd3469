package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/Arnarsson/solar-calculator-app-sub000/internal/domain"
)

// InputParser handles parsing of scenario input files. Range validation lives
// here, not in the calculators: the engine trusts its inputs.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a scenario configuration from a YAML file and validates
// it.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var cfg domain.Configuration
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// ValidateConfiguration checks a configuration for range errors before it
// reaches the engine.
func (ip *InputParser) ValidateConfiguration(cfg *domain.Configuration) error {
	if cfg == nil {
		return fmt.Errorf("configuration is required")
	}
	if err := ip.validateCosts(&cfg.Costs); err != nil {
		return fmt.Errorf("costs validation failed: %w", err)
	}
	if err := ip.validateProduction(&cfg.Production); err != nil {
		return fmt.Errorf("production validation failed: %w", err)
	}
	if err := ip.validatePrices(&cfg.Prices); err != nil {
		return fmt.Errorf("prices validation failed: %w", err)
	}
	if err := ip.validateAssumptions(&cfg.Assumptions); err != nil {
		return fmt.Errorf("assumptions validation failed: %w", err)
	}
	return nil
}

func (ip *InputParser) validateCosts(costs *domain.SetupCostInput) error {
	components := []struct {
		name  string
		value decimal.Decimal
	}{
		{"panels cost", costs.PanelsCost},
		{"inverter cost", costs.InverterCost},
		{"installation cost", costs.InstallationCost},
		{"mounting cost", costs.MountingCost},
		{"battery cost", costs.BatteryCost},
	}
	for _, c := range components {
		if c.value.LessThan(decimal.Zero) {
			return fmt.Errorf("%s cannot be negative", c.name)
		}
	}
	return nil
}

func (ip *InputParser) validateProduction(production *domain.ProductionSpec) error {
	if production.AnnualProductionKwh.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("annual production must be positive")
	}
	if production.SelfConsumptionRate.LessThanOrEqual(decimal.Zero) ||
		production.SelfConsumptionRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("self-consumption rate must be between 0 and 1 (exclusive of 0)")
	}
	return nil
}

func (ip *InputParser) validatePrices(prices *domain.PriceSpec) error {
	if prices.ElectricityRateDkk.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("electricity rate must be positive")
	}
	if prices.GridFeedInRateDkk != nil && prices.GridFeedInRateDkk.LessThan(decimal.Zero) {
		return fmt.Errorf("grid feed-in rate cannot be negative")
	}
	return nil
}

func (ip *InputParser) validateAssumptions(assumptions *domain.GlobalAssumptions) error {
	if assumptions.InflationRate != nil {
		if assumptions.InflationRate.LessThan(decimal.NewFromFloat(-0.10)) ||
			assumptions.InflationRate.GreaterThan(decimal.NewFromFloat(0.20)) {
			return fmt.Errorf("inflation rate must be between -10%% and 20%%")
		}
	}
	if assumptions.ElectricityInflationRate != nil {
		if assumptions.ElectricityInflationRate.LessThan(decimal.NewFromFloat(-0.10)) ||
			assumptions.ElectricityInflationRate.GreaterThan(decimal.NewFromFloat(0.20)) {
			return fmt.Errorf("electricity inflation rate must be between -10%% and 20%%")
		}
	}
	if assumptions.MaintenanceCostYear1 != nil && assumptions.MaintenanceCostYear1.LessThan(decimal.Zero) {
		return fmt.Errorf("maintenance cost cannot be negative")
	}
	return nil
}
