package domain

import "github.com/shopspring/decimal"

// TaxScenarioType discriminates the supported tax treatments.
type TaxScenarioType string

const (
	TaxScenarioNone           TaxScenarioType = "NO_TAX"
	TaxScenarioLaborDeduction TaxScenarioType = "LABOR_DEDUCTION"
)

// TaxScenarioTypes lists all scenario types in comparison order.
var TaxScenarioTypes = []TaxScenarioType{TaxScenarioNone, TaxScenarioLaborDeduction}

// TaxScenarioInput carries the cost breakdown a tax treatment is applied to.
// Equipment costs are listed separately because only labor is deductible.
type TaxScenarioInput struct {
	SystemCost            decimal.Decimal `json:"systemCost"`
	InstallationLaborCost decimal.Decimal `json:"installationLaborCost"`
	PanelsCost            decimal.Decimal `json:"panelsCost"`
	InverterCost          decimal.Decimal `json:"inverterCost"`
	AnnualSavings         decimal.Decimal `json:"annualSavings"`
}

// TaxScenarioResult is the outcome of one tax treatment. Assumptions is never
// empty for a scenario that applies a deduction: the rate and cap are
// placeholder figures and the disclosure must reach the end user.
type TaxScenarioResult struct {
	Scenario              TaxScenarioType `json:"scenario"`
	EligibleAmount        decimal.Decimal `json:"eligibleAmount"`
	DeductionRate         decimal.Decimal `json:"deductionRate"`
	TaxDeduction          decimal.Decimal `json:"taxDeduction"`
	MaxDeduction          decimal.Decimal `json:"maxDeduction"`
	EffectiveCost         decimal.Decimal `json:"effectiveCost"`
	EffectivePaybackYears decimal.Decimal `json:"effectivePaybackYears"`
	Assumptions           []string        `json:"assumptions"`
}
