package domain

import "github.com/shopspring/decimal"

// PaybackInput is the single-year, non-degrading payback estimate input.
type PaybackInput struct {
	SystemCost          decimal.Decimal `json:"systemCost"`
	AnnualProductionKwh decimal.Decimal `json:"annualProductionKwh"`
	ElectricityRate     decimal.Decimal `json:"electricityRate"`
	SelfConsumptionRate decimal.Decimal `json:"selfConsumptionRate"`
	GridFeedInRate      decimal.Decimal `json:"gridFeedInRate"`
}

// PaybackResult is the quick-look payback metric: first-year savings split by
// destination and the number of such years needed to recover the system cost.
type PaybackResult struct {
	SelfConsumptionSavings decimal.Decimal `json:"selfConsumptionSavings"`
	GridExportEarnings     decimal.Decimal `json:"gridExportEarnings"`
	AnnualSavings          decimal.Decimal `json:"annualSavings"`
	PaybackYears           decimal.Decimal `json:"paybackYears"`
	BreakEvenYear          int             `json:"breakEvenYear"`
}
