package domain

import "github.com/shopspring/decimal"

// SetupCostInput holds the component costs of an installation, VAT exclusive.
// A missing battery is represented by a zero BatteryCost.
type SetupCostInput struct {
	PanelsCost       decimal.Decimal `json:"panelsCost" yaml:"panels_cost"`
	InverterCost     decimal.Decimal `json:"inverterCost" yaml:"inverter_cost"`
	InstallationCost decimal.Decimal `json:"installationCost" yaml:"installation_cost"`
	MountingCost     decimal.Decimal `json:"mountingCost" yaml:"mounting_cost"`
	BatteryCost      decimal.Decimal `json:"batteryCost" yaml:"battery_cost"`
}

// SetupCostResult is the priced installation: the input components plus the
// subtotal, the applied VAT and the VAT-inclusive total.
type SetupCostResult struct {
	PanelsCost       decimal.Decimal `json:"panelsCost"`
	InverterCost     decimal.Decimal `json:"inverterCost"`
	InstallationCost decimal.Decimal `json:"installationCost"`
	MountingCost     decimal.Decimal `json:"mountingCost"`
	BatteryCost      decimal.Decimal `json:"batteryCost"`
	Subtotal         decimal.Decimal `json:"subtotal"`
	VATRate          decimal.Decimal `json:"vatRate"`
	VATAmount        decimal.Decimal `json:"vatAmount"`
	TotalWithVAT     decimal.Decimal `json:"totalWithVat"`
}
