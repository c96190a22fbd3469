package calculation

import (
	"github.com/Arnarsson/solar-calculator-app-sub000/internal/domain"
)

// CalculateSetupCost sums the component costs and applies VAT. Pure; inputs
// are trusted to be non-negative (range validation happens upstream), and
// all-zero components are valid and yield a zero result.
func CalculateSetupCost(input domain.SetupCostInput) *domain.SetupCostResult {
	subtotal := input.PanelsCost.
		Add(input.InverterCost).
		Add(input.InstallationCost).
		Add(input.MountingCost).
		Add(input.BatteryCost)

	vatAmount := subtotal.Mul(domain.VATRate)

	return &domain.SetupCostResult{
		PanelsCost:       input.PanelsCost,
		InverterCost:     input.InverterCost,
		InstallationCost: input.InstallationCost,
		MountingCost:     input.MountingCost,
		BatteryCost:      input.BatteryCost,
		Subtotal:         subtotal,
		VATRate:          domain.VATRate,
		VATAmount:        vatAmount,
		TotalWithVAT:     subtotal.Add(vatAmount),
	}
}
