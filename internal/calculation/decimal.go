package calculation

import (
	"sync"

	"github.com/shopspring/decimal"
)

// divisionPrecision is the number of decimal digits carried through division.
// Multiplication and addition are exact in shopspring/decimal; division is the
// only lossy operation, so 20 digits keeps 25 compounding periods reproducible
// across runs and platforms.
const divisionPrecision = 20

var configureOnce sync.Once

// ConfigureDecimal sets the process-wide decimal division precision. It must
// be called once at startup, before any concurrent calculation begins, and is
// idempotent: later calls are no-ops so the setting can never change mid-run.
func ConfigureDecimal() {
	configureOnce.Do(func() {
		decimal.DivisionPrecision = divisionPrecision
	})
}
