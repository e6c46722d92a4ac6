package cashflow

import (
	"fmt"
	"math"

	"github.com/structcred/abf-portal/internal/deal"
	"go.uber.org/zap"
)

// BreakevenCDR bisects over the annual CDR to find the level at which the
// target tranche stops receiving its principal back in full under base-case
// prepayments. Returns the break-even CDR as a decimal, rounded to four
// places.
func BreakevenCDR(logger *zap.Logger, d *deal.Structure, targetTranche string, recovery float64) (float64, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var original float64
	found := false
	for i := range d.Tranches {
		if d.Tranches[i].Name == targetTranche {
			original = d.Tranches[i].CurrentBalance
			found = true
			break
		}
	}
	if !found {
		return 0, fmt.Errorf("tranche %q not found in deal %s", targetTranche, d.DealName)
	}

	const (
		maxCDR    = 0.50
		tolerance = 0.001
	)

	low, high := 0.0, maxCDR
	for high-low > tolerance {
		mid := (low + high) / 2

		scenario := BaseScenario(0.15, mid, recovery, 0.0433, 60)
		engine := NewEngine(logger, d, scenario)
		engine.Run()

		// Any meaningful unpaid balance means this CDR already writes the
		// tranche down.
		if engine.TrancheBalance(targetTranche) > 0.01*original {
			high = mid
		} else {
			low = mid
		}
	}

	breakeven := math.Round((low+high)/2*10000) / 10000
	logger.Debug("breakeven search complete",
		zap.String("op", "cashflow.BreakevenCDR"),
		zap.String("tranche", targetTranche),
		zap.Float64("breakevenCDR", breakeven),
	)
	return breakeven, nil
}
