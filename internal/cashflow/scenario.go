package cashflow

import "github.com/structcred/abf-portal/pkg/constants"

// Scenario bundles the complete assumption set for one projection run. Rates
// are decimals.
type Scenario struct {
	Name             string
	Prepayment       PrepaymentAssumption
	Default          DefaultAssumption
	IndexRate        float64   // flat index level used when IndexPath is empty
	IndexPath        []float64 // optional per-period index rate path
	ProjectionMonths int
}

// IndexRateAt returns the index rate for the given period, following the
// rate path when one is configured.
func (s *Scenario) IndexRateAt(period int) float64 {
	if len(s.IndexPath) > 0 && period < len(s.IndexPath) {
		return s.IndexPath[period]
	}
	return s.IndexRate
}

// BaseScenario builds a base-case scenario with constant prepayment and
// default assumptions.
func BaseScenario(cpr, cdr, recovery, indexRate float64, months int) Scenario {
	return Scenario{
		Name: "Base Case",
		Prepayment: PrepaymentAssumption{
			Model:   PrepayConstant,
			BaseCPR: cpr,
		},
		Default: DefaultAssumption{
			Model:        DefaultConstant,
			BaseCDR:      cdr,
			RecoveryRate: recovery,
			RecoveryLag:  6,
		},
		IndexRate:        indexRate,
		ProjectionMonths: months,
	}
}

// DefaultBaseScenario returns the standard base case: 15% CPR, 3% CDR, 40%
// recovery at the current index level over a five year horizon.
func DefaultBaseScenario() Scenario {
	return BaseScenario(0.15, 0.03, 0.40, constants.DefaultIndexRate/constants.PercentageMultiplier, constants.DefaultHorizonMonths)
}

// StressScenario builds a stress case with slower prepayments and
// front-loaded defaults peaking at month 18.
func StressScenario(cpr, cdr, recovery, indexRate float64, months int) Scenario {
	return Scenario{
		Name: "Stress Case",
		Prepayment: PrepaymentAssumption{
			Model:   PrepayConstant,
			BaseCPR: cpr,
		},
		Default: DefaultAssumption{
			Model:        DefaultFrontLoaded,
			BaseCDR:      cdr,
			RecoveryRate: recovery,
			RecoveryLag:  6,
			PeakMonth:    18,
		},
		IndexRate:        indexRate,
		ProjectionMonths: months,
	}
}

// DefaultStressScenario returns the standard stress case: 8% CPR, 10% CDR,
// 30% recovery with the index at 5.50%.
func DefaultStressScenario() Scenario {
	return StressScenario(0.08, 0.10, 0.30, 0.0550, constants.DefaultHorizonMonths)
}
