// Package projector implements the simplified amortization projector: a pure
// function that rolls a collateral pool balance forward month by month under
// scalar prepayment, default, and severity assumptions.
//
// The arithmetic intentionally de-annualizes rates by simple division by 12
// rather than compounding, and recoveries are added back to the pool balance
// in the same period the default occurs. Both behaviors are preserved for
// parity with the legacy calculator; the full compounding model lives in
// internal/cashflow.
package projector

import (
	"fmt"
	"math"

	"github.com/structcred/abf-portal/pkg/constants"
	"github.com/structcred/abf-portal/pkg/validation"
	"go.uber.org/zap"
)

// Assumptions holds the per-run scalar inputs. All rates are annualized
// percentages in [0, 100].
type Assumptions struct {
	InitialBalance float64
	CPR            float64
	CDR            float64
	// Severity is applied as a recovery percentage on the defaulted amount
	// (recovery = default * severity / 100). The name is kept from the legacy
	// calculator even though it is inverted from industry usage.
	Severity float64
}

// TrancheSlice is a static liability descriptor used for the illustrative
// per-tranche payment cap. CapFraction limits each tranche's payment to a
// fixed fraction of the remaining pool balance.
type TrancheSlice struct {
	Name        string
	Size        float64
	Coupon      float64
	CapFraction float64
	Rating      string
}

// StandardTranches returns the legacy three-class stack sized against the
// pool balance (60/30/10 split, payment caps 0.3/0.2/0.1).
func StandardTranches(poolBalance float64) []TrancheSlice {
	return []TrancheSlice{
		{Name: "Class A", Size: poolBalance * 0.60, Coupon: 5.5, CapFraction: 0.3, Rating: "AAA"},
		{Name: "Class B", Size: poolBalance * 0.30, Coupon: 7.0, CapFraction: 0.2, Rating: "BBB"},
		{Name: "Class C", Size: poolBalance * 0.10, Coupon: 9.5, CapFraction: 0.1, Rating: "BB"},
	}
}

// PeriodRecord is the pool state emitted for one monthly period.
type PeriodRecord struct {
	Period           int
	BeginningBalance float64
	Prepayment       float64
	Default          float64
	Recovery         float64
	EndingBalance    float64
	TranchePayments  map[string]float64
}

// Result pairs a scenario name with its projected periods.
type Result struct {
	Scenario string
	Records  []PeriodRecord
}

// Validate checks the assumptions against their documented ranges.
func (a Assumptions) Validate() error {
	if err := validation.ValidatePositive("initialBalance", a.InitialBalance); err != nil {
		return err
	}
	if err := validation.ValidateRate("cpr", a.CPR); err != nil {
		return err
	}
	if err := validation.ValidateRate("cdr", a.CDR); err != nil {
		return err
	}
	if err := validation.ValidateRate("severity", a.Severity); err != nil {
		return err
	}
	return nil
}

// Project produces exactly horizonMonths PeriodRecords for the given
// assumptions and tranche stack. Once the balance reaches zero the remaining
// periods are emitted with zero flows so every run has a fixed-length
// timeline.
func Project(logger *zap.Logger, assumptions Assumptions, tranches []TrancheSlice, horizonMonths int) ([]PeriodRecord, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := assumptions.Validate(); err != nil {
		return nil, fmt.Errorf("invalid projection assumptions: %w", err)
	}
	if err := validation.ValidateHorizon(horizonMonths); err != nil {
		return nil, err
	}

	monthlyPrepayRate := assumptions.CPR / constants.PercentageMultiplier / constants.MonthsPerYear
	monthlyDefaultRate := assumptions.CDR / constants.PercentageMultiplier / constants.MonthsPerYear

	logger.Debug("starting projection",
		zap.String("op", "projector.Project"),
		zap.Float64("initialBalance", assumptions.InitialBalance),
		zap.Float64("monthlyPrepayRate", monthlyPrepayRate),
		zap.Float64("monthlyDefaultRate", monthlyDefaultRate),
		zap.Int("horizonMonths", horizonMonths),
	)

	records := make([]PeriodRecord, 0, horizonMonths)
	balance := assumptions.InitialBalance
	for period := 1; period <= horizonMonths; period++ {
		beginning := balance
		prepay := balance * monthlyPrepayRate
		defaulted := balance * monthlyDefaultRate
		recovery := defaulted * assumptions.Severity / constants.PercentageMultiplier
		balance = math.Max(0, balance-prepay-defaulted+recovery)

		payments := make(map[string]float64, len(tranches))
		for _, tranche := range tranches {
			coupon := tranche.Size * tranche.Coupon / constants.PercentageMultiplier / constants.MonthsPerYear
			payments[tranche.Name] = math.Min(coupon, balance*tranche.CapFraction)
		}

		records = append(records, PeriodRecord{
			Period:           period,
			BeginningBalance: beginning,
			Prepayment:       prepay,
			Default:          defaulted,
			Recovery:         recovery,
			EndingBalance:    balance,
			TranchePayments:  payments,
		})
	}

	logger.Debug("projection complete",
		zap.String("op", "projector.Project"),
		zap.Float64("endingBalance", balance),
		zap.Int("periods", len(records)),
	)

	return records, nil
}
