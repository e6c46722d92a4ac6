// Package deal models ABS/CLO capital structures: tranches, collateral pools,
// structural triggers, fees, and the coverage math that ties them together.
package deal

import (
	"github.com/structcred/abf-portal/pkg/constants"
	"github.com/structcred/abf-portal/pkg/mathutil"
)

// CollateralType identifies the asset class backing a deal.
type CollateralType string

const (
	CollateralPrimeAuto    CollateralType = "Prime Auto"
	CollateralSubprimeAuto CollateralType = "Subprime Auto"
	CollateralConsumer     CollateralType = "Consumer"
	CollateralEquipment    CollateralType = "Equipment"
	CollateralCLO          CollateralType = "CLO"
	CollateralEsoteric     CollateralType = "Esoteric"
	CollateralCustom       CollateralType = "Custom"
)

// PaymentPriority determines how principal is allocated across tranches.
type PaymentPriority string

const (
	// PrioritySequential pays senior tranches in full before mezzanine and sub.
	PrioritySequential PaymentPriority = "Sequential"
	// PriorityProRata pays all tranches proportionally to balance.
	PriorityProRata PaymentPriority = "Pro Rata"
	// PriorityModifiedProRata pays pro rata until a trigger breach, then sequential.
	PriorityModifiedProRata PaymentPriority = "Modified Pro Rata"
)

// CouponType distinguishes floating-rate from fixed-rate tranches.
type CouponType string

const (
	CouponFloating CouponType = "floating"
	CouponFixed    CouponType = "fixed"
)

// Tranche is an individual slice of a deal's liabilities.
type Tranche struct {
	Name             string
	OriginalBalance  float64
	CurrentBalance   float64
	CouponType       CouponType
	Spread           float64 // spread over index (floating) or fixed coupon, as a decimal
	Index            string
	Floor            float64
	Ratings          []Rating
	PaymentFrequency int // payments per year
	IsIO             bool
	IsPO             bool
}

// Factor returns the current factor (current/original balance).
func (t *Tranche) Factor() float64 {
	if t.OriginalBalance <= 0 {
		return 0
	}
	return t.CurrentBalance / t.OriginalBalance
}

// AllInRate returns the all-in coupon as a decimal given the current index
// level (also a decimal). Fixed tranches ignore the index.
func (t *Tranche) AllInRate(indexRate float64) float64 {
	if t.CouponType == CouponFixed {
		return t.Spread
	}
	return mathutil.Max(indexRate, t.Floor) + t.Spread
}

// PeriodInterest returns the interest due for one payment period.
func (t *Tranche) PeriodInterest(indexRate float64) float64 {
	frequency := t.PaymentFrequency
	if frequency == 0 {
		frequency = constants.MonthsPerYear
	}
	return t.CurrentBalance * t.AllInRate(indexRate) / float64(frequency)
}

// IsRated reports whether the tranche carries at least one real rating.
func (t *Tranche) IsRated() bool {
	return len(t.Ratings) > 0 && t.Ratings[0].Rating != "NR"
}

// TriggerType identifies what a structural test measures.
type TriggerType string

const (
	TriggerOC           TriggerType = "oc"
	TriggerIC           TriggerType = "ic"
	TriggerCNL          TriggerType = "cnl"
	TriggerDSCR         TriggerType = "dscr"
	TriggerDelinquency  TriggerType = "delinquency"
	TriggerExcessSpread TriggerType = "excess_spread"
)

// TriggerTest is a structural trigger definition.
type TriggerTest struct {
	Name        string
	TestType    TriggerType
	Threshold   float64
	Comparison  string // ">=", "<=", ">", "<"
	Consequence string // what happens when breached
	CurePeriods int
}

// Evaluate reports whether the test passes for the given measured value.
func (tr *TriggerTest) Evaluate(currentValue float64) bool {
	switch tr.Comparison {
	case ">=":
		return currentValue >= tr.Threshold
	case "<=":
		return currentValue <= tr.Threshold
	case ">":
		return currentValue > tr.Threshold
	case "<":
		return currentValue < tr.Threshold
	}
	return false
}

// TriggerResult captures one trigger's evaluation outcome.
type TriggerResult struct {
	Name         string
	Passed       bool
	CurrentValue float64
	Threshold    float64
	Consequence  string // empty when the test passes
}

// CollateralPool describes the asset side of a deal.
type CollateralPool struct {
	OriginalBalance         float64
	CurrentBalance          float64
	CollateralType          CollateralType
	WeightedAverageCoupon   float64 // WAC as a decimal
	WeightedAverageMaturity float64 // WAM in months
	WeightedAverageLife     float64 // WAL in years
	WeightedAverageFICO     float64 // zero when not applicable
	WeightedAverageLTV      float64 // zero when not applicable

	CurrentDelinquency30 float64
	CurrentDelinquency60 float64
	CurrentDelinquency90 float64
	CumulativeNetLoss    float64
	CumulativeGrossLoss  float64
	CumulativeRecoveries float64
}

// Factor returns the current pool factor.
func (p *CollateralPool) Factor() float64 {
	if p.OriginalBalance <= 0 {
		return 0
	}
	return p.CurrentBalance / p.OriginalBalance
}

// CNLRate returns cumulative net loss as a percentage of original balance.
func (p *CollateralPool) CNLRate() float64 {
	if p.OriginalBalance <= 0 {
		return 0
	}
	return p.CumulativeNetLoss / p.OriginalBalance * constants.PercentageMultiplier
}

// ReserveAccount is a cash reserve or liquidity account.
type ReserveAccount struct {
	Name                  string
	TargetBalance         float64
	CurrentBalance        float64
	Floor                 float64
	FundedAtClose         bool
	ReplenishmentPriority int
}

// IsAtTarget reports whether the account is fully funded.
func (r *ReserveAccount) IsAtTarget() bool {
	return r.CurrentBalance >= r.TargetBalance
}

// FeeBasis determines what balance a fee accrues on.
type FeeBasis string

const (
	FeeBasisCollateral FeeBasis = "collateral"
	FeeBasisNotes      FeeBasis = "notes"
	FeeBasisFixed      FeeBasis = "fixed"
)

// Fee is a waterfall fee definition. Rate is an annual decimal.
type Fee struct {
	Name           string
	Rate           float64
	Basis          FeeBasis
	FixedAmount    float64
	Priority       int // lower pays first
	IsSubordinated bool
}

// Calculate returns the fee due for one period.
func (f *Fee) Calculate(collateralBalance, notesBalance float64, periodsPerYear int) float64 {
	switch f.Basis {
	case FeeBasisCollateral:
		return collateralBalance * f.Rate / float64(periodsPerYear)
	case FeeBasisNotes:
		return notesBalance * f.Rate / float64(periodsPerYear)
	default:
		return f.FixedAmount / float64(periodsPerYear)
	}
}
