// Package cashflow implements the full ABS/CLO cash flow projection: curve-based
// prepayment and default assumptions, lagged recoveries, and a priority-of-payments
// waterfall with OC/IC/CNL trigger evaluation.
package cashflow

import (
	"math"

	"github.com/structcred/abf-portal/pkg/constants"
)

// PrepaymentModel selects how the annual CPR evolves over the projection.
type PrepaymentModel string

const (
	PrepayConstant PrepaymentModel = "constant"
	PrepayRamp     PrepaymentModel = "ramp"
	PrepayVector   PrepaymentModel = "vector"
	PrepaySeasonal PrepaymentModel = "seasonal"
)

// DefaultModel selects how the annual CDR evolves over the projection.
type DefaultModel string

const (
	DefaultConstant    DefaultModel = "constant"
	DefaultFrontLoaded DefaultModel = "frontloaded"
	DefaultBackLoaded  DefaultModel = "backloaded"
	DefaultSDA         DefaultModel = "sda"
	DefaultVector      DefaultModel = "vector"
)

// PrepaymentAssumption describes the prepayment speed. BaseCPR is an annual
// rate as a decimal (0.15 = 15% CPR).
type PrepaymentAssumption struct {
	Model           PrepaymentModel
	BaseCPR         float64
	RampMonths      int               // months to reach full speed for the ramp model
	Vector          []float64         // per-period annual CPRs for the vector model
	SeasonalFactors map[int]float64   // calendar month (1-12) -> multiplier
}

// annualCPR returns the annual CPR in effect for the given period.
func (p *PrepaymentAssumption) annualCPR(period, seasoning int) float64 {
	switch p.Model {
	case PrepayRamp:
		// PSA-style ramp: linear to full speed at RampMonths, then flat.
		rampMonths := p.RampMonths
		if rampMonths <= 0 {
			rampMonths = 24
		}
		effectiveMonth := seasoning + period
		if effectiveMonth <= rampMonths {
			return p.BaseCPR * float64(effectiveMonth) / float64(rampMonths)
		}
		return p.BaseCPR
	case PrepayVector:
		if period < len(p.Vector) {
			return p.Vector[period]
		}
		if len(p.Vector) > 0 {
			return p.Vector[len(p.Vector)-1]
		}
		return p.BaseCPR
	case PrepaySeasonal:
		monthOfYear := ((seasoning + period) % constants.MonthsPerYear) + 1
		factor, ok := p.SeasonalFactors[monthOfYear]
		if !ok {
			factor = 1.0
		}
		return p.BaseCPR * factor
	default:
		return p.BaseCPR
	}
}

// MonthlySMM returns the single monthly mortality for the given period:
// SMM = 1 - (1 - CPR)^(1/12).
func (p *PrepaymentAssumption) MonthlySMM(period, seasoning int) float64 {
	annual := p.annualCPR(period, seasoning)
	return 1 - math.Pow(1-annual, 1.0/constants.MonthsPerYear)
}

// DefaultAssumption describes the default curve and loss behavior. BaseCDR
// and RecoveryRate are annual/decimal; LossSeverity defaults to
// 1 - RecoveryRate when zero.
type DefaultAssumption struct {
	Model        DefaultModel
	BaseCDR      float64
	RecoveryRate float64
	RecoveryLag  int // months between default and recovery receipt
	LossSeverity float64
	PeakMonth    int // for the front-loaded model
	Vector       []float64
}

// Severity returns the loss severity, deriving it from the recovery rate
// when not explicitly set.
func (d *DefaultAssumption) Severity() float64 {
	if d.LossSeverity > 0 {
		return d.LossSeverity
	}
	return 1 - d.RecoveryRate
}

// annualCDR returns the annual CDR in effect for the given period.
func (d *DefaultAssumption) annualCDR(period, seasoning int) float64 {
	effectiveMonth := seasoning + period
	switch d.Model {
	case DefaultFrontLoaded:
		peak := d.PeakMonth
		if peak <= 0 {
			peak = 24
		}
		if effectiveMonth <= peak {
			return d.BaseCDR * float64(effectiveMonth) / float64(peak) * 1.5
		}
		return d.BaseCDR * math.Exp(-0.03*float64(effectiveMonth-peak))
	case DefaultBackLoaded:
		return d.BaseCDR * (1 - math.Exp(-0.05*float64(effectiveMonth)))
	case DefaultSDA:
		// Standard Default Assumption curve: ramps to full speed at month 30,
		// flat to 60, declines to 120, then holds at half speed.
		var factor float64
		switch {
		case effectiveMonth <= 30:
			factor = float64(effectiveMonth) / 30
		case effectiveMonth <= 60:
			factor = 1.0
		case effectiveMonth <= 120:
			factor = 1.0 - float64(effectiveMonth-60)/120
		default:
			factor = 0.5
		}
		return d.BaseCDR * factor
	case DefaultVector:
		if period < len(d.Vector) {
			return d.Vector[period]
		}
		if len(d.Vector) > 0 {
			return d.Vector[len(d.Vector)-1]
		}
		return d.BaseCDR
	default:
		return d.BaseCDR
	}
}

// MonthlyMDR returns the monthly default rate for the given period:
// MDR = 1 - (1 - CDR)^(1/12).
func (d *DefaultAssumption) MonthlyMDR(period, seasoning int) float64 {
	annual := d.annualCDR(period, seasoning)
	return 1 - math.Pow(1-annual, 1.0/constants.MonthsPerYear)
}
