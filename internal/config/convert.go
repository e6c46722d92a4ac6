package config

import (
	"github.com/structcred/abf-portal/internal/cashflow"
	"github.com/structcred/abf-portal/internal/projector"
	"github.com/structcred/abf-portal/pkg/constants"
)

// ProjectorAssumptions converts the scenario to the simplified projector's
// input. The projector works in annualized percentages directly.
func (s *Scenario) ProjectorAssumptions(initialBalance float64) projector.Assumptions {
	return projector.Assumptions{
		InitialBalance: initialBalance,
		CPR:            s.CPR,
		CDR:            s.CDR,
		Severity:       s.Severity,
	}
}

// CashflowScenario converts the scenario to the full engine's input, moving
// from percentages to decimals. Severity keeps its legacy meaning: it is the
// recovery percentage, so the engine's recovery rate is severity/100.
func (s *Scenario) CashflowScenario(projectionMonths int) cashflow.Scenario {
	prepayment := cashflow.PrepaymentAssumption{
		Model:      prepaymentModel(s.PrepaymentModel),
		BaseCPR:    s.CPR / constants.PercentageMultiplier,
		RampMonths: s.RampMonths,
	}
	for _, cpr := range s.PrepayVector {
		prepayment.Vector = append(prepayment.Vector, cpr/constants.PercentageMultiplier)
	}
	if len(s.SeasonalFactors) > 0 {
		prepayment.SeasonalFactors = make(map[int]float64, len(s.SeasonalFactors))
		for month, factor := range s.SeasonalFactors {
			prepayment.SeasonalFactors[month] = factor
		}
	}

	defaults := cashflow.DefaultAssumption{
		Model:        defaultModel(s.DefaultModel),
		BaseCDR:      s.CDR / constants.PercentageMultiplier,
		RecoveryRate: s.Severity / constants.PercentageMultiplier,
		RecoveryLag:  s.RecoveryLag,
		PeakMonth:    s.PeakMonth,
	}
	for _, cdr := range s.DefaultVector {
		defaults.Vector = append(defaults.Vector, cdr/constants.PercentageMultiplier)
	}

	return cashflow.Scenario{
		Name:             s.Name,
		Prepayment:       prepayment,
		Default:          defaults,
		IndexRate:        s.IndexRate / constants.PercentageMultiplier,
		ProjectionMonths: projectionMonths,
	}
}

func prepaymentModel(name string) cashflow.PrepaymentModel {
	switch name {
	case "ramp":
		return cashflow.PrepayRamp
	case "vector":
		return cashflow.PrepayVector
	case "seasonal":
		return cashflow.PrepaySeasonal
	default:
		return cashflow.PrepayConstant
	}
}

func defaultModel(name string) cashflow.DefaultModel {
	switch name {
	case "frontloaded":
		return cashflow.DefaultFrontLoaded
	case "backloaded":
		return cashflow.DefaultBackLoaded
	case "sda":
		return cashflow.DefaultSDA
	case "vector":
		return cashflow.DefaultVector
	default:
		return cashflow.DefaultConstant
	}
}
