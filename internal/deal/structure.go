package deal

import "github.com/structcred/abf-portal/pkg/constants"

// Structure is a complete ABS/CLO deal: collateral, capital stack, triggers,
// fees, and structural features.
type Structure struct {
	DealName    string
	Issuer      string
	PricingDate string
	ClosingDate string
	Collateral  CollateralPool
	Tranches    []Tranche
	Triggers    []TriggerTest
	Fees        []Fee
	Reserves    []ReserveAccount

	PaymentPriority    PaymentPriority
	PaymentFrequency   int // payments per year
	ReinvestmentPeriod int // months; CLOs have reinvestment periods
	CallDate           string
	LegalFinal         string

	Bookrunner string
	Format     string
	Shelf      string
	Series     string
}

// TotalNotes returns the sum of all tranche balances.
func (s *Structure) TotalNotes() float64 {
	var total float64
	for i := range s.Tranches {
		total += s.Tranches[i].CurrentBalance
	}
	return total
}

// RatedNotes returns the sum of rated tranche balances, excluding residual
// and equity classes.
func (s *Structure) RatedNotes() float64 {
	var total float64
	for i := range s.Tranches {
		if s.Tranches[i].IsRated() {
			total += s.Tranches[i].CurrentBalance
		}
	}
	return total
}

// CreditEnhancement returns the credit enhancement percentage for the named
// tranche: subordination below it plus excess collateral, over the current
// pool balance. Returns 0 for an unknown tranche.
func (s *Structure) CreditEnhancement(trancheName string) float64 {
	trancheIdx := -1
	for i := range s.Tranches {
		if s.Tranches[i].Name == trancheName {
			trancheIdx = i
			break
		}
	}
	if trancheIdx < 0 || s.Collateral.CurrentBalance <= 0 {
		return 0
	}

	var subordination float64
	for i := trancheIdx + 1; i < len(s.Tranches); i++ {
		subordination += s.Tranches[i].CurrentBalance
	}
	excessCollateral := s.Collateral.CurrentBalance - s.TotalNotes()

	return (subordination + excessCollateral) / s.Collateral.CurrentBalance * constants.PercentageMultiplier
}

// Overcollateralization returns the OC ratio in percent. With an empty
// throughTranche it measures against all rated notes; otherwise it measures
// against the note balance through the named tranche inclusive.
func (s *Structure) Overcollateralization(throughTranche string) float64 {
	if throughTranche == "" {
		rated := s.RatedNotes()
		if rated <= 0 {
			return 0
		}
		return s.Collateral.CurrentBalance / rated * constants.PercentageMultiplier
	}

	var notesThrough float64
	for i := range s.Tranches {
		notesThrough += s.Tranches[i].CurrentBalance
		if s.Tranches[i].Name == throughTranche {
			break
		}
	}
	if notesThrough <= 0 {
		return 0
	}
	return s.Collateral.CurrentBalance / notesThrough * constants.PercentageMultiplier
}

// periodsPerYear returns the deal payment frequency, defaulting to monthly.
func (s *Structure) periodsPerYear() int {
	if s.PaymentFrequency > 0 {
		return s.PaymentFrequency
	}
	return constants.MonthsPerYear
}

// InterestCoverage returns interest income over note interest expense at the
// given index rate (a decimal).
func (s *Structure) InterestCoverage(indexRate float64) float64 {
	interestIncome := s.Collateral.CurrentBalance * s.Collateral.WeightedAverageCoupon / float64(s.periodsPerYear())

	var interestExpense float64
	for i := range s.Tranches {
		if s.Tranches[i].IsPO {
			continue
		}
		interestExpense += s.Tranches[i].PeriodInterest(indexRate)
	}
	if interestExpense <= 0 {
		return 0
	}
	return interestIncome / interestExpense
}

// DSCR returns the debt service coverage ratio for one period: interest
// income over note interest expense plus scheduled principal.
func (s *Structure) DSCR(indexRate, scheduledPrincipal float64) float64 {
	interestIncome := s.Collateral.CurrentBalance * s.Collateral.WeightedAverageCoupon / float64(s.periodsPerYear())

	var interestExpense float64
	for i := range s.Tranches {
		if s.Tranches[i].IsPO {
			continue
		}
		interestExpense += s.Tranches[i].PeriodInterest(indexRate)
	}
	debtService := interestExpense + scheduledPrincipal
	if debtService <= 0 {
		return 0
	}
	return interestIncome / debtService
}

// EvaluateTriggers measures every trigger against the current deal state and
// returns the results in trigger order.
func (s *Structure) EvaluateTriggers(indexRate, scheduledPrincipal float64) []TriggerResult {
	results := make([]TriggerResult, 0, len(s.Triggers))
	for i := range s.Triggers {
		trigger := &s.Triggers[i]

		var currentValue float64
		switch trigger.TestType {
		case TriggerOC:
			currentValue = s.Overcollateralization("")
		case TriggerIC:
			currentValue = s.InterestCoverage(indexRate)
		case TriggerCNL:
			currentValue = s.Collateral.CNLRate()
		case TriggerDSCR:
			currentValue = s.DSCR(indexRate, scheduledPrincipal)
		case TriggerDelinquency:
			currentValue = s.Collateral.CurrentDelinquency60
		case TriggerExcessSpread:
			// Approximation: WAC less the simple average tranche spread.
			var spreadSum float64
			for j := range s.Tranches {
				spreadSum += s.Tranches[j].Spread
			}
			avgSpread := 0.0
			if len(s.Tranches) > 0 {
				avgSpread = spreadSum / float64(len(s.Tranches))
			}
			currentValue = (s.Collateral.WeightedAverageCoupon - avgSpread) * constants.PercentageMultiplier
		}

		passed := trigger.Evaluate(currentValue)
		result := TriggerResult{
			Name:         trigger.Name,
			Passed:       passed,
			CurrentValue: currentValue,
			Threshold:    trigger.Threshold,
		}
		if !passed {
			result.Consequence = trigger.Consequence
		}
		results = append(results, result)
	}
	return results
}
