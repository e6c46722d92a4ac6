package cashflow

import (
	"github.com/structcred/abf-portal/pkg/constants"
	"github.com/structcred/abf-portal/pkg/mathutil"
)

// TrancheSummary aggregates a single tranche's results over a projection.
type TrancheSummary struct {
	Name            string
	OriginalBalance float64
	FinalBalance    float64
	PrincipalPaid   float64
	InterestPaid    float64
	WAL             float64 // weighted average life in years
	PaidDownPercent float64
}

// TrancheSummaries returns per-tranche summary metrics for the most recent
// Run, in capital stack order.
func (e *Engine) TrancheSummaries() []TrancheSummary {
	summaries := make([]TrancheSummary, 0, len(e.deal.Tranches))
	for i := range e.deal.Tranches {
		tranche := &e.deal.Tranches[i]
		initial := tranche.CurrentBalance
		final := e.trancheBalances[tranche.Name]

		var weightedTime, totalPrincipal, totalInterest float64
		for _, flow := range e.trancheFlows[tranche.Name] {
			weightedTime += flow.principal * float64(flow.period) / constants.MonthsPerYear
			totalPrincipal += flow.principal
			totalInterest += flow.interest
		}

		var wal float64
		if totalPrincipal > 0 {
			wal = weightedTime / totalPrincipal
		}
		paidDown := mathutil.CalculatePercentage(initial-final, initial)

		summaries = append(summaries, TrancheSummary{
			Name:            tranche.Name,
			OriginalBalance: initial,
			FinalBalance:    final,
			PrincipalPaid:   initial - final,
			InterestPaid:    totalInterest,
			WAL:             wal,
			PaidDownPercent: paidDown,
		})
	}
	return summaries
}
