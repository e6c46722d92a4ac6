package cashflow

import (
	"math"
	"sort"

	"github.com/structcred/abf-portal/internal/deal"
	"github.com/structcred/abf-portal/pkg/constants"
	"github.com/structcred/abf-portal/pkg/datetime"
	"github.com/structcred/abf-portal/pkg/mathutil"
	"go.uber.org/zap"
)

// PeriodCashFlow captures the collateral flows, waterfall distributions, and
// trigger state for a single monthly period.
type PeriodCashFlow struct {
	Period int
	Date   string

	// Collateral
	BeginningBalance   float64
	ScheduledPrincipal float64
	Prepayments        float64
	Defaults           float64
	Recoveries         float64
	Losses             float64
	EndingBalance      float64
	InterestIncome     float64

	// Cumulative
	CumulativeLosses    float64
	CumulativePrincipal float64
	CNLRate             float64

	// Waterfall
	FeesPaid         float64
	TrancheInterest  map[string]float64
	TranchePrincipal map[string]float64
	TrancheBalance   map[string]float64
	ExcessSpread     float64
	Residual         float64

	// Triggers
	OCRatio       float64
	ICRatio       float64
	TriggerStatus map[string]bool
}

// tranchePeriod records one period's distributions to a single tranche, used
// for WAL and summary metrics.
type tranchePeriod struct {
	period    int
	interest  float64
	principal float64
}

// Engine projects a deal's cash flows under a scenario. The engine keeps its
// own balance state so the deal structure passed in is never mutated.
type Engine struct {
	logger   *zap.Logger
	deal     *deal.Structure
	scenario Scenario

	collateralBalance   float64
	originalBalance     float64
	trancheBalances     map[string]float64
	cumulativeLosses    float64
	cumulativePrincipal float64

	// recoveries lag defaults; keyed by the period they come due
	recoveryQueue map[int]float64

	// month labels per period, empty when the deal has no closing date
	periodLabels []string

	trancheFlows map[string][]tranchePeriod
	periodFlows  []PeriodCashFlow
}

// periodMonthLabels derives one YYYY-MM label per projection period from the
// deal's closing date. Deals without a dated close get no labels.
func periodMonthLabels(closingDate string, months int) []string {
	if len(closingDate) < 7 {
		return nil
	}
	labels, err := datetime.PeriodDates(closingDate[:7], months)
	if err != nil {
		return nil
	}
	return labels
}

// NewEngine builds an engine for one deal/scenario pair.
func NewEngine(logger *zap.Logger, d *deal.Structure, scenario Scenario) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	balances := make(map[string]float64, len(d.Tranches))
	flows := make(map[string][]tranchePeriod, len(d.Tranches))
	for i := range d.Tranches {
		balances[d.Tranches[i].Name] = d.Tranches[i].CurrentBalance
		flows[d.Tranches[i].Name] = nil
	}

	return &Engine{
		logger:            logger,
		deal:              d,
		scenario:          scenario,
		collateralBalance: d.Collateral.CurrentBalance,
		originalBalance:   d.Collateral.OriginalBalance,
		trancheBalances:   balances,
		recoveryQueue:     make(map[int]float64),
		periodLabels:      periodMonthLabels(d.ClosingDate, scenario.ProjectionMonths),
		trancheFlows:      flows,
	}
}

// Run executes the full projection. The run ends early once the collateral
// balance is exhausted.
func (e *Engine) Run() []PeriodCashFlow {
	e.periodFlows = nil

	e.logger.Debug("starting cash flow projection",
		zap.String("op", "cashflow.Engine.Run"),
		zap.String("deal", e.deal.DealName),
		zap.String("scenario", e.scenario.Name),
		zap.Int("projectionMonths", e.scenario.ProjectionMonths),
	)

	for period := 1; period <= e.scenario.ProjectionMonths; period++ {
		if e.collateralBalance <= 0 {
			e.logger.Debug("collateral exhausted, ending projection early",
				zap.String("op", "cashflow.Engine.Run"),
				zap.Int("period", period),
			)
			break
		}
		e.periodFlows = append(e.periodFlows, e.projectPeriod(period))
	}

	return e.periodFlows
}

// PeriodFlows returns the flows from the most recent Run.
func (e *Engine) PeriodFlows() []PeriodCashFlow {
	return e.periodFlows
}

// TrancheBalance returns the current projected balance for the named tranche.
func (e *Engine) TrancheBalance(name string) float64 {
	return e.trancheBalances[name]
}

func (e *Engine) projectPeriod(period int) PeriodCashFlow {
	cf := PeriodCashFlow{
		Period:           period,
		BeginningBalance: e.collateralBalance,
		TrancheInterest:  make(map[string]float64),
		TranchePrincipal: make(map[string]float64),
		TrancheBalance:   make(map[string]float64),
		TriggerStatus:    make(map[string]bool),
	}
	if period <= len(e.periodLabels) {
		cf.Date = e.periodLabels[period-1]
	}

	smm := e.scenario.Prepayment.MonthlySMM(period, 0)
	mdr := e.scenario.Default.MonthlyMDR(period, 0)
	indexRate := e.scenario.IndexRateAt(period)
	recoveryRate := e.scenario.Default.RecoveryRate
	recoveryLag := e.scenario.Default.RecoveryLag

	// Collateral flows. Scheduled amortization uses a conservative half of
	// the straight-line 1/WAM factor.
	wam := math.Max(1, e.deal.Collateral.WeightedAverageMaturity-float64(period))
	cf.ScheduledPrincipal = e.collateralBalance / wam * 0.5

	remainingAfterScheduled := e.collateralBalance - cf.ScheduledPrincipal
	cf.Prepayments = remainingAfterScheduled * smm

	// Defaults apply to the balance before prepayments.
	cf.Defaults = e.collateralBalance * mdr

	if cf.Defaults > 0 {
		e.recoveryQueue[period+recoveryLag] += cf.Defaults * recoveryRate
	}
	cf.Recoveries = e.recoveryQueue[period]
	delete(e.recoveryQueue, period)

	cf.Losses = cf.Defaults * (1 - recoveryRate)
	e.cumulativeLosses += cf.Losses
	cf.CumulativeLosses = e.cumulativeLosses
	cf.CNLRate = mathutil.CalculatePercentage(e.cumulativeLosses, e.originalBalance)

	cf.InterestIncome = e.collateralBalance * e.deal.Collateral.WeightedAverageCoupon / constants.MonthsPerYear

	cf.EndingBalance = math.Max(0, e.collateralBalance-cf.ScheduledPrincipal-cf.Prepayments-cf.Defaults+cf.Recoveries)
	e.collateralBalance = cf.EndingBalance

	totalPrincipal := cf.ScheduledPrincipal + cf.Prepayments + cf.Recoveries
	e.cumulativePrincipal += totalPrincipal
	cf.CumulativePrincipal = e.cumulativePrincipal

	// Waterfall.
	availableInterest := cf.InterestIncome
	availablePrincipal := totalPrincipal

	// 1. Senior fees by priority.
	totalNotes := 0.0
	for _, balance := range e.trancheBalances {
		totalNotes += balance
	}
	fees := make([]deal.Fee, len(e.deal.Fees))
	copy(fees, e.deal.Fees)
	sort.SliceStable(fees, func(i, j int) bool { return fees[i].Priority < fees[j].Priority })
	for i := range fees {
		if fees[i].IsSubordinated {
			continue
		}
		due := fees[i].Calculate(e.collateralBalance, totalNotes, e.periodsPerYear())
		paid := math.Min(availableInterest, due)
		cf.FeesPaid += paid
		availableInterest -= paid
	}

	// 2. Tranche interest in order of seniority; residual classes accrue
	// nothing here.
	for i := range e.deal.Tranches {
		tranche := &e.deal.Tranches[i]
		if !tranche.IsRated() {
			continue
		}

		// Interest accrues on the projected balance, not the static one.
		due := e.trancheBalances[tranche.Name] * tranche.AllInRate(indexRate) / float64(e.periodsPerYear())
		paid := math.Min(availableInterest, due)
		cf.TrancheInterest[tranche.Name] = paid
		availableInterest -= paid

		e.trancheFlows[tranche.Name] = append(e.trancheFlows[tranche.Name], tranchePeriod{
			period:   period,
			interest: paid,
		})
	}

	// 3. Coverage ratios measured against rated note balances.
	var totalRated float64
	for i := range e.deal.Tranches {
		if e.deal.Tranches[i].IsRated() {
			totalRated += e.trancheBalances[e.deal.Tranches[i].Name]
		}
	}
	cf.OCRatio = mathutil.CalculatePercentage(cf.EndingBalance, totalRated)
	var totalInterestPaid float64
	for _, paid := range cf.TrancheInterest {
		totalInterestPaid += paid
	}
	if totalInterestPaid > 0 {
		cf.ICRatio = cf.InterestIncome / totalInterestPaid
	}

	triggersBreached := false
	for i := range e.deal.Triggers {
		trigger := &e.deal.Triggers[i]
		passed := true
		switch trigger.TestType {
		case deal.TriggerOC:
			passed = cf.OCRatio >= trigger.Threshold
		case deal.TriggerIC:
			passed = cf.ICRatio >= trigger.Threshold
		case deal.TriggerCNL:
			passed = cf.CNLRate <= trigger.Threshold
		}
		cf.TriggerStatus[trigger.Name] = passed
		if !passed {
			triggersBreached = true
		}
	}

	// 4. Principal distribution: sequential for sequential deals and whenever
	// any trigger is in breach, otherwise pro rata.
	isSequential := e.deal.PaymentPriority == deal.PrioritySequential || triggersBreached
	if isSequential {
		for i := range e.deal.Tranches {
			if availablePrincipal <= 0 {
				break
			}
			name := e.deal.Tranches[i].Name
			paid := math.Min(availablePrincipal, e.trancheBalances[name])
			cf.TranchePrincipal[name] = paid
			e.trancheBalances[name] -= paid
			availablePrincipal -= paid
			e.recordPrincipal(period, name, paid)
		}
	} else {
		totalBalance := 0.0
		for _, balance := range e.trancheBalances {
			totalBalance += balance
		}
		for i := range e.deal.Tranches {
			if totalBalance <= 0 {
				break
			}
			name := e.deal.Tranches[i].Name
			share := e.trancheBalances[name] / totalBalance
			paid := math.Min(availablePrincipal*share, e.trancheBalances[name])
			cf.TranchePrincipal[name] = paid
			e.trancheBalances[name] -= paid
			e.recordPrincipal(period, name, paid)
		}
	}

	for name, balance := range e.trancheBalances {
		cf.TrancheBalance[name] = balance
	}

	// 5. Leftovers flow to excess spread and the residual.
	cf.ExcessSpread = availableInterest
	cf.Residual = availablePrincipal

	return cf
}

// recordPrincipal attaches a principal payment to the tranche's entry for the
// current period, creating one for tranches that accrued no interest.
func (e *Engine) recordPrincipal(period int, name string, amount float64) {
	flows := e.trancheFlows[name]
	if len(flows) == 0 || flows[len(flows)-1].period != period {
		e.trancheFlows[name] = append(flows, tranchePeriod{period: period, principal: amount})
		return
	}
	flows[len(flows)-1].principal = amount
}

func (e *Engine) periodsPerYear() int {
	if e.deal.PaymentFrequency > 0 {
		return e.deal.PaymentFrequency
	}
	return constants.MonthsPerYear
}
