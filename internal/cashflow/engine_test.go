package cashflow

import (
	"math"
	"testing"

	"github.com/structcred/abf-portal/internal/deal"
)

func TestEngineRunBasics(t *testing.T) {
	structure := deal.NewSubprimeAutoTemplate()
	scenario := DefaultBaseScenario()

	engine := NewEngine(nil, structure, scenario)
	flows := engine.Run()

	if len(flows) == 0 || len(flows) > scenario.ProjectionMonths {
		t.Fatalf("Run() produced %d periods, want between 1 and %d", len(flows), scenario.ProjectionMonths)
	}

	for _, cf := range flows {
		if cf.EndingBalance < 0 {
			t.Fatalf("period %d ending balance = %.2f, want >= 0", cf.Period, cf.EndingBalance)
		}
		if cf.EndingBalance > cf.BeginningBalance {
			t.Fatalf("period %d balance rose from %.2f to %.2f", cf.Period, cf.BeginningBalance, cf.EndingBalance)
		}
		for name, balance := range cf.TrancheBalance {
			if balance < -0.01 {
				t.Fatalf("period %d tranche %s balance = %.2f, want >= 0", cf.Period, name, balance)
			}
		}
	}

	// Cumulative losses must be non-decreasing.
	previous := 0.0
	for _, cf := range flows {
		if cf.CumulativeLosses < previous {
			t.Fatalf("period %d cumulative losses fell from %.2f to %.2f", cf.Period, previous, cf.CumulativeLosses)
		}
		previous = cf.CumulativeLosses
	}
}

func TestEnginePeriodDates(t *testing.T) {
	structure := deal.NewACMAT2025_4()
	engine := NewEngine(nil, structure, DefaultBaseScenario())
	flows := engine.Run()

	// ACMAT closed 2025-12-17, so period 1 is the following month.
	if flows[0].Date != "2026-01" {
		t.Errorf("period 1 date = %q, want 2026-01", flows[0].Date)
	}
	if flows[1].Date != "2026-02" {
		t.Errorf("period 2 date = %q, want 2026-02", flows[1].Date)
	}

	// Templates without a closing date carry no period dates.
	undated := NewEngine(nil, deal.NewSubprimeAutoTemplate(), DefaultBaseScenario())
	if undatedFlows := undated.Run(); undatedFlows[0].Date != "" {
		t.Errorf("undated deal period 1 date = %q, want empty", undatedFlows[0].Date)
	}
}

func TestEngineRecoveryLag(t *testing.T) {
	structure := deal.NewSubprimeAutoTemplate()
	scenario := DefaultBaseScenario()
	scenario.Default.RecoveryLag = 6

	engine := NewEngine(nil, structure, scenario)
	flows := engine.Run()

	// Defaults flow from period 1 but recoveries only arrive once the lag
	// elapses.
	for _, cf := range flows {
		if cf.Period <= 6 && cf.Recoveries != 0 {
			t.Fatalf("period %d recoveries = %.2f before the lag elapsed", cf.Period, cf.Recoveries)
		}
		if cf.Period == 7 {
			want := flows[0].Defaults * scenario.Default.RecoveryRate
			if math.Abs(cf.Recoveries-want) > 0.01 {
				t.Fatalf("period 7 recoveries = %.2f, want %.2f (period-1 defaults at 40%%)", cf.Recoveries, want)
			}
		}
	}
}

func TestEngineSequentialPaysSeniorFirst(t *testing.T) {
	structure := deal.NewSubprimeAutoTemplate()
	engine := NewEngine(nil, structure, DefaultBaseScenario())
	flows := engine.Run()

	// No junior class may receive principal in a period where Class A-1 still
	// has a balance left unpaid.
	for _, cf := range flows {
		a1Remaining := cf.TrancheBalance["Class A-1"]
		if a1Remaining > 0.01 {
			for _, junior := range []string{"Class B", "Class C", "Class D", "Class E", "Residual"} {
				if cf.TranchePrincipal[junior] > 0.01 {
					t.Fatalf("period %d paid %.2f principal to %s while Class A-1 holds %.2f",
						cf.Period, cf.TranchePrincipal[junior], junior, a1Remaining)
				}
			}
		}
	}

	// The senior class pays off over a five year base case.
	if balance := engine.TrancheBalance("Class A-1"); balance > 0.01 {
		t.Errorf("Class A-1 final balance = %.2f, want fully repaid in base case", balance)
	}
}

func TestEngineProRataSplitsPrincipal(t *testing.T) {
	structure := &deal.Structure{
		DealName: "Pro Rata Test",
		Collateral: deal.CollateralPool{
			OriginalBalance:         100_000_000,
			CurrentBalance:          100_000_000,
			CollateralType:          deal.CollateralPrimeAuto,
			WeightedAverageCoupon:   0.08,
			WeightedAverageMaturity: 48,
		},
		Tranches: []deal.Tranche{
			{Name: "Class A", OriginalBalance: 60_000_000, CurrentBalance: 60_000_000,
				CouponType: deal.CouponFloating, Spread: 0.0100,
				Ratings: []deal.Rating{{Agency: deal.AgencySP, Rating: "AAA"}}},
			{Name: "Class B", OriginalBalance: 40_000_000, CurrentBalance: 40_000_000,
				CouponType: deal.CouponFloating, Spread: 0.0200,
				Ratings: []deal.Rating{{Agency: deal.AgencySP, Rating: "BBB"}}},
		},
		PaymentPriority: deal.PriorityProRata,
	}

	engine := NewEngine(nil, structure, DefaultBaseScenario())
	flows := engine.Run()

	// With no triggers defined nothing can breach, so principal splits by
	// balance share every period.
	first := flows[0]
	paidA := first.TranchePrincipal["Class A"]
	paidB := first.TranchePrincipal["Class B"]
	if paidA <= 0 || paidB <= 0 {
		t.Fatalf("pro-rata period 1 should pay both classes, got A=%.2f B=%.2f", paidA, paidB)
	}
	ratio := paidA / paidB
	if math.Abs(ratio-1.5) > 0.01 {
		t.Errorf("pro-rata split A/B = %.4f, want 1.5 (60/40)", ratio)
	}
}

func TestEngineTriggerBreachForcesSequential(t *testing.T) {
	structure := &deal.Structure{
		DealName: "Trigger Test",
		Collateral: deal.CollateralPool{
			OriginalBalance:         100_000_000,
			CurrentBalance:          100_000_000,
			CollateralType:          deal.CollateralPrimeAuto,
			WeightedAverageCoupon:   0.08,
			WeightedAverageMaturity: 48,
		},
		Tranches: []deal.Tranche{
			{Name: "Class A", OriginalBalance: 60_000_000, CurrentBalance: 60_000_000,
				CouponType: deal.CouponFloating, Spread: 0.0100,
				Ratings: []deal.Rating{{Agency: deal.AgencySP, Rating: "AAA"}}},
			{Name: "Class B", OriginalBalance: 40_000_000, CurrentBalance: 40_000_000,
				CouponType: deal.CouponFloating, Spread: 0.0200,
				Ratings: []deal.Rating{{Agency: deal.AgencySP, Rating: "BBB"}}},
		},
		Triggers: []deal.TriggerTest{
			// OC can never reach 200%, so the breach holds from period 1.
			{Name: "OC Test", TestType: deal.TriggerOC, Threshold: 200.0, Comparison: ">=",
				Consequence: "Switch to sequential"},
		},
		PaymentPriority: deal.PriorityProRata,
	}

	engine := NewEngine(nil, structure, DefaultBaseScenario())
	flows := engine.Run()

	first := flows[0]
	if first.TriggerStatus["OC Test"] {
		t.Fatal("OC Test should be breached from period 1")
	}
	// Breach redirects all principal to Class A.
	if first.TranchePrincipal["Class B"] > 0.01 {
		t.Errorf("breached deal paid %.2f principal to Class B in period 1, want 0", first.TranchePrincipal["Class B"])
	}
	if first.TranchePrincipal["Class A"] <= 0 {
		t.Error("breached deal should pay Class A principal in period 1")
	}
}

func TestEngineDoesNotMutateDeal(t *testing.T) {
	structure := deal.NewSubprimeAutoTemplate()
	engine := NewEngine(nil, structure, DefaultBaseScenario())
	engine.Run()

	if structure.Collateral.CurrentBalance != 500_000_000 {
		t.Errorf("engine mutated collateral balance: %v", structure.Collateral.CurrentBalance)
	}
	for i := range structure.Tranches {
		if structure.Tranches[i].CurrentBalance != structure.Tranches[i].OriginalBalance {
			t.Errorf("engine mutated tranche %s balance: %v", structure.Tranches[i].Name, structure.Tranches[i].CurrentBalance)
		}
	}
}

func TestEngineTrancheSummaries(t *testing.T) {
	structure := deal.NewSubprimeAutoTemplate()
	engine := NewEngine(nil, structure, DefaultBaseScenario())
	engine.Run()

	summaries := engine.TrancheSummaries()
	if len(summaries) != len(structure.Tranches) {
		t.Fatalf("TrancheSummaries() returned %d entries, want %d", len(summaries), len(structure.Tranches))
	}

	byName := make(map[string]TrancheSummary, len(summaries))
	for _, summary := range summaries {
		byName[summary.Name] = summary
	}

	a1 := byName["Class A-1"]
	if math.Abs(a1.PrincipalPaid-(a1.OriginalBalance-a1.FinalBalance)) > 0.01 {
		t.Errorf("Class A-1 principal paid %.2f inconsistent with balances %- .2f/%.2f",
			a1.PrincipalPaid, a1.OriginalBalance, a1.FinalBalance)
	}
	if a1.PaidDownPercent < 99.9 {
		t.Errorf("Class A-1 paid down %.2f%%, want full repayment in base case", a1.PaidDownPercent)
	}
	if a1.WAL <= 0 {
		t.Errorf("Class A-1 WAL = %.4f, want > 0", a1.WAL)
	}
	if a1.InterestPaid <= 0 {
		t.Errorf("Class A-1 interest paid = %.2f, want > 0", a1.InterestPaid)
	}

	// The senior class amortizes first, so its WAL is the shortest among the
	// rated classes that received principal.
	a2 := byName["Class A-2"]
	if a2.WAL <= a1.WAL {
		t.Errorf("Class A-2 WAL (%.4f) should exceed Class A-1 WAL (%.4f)", a2.WAL, a1.WAL)
	}
}

func TestBreakevenCDR(t *testing.T) {
	structure := deal.NewSubprimeAutoTemplate()

	seniorBreakeven, err := BreakevenCDR(nil, structure, "Class A-1", 0.40)
	if err != nil {
		t.Fatalf("BreakevenCDR(Class A-1) unexpected error: %v", err)
	}
	juniorBreakeven, err := BreakevenCDR(nil, structure, "Class E", 0.40)
	if err != nil {
		t.Fatalf("BreakevenCDR(Class E) unexpected error: %v", err)
	}

	if seniorBreakeven < 0 || seniorBreakeven > 0.5 {
		t.Errorf("Class A-1 breakeven = %v, want within [0, 0.5]", seniorBreakeven)
	}
	if juniorBreakeven > seniorBreakeven {
		t.Errorf("junior breakeven (%.4f) should not exceed senior breakeven (%.4f)", juniorBreakeven, seniorBreakeven)
	}

	if _, err := BreakevenCDR(nil, structure, "Class Z", 0.40); err == nil {
		t.Error("BreakevenCDR(unknown tranche) expected error, got nil")
	}
}
