package projector

import (
	"math"
	"testing"
)

func defaultTranches() []TrancheSlice {
	return []TrancheSlice{
		{Name: "Class A", Size: 300, Coupon: 5.5, CapFraction: 0.3, Rating: "AAA"},
		{Name: "Class B", Size: 150, Coupon: 7.0, CapFraction: 0.2, Rating: "BBB"},
		{Name: "Class C", Size: 50, Coupon: 9.5, CapFraction: 0.1, Rating: "BB"},
	}
}

func TestProjectRecordCount(t *testing.T) {
	tests := []struct {
		name    string
		horizon int
	}{
		{name: "single period", horizon: 1},
		{name: "one year", horizon: 12},
		{name: "standard horizon", horizon: 60},
	}

	assumptions := Assumptions{InitialBalance: 500, CPR: 20, CDR: 5, Severity: 60}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := Project(nil, assumptions, defaultTranches(), tt.horizon)
			if err != nil {
				t.Fatalf("Project() unexpected error: %v", err)
			}
			if len(records) != tt.horizon {
				t.Errorf("Project() returned %d records, want %d", len(records), tt.horizon)
			}
		})
	}
}

func TestProjectFirstPeriodValues(t *testing.T) {
	// initialBalance=500, cpr=20, cdr=5, severity=60:
	// prepay = 500*20/100/12 = 8.333, default = 500*5/100/12 = 2.083,
	// recovery = 2.083*0.6 = 1.25, balance = 500 - 8.333 - 2.083 + 1.25 = 490.833
	assumptions := Assumptions{InitialBalance: 500, CPR: 20, CDR: 5, Severity: 60}
	records, err := Project(nil, assumptions, defaultTranches(), 60)
	if err != nil {
		t.Fatalf("Project() unexpected error: %v", err)
	}

	first := records[0]
	tolerance := 0.0005
	if math.Abs(first.Prepayment-8.333) > tolerance {
		t.Errorf("month-1 prepayment = %.4f, want 8.333", first.Prepayment)
	}
	if math.Abs(first.Default-2.083) > tolerance {
		t.Errorf("month-1 default = %.4f, want 2.083", first.Default)
	}
	if math.Abs(first.Recovery-1.25) > tolerance {
		t.Errorf("month-1 recovery = %.4f, want 1.250", first.Recovery)
	}
	if math.Abs(first.EndingBalance-490.833) > tolerance {
		t.Errorf("month-1 ending balance = %.4f, want 490.833", first.EndingBalance)
	}
}

func TestProjectBalanceNeverNegative(t *testing.T) {
	// Extreme defaults with no recovery burn the pool down quickly; the clamp
	// must hold the balance at zero rather than letting it cross.
	assumptions := Assumptions{InitialBalance: 100, CPR: 100, CDR: 100, Severity: 0}
	records, err := Project(nil, assumptions, defaultTranches(), 120)
	if err != nil {
		t.Fatalf("Project() unexpected error: %v", err)
	}
	for _, record := range records {
		if record.EndingBalance < 0 {
			t.Fatalf("period %d ending balance = %.6f, want >= 0", record.Period, record.EndingBalance)
		}
	}
}

func TestProjectZeroRatesHoldBalanceConstant(t *testing.T) {
	// Tranche payments never reduce the modeled pool balance; with cpr=cdr=0
	// the balance must stay exactly constant across the full horizon.
	assumptions := Assumptions{InitialBalance: 500, CPR: 0, CDR: 0, Severity: 60}
	records, err := Project(nil, assumptions, defaultTranches(), 60)
	if err != nil {
		t.Fatalf("Project() unexpected error: %v", err)
	}
	for _, record := range records {
		if record.EndingBalance != 500 {
			t.Fatalf("period %d ending balance = %.6f, want exactly 500", record.Period, record.EndingBalance)
		}
		if record.Prepayment != 0 || record.Default != 0 || record.Recovery != 0 {
			t.Fatalf("period %d has nonzero flows: %+v", record.Period, record)
		}
	}
}

func TestProjectRecoveryAddBack(t *testing.T) {
	// With cpr=0 and full severity the recovery exactly offsets the default,
	// so the balance holds constant even while defaults flow every month.
	assumptions := Assumptions{InitialBalance: 1000, CPR: 0, CDR: 12, Severity: 100}
	records, err := Project(nil, assumptions, defaultTranches(), 24)
	if err != nil {
		t.Fatalf("Project() unexpected error: %v", err)
	}
	for _, record := range records {
		if math.Abs(record.EndingBalance-1000) > 1e-9 {
			t.Fatalf("period %d ending balance = %.9f, want 1000", record.Period, record.EndingBalance)
		}
		if record.Default <= 0 {
			t.Fatalf("period %d default = %.6f, want > 0", record.Period, record.Default)
		}
	}
}

func TestProjectTranchePaymentCap(t *testing.T) {
	// Once the balance is nearly exhausted the cap binds: each payment equals
	// balance * capFraction instead of the coupon amount.
	assumptions := Assumptions{InitialBalance: 500, CPR: 90, CDR: 10, Severity: 0}
	records, err := Project(nil, assumptions, defaultTranches(), 120)
	if err != nil {
		t.Fatalf("Project() unexpected error: %v", err)
	}

	last := records[len(records)-1]
	for _, tranche := range defaultTranches() {
		coupon := tranche.Size * tranche.Coupon / 100 / 12
		capped := last.EndingBalance * tranche.CapFraction
		want := math.Min(coupon, capped)
		got := last.TranchePayments[tranche.Name]
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("tranche %s payment = %.9f, want %.9f", tranche.Name, got, want)
		}
	}
}

func TestProjectDeterminism(t *testing.T) {
	assumptions := Assumptions{InitialBalance: 500, CPR: 20, CDR: 5, Severity: 60}
	first, err := Project(nil, assumptions, defaultTranches(), 60)
	if err != nil {
		t.Fatalf("Project() unexpected error: %v", err)
	}
	second, err := Project(nil, assumptions, defaultTranches(), 60)
	if err != nil {
		t.Fatalf("Project() unexpected error: %v", err)
	}

	for i := range first {
		if first[i].EndingBalance != second[i].EndingBalance {
			t.Fatalf("period %d balances differ between runs: %.9f vs %.9f",
				first[i].Period, first[i].EndingBalance, second[i].EndingBalance)
		}
		for name, payment := range first[i].TranchePayments {
			if second[i].TranchePayments[name] != payment {
				t.Fatalf("period %d tranche %s payments differ between runs", first[i].Period, name)
			}
		}
	}
}

func TestProjectValidation(t *testing.T) {
	tests := []struct {
		name        string
		assumptions Assumptions
		horizon     int
	}{
		{name: "zero balance", assumptions: Assumptions{InitialBalance: 0, CPR: 10, CDR: 2, Severity: 40}, horizon: 60},
		{name: "negative balance", assumptions: Assumptions{InitialBalance: -100, CPR: 10, CDR: 2, Severity: 40}, horizon: 60},
		{name: "cpr above 100", assumptions: Assumptions{InitialBalance: 500, CPR: 150, CDR: 2, Severity: 40}, horizon: 60},
		{name: "negative cdr", assumptions: Assumptions{InitialBalance: 500, CPR: 10, CDR: -1, Severity: 40}, horizon: 60},
		{name: "severity above 100", assumptions: Assumptions{InitialBalance: 500, CPR: 10, CDR: 2, Severity: 101}, horizon: 60},
		{name: "zero horizon", assumptions: Assumptions{InitialBalance: 500, CPR: 10, CDR: 2, Severity: 40}, horizon: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Project(nil, tt.assumptions, defaultTranches(), tt.horizon); err == nil {
				t.Errorf("Project() expected error for %s, got nil", tt.name)
			}
		})
	}
}
