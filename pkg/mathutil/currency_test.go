package mathutil

import "testing"

func TestRound(t *testing.T) {
	tests := []struct {
		name string
		val  float64
		want float64
	}{
		{"rounds up", 1.006, 1.01},
		{"rounds down", 1.004, 1.0},
		{"two decimals", 123.456, 123.46},
		{"negative", -2.567, -2.57},
		{"zero", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Round(tt.val); got != tt.want {
				t.Errorf("Round(%v) = %v, want %v", tt.val, got, tt.want)
			}
		})
	}
}

func TestIsZero(t *testing.T) {
	if !IsZero(0.005) {
		t.Error("IsZero(0.005) should be true within the one cent tolerance")
	}
	if IsZero(0.02) {
		t.Error("IsZero(0.02) should be false")
	}
}

func TestWithinTolerance(t *testing.T) {
	if !WithinTolerance(100.0, 100.005, 0.01) {
		t.Error("100.0 and 100.005 should be within 0.01")
	}
	if WithinTolerance(100.0, 100.02, 0.01) {
		t.Error("100.0 and 100.02 should not be within 0.01")
	}
}

func TestMinMaxClamp(t *testing.T) {
	if got := Min(3, 5); got != 3 {
		t.Errorf("Min(3, 5) = %v, want 3", got)
	}
	if got := Max(3, 5); got != 5 {
		t.Errorf("Max(3, 5) = %v, want 5", got)
	}
	if got := Clamp(120, 0, 100); got != 100 {
		t.Errorf("Clamp(120, 0, 100) = %v, want 100", got)
	}
	if got := Clamp(-5, 0, 100); got != 0 {
		t.Errorf("Clamp(-5, 0, 100) = %v, want 0", got)
	}
	if got := Clamp(50, 0, 100); got != 50 {
		t.Errorf("Clamp(50, 0, 100) = %v, want 50", got)
	}
}

func TestCalculatePercentage(t *testing.T) {
	if got := CalculatePercentage(25, 200); got != 12.5 {
		t.Errorf("CalculatePercentage(25, 200) = %v, want 12.5", got)
	}
	if got := CalculatePercentage(25, 0); got != 0 {
		t.Errorf("CalculatePercentage with zero total = %v, want 0", got)
	}
}

func TestApplyPercentage(t *testing.T) {
	if got := ApplyPercentage(200, 12.5); got != 25 {
		t.Errorf("ApplyPercentage(200, 12.5) = %v, want 25", got)
	}
}
