package datetime

import "testing"

func TestOffsetDate(t *testing.T) {
	tests := []struct {
		name   string
		date   string
		months int
		want   string
	}{
		{"forward one month", "2026-01", 1, "2026-02"},
		{"across a year boundary", "2025-12", 1, "2026-01"},
		{"backward", "2026-01", -2, "2025-11"},
		{"full year", "2026-03", 12, "2027-03"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := OffsetDate(tt.date, DateTimeLayout, tt.months)
			if err != nil {
				t.Fatalf("OffsetDate(%q, %d) unexpected error: %v", tt.date, tt.months, err)
			}
			if got != tt.want {
				t.Errorf("OffsetDate(%q, %d) = %q, want %q", tt.date, tt.months, got, tt.want)
			}
		})
	}

	if _, err := OffsetDate("not-a-date", DateTimeLayout, 1); err == nil {
		t.Error("OffsetDate with malformed input expected error, got nil")
	}
}

func TestDateBeforeDate(t *testing.T) {
	before, err := DateBeforeDate("2025-12", "2026-01")
	if err != nil {
		t.Fatalf("DateBeforeDate() unexpected error: %v", err)
	}
	if !before {
		t.Error("2025-12 should be before 2026-01")
	}

	same, err := DateBeforeDate("2026-01", "2026-01")
	if err != nil {
		t.Fatalf("DateBeforeDate() unexpected error: %v", err)
	}
	if same {
		t.Error("a date is not strictly before itself")
	}
}

func TestPeriodDates(t *testing.T) {
	dates, err := PeriodDates("2025-12", 3)
	if err != nil {
		t.Fatalf("PeriodDates() unexpected error: %v", err)
	}
	want := []string{"2026-01", "2026-02", "2026-03"}
	if len(dates) != len(want) {
		t.Fatalf("PeriodDates() returned %d dates, want %d", len(dates), len(want))
	}
	for i := range want {
		if dates[i] != want[i] {
			t.Errorf("PeriodDates()[%d] = %q, want %q", i, dates[i], want[i])
		}
	}
}
