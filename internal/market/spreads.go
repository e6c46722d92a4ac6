package market

import "math"

// benchmarkStats holds a fixed one-year snapshot of a corporate benchmark
// index, in bps. These are static reference levels; there is no live fetch.
type benchmarkStats struct {
	label     string
	current   float64
	oneYearLo float64
	oneYearHi float64
	ytdChange float64
}

var benchmarks = map[string]benchmarkStats{
	"AA":  {label: "AA Corps", current: 60, oneYearLo: 48, oneYearHi: 78, ytdChange: -5},
	"A":   {label: "A Corps", current: 75, oneYearLo: 60, oneYearHi: 98, ytdChange: -6},
	"BBB": {label: "BBB Corps", current: 150, oneYearLo: 120, oneYearHi: 195, ytdChange: -12},
	"HY":  {label: "HY Corps", current: 350, oneYearLo: 290, oneYearHi: 460, ytdChange: -25},
	"IG":  {label: "IG Corps", current: 90, oneYearLo: 72, oneYearHi: 118, ytdChange: -8},
}

// sectorPremium expresses a structured-credit sector as a pickup over a
// corporate benchmark, with a volatility multiplier for history generation.
type sectorPremium struct {
	benchmark string
	premium   float64 // bps over the benchmark
	volMult   float64
}

// Premiums represent typical pickups for structured credit over the closest
// corporate equivalent.
var sectorPremiums = map[string]sectorPremium{
	"CLO AAA": {benchmark: "AA", premium: 45, volMult: 1.2},
	"CLO AA":  {benchmark: "A", premium: 60, volMult: 1.3},
	"CLO A":   {benchmark: "A", premium: 90, volMult: 1.4},
	"CLO BBB": {benchmark: "BBB", premium: 180, volMult: 1.5},
	"CLO BB":  {benchmark: "HY", premium: 200, volMult: 1.3},

	"Prime Auto AAA": {benchmark: "AA", premium: -15, volMult: 0.7},
	"Prime Auto AA":  {benchmark: "AA", premium: 0, volMult: 0.8},
	"Prime Auto A":   {benchmark: "A", premium: 0, volMult: 0.9},

	"Subprime Auto AAA": {benchmark: "AA", premium: 40, volMult: 1.0},
	"Subprime Auto AA":  {benchmark: "A", premium: 50, volMult: 1.1},
	"Subprime Auto A":   {benchmark: "A", premium: 90, volMult: 1.2},
	"Subprime Auto BBB": {benchmark: "BBB", premium: 250, volMult: 1.4},
	"Subprime Auto BB":  {benchmark: "HY", premium: 150, volMult: 1.2},

	"Consumer ABS AAA": {benchmark: "AA", premium: 10, volMult: 0.9},
	"Consumer ABS A":   {benchmark: "A", premium: 30, volMult: 1.0},
	"Consumer ABS BBB": {benchmark: "BBB", premium: 150, volMult: 1.2},

	"Equipment ABS AAA": {benchmark: "AA", premium: -10, volMult: 0.8},
	"Equipment ABS A":   {benchmark: "A", premium: 10, volMult: 0.9},
}

// SpreadSnapshot is one sector's spread picture, in bps.
type SpreadSnapshot struct {
	Sector        string
	CurrentSpread float64
	Benchmark     string
	YTDChange     float64
	OneYearAvg    float64
	OneYearMin    float64
	OneYearMax    float64
	volMult       float64
}

// ZScore measures how rich or cheap the sector trades against its one-year
// average, approximating the standard deviation as a quarter of the range.
func (s SpreadSnapshot) ZScore() float64 {
	if s.OneYearMax == s.OneYearMin {
		return 0
	}
	stdApprox := (s.OneYearMax - s.OneYearMin) / 4
	if stdApprox <= 0 {
		return 0
	}
	return (s.CurrentSpread - s.OneYearAvg) / stdApprox
}

// Sectors returns the sector names with spread coverage, in a stable order.
func Sectors() []string {
	return []string{
		"CLO AAA", "CLO AA", "CLO A", "CLO BBB", "CLO BB",
		"Prime Auto AAA", "Prime Auto AA", "Prime Auto A",
		"Subprime Auto AAA", "Subprime Auto AA", "Subprime Auto A",
		"Subprime Auto BBB", "Subprime Auto BB",
		"Consumer ABS AAA", "Consumer ABS A", "Consumer ABS BBB",
		"Equipment ABS AAA", "Equipment ABS A",
	}
}

// Snapshot derives the spread picture for one sector from its benchmark and
// premium. The one-year range widens by 20% of the premium to reflect basis
// volatility. Returns false for an unknown sector.
func Snapshot(sector string) (SpreadSnapshot, bool) {
	params, ok := sectorPremiums[sector]
	if !ok {
		return SpreadSnapshot{}, false
	}
	bench := benchmarks[params.benchmark]

	widen := math.Abs(params.premium) * 0.2
	avg := (bench.oneYearLo+bench.oneYearHi)/2 + params.premium
	return SpreadSnapshot{
		Sector:        sector,
		CurrentSpread: math.Round(bench.current + params.premium),
		Benchmark:     bench.label,
		YTDChange:     bench.ytdChange,
		OneYearAvg:    math.Round(avg),
		OneYearMin:    math.Round(bench.oneYearLo + params.premium - widen),
		OneYearMax:    math.Round(bench.oneYearHi + params.premium + widen),
		volMult:       params.volMult,
	}, true
}

// Snapshots returns snapshots for the requested sectors, or for every
// covered sector when the list is empty. Unknown sectors are skipped.
func Snapshots(sectors []string) []SpreadSnapshot {
	if len(sectors) == 0 {
		sectors = Sectors()
	}
	snapshots := make([]SpreadSnapshot, 0, len(sectors))
	for _, sector := range sectors {
		if snapshot, ok := Snapshot(sector); ok {
			snapshots = append(snapshots, snapshot)
		}
	}
	return snapshots
}
