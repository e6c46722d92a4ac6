package market

import (
	"math/rand"

	"go.uber.org/zap"
)

// HistoryPoint is one month of generated spread history, in bps. MonthsAgo
// counts back from the present: the first point is the oldest.
type HistoryPoint struct {
	MonthsAgo int
	Spread    float64
}

// History generates a synthetic monthly spread history per sector as a
// seeded random walk: starting at the one-year average, stepping uniformly
// within ±(volMult · 5bps) each month, clamped to the one-year range. The
// same seed always yields the same walk.
func History(logger *zap.Logger, seed int64, months int, sectors []string) map[string][]HistoryPoint {
	if logger == nil {
		logger = zap.NewNop()
	}
	if months <= 0 {
		months = 24
	}

	rng := rand.New(rand.NewSource(seed))
	logger.Debug("generating spread history",
		zap.String("op", "market.History"),
		zap.Int64("seed", seed),
		zap.Int("months", months),
	)

	result := make(map[string][]HistoryPoint)
	for _, sector := range sectors {
		snapshot, ok := Snapshot(sector)
		if !ok {
			logger.Debug("skipping unknown sector",
				zap.String("op", "market.History"),
				zap.String("sector", sector),
			)
			continue
		}

		points := make([]HistoryPoint, 0, months)
		spread := snapshot.OneYearAvg
		step := snapshot.volMult * 5
		for month := months - 1; month >= 0; month-- {
			spread += (rng.Float64()*2 - 1) * step
			if spread < snapshot.OneYearMin {
				spread = snapshot.OneYearMin
			}
			if spread > snapshot.OneYearMax {
				spread = snapshot.OneYearMax
			}
			points = append(points, HistoryPoint{MonthsAgo: month, Spread: spread})
		}
		result[sector] = points
	}
	return result
}
