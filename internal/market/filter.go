package market

import "sort"

// Filter narrows an issuance list. All set criteria must match
// simultaneously; zero values leave a criterion unset.
type Filter struct {
	CollateralType string
	Ratings        []string // match when any tranche carries one of these ratings
	MinSpread      float64  // bps; tranche spread range must overlap [MinSpread, MaxSpread]
	MaxSpread      float64  // bps; zero means unbounded
	MinSize        float64  // $M
	DateFrom       string   // YYYY-MM-DD, inclusive
	DateTo         string   // YYYY-MM-DD, inclusive
}

// matches reports whether a single record passes every set criterion.
func (f Filter) matches(record *DealRecord) bool {
	if f.CollateralType != "" && record.CollateralType != f.CollateralType {
		return false
	}
	if record.TotalSize < f.MinSize {
		return false
	}
	if f.DateFrom != "" && record.PricingDate < f.DateFrom {
		return false
	}
	if f.DateTo != "" && record.PricingDate > f.DateTo {
		return false
	}

	if len(f.Ratings) > 0 {
		found := false
		for _, tranche := range record.Tranches {
			for _, rating := range f.Ratings {
				if tranche.Rating == rating {
					found = true
					break
				}
			}
			if found {
				break
			}
		}
		if !found {
			return false
		}
	}

	if f.MinSpread > 0 || f.MaxSpread > 0 {
		overlap := false
		for _, tranche := range record.Tranches {
			if tranche.Spread < f.MinSpread {
				continue
			}
			if f.MaxSpread > 0 && tranche.Spread > f.MaxSpread {
				continue
			}
			overlap = true
			break
		}
		if !overlap {
			return false
		}
	}

	return true
}

// Apply returns the records passing the filter, sorted by pricing date
// descending.
func (f Filter) Apply(records []DealRecord) []DealRecord {
	result := make([]DealRecord, 0, len(records))
	for i := range records {
		if f.matches(&records[i]) {
			result = append(result, records[i])
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].PricingDate > result[j].PricingDate
	})
	return result
}

// SummaryStats aggregates an issuance list.
type SummaryStats struct {
	TotalDeals        int
	TotalVolume       float64 // $M
	AverageDealSize   float64 // $M
	ByCollateral      map[string]float64
	ByBookrunner      map[string]float64
	AvgSpreadByRating map[string]float64
}

// Summarize computes summary statistics over a deal list.
func Summarize(records []DealRecord) SummaryStats {
	stats := SummaryStats{
		ByCollateral:      make(map[string]float64),
		ByBookrunner:      make(map[string]float64),
		AvgSpreadByRating: make(map[string]float64),
	}
	if len(records) == 0 {
		return stats
	}

	spreadSums := make(map[string]float64)
	spreadCounts := make(map[string]int)
	for i := range records {
		record := &records[i]
		stats.TotalDeals++
		stats.TotalVolume += record.TotalSize
		stats.ByCollateral[record.CollateralType] += record.TotalSize
		stats.ByBookrunner[record.Bookrunner] += record.TotalSize
		for _, tranche := range record.Tranches {
			spreadSums[tranche.Rating] += tranche.Spread
			spreadCounts[tranche.Rating]++
		}
	}

	stats.AverageDealSize = stats.TotalVolume / float64(stats.TotalDeals)
	for rating, sum := range spreadSums {
		stats.AvgSpreadByRating[rating] = sum / float64(spreadCounts[rating])
	}
	return stats
}

// CollateralTypes returns the distinct collateral types present, sorted.
func CollateralTypes(records []DealRecord) []string {
	seen := make(map[string]struct{})
	for i := range records {
		seen[records[i].CollateralType] = struct{}{}
	}
	types := make([]string, 0, len(seen))
	for collateral := range seen {
		types = append(types, collateral)
	}
	sort.Strings(types)
	return types
}
