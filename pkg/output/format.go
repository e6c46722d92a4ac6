// Package output provides utilities for formatting and displaying report results.
package output

import (
	"fmt"
	"sort"
	"strings"

	"github.com/structcred/abf-portal/internal/cashflow"
	"github.com/structcred/abf-portal/internal/market"
	"github.com/structcred/abf-portal/internal/projector"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ProjectionPretty outputs a human-readable table per scenario.
func ProjectionPretty(results []projector.Result) {
	p := message.NewPrinter(language.English)
	for _, result := range results {
		fmt.Printf("--- Projection for scenario %s ---\n", result.Scenario)
		fmt.Printf("Period | Begin Balance | Prepay   | Default  | Recovery | End Balance\n")
		fmt.Printf("______ | _____________ | ______   | _______  | ________ | ___________\n")
		for _, record := range result.Records {
			_, _ = p.Printf("%6d | $%.3f | $%.3f | $%.3f | $%.3f | $%.3f\n",
				record.Period, record.BeginningBalance, record.Prepayment,
				record.Default, record.Recovery, record.EndingBalance)
		}
		if len(results) > 1 {
			fmt.Printf("\n")
		}
	}
}

// ProjectionCSV outputs the projection in comma-separated value format.
func ProjectionCSV(results []projector.Result) {
	fmt.Printf(`"period"`)
	for _, result := range results {
		fmt.Printf(`,"begin (%s)","prepay (%s)","default (%s)","recovery (%s)","end (%s)"`,
			result.Scenario, result.Scenario, result.Scenario, result.Scenario, result.Scenario)
	}
	fmt.Printf("\n")

	// All scenarios share the same horizon, so take periods from the first.
	if len(results) == 0 {
		return
	}
	for i := range results[0].Records {
		fmt.Printf(`"%d"`, results[0].Records[i].Period)
		for _, result := range results {
			record := result.Records[i]
			fmt.Printf(`,"%.3f","%.3f","%.3f","%.3f","%.3f"`,
				record.BeginningBalance, record.Prepayment, record.Default,
				record.Recovery, record.EndingBalance)
		}
		fmt.Printf("\n")
	}
}

// WaterfallPretty outputs the full engine run: period table, tranche summary,
// and trigger breaches.
func WaterfallPretty(dealName, scenarioName string, flows []cashflow.PeriodCashFlow, summaries []cashflow.TrancheSummary) {
	p := message.NewPrinter(language.English)
	fmt.Printf("--- Waterfall for %s, scenario %s ---\n", dealName, scenarioName)
	fmt.Printf("Period | Collateral End   | Losses       | CNL %%  | OC %%   | IC x  | Excess Spread\n")
	fmt.Printf("______ | ______________   | ______       | _____  | _____  | ____  | _____________\n")
	for _, cf := range flows {
		_, _ = p.Printf("%6d | $%.2f | $%.2f | %.2f | %.1f | %.2f | $%.2f\n",
			cf.Period, cf.EndingBalance, cf.Losses, cf.CNLRate, cf.OCRatio, cf.ICRatio, cf.ExcessSpread)
	}

	fmt.Printf("\nTranche Summary\n")
	fmt.Printf("Tranche | Original Balance | Final Balance | Principal Paid | Interest Paid | WAL  | Paid Down %%\n")
	for _, summary := range summaries {
		_, _ = p.Printf("%s | $%.2f | $%.2f | $%.2f | $%.2f | %.2f | %.1f\n",
			summary.Name, summary.OriginalBalance, summary.FinalBalance,
			summary.PrincipalPaid, summary.InterestPaid, summary.WAL, summary.PaidDownPercent)
	}

	breaches := triggerBreaches(flows)
	if len(breaches) > 0 {
		fmt.Printf("\nTrigger Breaches\n")
		names := make([]string, 0, len(breaches))
		for name := range breaches {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("%s: breached in %d of %d periods\n", name, breaches[name], len(flows))
		}
	}
}

// WaterfallCSV outputs the period table in comma-separated value format.
func WaterfallCSV(dealName, scenarioName string, flows []cashflow.PeriodCashFlow, summaries []cashflow.TrancheSummary) {
	fmt.Printf(`"period","collateral_end","scheduled","prepayments","defaults","recoveries","losses","cnl_pct","oc_pct","ic_x","fees_paid","excess_spread"` + "\n")
	for _, cf := range flows {
		fmt.Printf(`"%d","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f","%.4f","%.4f","%.4f","%.2f","%.2f"`+"\n",
			cf.Period, cf.EndingBalance, cf.ScheduledPrincipal, cf.Prepayments,
			cf.Defaults, cf.Recoveries, cf.Losses, cf.CNLRate, cf.OCRatio,
			cf.ICRatio, cf.FeesPaid, cf.ExcessSpread)
	}

	fmt.Printf(`"tranche","original_balance","final_balance","principal_paid","interest_paid","wal","paid_down_pct"` + "\n")
	for _, summary := range summaries {
		fmt.Printf(`"%s","%.2f","%.2f","%.2f","%.2f","%.2f","%.1f"`+"\n",
			summary.Name, summary.OriginalBalance, summary.FinalBalance,
			summary.PrincipalPaid, summary.InterestPaid, summary.WAL, summary.PaidDownPercent)
	}
}

// DealsPretty outputs the filtered issuance list plus summary statistics.
func DealsPretty(records []market.DealRecord, stats market.SummaryStats) {
	p := message.NewPrinter(language.English)
	fmt.Printf("--- New Issuance ---\n")
	for _, record := range records {
		_, _ = p.Printf("%s | %s | %s | $%.1fM | priced %s | %s\n",
			record.DealName, record.Issuer, record.CollateralType,
			record.TotalSize, record.PricingDate, record.Bookrunner)
		for _, tranche := range record.Tranches {
			_, _ = p.Printf("    %-7s | $%.1fM | %-4s | +%.0fbps | %.2fyr WAL | %.1f%% CE\n",
				tranche.Class, tranche.Size, tranche.Rating, tranche.Spread,
				tranche.WAL, tranche.CreditEnhancement)
		}
	}

	_, _ = p.Printf("\n%d deals, $%.1fM total volume, $%.1fM average size\n",
		stats.TotalDeals, stats.TotalVolume, stats.AverageDealSize)
	for _, collateral := range sortedKeys(stats.ByCollateral) {
		_, _ = p.Printf("  %s: $%.1fM\n", collateral, stats.ByCollateral[collateral])
	}
}

// DealsCSV outputs one row per tranche in comma-separated value format.
func DealsCSV(records []market.DealRecord, stats market.SummaryStats) {
	fmt.Printf(`"deal","issuer","collateral","deal_size_mm","pricing_date","bookrunner","tranche","tranche_size_mm","rating","spread_bps","wal_yrs","ce_pct"` + "\n")
	for _, record := range records {
		for _, tranche := range record.Tranches {
			fmt.Printf(`"%s","%s","%s","%.1f","%s","%s","%s","%.1f","%s","%.0f","%.2f","%.1f"`+"\n",
				record.DealName, record.Issuer, record.CollateralType,
				record.TotalSize, record.PricingDate, record.Bookrunner,
				tranche.Class, tranche.Size, tranche.Rating, tranche.Spread,
				tranche.WAL, tranche.CreditEnhancement)
		}
	}
}

// SpreadsPretty outputs sector snapshots with z-scores, then the generated
// history.
func SpreadsPretty(snapshots []market.SpreadSnapshot, history map[string][]market.HistoryPoint) {
	fmt.Printf("--- Sector Spreads ---\n")
	fmt.Printf("Sector             | Current | Benchmark | YTD   | 1Y Avg | 1Y Range    | Z-Score\n")
	for _, snapshot := range snapshots {
		fmt.Printf("%-18s | %4.0fbps | %-9s | %+4.0f  | %4.0f   | %4.0f - %4.0f | %+.2f\n",
			snapshot.Sector, snapshot.CurrentSpread, snapshot.Benchmark,
			snapshot.YTDChange, snapshot.OneYearAvg, snapshot.OneYearMin,
			snapshot.OneYearMax, snapshot.ZScore())
	}

	if len(history) == 0 {
		return
	}
	fmt.Printf("\nGenerated History (bps)\n")
	for _, sector := range sortedHistoryKeys(history) {
		parts := make([]string, 0, len(history[sector]))
		for _, point := range history[sector] {
			parts = append(parts, fmt.Sprintf("%.0f", point.Spread))
		}
		fmt.Printf("%-18s | %s\n", sector, strings.Join(parts, " "))
	}
}

// SpreadsCSV outputs snapshots then history rows in comma-separated value
// format.
func SpreadsCSV(snapshots []market.SpreadSnapshot, history map[string][]market.HistoryPoint) {
	fmt.Printf(`"sector","current_bps","benchmark","ytd_change","one_year_avg","one_year_min","one_year_max","z_score"` + "\n")
	for _, snapshot := range snapshots {
		fmt.Printf(`"%s","%.0f","%s","%.0f","%.0f","%.0f","%.0f","%.4f"`+"\n",
			snapshot.Sector, snapshot.CurrentSpread, snapshot.Benchmark,
			snapshot.YTDChange, snapshot.OneYearAvg, snapshot.OneYearMin,
			snapshot.OneYearMax, snapshot.ZScore())
	}

	if len(history) == 0 {
		return
	}
	fmt.Printf(`"sector","months_ago","spread_bps"` + "\n")
	for _, sector := range sortedHistoryKeys(history) {
		for _, point := range history[sector] {
			fmt.Printf(`"%s","%d","%.2f"`+"\n", sector, point.MonthsAgo, point.Spread)
		}
	}
}

func triggerBreaches(flows []cashflow.PeriodCashFlow) map[string]int {
	breaches := make(map[string]int)
	for _, cf := range flows {
		for name, passed := range cf.TriggerStatus {
			if !passed {
				breaches[name]++
			}
		}
	}
	return breaches
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func sortedHistoryKeys(history map[string][]market.HistoryPoint) []string {
	keys := make([]string, 0, len(history))
	for key := range history {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
