// Package market provides the static issuance database and sector spread
// analytics. All data is immutable reference data built at load time; there
// is no network fetch or persistence.
package market

// TrancheRecord is one tranche line in an issuance record. Sizes are in $M,
// spreads in bps.
type TrancheRecord struct {
	Class             string
	Size              float64
	Rating            string
	Spread            float64
	WAL               float64 // years
	CreditEnhancement float64 // percent
	Coupon            float64 // fixed coupon when applicable
	Yield             float64
}

// DealRecord is a complete new-issue record.
type DealRecord struct {
	DealName       string
	Issuer         string
	CollateralType string
	TotalSize      float64 // $M
	PricingDate    string  // YYYY-MM-DD
	Bookrunner     string
	Format         string
	Shelf          string
	Series         string
	ClosingDate    string
	Notes          string
	Tranches       []TrancheRecord
}

// SampleDeals returns the built-in issuance records, freshly constructed per
// call so callers can never corrupt the shared data.
func SampleDeals() []DealRecord {
	return []DealRecord{
		{
			DealName:       "ACMAT 2025-4",
			Issuer:         "America's Car-Mart",
			CollateralType: "Subprime Auto",
			TotalSize:      161.3,
			PricingDate:    "2025-12-10",
			Bookrunner:     "Deutsche Bank",
			Format:         "144A",
			Shelf:          "ACM Auto Trust",
			Series:         "2025-4",
			Notes:          "BHPH originator, 9th ABS issuance",
			Tranches: []TrancheRecord{
				{Class: "A", Size: 128.2, Rating: "A", Spread: 240, WAL: 1.13, CreditEnhancement: 57.1, Coupon: 5.87, Yield: 5.944},
				{Class: "B", Size: 33.1, Rating: "BBB", Spread: 600, WAL: 3.14, CreditEnhancement: 45.5, Coupon: 8.42, Yield: 9.575},
			},
		},
		{
			DealName:       "DRIVE 2025-5",
			Issuer:         "Santander Drive",
			CollateralType: "Subprime Auto",
			TotalSize:      1250.0,
			PricingDate:    "2025-12-08",
			Bookrunner:     "Santander",
			Format:         "144A",
			Shelf:          "Santander Drive Auto",
			Series:         "2025-5",
			Tranches: []TrancheRecord{
				{Class: "A-1", Size: 350.0, Rating: "AAA", Spread: 65, WAL: 0.52, CreditEnhancement: 52.0},
				{Class: "A-2", Size: 500.0, Rating: "AAA", Spread: 85, WAL: 1.85, CreditEnhancement: 52.0},
				{Class: "B", Size: 150.0, Rating: "AA", Spread: 125, WAL: 2.50, CreditEnhancement: 40.0},
				{Class: "C", Size: 100.0, Rating: "A", Spread: 175, WAL: 3.20, CreditEnhancement: 32.0},
				{Class: "D", Size: 75.0, Rating: "BBB", Spread: 300, WAL: 3.80, CreditEnhancement: 26.0},
				{Class: "E", Size: 75.0, Rating: "BB", Spread: 500, WAL: 4.10, CreditEnhancement: 20.0},
			},
		},
		{
			DealName:       "WLAKE 2025-4",
			Issuer:         "Westlake Financial",
			CollateralType: "Subprime Auto",
			TotalSize:      987.5,
			PricingDate:    "2025-12-05",
			Bookrunner:     "J.P. Morgan",
			Format:         "144A",
			Shelf:          "Westlake Auto Receivables",
			Series:         "2025-4",
			Tranches: []TrancheRecord{
				{Class: "A-1", Size: 275.0, Rating: "AAA", Spread: 60, WAL: 0.48, CreditEnhancement: 54.0},
				{Class: "A-2", Size: 400.0, Rating: "AAA", Spread: 80, WAL: 1.75, CreditEnhancement: 54.0},
				{Class: "B", Size: 125.0, Rating: "AA", Spread: 115, WAL: 2.40, CreditEnhancement: 41.0},
				{Class: "C", Size: 87.5, Rating: "A", Spread: 165, WAL: 3.10, CreditEnhancement: 32.0},
				{Class: "D", Size: 62.5, Rating: "BBB", Spread: 275, WAL: 3.70, CreditEnhancement: 26.0},
				{Class: "E", Size: 37.5, Rating: "BB", Spread: 475, WAL: 4.00, CreditEnhancement: 22.0},
			},
		},
		{
			DealName:       "CARMX 2025-4",
			Issuer:         "CarMax Auto",
			CollateralType: "Prime Auto",
			TotalSize:      1500.0,
			PricingDate:    "2025-12-03",
			Bookrunner:     "BofA Securities",
			Format:         "144A",
			Shelf:          "CarMax Auto Owner Trust",
			Series:         "2025-4",
			Tranches: []TrancheRecord{
				{Class: "A-1", Size: 450.0, Rating: "AAA", Spread: 35, WAL: 0.45, CreditEnhancement: 8.0},
				{Class: "A-2", Size: 750.0, Rating: "AAA", Spread: 50, WAL: 1.65, CreditEnhancement: 8.0},
				{Class: "A-3", Size: 200.0, Rating: "AAA", Spread: 55, WAL: 2.80, CreditEnhancement: 8.0},
				{Class: "B", Size: 50.0, Rating: "AA", Spread: 85, WAL: 3.20, CreditEnhancement: 5.0},
				{Class: "C", Size: 50.0, Rating: "A", Spread: 110, WAL: 3.50, CreditEnhancement: 2.0},
			},
		},
		{
			DealName:       "DLLMT 2025-3",
			Issuer:         "De Lage Landen",
			CollateralType: "Equipment",
			TotalSize:      650.0,
			PricingDate:    "2025-11-28",
			Bookrunner:     "Citi",
			Format:         "144A",
			Shelf:          "DLL Trust",
			Series:         "2025-3",
			Notes:          "Agricultural and construction equipment",
			Tranches: []TrancheRecord{
				{Class: "A-1", Size: 200.0, Rating: "AAA", Spread: 45, WAL: 0.55, CreditEnhancement: 12.0},
				{Class: "A-2", Size: 350.0, Rating: "AAA", Spread: 60, WAL: 2.10, CreditEnhancement: 12.0},
				{Class: "B", Size: 60.0, Rating: "AA", Spread: 95, WAL: 2.80, CreditEnhancement: 7.0},
				{Class: "C", Size: 40.0, Rating: "A", Spread: 135, WAL: 3.20, CreditEnhancement: 3.0},
			},
		},
		{
			DealName:       "MFGLN 2025-2",
			Issuer:         "Marlette Funding",
			CollateralType: "Consumer",
			TotalSize:      425.0,
			PricingDate:    "2025-11-25",
			Bookrunner:     "Goldman Sachs",
			Format:         "144A",
			Shelf:          "Marlette Funding Trust",
			Series:         "2025-2",
			Notes:          "Personal loans originated via Best Egg",
			Tranches: []TrancheRecord{
				{Class: "A", Size: 300.0, Rating: "AAA", Spread: 95, WAL: 0.85, CreditEnhancement: 35.0},
				{Class: "B", Size: 60.0, Rating: "A", Spread: 185, WAL: 1.20, CreditEnhancement: 21.0},
				{Class: "C", Size: 40.0, Rating: "BBB", Spread: 350, WAL: 1.45, CreditEnhancement: 12.0},
				{Class: "D", Size: 25.0, Rating: "BB", Spread: 575, WAL: 1.65, CreditEnhancement: 6.0},
			},
		},
		{
			DealName:       "OAKCL 2025-4",
			Issuer:         "Oak Hill Advisors",
			CollateralType: "CLO",
			TotalSize:      500.0,
			PricingDate:    "2025-12-01",
			Bookrunner:     "Morgan Stanley",
			Format:         "144A",
			Shelf:          "Oak Hill CLO",
			Series:         "2025-4",
			Notes:          "4-year reinvestment period",
			Tranches: []TrancheRecord{
				{Class: "A", Size: 310.0, Rating: "AAA", Spread: 135, WAL: 5.20, CreditEnhancement: 38.0},
				{Class: "B", Size: 50.0, Rating: "AA", Spread: 185, WAL: 6.10, CreditEnhancement: 28.0},
				{Class: "C", Size: 35.0, Rating: "A", Spread: 245, WAL: 6.80, CreditEnhancement: 21.0},
				{Class: "D", Size: 30.0, Rating: "BBB", Spread: 380, WAL: 7.20, CreditEnhancement: 15.0},
				{Class: "E", Size: 25.0, Rating: "BB", Spread: 650, WAL: 7.50, CreditEnhancement: 10.0},
				{Class: "Equity", Size: 50.0, Rating: "NR", Spread: 0, WAL: 8.00, CreditEnhancement: 0.0},
			},
		},
		{
			DealName:       "AMCAR 2025-3",
			Issuer:         "AmeriCredit",
			CollateralType: "Subprime Auto",
			TotalSize:      1100.0,
			PricingDate:    "2025-11-20",
			Bookrunner:     "Barclays",
			Format:         "144A",
			Shelf:          "AmeriCredit Automobile Receivables",
			Series:         "2025-3",
			Tranches: []TrancheRecord{
				{Class: "A-1", Size: 300.0, Rating: "AAA", Spread: 55, WAL: 0.50, CreditEnhancement: 50.0},
				{Class: "A-2", Size: 450.0, Rating: "AAA", Spread: 75, WAL: 1.70, CreditEnhancement: 50.0},
				{Class: "B", Size: 130.0, Rating: "AA", Spread: 110, WAL: 2.35, CreditEnhancement: 38.0},
				{Class: "C", Size: 95.0, Rating: "A", Spread: 155, WAL: 3.00, CreditEnhancement: 30.0},
				{Class: "D", Size: 70.0, Rating: "BBB", Spread: 260, WAL: 3.55, CreditEnhancement: 23.5},
				{Class: "E", Size: 55.0, Rating: "BB", Spread: 450, WAL: 3.90, CreditEnhancement: 18.5},
			},
		},
	}
}
