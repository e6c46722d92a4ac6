package deal

import "fmt"

// Template names accepted by FromTemplate and the deal.template config key.
const (
	TemplateACMAT        = "ACMAT 2025-4"
	TemplateSubprimeAuto = "Subprime Auto"
	TemplateCLO          = "CLO"
)

// NewACMAT2025_4 builds the ACMAT 2025-4 buy-here-pay-here auto deal.
func NewACMAT2025_4() *Structure {
	return &Structure{
		DealName:    TemplateACMAT,
		Issuer:      "America's Car-Mart",
		PricingDate: "2025-12-10",
		ClosingDate: "2025-12-17",
		Collateral: CollateralPool{
			OriginalBalance:         161_300_000,
			CurrentBalance:          161_300_000,
			CollateralType:          CollateralSubprimeAuto,
			WeightedAverageCoupon:   0.24, // deep subprime APRs
			WeightedAverageMaturity: 42,
			WeightedAverageLife:     2.5,
			WeightedAverageFICO:     550,
			WeightedAverageLTV:      1.15,
		},
		Tranches: []Tranche{
			{
				Name:            "Class A",
				OriginalBalance: 128_200_000,
				CurrentBalance:  128_200_000,
				CouponType:      CouponFloating,
				Spread:          0.0240,
				Index:           "SOFR",
				Ratings:         []Rating{{Agency: AgencySP, Rating: "A"}},
			},
			{
				Name:            "Class B",
				OriginalBalance: 33_100_000,
				CurrentBalance:  33_100_000,
				CouponType:      CouponFloating,
				Spread:          0.0600,
				Index:           "SOFR",
				Ratings:         []Rating{{Agency: AgencySP, Rating: "BBB"}},
			},
		},
		Triggers: []TriggerTest{
			{Name: "OC Test", TestType: TriggerOC, Threshold: 110.0, Comparison: ">=",
				Consequence: "Trap cash to pay down Class A"},
			{Name: "CNL Trigger", TestType: TriggerCNL, Threshold: 25.0, Comparison: "<=",
				Consequence: "Switch to sequential pay, turbo Class A"},
			{Name: "Delinquency Trigger", TestType: TriggerDelinquency, Threshold: 10.0, Comparison: "<=",
				Consequence: "Increase reserve account target"},
		},
		Fees: []Fee{
			{Name: "Servicer Fee", Rate: 0.04, Basis: FeeBasisCollateral, Priority: 1},
			{Name: "Trustee Fee", Rate: 0.0002, Basis: FeeBasisCollateral, Priority: 2},
			{Name: "Admin Fee", Rate: 0.0005, Basis: FeeBasisCollateral, Priority: 3},
		},
		Reserves: []ReserveAccount{
			{Name: "Reserve Account", TargetBalance: 1_613_000, CurrentBalance: 1_613_000, FundedAtClose: true},
		},
		PaymentPriority: PrioritySequential,
		Bookrunner:      "Deutsche Bank",
		Format:          "144A",
		Shelf:           "ACM Auto Trust",
		Series:          "2025-4",
	}
}

// NewSubprimeAutoTemplate builds a generic subprime auto ABS structure.
func NewSubprimeAutoTemplate() *Structure {
	return &Structure{
		DealName: "Subprime Auto Template",
		Issuer:   "[Issuer]",
		Collateral: CollateralPool{
			OriginalBalance:         500_000_000,
			CurrentBalance:          500_000_000,
			CollateralType:          CollateralSubprimeAuto,
			WeightedAverageCoupon:   0.18,
			WeightedAverageMaturity: 48,
			WeightedAverageLife:     2.8,
			WeightedAverageFICO:     580,
			WeightedAverageLTV:      1.05,
		},
		Tranches: []Tranche{
			{Name: "Class A-1", OriginalBalance: 100_000_000, CurrentBalance: 100_000_000,
				CouponType: CouponFloating, Spread: 0.0065,
				Ratings: []Rating{{Agency: AgencySP, Rating: "AAA"}}},
			{Name: "Class A-2", OriginalBalance: 200_000_000, CurrentBalance: 200_000_000,
				CouponType: CouponFloating, Spread: 0.0085,
				Ratings: []Rating{{Agency: AgencySP, Rating: "AAA"}}},
			{Name: "Class B", OriginalBalance: 75_000_000, CurrentBalance: 75_000_000,
				CouponType: CouponFloating, Spread: 0.0150,
				Ratings: []Rating{{Agency: AgencySP, Rating: "AA"}}},
			{Name: "Class C", OriginalBalance: 50_000_000, CurrentBalance: 50_000_000,
				CouponType: CouponFloating, Spread: 0.0225,
				Ratings: []Rating{{Agency: AgencySP, Rating: "A"}}},
			{Name: "Class D", OriginalBalance: 37_500_000, CurrentBalance: 37_500_000,
				CouponType: CouponFloating, Spread: 0.0350,
				Ratings: []Rating{{Agency: AgencySP, Rating: "BBB"}}},
			{Name: "Class E", OriginalBalance: 25_000_000, CurrentBalance: 25_000_000,
				CouponType: CouponFloating, Spread: 0.0550,
				Ratings: []Rating{{Agency: AgencySP, Rating: "BB"}}},
			{Name: "Residual", OriginalBalance: 12_500_000, CurrentBalance: 12_500_000,
				CouponType: CouponFloating, Spread: 0.0,
				Ratings: []Rating{{Agency: AgencySP, Rating: "NR"}}},
		},
		Triggers: []TriggerTest{
			{Name: "Senior OC Test", TestType: TriggerOC, Threshold: 115.0, Comparison: ">=",
				Consequence: "Trap cash, pay down senior"},
			{Name: "Mezz OC Test", TestType: TriggerOC, Threshold: 108.0, Comparison: ">=",
				Consequence: "Trap cash, pay down through Class D"},
			{Name: "IC Test", TestType: TriggerIC, Threshold: 1.50, Comparison: ">=",
				Consequence: "Redirect interest to senior"},
			{Name: "CNL Trigger - Step 1", TestType: TriggerCNL, Threshold: 12.0, Comparison: "<=",
				Consequence: "Switch to sequential pay"},
			{Name: "CNL Trigger - Step 2", TestType: TriggerCNL, Threshold: 18.0, Comparison: "<=",
				Consequence: "Turbo senior amortization"},
			{Name: "60+ Day Delinquency", TestType: TriggerDelinquency, Threshold: 8.0, Comparison: "<=",
				Consequence: "Increase reserve target"},
		},
		Fees: []Fee{
			{Name: "Servicer Fee", Rate: 0.0100, Basis: FeeBasisCollateral, Priority: 1},
			{Name: "Backup Servicer Fee", Rate: 0.0005, Basis: FeeBasisCollateral, Priority: 2},
			{Name: "Trustee Fee", Rate: 0.0002, Basis: FeeBasisNotes, Priority: 3},
			{Name: "Admin Fee", Rate: 0.0003, Basis: FeeBasisNotes, Priority: 4},
		},
		PaymentPriority: PrioritySequential,
	}
}

// NewCLOTemplate builds a generic broadly-syndicated-loan CLO structure.
func NewCLOTemplate() *Structure {
	return &Structure{
		DealName: "CLO Template",
		Issuer:   "[Manager]",
		Collateral: CollateralPool{
			OriginalBalance:         400_000_000,
			CurrentBalance:          400_000_000,
			CollateralType:          CollateralCLO,
			WeightedAverageCoupon:   0.0950, // SOFR plus roughly 400bps
			WeightedAverageMaturity: 60,
			WeightedAverageLife:     4.5,
		},
		Tranches: []Tranche{
			{Name: "Class A", OriginalBalance: 248_000_000, CurrentBalance: 248_000_000,
				CouponType: CouponFloating, Spread: 0.0138,
				Ratings: []Rating{{Agency: AgencySP, Rating: "AAA"}, {Agency: AgencyMoodys, Rating: "Aaa"}}},
			{Name: "Class B", OriginalBalance: 40_000_000, CurrentBalance: 40_000_000,
				CouponType: CouponFloating, Spread: 0.0190,
				Ratings: []Rating{{Agency: AgencySP, Rating: "AA"}}},
			{Name: "Class C", OriginalBalance: 28_000_000, CurrentBalance: 28_000_000,
				CouponType: CouponFloating, Spread: 0.0260,
				Ratings: []Rating{{Agency: AgencySP, Rating: "A"}}},
			{Name: "Class D", OriginalBalance: 24_000_000, CurrentBalance: 24_000_000,
				CouponType: CouponFloating, Spread: 0.0385,
				Ratings: []Rating{{Agency: AgencySP, Rating: "BBB"}}},
			{Name: "Class E", OriginalBalance: 20_000_000, CurrentBalance: 20_000_000,
				CouponType: CouponFloating, Spread: 0.0675,
				Ratings: []Rating{{Agency: AgencySP, Rating: "BB"}}},
			{Name: "Equity", OriginalBalance: 40_000_000, CurrentBalance: 40_000_000,
				CouponType: CouponFloating, Spread: 0.0,
				Ratings: []Rating{{Agency: AgencySP, Rating: "NR"}}},
		},
		Triggers: []TriggerTest{
			{Name: "Class A/B OC Test", TestType: TriggerOC, Threshold: 120.0, Comparison: ">=",
				Consequence: "Trap excess interest, pay down Class A"},
			{Name: "Class C OC Test", TestType: TriggerOC, Threshold: 112.0, Comparison: ">=",
				Consequence: "Trap excess interest"},
			{Name: "Class D OC Test", TestType: TriggerOC, Threshold: 107.0, Comparison: ">=",
				Consequence: "Trap excess interest"},
			{Name: "Class A/B IC Test", TestType: TriggerIC, Threshold: 1.20, Comparison: ">=",
				Consequence: "Redirect interest to senior"},
			{Name: "Class C IC Test", TestType: TriggerIC, Threshold: 1.15, Comparison: ">=",
				Consequence: "Redirect interest"},
			{Name: "Class D IC Test", TestType: TriggerIC, Threshold: 1.10, Comparison: ">=",
				Consequence: "Redirect interest"},
		},
		Fees: []Fee{
			{Name: "Senior Management Fee", Rate: 0.0015, Basis: FeeBasisCollateral, Priority: 1},
			{Name: "Trustee Fee", Rate: 0.0002, Basis: FeeBasisCollateral, Priority: 2},
			{Name: "Admin Fee", Rate: 0.0003, Basis: FeeBasisCollateral, Priority: 3},
			{Name: "Subordinated Management Fee", Rate: 0.0035, Basis: FeeBasisCollateral, Priority: 99, IsSubordinated: true},
		},
		PaymentPriority:    PrioritySequential,
		ReinvestmentPeriod: 48,
	}
}

// templates maps template names to their constructors. Each call builds a
// fresh Structure so callers can mutate results freely.
var templates = map[string]func() *Structure{
	TemplateACMAT:        NewACMAT2025_4,
	TemplateSubprimeAuto: NewSubprimeAutoTemplate,
	TemplateCLO:          NewCLOTemplate,
}

// TemplateNames returns the names of the built-in deal templates.
func TemplateNames() []string {
	return []string{TemplateACMAT, TemplateSubprimeAuto, TemplateCLO}
}

// FromTemplate builds a fresh Structure for the named template.
func FromTemplate(name string) (*Structure, error) {
	constructor, ok := templates[name]
	if !ok {
		return nil, fmt.Errorf("unknown deal template %q; available templates are %v", name, TemplateNames())
	}
	return constructor(), nil
}
