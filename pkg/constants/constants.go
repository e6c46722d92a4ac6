// Package constants provides shared constants used throughout the abf-portal application.
package constants

// DateTimeLayout is the month-granularity date format used in config files and
// report output.
const DateTimeLayout = "2006-01"

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// DefaultHorizonMonths is the default projection horizon
	DefaultHorizonMonths = 60

	// DefaultIndexRate is the fallback floating-rate index level in percent
	DefaultIndexRate = 4.33

	// DefaultHistoryMonths is the default length of generated spread history
	DefaultHistoryMonths = 24
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Report type constants
const (
	// ReportProjection runs the simplified amortization projector
	ReportProjection = "projection"

	// ReportWaterfall runs the full cash flow engine
	ReportWaterfall = "waterfall"

	// ReportDeals lists the issuance database with filters applied
	ReportDeals = "deals"

	// ReportSpreads renders sector spread snapshots and history
	ReportSpreads = "spreads"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"
)
