package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/structcred/abf-portal/internal/cashflow"
	"github.com/structcred/abf-portal/internal/config"
	"github.com/structcred/abf-portal/internal/deal"
	"github.com/structcred/abf-portal/internal/market"
	"github.com/structcred/abf-portal/internal/projector"
	"github.com/structcred/abf-portal/pkg/constants"
	"github.com/structcred/abf-portal/pkg/output"
	"github.com/structcred/abf-portal/pkg/validation"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info" // Default to info level
	}

	// Parse log level
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	// Determine output format
	format := loggingConfig.Format
	if format == "" {
		format = "json" // Default to JSON for production
	}

	// Configure encoder
	var config zap.Config
	switch format {
	case "console":
		config = zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		config = zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	// Configure output file if specified
	if loggingConfig.OutputFile != "" {
		// Ensure the directory exists
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		// Test if we can create/write to the file
		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		config.OutputPaths = []string{loggingConfig.OutputFile}
		config.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return config.Build()
}

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	reportFlag := flag.String("report", "", "report override: projection, waterfall, deals, spreads")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	seedFlag := flag.Int64("seed", 0, "spread history seed override (0 seeds from the current time)")
	flag.Parse()

	// Load the config file to get logging configuration
	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}

	// Initialize logging based on config and CLI override
	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty // Default to pretty format
	}

	err = validation.ValidateOutputFormat(outputFormat)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	// Determine report type (CLI override takes precedence over config)
	report := conf.Report
	if *reportFlag != "" {
		report = *reportFlag
	}
	err = validation.ValidateReportType(report)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	// Validate configuration and display any warnings
	warnings := conf.ValidateConfiguration()
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	err = conf.Validate()
	if err != nil {
		logger.Fatal("invalid configuration",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	switch report {
	case constants.ReportProjection:
		runProjection(logger, conf, outputFormat)
	case constants.ReportWaterfall:
		runWaterfall(logger, conf, outputFormat)
	case constants.ReportDeals:
		runDeals(conf, outputFormat)
	case constants.ReportSpreads:
		runSpreads(logger, conf, outputFormat, *seedFlag)
	}
}

// runProjection runs the simplified amortization projector for every active
// scenario against the legacy three-class stack.
func runProjection(logger *zap.Logger, conf *config.Configuration, outputFormat string) {
	tranches := projector.StandardTranches(conf.Pool.InitialBalance)

	var results []projector.Result
	for _, scenario := range conf.ActiveScenarios() {
		records, err := projector.Project(logger, scenario.ProjectorAssumptions(conf.Pool.InitialBalance), tranches, conf.Pool.HorizonMonths)
		if err != nil {
			logger.Fatal("failed to compute projection",
				zap.String("op", "main"),
				zap.String("scenario", scenario.Name),
				zap.Error(err),
			)
		}
		results = append(results, projector.Result{Scenario: scenario.Name, Records: records})
	}

	switch outputFormat {
	case constants.OutputFormatPretty:
		output.ProjectionPretty(results)
	case constants.OutputFormatCSV:
		output.ProjectionCSV(results)
	}
}

// runWaterfall runs the full cash flow engine for every active scenario. Each
// scenario gets a fresh deal structure from the template.
func runWaterfall(logger *zap.Logger, conf *config.Configuration, outputFormat string) {
	for _, scenario := range conf.ActiveScenarios() {
		d, err := deal.FromTemplate(conf.Deal.Template)
		if err != nil {
			logger.Fatal("failed to build deal structure",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}

		engine := cashflow.NewEngine(logger, d, scenario.CashflowScenario(conf.Pool.HorizonMonths))
		flows := engine.Run()
		summaries := engine.TrancheSummaries()

		switch outputFormat {
		case constants.OutputFormatPretty:
			output.WaterfallPretty(d.DealName, scenario.Name, flows, summaries)
		case constants.OutputFormatCSV:
			output.WaterfallCSV(d.DealName, scenario.Name, flows, summaries)
		}
	}
}

// runDeals applies the configured filters to the issuance records.
func runDeals(conf *config.Configuration, outputFormat string) {
	filter := market.Filter{
		CollateralType: conf.Filters.CollateralType,
		Ratings:        conf.Filters.Ratings,
		MinSpread:      conf.Filters.MinSpread,
		MaxSpread:      conf.Filters.MaxSpread,
		MinSize:        conf.Filters.MinSize,
		DateFrom:       conf.Filters.DateFrom,
		DateTo:         conf.Filters.DateTo,
	}
	records := filter.Apply(market.SampleDeals())
	stats := market.Summarize(records)

	switch outputFormat {
	case constants.OutputFormatPretty:
		output.DealsPretty(records, stats)
	case constants.OutputFormatCSV:
		output.DealsCSV(records, stats)
	}
}

// runSpreads renders sector snapshots plus a generated history. The CLI seed
// flag wins over the config seed; when both are zero the history is seeded
// from the current time so repeated runs vary.
func runSpreads(logger *zap.Logger, conf *config.Configuration, outputFormat string, seedOverride int64) {
	sectors := conf.Spreads.Sectors
	if len(sectors) == 0 {
		sectors = market.Sectors()
	}

	seed := conf.Spreads.Seed
	if seedOverride != 0 {
		seed = seedOverride
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	snapshots := market.Snapshots(sectors)
	history := market.History(logger, seed, conf.Spreads.Months, sectors)

	switch outputFormat {
	case constants.OutputFormatPretty:
		output.SpreadsPretty(snapshots, history)
	case constants.OutputFormatCSV:
		output.SpreadsCSV(snapshots, history)
	}
}
