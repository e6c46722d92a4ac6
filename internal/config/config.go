// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"
	"io"

	"github.com/spf13/viper"
	"github.com/structcred/abf-portal/internal/deal"
	"github.com/structcred/abf-portal/pkg/constants"
)

// Configuration holds all configuration for abf-portal.
type Configuration struct {
	Logging   LoggingConfig `yaml:"logging,omitempty"`
	Output    OutputConfig  `yaml:"output,omitempty"`
	Report    string        `yaml:"report,omitempty"` // projection, waterfall, deals, spreads
	Deal      DealConfig    `yaml:"deal,omitempty"`
	Pool      PoolConfig    `yaml:"pool,omitempty"`
	Scenarios []Scenario
	Filters   FilterConfig `yaml:"filters,omitempty"`
	Spreads   SpreadConfig `yaml:"spreads,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// DealConfig selects the deal structure used by the waterfall report.
type DealConfig struct {
	Template string `yaml:"template,omitempty"`
}

// PoolConfig parameterizes the simplified projection report.
type PoolConfig struct {
	InitialBalance float64 `yaml:"initialBalance,omitempty"`
	HorizonMonths  int     `yaml:"horizonMonths,omitempty"`
}

// Scenario holds one named assumption set. Rates are annualized percentages;
// Severity is applied as a recovery percentage on defaulted balance.
type Scenario struct {
	Name   string
	Active bool

	CPR       float64
	CDR       float64
	Severity  float64
	IndexRate float64 `yaml:"indexRate,omitempty"` // percent

	PrepaymentModel string          `yaml:"prepaymentModel,omitempty"` // constant, ramp, vector, seasonal
	RampMonths      int             `yaml:"rampMonths,omitempty"`
	PrepayVector    []float64       `yaml:"prepayVector,omitempty"` // percents
	SeasonalFactors map[int]float64 `yaml:"seasonalFactors,omitempty"`

	DefaultModel  string    `yaml:"defaultModel,omitempty"` // constant, frontloaded, backloaded, sda, vector
	PeakMonth     int       `yaml:"peakMonth,omitempty"`
	DefaultVector []float64 `yaml:"defaultVector,omitempty"` // percents
	RecoveryLag   int       `yaml:"recoveryLag,omitempty"`   // months
}

// FilterConfig narrows the deals report.
type FilterConfig struct {
	CollateralType string   `yaml:"collateralType,omitempty"`
	Ratings        []string `yaml:"ratings,omitempty"`
	MinSpread      float64  `yaml:"minSpread,omitempty"`
	MaxSpread      float64  `yaml:"maxSpread,omitempty"`
	MinSize        float64  `yaml:"minSize,omitempty"`
	DateFrom       string   `yaml:"dateFrom,omitempty"`
	DateTo         string   `yaml:"dateTo,omitempty"`
}

// SpreadConfig parameterizes the spreads report.
type SpreadConfig struct {
	Sectors []string `yaml:"sectors,omitempty"`
	Months  int      `yaml:"months,omitempty"`
	Seed    int64    `yaml:"seed,omitempty"` // zero seeds from the current time
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.applyDefaults()
	return &configuration, nil
}

// LoadConfigurationFromReader loads YAML configuration from an in-memory
// reader. Used by tests.
func LoadConfigurationFromReader(reader io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(reader); err != nil {
		return nil, fmt.Errorf("error reading config, %s", err)
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.applyDefaults()
	return &configuration, nil
}

// applyDefaults fills unset fields with the standard values.
func (c *Configuration) applyDefaults() {
	if c.Report == "" {
		c.Report = constants.ReportProjection
	}
	if c.Deal.Template == "" {
		c.Deal.Template = deal.TemplateSubprimeAuto
	}
	if c.Pool.InitialBalance == 0 {
		c.Pool.InitialBalance = 500
	}
	if c.Pool.HorizonMonths == 0 {
		c.Pool.HorizonMonths = constants.DefaultHorizonMonths
	}
	if c.Spreads.Months == 0 {
		c.Spreads.Months = constants.DefaultHistoryMonths
	}
	for i := range c.Scenarios {
		if c.Scenarios[i].IndexRate == 0 {
			c.Scenarios[i].IndexRate = constants.DefaultIndexRate
		}
		if c.Scenarios[i].RecoveryLag == 0 {
			c.Scenarios[i].RecoveryLag = 6
		}
	}
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. Out-of-range scenario rates are clamped into [0, 100]
// with a warning rather than failing the run.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	clamp := func(scenario *Scenario, name string, value *float64) {
		if *value < 0 {
			warnings = append(warnings, fmt.Sprintf("scenario %s: %s %.2f below 0, clamped to 0", scenario.Name, name, *value))
			*value = 0
		} else if *value > 100 {
			warnings = append(warnings, fmt.Sprintf("scenario %s: %s %.2f above 100, clamped to 100", scenario.Name, name, *value))
			*value = 100
		}
	}

	for i := range c.Scenarios {
		scenario := &c.Scenarios[i]
		if !scenario.Active {
			warnings = append(warnings, fmt.Sprintf("scenario %s is inactive and will be skipped", scenario.Name))
			continue
		}
		clamp(scenario, "cpr", &scenario.CPR)
		clamp(scenario, "cdr", &scenario.CDR)
		clamp(scenario, "severity", &scenario.Severity)
	}

	return warnings
}

// Validate checks for hard configuration errors that must fail the run.
func (c *Configuration) Validate() error {
	if c.Pool.InitialBalance <= 0 {
		return fmt.Errorf("pool initialBalance must be positive, got %.2f", c.Pool.InitialBalance)
	}
	if c.Pool.HorizonMonths < 1 {
		return fmt.Errorf("pool horizonMonths must be at least 1, got %d", c.Pool.HorizonMonths)
	}
	if _, err := deal.FromTemplate(c.Deal.Template); err != nil {
		return err
	}
	if len(c.ActiveScenarios()) == 0 {
		return fmt.Errorf("no active scenarios configured")
	}
	return nil
}

// ActiveScenarios returns the scenarios marked active, in config order.
func (c *Configuration) ActiveScenarios() []Scenario {
	active := make([]Scenario, 0, len(c.Scenarios))
	for i := range c.Scenarios {
		if c.Scenarios[i].Active {
			active = append(active, c.Scenarios[i])
		}
	}
	return active
}
