package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rustyeddy/riskreport/market"
	"github.com/rustyeddy/riskreport/report"
	"github.com/rustyeddy/riskreport/risk"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Insufficient-data policies.
const (
	InsufficientOmit = "omit" // drop securities with fewer than two returns
	InsufficientNaN  = "nan"  // keep them with NaN metrics
)

// Config represents a complete risk report run
type Config struct {
	Input   InputConfig   `json:"input" yaml:"input" mapstructure:"input"`
	Risk    RiskConfig    `json:"risk" yaml:"risk" mapstructure:"risk"`
	Report  ReportConfig  `json:"report" yaml:"report" mapstructure:"report"`
	Logging LoggingConfig `json:"logging" yaml:"logging" mapstructure:"logging"`
}

// InputConfig describes the price file
type InputConfig struct {
	Path         string   `json:"path" yaml:"path" mapstructure:"path"`
	DateColumn   string   `json:"date_column" yaml:"date_column" mapstructure:"date_column"`
	TickerColumn string   `json:"ticker_column" yaml:"ticker_column" mapstructure:"ticker_column"`
	CloseColumn  string   `json:"close_column" yaml:"close_column" mapstructure:"close_column"`
	Delimiter    string   `json:"delimiter" yaml:"delimiter" mapstructure:"delimiter"`
	DateLayouts  []string `json:"date_layouts,omitempty" yaml:"date_layouts,omitempty" mapstructure:"date_layouts"`
}

// RiskConfig contains the statistics parameters
type RiskConfig struct {
	Alpha        float64 `json:"alpha" yaml:"alpha" mapstructure:"alpha"`
	TradingDays  int     `json:"trading_days" yaml:"trading_days" mapstructure:"trading_days"`
	Insufficient string  `json:"insufficient" yaml:"insufficient" mapstructure:"insufficient"` // "omit" or "nan"
}

// ReportConfig describes the output file
type ReportConfig struct {
	Path   string `json:"path" yaml:"path" mapstructure:"path"`
	Format string `json:"format" yaml:"format" mapstructure:"format"` // "csv" or "org"
}

// LoggingConfig contains logging parameters
type LoggingConfig struct {
	Level  string `json:"level" yaml:"level" mapstructure:"level"`
	Format string `json:"format" yaml:"format" mapstructure:"format"` // "json" or "console"
}

// Default returns a configuration with sensible defaults. Input and report
// paths are left empty; they come from the command line.
func Default() *Config {
	return &Config{
		Input: InputConfig{
			DateColumn:   "Date",
			TickerColumn: "Ticker",
			CloseColumn:  "Close",
			Delimiter:    ",",
		},
		Risk: RiskConfig{
			Alpha:        risk.DefaultAlpha,
			TradingDays:  risk.DefaultTradingDays,
			Insufficient: InsufficientOmit,
		},
		Report: ReportConfig{
			Format: "csv",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// setDefaults mirrors Default() for viper.
func setDefaults(v *viper.Viper) {
	def := Default()

	v.SetDefault("input.path", def.Input.Path)
	v.SetDefault("input.date_column", def.Input.DateColumn)
	v.SetDefault("input.ticker_column", def.Input.TickerColumn)
	v.SetDefault("input.close_column", def.Input.CloseColumn)
	v.SetDefault("input.delimiter", def.Input.Delimiter)

	v.SetDefault("risk.alpha", def.Risk.Alpha)
	v.SetDefault("risk.trading_days", def.Risk.TradingDays)
	v.SetDefault("risk.insufficient", def.Risk.Insufficient)

	v.SetDefault("report.path", def.Report.Path)
	v.SetDefault("report.format", def.Report.Format)

	v.SetDefault("logging.level", def.Logging.Level)
	v.SetDefault("logging.format", def.Logging.Format)
}

// LoadFromFile loads a YAML or JSON configuration (chosen by extension) over
// the defaults. Environment variables are not consulted.
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// SaveToFile saves configuration to a file (YAML for .yaml/.yml, JSON otherwise)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(c)
	default:
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks the parameters; paths are checked by ValidatePaths.
func (c *Config) Validate() error {
	if c.Input.DateColumn == "" || c.Input.TickerColumn == "" || c.Input.CloseColumn == "" {
		return fmt.Errorf("input date_column, ticker_column and close_column are required")
	}
	if _, err := c.delimiter(); err != nil {
		return err
	}
	if err := c.RiskOptions().Validate(); err != nil {
		return fmt.Errorf("risk: %w", err)
	}
	if c.Risk.Insufficient != InsufficientOmit && c.Risk.Insufficient != InsufficientNaN {
		return fmt.Errorf("risk.insufficient must be '%s' or '%s'", InsufficientOmit, InsufficientNaN)
	}
	if _, err := report.ForFormat(c.Report.Format); err != nil {
		return fmt.Errorf("report.format: %w", err)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of: debug, info, warn, error")
	}
	if c.Logging.Format != "json" && c.Logging.Format != "console" {
		return fmt.Errorf("logging.format must be 'json' or 'console'")
	}
	return nil
}

// ValidatePaths checks that a run has somewhere to read from and write to.
func (c *Config) ValidatePaths() error {
	if c.Input.Path == "" {
		return fmt.Errorf("input.path is required")
	}
	if c.Report.Path == "" {
		return fmt.Errorf("report.path is required")
	}
	if filepath.Clean(c.Input.Path) == filepath.Clean(c.Report.Path) {
		return fmt.Errorf("report.path must differ from input.path")
	}
	return nil
}

// LoadOptions converts the input section for the price loader.
func (c *Config) LoadOptions() market.LoadOptions {
	comma, _ := c.delimiter()
	return market.LoadOptions{
		DateColumn:   c.Input.DateColumn,
		TickerColumn: c.Input.TickerColumn,
		CloseColumn:  c.Input.CloseColumn,
		DateLayouts:  c.Input.DateLayouts,
		Comma:        comma,
	}
}

// RiskOptions converts the risk section for the aggregator.
func (c *Config) RiskOptions() risk.Options {
	return risk.Options{Alpha: c.Risk.Alpha, TradingDays: c.Risk.TradingDays}
}

func (c *Config) delimiter() (rune, error) {
	switch d := c.Input.Delimiter; d {
	case "", ",":
		return ',', nil
	case "\\t", "\t", "tab":
		return '\t', nil
	default:
		r := []rune(d)
		if len(r) != 1 || r[0] == '"' || r[0] == '\r' || r[0] == '\n' {
			return 0, fmt.Errorf("input.delimiter must be a single character, got %q", d)
		}
		return r[0], nil
	}
}
