// Package config provides configuration management for the forecast-lab
// evaluation tooling.
package config

import "fmt"

// Config represents the complete application configuration
type Config struct {
	App       AppConfig       `mapstructure:"app" validate:"required"`
	Backtest  BacktestConfig  `mapstructure:"backtest" validate:"required"`
	Bootstrap BootstrapConfig `mapstructure:"bootstrap" validate:"required"`
	Input     InputConfig     `mapstructure:"input" validate:"required"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// BacktestConfig selects the evaluation scenario and protocol parameters
type BacktestConfig struct {
	Scenario          string `mapstructure:"scenario" validate:"required,scenario"`
	IntervalDays      int    `mapstructure:"interval_days" validate:"required,gt=0"`
	ConfidenceBuckets int    `mapstructure:"confidence_buckets" validate:"required,gt=0"`
	TrainFraction     float64 `mapstructure:"train_fraction" validate:"gt=0,lt=1"`
}

// BootstrapConfig controls resampling-based confidence intervals
type BootstrapConfig struct {
	Iterations      int     `mapstructure:"iterations" validate:"required,gt=0"`
	ConfidenceLevel float64 `mapstructure:"confidence_level" validate:"required,gt=0,lt=1"`
	Seed            int64   `mapstructure:"seed"`
}

// InputConfig locates the prediction record input
type InputConfig struct {
	RecordsPath string `mapstructure:"records_path" validate:"required"`
}

// IsProduction reports whether the app runs in the production environment
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// String returns a redaction-safe one-line description of the configuration
func (c *Config) String() string {
	return fmt.Sprintf("Config{app=%s env=%s scenario=%s records=%s}",
		c.App.Name, c.App.Environment, c.Backtest.Scenario, c.Input.RecordsPath)
}
