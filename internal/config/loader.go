// Package config provides configuration management for the forecast-lab
// evaluation tooling.
package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Load reads and parses the configuration from file and environment
// variables. Environment variable placeholders in the YAML file (${VAR})
// are expanded before parsing.
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found at %s: %w", configPath, err)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewBufferString(expanded)); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	v.SetEnvPrefix("FORECAST_LAB")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	return cfg, nil
}

// Default returns the built-in configuration used when no file is supplied.
func Default() *Config {
	return &Config{
		App: AppConfig{
			Name:        "forecast-lab",
			Environment: "development",
			LogLevel:    "info",
		},
		Backtest: BacktestConfig{
			Scenario:          "default",
			IntervalDays:      30,
			ConfidenceBuckets: 10,
			TrainFraction:     0.7,
		},
		Bootstrap: BootstrapConfig{
			Iterations:      1000,
			ConfidenceLevel: 0.95,
			Seed:            42,
		},
		Input: InputConfig{
			RecordsPath: "data/records.json",
		},
	}
}
