package config

import (
	"strings"
	"testing"
)

func TestLoadValidConfig(t *testing.T) {
	cfg, err := Load("testdata/valid_config.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.App.Name != "forecast-lab" {
		t.Errorf("expected app name forecast-lab, got %q", cfg.App.Name)
	}
	if cfg.App.LogLevel != "debug" {
		t.Errorf("expected log level debug, got %q", cfg.App.LogLevel)
	}
	if cfg.Backtest.Scenario != "short_term" {
		t.Errorf("expected scenario short_term, got %q", cfg.Backtest.Scenario)
	}
	if cfg.Backtest.IntervalDays != 14 {
		t.Errorf("expected 14 interval days, got %d", cfg.Backtest.IntervalDays)
	}
	if cfg.Backtest.TrainFraction != 0.8 {
		t.Errorf("expected train fraction 0.8, got %v", cfg.Backtest.TrainFraction)
	}
	if cfg.Bootstrap.Iterations != 500 || cfg.Bootstrap.Seed != 7 {
		t.Errorf("wrong bootstrap section: %+v", cfg.Bootstrap)
	}

	if err := Validate(cfg); err != nil {
		t.Fatalf("valid config failed validation: %v", err)
	}
}

func TestLoadExpandsEnvironmentVariables(t *testing.T) {
	t.Setenv("FORECAST_LAB_TEST_ENV", "staging")
	t.Setenv("FORECAST_LAB_TEST_RECORDS", "/data/override.json")

	cfg, err := Load("testdata/env_config.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Environment != "staging" {
		t.Errorf("expected expanded environment staging, got %q", cfg.App.Environment)
	}
	if cfg.Input.RecordsPath != "/data/override.json" {
		t.Errorf("expected expanded records path, got %q", cfg.Input.RecordsPath)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("testdata/does_not_exist.yaml"); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := Default()
	if err := Validate(cfg); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
	if cfg.IsProduction() {
		t.Error("default config must not claim production")
	}
	if cfg.Backtest.Scenario != "default" {
		t.Errorf("expected default scenario, got %q", cfg.Backtest.Scenario)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown environment", func(c *Config) { c.App.Environment = "qa" }},
		{"unknown log level", func(c *Config) { c.App.LogLevel = "trace" }},
		{"unknown scenario", func(c *Config) { c.Backtest.Scenario = "intraday" }},
		{"zero interval days", func(c *Config) { c.Backtest.IntervalDays = 0 }},
		{"train fraction one", func(c *Config) { c.Backtest.TrainFraction = 1 }},
		{"confidence level above one", func(c *Config) { c.Bootstrap.ConfidenceLevel = 1.5 }},
		{"missing records path", func(c *Config) { c.Input.RecordsPath = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			if err := Validate(cfg); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestStringRedactsNothingSensitive(t *testing.T) {
	cfg := Default()
	s := cfg.String()
	if !strings.Contains(s, "forecast-lab") || !strings.Contains(s, "default") {
		t.Errorf("unexpected description: %q", s)
	}
}
