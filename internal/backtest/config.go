package backtest

import (
	"fmt"

	"github.com/yourusername/forecast-lab/internal/models"
)

// Scenario names a preset engine configuration.
type Scenario string

// Named scenarios
const (
	ScenarioDefault   Scenario = "default"
	ScenarioShortTerm Scenario = "short_term"
	ScenarioLongTerm  Scenario = "long_term"
)

// Config holds the windowing parameters for an engine instance.
type Config struct {
	WindowSizeDays     int `json:"window_size_days"`
	StepDays           int `json:"step_days"`
	MinEventsPerWindow int `json:"min_events_per_window"`
}

// ScenarioConfig returns the preset configuration for a named scenario.
func ScenarioConfig(scenario Scenario) (Config, error) {
	switch scenario {
	case ScenarioDefault, "":
		return Config{WindowSizeDays: 30, StepDays: 7, MinEventsPerWindow: 10}, nil
	case ScenarioShortTerm:
		return Config{WindowSizeDays: 7, StepDays: 1, MinEventsPerWindow: 5}, nil
	case ScenarioLongTerm:
		return Config{WindowSizeDays: 90, StepDays: 30, MinEventsPerWindow: 50}, nil
	default:
		return Config{}, fmt.Errorf("%w: unknown scenario %q", models.ErrInvalidConfig, scenario)
	}
}

// Validate validates the windowing parameters. A non-positive step would
// never advance the rolling window, so it is rejected outright.
func (c Config) Validate() error {
	if c.WindowSizeDays <= 0 {
		return fmt.Errorf("%w: window size must be positive, got %d", models.ErrInvalidConfig, c.WindowSizeDays)
	}
	if c.StepDays <= 0 {
		return fmt.Errorf("%w: step must be positive, got %d", models.ErrInvalidConfig, c.StepDays)
	}
	if c.MinEventsPerWindow < 1 {
		return fmt.Errorf("%w: min events per window must be at least 1, got %d", models.ErrInvalidConfig, c.MinEventsPerWindow)
	}
	return nil
}
