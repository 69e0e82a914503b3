// Package backtest replays historical forecast/outcome records through
// rolling-window, split, time-bucketed, confidence-bucketed and sequential
// evaluation protocols. All protocols are pure with respect to their
// inputs: records are never mutated and every call returns a fresh result.
package backtest

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/yourusername/forecast-lab/internal/metrics"
	"github.com/yourusername/forecast-lab/internal/models"
	"github.com/yourusername/forecast-lab/internal/stats"
)

// calibrationBins is the equal-width bin count used for ECE inside a
// MetricsBundle.
const calibrationBins = 10

// Predictor is the extension point for a pluggable re-fit model: given the
// training records available at a step it returns a probability. Every
// protocol accepts a Predictor but none invokes it yet; records are scored
// on their own Probability field. The argument exists so a future model can
// be wired in without changing the engine's contract.
type Predictor func(training []models.PredictionRecord) float64

// Engine evaluates prediction records under a fixed windowing configuration.
// It holds no result state between calls.
type Engine struct {
	config Config
	logger *logrus.Logger
}

// NewEngine creates an engine from a named scenario.
func NewEngine(scenario Scenario, logger *logrus.Logger) (*Engine, error) {
	cfg, err := ScenarioConfig(scenario)
	if err != nil {
		return nil, err
	}
	return NewEngineWithConfig(cfg, logger)
}

// NewEngineWithConfig creates an engine from an explicit configuration.
func NewEngineWithConfig(cfg Config, logger *logrus.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &Engine{config: cfg, logger: logger}, nil
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.config
}

// RunRollingWindow slides a window of WindowSizeDays across the resolved
// records in steps of StepDays and scores each position holding at least
// MinEventsPerWindow records. Thin windows are skipped entirely, not
// emitted as placeholders. The predictor is accepted but not invoked.
func (e *Engine) RunRollingWindow(records []models.PredictionRecord, predictor Predictor) (*RollingResult, error) {
	_ = predictor
	started := time.Now()

	resolved := resolvedSorted(records)
	if len(resolved) < e.config.MinEventsPerWindow {
		metrics.RecordInsufficientData("rolling")
		return nil, fmt.Errorf("rolling window: %w: %d resolved records, need at least %d",
			models.ErrInsufficientData, len(resolved), e.config.MinEventsPerWindow)
	}

	first := resolved[0].CreatedAt
	last := resolved[len(resolved)-1].CreatedAt

	var windows []Window
	skipped := 0
	for windowStart := first; !windowStart.After(last); windowStart = windowStart.AddDate(0, 0, e.config.StepDays) {
		windowEnd := windowStart.AddDate(0, 0, e.config.WindowSizeDays)
		events := selectWindow(resolved, windowStart, windowEnd)
		if len(events) < e.config.MinEventsPerWindow {
			skipped++
			continue
		}
		windows = append(windows, Window{
			WindowNum:   len(windows),
			WindowStart: windowStart,
			WindowEnd:   windowEnd,
			EventCount:  len(events),
			Metrics:     scoreRecords(events),
			Events:      events,
		})
	}

	metrics.WindowsEmittedTotal.Add(float64(len(windows)))
	metrics.WindowsSkippedTotal.Add(float64(skipped))
	metrics.RecordEvaluation("rolling", time.Since(started).Seconds())

	e.logger.WithFields(logrus.Fields{
		"resolved_records": len(resolved),
		"windows":          len(windows),
		"skipped":          skipped,
	}).Info("Rolling window evaluation complete")

	return &RollingResult{
		RunID:       uuid.New(),
		Config:      e.config,
		Windows:     windows,
		Summary:     summarize(windows),
		Drawdown:    drawdownTrace(windows),
		GeneratedAt: time.Now().UTC(),
	}, nil
}

// selectWindow returns the records with start <= CreatedAt < end. The input
// is sorted ascending by CreatedAt.
func selectWindow(sorted []models.PredictionRecord, start, end time.Time) []models.PredictionRecord {
	lo := sort.Search(len(sorted), func(i int) bool { return !sorted[i].CreatedAt.Before(start) })
	hi := sort.Search(len(sorted), func(i int) bool { return !sorted[i].CreatedAt.Before(end) })
	if lo >= hi {
		return nil
	}
	out := make([]models.PredictionRecord, hi-lo)
	copy(out, sorted[lo:hi])
	return out
}

// SortByCreatedAt sorts records in place by creation time ascending.
func SortByCreatedAt(records []models.PredictionRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt.Before(records[j].CreatedAt)
	})
}

// resolvedSorted copies the resolved records and sorts them by CreatedAt
// ascending. The caller's slice is left untouched.
func resolvedSorted(records []models.PredictionRecord) []models.PredictionRecord {
	resolved := make([]models.PredictionRecord, 0, len(records))
	for _, r := range records {
		if r.Resolved && r.Outcome != nil {
			resolved = append(resolved, r)
		}
	}
	sort.SliceStable(resolved, func(i, j int) bool {
		return resolved[i].CreatedAt.Before(resolved[j].CreatedAt)
	})
	return resolved
}

// scoreRecords computes a MetricsBundle for a set of resolved records.
func scoreRecords(records []models.PredictionRecord) MetricsBundle {
	predictions := make([]float64, len(records))
	outcomes := make([]float64, len(records))
	for i, r := range records {
		predictions[i] = r.Probability
		outcomes[i] = r.OutcomeValue()
	}
	return MetricsBundle{
		BrierScore:     stats.BrierScore(predictions, outcomes),
		LogScore:       stats.LogScore(predictions, outcomes),
		SphericalScore: stats.SphericalScore(predictions, outcomes),
		ECE:            stats.ExpectedCalibrationError(predictions, outcomes, calibrationBins),
		Accuracy:       stats.Accuracy(predictions, outcomes),
		SampleSize:     len(records),
	}
}
