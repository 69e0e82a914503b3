package backtest

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/yourusername/forecast-lab/internal/models"
)

func TestSequentialRequiresMoreThanWarmup(t *testing.T) {
	engine, err := NewEngine(ScenarioDefault, quietLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	base := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	_, err = engine.Sequential(dailyRecords(base, 10), nil)
	if !errors.Is(err, models.ErrInsufficientData) {
		t.Fatalf("exactly warmup-many records must fail, got %v", err)
	}
}

func TestSequentialSingleStep(t *testing.T) {
	engine, err := NewEngine(ScenarioDefault, quietLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	base := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	records := dailyRecords(base, 10)
	records = append(records, resolvedRecord("eleventh", base.AddDate(0, 0, 10), 0.6, 1))

	result, err := engine.Sequential(records, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Steps) != 1 || result.EvaluatedEvents != 1 {
		t.Fatalf("expected exactly one evaluated step, got %d", len(result.Steps))
	}
	if result.WarmupEvents != 10 {
		t.Fatalf("expected 10 warmup events, got %d", result.WarmupEvents)
	}

	step := result.Steps[0]
	if step.Step != 0 || step.RecordID != "eleventh" {
		t.Fatalf("wrong first step: %+v", step)
	}
	if !closeTo(step.Brier, 0.16, 1e-12) {
		t.Fatalf("expected Brier 0.16 for p=0.6 outcome=1, got %v", step.Brier)
	}
	if !closeTo(step.LogScore, math.Log(0.6), 1e-12) {
		t.Fatalf("expected log score ln(0.6), got %v", step.LogScore)
	}
	if !closeTo(result.FinalAvgBrier, 0.16, 1e-12) {
		t.Fatalf("single step must equal the final average, got %v", result.FinalAvgBrier)
	}
}

func TestSequentialCumulativeAverages(t *testing.T) {
	engine, err := NewEngine(ScenarioDefault, quietLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	base := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	records := dailyRecords(base, 10)
	records = append(records,
		resolvedRecord("s1", base.AddDate(0, 0, 10), 0.9, 1), // Brier 0.01
		resolvedRecord("s2", base.AddDate(0, 0, 11), 0.5, 0), // Brier 0.25
		resolvedRecord("s3", base.AddDate(0, 0, 12), 0.8, 1), // Brier 0.04
	)

	result, err := engine.Sequential(records, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Steps) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(result.Steps))
	}

	wantCumulative := []float64{0.01, 0.13, 0.10}
	for i, step := range result.Steps {
		if !closeTo(step.CumulativeAvgBrier, wantCumulative[i], 1e-12) {
			t.Fatalf("step %d: cumulative Brier %v, want %v", i, step.CumulativeAvgBrier, wantCumulative[i])
		}
	}
	if !closeTo(result.FinalAvgBrier, 0.10, 1e-12) {
		t.Fatalf("expected final average 0.10, got %v", result.FinalAvgBrier)
	}
}

func TestSequentialSortsShuffledInput(t *testing.T) {
	engine, err := NewEngine(ScenarioDefault, quietLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	base := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	records := dailyRecords(base, 10)
	latest := resolvedRecord("latest", base.AddDate(0, 0, 10), 0.6, 1)
	// Prepend the newest record; chronological order decides the step order.
	shuffled := append([]models.PredictionRecord{latest}, records...)

	result, err := engine.Sequential(shuffled, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Steps) != 1 || result.Steps[0].RecordID != "latest" {
		t.Fatalf("newest record must be the evaluated step, got %+v", result.Steps)
	}
}

func TestSequentialDoesNotInvokePredictor(t *testing.T) {
	engine, err := NewEngine(ScenarioDefault, quietLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	forbidden := func(training []models.PredictionRecord) float64 {
		t.Fatal("predictor must not be invoked")
		return 0
	}

	base := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	if _, err := engine.Sequential(dailyRecords(base, 12), forbidden); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
