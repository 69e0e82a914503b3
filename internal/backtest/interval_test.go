package backtest

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/yourusername/forecast-lab/internal/models"
)

func TestByTimeIntervalSkipsEmptyBuckets(t *testing.T) {
	engine, err := NewEngine(ScenarioDefault, quietLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	// Two clusters of activity with a silent month between them.
	records := dailyRecords(base, 5)
	for i := 0; i < 4; i++ {
		records = append(records, resolvedRecord(
			"late-"+string(rune('a'+i)),
			base.AddDate(0, 0, 40+i), 0.7, 1))
	}

	buckets, err := engine.ByTimeInterval(records, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(buckets) != 2 {
		t.Fatalf("expected 2 non-empty weekly buckets around the gap, got %d", len(buckets))
	}
	if buckets[0].EventCount != 5 || buckets[1].EventCount != 4 {
		t.Fatalf("wrong cluster sizes: %d and %d", buckets[0].EventCount, buckets[1].EventCount)
	}
	for _, b := range buckets {
		if !strings.Contains(b.Interval, "/") {
			t.Fatalf("interval label must be a start/end date pair, got %q", b.Interval)
		}
		if !b.IntervalEnd.Equal(b.IntervalStart.AddDate(0, 0, 7)) {
			t.Fatalf("bucket %q is not 7 days wide", b.Interval)
		}
	}
	if buckets[0].Interval != "2025-05-01/2025-05-08" {
		t.Fatalf("unexpected first label %q", buckets[0].Interval)
	}
}

func TestByTimeIntervalValidation(t *testing.T) {
	engine, err := NewEngine(ScenarioDefault, quietLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	if _, err := engine.ByTimeInterval(dailyRecords(base, 5), 0); !errors.Is(err, models.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for zero interval, got %v", err)
	}
	if _, err := engine.ByTimeInterval(dailyRecords(base, 5), -3); !errors.Is(err, models.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for negative interval, got %v", err)
	}
	if _, err := engine.ByTimeInterval(nil, 7); !errors.Is(err, models.ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData for no records, got %v", err)
	}
	unresolved := []models.PredictionRecord{{ID: "open", CreatedAt: base, Probability: 0.5}}
	if _, err := engine.ByTimeInterval(unresolved, 7); !errors.Is(err, models.ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData for unresolved-only records, got %v", err)
	}
}

func TestByTimeIntervalCoversAllResolved(t *testing.T) {
	engine, err := NewEngine(ScenarioDefault, quietLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	records := dailyRecords(base, 23)
	buckets, err := engine.ByTimeInterval(records, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	total := 0
	for _, b := range buckets {
		total += b.EventCount
	}
	if total != 23 {
		t.Fatalf("buckets must partition all resolved records, covered %d of 23", total)
	}
}
