package models

import (
	"errors"
	"testing"
	"time"
)

func validRecord() PredictionRecord {
	outcome := 1
	return PredictionRecord{
		ID:          "record-1",
		CreatedAt:   time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		Resolved:    true,
		Probability: 0.65,
		Outcome:     &outcome,
	}
}

func TestValidateAcceptsConsistentRecords(t *testing.T) {
	resolved := validRecord()
	if err := resolved.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	unresolved := validRecord()
	unresolved.Resolved = false
	unresolved.Outcome = nil
	if err := unresolved.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateRejectsInconsistentRecords(t *testing.T) {
	two := 2
	cases := []struct {
		name   string
		mutate func(*PredictionRecord)
	}{
		{"missing id", func(r *PredictionRecord) { r.ID = "" }},
		{"missing created_at", func(r *PredictionRecord) { r.CreatedAt = time.Time{} }},
		{"probability below zero", func(r *PredictionRecord) { r.Probability = -0.01 }},
		{"probability above one", func(r *PredictionRecord) { r.Probability = 1.01 }},
		{"resolved without outcome", func(r *PredictionRecord) { r.Outcome = nil }},
		{"outcome without resolution", func(r *PredictionRecord) { r.Resolved = false }},
		{"non-binary outcome", func(r *PredictionRecord) { r.Outcome = &two }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			record := validRecord()
			tc.mutate(&record)
			err := record.Validate()
			if !errors.Is(err, ErrInvalidRecord) {
				t.Fatalf("expected ErrInvalidRecord, got %v", err)
			}
		})
	}
}

func TestOutcomeValue(t *testing.T) {
	record := validRecord()
	if record.OutcomeValue() != 1 {
		t.Fatalf("expected 1, got %v", record.OutcomeValue())
	}

	record.Outcome = nil
	if record.OutcomeValue() != 0 {
		t.Fatalf("nil outcome must report 0, got %v", record.OutcomeValue())
	}
}
