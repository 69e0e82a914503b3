// Package models defines the core data types shared across the evaluation engine.
package models

import (
	"fmt"
	"time"
)

// PredictionRecord represents a single forecast/outcome pair supplied by an
// ingestion layer. Records are value objects: the statistics and backtest
// packages never mutate them.
type PredictionRecord struct {
	ID          string    `json:"id" validate:"required"`
	CreatedAt   time.Time `json:"created_at" validate:"required"`
	Resolved    bool      `json:"resolved"`
	Probability float64   `json:"probability" validate:"gte=0,lte=1"`
	Outcome     *int      `json:"outcome,omitempty" validate:"omitempty,oneof=0 1"`
}

// Validate checks the record's internal consistency. Outcome must be present
// exactly when the record is resolved.
func (r *PredictionRecord) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidRecord)
	}
	if r.CreatedAt.IsZero() {
		return fmt.Errorf("%w: record %s missing created_at", ErrInvalidRecord, r.ID)
	}
	if r.Probability < 0 || r.Probability > 1 {
		return fmt.Errorf("%w: record %s probability %v outside [0,1]", ErrInvalidRecord, r.ID, r.Probability)
	}
	if r.Resolved && r.Outcome == nil {
		return fmt.Errorf("%w: record %s resolved without outcome", ErrInvalidRecord, r.ID)
	}
	if !r.Resolved && r.Outcome != nil {
		return fmt.Errorf("%w: record %s has outcome but is not resolved", ErrInvalidRecord, r.ID)
	}
	if r.Outcome != nil && *r.Outcome != 0 && *r.Outcome != 1 {
		return fmt.Errorf("%w: record %s outcome %d is not binary", ErrInvalidRecord, r.ID, *r.Outcome)
	}
	return nil
}

// OutcomeValue returns the resolved outcome as a float64. It is only
// meaningful for resolved records; unresolved records return 0.
func (r *PredictionRecord) OutcomeValue() float64 {
	if r.Outcome == nil {
		return 0
	}
	return float64(*r.Outcome)
}
