// Package ingest is the validation and normalization boundary between
// external data adapters and the evaluation engine. Raw platform payloads
// are normalized into models.PredictionRecord values and rejected here if
// malformed, so downstream code never needs defensive field checks.
package ingest

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/yourusername/forecast-lab/internal/models"
)

// RawRecord mirrors the JSON shape produced by market data adapters.
// Prediction-market payloads carry prices as strings ("0.6325"), so the
// probability is kept textual and parsed exactly with decimal.
type RawRecord struct {
	ID          string `json:"id"`
	CreatedAt   string `json:"created_at"`
	Resolved    bool   `json:"resolved"`
	Probability string `json:"probability"`
	Outcome     *int   `json:"outcome,omitempty"`
}

// Normalize converts a raw adapter record into a validated
// models.PredictionRecord. A missing ID is replaced with a fresh UUID;
// everything else must parse and satisfy the record invariants.
func Normalize(raw RawRecord) (models.PredictionRecord, error) {
	id := raw.ID
	if id == "" {
		id = uuid.NewString()
	}

	createdAt, err := time.Parse(time.RFC3339, raw.CreatedAt)
	if err != nil {
		return models.PredictionRecord{}, fmt.Errorf("%w: record %s has unparseable created_at %q: %v",
			models.ErrInvalidRecord, id, raw.CreatedAt, err)
	}

	price, err := decimal.NewFromString(raw.Probability)
	if err != nil {
		return models.PredictionRecord{}, fmt.Errorf("%w: record %s has unparseable probability %q: %v",
			models.ErrInvalidRecord, id, raw.Probability, err)
	}
	probability, _ := price.Float64()

	record := models.PredictionRecord{
		ID:          id,
		CreatedAt:   createdAt,
		Resolved:    raw.Resolved,
		Probability: probability,
		Outcome:     raw.Outcome,
	}
	if err := record.Validate(); err != nil {
		return models.PredictionRecord{}, err
	}
	return record, nil
}
