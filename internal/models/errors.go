package models

import "errors"

// Custom errors
var (
	// ErrInvalidRecord marks a record that failed ingestion validation.
	ErrInvalidRecord = errors.New("invalid prediction record")
	// ErrInvalidConfig marks a malformed engine or application configuration.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrInsufficientData is returned when fewer resolved records are
	// available than a protocol requires. Callers should treat it as a
	// recoverable "no data" state rather than a failure.
	ErrInsufficientData = errors.New("insufficient resolved data")
	// ErrNoResolvedTestEvents is returned by the split protocol when the
	// test set contains no resolved records.
	ErrNoResolvedTestEvents = errors.New("no resolved test events")
	// ErrShapeMismatch marks mismatched input slice lengths, a programmer
	// error rather than a data condition.
	ErrShapeMismatch = errors.New("input length mismatch")
)
