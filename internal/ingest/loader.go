package ingest

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/yourusername/forecast-lab/internal/metrics"
	"github.com/yourusername/forecast-lab/internal/models"
)

// LoadStats counts the outcome of one load.
type LoadStats struct {
	Accepted int `json:"accepted"`
	Rejected int `json:"rejected"`
}

// Loader reads raw record files and emits validated prediction records.
type Loader struct {
	logger *logrus.Logger
}

// NewLoader creates a loader. A nil logger falls back to a default one.
func NewLoader(logger *logrus.Logger) *Loader {
	if logger == nil {
		logger = logrus.New()
	}
	return &Loader{logger: logger}
}

// LoadFile reads a JSON array of raw records from path, normalizes and
// validates each one, and returns the accepted records. Invalid records
// are counted, logged and dropped rather than failing the whole load; the
// load only fails when the file itself cannot be read or parsed, or when
// no record survives validation.
func (l *Loader) LoadFile(path string) ([]models.PredictionRecord, LoadStats, error) {
	stats := LoadStats{}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, stats, fmt.Errorf("failed to read records file: %w", err)
	}

	var raws []RawRecord
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, stats, fmt.Errorf("failed to parse records file %s: %w", path, err)
	}

	records := make([]models.PredictionRecord, 0, len(raws))
	for i, raw := range raws {
		record, err := Normalize(raw)
		if err != nil {
			stats.Rejected++
			metrics.RecordsRejectedTotal.Inc()
			l.logger.WithFields(logrus.Fields{
				"index": i,
				"id":    raw.ID,
			}).WithError(err).Warn("Rejected prediction record")
			continue
		}
		stats.Accepted++
		metrics.RecordsIngestedTotal.Inc()
		records = append(records, record)
	}

	l.logger.WithFields(logrus.Fields{
		"path":     path,
		"accepted": stats.Accepted,
		"rejected": stats.Rejected,
	}).Info("Loaded prediction records")

	if len(records) == 0 {
		return nil, stats, fmt.Errorf("no valid records in %s: %w", path, models.ErrInsufficientData)
	}
	return records, stats, nil
}
