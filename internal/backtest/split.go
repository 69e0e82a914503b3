package backtest

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/yourusername/forecast-lab/internal/metrics"
	"github.com/yourusername/forecast-lab/internal/models"
)

// Split evaluates the resolved members of testRecords. The train set is
// reserved as the predictor's eventual re-fitting input and is not used
// today; records score on their own probabilities.
func (e *Engine) Split(trainRecords, testRecords []models.PredictionRecord, predictor Predictor) (*SplitResult, error) {
	_ = trainRecords
	_ = predictor
	started := time.Now()

	testResolved := resolvedSorted(testRecords)
	if len(testResolved) == 0 {
		metrics.RecordInsufficientData("split")
		return nil, fmt.Errorf("split: %w", models.ErrNoResolvedTestEvents)
	}

	metrics.RecordEvaluation("split", time.Since(started).Seconds())
	e.logger.WithFields(logrus.Fields{
		"train_records": len(trainRecords),
		"test_resolved": len(testResolved),
	}).Info("Split evaluation complete")

	return &SplitResult{
		RunID:       uuid.New(),
		TestSetSize: len(testResolved),
		Metrics:     scoreRecords(testResolved),
		Events:      testResolved,
		Timestamp:   time.Now().UTC(),
	}, nil
}
