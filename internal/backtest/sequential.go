package backtest

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/yourusername/forecast-lab/internal/metrics"
	"github.com/yourusername/forecast-lab/internal/models"
	"github.com/yourusername/forecast-lab/internal/stats"
)

// sequentialWarmup is the number of leading resolved records held back
// before online evaluation begins.
const sequentialWarmup = 10

// Sequential replays resolved records chronologically as an online
// evaluation: after a warmup of ten events, every subsequent record is a
// single test step scored against its own probability, with cumulative
// average Brier and log scores updated at each step. The predictor is
// accepted for a future re-fit model but not invoked.
func (e *Engine) Sequential(records []models.PredictionRecord, predictor Predictor) (*SequentialResult, error) {
	_ = predictor
	started := time.Now()

	resolved := resolvedSorted(records)
	if len(resolved) <= sequentialWarmup {
		metrics.RecordInsufficientData("sequential")
		return nil, fmt.Errorf("sequential: %w: %d resolved records, need more than %d",
			models.ErrInsufficientData, len(resolved), sequentialWarmup)
	}

	steps := make([]SequentialStep, 0, len(resolved)-sequentialWarmup)
	cumBrier := 0.0
	cumLog := 0.0
	for i := sequentialWarmup; i < len(resolved); i++ {
		r := resolved[i]
		p := []float64{r.Probability}
		o := []float64{r.OutcomeValue()}
		brier := stats.BrierScore(p, o)
		logScore := stats.LogScore(p, o)

		cumBrier += brier
		cumLog += logScore
		evaluated := float64(i - sequentialWarmup + 1)

		steps = append(steps, SequentialStep{
			Step:               i - sequentialWarmup,
			RecordID:           r.ID,
			Timestamp:          r.CreatedAt,
			Probability:        r.Probability,
			Outcome:            *r.Outcome,
			Brier:              brier,
			LogScore:           logScore,
			CumulativeAvgBrier: cumBrier / evaluated,
			CumulativeAvgLog:   cumLog / evaluated,
		})
	}

	metrics.RecordEvaluation("sequential", time.Since(started).Seconds())
	e.logger.WithFields(logrus.Fields{
		"resolved_records": len(resolved),
		"evaluated_steps":  len(steps),
	}).Info("Sequential evaluation complete")

	final := steps[len(steps)-1]
	return &SequentialResult{
		RunID:            uuid.New(),
		Steps:            steps,
		FinalAvgBrier:    final.CumulativeAvgBrier,
		FinalAvgLogScore: final.CumulativeAvgLog,
		WarmupEvents:     sequentialWarmup,
		EvaluatedEvents:  len(steps),
	}, nil
}
