package backtest

import (
	"fmt"
	"math"
	"time"

	"github.com/yourusername/forecast-lab/internal/metrics"
	"github.com/yourusername/forecast-lab/internal/models"
)

// AccuracyByConfidence groups resolved records into numBuckets equal-width
// probability buckets (index min(floor(p*n), n-1)) and reports calibration
// per bucket. Empty buckets are omitted; the emitted SampleCounts always
// sum to the number of resolved records.
func (e *Engine) AccuracyByConfidence(records []models.PredictionRecord, numBuckets int) ([]ConfidenceBucket, error) {
	if numBuckets < 1 {
		return nil, fmt.Errorf("%w: bucket count must be positive, got %d", models.ErrInvalidConfig, numBuckets)
	}
	started := time.Now()

	resolved := resolvedSorted(records)
	if len(resolved) == 0 {
		metrics.RecordInsufficientData("confidence")
		return nil, fmt.Errorf("accuracy by confidence: %w: no resolved records", models.ErrInsufficientData)
	}

	probSum := make([]float64, numBuckets)
	outcomeSum := make([]float64, numBuckets)
	brierSum := make([]float64, numBuckets)
	counts := make([]int, numBuckets)
	for _, r := range resolved {
		b := int(math.Floor(r.Probability * float64(numBuckets)))
		if b >= numBuckets {
			b = numBuckets - 1
		}
		outcome := r.OutcomeValue()
		probSum[b] += r.Probability
		outcomeSum[b] += outcome
		brierSum[b] += (r.Probability - outcome) * (r.Probability - outcome)
		counts[b]++
	}

	width := 1.0 / float64(numBuckets)
	buckets := make([]ConfidenceBucket, 0, numBuckets)
	for b := 0; b < numBuckets; b++ {
		if counts[b] == 0 {
			continue
		}
		count := float64(counts[b])
		predicted := probSum[b] / count
		actual := outcomeSum[b] / count
		buckets = append(buckets, ConfidenceBucket{
			Bucket:               b,
			LowerBound:           float64(b) * width,
			UpperBound:           float64(b+1) * width,
			SampleCount:          counts[b],
			PredictedProbability: predicted,
			ActualAccuracy:       actual,
			CalibrationError:     math.Abs(predicted - actual),
			Brier:                brierSum[b] / count,
		})
	}

	metrics.RecordEvaluation("confidence", time.Since(started).Seconds())
	return buckets, nil
}
