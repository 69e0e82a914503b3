package stats

import (
	"fmt"
	"math/rand"
	"time"
)

// ConfidenceInterval is a percentile bootstrap interval.
type ConfidenceInterval struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Level float64 `json:"level"`
}

// BootstrapCI estimates a percentile confidence interval for statistic over
// sample by resampling with replacement. The random source is injected so
// runs are reproducible: the same seeded *rand.Rand always yields identical
// interval bounds. A nil rng falls back to a time-seeded source.
func BootstrapCI(sample []float64, statistic func([]float64) float64, iterations int, confidenceLevel float64, rng *rand.Rand) (ConfidenceInterval, error) {
	if len(sample) == 0 {
		return ConfidenceInterval{}, fmt.Errorf("bootstrap requires a non-empty sample")
	}
	if statistic == nil {
		return ConfidenceInterval{}, fmt.Errorf("bootstrap requires a statistic function")
	}
	if iterations <= 0 {
		iterations = 1000
	}
	if confidenceLevel <= 0 || confidenceLevel >= 1 {
		return ConfidenceInterval{}, fmt.Errorf("confidence level must be in (0,1), got %v", confidenceLevel)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	n := len(sample)
	resample := make([]float64, n)
	estimates := make([]float64, iterations)
	for i := 0; i < iterations; i++ {
		for j := 0; j < n; j++ {
			resample[j] = sample[rng.Intn(n)]
		}
		estimates[i] = statistic(resample)
	}

	tail := (1 - confidenceLevel) / 2
	return ConfidenceInterval{
		Lower: percentile(estimates, tail),
		Upper: percentile(estimates, 1-tail),
		Level: confidenceLevel,
	}, nil
}
