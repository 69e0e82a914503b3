// Package stats implements the pure numerical functions behind the forecast
// evaluation engine: proper scoring rules, calibration diagnostics,
// regression, correlation, distribution fitting, market microstructure
// estimators and resampling. All functions treat their inputs as read-only.
//
// Functions operating on a (predictions, outcomes) pair expect equal-length,
// non-empty slices and return NaN when that contract is not met. They never
// panic for missing data.
package stats

import "math"

// logEpsilon clamps probabilities away from 0 and 1 before taking logs.
const logEpsilon = 1e-9

// BrierScore returns the mean squared error between probability forecasts
// and binary outcomes. Range [0,1]; 0 only when every prediction exactly
// equals its outcome. Lower is better.
func BrierScore(predictions, outcomes []float64) float64 {
	if !sameShape(predictions, outcomes) {
		return math.NaN()
	}
	sum := 0.0
	for i, p := range predictions {
		diff := p - outcomes[i]
		sum += diff * diff
	}
	return sum / float64(len(predictions))
}

// LogScore returns the unnegated mean log-likelihood of the outcomes under
// the forecast probabilities. Higher (closer to zero) is better; very
// negative is worse. This engine deliberately keeps the raw, unnegated
// convention; consumers wanting a loss must negate it themselves.
// Probabilities are clamped to [logEpsilon, 1-logEpsilon] before the log.
func LogScore(predictions, outcomes []float64) float64 {
	if !sameShape(predictions, outcomes) {
		return math.NaN()
	}
	sum := 0.0
	for i, p := range predictions {
		p = clampProbability(p)
		sum += outcomes[i]*math.Log(p) + (1-outcomes[i])*math.Log(1-p)
	}
	return sum / float64(len(predictions))
}

// SphericalScore returns the mean spherical score, a proper scoring rule in
// (0,1] rewarding both accuracy and decisiveness. Higher is better.
func SphericalScore(predictions, outcomes []float64) float64 {
	if !sameShape(predictions, outcomes) {
		return math.NaN()
	}
	sum := 0.0
	for i, p := range predictions {
		norm := math.Sqrt(p*p + (1-p)*(1-p))
		if norm == 0 {
			continue
		}
		if outcomes[i] == 1 {
			sum += p / norm
		} else {
			sum += (1 - p) / norm
		}
	}
	return sum / float64(len(predictions))
}

// Accuracy returns the fraction of forecasts whose 0.5-thresholded class
// matches the outcome.
func Accuracy(predictions, outcomes []float64) float64 {
	if !sameShape(predictions, outcomes) {
		return math.NaN()
	}
	hits := 0
	for i, p := range predictions {
		predicted := 0.0
		if p >= 0.5 {
			predicted = 1.0
		}
		if predicted == outcomes[i] {
			hits++
		}
	}
	return float64(hits) / float64(len(predictions))
}

func clampProbability(p float64) float64 {
	if p < logEpsilon {
		return logEpsilon
	}
	if p > 1-logEpsilon {
		return 1 - logEpsilon
	}
	return p
}

func sameShape(a, b []float64) bool {
	return len(a) > 0 && len(a) == len(b)
}
