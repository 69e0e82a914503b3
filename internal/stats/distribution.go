package stats

import (
	"fmt"
	"math"
)

// BetaParams holds Beta distribution shape parameters.
type BetaParams struct {
	Alpha float64 `json:"alpha"`
	Beta  float64 `json:"beta"`
}

// OUParams holds discretized Ornstein-Uhlenbeck estimates.
type OUParams struct {
	Speed      float64 `json:"speed"`
	Mean       float64 `json:"mean"`
	Volatility float64 `json:"volatility"`
}

// PowerLawAlpha estimates the exponent of a discrete power-law tail by
// maximum likelihood over observations >= xMin, using the standard
// continuous approximation alpha = 1 + n / sum(ln(x_i / (xMin - 0.5))).
// Returns NaN when fewer than two observations reach the tail.
func PowerLawAlpha(values []float64, xMin float64) float64 {
	if len(values) == 0 || xMin <= 0.5 {
		return math.NaN()
	}
	n := 0
	logSum := 0.0
	for _, v := range values {
		if v < xMin {
			continue
		}
		n++
		logSum += math.Log(v / (xMin - 0.5))
	}
	if n < 2 || logSum == 0 {
		return math.NaN()
	}
	return 1 + float64(n)/logSum
}

// FitBeta estimates Beta(alpha, beta) shape parameters from the sample mean
// and variance by the method of moments. It fails for degenerate samples:
// fewer than two values, zero variance, a mean outside (0,1), or a variance
// too large for any Beta distribution to produce.
func FitBeta(sample []float64) (BetaParams, error) {
	if len(sample) < 2 {
		return BetaParams{}, fmt.Errorf("beta fit requires at least 2 observations, got %d", len(sample))
	}
	m := mean(sample)
	v := variance(sample)
	if m <= 0 || m >= 1 {
		return BetaParams{}, fmt.Errorf("beta fit requires mean in (0,1), got %v", m)
	}
	if v == 0 {
		return BetaParams{}, fmt.Errorf("beta fit is undefined for zero-variance samples")
	}
	common := m*(1-m)/v - 1
	if common <= 0 {
		return BetaParams{}, fmt.Errorf("sample variance %v too large for a beta distribution with mean %v", v, m)
	}
	return BetaParams{Alpha: m * common, Beta: (1 - m) * common}, nil
}

// FitOrnsteinUhlenbeck estimates mean-reversion speed, long-run mean and
// volatility from a series sampled at fixed spacing dt, by regressing the
// increments on the levels: dx_t = a + b*x_t + eps. Speed is -b/dt, the
// long-run mean is -a/b and volatility is the residual standard deviation
// scaled by sqrt(dt). Fails for fewer than three observations or a
// zero-variance (non-reverting) series.
func FitOrnsteinUhlenbeck(series []float64, dt float64) (OUParams, error) {
	if len(series) < 3 {
		return OUParams{}, fmt.Errorf("ou fit requires at least 3 observations, got %d", len(series))
	}
	if dt <= 0 {
		return OUParams{}, fmt.Errorf("ou fit requires positive dt, got %v", dt)
	}

	n := len(series) - 1
	levels := make([]float64, n)
	increments := make([]float64, n)
	for i := 0; i < n; i++ {
		levels[i] = series[i]
		increments[i] = series[i+1] - series[i]
	}

	fit := OLS(levels, increments)
	if math.IsNaN(fit.Slope) || (fit.Slope == 0 && fit.Intercept == 0 && fit.RSquared == 0 && variance(levels) == 0) {
		return OUParams{}, fmt.Errorf("ou fit is undefined for constant series")
	}
	if fit.Slope == 0 {
		return OUParams{}, fmt.Errorf("series shows no mean reversion")
	}

	speed := -fit.Slope / dt
	longRunMean := -fit.Intercept / fit.Slope

	residVar := 0.0
	for i := 0; i < n; i++ {
		resid := increments[i] - (fit.Intercept + fit.Slope*levels[i])
		residVar += resid * resid
	}
	residVar /= float64(n)
	volatility := math.Sqrt(residVar / dt)

	return OUParams{Speed: speed, Mean: longRunMean, Volatility: volatility}, nil
}
