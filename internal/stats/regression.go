package stats

import "math"

// OLSFit holds a univariate least-squares fit.
type OLSFit struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	RSquared  float64 `json:"r_squared"`
}

// OLS fits y = intercept + slope*x by ordinary least squares. A zero-variance
// x yields slope 0 and intercept mean(y) rather than NaN; empty or mismatched
// inputs yield NaN fields.
func OLS(x, y []float64) OLSFit {
	if !sameShape(x, y) {
		return OLSFit{math.NaN(), math.NaN(), math.NaN()}
	}
	weights := make([]float64, len(x))
	for i := range weights {
		weights[i] = 1
	}
	return WeightedOLS(x, y, weights)
}

// WeightedOLS fits y = intercept + slope*x minimizing weighted squared error
// via the closed-form normal equations. Non-positive weights are treated as
// zero. Degenerate inputs (zero total weight or zero weighted x variance)
// fall back to slope 0 and the weighted mean of y.
func WeightedOLS(x, y, weights []float64) OLSFit {
	if !sameShape(x, y) || len(weights) != len(x) {
		return OLSFit{math.NaN(), math.NaN(), math.NaN()}
	}

	sumW, sumWX, sumWY := 0.0, 0.0, 0.0
	for i := range x {
		w := weights[i]
		if w <= 0 {
			continue
		}
		sumW += w
		sumWX += w * x[i]
		sumWY += w * y[i]
	}
	if sumW == 0 {
		return OLSFit{math.NaN(), math.NaN(), math.NaN()}
	}
	meanX := sumWX / sumW
	meanY := sumWY / sumW

	sxx, sxy := 0.0, 0.0
	for i := range x {
		w := weights[i]
		if w <= 0 {
			continue
		}
		dx := x[i] - meanX
		sxx += w * dx * dx
		sxy += w * dx * (y[i] - meanY)
	}
	if sxx == 0 {
		return OLSFit{Slope: 0, Intercept: meanY, RSquared: 0}
	}

	slope := sxy / sxx
	intercept := meanY - slope*meanX

	ssTot, ssRes := 0.0, 0.0
	for i := range x {
		w := weights[i]
		if w <= 0 {
			continue
		}
		dy := y[i] - meanY
		resid := y[i] - (intercept + slope*x[i])
		ssTot += w * dy * dy
		ssRes += w * resid * resid
	}
	r2 := 0.0
	if ssTot > 0 {
		r2 = 1 - ssRes/ssTot
	}
	return OLSFit{Slope: slope, Intercept: intercept, RSquared: r2}
}
