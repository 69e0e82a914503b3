package stats

import (
	"math"
	"sort"
)

// Pearson returns the Pearson correlation coefficient of two equal-length
// series. A constant series has no linear association with anything, so the
// conventional fallback of 0 is returned instead of NaN. Empty or mismatched
// inputs return NaN.
func Pearson(x, y []float64) float64 {
	if !sameShape(x, y) {
		return math.NaN()
	}
	meanX := mean(x)
	meanY := mean(y)
	sxx, syy, sxy := 0.0, 0.0, 0.0
	for i := range x {
		dx := x[i] - meanX
		dy := y[i] - meanY
		sxx += dx * dx
		syy += dy * dy
		sxy += dx * dy
	}
	if sxx == 0 || syy == 0 {
		return 0
	}
	return sxy / math.Sqrt(sxx*syy)
}

// Spearman returns the rank correlation of two series: both are converted to
// ranks (ties receive the average rank) and the Pearson coefficient of the
// ranks is returned.
func Spearman(x, y []float64) float64 {
	if !sameShape(x, y) {
		return math.NaN()
	}
	return Pearson(ranks(x), ranks(y))
}

// CrossCorrelation returns the Pearson correlation between x and y shifted
// by lag observations: corr(x[0:n-lag], y[lag:n]) for lag >= 0. A negative
// lag swaps the roles, so a negative lag means the second series leads.
func CrossCorrelation(x, y []float64, lag int) float64 {
	if !sameShape(x, y) {
		return math.NaN()
	}
	if lag < 0 {
		return CrossCorrelation(y, x, -lag)
	}
	n := len(x)
	if lag >= n {
		return math.NaN()
	}
	return Pearson(x[:n-lag], y[lag:])
}

// ranks converts values to 1-based ranks with ties averaged.
func ranks(values []float64) []float64 {
	n := len(values)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return values[order[a]] < values[order[b]] })

	ranked := make([]float64, n)
	for i := 0; i < n; {
		j := i
		for j+1 < n && values[order[j+1]] == values[order[i]] {
			j++
		}
		// Average rank across the tie group.
		avg := float64(i+j)/2 + 1
		for k := i; k <= j; k++ {
			ranked[order[k]] = avg
		}
		i = j + 1
	}
	return ranked
}
