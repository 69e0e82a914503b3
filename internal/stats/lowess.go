package stats

import (
	"math"
	"sort"
)

// Lowess smooths y over x by locally weighted linear regression. For each
// point the bandwidthFraction-nearest neighbours (by x distance) are weighted
// with a tri-cube kernel and a local weighted linear fit is solved in closed
// form. Boundary points use an asymmetric window; nothing is padded or
// wrapped. The fitted values are returned in the original input order.
//
// bandwidthFraction is clamped to (0,1]; with a fraction of 1 the fit
// converges to the global OLS line. Returns nil for empty or mismatched
// inputs.
func Lowess(x, y []float64, bandwidthFraction float64) []float64 {
	if !sameShape(x, y) {
		return nil
	}
	n := len(x)
	if bandwidthFraction > 1 {
		bandwidthFraction = 1
	}
	k := int(math.Ceil(bandwidthFraction * float64(n)))
	if k < 2 {
		k = 2
	}
	if k > n {
		k = n
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return x[order[a]] < x[order[b]] })

	sortedX := make([]float64, n)
	sortedY := make([]float64, n)
	for pos, idx := range order {
		sortedX[pos] = x[idx]
		sortedY[pos] = y[idx]
	}

	fitted := make([]float64, n)
	lo := 0
	for pos := 0; pos < n; pos++ {
		lo = slideWindow(sortedX, pos, lo, k)
		fitted[order[pos]] = localFit(sortedX, sortedY, pos, lo, lo+k)
	}
	return fitted
}

// slideWindow advances the left edge of the k-wide window so it holds the
// points nearest to sortedX[pos].
func slideWindow(sortedX []float64, pos, lo, k int) int {
	n := len(sortedX)
	if lo > pos {
		lo = pos
	}
	for lo+k < n && sortedX[pos]-sortedX[lo] > sortedX[lo+k]-sortedX[pos] {
		lo++
	}
	if lo+k > n {
		lo = n - k
	}
	return lo
}

func localFit(sortedX, sortedY []float64, pos, lo, hi int) float64 {
	xClip := sortedX[lo:hi]
	yClip := sortedY[lo:hi]
	center := sortedX[pos]

	maxDist := 0.0
	for _, xv := range xClip {
		if d := math.Abs(xv - center); d > maxDist {
			maxDist = d
		}
	}

	weights := make([]float64, len(xClip))
	if maxDist == 0 {
		// All neighbours share one x; tri-cube distances are undefined
		// and the fit degenerates to a plain mean.
		for i := range weights {
			weights[i] = 1
		}
	} else {
		for i, xv := range xClip {
			weights[i] = tricube(math.Abs(xv-center) / maxDist)
		}
	}

	fit := WeightedOLS(xClip, yClip, weights)
	if math.IsNaN(fit.Slope) {
		return mean(yClip)
	}
	return fit.Intercept + fit.Slope*center
}

func tricube(u float64) float64 {
	if u >= 1 {
		// The farthest neighbour keeps a tiny weight so a window of two
		// points still yields a solvable fit.
		return 1e-9
	}
	c := 1 - u*u*u
	return c * c * c
}
