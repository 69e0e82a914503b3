package stats

import (
	"fmt"
	"math"
)

// GrangerResult holds a Granger causality F-test outcome.
type GrangerResult struct {
	FStatistic   float64 `json:"f_statistic"`
	PValue       float64 `json:"p_value"`
	Lags         int     `json:"lags"`
	Observations int     `json:"observations"`
}

// GrangerCausality tests whether past values of x help predict y beyond y's
// own history, at the given lag order. It fits the restricted model
// y_t ~ y_{t-1..t-lags} and the unrestricted model adding x_{t-1..t-lags},
// and compares residual sums of squares with a nested-regression F-test.
// A small p-value indicates that x Granger-causes y.
func GrangerCausality(x, y []float64, lags int) (GrangerResult, error) {
	if len(x) != len(y) {
		return GrangerResult{}, fmt.Errorf("series length mismatch: %d vs %d", len(x), len(y))
	}
	if lags < 1 {
		return GrangerResult{}, fmt.Errorf("lag order must be positive, got %d", lags)
	}
	obs := len(y) - lags
	df2 := obs - 2*lags - 1
	if df2 < 1 {
		return GrangerResult{}, fmt.Errorf("need more than %d observations for lag order %d, got %d", 3*lags+1, lags, len(y))
	}

	target := make([]float64, obs)
	restricted := make([][]float64, obs)
	unrestricted := make([][]float64, obs)
	for t := 0; t < obs; t++ {
		idx := t + lags
		target[t] = y[idx]
		rRow := make([]float64, 1+lags)
		uRow := make([]float64, 1+2*lags)
		rRow[0] = 1
		uRow[0] = 1
		for l := 1; l <= lags; l++ {
			rRow[l] = y[idx-l]
			uRow[l] = y[idx-l]
			uRow[lags+l] = x[idx-l]
		}
		restricted[t] = rRow
		unrestricted[t] = uRow
	}

	rssR, err := residualSumOfSquares(restricted, target)
	if err != nil {
		return GrangerResult{}, err
	}
	rssU, err := residualSumOfSquares(unrestricted, target)
	if err != nil {
		return GrangerResult{}, err
	}

	// A perfect unrestricted fit would divide by zero; floor the residual
	// so the statistic stays finite and the p-value collapses to ~0.
	const rssFloor = 1e-12
	if rssU < rssFloor {
		rssU = rssFloor
	}
	if rssR < rssU {
		rssR = rssU
	}

	f := ((rssR - rssU) / float64(lags)) / (rssU / float64(df2))
	p := fDistributionSurvival(f, float64(lags), float64(df2))

	return GrangerResult{FStatistic: f, PValue: p, Lags: lags, Observations: obs}, nil
}

// residualSumOfSquares fits target ~ rows by least squares through the
// normal equations and returns the residual sum of squares.
func residualSumOfSquares(rows [][]float64, target []float64) (float64, error) {
	k := len(rows[0])
	xtx := make([][]float64, k)
	xty := make([]float64, k)
	for i := range xtx {
		xtx[i] = make([]float64, k)
	}
	for r, row := range rows {
		for i := 0; i < k; i++ {
			xty[i] += row[i] * target[r]
			for j := i; j < k; j++ {
				xtx[i][j] += row[i] * row[j]
			}
		}
	}
	for i := 1; i < k; i++ {
		for j := 0; j < i; j++ {
			xtx[i][j] = xtx[j][i]
		}
	}

	coef, err := solveLinearSystem(xtx, xty)
	if err != nil {
		return 0, err
	}

	rss := 0.0
	for r, row := range rows {
		pred := 0.0
		for i := 0; i < k; i++ {
			pred += coef[i] * row[i]
		}
		resid := target[r] - pred
		rss += resid * resid
	}
	return rss, nil
}

// solveLinearSystem solves Ax = b by Gaussian elimination with partial
// pivoting. A and b are modified in place.
func solveLinearSystem(a [][]float64, b []float64) ([]float64, error) {
	n := len(b)
	for col := 0; col < n; col++ {
		pivot := col
		for r := col + 1; r < n; r++ {
			if math.Abs(a[r][col]) > math.Abs(a[pivot][col]) {
				pivot = r
			}
		}
		if math.Abs(a[pivot][col]) < 1e-12 {
			return nil, fmt.Errorf("regressor matrix is singular (collinear or constant lagged series)")
		}
		a[col], a[pivot] = a[pivot], a[col]
		b[col], b[pivot] = b[pivot], b[col]

		for r := col + 1; r < n; r++ {
			factor := a[r][col] / a[col][col]
			for c := col; c < n; c++ {
				a[r][c] -= factor * a[col][c]
			}
			b[r] -= factor * b[col]
		}
	}

	solution := make([]float64, n)
	for r := n - 1; r >= 0; r-- {
		sum := b[r]
		for c := r + 1; c < n; c++ {
			sum -= a[r][c] * solution[c]
		}
		solution[r] = sum / a[r][r]
	}
	return solution, nil
}

// fDistributionSurvival returns P(F > f) for an F distribution with d1 and
// d2 degrees of freedom, via the regularized incomplete beta function.
func fDistributionSurvival(f, d1, d2 float64) float64 {
	if f <= 0 {
		return 1
	}
	return regularizedIncompleteBeta(d2/2, d1/2, d2/(d2+d1*f))
}

// regularizedIncompleteBeta computes I_x(a, b) with the continued-fraction
// expansion from Numerical Recipes, using the symmetry relation to keep the
// fraction in its fast-converging region.
func regularizedIncompleteBeta(a, b, x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	lnFront := lgamma(a+b) - lgamma(a) - lgamma(b) + a*math.Log(x) + b*math.Log(1-x)
	front := math.Exp(lnFront)
	if x < (a+1)/(a+b+2) {
		return front * betaContinuedFraction(a, b, x) / a
	}
	return 1 - front*betaContinuedFraction(b, a, 1-x)/b
}

func betaContinuedFraction(a, b, x float64) float64 {
	const (
		maxIterations = 300
		tiny          = 1e-30
		tolerance     = 1e-12
	)

	qab := a + b
	qap := a + 1
	qam := a - 1
	c := 1.0
	d := 1 - qab*x/qap
	if math.Abs(d) < tiny {
		d = tiny
	}
	d = 1 / d
	h := d

	for m := 1; m <= maxIterations; m++ {
		fm := float64(m)
		numerator := fm * (b - fm) * x / ((qam + 2*fm) * (a + 2*fm))
		d = 1 + numerator*d
		if math.Abs(d) < tiny {
			d = tiny
		}
		c = 1 + numerator/c
		if math.Abs(c) < tiny {
			c = tiny
		}
		d = 1 / d
		h *= d * c

		numerator = -(a + fm) * (qab + fm) * x / ((a + 2*fm) * (qap + 2*fm))
		d = 1 + numerator*d
		if math.Abs(d) < tiny {
			d = tiny
		}
		c = 1 + numerator/c
		if math.Abs(c) < tiny {
			c = tiny
		}
		d = 1 / d
		delta := d * c
		h *= delta
		if math.Abs(delta-1) < tolerance {
			break
		}
	}
	return h
}

func lgamma(v float64) float64 {
	lg, _ := math.Lgamma(v)
	return lg
}
