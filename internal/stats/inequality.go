package stats

import (
	"math"
	"sort"
)

// GiniCoefficient returns the Gini inequality measure of a distribution of
// nonnegative values via the sorted cumulative formula
// G = sum((2i - n - 1) * x_i) / (n * sum(x_i)) over ascending-sorted x.
// A uniform vector yields 0. An all-zero vector carries no inequality
// information and also yields 0. The input is not modified.
func GiniCoefficient(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return math.NaN()
	}
	sorted := append([]float64{}, values...)
	sort.Float64s(sorted)

	total := 0.0
	weighted := 0.0
	for i, v := range sorted {
		total += v
		weighted += float64(2*(i+1)-n-1) * v
	}
	if total == 0 {
		return 0
	}
	return weighted / (float64(n) * total)
}
