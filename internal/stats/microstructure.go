package stats

import "math"

// KyleLambda estimates price impact per unit of signed volume as the OLS
// slope of price changes on signed volume. Zero-variance volume yields 0
// (the degenerate OLS fallback); empty or mismatched inputs yield NaN.
func KyleLambda(priceChanges, signedVolume []float64) float64 {
	if !sameShape(priceChanges, signedVolume) {
		return math.NaN()
	}
	return OLS(signedVolume, priceChanges).Slope
}

// AmihudIlliquidity returns the Amihud measure mean(|return_i| / volume_i).
// Zero-volume observations carry no price-impact information and are
// skipped; if every observation has zero volume the measure is NaN.
func AmihudIlliquidity(returns, volumes []float64) float64 {
	if !sameShape(returns, volumes) {
		return math.NaN()
	}
	sum := 0.0
	count := 0
	for i, r := range returns {
		if volumes[i] <= 0 {
			continue
		}
		sum += math.Abs(r) / volumes[i]
		count++
	}
	if count == 0 {
		return math.NaN()
	}
	return sum / float64(count)
}
