package stats

import "math"

// BrierComponents holds the Murphy decomposition of the Brier score.
// Given homogeneous forecasts within each bin the identity
// BrierScore = Reliability - Resolution + Uncertainty holds exactly.
type BrierComponents struct {
	Reliability float64 `json:"reliability"`
	Resolution  float64 `json:"resolution"`
	Uncertainty float64 `json:"uncertainty"`
}

// ExpectedCalibrationError buckets predictions into numBins equal-width bins
// over [0,1] and returns the sample-weighted mean absolute gap between the
// average forecast and the observed frequency per bin. Empty bins contribute
// nothing. Returns NaN for empty or mismatched inputs, or numBins < 1.
func ExpectedCalibrationError(predictions, outcomes []float64, numBins int) float64 {
	if !sameShape(predictions, outcomes) || numBins < 1 {
		return math.NaN()
	}
	binPredSum := make([]float64, numBins)
	binOutSum := make([]float64, numBins)
	binCount := make([]int, numBins)
	for i, p := range predictions {
		b := binIndex(p, numBins)
		binPredSum[b] += p
		binOutSum[b] += outcomes[i]
		binCount[b]++
	}

	n := float64(len(predictions))
	ece := 0.0
	for b := 0; b < numBins; b++ {
		if binCount[b] == 0 {
			continue
		}
		count := float64(binCount[b])
		gap := binPredSum[b]/count - binOutSum[b]/count
		ece += (count / n) * math.Abs(gap)
	}
	return ece
}

// BrierDecomposition splits the Brier score into reliability (calibration),
// resolution (sharpness) and uncertainty (base-rate variance) terms using
// the same equal-width binning as ExpectedCalibrationError.
func BrierDecomposition(predictions, outcomes []float64, numBins int) BrierComponents {
	nan := BrierComponents{math.NaN(), math.NaN(), math.NaN()}
	if !sameShape(predictions, outcomes) || numBins < 1 {
		return nan
	}

	binPredSum := make([]float64, numBins)
	binOutSum := make([]float64, numBins)
	binCount := make([]int, numBins)
	baseRate := 0.0
	for i, p := range predictions {
		b := binIndex(p, numBins)
		binPredSum[b] += p
		binOutSum[b] += outcomes[i]
		binCount[b]++
		baseRate += outcomes[i]
	}
	n := float64(len(predictions))
	baseRate /= n

	reliability := 0.0
	resolution := 0.0
	for b := 0; b < numBins; b++ {
		if binCount[b] == 0 {
			continue
		}
		count := float64(binCount[b])
		meanPred := binPredSum[b] / count
		meanOut := binOutSum[b] / count
		reliability += (count / n) * (meanPred - meanOut) * (meanPred - meanOut)
		resolution += (count / n) * (meanOut - baseRate) * (meanOut - baseRate)
	}

	return BrierComponents{
		Reliability: reliability,
		Resolution:  resolution,
		Uncertainty: baseRate * (1 - baseRate),
	}
}

// binIndex maps a probability to an equal-width bin, with p=1 folded into
// the top bin.
func binIndex(p float64, numBins int) int {
	b := int(p * float64(numBins))
	if b >= numBins {
		b = numBins - 1
	}
	if b < 0 {
		b = 0
	}
	return b
}
