package stats

import (
	"math"
	"testing"
)

func TestECEPerfectlyCalibrated(t *testing.T) {
	predictions := []float64{1, 1, 0, 0}
	outcomes := []float64{1, 1, 0, 0}
	if got := ExpectedCalibrationError(predictions, outcomes, 10); math.Abs(got) > 1e-12 {
		t.Fatalf("expected ECE 0 for perfectly calibrated forecasts, got %v", got)
	}
}

func TestECESingleRecord(t *testing.T) {
	got := ExpectedCalibrationError([]float64{0.73}, []float64{1}, 10)
	if math.Abs(got-0.27) > 1e-12 {
		t.Fatalf("expected ECE 0.27, got %v", got)
	}
}

func TestECEEmptyBinsContributeNothing(t *testing.T) {
	// Records occupy two of ten bins; the rest must not affect the sum.
	predictions := []float64{0.05, 0.05, 0.95, 0.95}
	outcomes := []float64{0, 1, 1, 1}
	got := ExpectedCalibrationError(predictions, outcomes, 10)
	want := 0.5*math.Abs(0.05-0.5) + 0.5*math.Abs(0.95-1.0)
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("expected ECE %v, got %v", want, got)
	}
}

func TestECEDegenerateInputs(t *testing.T) {
	if got := ExpectedCalibrationError(nil, nil, 10); !math.IsNaN(got) {
		t.Fatalf("expected NaN for empty input, got %v", got)
	}
	if got := ExpectedCalibrationError([]float64{0.5}, []float64{1}, 0); !math.IsNaN(got) {
		t.Fatalf("expected NaN for zero bins, got %v", got)
	}
}

func TestMurphyIdentity(t *testing.T) {
	// Bin-homogeneous forecasts: every forecast sits exactly on one value
	// per bin, so the three-term decomposition must reproduce the Brier
	// score to floating tolerance.
	predictions := []float64{
		0.05, 0.05, 0.05, 0.05,
		0.65, 0.65, 0.65, 0.65,
		0.95, 0.95,
	}
	outcomes := []float64{
		0, 0, 0, 1,
		1, 1, 1, 0,
		1, 1,
	}
	const numBins = 10

	brier := BrierScore(predictions, outcomes)
	parts := BrierDecomposition(predictions, outcomes, numBins)
	reconstructed := parts.Reliability - parts.Resolution + parts.Uncertainty
	if math.Abs(brier-reconstructed) > 1e-9 {
		t.Fatalf("Murphy identity violated: brier=%v, rel-res+unc=%v", brier, reconstructed)
	}
}

func TestBrierDecompositionTerms(t *testing.T) {
	predictions := []float64{0.25, 0.25, 0.75, 0.75}
	outcomes := []float64{0, 1, 1, 1}
	parts := BrierDecomposition(predictions, outcomes, 4)
	if parts.Reliability < 0 || parts.Resolution < 0 {
		t.Fatalf("reliability and resolution must be non-negative: %+v", parts)
	}
	if math.Abs(parts.Uncertainty-0.75*0.25) > 1e-12 {
		t.Fatalf("expected uncertainty %v, got %v", 0.75*0.25, parts.Uncertainty)
	}
}

func TestBrierDecompositionDegenerate(t *testing.T) {
	parts := BrierDecomposition(nil, nil, 10)
	if !math.IsNaN(parts.Reliability) || !math.IsNaN(parts.Resolution) || !math.IsNaN(parts.Uncertainty) {
		t.Fatalf("expected NaN components for empty input, got %+v", parts)
	}
}
