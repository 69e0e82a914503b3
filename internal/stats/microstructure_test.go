package stats

import (
	"math"
	"testing"
)

func TestKyleLambdaLinearImpact(t *testing.T) {
	signedVolume := []float64{-200, -100, 50, 100, 300}
	priceChanges := make([]float64, len(signedVolume))
	for i, v := range signedVolume {
		priceChanges[i] = 0.001 * v
	}
	got := KyleLambda(priceChanges, signedVolume)
	if math.Abs(got-0.001) > 1e-12 {
		t.Fatalf("expected lambda 0.001, got %v", got)
	}
}

func TestKyleLambdaZeroVarianceVolume(t *testing.T) {
	got := KyleLambda([]float64{0.1, 0.2, 0.3}, []float64{100, 100, 100})
	if got != 0 {
		t.Fatalf("expected 0 for zero-variance volume, got %v", got)
	}
}

func TestAmihudIlliquidity(t *testing.T) {
	got := AmihudIlliquidity([]float64{0.02, -0.04}, []float64{2, 4})
	if math.Abs(got-0.01) > 1e-12 {
		t.Fatalf("expected amihud 0.01, got %v", got)
	}
}

func TestAmihudSkipsZeroVolume(t *testing.T) {
	got := AmihudIlliquidity([]float64{0.02, 0.5}, []float64{2, 0})
	if math.Abs(got-0.01) > 1e-12 {
		t.Fatalf("expected zero-volume observation skipped, got %v", got)
	}
	if got := AmihudIlliquidity([]float64{0.1}, []float64{0}); !math.IsNaN(got) {
		t.Fatalf("expected NaN when all volumes are zero, got %v", got)
	}
}
