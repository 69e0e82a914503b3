package backtest

import "math"

// drawdownTrace computes the running-minimum drawdown over the emitted
// windows' Brier scores. Lower Brier is better, so the peak is the smallest
// score seen so far and drawdown measures degradation from it.
func drawdownTrace(windows []Window) []DrawdownPoint {
	trace := make([]DrawdownPoint, 0, len(windows))
	peak := math.Inf(1)
	for i, w := range windows {
		score := w.Metrics.BrierScore
		if math.IsNaN(score) {
			continue
		}
		if score < peak {
			peak = score
		}
		trace = append(trace, DrawdownPoint{
			Window:    i,
			Score:     score,
			PeakScore: peak,
			Drawdown:  score - peak,
		})
	}
	return trace
}

// summarize aggregates per-window metrics. NaN values are excluded before
// computing min/max/avg so a single degenerate window cannot poison the
// summary.
func summarize(windows []Window) Summary {
	summary := Summary{
		WindowCount:     len(windows),
		EventsPerWindow: nanRange(nil),
		BrierScore:      nanRange(nil),
		LogScore:        nanRange(nil),
		SphericalScore:  nanRange(nil),
		ECE:             nanRange(nil),
		Accuracy:        nanRange(nil),
	}
	if len(windows) == 0 {
		return summary
	}

	counts := make([]float64, len(windows))
	briers := make([]float64, len(windows))
	logs := make([]float64, len(windows))
	sphericals := make([]float64, len(windows))
	eces := make([]float64, len(windows))
	accuracies := make([]float64, len(windows))
	for i, w := range windows {
		summary.TotalEvents += w.EventCount
		counts[i] = float64(w.EventCount)
		briers[i] = w.Metrics.BrierScore
		logs[i] = w.Metrics.LogScore
		sphericals[i] = w.Metrics.SphericalScore
		eces[i] = w.Metrics.ECE
		accuracies[i] = w.Metrics.Accuracy
	}

	summary.EventsPerWindow = nanRange(counts)
	summary.BrierScore = nanRange(briers)
	summary.LogScore = nanRange(logs)
	summary.SphericalScore = nanRange(sphericals)
	summary.ECE = nanRange(eces)
	summary.Accuracy = nanRange(accuracies)
	summary.TimeRange = TimeRange{
		Start: windows[0].WindowStart,
		End:   windows[len(windows)-1].WindowEnd,
	}
	return summary
}

// nanRange computes {min,max,avg} over the non-NaN values. All-NaN (or
// empty) input yields NaN fields, which callers must check before use.
func nanRange(values []float64) MetricRange {
	minV := math.NaN()
	maxV := math.NaN()
	sum := 0.0
	count := 0
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		if count == 0 || v < minV {
			minV = v
		}
		if count == 0 || v > maxV {
			maxV = v
		}
		sum += v
		count++
	}
	if count == 0 {
		return MetricRange{Min: math.NaN(), Max: math.NaN(), Avg: math.NaN()}
	}
	return MetricRange{Min: minV, Max: maxV, Avg: sum / float64(count)}
}
