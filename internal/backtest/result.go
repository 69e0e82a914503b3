package backtest

import (
	"time"

	"github.com/google/uuid"
	"github.com/yourusername/forecast-lab/internal/models"
)

// MetricsBundle holds the scores for one set of forecast/outcome pairs.
// Float fields are NaN when undefined for the input; aggregation filters
// NaN before computing ranges. LogScore is the unnegated mean
// log-likelihood: higher (closer to zero) is better.
type MetricsBundle struct {
	BrierScore     float64 `json:"brier_score"`
	LogScore       float64 `json:"log_score"`
	SphericalScore float64 `json:"spherical_score"`
	ECE            float64 `json:"ece"`
	Accuracy       float64 `json:"accuracy"`
	SampleSize     int     `json:"sample_size"`
}

// Window is one evaluated slice of the record timeline. Derived per call,
// never persisted.
type Window struct {
	WindowNum   int                       `json:"window_num"`
	WindowStart time.Time                 `json:"window_start"`
	WindowEnd   time.Time                 `json:"window_end"`
	EventCount  int                       `json:"event_count"`
	Metrics     MetricsBundle             `json:"metrics"`
	Events      []models.PredictionRecord `json:"events"`
}

// DrawdownPoint traces score degradation relative to the best window seen
// so far. PeakScore is the running minimum Brier score (lower is better),
// so Drawdown = Score - PeakScore >= 0.
type DrawdownPoint struct {
	Window    int     `json:"window"`
	Score     float64 `json:"score"`
	PeakScore float64 `json:"peak_score"`
	Drawdown  float64 `json:"drawdown"`
}

// MetricRange summarizes one metric across windows, NaNs excluded.
type MetricRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
	Avg float64 `json:"avg"`
}

// TimeRange is the overall span covered by an evaluation.
type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Summary aggregates per-window metrics for a rolling run.
type Summary struct {
	WindowCount     int         `json:"window_count"`
	TotalEvents     int         `json:"total_events"`
	EventsPerWindow MetricRange `json:"events_per_window"`
	BrierScore      MetricRange `json:"brier_score"`
	LogScore        MetricRange `json:"log_score"`
	SphericalScore  MetricRange `json:"spherical_score"`
	ECE             MetricRange `json:"ece"`
	Accuracy        MetricRange `json:"accuracy"`
	TimeRange       TimeRange   `json:"time_range"`
}

// RollingResult is the complete, immutable output of a rolling-window run.
type RollingResult struct {
	RunID       uuid.UUID       `json:"run_id"`
	Config      Config          `json:"config"`
	Windows     []Window        `json:"windows"`
	Summary     Summary         `json:"summary"`
	Drawdown    []DrawdownPoint `json:"drawdown"`
	GeneratedAt time.Time       `json:"generated_at"`
}

// SplitResult is the output of a train/test split evaluation.
type SplitResult struct {
	RunID       uuid.UUID                 `json:"run_id"`
	TestSetSize int                       `json:"test_set_size"`
	Metrics     MetricsBundle             `json:"metrics"`
	Events      []models.PredictionRecord `json:"events"`
	Timestamp   time.Time                 `json:"timestamp"`
}

// IntervalBucket is one non-overlapping time bucket of resolved records.
type IntervalBucket struct {
	Interval      string        `json:"interval"`
	IntervalStart time.Time     `json:"interval_start"`
	IntervalEnd   time.Time     `json:"interval_end"`
	EventCount    int           `json:"event_count"`
	Metrics       MetricsBundle `json:"metrics"`
}

// ConfidenceBucket groups resolved records by forecast confidence.
type ConfidenceBucket struct {
	Bucket               int     `json:"bucket"`
	LowerBound           float64 `json:"lower_bound"`
	UpperBound           float64 `json:"upper_bound"`
	SampleCount          int     `json:"sample_count"`
	PredictedProbability float64 `json:"predicted_probability"`
	ActualAccuracy       float64 `json:"actual_accuracy"`
	CalibrationError     float64 `json:"calibration_error"`
	Brier                float64 `json:"brier"`
}

// SequentialStep is one online evaluation step.
type SequentialStep struct {
	Step               int       `json:"step"`
	RecordID           string    `json:"record_id"`
	Timestamp          time.Time `json:"timestamp"`
	Probability        float64   `json:"probability"`
	Outcome            int       `json:"outcome"`
	Brier              float64   `json:"brier"`
	LogScore           float64   `json:"log_score"`
	CumulativeAvgBrier float64   `json:"cumulative_avg_brier"`
	CumulativeAvgLog   float64   `json:"cumulative_avg_log"`
}

// SequentialResult is the output of a sequential (online) evaluation.
type SequentialResult struct {
	RunID            uuid.UUID        `json:"run_id"`
	Steps            []SequentialStep `json:"steps"`
	FinalAvgBrier    float64          `json:"final_avg_brier"`
	FinalAvgLogScore float64          `json:"final_avg_log_score"`
	WarmupEvents     int              `json:"warmup_events"`
	EvaluatedEvents  int              `json:"evaluated_events"`
}
