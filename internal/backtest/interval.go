package backtest

import (
	"fmt"
	"time"

	"github.com/yourusername/forecast-lab/internal/metrics"
	"github.com/yourusername/forecast-lab/internal/models"
)

// ByTimeInterval partitions the full timestamp range of resolved records
// into consecutive non-overlapping buckets of intervalDays and scores each
// one. Only non-empty buckets are emitted.
func (e *Engine) ByTimeInterval(records []models.PredictionRecord, intervalDays int) ([]IntervalBucket, error) {
	if intervalDays <= 0 {
		return nil, fmt.Errorf("%w: interval must be positive, got %d days", models.ErrInvalidConfig, intervalDays)
	}
	started := time.Now()

	resolved := resolvedSorted(records)
	if len(resolved) == 0 {
		metrics.RecordInsufficientData("interval")
		return nil, fmt.Errorf("time interval: %w: no resolved records", models.ErrInsufficientData)
	}

	first := resolved[0].CreatedAt
	last := resolved[len(resolved)-1].CreatedAt

	var buckets []IntervalBucket
	for bucketStart := first; !bucketStart.After(last); bucketStart = bucketStart.AddDate(0, 0, intervalDays) {
		bucketEnd := bucketStart.AddDate(0, 0, intervalDays)
		events := selectWindow(resolved, bucketStart, bucketEnd)
		if len(events) == 0 {
			continue
		}
		buckets = append(buckets, IntervalBucket{
			Interval:      fmt.Sprintf("%s/%s", bucketStart.Format("2006-01-02"), bucketEnd.Format("2006-01-02")),
			IntervalStart: bucketStart,
			IntervalEnd:   bucketEnd,
			EventCount:    len(events),
			Metrics:       scoreRecords(events),
		})
	}

	metrics.RecordEvaluation("interval", time.Since(started).Seconds())
	return buckets, nil
}
