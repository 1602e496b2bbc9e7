// Package analysis implements the measurement aggregation engine.
// This file implements grouping and per-group statistics.
package analysis

import (
	"math"
	"sort"

	"github.com/loadlens/loadlens/internal/domain/bucket"
	"github.com/loadlens/loadlens/internal/domain/sample"
)

// GroupKey identifies one aggregation group.
type GroupKey struct {
	Concurrency int
	Bucket      bucket.Label
}

// StatRow is one aggregate over all samples sharing a GroupKey. The
// StatMode of the run decides which latency fields are populated: P50/P75/P90
// in percentiles mode, Mean/Median/StdDev/Min/Max in moments mode.
type StatRow struct {
	Concurrency int
	Bucket      bucket.Label

	// SampleCount is the number of samples with this exact GroupKey.
	SampleCount int

	// Percentile statistics (ms), linear-interpolation estimator.
	P50 float64
	P75 float64
	P90 float64

	// Moment statistics (ms). StdDev is the sample standard deviation
	// (n-1) and is reported as 0 for a single-sample group.
	Mean   float64
	Median float64
	StdDev float64
	Min    float64
	Max    float64

	// ThroughputTPS is SampleCount divided by the group's timestamp span
	// in seconds, 0 when the span is zero.
	ThroughputTPS float64
}

// Aggregate groups annotated samples by (concurrency, bucket) and computes
// per-group statistics according to cfg.StatMode.
//
// Rows are sorted by concurrency, then by the bucket's canonical order
// under the configured policy, so output is deterministic for
// deterministic input. Empty input yields an empty table, not an error.
func Aggregate(samples []sample.Sample, cfg Config) ([]StatRow, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	policy, err := bucket.ForName(cfg.BucketPolicy)
	if err != nil {
		return nil, err
	}

	groups := make(map[GroupKey][]float64)
	spans := make(map[GroupKey][2]float64)

	for _, s := range samples {
		key := GroupKey{Concurrency: s.Concurrency, Bucket: s.Bucket}

		groups[key] = append(groups[key], s.LatencyMS)

		span, seen := spans[key]
		if !seen {
			spans[key] = [2]float64{s.Timestamp, s.Timestamp}
			continue
		}
		if s.Timestamp < span[0] {
			span[0] = s.Timestamp
		}
		if s.Timestamp > span[1] {
			span[1] = s.Timestamp
		}
		spans[key] = span
	}

	rows := make([]StatRow, 0, len(groups))
	for key, latencies := range groups {
		span := spans[key]
		rows = append(rows, buildRow(key, latencies, span[0], span[1], cfg.StatMode))
	}

	sortRows(rows, policy)
	return rows, nil
}

// buildRow computes the statistics of one group.
func buildRow(key GroupKey, latencies []float64, minTS, maxTS float64, mode StatMode) StatRow {
	row := StatRow{
		Concurrency: key.Concurrency,
		Bucket:      key.Bucket,
		SampleCount: len(latencies),
	}

	sorted := make([]float64, len(latencies))
	copy(sorted, latencies)
	sort.Float64s(sorted)

	switch mode {
	case StatModePercentiles:
		row.P50 = percentile(sorted, 50)
		row.P75 = percentile(sorted, 75)
		row.P90 = percentile(sorted, 90)
	case StatModeMoments:
		row.Mean = mean(latencies)
		row.Median = percentile(sorted, 50)
		row.StdDev = stddev(latencies, row.Mean)
		row.Min = sorted[0]
		row.Max = sorted[len(sorted)-1]
	}

	spanSec := (maxTS - minTS) / 1000
	if spanSec > 0 {
		row.ThroughputTPS = float64(len(latencies)) / spanSec
	}

	return row
}

// percentile computes the p-th percentile of sorted values using linear
// interpolation between the two nearest ranks.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}

	index := (p / 100.0) * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[lower]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// mean computes the arithmetic mean of values.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// stddev computes the sample standard deviation (n-1). A group with a
// single sample has no spread; the degenerate value is 0.
func stddev(values []float64, mean float64) float64 {
	if len(values) <= 1 {
		return 0
	}
	var varianceSum float64
	for _, v := range values {
		diff := v - mean
		varianceSum += diff * diff
	}
	return math.Sqrt(varianceSum / float64(len(values)-1))
}

// sortRows orders rows by concurrency, then by the bucket's position in
// the policy's canonical label order.
func sortRows(rows []StatRow, policy bucket.Policy) {
	order := make(map[bucket.Label]int)
	for i, label := range policy.Labels() {
		order[label] = i
	}

	bucketIndex := func(l bucket.Label) int {
		if i, ok := order[l]; ok {
			return i
		}
		return len(order)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Concurrency != rows[j].Concurrency {
			return rows[i].Concurrency < rows[j].Concurrency
		}
		return bucketIndex(rows[i].Bucket) < bucketIndex(rows[j].Bucket)
	})
}
