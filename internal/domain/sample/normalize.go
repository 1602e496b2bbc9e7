// Package sample provides the measurement record domain model.
package sample

import "strconv"

// NormalizeResult carries the outcome of normalizing a batch of raw rows.
// Dropped counts rows excluded by the data-quality filter; it is
// informational only and never an error.
type NormalizeResult struct {
	Samples []Sample
	Dropped int
}

// Normalize coerces raw JTL rows into Samples.
//
// A row is dropped when it is shorter than the allThreads field or when
// timeStamp, elapsed, or allThreads fail numeric coercion. sentBytes is
// treated as 0 when absent or unparseable. Dropped rows are never
// surfaced as errors; callers detect them only through the Dropped count.
func Normalize(rows []Raw) NormalizeResult {
	var res NormalizeResult
	for _, row := range rows {
		s, ok := normalizeRow(row)
		if !ok {
			res.Dropped++
			continue
		}
		res.Samples = append(res.Samples, s)
	}
	return res
}

// normalizeRow coerces a single row. ok is false when a required field
// fails coercion.
func normalizeRow(row Raw) (Sample, bool) {
	if len(row) < minFields {
		return Sample{}, false
	}

	ts, err1 := strconv.ParseFloat(row[FieldTimestamp], 64)
	elapsed, err2 := strconv.ParseFloat(row[FieldElapsed], 64)
	threads, err3 := strconv.Atoi(row[FieldAllThreads])
	if err1 != nil || err2 != nil || err3 != nil {
		return Sample{}, false
	}

	sent, err := strconv.Atoi(row[FieldSentBytes])
	if err != nil || sent < 0 {
		sent = 0
	}

	return Sample{
		Timestamp:    ts,
		LatencyMS:    elapsed,
		PayloadBytes: sent,
		Concurrency:  threads,
	}, true
}
