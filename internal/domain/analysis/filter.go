// Package analysis implements the measurement aggregation engine.
package analysis

import (
	"github.com/loadlens/loadlens/internal/domain/bucket"
	"github.com/loadlens/loadlens/internal/domain/sample"
)

// FilterConcurrency keeps only samples whose concurrency level is in the
// allowlist. Samples outside the allowlist are dropped silently, the same
// policy as malformed rows. The filter is idempotent.
func FilterConcurrency(samples []sample.Sample, allowlist []int) []sample.Sample {
	allowed := make(map[int]struct{}, len(allowlist))
	for _, level := range allowlist {
		allowed[level] = struct{}{}
	}

	kept := make([]sample.Sample, 0, len(samples))
	for _, s := range samples {
		if _, ok := allowed[s.Concurrency]; ok {
			kept = append(kept, s)
		}
	}
	return kept
}

// Annotate returns a copy of samples with bucket labels assigned by
// policy. Input samples are not mutated.
func Annotate(samples []sample.Sample, policy bucket.Policy) []sample.Sample {
	annotated := make([]sample.Sample, len(samples))
	for i, s := range samples {
		s.Bucket = policy.Classify(s.PayloadBytes)
		annotated[i] = s
	}
	return annotated
}
