// Package analysis provides unit tests for the concurrency filter and
// bucket annotation.
package analysis

import (
	"testing"

	"github.com/loadlens/loadlens/internal/domain/bucket"
	"github.com/loadlens/loadlens/internal/domain/sample"
)

func sampleAt(concurrency int) sample.Sample {
	return sample.Sample{Timestamp: 1, LatencyMS: 10, Concurrency: concurrency}
}

// TestFilterConcurrency tests allow-list filtering.
func TestFilterConcurrency(t *testing.T) {
	samples := []sample.Sample{
		sampleAt(1), sampleAt(5), sampleAt(10), sampleAt(64), sampleAt(100),
	}

	kept := FilterConcurrency(samples, []int{1, 10, 100, 1000})

	if len(kept) != 3 {
		t.Fatalf("len(kept) = %d, want 3", len(kept))
	}
	for _, s := range kept {
		switch s.Concurrency {
		case 1, 10, 100:
		default:
			t.Errorf("concurrency %d should have been filtered out", s.Concurrency)
		}
	}
}

// TestFilterConcurrency_Idempotent tests that filtering an already
// filtered sequence yields the same sequence.
func TestFilterConcurrency_Idempotent(t *testing.T) {
	allowlist := []int{1, 2, 4, 8}
	samples := []sample.Sample{sampleAt(1), sampleAt(3), sampleAt(8), sampleAt(16)}

	once := FilterConcurrency(samples, allowlist)
	twice := FilterConcurrency(once, allowlist)

	if len(once) != len(twice) {
		t.Fatalf("second pass changed length: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Errorf("sample %d changed on second pass", i)
		}
	}
}

// TestFilterConcurrency_Empty tests degenerate inputs.
func TestFilterConcurrency_Empty(t *testing.T) {
	if kept := FilterConcurrency(nil, []int{1}); len(kept) != 0 {
		t.Errorf("filtering nil samples should yield empty, got %d", len(kept))
	}
	if kept := FilterConcurrency([]sample.Sample{sampleAt(1)}, nil); len(kept) != 0 {
		t.Errorf("empty allowlist should drop everything, got %d", len(kept))
	}
}

// TestAnnotate tests bucket annotation without input mutation.
func TestAnnotate(t *testing.T) {
	policy, err := bucket.ForName(bucket.PolicyNearest)
	if err != nil {
		t.Fatal(err)
	}

	samples := []sample.Sample{
		{PayloadBytes: 1024, Concurrency: 1},
		{PayloadBytes: 5242880, Concurrency: 1},
	}

	annotated := Annotate(samples, policy)

	if annotated[0].Bucket != "1KB" {
		t.Errorf("Bucket = %s, want 1KB", annotated[0].Bucket)
	}
	if annotated[1].Bucket != "5MB" {
		t.Errorf("Bucket = %s, want 5MB", annotated[1].Bucket)
	}
	if samples[0].Bucket != "" || samples[1].Bucket != "" {
		t.Error("Annotate must not mutate its input")
	}
}
