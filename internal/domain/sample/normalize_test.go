// Package sample provides unit tests for row normalization.
package sample

import "testing"

// validRow returns a well-formed 17-field JTL row.
func validRow() Raw {
	return Raw{
		"1700000000000", "150", "POST /api/process", "200", "OK",
		"Thread Group 1-1", "text", "true", "", "512",
		"1024", "8", "8", "http://localhost:8080/api/process", "140",
		"0", "5",
	}
}

// TestNormalize_ValidRow tests coercion of a well-formed row.
func TestNormalize_ValidRow(t *testing.T) {
	res := Normalize([]Raw{validRow()})

	if res.Dropped != 0 {
		t.Fatalf("Dropped = %d, want 0", res.Dropped)
	}
	if len(res.Samples) != 1 {
		t.Fatalf("len(Samples) = %d, want 1", len(res.Samples))
	}

	s := res.Samples[0]
	if s.Timestamp != 1700000000000 {
		t.Errorf("Timestamp = %v, want 1700000000000", s.Timestamp)
	}
	if s.LatencyMS != 150 {
		t.Errorf("LatencyMS = %v, want 150", s.LatencyMS)
	}
	if s.PayloadBytes != 1024 {
		t.Errorf("PayloadBytes = %d, want 1024", s.PayloadBytes)
	}
	if s.Concurrency != 8 {
		t.Errorf("Concurrency = %d, want 8", s.Concurrency)
	}
	if s.Bucket != "" {
		t.Errorf("Bucket = %q, want empty before annotation", s.Bucket)
	}
}

// TestNormalize_DropsMalformedRows tests that rows failing required-field
// coercion are excluded, reducing the output count by exactly that number.
func TestNormalize_DropsMalformedRows(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(Raw)
	}{
		{"non-numeric timestamp", func(r Raw) { r[FieldTimestamp] = "yesterday" }},
		{"empty timestamp", func(r Raw) { r[FieldTimestamp] = "" }},
		{"non-numeric elapsed", func(r Raw) { r[FieldElapsed] = "fast" }},
		{"non-numeric allThreads", func(r Raw) { r[FieldAllThreads] = "many" }},
		{"fractional allThreads", func(r Raw) { r[FieldAllThreads] = "8.5" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bad := validRow()
			tt.mutate(bad)
			rows := []Raw{validRow(), bad, validRow()}

			res := Normalize(rows)
			if len(res.Samples) != 2 {
				t.Errorf("len(Samples) = %d, want 2", len(res.Samples))
			}
			if res.Dropped != 1 {
				t.Errorf("Dropped = %d, want 1", res.Dropped)
			}
		})
	}
}

// TestNormalize_ShortRow tests that rows shorter than the allThreads
// field are dropped.
func TestNormalize_ShortRow(t *testing.T) {
	res := Normalize([]Raw{{"1700000000000", "150", "label"}})

	if len(res.Samples) != 0 || res.Dropped != 1 {
		t.Errorf("got %d samples, %d dropped, want 0 and 1", len(res.Samples), res.Dropped)
	}
}

// TestNormalize_SentBytesDefaultsToZero tests the sentBytes fallback.
func TestNormalize_SentBytesDefaultsToZero(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"empty", ""},
		{"non-numeric", "n/a"},
		{"negative", "-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := validRow()
			row[FieldSentBytes] = tt.value

			res := Normalize([]Raw{row})
			if res.Dropped != 0 {
				t.Fatalf("Dropped = %d, want 0", res.Dropped)
			}
			if res.Samples[0].PayloadBytes != 0 {
				t.Errorf("PayloadBytes = %d, want 0", res.Samples[0].PayloadBytes)
			}
		})
	}
}

// TestNormalize_EmptyInput tests that zero rows is a valid degenerate input.
func TestNormalize_EmptyInput(t *testing.T) {
	res := Normalize(nil)
	if len(res.Samples) != 0 || res.Dropped != 0 {
		t.Errorf("got %d samples, %d dropped, want 0 and 0", len(res.Samples), res.Dropped)
	}
}
