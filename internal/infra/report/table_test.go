// Package report provides unit tests for the table writers.
package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loadlens/loadlens/internal/domain/analysis"
)

func statRows() []analysis.StatRow {
	return []analysis.StatRow{
		{
			Concurrency: 1, Bucket: "1KB", SampleCount: 10,
			P50: 12.5, P75: 20, P90: 31.25,
			Mean: 15, Median: 12.5, StdDev: 4.2, Min: 8, Max: 40,
			ThroughputTPS: 9.5,
		},
		{
			Concurrency: 10, Bucket: "4KB", SampleCount: 3,
			P50: 100, P75: 150, P90: 180,
			Mean: 120, Median: 100, StdDev: 0, Min: 90, Max: 200,
			ThroughputTPS: 0,
		},
	}
}

// TestCSVWriter_Percentiles tests the percentile-mode CSV table.
func TestCSVWriter_Percentiles(t *testing.T) {
	var buf bytes.Buffer
	err := NewCSVWriter().Write(&buf, statRows(), analysis.StatModePercentiles)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "concurrency,bucket,sample_count,p50_ms,p75_ms,p90_ms,throughput_tps", lines[0])
	assert.Equal(t, "1,1KB,10,12.50,20.00,31.25,9.50", lines[1])
	assert.Equal(t, "10,4KB,3,100.00,150.00,180.00,0.00", lines[2])
}

// TestCSVWriter_Moments tests the moments-mode CSV table.
func TestCSVWriter_Moments(t *testing.T) {
	var buf bytes.Buffer
	err := NewCSVWriter().Write(&buf, statRows(), analysis.StatModeMoments)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "concurrency,bucket,sample_count,mean_ms,median_ms,stddev_ms,min_ms,max_ms,throughput_tps", lines[0])
	assert.Equal(t, "1,1KB,10,15.00,12.50,4.20,8.00,40.00,9.50", lines[1])
}

// TestCSVWriter_EmptyTable tests that an empty table is header-only.
func TestCSVWriter_EmptyTable(t *testing.T) {
	var buf bytes.Buffer
	err := NewCSVWriter().Write(&buf, nil, analysis.StatModePercentiles)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 1)
}

// TestMarkdownWriter tests the Markdown table layout.
func TestMarkdownWriter(t *testing.T) {
	var buf bytes.Buffer
	err := NewMarkdownWriter().Write(&buf, statRows(), analysis.StatModePercentiles)
	require.NoError(t, err)

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)

	assert.Contains(t, lines[0], "concurrency")
	assert.Contains(t, lines[0], "p90_ms")
	assert.True(t, strings.HasPrefix(lines[1], "|-"))
	assert.Contains(t, lines[2], "1KB")
	assert.Contains(t, lines[3], "4KB")

	// Every line has the same pipe count.
	pipes := strings.Count(lines[0], "|")
	for i, line := range lines {
		assert.Equal(t, pipes, strings.Count(line, "|"), "line %d", i)
	}
}
