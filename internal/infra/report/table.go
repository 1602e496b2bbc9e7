// Package report renders the aggregated statistics table.
// This file implements the CSV and Markdown table writers.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/loadlens/loadlens/internal/domain/analysis"
)

// Headers returns the table column headers for a stat mode.
func Headers(mode analysis.StatMode) []string {
	switch mode {
	case analysis.StatModeMoments:
		return []string{"concurrency", "bucket", "sample_count", "mean_ms", "median_ms", "stddev_ms", "min_ms", "max_ms", "throughput_tps"}
	default:
		return []string{"concurrency", "bucket", "sample_count", "p50_ms", "p75_ms", "p90_ms", "throughput_tps"}
	}
}

// RowValues returns the table cell values of one StatRow for a stat mode.
func RowValues(row analysis.StatRow, mode analysis.StatMode) []string {
	f := func(v float64) string {
		return strconv.FormatFloat(v, 'f', 2, 64)
	}

	switch mode {
	case analysis.StatModeMoments:
		return []string{
			strconv.Itoa(row.Concurrency),
			string(row.Bucket),
			strconv.Itoa(row.SampleCount),
			f(row.Mean), f(row.Median), f(row.StdDev), f(row.Min), f(row.Max),
			f(row.ThroughputTPS),
		}
	default:
		return []string{
			strconv.Itoa(row.Concurrency),
			string(row.Bucket),
			strconv.Itoa(row.SampleCount),
			f(row.P50), f(row.P75), f(row.P90),
			f(row.ThroughputTPS),
		}
	}
}

// CSVWriter writes the statistics table as CSV.
type CSVWriter struct{}

// NewCSVWriter creates a new CSV table writer.
func NewCSVWriter() *CSVWriter {
	return &CSVWriter{}
}

// Write writes the table with a header row.
func (w *CSVWriter) Write(out io.Writer, rows []analysis.StatRow, mode analysis.StatMode) error {
	cw := csv.NewWriter(out)

	if err := cw.Write(Headers(mode)); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range rows {
		if err := cw.Write(RowValues(row, mode)); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// MarkdownWriter writes the statistics table as a Markdown table.
type MarkdownWriter struct{}

// NewMarkdownWriter creates a new Markdown table writer.
func NewMarkdownWriter() *MarkdownWriter {
	return &MarkdownWriter{}
}

// Write writes the table. An empty table produces only the header, which
// callers should treat as "no data to report".
func (w *MarkdownWriter) Write(out io.Writer, rows []analysis.StatRow, mode analysis.StatMode) error {
	headers := Headers(mode)

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	cells := make([][]string, len(rows))
	for i, row := range rows {
		cells[i] = RowValues(row, mode)
		for j, c := range cells[i] {
			if len(c) > widths[j] {
				widths[j] = len(c)
			}
		}
	}

	var sb strings.Builder
	writeLine := func(values []string) {
		sb.WriteString("|")
		for i, v := range values {
			sb.WriteString(" ")
			sb.WriteString(v)
			sb.WriteString(strings.Repeat(" ", widths[i]-len(v)))
			sb.WriteString(" |")
		}
		sb.WriteString("\n")
	}

	writeLine(headers)
	sb.WriteString("|")
	for _, w := range widths {
		sb.WriteString(strings.Repeat("-", w+2))
		sb.WriteString("|")
	}
	sb.WriteString("\n")
	for _, row := range cells {
		writeLine(row)
	}

	_, err := io.WriteString(out, sb.String())
	return err
}
