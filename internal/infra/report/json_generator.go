// Package report renders the aggregated statistics table.
// This file implements the JSON report generator.
package report

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/loadlens/loadlens/internal/domain/analysis"
)

// JSONGenerator generates JSON format reports.
type JSONGenerator struct{}

// NewJSONGenerator creates a new JSON generator.
func NewJSONGenerator() *JSONGenerator {
	return &JSONGenerator{}
}

// Generate generates a JSON report for one analysis run.
func (g *JSONGenerator) Generate(meta Meta, rows []analysis.StatRow) ([]byte, error) {
	output := g.buildJSON(meta, rows)

	content, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal json: %w", err)
	}
	return content, nil
}

// jsonReport represents the JSON report structure.
type jsonReport struct {
	Meta    jsonMeta    `json:"meta"`
	Summary jsonSummary `json:"summary"`
	Rows    []jsonRow   `json:"rows"`
}

// jsonMeta represents report metadata.
type jsonMeta struct {
	RunID       string `json:"run_id"`
	GeneratedAt string `json:"generated_at"`
	Version     string `json:"version"`
}

// jsonSummary represents the run summary section.
type jsonSummary struct {
	BucketPolicy         string `json:"bucket_policy"`
	StatMode             string `json:"stat_mode"`
	ConcurrencyAllowlist []int  `json:"concurrency_allowlist"`
	TotalRows            int    `json:"total_rows"`
	DroppedRows          int    `json:"dropped_rows"`
	FilteredRows         int    `json:"filtered_rows"`
	AnalyzedSamples      int    `json:"analyzed_samples"`
	Groups               int    `json:"groups"`
	Duration             string `json:"duration"`
}

// jsonRow represents one StatRow.
type jsonRow struct {
	Concurrency int     `json:"concurrency"`
	Bucket      string  `json:"bucket"`
	SampleCount int     `json:"sample_count"`
	P50         float64 `json:"p50_ms,omitempty"`
	P75         float64 `json:"p75_ms,omitempty"`
	P90         float64 `json:"p90_ms,omitempty"`
	Mean        float64 `json:"mean_ms,omitempty"`
	Median      float64 `json:"median_ms,omitempty"`
	StdDev      float64 `json:"stddev_ms,omitempty"`
	Min         float64 `json:"min_ms,omitempty"`
	Max         float64 `json:"max_ms,omitempty"`
	Throughput  float64 `json:"throughput_tps"`
}

// buildJSON builds the report structure.
func (g *JSONGenerator) buildJSON(meta Meta, rows []analysis.StatRow) jsonReport {
	out := jsonReport{
		Meta: jsonMeta{
			RunID:       meta.RunID,
			GeneratedAt: meta.GeneratedAt.Format(time.RFC3339),
			Version:     Version,
		},
		Summary: jsonSummary{
			BucketPolicy:         meta.Config.BucketPolicy.String(),
			StatMode:             meta.Config.StatMode.String(),
			ConcurrencyAllowlist: meta.Config.ConcurrencyAllowlist,
			TotalRows:            meta.TotalRows,
			DroppedRows:          meta.Dropped,
			FilteredRows:         meta.Filtered,
			AnalyzedSamples:      meta.Analyzed,
			Groups:               len(rows),
			Duration:             meta.Duration.String(),
		},
		Rows: make([]jsonRow, 0, len(rows)),
	}

	for _, row := range rows {
		jr := jsonRow{
			Concurrency: row.Concurrency,
			Bucket:      string(row.Bucket),
			SampleCount: row.SampleCount,
			Throughput:  row.ThroughputTPS,
		}
		switch meta.Config.StatMode {
		case analysis.StatModeMoments:
			jr.Mean = row.Mean
			jr.Median = row.Median
			jr.StdDev = row.StdDev
			jr.Min = row.Min
			jr.Max = row.Max
		default:
			jr.P50 = row.P50
			jr.P75 = row.P75
			jr.P90 = row.P90
		}
		out.Rows = append(out.Rows, jr)
	}

	return out
}
