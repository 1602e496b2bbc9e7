// Package report renders the aggregated statistics table.
// This file implements text charts for terminal summaries.
package report

import (
	"fmt"
	"strings"

	"github.com/loadlens/loadlens/internal/domain/analysis"
)

// ChartGenerator generates text-based charts for terminal output.
type ChartGenerator struct{}

// NewChartGenerator creates a new chart generator.
func NewChartGenerator() *ChartGenerator {
	return &ChartGenerator{}
}

// GenerateLatencyBars generates a horizontal bar chart with one bar per
// aggregation group. The bar length tracks the group's headline latency:
// p50 in percentiles mode, mean in moments mode.
func (g *ChartGenerator) GenerateLatencyBars(rows []analysis.StatRow, mode analysis.StatMode, width int) string {
	if len(rows) == 0 {
		return ""
	}

	labels := make([]string, len(rows))
	values := make([]float64, len(rows))
	for i, row := range rows {
		labels[i] = fmt.Sprintf("c=%d %s (n=%d)", row.Concurrency, row.Bucket, row.SampleCount)
		values[i] = g.headlineLatency(row, mode)
	}

	return g.generateBarChart(labels, values, width)
}

// GenerateThroughputBars generates a horizontal bar chart of per-group
// throughput in transactions per second.
func (g *ChartGenerator) GenerateThroughputBars(rows []analysis.StatRow, width int) string {
	if len(rows) == 0 {
		return ""
	}

	labels := make([]string, len(rows))
	values := make([]float64, len(rows))
	for i, row := range rows {
		labels[i] = fmt.Sprintf("c=%d %s (n=%d)", row.Concurrency, row.Bucket, row.SampleCount)
		values[i] = row.ThroughputTPS
	}

	return g.generateBarChart(labels, values, width)
}

// headlineLatency picks the single latency value a bar represents.
func (g *ChartGenerator) headlineLatency(row analysis.StatRow, mode analysis.StatMode) float64 {
	if mode == analysis.StatModeMoments {
		return row.Mean
	}
	return row.P50
}

// generateBarChart generates a simple horizontal bar chart.
func (g *ChartGenerator) generateBarChart(labels []string, values []float64, width int) string {
	if len(labels) != len(values) || len(labels) == 0 {
		return ""
	}

	// Find max for scaling
	max := 0.0
	for _, v := range values {
		if v > max {
			max = v
		}
	}
	if max == 0 {
		max = 1
	}

	// Find max label length
	maxLabelLen := 0
	for _, l := range labels {
		if len(l) > maxLabelLen {
			maxLabelLen = len(l)
		}
	}

	barSpace := width - maxLabelLen - 12
	if barSpace < 10 {
		barSpace = 10
	}

	var sb strings.Builder
	for i, label := range labels {
		barLength := int(values[i] / max * float64(barSpace))
		if barLength < 0 {
			barLength = 0
		}
		bar := strings.Repeat("█", barLength)
		sb.WriteString(fmt.Sprintf("%-*s │%s %.2f\n", maxLabelLen, label, bar, values[i]))
	}

	return sb.String()
}
