// Package report renders the aggregated statistics table.
// This file implements PNG chart rendering with gonum/plot.
package report

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/loadlens/loadlens/internal/domain/analysis"
	"github.com/loadlens/loadlens/internal/domain/bucket"
)

// seriesColors is the palette cycled across bucket series.
var seriesColors = []color.RGBA{
	{R: 31, G: 119, B: 180, A: 255},
	{R: 255, G: 127, B: 14, A: 255},
	{R: 44, G: 160, B: 44, A: 255},
	{R: 214, G: 39, B: 40, A: 255},
	{R: 148, G: 103, B: 189, A: 255},
	{R: 140, G: 86, B: 75, A: 255},
	{R: 227, G: 119, B: 194, A: 255},
	{R: 127, G: 127, B: 127, A: 255},
}

// PlotGenerator renders PNG latency charts.
type PlotGenerator struct{}

// NewPlotGenerator creates a new plot generator.
func NewPlotGenerator() *PlotGenerator {
	return &PlotGenerator{}
}

// GenerateLatencyPlot renders latency versus concurrency, one series per
// bucket label in the policy's canonical order, and saves it to
// outputFile (format decided by the file extension).
//
// In percentiles mode each bucket gets three lines: p50 solid, p75
// dashed, p90 dotted. In moments mode each bucket gets a solid mean line
// and a dashed median line.
func (g *PlotGenerator) GenerateLatencyPlot(rows []analysis.StatRow, mode analysis.StatMode, order []bucket.Label, outputFile string) error {
	if len(rows) == 0 {
		return fmt.Errorf("no rows to plot")
	}

	p := plot.New()
	p.X.Label.Text = "Concurrency (active workers)"
	p.Y.Label.Text = "Latency (ms)"
	if mode == analysis.StatModeMoments {
		p.Title.Text = "Latency vs Concurrency by Payload Size\n(mean solid, median dashed)"
	} else {
		p.Title.Text = "Latency Percentiles vs Concurrency by Payload Size\n(p50 solid, p75 dashed, p90 dotted)"
	}

	// Rows grouped per bucket, preserving the aggregator's
	// concurrency-ascending order within each bucket.
	byBucket := make(map[bucket.Label][]analysis.StatRow)
	for _, row := range rows {
		byBucket[row.Bucket] = append(byBucket[row.Bucket], row)
	}

	colorIdx := 0
	for _, label := range order {
		group, exists := byBucket[label]
		if !exists || len(group) == 0 {
			continue
		}

		c := seriesColors[colorIdx%len(seriesColors)]
		colorIdx++

		primary := make(plotter.XYs, len(group))
		secondary := make(plotter.XYs, len(group))
		tertiary := make(plotter.XYs, len(group))
		for i, row := range group {
			x := float64(row.Concurrency)
			primary[i].X, secondary[i].X, tertiary[i].X = x, x, x
			if mode == analysis.StatModeMoments {
				primary[i].Y = row.Mean
				secondary[i].Y = row.Median
			} else {
				primary[i].Y = row.P50
				secondary[i].Y = row.P75
				tertiary[i].Y = row.P90
			}
		}

		primaryLine, err := plotter.NewLine(primary)
		if err != nil {
			return fmt.Errorf("plot %s: %w", label, err)
		}
		primaryLine.Color = c
		primaryLine.Width = vg.Points(2)
		p.Add(primaryLine)
		p.Legend.Add(string(label), primaryLine)

		secondaryLine, err := plotter.NewLine(secondary)
		if err != nil {
			return fmt.Errorf("plot %s: %w", label, err)
		}
		secondaryLine.Color = c
		secondaryLine.Width = vg.Points(1.5)
		secondaryLine.Dashes = []vg.Length{vg.Points(5), vg.Points(2)}
		p.Add(secondaryLine)

		if mode == analysis.StatModePercentiles {
			tertiaryLine, err := plotter.NewLine(tertiary)
			if err != nil {
				return fmt.Errorf("plot %s: %w", label, err)
			}
			tertiaryLine.Color = c
			tertiaryLine.Width = vg.Points(1.5)
			tertiaryLine.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
			p.Add(tertiaryLine)
		}
	}

	p.Legend.Top = true
	p.Legend.Left = true

	if err := p.Save(10*vg.Inch, 6*vg.Inch, outputFile); err != nil {
		return fmt.Errorf("save plot: %w", err)
	}
	return nil
}
