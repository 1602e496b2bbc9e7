// Package report renders the aggregated statistics table into output
// surfaces: CSV and Markdown tables, JSON reports, and charts.
package report

import (
	"time"

	"github.com/loadlens/loadlens/internal/domain/analysis"
)

// Version is stamped into generated reports.
const Version = "1.0.0"

// Meta describes the analysis run a report was generated from.
type Meta struct {
	RunID       string
	GeneratedAt time.Time
	Duration    time.Duration
	Config      analysis.Config

	// Pipeline counters.
	TotalRows int
	Dropped   int
	Filtered  int
	Analyzed  int
}
