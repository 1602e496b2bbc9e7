// Package usecase provides the analysis pipeline business logic.
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/loadlens/loadlens/internal/domain/analysis"
	"github.com/loadlens/loadlens/internal/domain/bucket"
	"github.com/loadlens/loadlens/internal/domain/sample"
)

// AnalysisUseCase runs the measurement aggregation pipeline:
// normalize -> concurrency filter -> bucket annotation -> aggregate.
type AnalysisUseCase struct {
	cfg    analysis.Config
	policy bucket.Policy
}

// NewAnalysisUseCase creates a new analysis use case. The configuration
// is validated here so an invalid one is rejected before any record
// processing begins.
func NewAnalysisUseCase(cfg analysis.Config) (*AnalysisUseCase, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	policy, err := bucket.ForName(cfg.BucketPolicy)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", analysis.ErrInvalidConfiguration, err)
	}

	return &AnalysisUseCase{cfg: cfg, policy: policy}, nil
}

// Config returns the configuration driving this use case.
func (uc *AnalysisUseCase) Config() analysis.Config {
	return uc.cfg
}

// Policy returns the bucket policy driving this use case.
func (uc *AnalysisUseCase) Policy() bucket.Policy {
	return uc.policy
}

// Result is the outcome of one analysis run.
type Result struct {
	// RunID uniquely identifies the run.
	RunID string

	// Rows is the aggregated statistics table, sorted by concurrency
	// and bucket order. Empty when no sample survives the pipeline.
	Rows []analysis.StatRow

	// TotalRows is the number of raw input rows.
	TotalRows int
	// Dropped is the number of rows excluded as malformed.
	Dropped int
	// Filtered is the number of samples outside the concurrency allowlist.
	Filtered int
	// Analyzed is the number of samples that reached the aggregator.
	Analyzed int

	// Config echoes the configuration of the run.
	Config analysis.Config

	// GeneratedAt is when the run completed.
	GeneratedAt time.Time
	// Duration is the wall-clock time of the run.
	Duration time.Duration
}

// Run executes the pipeline over a batch of raw rows. Malformed rows and
// samples outside the allowlist are dropped silently; their counts are
// carried in the Result. An empty table is a valid result.
func (uc *AnalysisUseCase) Run(ctx context.Context, rows []sample.Raw) (*Result, error) {
	start := time.Now()

	norm := sample.Normalize(rows)
	kept := analysis.FilterConcurrency(norm.Samples, uc.cfg.ConcurrencyAllowlist)
	annotated := analysis.Annotate(kept, uc.policy)

	stats, err := analysis.Aggregate(annotated, uc.cfg)
	if err != nil {
		return nil, fmt.Errorf("aggregate: %w", err)
	}

	result := &Result{
		RunID:       uuid.NewString(),
		Rows:        stats,
		TotalRows:   len(rows),
		Dropped:     norm.Dropped,
		Filtered:    len(norm.Samples) - len(kept),
		Analyzed:    len(kept),
		Config:      uc.cfg,
		GeneratedAt: time.Now(),
		Duration:    time.Since(start),
	}

	slog.Info("analysis complete",
		"run_id", result.RunID,
		"rows", result.TotalRows,
		"dropped", result.Dropped,
		"filtered", result.Filtered,
		"analyzed", result.Analyzed,
		"groups", len(result.Rows),
		"duration", result.Duration)

	return result, nil
}
