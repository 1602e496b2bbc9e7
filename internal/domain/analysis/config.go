// Package analysis implements the measurement aggregation engine:
// concurrency filtering, bucket annotation, and per-group statistics over
// normalized load-test samples.
package analysis

import (
	"errors"
	"fmt"

	"github.com/loadlens/loadlens/internal/domain/bucket"
)

// ErrInvalidConfiguration is returned when an engine configuration is
// rejected. Configuration errors are fatal and detected before any
// record is processed.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// StatMode selects which latency statistics the aggregator computes.
type StatMode string

const (
	// StatModePercentiles computes p50/p75/p90 latency quantiles.
	StatModePercentiles StatMode = "percentiles"
	// StatModeMoments computes mean/median/stddev/min/max latency.
	StatModeMoments StatMode = "moments"
)

// String returns the string representation of the stat mode.
func (m StatMode) String() string {
	return string(m)
}

// Validate checks if the stat mode is recognized.
func (m StatMode) Validate() error {
	switch m {
	case StatModePercentiles, StatModeMoments:
		return nil
	default:
		return fmt.Errorf("%w: unknown stat mode: %s", ErrInvalidConfiguration, m)
	}
}

// Config is the engine configuration. One configuration drives one run;
// policies and modes are never mixed within a run.
type Config struct {
	// BucketPolicy selects the payload-size classification policy.
	BucketPolicy bucket.PolicyName

	// StatMode selects the latency statistics computed per group.
	StatMode StatMode

	// ConcurrencyAllowlist is the set of concurrency levels the test
	// design uses. Samples outside the allowlist are dropped.
	ConcurrencyAllowlist []int
}

// DefaultConfig returns the configuration of the reference test design:
// nearest-standard buckets, percentile statistics, and the power-of-two
// worker ladder.
func DefaultConfig() Config {
	return Config{
		BucketPolicy:         bucket.PolicyNearest,
		StatMode:             StatModePercentiles,
		ConcurrencyAllowlist: []int{1, 2, 4, 8, 16, 32, 64, 128},
	}
}

// Validate validates the configuration. It fails fast so that an invalid
// configuration is rejected before record processing begins.
func (c Config) Validate() error {
	if err := c.BucketPolicy.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}
	if err := c.StatMode.Validate(); err != nil {
		return err
	}
	if len(c.ConcurrencyAllowlist) == 0 {
		return fmt.Errorf("%w: concurrency allowlist is empty", ErrInvalidConfiguration)
	}

	seen := make(map[int]struct{}, len(c.ConcurrencyAllowlist))
	for _, level := range c.ConcurrencyAllowlist {
		if level <= 0 {
			return fmt.Errorf("%w: concurrency level must be positive: %d", ErrInvalidConfiguration, level)
		}
		if _, dup := seen[level]; dup {
			return fmt.Errorf("%w: duplicate concurrency level: %d", ErrInvalidConfiguration, level)
		}
		seen[level] = struct{}{}
	}

	return nil
}
