// Package bucket classifies payload byte counts into size categories.
// A category label has no numeric meaning downstream; it is used purely
// as a grouping key.
package bucket

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnknownPolicy is returned when a policy name is not recognized.
var ErrUnknownPolicy = errors.New("unknown bucket policy")

// Label is a payload-size category.
type Label string

// PolicyName identifies a classification policy.
type PolicyName string

const (
	// PolicyNearest assigns the standard size closest to the byte count.
	PolicyNearest PolicyName = "nearest-standard"
	// PolicyRange assigns contiguous half-open byte ranges.
	PolicyRange PolicyName = "range-bucket"
)

// String returns the string representation of the policy name.
func (n PolicyName) String() string {
	return string(n)
}

// Validate checks if the policy name is recognized.
func (n PolicyName) Validate() error {
	switch n {
	case PolicyNearest, PolicyRange:
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownPolicy, n)
	}
}

// Policy maps a non-negative byte count to exactly one label from a
// fixed ordered category set.
type Policy interface {
	// Classify returns the label for a byte count. Total over all
	// non-negative inputs.
	Classify(bytes int) Label

	// Labels returns the category set in its canonical order. The order
	// is used for deterministic output sorting.
	Labels() []Label

	// Name returns the policy name.
	Name() PolicyName
}

// ForName returns the policy implementation for name.
func ForName(name PolicyName) (Policy, error) {
	switch name {
	case PolicyNearest:
		return nearestPolicy{}, nil
	case PolicyRange:
		return rangePolicy{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownPolicy, name)
	}
}

// anchors are the standard payload sizes, in canonical order. The order
// is the tie-break rule: on equal distance the first anchor wins, so this
// must stay an ordered slice scanned front to back, never a map.
var anchors = []struct {
	size  int
	label Label
}{
	{1024, "1KB"},
	{4096, "4KB"},
	{51200, "50KB"},
	{204800, "200KB"},
	{1048576, "1MB"},
	{2097152, "2MB"},
	{5242880, "5MB"},
}

// nearestPolicy assigns the anchor with the smallest absolute distance
// from the input byte count.
type nearestPolicy struct{}

// Classify returns the label of the nearest standard size.
func (nearestPolicy) Classify(bytes int) Label {
	minDiff := math.MaxInt
	nearest := anchors[0].label

	for _, a := range anchors {
		diff := bytes - a.size
		if diff < 0 {
			diff = -diff
		}
		if diff < minDiff {
			minDiff = diff
			nearest = a.label
		}
	}

	return nearest
}

// Labels returns the anchor labels in canonical order.
func (nearestPolicy) Labels() []Label {
	labels := make([]Label, len(anchors))
	for i, a := range anchors {
		labels[i] = a.label
	}
	return labels
}

// Name returns the policy name.
func (nearestPolicy) Name() PolicyName {
	return PolicyNearest
}

// ranges are the contiguous byte ranges, in canonical order. The last
// range is open-ended.
var ranges = []struct {
	min   int
	max   int
	label Label
}{
	{0, 0, "0B"},
	{1, 255, "1-255B"},
	{256, 511, "256-511B"},
	{512, 1023, "512B-1KB"},
	{1024, 2047, "1-2KB"},
	{2048, 4095, "2-4KB"},
	{4096, 8191, "4-8KB"},
	{8192, math.MaxInt, ">8KB"},
}

// rangePolicy assigns contiguous byte ranges.
type rangePolicy struct{}

// Classify returns the label of the range containing the byte count.
// Negative inputs fall into the first range.
func (rangePolicy) Classify(bytes int) Label {
	for _, r := range ranges {
		if bytes >= r.min && bytes <= r.max {
			return r.label
		}
	}
	return ranges[0].label
}

// Labels returns the range labels in canonical order.
func (rangePolicy) Labels() []Label {
	labels := make([]Label, len(ranges))
	for i, r := range ranges {
		labels[i] = r.label
	}
	return labels
}

// Name returns the policy name.
func (rangePolicy) Name() PolicyName {
	return PolicyRange
}
