// Package payload provides unit tests for payload generation.
package payload

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGenerate_TargetSize tests that generated payloads land on the
// target byte size for the standard plan sizes.
func TestGenerate_TargetSize(t *testing.T) {
	for _, std := range StandardSizes {
		t.Run(std.Label, func(t *testing.T) {
			out, err := Generate(std.Bytes)
			require.NoError(t, err)

			// The padding field closes the gap to within its own
			// overhead.
			assert.InDelta(t, std.Bytes, len(out), paddingOverhead+1)
		})
	}
}

// TestGenerate_ValidJSON tests that the output is a well-formed JSON
// document with the expected envelope.
func TestGenerate_ValidJSON(t *testing.T) {
	out, err := Generate(4096)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Contains(t, decoded, "timestamp")
	assert.Contains(t, decoded, "test_id")
	assert.Contains(t, decoded, "data")
}

// TestGenerate_TinyTarget tests that a target smaller than the envelope
// still produces valid JSON.
func TestGenerate_TinyTarget(t *testing.T) {
	out, err := Generate(10)
	require.NoError(t, err)

	var decoded map[string]any
	assert.NoError(t, json.Unmarshal(out, &decoded))
}

// TestGenerate_InvalidTarget tests rejection of non-positive targets.
func TestGenerate_InvalidTarget(t *testing.T) {
	for _, target := range []int{0, -1} {
		if _, err := Generate(target); err == nil {
			t.Errorf("Generate(%d) should fail", target)
		}
	}
}
