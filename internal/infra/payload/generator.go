// Package payload generates JSON payload fixtures of a target byte size
// for load-test plans.
package payload

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// StandardSizes are the payload sizes the reference load-test plan
// exercises. The labels match the nearest-standard bucket anchors.
var StandardSizes = []struct {
	Bytes int
	Label string
}{
	{1024, "1KB"},
	{4096, "4KB"},
	{51200, "50KB"},
	{204800, "200KB"},
	{1048576, "1MB"},
	{2097152, "2MB"},
	{5242880, "5MB"},
}

// chunkSize is the length of one filler value.
const chunkSize = 100

// entryOverhead is a ceiling on the JSON overhead of one filler entry
// beyond its value string: `{"id":N,"value":""}` plus the element
// separator, with N up to six digits. A ceiling keeps the filler phase
// under the target so the padding field can close the gap exactly.
const entryOverhead = 25

// paddingOverhead is the byte cost of the padding field without its
// value: `,"padding":""`.
const paddingOverhead = 13

// entry is one filler element in the payload body.
type entry struct {
	ID    int    `json:"id"`
	Value string `json:"value"`
}

// document is the payload envelope.
type document struct {
	Timestamp string  `json:"timestamp"`
	TestID    string  `json:"test_id"`
	Iteration int     `json:"iteration"`
	Data      []entry `json:"data"`
	Padding   string  `json:"padding,omitempty"`
}

// Generate builds a JSON document of approximately targetBytes bytes.
// Filler entries bring the document close to the target and a final
// padding field closes the remaining gap; very small targets may
// overshoot by the size of the envelope.
func Generate(targetBytes int) ([]byte, error) {
	if targetBytes <= 0 {
		return nil, fmt.Errorf("target size must be positive: %d", targetBytes)
	}

	doc := document{
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		TestID:    uuid.NewString(),
		Iteration: 1,
		Data:      []entry{},
	}

	base, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal envelope: %w", err)
	}

	if remaining := targetBytes - len(base); remaining > 0 {
		chunks := remaining / (chunkSize + entryOverhead)
		for i := 0; i < chunks; i++ {
			doc.Data = append(doc.Data, entry{ID: i, Value: strings.Repeat("x", chunkSize)})
		}
	}

	current, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal body: %w", err)
	}

	if deficit := targetBytes - len(current) - paddingOverhead; deficit > 0 {
		doc.Padding = strings.Repeat("x", deficit)
	}

	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}
	return out, nil
}
