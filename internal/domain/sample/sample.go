// Package sample provides the measurement record domain model.
// A Raw row is one line of a JMeter JTL result log; a Sample is the
// normalized record the aggregation engine operates on.
package sample

import "github.com/loadlens/loadlens/internal/domain/bucket"

// Field indices of the JMeter JTL positional CSV schema.
// JTL files carry no header row; field order is significant.
const (
	FieldTimestamp       = 0  // timeStamp (epoch milliseconds)
	FieldElapsed         = 1  // elapsed (latency in ms)
	FieldLabel           = 2  // label
	FieldResponseCode    = 3  // responseCode
	FieldResponseMessage = 4  // responseMessage
	FieldThreadName      = 5  // threadName
	FieldDataType        = 6  // dataType
	FieldSuccess         = 7  // success
	FieldFailureMessage  = 8  // failureMessage
	FieldBytes           = 9  // bytes (response size)
	FieldSentBytes       = 10 // sentBytes (request payload size)
	FieldGrpThreads      = 11 // grpThreads (active threads in group)
	FieldAllThreads      = 12 // allThreads (all active threads)
	FieldURL             = 13 // URL
	FieldLatency         = 14 // Latency (time to first byte)
	FieldIdleTime        = 15 // IdleTime
	FieldConnect         = 16 // Connect
)

// minFields is the minimum row length required to reach allThreads.
const minFields = 13

// Raw is one positional row from a JTL result log.
type Raw []string

// Sample is a normalized measurement record. It is created once per
// surviving Raw row and never mutated afterwards.
type Sample struct {
	// Timestamp is the request timestamp in epoch milliseconds.
	Timestamp float64

	// LatencyMS is the elapsed time of the request in milliseconds.
	LatencyMS float64

	// PayloadBytes is the request payload size in bytes (>= 0).
	PayloadBytes int

	// Concurrency is the number of active load-generating workers
	// recorded at the time of the request.
	Concurrency int

	// Bucket is the payload-size category assigned by a bucket policy.
	// It is empty until annotation.
	Bucket bucket.Label
}
