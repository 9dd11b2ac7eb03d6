package extractor

import "time"

// ExtractionReport aggregates the outcome of one Extract call.
type ExtractionReport struct {
	Extracted  int64
	Skipped    int64
	Bytes      int64
	Checked    int64
	Mismatches int64

	Warnings []string

	WorkerBusyTime []time.Duration
}
