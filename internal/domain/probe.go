package domain

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/citext/pkg/citext"
)

// Check names.
const (
	CheckPreserve = "preserve"
	CheckFold     = "fold"
	CheckLookup   = "lookup"
)

// Probe is a row stored by the round-trip check.
type Probe struct {
	ID     uuid.UUID
	Value  citext.Text
	Folded string
}

// SampleResult is the outcome of checking one sample value.
type SampleResult struct {
	Sample string
	Err    error
}

// OK reports whether every check passed for the sample.
func (r SampleResult) OK() bool { return r.Err == nil }

// Report collects the results of a check run.
type Report struct {
	Results []SampleResult
}

// Failed returns the number of samples that did not pass.
func (r Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if !res.OK() {
			n++
		}
	}
	return n
}
