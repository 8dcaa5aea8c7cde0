package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestCasingError(t *testing.T) {
	t.Parallel()

	err := NewCasingError(CheckPreserve, "CaFeBaBe", "cafebabe")

	if got := err.Error(); got != `preserve: want "CaFeBaBe", got "cafebabe"` {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if !errors.Is(err, ErrCasingMismatch) {
		t.Fatal("errors.Is(err, ErrCasingMismatch) = false")
	}

	wrapped := fmt.Errorf("sample %q: %w", "CaFeBaBe", err)
	var ce *CasingError
	if !errors.As(wrapped, &ce) || ce.Check != CheckPreserve {
		t.Fatalf("errors.As through wrapping failed: %v", wrapped)
	}
}

func TestReport_Failed(t *testing.T) {
	t.Parallel()

	r := Report{Results: []SampleResult{
		{Sample: "A"},
		{Sample: "B", Err: ErrNotFound},
		{Sample: "C", Err: NewCasingError(CheckFold, "c", "C")},
	}}

	if got := r.Failed(); got != 2 {
		t.Fatalf("Failed() = %d, want 2", got)
	}
	if !r.Results[0].OK() || r.Results[1].OK() {
		t.Fatal("OK() does not reflect Err")
	}
}
