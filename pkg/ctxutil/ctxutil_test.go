package ctxutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestWithRunID_And_RunIDFromCtx(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	got, ok := RunIDFromCtx(WithRunID(context.Background(), id))
	if !ok {
		t.Fatal("expected ok=true for valid UUID")
	}
	if got != id {
		t.Fatalf("expected %s, got %s", id, got)
	}
}

func TestRunIDFromCtx_Missing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ctx  context.Context
	}{
		{"empty context", context.Background()},
		{"nil uuid", WithRunID(context.Background(), uuid.Nil)},
		{"wrong type", context.WithValue(context.Background(), ctxKey("run_id"), "not-a-uuid")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := RunIDFromCtx(tt.ctx)
			if ok {
				t.Fatal("expected ok=false")
			}
			if got != uuid.Nil {
				t.Fatalf("expected uuid.Nil, got %s", got)
			}
		})
	}
}
