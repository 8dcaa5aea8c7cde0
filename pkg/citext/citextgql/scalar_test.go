package citextgql

import (
	"bytes"
	"errors"
	"testing"

	"github.com/heartmarshall/citext/pkg/citext"
)

func TestMarshalCIText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "casing preserved", input: "CaFeBaBe", want: `"CaFeBaBe"`},
		{name: "empty", input: "", want: `""`},
		{name: "quotes escaped", input: `Say "Hi"`, want: `"Say \"Hi\""`},
		{name: "unicode", input: "Ünïcödé", want: `"Ünïcödé"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			MarshalCIText(citext.New(tt.input)).MarshalGQL(&buf)
			if got := buf.String(); got != tt.want {
				t.Errorf("MarshalCIText(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestUnmarshalCIText(t *testing.T) {
	t.Parallel()

	v, err := UnmarshalCIText("CaFeBaBe")
	if err != nil {
		t.Fatalf("UnmarshalCIText: unexpected error: %v", err)
	}
	if v.Original() != "CaFeBaBe" {
		t.Errorf("UnmarshalCIText() = %q, want casing preserved", v.Original())
	}
	if !v.EqualString("cafebabe") {
		t.Error("unmarshaled value should compare case-insensitively")
	}

	for _, bad := range []any{42, nil, true, []any{"a"}} {
		if _, err := UnmarshalCIText(bad); !errors.Is(err, ErrNotString) {
			t.Errorf("UnmarshalCIText(%v) error = %v, want ErrNotString", bad, err)
		}
	}
}
