package citext

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

// Structured encodings write the original casing and fold on decode, so a
// value read back from JSON, YAML or CBOR compares equal to what was
// written but Original returns the lowercase form.

var jsonNull = []byte("null")

// MarshalJSON implements json.Marshaler.
func (t Text) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.value)
}

// UnmarshalJSON implements json.Unmarshaler. JSON null leaves t unchanged.
func (t *Text) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, jsonNull) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*t = New(Fold(s))
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (t Text) MarshalText() ([]byte, error) {
	return []byte(t.value), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Text) UnmarshalText(data []byte) error {
	*t = New(Fold(string(data)))
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (t Text) MarshalYAML() (any, error) {
	return t.value, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *Text) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("citext: yaml line %d: expected a scalar", node.Line)
	}
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	*t = New(Fold(s))
	return nil
}

// MarshalCBOR implements cbor.Marshaler as a CBOR text string.
func (t Text) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(t.value)
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (t *Text) UnmarshalCBOR(data []byte) error {
	var s string
	if err := cbor.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("citext: cbor: %w", err)
	}
	*t = New(Fold(s))
	return nil
}

// MarshalJSON implements json.Marshaler; an invalid NullText is null.
func (n NullText) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return jsonNull, nil
	}
	return n.Text.MarshalJSON()
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *NullText) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, jsonNull) {
		*n = NullText{}
		return nil
	}
	if err := n.Text.UnmarshalJSON(data); err != nil {
		return err
	}
	n.Valid = true
	return nil
}
