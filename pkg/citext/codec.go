package citext

//go:generate mockgen -source=codec.go -destination=mocks/backend.go -package=mocks Backend

import "io"

// Backend moves plain text over one database's wire format. Implementing
// it is all a driver needs for Codec to handle citext values.
type Backend interface {
	// Name identifies the backend in errors.
	Name() string
	// DecodeText interprets src as text. src is never nil; an empty
	// value arrives as a zero-length slice.
	DecodeText(src []byte) (string, error)
	// EncodeText writes s to dst in the backend's text representation.
	EncodeText(dst io.Writer, s string) error
}

// IsNull is the outcome of an encode: whether the written value stands for
// SQL NULL.
type IsNull bool

const (
	// NotNull means the written bytes are the value.
	NotNull IsNull = false
	// Null means nothing was written and the value is SQL NULL.
	Null IsNull = true
)

// Codec encodes and decodes citext values in terms of a Backend's plain
// text routines. It holds no state beyond the backend and is safe for
// concurrent use whenever the backend is.
type Codec[B Backend] struct {
	backend B
}

// NewCodec returns a Codec over b.
func NewCodec[B Backend](b B) Codec[B] {
	return Codec[B]{backend: b}
}

// Backend returns the underlying backend.
func (c Codec[B]) Backend() B {
	return c.backend
}

// Decode decodes src into a Text, preserving its casing.
// A nil src is the empty text; use DecodeNull where NULL is possible.
func (c Codec[B]) Decode(src []byte) (Text, error) {
	s, err := c.decode(src)
	if err != nil {
		return Text{}, err
	}
	return New(s), nil
}

// DecodeString decodes src into a plain string folded to lowercase, which
// is how the column itself compares.
func (c Codec[B]) DecodeString(src []byte) (string, error) {
	s, err := c.decode(src)
	if err != nil {
		return "", err
	}
	return Fold(s), nil
}

// Encode writes the original text of v to dst.
func (c Codec[B]) Encode(v Text, dst io.Writer) (IsNull, error) {
	return c.encode(v.value, dst)
}

// EncodeString writes s to dst unchanged; folding for comparison is left to
// the database.
func (c Codec[B]) EncodeString(s string, dst io.Writer) (IsNull, error) {
	return c.encode(s, dst)
}

// EncodeNull writes v, or reports Null without writing when v is not
// valid.
func (c Codec[B]) EncodeNull(v NullText, dst io.Writer) (IsNull, error) {
	if !v.Valid {
		return Null, nil
	}
	return c.encode(v.Text.value, dst)
}

// DecodeNull decodes src into a NullText; a nil src yields an invalid
// NullText rather than an error.
func (c Codec[B]) DecodeNull(src []byte) (NullText, error) {
	if src == nil {
		return NullText{}, nil
	}
	t, err := c.Decode(src)
	if err != nil {
		return NullText{}, err
	}
	return NullText{Text: t, Valid: true}, nil
}

func (c Codec[B]) decode(src []byte) (string, error) {
	if src == nil {
		src = []byte{}
	}
	s, err := c.backend.DecodeText(src)
	if err != nil {
		return "", &DecodeError{Backend: c.backend.Name(), Err: err}
	}
	return s, nil
}

func (c Codec[B]) encode(s string, dst io.Writer) (IsNull, error) {
	if err := c.backend.EncodeText(dst, s); err != nil {
		return NotNull, &EncodeError{Backend: c.backend.Name(), Err: err}
	}
	return NotNull, nil
}
