package citext

import (
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedNull is returned when SQL NULL is decoded into a
	// non-nullable destination. Use NullText for nullable columns.
	ErrUnexpectedNull = errors.New("citext: unexpected NULL")

	// ErrInvalidUTF8 is returned when raw bytes are not valid UTF-8.
	ErrInvalidUTF8 = errors.New("citext: invalid UTF-8")

	// ErrUnsupportedType is returned when Scan receives a source type it
	// cannot interpret as text.
	ErrUnsupportedType = errors.New("citext: unsupported source type")
)

// DecodeError reports that a backend could not decode raw bytes as text.
type DecodeError struct {
	Backend string
	Err     error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("citext: decode %s: %v", e.Backend, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// EncodeError reports that a backend could not encode text, or that the
// output sink rejected the write.
type EncodeError struct {
	Backend string
	Err     error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("citext: encode %s: %v", e.Backend, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }
