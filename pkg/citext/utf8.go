package citext

import (
	"io"
	"unicode/utf8"
)

// UTF8 is the Backend for drivers that hand text over as raw UTF-8 bytes,
// which is what database/sql drivers such as lib/pq do.
type UTF8 struct{}

// Name returns "utf8".
func (UTF8) Name() string { return "utf8" }

// DecodeText returns src as a string, rejecting invalid UTF-8.
func (UTF8) DecodeText(src []byte) (string, error) {
	if !utf8.Valid(src) {
		return "", ErrInvalidUTF8
	}
	return string(src), nil
}

// EncodeText writes s to dst verbatim.
func (UTF8) EncodeText(dst io.Writer, s string) error {
	_, err := io.WriteString(dst, s)
	return err
}

var utf8Codec = NewCodec(UTF8{})
