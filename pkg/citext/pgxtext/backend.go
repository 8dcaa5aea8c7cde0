// Package pgxtext plugs citext into pgx/v5.
//
// Backend implements citext.Backend on top of pgx's own text codec, so
// citext.Codec can decode and encode raw PostgreSQL wire values in either
// format. Register teaches a connection's type map the OIDs of citext and
// citext[], after which citext.Text, citext.NullText and
// citext.ScanFolded work as query arguments and scan targets.
package pgxtext

import (
	"io"
	"sync"
	"unicode/utf8"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/heartmarshall/citext/pkg/citext"
)

// Backend moves text through pgtype's text codec in a fixed format code.
type Backend struct {
	format int16
}

var (
	// TextFormat decodes and encodes the text wire format.
	TextFormat = Backend{format: pgtype.TextFormatCode}
	// BinaryFormat decodes and encodes the binary wire format.
	BinaryFormat = Backend{format: pgtype.BinaryFormatCode}

	// Codec is the citext codec over the text wire format.
	Codec = citext.NewCodec(TextFormat)
)

// pgtype.Map caches plans and is not safe for concurrent use.
var typeMaps = sync.Pool{
	New: func() any { return pgtype.NewMap() },
}

func (b Backend) Name() string {
	if b.format == pgtype.BinaryFormatCode {
		return "pgx/binary"
	}
	return "pgx/text"
}

// DecodeText scans src as a PostgreSQL text value. The server sends UTF-8,
// so anything else is rejected.
func (b Backend) DecodeText(src []byte) (string, error) {
	m := typeMaps.Get().(*pgtype.Map)
	defer typeMaps.Put(m)

	var s string
	if err := m.Scan(pgtype.TextOID, b.format, src, &s); err != nil {
		return "", err
	}
	if !utf8.ValidString(s) {
		return "", citext.ErrInvalidUTF8
	}
	return s, nil
}

// EncodeText encodes s as a PostgreSQL text value and writes it to dst.
// Invalid UTF-8 is rejected before it reaches the server.
func (b Backend) EncodeText(dst io.Writer, s string) error {
	if !utf8.ValidString(s) {
		return citext.ErrInvalidUTF8
	}

	m := typeMaps.Get().(*pgtype.Map)
	defer typeMaps.Put(m)

	buf, err := m.Encode(pgtype.TextOID, b.format, s, nil)
	if err != nil {
		return err
	}
	_, err = dst.Write(buf)
	return err
}
