package citext

import (
	"database/sql/driver"
	"fmt"
)

const sqlBackend = "database/sql"

// Scan implements sql.Scanner. Text and []byte sources keep their casing;
// NULL is rejected with ErrUnexpectedNull.
func (t *Text) Scan(src any) error {
	s, err := scanString(src)
	if err != nil {
		return err
	}
	*t = New(s)
	return nil
}

// Value implements driver.Valuer with the original text.
func (t Text) Value() (driver.Value, error) {
	return t.value, nil
}

// GormDataType names the column type for gorm schema parsing.
func (Text) GormDataType() string {
	return "citext"
}

// NullText is a Text that may be SQL NULL.
type NullText struct {
	Text  Text
	Valid bool
}

// NewNull returns a valid NullText wrapping s.
func NewNull(s string) NullText {
	return NullText{Text: New(s), Valid: true}
}

// Scan implements sql.Scanner.
func (n *NullText) Scan(src any) error {
	if src == nil {
		*n = NullText{}
		return nil
	}
	if err := n.Text.Scan(src); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

// Value implements driver.Valuer.
func (n NullText) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Text.value, nil
}

// GormDataType names the column type for gorm schema parsing.
func (NullText) GormDataType() string {
	return "citext"
}

// FoldedScanner scans a citext column into a plain string, folding it to
// lowercase. See ScanFolded.
type FoldedScanner struct {
	dst *string
}

// ScanFolded returns a scan destination that stores the column value into
// dst in folded form:
//
//	var handle string
//	err := row.Scan(citext.ScanFolded(&handle))
func ScanFolded(dst *string) *FoldedScanner {
	return &FoldedScanner{dst: dst}
}

// Scan implements sql.Scanner.
func (f *FoldedScanner) Scan(src any) error {
	s, err := scanString(src)
	if err != nil {
		return err
	}
	*f.dst = Fold(s)
	return nil
}

func scanString(src any) (string, error) {
	switch v := src.(type) {
	case string:
		return v, nil
	case []byte:
		return utf8Codec.decode(v)
	case nil:
		return "", &DecodeError{Backend: sqlBackend, Err: ErrUnexpectedNull}
	default:
		return "", &DecodeError{Backend: sqlBackend, Err: fmt.Errorf("%w %T", ErrUnsupportedType, src)}
	}
}
