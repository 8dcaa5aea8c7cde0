// Package citext provides Text, a case-insensitive string for PostgreSQL
// citext columns.
//
// Text stores the bytes it was given and never rewrites them: String and
// Original return the original casing. Equality, ordering and hashing
// compare the lowercased form (see Fold), so values that differ only in
// letter case are interchangeable as keys.
//
// Database support is split in two layers. Text implements sql.Scanner and
// driver.Valuer, which is enough for database/sql drivers, gorm and pgx.
// Below that, Codec encodes and decodes Text against any Backend that knows
// how to move plain text over its wire format; the UTF8 backend lives here
// and the pgx backend lives in the pgxtext subpackage.
//
// Decoding follows two policies:
//
//   - into Text (Codec.Decode, Scan): casing is preserved;
//   - into a plain string (Codec.DecodeString, ScanFolded): the result is
//     folded to lowercase, matching how the column compares.
//
// Structured formats (JSON, YAML, CBOR, encoding.TextUnmarshaler) write the
// original casing and fold on the way in.
package citext
