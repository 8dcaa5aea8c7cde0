package citext

import (
	"encoding/binary"
	"slices"
	"unicode"
	"unicode/utf8"

	"github.com/zeebo/blake3"
)

// Equal reports whether t and other are equal after folding.
func (t Text) Equal(other Text) bool {
	return equalFold(t.value, other.value)
}

// EqualString reports whether t equals the plain string s after folding.
func (t Text) EqualString(s string) bool {
	return equalFold(t.value, s)
}

// Compare orders t and other by their folded forms. It returns 0 exactly
// when Equal reports true; values differing only in case are not
// tie-broken.
func (t Text) Compare(other Text) int {
	return compareFold(t.value, other.value)
}

// Compare is Text.Compare in the shape slices.SortFunc expects.
func Compare(a, b Text) int {
	return compareFold(a.value, b.value)
}

// Sort sorts ts by Compare. Fold-equal values keep their relative order.
func Sort(ts []Text) {
	slices.SortStableFunc(ts, Compare)
}

// Hash returns a 64-bit BLAKE3 digest of the folded text. Equal values
// hash equally, and the digest is stable across processes.
func (t Text) Hash() uint64 {
	sum := blake3.Sum256([]byte(t.Folded()))
	return binary.LittleEndian.Uint64(sum[:8])
}

func equalFold(a, b string) bool {
	if a == b {
		return true
	}
	return compareFold(a, b) == 0
}

// compareFold compares Fold(a) and Fold(b) byte-wise without building
// either string. UTF-8 byte order matches code point order, so comparing
// lowered runes gives the same result; invalid bytes decode to RuneError,
// which is also what Fold writes for them.
func compareFold(a, b string) int {
	for a != "" && b != "" {
		ra, na := utf8.DecodeRuneInString(a)
		rb, nb := utf8.DecodeRuneInString(b)
		la, lb := unicode.ToLower(ra), unicode.ToLower(rb)
		if la != lb {
			if la < lb {
				return -1
			}
			return 1
		}
		a, b = a[na:], b[nb:]
	}
	switch {
	case a == "" && b == "":
		return 0
	case a == "":
		return -1
	default:
		return 1
	}
}
