package citext

import "strings"

// Text is an immutable case-insensitive string.
// The zero value is the empty text.
type Text struct {
	// Prevents == on Text, which would compare case-sensitively.
	// Zero-sized as long as it is not the last field.
	_     [0]struct{ notComparable []byte }
	value string
}

// New wraps s verbatim.
func New(s string) Text {
	return Text{value: s}
}

// Parse is New for callers that expect a parse function.
// It never returns an error.
func Parse(s string) (Text, error) {
	return New(s), nil
}

// Fold returns the comparison form of s: every rune mapped to its simple
// Unicode lowercase. It does not trim, normalize or apply locale rules.
func Fold(s string) string {
	return strings.ToLower(s)
}

// String returns the original text. It never folds.
func (t Text) String() string {
	return t.value
}

// Original returns the original text without copying.
func (t Text) Original() string {
	return t.value
}

// Folded returns the lowercased form used for comparison.
func (t Text) Folded() string {
	return Fold(t.value)
}

// IsEmpty reports whether t holds the empty string.
func (t Text) IsEmpty() bool {
	return t.value == ""
}

// Len returns the length of the original text in bytes.
func (t Text) Len() int {
	return len(t.value)
}

// HasPrefix reports whether t begins with prefix, ignoring case.
func (t Text) HasPrefix(prefix string) bool {
	return strings.HasPrefix(t.Folded(), Fold(prefix))
}

// Contains reports whether substr is within t, ignoring case.
func (t Text) Contains(substr string) bool {
	return strings.Contains(t.Folded(), Fold(substr))
}

// FromStrings wraps every element of in.
func FromStrings(in []string) []Text {
	out := make([]Text, len(in))
	for i, s := range in {
		out[i] = New(s)
	}
	return out
}

// ToStrings returns the original text of every element of in.
func ToStrings(in []Text) []string {
	out := make([]string, len(in))
	for i, t := range in {
		out[i] = t.value
	}
	return out
}
