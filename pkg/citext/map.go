package citext

import "iter"

// Map is a map keyed by Text. Keys that differ only in case address the
// same entry, and plain strings can be used to probe it via Lookup.
//
// The zero value is an empty map ready to use. Like a built-in map, Map is
// not safe for concurrent writes.
type Map[V any] struct {
	entries map[string]mapEntry[V]
}

type mapEntry[V any] struct {
	key Text
	val V
}

// NewMap returns a Map with room for size entries.
func NewMap[V any](size int) *Map[V] {
	return &Map[V]{entries: make(map[string]mapEntry[V], size)}
}

// Set stores v under key. If a fold-equal key is already present its value
// is replaced and its original casing is kept.
func (m *Map[V]) Set(key Text, v V) {
	if m.entries == nil {
		m.entries = make(map[string]mapEntry[V])
	}
	folded := key.Folded()
	if e, ok := m.entries[folded]; ok {
		e.val = v
		m.entries[folded] = e
		return
	}
	m.entries[folded] = mapEntry[V]{key: key, val: v}
}

// Get returns the value stored under key.
func (m *Map[V]) Get(key Text) (V, bool) {
	return m.Lookup(key.value)
}

// Lookup returns the value stored under the plain string key.
func (m *Map[V]) Lookup(key string) (V, bool) {
	e, ok := m.entries[Fold(key)]
	return e.val, ok
}

// Key returns the stored key fold-equal to key, with its original casing.
func (m *Map[V]) Key(key string) (Text, bool) {
	e, ok := m.entries[Fold(key)]
	return e.key, ok
}

// Delete removes the entry for key, if any.
func (m *Map[V]) Delete(key Text) {
	delete(m.entries, key.Folded())
}

// Len returns the number of entries.
func (m *Map[V]) Len() int {
	return len(m.entries)
}

// Keys returns the stored keys sorted by Compare.
func (m *Map[V]) Keys() []Text {
	keys := make([]Text, 0, len(m.entries))
	for _, e := range m.entries {
		keys = append(keys, e.key)
	}
	Sort(keys)
	return keys
}

// All iterates over the entries in unspecified order.
func (m *Map[V]) All() iter.Seq2[Text, V] {
	return func(yield func(Text, V) bool) {
		for _, e := range m.entries {
			if !yield(e.key, e.val) {
				return
			}
		}
	}
}
