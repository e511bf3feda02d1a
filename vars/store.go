package vars

import (
	"strings"

	"github.com/byte4ever/template_kit/value"
)

// Store is a mapping of variable names to values. The zero Store is empty
// and ready to use. It is not safe for concurrent mutation.
type Store struct {
	entries map[string]value.Value
}

// New returns a Store seeded with initial.
func New(initial map[string]value.Value) *Store {
	st := &Store{entries: make(map[string]value.Value, len(initial))}
	st.SetAll(initial)

	return st
}

// FromMap returns a Store seeded with plain Go data converted through
// value.FromAny.
func FromMap(initial map[string]any) *Store {
	st := &Store{entries: make(map[string]value.Value, len(initial))}
	for key, val := range initial {
		st.Set(key, value.FromAny(val))
	}

	return st
}

// Set inserts or overwrites key. Keys are not validated.
func (st *Store) Set(key string, val value.Value) {
	if st.entries == nil {
		st.entries = make(map[string]value.Value)
	}

	st.entries[key] = val
}

// SetAll sets every entry of m.
func (st *Store) SetAll(m map[string]value.Value) {
	for key, val := range m {
		st.Set(key, val)
	}
}

// Delete removes key.
func (st *Store) Delete(key string) {
	delete(st.entries, key)
}

// Has reports whether a top-level entry named key holds a valid value.
// Nested paths are not checked.
func (st *Store) Has(key string) bool {
	_, ok := st.Get(key)

	return ok
}

// Get returns the top-level value for key. The boolean is false when the
// key is absent or was set to a null value.
func (st *Store) Get(key string) (value.Value, bool) {
	val, ok := st.entries[key]
	if !ok || !val.IsValid() {
		return value.Value{}, false
	}

	return val, true
}

// ResolvePath walks a dot-delimited path through nested mappings.
// Resolution fails as soon as a segment is absent, an intermediate value is
// not a mapping, or the value reached is null. Sequence elements are not
// addressable.
func (st *Store) ResolvePath(path string) (value.Value, bool) {
	head, rest, nested := strings.Cut(path, ".")

	cur, ok := st.Get(head)
	if !ok {
		return value.Value{}, false
	}

	for nested {
		var seg string

		seg, rest, nested = strings.Cut(rest, ".")

		if cur, ok = cur.Field(seg); !ok {
			return value.Value{}, false
		}
	}

	if !cur.IsValid() {
		return value.Value{}, false
	}

	return cur, true
}

// Len returns the number of top-level entries.
func (st *Store) Len() int {
	return len(st.entries)
}

// All returns a snapshot of the top-level entries. Mutating the returned
// map does not affect the store.
func (st *Store) All() map[string]value.Value {
	out := make(map[string]value.Value, len(st.entries))
	for key, val := range st.entries {
		out[key] = val
	}

	return out
}

// Native returns the entries as plain Go data, as consumed by external
// template engines.
func (st *Store) Native() map[string]any {
	out := make(map[string]any, len(st.entries))
	for key, val := range st.entries {
		out[key] = val.Interface()
	}

	return out
}
