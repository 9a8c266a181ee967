package value

import "fmt"

// Entry is a single key/value pair of a Map.
type Entry struct {
	Key   string
	Value Value
}

// Map is an ordered collection of entries. Keys are normally unique, but
// Append keeps duplicates so that repeated blocks can be mirrored faithfully.
type Map struct {
	entries []Entry
}

// BlockSyntax forces its map to be written as a nested block: `key { ... }`.
type BlockSyntax struct {
	Body Map
}

// AttrSyntax forces its map to be written as an attribute: `key = { ... }`.
type AttrSyntax struct {
	Body Map
}

// Block wraps a map so that it is written with block syntax.
func Block(m Map) BlockSyntax { return BlockSyntax{Body: m} }

// Attr wraps a map so that it is written with attribute syntax.
func Attr(m Map) AttrSyntax { return AttrSyntax{Body: m} }

// NewMap builds a map from entries, keeping their order.
func NewMap(entries ...Entry) Map {
	return Map{entries: append([]Entry(nil), entries...)}
}

// MapOf builds a map from alternating keys and values. Values that are not
// already a Value are converted with FromGo. MapOf panics on an odd number of
// arguments, a non-string key, or a value FromGo cannot convert, since those
// are programming errors in a literal.
func MapOf(kv ...any) Map {
	if len(kv)%2 != 0 {
		panic(fmt.Sprintf("value.MapOf: odd number of arguments (%d)", len(kv)))
	}
	m := Map{entries: make([]Entry, 0, len(kv)/2)}
	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			panic(fmt.Sprintf("value.MapOf: key at position %d is %T, not string", i, kv[i]))
		}
		v, err := FromGo(kv[i+1])
		if err != nil {
			panic(fmt.Sprintf("value.MapOf: key %q: %v", key, err))
		}
		m = m.With(key, v)
	}
	return m
}

// Len returns the number of entries.
func (m Map) Len() int { return len(m.entries) }

// Entries returns a copy of the entries in order.
func (m Map) Entries() []Entry {
	return append([]Entry(nil), m.entries...)
}

// Keys returns the keys in order.
func (m Map) Keys() []string {
	keys := make([]string, len(m.entries))
	for i, e := range m.entries {
		keys[i] = e.Key
	}
	return keys
}

// Get returns the first value stored under key.
func (m Map) Get(key string) (Value, bool) {
	for _, e := range m.entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// Has reports whether key is present.
func (m Map) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// With returns a copy of m where key is set to v. An existing key keeps its
// position; a new key is appended.
func (m Map) With(key string, v Value) Map {
	out := m.Entries()
	for i, e := range out {
		if e.Key == key {
			out[i].Value = v
			return Map{entries: out}
		}
	}
	return Map{entries: append(out, Entry{Key: key, Value: v})}
}

// Append returns a copy of m with a new entry at the end, even if key exists.
func (m Map) Append(key string, v Value) Map {
	return Map{entries: append(m.Entries(), Entry{Key: key, Value: v})}
}

// Prepend returns a copy of m with a new entry at the front.
func (m Map) Prepend(key string, v Value) Map {
	return Map{entries: append([]Entry{{Key: key, Value: v}}, m.entries...)}
}

// Without returns a copy of m with every entry for key removed.
func (m Map) Without(key string) Map {
	out := make([]Entry, 0, len(m.entries))
	for _, e := range m.entries {
		if e.Key != key {
			out = append(out, e)
		}
	}
	return Map{entries: out}
}

// Merge returns a copy of m with every entry of other applied through With.
func (m Map) Merge(other Map) Map {
	out := m
	for _, e := range other.entries {
		out = out.With(e.Key, e.Value)
	}
	return out
}
