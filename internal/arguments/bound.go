package arguments

import (
	"maps"
	"slices"
)

// Bound is the result of one Bind call. It is never modified after Bind
// returns.
type Bound struct {
	positionals []string
	keyed       map[string]string
	flags       []string
}

// Positional returns the value at position i, or "" when out of range.
func (b *Bound) Positional(i int) string {
	if i < 0 || i >= len(b.positionals) {
		return ""
	}
	return b.positionals[i]
}

// Positionals returns the positional values in input order.
func (b *Bound) Positionals() []string { return slices.Clone(b.positionals) }

// Keyed returns the value bound to key.
func (b *Bound) Keyed(key string) (string, bool) {
	v, ok := b.keyed[key]
	return v, ok
}

// KeyedOr returns the value bound to key, or def when the key was not given.
func (b *Bound) KeyedOr(key, def string) string {
	if v, ok := b.keyed[key]; ok {
		return v
	}
	return def
}

// KeyedValues returns a copy of every keyed binding.
func (b *Bound) KeyedValues() map[string]string { return maps.Clone(b.keyed) }

// HasFlag reports whether the flag was present.
func (b *Bound) HasFlag(key string) bool { return slices.Contains(b.flags, key) }

// Flags returns the present flags in declaration order.
func (b *Bound) Flags() []string { return slices.Clone(b.flags) }
