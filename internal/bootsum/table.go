// Package bootsum builds the boot time sum table, which buckets every
// (month, day, minute, second) candidate by month*day + minute + second,
// and saves or loads it as JSON, CBOR or SQLite.
package bootsum

import (
	"slices"
)

// Table maps a boot time sum to its candidate entries. Each key holds
// at most one entry per (month, day), in first-insertion order.
type Table map[uint16][]Entry

// Lookup returns the candidates stored under sum.
func (t Table) Lookup(sum uint16) ([]Entry, bool) {
	entries, ok := t[sum]
	return entries, ok
}

// Keys returns all sums in ascending order.
func (t Table) Keys() []uint16 {
	keys := make([]uint16, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// EntryCount returns the number of entries across all keys.
func (t Table) EntryCount() int {
	n := 0
	for _, entries := range t {
		n += len(entries)
	}
	return n
}

// Equal reports whether both tables hold the same keys with the same
// entries in the same order.
func (t Table) Equal(other Table) bool {
	if len(t) != len(other) {
		return false
	}
	for k, entries := range t {
		otherEntries, ok := other[k]
		if !ok || !slices.Equal(entries, otherEntries) {
			return false
		}
	}
	return true
}
