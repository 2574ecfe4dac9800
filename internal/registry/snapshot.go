package registry

import (
	"iter"
	"slices"

	"github.com/xiaq/persistent/hash"
	"github.com/xiaq/persistent/hashmap"
)

// Snapshot is an immutable view of one domain's entries.
type Snapshot struct {
	domain  uint64
	entries hashmap.Map
}

func emptyEntries() hashmap.Map {
	return hashmap.New(keyEqual, keyHash)
}

func keyEqual(a, b interface{}) bool {
	return a.(uint64) == b.(uint64)
}

func keyHash(k interface{}) uint32 {
	return hash.UInt64(k.(uint64))
}

// Domain returns the domain this snapshot was taken from.
func (s Snapshot) Domain() uint64 {
	return s.domain
}

// Len returns the number of entries.
func (s Snapshot) Len() int {
	if s.entries == nil {
		return 0
	}
	return s.entries.Len()
}

// Get returns the entry stored under key.
func (s Snapshot) Get(key uint64) (Entry, bool) {
	if s.entries == nil {
		return Entry{}, false
	}
	v, ok := s.entries.Index(key)
	if !ok {
		return Entry{}, false
	}
	return v.(Entry), true
}

// Keys returns all keys in ascending order.
func (s Snapshot) Keys() []uint64 {
	if s.entries == nil {
		return nil
	}
	keys := make([]uint64, 0, s.entries.Len())
	for it := s.entries.Iterator(); it.HasElem(); it.Next() {
		k, _ := it.Elem()
		keys = append(keys, k.(uint64))
	}
	slices.Sort(keys)
	return keys
}

// Change describes an entry that differs between two snapshots.
type Change struct {
	Key     uint64
	Before  Entry
	After   Entry
	Existed bool
}

// Diff yields, in key order, the entries of after that are new or whose
// axis or samples differ from the same key in before.
func Diff(before, after Snapshot) iter.Seq[Change] {
	return func(yield func(Change) bool) {
		for _, key := range after.Keys() {
			a, _ := after.Get(key)
			b, existed := before.Get(key)
			if existed && b.sameInput(a) {
				continue
			}
			if !yield(Change{Key: key, Before: b, After: a, Existed: existed}) {
				return
			}
		}
	}
}
