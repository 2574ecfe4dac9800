package registry

import (
	"slices"

	"github.com/xiaq/persistent/hashmap"

	"github.com/grindlemire/go-dimsync/internal/debug"
	"github.com/grindlemire/go-dimsync/internal/layout"
)

var registryLog = debug.For("registry")

// Registry maps (domain, key) pairs to aggregated sizes.
type Registry struct {
	domains map[uint64]*domain
}

type domain struct {
	entries hashmap.Map
	settled hashmap.Map
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{domains: make(map[uint64]*domain)}
}

func (r *Registry) domain(id uint64) *domain {
	d, ok := r.domains[id]
	if !ok {
		d = &domain{entries: emptyEntries(), settled: emptyEntries()}
		r.domains[id] = d
	}
	return d
}

func (r *Registry) lookup(id, key uint64) (Entry, bool) {
	d, ok := r.domains[id]
	if !ok {
		return Entry{}, false
	}
	v, ok := d.entries.Index(key)
	if !ok {
		return Entry{}, false
	}
	return v.(Entry), true
}

// ClearDomain empties the samples and drops the resolved value of every entry
// in the domain. Other domains are untouched.
func (r *Registry) ClearDomain(id uint64) {
	d, ok := r.domains[id]
	if !ok {
		return
	}
	entries := d.entries
	for it := d.entries.Iterator(); it.HasElem(); it.Next() {
		k, v := it.Elem()
		entries = entries.Assoc(k, v.(Entry).cleared())
	}
	d.entries = entries
}

// Prune removes the entries of the domain that have no samples now and had
// none in before, so keys no participant visits any more do not accumulate.
// It returns how many entries were removed.
func (r *Registry) Prune(id uint64, before Snapshot) int {
	d, ok := r.domains[id]
	if !ok {
		return 0
	}
	n := 0
	entries := d.entries
	for it := d.entries.Iterator(); it.HasElem(); it.Next() {
		k, v := it.Elem()
		if len(v.(Entry).Samples) > 0 {
			continue
		}
		if prev, ok := before.Get(k.(uint64)); ok && len(prev.Samples) > 0 {
			continue
		}
		entries = entries.Dissoc(k)
		n++
	}
	d.entries = entries
	return n
}

// Record appends a natural size to the entry, creating it if needed.
// Non-finite values are ignored.
func (r *Registry) Record(id, key uint64, axis layout.Axis, value float64) {
	if !layout.IsFinite(value) {
		return
	}
	d := r.domain(id)
	e, ok := r.lookup(id, key)
	if !ok {
		e = Entry{Axis: axis}
	} else if e.Axis != axis {
		registryLog.Log("key %d/%d recorded on %v, keeping %v", id, key, axis, e.Axis)
	}
	d.entries = d.entries.Assoc(key, e.withSample(value))
}

// Constraint returns the resolved value of an entry without computing it.
func (r *Registry) Constraint(id, key uint64) (float64, bool) {
	e, ok := r.lookup(id, key)
	if !ok {
		return 0, false
	}
	return e.Constraint()
}

// Resolve returns the agreed size for an entry, computing and caching the
// maximum of its samples on first use. Entries without samples resolve to
// nothing.
func (r *Registry) Resolve(id, key uint64) (float64, bool) {
	e, ok := r.lookup(id, key)
	if !ok {
		return 0, false
	}
	if e.HasResolved {
		return e.Resolved, true
	}
	m, ok := e.Max()
	if !ok {
		return 0, false
	}
	e.Resolved, e.HasResolved = m, true
	d := r.domains[id]
	d.entries = d.entries.Assoc(key, e)
	return m, true
}

// ResolveAll resolves every entry of the domain.
func (r *Registry) ResolveAll(id uint64) {
	for _, key := range r.Snapshot(id).Keys() {
		r.Resolve(id, key)
	}
}

// Settle records the domain's current resolved values as the outcome of the
// layout call. They survive ClearDomain and are readable through Settled.
func (r *Registry) Settle(id uint64) {
	d, ok := r.domains[id]
	if !ok {
		return
	}
	d.settled = d.entries
}

// Settled returns the value an entry was resolved to when the domain was
// last settled.
func (r *Registry) Settled(id, key uint64) (float64, bool) {
	d, ok := r.domains[id]
	if !ok {
		return 0, false
	}
	v, ok := d.settled.Index(key)
	if !ok {
		return 0, false
	}
	return v.(Entry).Constraint()
}

// Snapshot returns an immutable view of the domain's entries.
func (r *Registry) Snapshot(id uint64) Snapshot {
	d, ok := r.domains[id]
	if !ok {
		return Snapshot{domain: id}
	}
	return Snapshot{domain: id, entries: d.entries}
}

// Domains returns the known domain ids in ascending order.
func (r *Registry) Domains() []uint64 {
	ids := make([]uint64, 0, len(r.domains))
	for id := range r.domains {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Len returns the total number of entries across all domains.
func (r *Registry) Len() int {
	n := 0
	for _, d := range r.domains {
		n += d.entries.Len()
	}
	return n
}
