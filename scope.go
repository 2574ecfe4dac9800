package dimsync

import (
	"github.com/grindlemire/go-dimsync/internal/debug"
	"github.com/grindlemire/go-dimsync/internal/registry"
)

var scopeLog = debug.For("scope")

// SyncScope owns a domain in the registry and wraps the subtree whose
// participants synchronize within it.
//
// Every layout call clears the domain, lays the child out once, and lays it
// out a second time only if the recorded samples differ from the previous
// call's. There is never a third pass: if resolving one key changes the
// natural size behind another key, that change is picked up on the next
// layout call.
type SyncScope struct {
	id     DomainID
	child  Widget
	passes int
	size   Size
}

// NewSyncScope creates a scope owning domain id.
func NewSyncScope(id DomainID, child Widget) *SyncScope {
	return &SyncScope{id: id, child: child}
}

// NewScope creates a scope with a freshly allocated domain.
func NewScope(child Widget) *SyncScope {
	return NewSyncScope(NextDomainID(), child)
}

// ID returns the domain this scope owns.
func (s *SyncScope) ID() DomainID {
	return s.id
}

// Child returns the wrapped widget.
func (s *SyncScope) Child() Widget {
	return s.child
}

// Passes returns how many times the child was laid out in the last call.
func (s *SyncScope) Passes() int {
	return s.passes
}

// Size returns the size of the last layout.
func (s *SyncScope) Size() Size {
	return s.size
}

// Layout implements Widget.
func (s *SyncScope) Layout(ctx *Context, bc Constraints) Size {
	reg := ctx.Registry()
	id := uint64(s.id)

	before := reg.Snapshot(id)
	reg.ClearDomain(id)

	leave := ctx.pushDomain(s.id)
	defer leave()

	size := s.child.Layout(ctx, bc)
	s.passes = 1

	changed := 0
	for c := range registry.Diff(before, reg.Snapshot(id)) {
		changed++
		scopeLog.Log("domain %d: key %d changed (existed=%v, samples=%v)", s.id, c.Key, c.Existed, c.After.Samples)
	}
	if n := reg.Prune(id, before); n > 0 {
		scopeLog.Log("domain %d: pruned %d unvisited key(s)", s.id, n)
	}
	reg.ResolveAll(id)

	if changed > 0 {
		size = s.child.Layout(ctx, bc)
		s.passes = 2
	}
	reg.Settle(id)

	scopeLog.Log("domain %d: %d changed key(s), %d pass(es), size %v", s.id, changed, s.passes, size)
	s.size = size
	return size
}
