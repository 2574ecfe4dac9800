package dimsync

import "github.com/grindlemire/go-dimsync/internal/layout"

// SyncParticipant wraps a widget whose extent along one axis is shared with
// every other participant using the same key in the enclosing SyncScope.
// Outside a scope it lays its child out unchanged.
type SyncParticipant struct {
	child Widget
	key   Key
	axis  Axis
	size  Size
}

// NewSyncParticipant creates a participant synchronizing on key along axis.
func NewSyncParticipant(child Widget, key Key, axis Axis) *SyncParticipant {
	return &SyncParticipant{child: child, key: key, axis: axis}
}

// Axis returns the synchronized axis.
func (p *SyncParticipant) Axis() Axis {
	return p.axis
}

// Child returns the wrapped widget.
func (p *SyncParticipant) Child() Widget {
	return p.child
}

// Size returns the size of the last layout.
func (p *SyncParticipant) Size() Size {
	return p.size
}

// Layout implements Widget.
func (p *SyncParticipant) Layout(ctx *Context, bc Constraints) Size {
	p.size = p.layout(ctx, bc)
	return p.size
}

func (p *SyncParticipant) layout(ctx *Context, bc Constraints) Size {
	domain, ok := ctx.Domain()
	if !ok {
		return p.child.Layout(ctx, bc)
	}
	id := uint64(domain)
	key := p.key.Resolve(ctx)
	reg := ctx.Registry()

	if c, ok := reg.Constraint(id, key); ok {
		return p.child.Layout(ctx, bc.TightenAxis(p.axis, c))
	}

	size := p.child.Layout(ctx, bc)
	natural := size.Along(p.axis)
	if !layout.IsFinite(natural) {
		return size
	}
	if !ctx.replaying() {
		reg.Record(id, key, p.axis, natural)
	}

	// Use what the scope settled on last time; if the samples turn out the
	// same, the scope skips its second pass. Participants below were already
	// measured, so the repeat must not record them twice.
	if hint, ok := reg.Settled(id, key); ok && hint > natural {
		leave := ctx.enterReplay()
		defer leave()
		return p.child.Layout(ctx, bc.TightenAxis(p.axis, hint))
	}
	return size
}
