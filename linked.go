package dimsync

import "github.com/grindlemire/go-dimsync/internal/layout"

// LinkedParticipant wraps a widget whose extent along its group's axis is
// set to the group's maximum once every member has reported.
//
// Unlike SyncParticipant it never forces an ancestor to lay out again: when
// the group's broadcast arrives, the participant stores the value and asks
// to be revisited on its own on the next frame.
type LinkedParticipant struct {
	child Widget
	group *LinkGroup

	constraint    float64
	hasConstraint bool
	last          float64
	hasLast       bool

	// Round bookkeeping owned by the group.
	reported bool
	round    uint64

	bus       *Bus[LinkMessage]
	cancel    func()
	scheduler *Scheduler
	inLayout  bool

	bc   Constraints
	size Size
}

var _ Relayouter = (*LinkedParticipant)(nil)

// NewLinkedParticipant attaches a new member to group.
func NewLinkedParticipant(child Widget, group *LinkGroup) *LinkedParticipant {
	group.attach()
	return &LinkedParticipant{child: child, group: group}
}

// NewLinked creates a participant together with a new group it belongs to.
func NewLinked(child Widget, axis Axis) (*LinkedParticipant, *LinkGroup) {
	g := NewLinkGroup(axis)
	return NewLinkedParticipant(child, g), g
}

// Group returns the group this participant belongs to.
func (p *LinkedParticipant) Group() *LinkGroup {
	return p.group
}

// Child returns the wrapped widget.
func (p *LinkedParticipant) Child() Widget {
	return p.child
}

// Constraint returns the stored group maximum, if one has been received.
func (p *LinkedParticipant) Constraint() (float64, bool) {
	return p.constraint, p.hasConstraint
}

// Size returns the size of the last layout.
func (p *LinkedParticipant) Size() Size {
	return p.size
}

// Relayout repeats the last layout with the constraints it received.
func (p *LinkedParticipant) Relayout(ctx *Context) Size {
	return p.Layout(ctx, p.bc)
}

// Layout implements Widget.
func (p *LinkedParticipant) Layout(ctx *Context, bc Constraints) Size {
	p.bc = bc
	p.listen(ctx)
	p.inLayout = true
	defer func() { p.inLayout = false }()

	p.size = p.layout(ctx, bc)
	return p.size
}

func (p *LinkedParticipant) layout(ctx *Context, bc Constraints) Size {
	axis := p.group.Axis()
	natural := p.child.Layout(ctx, bc.LoosenAxis(axis))
	v := natural.Along(axis)
	if !layout.IsFinite(v) {
		return natural
	}

	if p.hasConstraint && p.hasLast && p.last == v {
		return p.child.Layout(ctx, bc.TightenAxis(axis, p.constraint))
	}
	if p.hasConstraint {
		p.hasConstraint = false
		p.group.invalidate(ctx)
	}

	p.last, p.hasLast = v, true
	p.group.report(ctx, p, v)

	// Completing the quorum delivers SetConstraint to us synchronously.
	if p.hasConstraint {
		return p.child.Layout(ctx, bc.TightenAxis(axis, p.constraint))
	}
	return natural
}

// listen subscribes to the group's address on the context's bus, moving the
// subscription if the bus changed.
func (p *LinkedParticipant) listen(ctx *Context) {
	p.scheduler = ctx.Scheduler()
	bus := ctx.Bus()
	if p.bus == bus {
		return
	}
	if p.cancel != nil {
		p.cancel()
	}
	p.bus = bus
	p.cancel = bus.Subscribe(uint64(p.group.ID()), p.handle)
}

func (p *LinkedParticipant) handle(msg LinkMessage) {
	switch msg.Kind {
	case SetConstraint:
		p.constraint, p.hasConstraint = msg.Value, true
	case ResetConstraint:
		p.hasConstraint = false
	case ResetAll:
		p.hasConstraint = false
		p.hasLast = false
		p.reported = false
		p.group.resetCounters()
	default:
		return
	}
	p.requestLayout()
}

func (p *LinkedParticipant) requestLayout() {
	if p.inLayout || p.scheduler == nil {
		return
	}
	p.scheduler.RequestLayout(p)
}
