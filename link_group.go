package dimsync

import (
	"math"

	"github.com/grindlemire/go-dimsync/internal/debug"
)

var linkLog = debug.For("link")

// LinkGroup is a fixed set of LinkedParticipants that agree on their maximum
// extent along one axis. Membership grows only when a participant is
// constructed with the group; it never shrinks.
//
// Each round every member reports once. The report that completes the quorum
// resets the counters and sends SetConstraint with the maximum to the group's
// address. A group that never reaches quorum never broadcasts.
type LinkGroup struct {
	id       GroupID
	axis     Axis
	members  int
	reported int
	maxSeen  float64
	round    uint64
}

// NewLinkGroup creates an empty group synchronizing along axis.
func NewLinkGroup(axis Axis) *LinkGroup {
	return &LinkGroup{
		id:      nextGroupID(),
		axis:    axis,
		maxSeen: math.Inf(-1),
	}
}

// ID returns the group's identity, which is also its bus address.
func (g *LinkGroup) ID() GroupID {
	return g.id
}

// Axis returns the synchronized axis.
func (g *LinkGroup) Axis() Axis {
	return g.axis
}

// Members returns the number of attached participants.
func (g *LinkGroup) Members() int {
	return g.members
}

// Reported returns how many members have reported in the current round.
func (g *LinkGroup) Reported() int {
	return g.reported
}

// MaxSeen returns the largest report of the current round, or -Inf.
func (g *LinkGroup) MaxSeen() float64 {
	return g.maxSeen
}

// Reset abandons the current round and tells every member to drop its
// stored constraint.
func (g *LinkGroup) Reset(ctx *Context) {
	g.invalidate(ctx)
}

func (g *LinkGroup) attach() {
	g.members++
}

// report counts a member's measurement. A member that already reported this
// round only raises the maximum.
func (g *LinkGroup) report(ctx *Context, m *LinkedParticipant, v float64) {
	if v > g.maxSeen {
		g.maxSeen = v
	}
	if m.reported && m.round == g.round {
		return
	}
	m.reported, m.round = true, g.round
	g.reported++

	if g.reported < g.members {
		return
	}
	value := g.maxSeen
	g.resetCounters()
	n := ctx.Bus().Send(uint64(g.id), LinkMessage{Kind: SetConstraint, Value: value})
	linkLog.Log("group %d: quorum of %d, broadcast %g to %d listener(s)", g.id, g.members, value, n)
}

func (g *LinkGroup) invalidate(ctx *Context) {
	g.resetCounters()
	n := ctx.Bus().Send(uint64(g.id), LinkMessage{Kind: ResetConstraint})
	linkLog.Log("group %d: invalidated, reset %d listener(s)", g.id, n)
}

// resetCounters starts a new round.
func (g *LinkGroup) resetCounters() {
	g.reported = 0
	g.maxSeen = math.Inf(-1)
	g.round++
}
