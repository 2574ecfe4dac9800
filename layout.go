// layout.go re-exports geometry types from internal/layout and the registry.
// Any changes to those types must be mirrored here.
package dimsync

import (
	"github.com/grindlemire/go-dimsync/internal/layout"
	"github.com/grindlemire/go-dimsync/internal/registry"
)

// Axis names one of the two layout directions.
type Axis = layout.Axis

const (
	Horizontal = layout.Horizontal
	Vertical   = layout.Vertical
)

// Size represents a width/height pair.
type Size = layout.Size

// Point represents an (X, Y) offset.
type Point = layout.Point

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// Constraints is the range of sizes a parent allows a child to take.
type Constraints = layout.Constraints

// Value represents a dimension value (fixed, percent, or auto).
type Value = layout.Value

// Unit specifies how a Value is interpreted.
type Unit = layout.Unit

const (
	UnitAuto    = layout.UnitAuto
	UnitFixed   = layout.UnitFixed
	UnitPercent = layout.UnitPercent
)

// Registry maps (domain, key) pairs to aggregated sizes.
type Registry = registry.Registry

// Entry is the aggregated state of one (domain, key) pair.
type Entry = registry.Entry

// Snapshot is an immutable view of one domain's entries.
type Snapshot = registry.Snapshot

// Change describes an entry that differs between two snapshots.
type Change = registry.Change

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return registry.New()
}

// Tight returns constraints that only allow exactly s.
func Tight(s Size) Constraints {
	return layout.Tight(s)
}

// Loose returns constraints from zero up to s.
func Loose(s Size) Constraints {
	return layout.Loose(s)
}

// Unbounded returns constraints with no upper limit on either axis.
func Unbounded() Constraints {
	return layout.Unbounded()
}

// Auto returns a Value that should be computed from content.
func Auto() Value {
	return layout.Auto()
}

// Fixed returns a Value representing an absolute extent.
func Fixed(n float64) Value {
	return layout.Fixed(n)
}

// Percent returns a Value representing a percentage of available space.
func Percent(p float64) Value {
	return layout.Percent(p)
}

// EdgeAll returns Edges with the same value on all sides.
func EdgeAll(n float64) Edges {
	return layout.EdgeAll(n)
}

// EdgeSymmetric returns Edges with vertical and horizontal values.
func EdgeSymmetric(vertical, horizontal float64) Edges {
	return layout.EdgeSymmetric(vertical, horizontal)
}
