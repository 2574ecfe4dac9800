package layout

import (
	"fmt"
	"math"
)

// Constraints is the range of sizes a parent allows a child to take.
// Max extents may be +Inf; Min extents are always finite.
type Constraints struct {
	Min Size
	Max Size
}

// Tight returns constraints that only allow exactly s.
func Tight(s Size) Constraints {
	return Constraints{Min: s, Max: s}
}

// Loose returns constraints from zero up to s.
func Loose(s Size) Constraints {
	return Constraints{Max: s}
}

// Unbounded returns constraints with no upper limit on either axis.
func Unbounded() Constraints {
	return Constraints{Max: Size{Width: math.Inf(1), Height: math.Inf(1)}}
}

// Constrain clamps s into the allowed range.
func (c Constraints) Constrain(s Size) Size {
	return Size{
		Width:  clamp(s.Width, c.Min.Width, c.Max.Width),
		Height: clamp(s.Height, c.Min.Height, c.Max.Height),
	}
}

// IsTight reports whether exactly one size is allowed.
func (c Constraints) IsTight() bool {
	return c.Min == c.Max
}

// IsTightAlong reports whether exactly one extent is allowed on axis.
func (c Constraints) IsTightAlong(axis Axis) bool {
	return c.Min.Along(axis) == c.Max.Along(axis)
}

// TightenAxis returns constraints that force extent v on axis. The value is
// clamped into the incoming range; the cross axis is left as is.
func (c Constraints) TightenAxis(axis Axis, v float64) Constraints {
	v = clamp(v, c.Min.Along(axis), c.Max.Along(axis))
	c.Min = c.Min.WithAlong(axis, v)
	c.Max = c.Max.WithAlong(axis, v)
	return c
}

// LoosenAxis drops the lower bound on axis.
func (c Constraints) LoosenAxis(axis Axis) Constraints {
	c.Min = c.Min.WithAlong(axis, 0)
	return c
}

// UnboundAxis removes both bounds on axis.
func (c Constraints) UnboundAxis(axis Axis) Constraints {
	c.Min = c.Min.WithAlong(axis, 0)
	c.Max = c.Max.WithAlong(axis, math.Inf(1))
	return c
}

// Deflate shrinks the range by the given edges, never below zero.
func (c Constraints) Deflate(e Edges) Constraints {
	h, v := e.Horizontal(), e.Vertical()
	return Constraints{
		Min: Size{Width: math.Max(0, c.Min.Width-h), Height: math.Max(0, c.Min.Height-v)},
		Max: Size{Width: math.Max(0, c.Max.Width-h), Height: math.Max(0, c.Max.Height-v)},
	}
}

func (c Constraints) String() string {
	return fmt.Sprintf("[%v..%v]", c.Min, c.Max)
}

func clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
