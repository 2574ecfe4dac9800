package layout

import (
	"fmt"
	"math"
)

// Size represents a width/height pair.
type Size struct {
	Width, Height float64
}

// Along returns the extent on the given axis.
func (s Size) Along(axis Axis) float64 {
	if axis == Horizontal {
		return s.Width
	}
	return s.Height
}

// WithAlong returns a copy of s with the extent on axis replaced by v.
func (s Size) WithAlong(axis Axis, v float64) Size {
	if axis == Horizontal {
		s.Width = v
	} else {
		s.Height = v
	}
	return s
}

// IsFinite reports whether both extents are finite numbers.
func (s Size) IsFinite() bool {
	return IsFinite(s.Width) && IsFinite(s.Height)
}

func (s Size) String() string {
	return fmt.Sprintf("%gx%g", s.Width, s.Height)
}

// IsFinite reports whether v is neither infinite nor NaN.
func IsFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
