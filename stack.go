package dimsync

// Stack lays its children out one after another along its axis. Each child
// is unbounded along the stack axis and gets the stack's range on the cross
// axis, minus its lower bound. Children learn their position through
// Context.ChildIndex.
type Stack struct {
	axis     Axis
	gap      float64
	children []Widget
	offsets  []Point
	size     Size
}

// Row creates a horizontal stack.
func Row(children ...Widget) *Stack {
	return &Stack{axis: Horizontal, children: children}
}

// Column creates a vertical stack.
func Column(children ...Widget) *Stack {
	return &Stack{axis: Vertical, children: children}
}

// WithGap sets the space between consecutive children and returns s.
func (s *Stack) WithGap(gap float64) *Stack {
	s.gap = gap
	return s
}

// Append adds children to the end of the stack.
func (s *Stack) Append(children ...Widget) {
	s.children = append(s.children, children...)
}

// Axis returns the stacking axis.
func (s *Stack) Axis() Axis {
	return s.axis
}

// Children returns the stacked widgets.
func (s *Stack) Children() []Widget {
	return s.children
}

// Offsets returns each child's position relative to the stack after the
// last layout.
func (s *Stack) Offsets() []Point {
	return s.offsets
}

// Size returns the size of the last layout.
func (s *Stack) Size() Size {
	return s.size
}

// Layout implements Widget.
func (s *Stack) Layout(ctx *Context, bc Constraints) Size {
	main, cross := s.axis, s.axis.Cross()
	childBC := bc.UnboundAxis(main).LoosenAxis(cross)

	s.offsets = s.offsets[:0]
	var pos, thickness float64
	for i, child := range s.children {
		if i > 0 {
			pos += s.gap
		}
		offset := Point{X: pos}
		if main == Vertical {
			offset = Point{Y: pos}
		}
		s.offsets = append(s.offsets, offset)
		size := ctx.LayoutChild(i, child, childBC)
		pos += size.Along(main)
		thickness = max(thickness, size.Along(cross))
	}

	natural := Size{}.WithAlong(main, pos).WithAlong(cross, thickness)
	s.size = bc.Constrain(natural)
	return s.size
}
