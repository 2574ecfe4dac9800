package layout

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges struct {
	Top, Right, Bottom, Left float64
}

// EdgeAll returns Edges with the same value on all sides.
func EdgeAll(n float64) Edges {
	return Edges{Top: n, Right: n, Bottom: n, Left: n}
}

// EdgeSymmetric returns Edges with vertical and horizontal values.
func EdgeSymmetric(vertical, horizontal float64) Edges {
	return Edges{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

// Horizontal returns the total horizontal spacing (Left + Right).
func (e Edges) Horizontal() float64 {
	return e.Left + e.Right
}

// Vertical returns the total vertical spacing (Top + Bottom).
func (e Edges) Vertical() float64 {
	return e.Top + e.Bottom
}

// Along returns the total spacing on the given axis.
func (e Edges) Along(axis Axis) float64 {
	if axis == Horizontal {
		return e.Horizontal()
	}
	return e.Vertical()
}
