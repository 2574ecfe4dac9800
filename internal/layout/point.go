package layout

// Point represents an (X, Y) offset.
type Point struct {
	X, Y float64
}

// Add returns a new Point offset by other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns a new Point with other subtracted.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// Along returns the coordinate on the given axis.
func (p Point) Along(axis Axis) float64 {
	if axis == Horizontal {
		return p.X
	}
	return p.Y
}
