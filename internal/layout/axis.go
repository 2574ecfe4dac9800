package layout

// Axis names one of the two layout directions.
type Axis uint8

const (
	Horizontal Axis = iota // Widths
	Vertical               // Heights
)

// Cross returns the other axis.
func (a Axis) Cross() Axis {
	if a == Horizontal {
		return Vertical
	}
	return Horizontal
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}
