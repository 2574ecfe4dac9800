package dimsync

// probe is a leaf with a fixed natural size that records every constraint
// it is laid out with.
type probe struct {
	natural Size
	calls   []Constraints
	size    Size
}

func newProbe(w, h float64) *probe {
	return &probe{natural: Size{Width: w, Height: h}}
}

func (p *probe) Layout(_ *Context, bc Constraints) Size {
	p.calls = append(p.calls, bc)
	p.size = bc.Constrain(p.natural)
	return p.size
}

func (p *probe) last() Constraints {
	return p.calls[len(p.calls)-1]
}

func (p *probe) reset() {
	p.calls = nil
}

func widgets[T Widget](ws ...T) []Widget {
	out := make([]Widget, len(ws))
	for i, w := range ws {
		out[i] = w
	}
	return out
}
