package registry

import (
	"slices"

	"github.com/grindlemire/go-dimsync/internal/layout"
)

// Entry is the aggregated state of one (domain, key) pair.
type Entry struct {
	// Axis is the axis the samples were measured on. The first recorder wins.
	Axis layout.Axis

	// Samples holds the natural sizes recorded during the current pass.
	Samples []float64

	// Resolved is the agreed size; only meaningful when HasResolved is set.
	Resolved    float64
	HasResolved bool
}

// Constraint returns the resolved value, if any.
func (e Entry) Constraint() (float64, bool) {
	return e.Resolved, e.HasResolved
}

// Max returns the largest finite sample.
func (e Entry) Max() (float64, bool) {
	found := false
	var m float64
	for _, v := range e.Samples {
		if !layout.IsFinite(v) {
			continue
		}
		if !found || v > m {
			m = v
			found = true
		}
	}
	return m, found
}

// sameInput reports whether two entries were fed the same samples on the
// same axis. Resolved is derived from the samples and is not compared.
func (e Entry) sameInput(other Entry) bool {
	return e.Axis == other.Axis && slices.Equal(e.Samples, other.Samples)
}

func (e Entry) cleared() Entry {
	return Entry{Axis: e.Axis}
}

func (e Entry) withSample(v float64) Entry {
	// Clip forces a copy so snapshots never observe the append.
	e.Samples = append(slices.Clip(e.Samples), v)
	e.Resolved, e.HasResolved = 0, false
	return e
}
