package dimsync

// Scheduler collects relayout requests raised during a frame. A full request
// revisits the whole tree; a partial request revisits one widget.
type Scheduler struct {
	dirty   bool
	pending []Relayouter
	queued  map[Relayouter]struct{}
}

// NewScheduler creates an idle scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{queued: make(map[Relayouter]struct{})}
}

// MarkDirty requests a full layout pass on the next frame.
func (s *Scheduler) MarkDirty() {
	s.dirty = true
}

// RequestLayout asks for r alone to be revisited on the next frame.
// Repeated requests before the next frame are merged.
func (s *Scheduler) RequestLayout(r Relayouter) {
	if _, ok := s.queued[r]; ok {
		return
	}
	s.queued[r] = struct{}{}
	s.pending = append(s.pending, r)
}

// Pending returns the number of widgets waiting for a partial relayout.
func (s *Scheduler) Pending() int {
	return len(s.pending)
}

// IsDirty reports whether a full pass was requested.
func (s *Scheduler) IsDirty() bool {
	return s.dirty
}

// checkAndClearDirty returns true if dirty and clears the flag.
func (s *Scheduler) checkAndClearDirty() bool {
	d := s.dirty
	s.dirty = false
	return d
}

// takePending returns the queued relayouters in request order and empties
// the queue.
func (s *Scheduler) takePending() []Relayouter {
	out := s.pending
	s.pending = nil
	clear(s.queued)
	return out
}
