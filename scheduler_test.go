package dimsync

import "testing"

type countingRelayouter struct {
	name  string
	calls int
}

func (c *countingRelayouter) Relayout(*Context) Size {
	c.calls++
	return Size{}
}

func TestScheduler_DeduplicatesInOrder(t *testing.T) {
	s := NewScheduler()
	a, b := &countingRelayouter{name: "a"}, &countingRelayouter{name: "b"}

	s.RequestLayout(b)
	s.RequestLayout(a)
	s.RequestLayout(b)

	if s.Pending() != 2 {
		t.Fatalf("Pending() = %d, want 2", s.Pending())
	}
	got := s.takePending()
	if got[0] != b || got[1] != a {
		t.Errorf("order = [%s %s], want [b a]", got[0].(*countingRelayouter).name, got[1].(*countingRelayouter).name)
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() after take = %d, want 0", s.Pending())
	}

	s.RequestLayout(a)
	if s.Pending() != 1 {
		t.Errorf("Pending() after re-request = %d, want 1", s.Pending())
	}
}

func TestScheduler_Dirty(t *testing.T) {
	s := NewScheduler()
	if s.checkAndClearDirty() {
		t.Error("new scheduler is dirty")
	}

	s.MarkDirty()
	if !s.IsDirty() {
		t.Error("IsDirty() = false after MarkDirty")
	}
	if !s.checkAndClearDirty() {
		t.Error("checkAndClearDirty() = false after MarkDirty")
	}
	if s.checkAndClearDirty() {
		t.Error("dirty flag not cleared")
	}
}
