package dimsync

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestHost_FullAndPartialFrames(t *testing.T) {
	root := newProbe(10, 4)
	host := NewHost(root)
	bc := Loose(Size{Width: 80, Height: 24})
	r := &countingRelayouter{}

	type step struct {
		before     func()
		bc         Constraints
		rootCalls  int
		relayouts  int
		frameCount int
	}

	steps := []step{
		{bc: bc, rootCalls: 1},
		{bc: bc, rootCalls: 1},
		{before: func() { host.Context().RequestLayout(r) }, bc: bc, rootCalls: 1, relayouts: 1},
		{before: func() { host.Context().RequestLayout(r) }, bc: Loose(Size{Width: 40, Height: 24}), rootCalls: 2, relayouts: 1},
		{before: host.MarkDirty, bc: Loose(Size{Width: 40, Height: 24}), rootCalls: 3, relayouts: 1},
	}

	for i, s := range steps {
		if s.before != nil {
			s.before()
		}
		host.Frame(s.bc)
		if len(root.calls) != s.rootCalls {
			t.Errorf("step %d: root laid out %d times, want %d", i, len(root.calls), s.rootCalls)
		}
		if r.calls != s.relayouts {
			t.Errorf("step %d: relayouts = %d, want %d", i, r.calls, s.relayouts)
		}
	}
	if host.Frames() != len(steps) {
		t.Errorf("Frames() = %d, want %d", host.Frames(), len(steps))
	}
	if host.Size() != (Size{Width: 10, Height: 4}) {
		t.Errorf("Size() = %v, want 10x4", host.Size())
	}
}

func TestHost_WithContextOptions(t *testing.T) {
	reg := NewRegistry()
	host := NewHost(newProbe(1, 1), WithContextOptions(WithRegistry(reg), WithData("row")))

	if host.Context().Registry() != reg {
		t.Error("host did not use the supplied registry")
	}
	if host.Context().Data() != "row" {
		t.Errorf("Data() = %v, want row", host.Context().Data())
	}
}

func TestLayoutWindows(t *testing.T) {
	newWindow := func(naturals ...float64) (*Host, []*probe) {
		probes := make([]*probe, len(naturals))
		parts := make([]Widget, len(naturals))
		for i, n := range naturals {
			probes[i] = newProbe(n, 1)
			parts[i] = NewSyncParticipant(probes[i], FixedKey(0), Horizontal)
		}
		// Both windows use the same domain id; their registries are separate.
		return NewHost(NewSyncScope(1, Column(parts...))), probes
	}
	h1, p1 := newWindow(3, 9)
	h2, p2 := newWindow(20, 4, 6)
	bc := Loose(Size{Width: 100, Height: 100})

	sizes, err := LayoutWindows(context.Background(), []Window{
		{Host: h1, Constraints: bc},
		{Host: h2, Constraints: bc},
	})
	if err != nil {
		t.Fatalf("LayoutWindows: %v", err)
	}

	want := []Size{{Width: 9, Height: 2}, {Width: 20, Height: 3}}
	if diff := cmp.Diff(want, sizes); diff != "" {
		t.Errorf("sizes (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{9, 9}, widths(p1...)); diff != "" {
		t.Errorf("window 1 widths (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{20, 20, 20}, widths(p2...)); diff != "" {
		t.Errorf("window 2 widths (-want +got):\n%s", diff)
	}
}

func TestLayoutWindows_Errors(t *testing.T) {
	shared := NewHost(newProbe(1, 1))
	bc := Unbounded()

	type tc struct {
		ctx     func() context.Context
		windows []Window
		want    error
	}

	tests := map[string]tc{
		"shared host": {
			ctx:     context.Background,
			windows: []Window{{Host: shared, Constraints: bc}, {Host: shared, Constraints: bc}},
			want:    ErrSharedHost,
		},
		"nil host": {
			ctx:     context.Background,
			windows: []Window{{Constraints: bc}},
			want:    ErrNilHost,
		},
		"canceled": {
			ctx: func() context.Context {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx
			},
			windows: []Window{{Host: NewHost(newProbe(1, 1)), Constraints: bc}},
			want:    context.Canceled,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LayoutWindows(tt.ctx(), tt.windows)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}
