package dimsync

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/go-dimsync/internal/debug"
)

var hostLog = debug.For("host")

// ErrSharedHost is returned by LayoutWindows when two windows use the same
// host; a host's registry cannot be driven from two goroutines.
var ErrSharedHost = errors.New("dimsync: host shared between windows")

// ErrNilHost is returned by LayoutWindows for a window without a host.
var ErrNilHost = errors.New("dimsync: window has no host")

// Host drives frames over a root widget. It owns the registry, bus and
// scheduler for the lifetime of the tree.
type Host struct {
	root   Widget
	ctx    *Context
	bc     Constraints
	hasBC  bool
	size   Size
	frames int
}

// HostOption configures a Host.
type HostOption func(*hostConfig)

type hostConfig struct {
	ctxOpts []ContextOption
}

// WithContextOptions passes options to the host's Context.
func WithContextOptions(opts ...ContextOption) HostOption {
	return func(c *hostConfig) {
		c.ctxOpts = append(c.ctxOpts, opts...)
	}
}

// NewHost creates a host for root.
func NewHost(root Widget, opts ...HostOption) *Host {
	var cfg hostConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Host{root: root, ctx: NewContext(cfg.ctxOpts...)}
}

// Frame lays out one frame within bc. The first frame, a frame after
// MarkDirty, and a frame with new constraints lay out the whole tree.
// Otherwise only the widgets that requested a relayout during the previous
// frame are revisited. Requests raised during this frame wait for the next.
func (h *Host) Frame(bc Constraints) Size {
	h.frames++
	h.ctx.reset()
	sched := h.ctx.Scheduler()

	dirty := sched.checkAndClearDirty()
	if dirty || !h.hasBC || bc != h.bc {
		// A full pass revisits everything that asked.
		sched.takePending()
		h.bc, h.hasBC = bc, true
		h.size = h.root.Layout(h.ctx, bc)
		hostLog.Log("frame %d full layout %v -> %v", h.frames, bc, h.size)
		return h.size
	}

	pending := sched.takePending()
	for _, r := range pending {
		r.Relayout(h.ctx)
	}
	hostLog.Log("frame %d revisited %d widget(s)", h.frames, len(pending))
	return h.size
}

// Settle runs frames until no partial relayout is pending, at most limit
// frames, and returns how many ran.
func (h *Host) Settle(bc Constraints, limit int) int {
	n := 0
	for n < limit {
		h.Frame(bc)
		n++
		if h.Pending() == 0 && !h.ctx.Scheduler().IsDirty() {
			break
		}
	}
	return n
}

// MarkDirty forces a full layout on the next frame.
func (h *Host) MarkDirty() {
	h.ctx.Scheduler().MarkDirty()
}

// Pending returns the number of widgets waiting for a partial relayout.
func (h *Host) Pending() int {
	return h.ctx.Scheduler().Pending()
}

// ResetLinks clears the state of every link group member in the tree.
func (h *Host) ResetLinks() {
	n := h.ctx.Bus().Broadcast(LinkMessage{Kind: ResetAll})
	hostLog.Log("reset %d link listener(s)", n)
}

// Size returns the root size from the last full layout.
func (h *Host) Size() Size {
	return h.size
}

// Frames returns the number of frames laid out so far.
func (h *Host) Frames() int {
	return h.frames
}

// Context returns the host's layout context.
func (h *Host) Context() *Context {
	return h.ctx
}

// Root returns the root widget.
func (h *Host) Root() Widget {
	return h.root
}

// Window pairs a host with the constraints of one frame.
type Window struct {
	Host        *Host
	Constraints Constraints
}

// LayoutWindows lays out one frame of each window concurrently and returns
// the root sizes in window order. Each host keeps its own registry, so the
// windows never share layout state; trees must not share link groups.
func LayoutWindows(ctx context.Context, windows []Window) ([]Size, error) {
	seen := make(map[*Host]int, len(windows))
	for i, w := range windows {
		if w.Host == nil {
			return nil, fmt.Errorf("window %d: %w", i, ErrNilHost)
		}
		if j, ok := seen[w.Host]; ok {
			return nil, fmt.Errorf("windows %d and %d: %w", j, i, ErrSharedHost)
		}
		seen[w.Host] = i
	}

	sizes := make([]Size, len(windows))
	g, gctx := errgroup.WithContext(ctx)
	for i, w := range windows {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return fmt.Errorf("window %d: %w", i, err)
			}
			sizes[i] = w.Host.Frame(w.Constraints)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sizes, nil
}
