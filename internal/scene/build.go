package scene

import (
	"fmt"

	"github.com/grindlemire/go-dimsync"
)

// Default frame when a document leaves width, height or frames unset.
const (
	DefaultWidth  = 80
	DefaultHeight = 24
	DefaultFrames = 4
)

// Probe is a named widget whose size is reported after layout.
type Probe struct {
	Name   string
	Kind   string
	Widget dimsync.Sized
}

// Scene is a built document.
type Scene struct {
	Root   dimsync.Widget
	Probes []Probe
	Groups map[string]*dimsync.LinkGroup
	Width  float64
	Height float64
	Frames int
}

// Build turns the document into widgets. Link groups are created fresh for
// every build.
func (d *Document) Build() (*Scene, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	s := &Scene{
		Groups: make(map[string]*dimsync.LinkGroup, len(d.Groups)),
		Width:  d.Width,
		Height: d.Height,
		Frames: d.Frames,
	}
	if s.Width == 0 {
		s.Width = DefaultWidth
	}
	if s.Height == 0 {
		s.Height = DefaultHeight
	}
	if s.Frames == 0 {
		s.Frames = DefaultFrames
	}
	for name, spec := range d.Groups {
		s.Groups[name] = dimsync.NewLinkGroup(spec.Axis.Axis())
	}

	root, err := s.build(d.Root)
	if err != nil {
		return nil, err
	}
	s.Root = root
	return s, nil
}

func (s *Scene) build(n *Node) (dimsync.Widget, error) {
	w, err := s.widget(n)
	if err != nil {
		return nil, err
	}
	if n.Name != "" {
		sized, ok := w.(dimsync.Sized)
		if !ok {
			return nil, fmt.Errorf("node %q: %w: %s does not report its size", n.Name, ErrInvalidNode, n.Kind())
		}
		s.Probes = append(s.Probes, Probe{Name: n.Name, Kind: n.Kind(), Widget: sized})
	}
	return w, nil
}

func (s *Scene) widget(n *Node) (dimsync.Widget, error) {
	switch {
	case n.Label != nil:
		return dimsync.NewLabel(*n.Label), nil

	case n.Box != nil:
		opts := []dimsync.BoxOption{
			dimsync.WithWidth(n.Box.Width.Value),
			dimsync.WithHeight(n.Box.Height.Value),
			dimsync.WithPadding(dimsync.EdgeAll(n.Box.Padding)),
		}
		if n.Box.Child != nil {
			child, err := s.build(n.Box.Child)
			if err != nil {
				return nil, err
			}
			opts = append(opts, dimsync.WithChild(child))
		}
		return dimsync.NewBox(opts...), nil

	case n.Row != nil:
		children, err := s.buildAll(n.Row.Children)
		if err != nil {
			return nil, err
		}
		return dimsync.Row(children...).WithGap(n.Row.Gap), nil

	case n.Column != nil:
		children, err := s.buildAll(n.Column.Children)
		if err != nil {
			return nil, err
		}
		return dimsync.Column(children...).WithGap(n.Column.Gap), nil

	case n.Scope != nil:
		child, err := s.build(n.Scope.Child)
		if err != nil {
			return nil, err
		}
		if n.Scope.Domain == 0 {
			return dimsync.NewScope(child), nil
		}
		return dimsync.NewSyncScope(dimsync.DomainID(n.Scope.Domain), child), nil

	case n.Participant != nil:
		child, err := s.build(n.Participant.Child)
		if err != nil {
			return nil, err
		}
		key := dimsync.IndexKey()
		if n.Participant.Key != nil {
			key = dimsync.FixedKey(*n.Participant.Key)
		}
		return dimsync.NewSyncParticipant(child, key, n.Participant.Axis.Axis()), nil

	case n.Linked != nil:
		child, err := s.build(n.Linked.Child)
		if err != nil {
			return nil, err
		}
		g, ok := s.Groups[n.Linked.Group]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownGroup, n.Linked.Group)
		}
		return dimsync.NewLinkedParticipant(child, g), nil
	}
	return nil, fmt.Errorf("%w: no widget kind", ErrInvalidNode)
}

func (s *Scene) buildAll(nodes []*Node) ([]dimsync.Widget, error) {
	out := make([]dimsync.Widget, 0, len(nodes))
	for _, n := range nodes {
		w, err := s.build(n)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, nil
}

// Constraints returns the loose frame the scene is laid out in.
func (s *Scene) Constraints() dimsync.Constraints {
	return dimsync.Loose(dimsync.Size{Width: s.Width, Height: s.Height})
}

// Result is the outcome of running a scene.
type Result struct {
	Frames  int
	Pending int
	Root    dimsync.Size
	Probes  []ProbeResult
}

// ProbeResult is the reported size of one named node.
type ProbeResult struct {
	Name   string
	Kind   string
	Size   dimsync.Size
	Passes int // scopes only
}

// Run lays the scene out on a new host until no relayout is pending or the
// frame budget is spent.
func (s *Scene) Run() Result {
	host := dimsync.NewHost(s.Root)
	frames := host.Settle(s.Constraints(), s.Frames)

	res := Result{Frames: frames, Pending: host.Pending(), Root: host.Size()}
	for _, p := range s.Probes {
		pr := ProbeResult{Name: p.Name, Kind: p.Kind, Size: p.Widget.Size()}
		if scope, ok := p.Widget.(*dimsync.SyncScope); ok {
			pr.Passes = scope.Passes()
		}
		res.Probes = append(res.Probes, pr)
	}
	return res
}
