package dimsync

// Box sizes itself from explicit Width/Height values, padding and an
// optional child. Auto dimensions take the child's size plus padding.
type Box struct {
	Width   Value
	Height  Value
	Padding Edges
	Child   Widget

	size Size
}

// BoxOption configures a Box.
type BoxOption func(*Box)

// WithWidth sets the box width.
func WithWidth(v Value) BoxOption {
	return func(b *Box) {
		b.Width = v
	}
}

// WithHeight sets the box height.
func WithHeight(v Value) BoxOption {
	return func(b *Box) {
		b.Height = v
	}
}

// WithPadding sets the space between the box edge and its child.
func WithPadding(e Edges) BoxOption {
	return func(b *Box) {
		b.Padding = e
	}
}

// WithChild sets the box's child.
func WithChild(w Widget) BoxOption {
	return func(b *Box) {
		b.Child = w
	}
}

// NewBox creates a box. By default both dimensions are Auto.
func NewBox(opts ...BoxOption) *Box {
	b := &Box{Width: Auto(), Height: Auto()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Size returns the size of the last layout.
func (b *Box) Size() Size {
	return b.size
}

// Layout implements Widget.
func (b *Box) Layout(ctx *Context, bc Constraints) Size {
	inner := bc
	if !b.Width.IsAuto() {
		w := b.Width.Resolve(bc.Max.Width, 0)
		inner = inner.TightenAxis(Horizontal, w)
	}
	if !b.Height.IsAuto() {
		h := b.Height.Resolve(bc.Max.Height, 0)
		inner = inner.TightenAxis(Vertical, h)
	}

	var content Size
	if b.Child != nil {
		content = b.Child.Layout(ctx, inner.Deflate(b.Padding))
	}
	natural := Size{
		Width:  content.Width + b.Padding.Horizontal(),
		Height: content.Height + b.Padding.Vertical(),
	}
	b.size = inner.Constrain(natural)
	return b.size
}
