package dimsync

// Widget is anything that can be laid out. Layout must return a size inside
// bc and may be called more than once per frame.
type Widget interface {
	Layout(ctx *Context, bc Constraints) Size
}

// WidgetFunc adapts a function to the Widget interface.
type WidgetFunc func(ctx *Context, bc Constraints) Size

// Layout calls f(ctx, bc).
func (f WidgetFunc) Layout(ctx *Context, bc Constraints) Size {
	return f(ctx, bc)
}

// Relayouter is a widget that can be revisited on its own, outside a full
// pass over the tree, with the constraints it last received.
type Relayouter interface {
	Relayout(ctx *Context) Size
}

// Sized is implemented by widgets that remember the size of their last layout.
type Sized interface {
	Size() Size
}
