package dimsync

// Context is threaded through every Layout call. It carries the registry the
// sync scopes and participants rendezvous through, the stack of enclosing
// domains, application data, the message bus and the relayout scheduler.
//
// A Context belongs to one layout goroutine.
type Context struct {
	registry  *Registry
	bus       *Bus[LinkMessage]
	scheduler *Scheduler
	data      any

	domains []DomainID
	index   int
	replay  int
}

// ContextOption configures a Context.
type ContextOption func(*Context)

// WithData sets the application data dynamic keys can read.
func WithData(data any) ContextOption {
	return func(c *Context) {
		c.data = data
	}
}

// WithRegistry uses r instead of a fresh registry.
func WithRegistry(r *Registry) ContextOption {
	return func(c *Context) {
		c.registry = r
	}
}

// WithBus uses b instead of a fresh bus.
func WithBus(b *Bus[LinkMessage]) ContextOption {
	return func(c *Context) {
		c.bus = b
	}
}

// NewContext creates a Context with its own registry, bus and scheduler
// unless options supply them.
func NewContext(opts ...ContextOption) *Context {
	c := &Context{}
	for _, opt := range opts {
		opt(c)
	}
	if c.registry == nil {
		c.registry = NewRegistry()
	}
	if c.bus == nil {
		c.bus = NewBus[LinkMessage]()
	}
	if c.scheduler == nil {
		c.scheduler = NewScheduler()
	}
	return c
}

// Registry returns the keyed registry.
func (c *Context) Registry() *Registry {
	return c.registry
}

// Bus returns the message bus link groups broadcast on.
func (c *Context) Bus() *Bus[LinkMessage] {
	return c.bus
}

// Scheduler returns the relayout scheduler.
func (c *Context) Scheduler() *Scheduler {
	return c.scheduler
}

// Data returns the application data.
func (c *Context) Data() any {
	return c.data
}

// SetData replaces the application data.
func (c *Context) SetData(data any) {
	c.data = data
}

// Domain returns the innermost enclosing domain.
func (c *Context) Domain() (DomainID, bool) {
	if len(c.domains) == 0 {
		return 0, false
	}
	return c.domains[len(c.domains)-1], true
}

// ChildIndex returns the index of the widget being laid out within the
// nearest container that used LayoutChild. It is 0 outside any container.
func (c *Context) ChildIndex() int {
	return c.index
}

// LayoutChild lays out w as the index-th child of the calling container.
func (c *Context) LayoutChild(index int, w Widget, bc Constraints) Size {
	prev := c.index
	c.index = index
	defer func() { c.index = prev }()
	return w.Layout(c, bc)
}

// RequestLayout asks the host to revisit r on the next frame.
func (c *Context) RequestLayout(r Relayouter) {
	c.scheduler.RequestLayout(r)
}

// pushDomain enters a domain and returns the function that leaves it.
func (c *Context) pushDomain(id DomainID) func() {
	c.domains = append(c.domains, id)
	n := len(c.domains)
	return func() {
		c.domains = c.domains[:n-1]
	}
}

// replaying reports whether the subtree is being laid out again after it was
// already measured in this pass. Samples are not recorded while replaying.
func (c *Context) replaying() bool {
	return c.replay > 0
}

// enterReplay starts a replay and returns the function that ends it.
func (c *Context) enterReplay() func() {
	c.replay++
	return func() {
		c.replay--
	}
}

// reset drops per-pass state left over by an abandoned layout call.
func (c *Context) reset() {
	c.domains = c.domains[:0]
	c.index = 0
	c.replay = 0
}
