package dimsync

// Key identifies the entry a SyncParticipant synchronizes on. It is either a
// fixed integer or computed from the layout context on every layout call.
type Key struct {
	fixed   uint64
	dynamic func(*Context) uint64
}

// FixedKey returns a Key that always resolves to k.
func FixedKey(k uint64) Key {
	return Key{fixed: k}
}

// DynamicKey returns a Key computed from the context at layout time.
func DynamicKey(fn func(*Context) uint64) Key {
	return Key{dynamic: fn}
}

// IndexKey resolves to the index of the participant within its enclosing
// Stack, so the n-th cells of sibling rows share a key.
func IndexKey() Key {
	return DynamicKey(func(ctx *Context) uint64 {
		return uint64(ctx.ChildIndex())
	})
}

// IsDynamic reports whether the key is computed at layout time.
func (k Key) IsDynamic() bool {
	return k.dynamic != nil
}

// Resolve returns the integer key for the current layout call.
func (k Key) Resolve(ctx *Context) uint64 {
	if k.dynamic != nil {
		return k.dynamic(ctx)
	}
	return k.fixed
}
