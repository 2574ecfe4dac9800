package dimsync

import "sync"

// LinkCommand is the kind of a LinkMessage.
type LinkCommand uint8

const (
	// SetConstraint carries the maximum a link group agreed on.
	SetConstraint LinkCommand = iota
	// ResetConstraint tells members to drop their stored constraint.
	ResetConstraint
	// ResetAll clears all link state, sent to every address.
	ResetAll
)

func (c LinkCommand) String() string {
	switch c {
	case SetConstraint:
		return "set"
	case ResetConstraint:
		return "reset"
	case ResetAll:
		return "reset-all"
	default:
		return "unknown"
	}
}

// LinkMessage is the message link groups broadcast to their members.
type LinkMessage struct {
	Kind  LinkCommand
	Value float64
}

// Bus is a synchronous message bus with addressed delivery.
// It is generic over the message type T.
type Bus[T any] struct {
	mu        sync.RWMutex
	listeners map[uint64][]subscription[T]
	next      uint64
}

type subscription[T any] struct {
	id uint64
	fn func(T)
}

// NewBus creates an empty bus.
func NewBus[T any]() *Bus[T] {
	return &Bus[T]{listeners: make(map[uint64][]subscription[T])}
}

// Subscribe registers fn for messages sent to addr and returns a function
// that removes the subscription.
func (b *Bus[T]) Subscribe(addr uint64, fn func(T)) (cancel func()) {
	b.mu.Lock()
	b.next++
	id := b.next
	b.listeners[addr] = append(b.listeners[addr], subscription[T]{id: id, fn: fn})
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		subs := b.listeners[addr]
		for i, s := range subs {
			if s.id == id {
				b.listeners[addr] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
		if len(b.listeners[addr]) == 0 {
			delete(b.listeners, addr)
		}
	}
}

// Send delivers msg to every listener of addr before returning and reports
// how many listeners received it.
func (b *Bus[T]) Send(addr uint64, msg T) int {
	b.mu.RLock()
	subs := b.listeners[addr]
	b.mu.RUnlock()

	for _, s := range subs {
		s.fn(msg)
	}
	return len(subs)
}

// Broadcast delivers msg to every listener of every address.
func (b *Bus[T]) Broadcast(msg T) int {
	b.mu.RLock()
	var subs []subscription[T]
	for _, l := range b.listeners {
		subs = append(subs, l...)
	}
	b.mu.RUnlock()

	for _, s := range subs {
		s.fn(msg)
	}
	return len(subs)
}

// Listeners returns the number of listeners subscribed to addr.
func (b *Bus[T]) Listeners(addr uint64) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.listeners[addr])
}
