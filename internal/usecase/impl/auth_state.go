package impl

import (
	"context"
	"sync"
)

// authStateBroadcaster fans the authenticated boolean out to subscribers.
// Each subscriber holds a one-slot channel; a newer value replaces an unread one.
type authStateBroadcaster struct {
	mu     sync.Mutex
	value  bool
	nextID uint64
	subs   map[uint64]*stateSubscriber
	closed bool
	done   chan struct{}
}

// stateSubscriber tracks what its reader has already taken so a reader never
// receives the same value twice in a row.
type stateSubscriber struct {
	ch      chan bool
	lastPut bool
	seen    bool
	hasSeen bool
}

func newAuthStateBroadcaster(initial bool) *authStateBroadcaster {
	return &authStateBroadcaster{
		value: initial,
		subs:  make(map[uint64]*stateSubscriber),
		done:  make(chan struct{}),
	}
}

// publish stores v and notifies subscribers. It reports whether the value changed.
func (b *authStateBroadcaster) publish(v bool) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed || b.value == v {
		return false
	}

	b.value = v
	for _, sub := range b.subs {
		sub.offer(v)
	}

	return true
}

func (b *authStateBroadcaster) current() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.value
}

// subscribe returns a channel primed with the current value. It is closed when
// ctx is done or the broadcaster is closed.
func (b *authStateBroadcaster) subscribe(ctx context.Context) <-chan bool {
	ch := make(chan bool, 1)

	b.mu.Lock()
	ch <- b.value
	if b.closed {
		b.mu.Unlock()
		close(ch)

		return ch
	}
	id := b.nextID
	b.nextID++
	b.subs[id] = &stateSubscriber{ch: ch, lastPut: b.value}
	b.mu.Unlock()

	go func() {
		select {
		case <-ctx.Done():
			b.unsubscribe(id)
		case <-b.done:
		}
	}()

	return ch
}

func (b *authStateBroadcaster) unsubscribe(id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if sub, ok := b.subs[id]; ok {
		delete(b.subs, id)
		close(sub.ch)
	}
}

// close closes every subscriber channel. Later publishes are ignored.
func (b *authStateBroadcaster) close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	b.closed = true
	for id, sub := range b.subs {
		delete(b.subs, id)
		close(sub.ch)
	}
	close(b.done)
}

// offer makes v the next value for the reader. An unread value is replaced, and
// nothing is queued when the reader already holds v. Callers must hold the
// broadcaster lock, which makes them the only sender.
func (s *stateSubscriber) offer(v bool) {
	select {
	case <-s.ch:
		// Taken back unread; the reader still holds what it saw before.
		s.lastPut = s.seen
	default:
		s.seen, s.hasSeen = s.lastPut, true
	}

	if s.hasSeen && s.seen == v {
		return
	}

	s.ch <- v
	s.lastPut = v
}
