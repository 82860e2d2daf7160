// Package events provides a minimal in-process broadcast bus. The cart
// surfaces use it as a "cart updated" signal: a notification carries no
// payload, every subscriber re-reads whatever state it cares about.
package events

import "sync"

// Bus fans a signal out to all current subscribers. Publish never blocks:
// a subscriber that has not drained its channel keeps a single pending
// notification, repeated publishes coalesce into it.
type Bus struct {
	mu   sync.Mutex
	subs map[*Subscription]struct{}
}

// Subscription is one listener on the bus. Receive on C; call Close on
// teardown so the bus does not accumulate dead listeners.
type Subscription struct {
	C   chan struct{}
	bus *Bus
}

func NewBus() *Bus {
	return &Bus{subs: make(map[*Subscription]struct{})}
}

// Subscribe registers a new listener.
func (b *Bus) Subscribe() *Subscription {
	sub := &Subscription{
		C:   make(chan struct{}, 1),
		bus: b,
	}

	b.mu.Lock()
	b.subs[sub] = struct{}{}
	b.mu.Unlock()

	return sub
}

// Publish notifies every subscriber. Fire-and-forget: subscribers that are
// mid-notification are not signalled twice.
func (b *Bus) Publish() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for sub := range b.subs {
		select {
		case sub.C <- struct{}{}:
		default:
			// pending notification already queued
		}
	}
}

// Close removes the subscription from the bus. Safe to call more than once.
func (s *Subscription) Close() {
	s.bus.mu.Lock()
	delete(s.bus.subs, s)
	s.bus.mu.Unlock()
}

// Len reports the number of live subscriptions.
func (b *Bus) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
