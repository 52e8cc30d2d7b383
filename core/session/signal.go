// ABOUTME: Auth-change broadcast with last-value replay semantics
// ABOUTME: Unit-value signal meaning "re-read session state now", never a delta

package session

import "sync"

// signalHub fans a zero-payload signal out to any number of subscribers.
// Each subscriber owns a capacity-1 channel, so rapid emissions coalesce and
// a subscriber that arrives after an emission still observes the latest one.
type signalHub struct {
	mu      sync.Mutex
	subs    map[int]chan struct{}
	nextID  int
	emitted bool
}

func newSignalHub() *signalHub {
	return &signalHub{
		subs: make(map[int]chan struct{}),
		// The session always has a current state worth reading, so the very
		// first subscriber gets an immediate signal even before any mutation.
		emitted: true,
	}
}

// subscribe registers a listener and returns its channel plus a cancel func.
func (h *signalHub) subscribe() (<-chan struct{}, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++

	ch := make(chan struct{}, 1)
	if h.emitted {
		ch <- struct{}{}
	}
	h.subs[id] = ch

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.subs, id)
	}
	return ch, cancel
}

// emit delivers one signal to every subscriber without blocking. A subscriber
// that has not drained its previous signal keeps the pending one; the two
// collapse into a single "re-read now".
func (h *signalHub) emit() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.emitted = true
	for _, ch := range h.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
