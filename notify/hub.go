// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package notify fans fresh result totals out to live observers.
// Delivery is best-effort: a slow observer only misses its own updates.
package notify

import (
	"sync"

	"github.com/google/uuid"
)

// DefaultBuffer is the per-observer queue depth.
const DefaultBuffer = 8

// Observer receives totals on C until it is unsubscribed or the hub closes,
// at which point C is closed.
type Observer struct {
	ID string
	C  <-chan []int

	ch chan []int
}

// Hub is safe for concurrent use. The zero value is not usable; call NewHub.
type Hub struct {
	mu        sync.Mutex
	observers map[string]*Observer
	buffer    int
	closed    bool

	// OnChange, if set, is called with the observer count after every
	// subscribe and unsubscribe.
	OnChange func(n int)
}

func NewHub(buffer int) *Hub {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	return &Hub{
		observers: make(map[string]*Observer),
		buffer:    buffer,
	}
}

// Subscribe registers a new observer. It returns false if the hub is closed.
func (h *Hub) Subscribe() (*Observer, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil, false
	}

	ch := make(chan []int, h.buffer)
	o := &Observer{ID: uuid.NewString(), C: ch, ch: ch}
	h.observers[o.ID] = o
	h.changedLocked()
	return o, true
}

// Unsubscribe removes o and closes its channel. It is safe to call twice.
func (h *Hub) Unsubscribe(o *Observer) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.observers[o.ID]; !ok {
		return
	}
	delete(h.observers, o.ID)
	close(o.ch)
	h.changedLocked()
}

// Publish queues totals for every observer without blocking. Observers with
// a full queue skip this update.
func (h *Hub) Publish(totals []int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, o := range h.observers {
		msg := make([]int, len(totals))
		copy(msg, totals)
		select {
		case o.ch <- msg:
		default:
		}
	}
}

// Count returns the number of connected observers.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.observers)
}

// Close disconnects every observer and rejects new subscriptions.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	for id, o := range h.observers {
		delete(h.observers, id)
		close(o.ch)
	}
	h.changedLocked()
}

func (h *Hub) changedLocked() {
	if h.OnChange != nil {
		h.OnChange(len(h.observers))
	}
}
