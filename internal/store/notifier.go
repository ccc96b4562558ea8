package store

import (
	"encoding/json"
	"sync"

	"taruvae/pkg/logger"
)

// Notifier fans collection snapshots out to in-process subscribers so that
// independently mounted views observe the same data without each polling the
// remote store. Every event carries the entire collection; delivery order
// across subscribers for the same event is unspecified.
type Notifier struct {
	mu   sync.Mutex
	next int
	subs map[string]map[int]func(json.RawMessage)
}

func NewNotifier() *Notifier {
	return &Notifier{
		subs: make(map[string]map[int]func(json.RawMessage)),
	}
}

// Subscribe registers a callback for a collection and returns its
// unsubscribe function. Subscriptions are independent; there is no shared
// reference counting.
func (n *Notifier) Subscribe(collection string, fn func(json.RawMessage)) func() {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.next
	n.next++

	if n.subs[collection] == nil {
		n.subs[collection] = make(map[int]func(json.RawMessage))
	}
	n.subs[collection][id] = fn

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.subs[collection], id)
	}
}

// Publish serializes value once and delivers it to every subscriber of the
// collection. Fire-and-forget: no acknowledgment, no back-pressure.
func (n *Notifier) Publish(collection string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		logger.Warn("notifier: failed to serialize %s event: %v", collection, err)
		return
	}

	n.mu.Lock()
	fns := make([]func(json.RawMessage), 0, len(n.subs[collection]))
	for _, fn := range n.subs[collection] {
		fns = append(fns, fn)
	}
	n.mu.Unlock()

	for _, fn := range fns {
		fn(data)
	}
}
