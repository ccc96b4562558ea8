package store

import (
	"bytes"
	"context"
	"encoding/json"
	"sync"
	"time"

	"taruvae/pkg/logger"
)

// SaveResult reports where a write landed. Remote is false when the value
// only reached the local mirror; Message carries the user-facing note in that
// case. Writes never fail outright: the mirror always takes the value.
type SaveResult struct {
	Remote  bool
	Message string
}

const localOnlyMessage = "saved locally; remote store unavailable"

// Collection binds one list-valued database path to its mirror key and the
// change notifier. Every save rewrites the entire list at the path:
// last writer wins, no merge, no version check.
type Collection[T any] struct {
	Path      string
	MirrorKey string

	remote    Remote
	mirror    *Mirror
	notifier  *Notifier
	pollEvery time.Duration
}

func NewCollection[T any](remote Remote, mirror *Mirror, notifier *Notifier, path, mirrorKey string, pollEvery time.Duration) *Collection[T] {
	return &Collection[T]{
		Path:      path,
		MirrorKey: mirrorKey,
		remote:    remote,
		mirror:    mirror,
		notifier:  notifier,
		pollEvery: pollEvery,
	}
}

// Save persists the whole collection: sanitized copy to the remote store,
// verbatim copy to the mirror, then one event to subscribers. A remote
// failure degrades to a mirror-only write reported through SaveResult.
func (c *Collection[T]) Save(ctx context.Context, items []T) SaveResult {
	if items == nil {
		items = []T{}
	}

	result := SaveResult{Remote: true}
	if c.remote.Available() {
		if err := c.remote.Set(ctx, c.Path, sanitizePayload(items)); err != nil {
			logger.Warn("store: remote write to %s failed, keeping mirror copy: %v", c.Path, err)
			result = SaveResult{Remote: false, Message: localOnlyMessage}
		}
	} else {
		result = SaveResult{Remote: false, Message: localOnlyMessage}
	}

	c.mirror.Save(c.MirrorKey, items)
	c.notifier.Publish(c.Path, items)

	return result
}

// Load returns the current collection, falling back to the mirror when the
// remote store is unavailable or errors. Callers always get a value; an
// empty slice is the worst case.
func (c *Collection[T]) Load(ctx context.Context) []T {
	if c.remote.Available() {
		var items []T
		if err := c.remote.Get(ctx, c.Path, &items); err != nil {
			logger.Warn("store: remote read of %s failed, serving mirror: %v", c.Path, err)
		} else {
			if items == nil {
				items = []T{}
			}
			c.mirror.Save(c.MirrorKey, items)
			return items
		}
	}

	var items []T
	c.mirror.Load(c.MirrorKey, &items)
	if items == nil {
		items = []T{}
	}
	return items
}

// Watch delivers the current collection immediately, then again after every
// in-process save and, when a remote store is configured, whenever a poll of
// the remote path observes a change. The returned func cancels the watch.
func (c *Collection[T]) Watch(ctx context.Context, fn func([]T)) func() {
	w := newWatcher(c.notifier, c.Path, fn, func(items []T) []T {
		if items == nil {
			return []T{}
		}
		return items
	})
	w.deliver(c.Load(ctx))

	if c.remote.Available() && c.pollEvery > 0 {
		w.poll(ctx, c.pollEvery, func(pollCtx context.Context) ([]T, bool) {
			var items []T
			if err := c.remote.Get(pollCtx, c.Path, &items); err != nil {
				return nil, false
			}
			if items == nil {
				items = []T{}
			}
			return items, true
		})
	}

	return w.cancel
}

// watcher tracks the last snapshot a single Watch delivered so that notifier
// events and remote polls do not produce duplicate callbacks. V is the
// snapshot shape: []T for collections, map[string]T for keyed sets.
type watcher[V any] struct {
	mu     sync.Mutex
	fn     func(V)
	last   []byte
	unsub  func()
	stop   chan struct{}
	closed bool
}

func newWatcher[V any](notifier *Notifier, topic string, fn func(V), defaulted func(V) V) *watcher[V] {
	w := &watcher[V]{fn: fn, stop: make(chan struct{})}
	w.unsub = notifier.Subscribe(topic, func(data json.RawMessage) {
		var snapshot V
		if err := json.Unmarshal(data, &snapshot); err != nil {
			logger.Warn("store: dropping malformed %s event: %v", topic, err)
			return
		}
		w.deliver(defaulted(snapshot))
	})
	return w
}

func (w *watcher[V]) deliver(snapshot V) {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return
	}

	w.mu.Lock()
	if w.closed || bytes.Equal(data, w.last) {
		w.mu.Unlock()
		return
	}
	w.last = data
	w.mu.Unlock()

	w.fn(snapshot)
}

func (w *watcher[V]) poll(ctx context.Context, every time.Duration, fetch func(context.Context) (V, bool)) {
	go func() {
		ticker := time.NewTicker(every)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if snapshot, ok := fetch(ctx); ok {
					w.deliver(snapshot)
				}
			case <-w.stop:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

func (w *watcher[V]) cancel() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	w.mu.Unlock()

	w.unsub()
	close(w.stop)
}

// sanitizePayload round-trips a typed value through JSON so Sanitize can walk
// it as a generic tree and strip null leaves before the remote write.
func sanitizePayload(value interface{}) interface{} {
	data, err := json.Marshal(value)
	if err != nil {
		return value
	}
	var tree interface{}
	if err := json.Unmarshal(data, &tree); err != nil {
		return value
	}
	return Sanitize(tree)
}
