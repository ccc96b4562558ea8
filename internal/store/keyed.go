package store

import (
	"context"
	"encoding/json"
	"time"

	"taruvae/pkg/logger"
)

// KeyedSet binds a map-valued database path whose children are addressed
// individually, e.g. orders/{orderId} and users/{userId}. The mirror caches
// the whole set under one key; notifier events carry the whole set too.
type KeyedSet[T any] struct {
	Path      string
	MirrorKey string

	remote    Remote
	mirror    *Mirror
	notifier  *Notifier
	pollEvery time.Duration
}

func NewKeyedSet[T any](remote Remote, mirror *Mirror, notifier *Notifier, path, mirrorKey string, pollEvery time.Duration) *KeyedSet[T] {
	return &KeyedSet[T]{
		Path:      path,
		MirrorKey: mirrorKey,
		remote:    remote,
		mirror:    mirror,
		notifier:  notifier,
		pollEvery: pollEvery,
	}
}

// Put writes one entity at Path/id. The mirror and subscribers receive the
// updated whole set.
func (s *KeyedSet[T]) Put(ctx context.Context, id string, value T) SaveResult {
	result := SaveResult{Remote: true}
	if s.remote.Available() {
		if err := s.remote.Set(ctx, s.Path+"/"+id, sanitizePayload(value)); err != nil {
			logger.Warn("store: remote write to %s/%s failed, keeping mirror copy: %v", s.Path, id, err)
			result = SaveResult{Remote: false, Message: localOnlyMessage}
		}
	} else {
		result = SaveResult{Remote: false, Message: localOnlyMessage}
	}

	all := s.loadMirror()
	all[id] = value
	s.mirror.Save(s.MirrorKey, all)
	s.notifier.Publish(s.Path, all)

	return result
}

// Get fetches one entity, falling back to the mirror. The second return
// value reports whether the id exists anywhere.
func (s *KeyedSet[T]) Get(ctx context.Context, id string) (T, bool) {
	var zero T

	if s.remote.Available() {
		var raw json.RawMessage
		err := s.remote.Get(ctx, s.Path+"/"+id, &raw)
		if err != nil {
			logger.Warn("store: remote read of %s/%s failed, serving mirror: %v", s.Path, id, err)
		} else if len(raw) > 0 && string(raw) != "null" {
			var value T
			if err := json.Unmarshal(raw, &value); err == nil {
				all := s.loadMirror()
				all[id] = value
				s.mirror.Save(s.MirrorKey, all)
				return value, true
			}
		} else {
			return zero, false
		}
	}

	all := s.loadMirror()
	value, ok := all[id]
	if !ok {
		return zero, false
	}
	return value, true
}

// LoadAll returns every entity in the set, keyed by id.
func (s *KeyedSet[T]) LoadAll(ctx context.Context) map[string]T {
	if s.remote.Available() {
		var all map[string]T
		if err := s.remote.Get(ctx, s.Path, &all); err != nil {
			logger.Warn("store: remote read of %s failed, serving mirror: %v", s.Path, err)
		} else {
			if all == nil {
				all = map[string]T{}
			}
			s.mirror.Save(s.MirrorKey, all)
			return all
		}
	}

	return s.loadMirror()
}

// Watch delivers the current set immediately and after every in-process Put;
// remote polling covers changes made by other processes.
func (s *KeyedSet[T]) Watch(ctx context.Context, fn func(map[string]T)) func() {
	w := newWatcher(s.notifier, s.Path, fn, func(all map[string]T) map[string]T {
		if all == nil {
			return map[string]T{}
		}
		return all
	})
	w.deliver(s.LoadAll(ctx))

	if s.remote.Available() && s.pollEvery > 0 {
		w.poll(ctx, s.pollEvery, func(pollCtx context.Context) (map[string]T, bool) {
			var all map[string]T
			if err := s.remote.Get(pollCtx, s.Path, &all); err != nil {
				return nil, false
			}
			if all == nil {
				all = map[string]T{}
			}
			return all, true
		})
	}

	return w.cancel
}

func (s *KeyedSet[T]) loadMirror() map[string]T {
	var all map[string]T
	s.mirror.Load(s.MirrorKey, &all)
	if all == nil {
		all = map[string]T{}
	}
	return all
}
