package store_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taruvae/internal/store"
)

// fakeRemote emulates the realtime database: whole JSON values at paths,
// null for anything never written. Failures can be toggled per direction.
type fakeRemote struct {
	mu        sync.Mutex
	data      map[string]json.RawMessage
	available bool
	failSet   bool
	failGet   bool
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{data: make(map[string]json.RawMessage), available: true}
}

func (f *fakeRemote) Available() bool { return f.available }

func (f *fakeRemote) Set(_ context.Context, path string, value interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.available {
		return store.ErrUnavailable
	}
	if f.failSet {
		return errors.New("remote write refused")
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.data[path] = data
	return nil
}

func (f *fakeRemote) Get(_ context.Context, path string, dest interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.available {
		return store.ErrUnavailable
	}
	if f.failGet {
		return errors.New("remote read refused")
	}
	raw, ok := f.data[path]
	if !ok {
		raw = json.RawMessage("null")
	}
	return json.Unmarshal(raw, dest)
}

type item struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Notes *string `json:"notes"`
}

func newCollection(t *testing.T, remote store.Remote) *store.Collection[item] {
	t.Helper()
	mirror, err := store.NewMirror(t.TempDir())
	require.NoError(t, err)
	return store.NewCollection[item](remote, mirror, store.NewNotifier(), "products", "taruvae-admin-products", 0)
}

func TestCollectionRoundTrip(t *testing.T) {
	remote := newFakeRemote()
	c := newCollection(t, remote)

	saved := []item{{ID: 1, Name: "Ashwagandha"}, {ID: 2, Name: "Neem"}}
	result := c.Save(context.Background(), saved)

	assert.True(t, result.Remote)
	assert.Empty(t, result.Message)
	assert.Equal(t, saved, c.Load(context.Background()))
}

func TestCollectionOverwriteDropsOmittedEntries(t *testing.T) {
	c := newCollection(t, newFakeRemote())
	ctx := context.Background()

	c.Save(ctx, []item{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}})
	c.Save(ctx, []item{{ID: 2, Name: "B"}})

	// Whole-collection overwrite: id 1 is gone, nothing merged it back.
	assert.Equal(t, []item{{ID: 2, Name: "B"}}, c.Load(ctx))
}

func TestCollectionLoadFallsBackToMirror(t *testing.T) {
	remote := newFakeRemote()
	c := newCollection(t, remote)
	ctx := context.Background()

	saved := []item{{ID: 7, Name: "Brahmi"}}
	c.Save(ctx, saved)

	remote.failGet = true
	assert.Equal(t, saved, c.Load(ctx))
}

func TestCollectionUnavailableRoundTripsViaMirror(t *testing.T) {
	remote := newFakeRemote()
	remote.available = false
	c := newCollection(t, remote)
	ctx := context.Background()

	saved := []item{{ID: 3, Name: "Shatavari"}}
	result := c.Save(ctx, saved)

	assert.False(t, result.Remote)
	assert.NotEmpty(t, result.Message)
	assert.Equal(t, saved, c.Load(ctx))
}

func TestCollectionFailedWriteStillServedLocally(t *testing.T) {
	remote := newFakeRemote()
	remote.failSet = true
	remote.failGet = true
	c := newCollection(t, remote)
	ctx := context.Background()

	saved := []item{{ID: 4, Name: "Moringa"}}
	result := c.Save(ctx, saved)

	assert.False(t, result.Remote)
	assert.Equal(t, saved, c.Load(ctx))
}

func TestCollectionSanitizesRemotePayload(t *testing.T) {
	remote := newFakeRemote()
	c := newCollection(t, remote)

	c.Save(context.Background(), []item{{ID: 5, Name: "Giloy", Notes: nil}})

	var tree []map[string]interface{}
	require.NoError(t, json.Unmarshal(remote.data["products"], &tree))
	require.Len(t, tree, 1)
	assert.NotContains(t, tree[0], "notes")
}

func TestCollectionLoadIsNeverNil(t *testing.T) {
	c := newCollection(t, newFakeRemote())
	assert.Equal(t, []item{}, c.Load(context.Background()))
}

func TestCollectionWatch(t *testing.T) {
	c := newCollection(t, newFakeRemote())
	ctx := context.Background()

	initial := []item{{ID: 1, Name: "A"}}
	c.Save(ctx, initial)

	var mu sync.Mutex
	var seen [][]item
	cancel := c.Watch(ctx, func(items []item) {
		mu.Lock()
		seen = append(seen, items)
		mu.Unlock()
	})

	mu.Lock()
	require.Len(t, seen, 1)
	assert.Equal(t, initial, seen[0])
	mu.Unlock()

	updated := []item{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}
	c.Save(ctx, updated)

	mu.Lock()
	require.Len(t, seen, 2)
	assert.Equal(t, updated, seen[1])
	mu.Unlock()

	cancel()
	c.Save(ctx, []item{})

	mu.Lock()
	assert.Len(t, seen, 2)
	mu.Unlock()
}

func TestKeyedSetPutGet(t *testing.T) {
	remote := newFakeRemote()
	mirror, err := store.NewMirror(t.TempDir())
	require.NoError(t, err)
	s := store.NewKeyedSet[item](remote, mirror, store.NewNotifier(), "orders", "taruvae-orders", 0)
	ctx := context.Background()

	result := s.Put(ctx, "ORD-1", item{ID: 1, Name: "first"})
	assert.True(t, result.Remote)

	got, ok := s.Get(ctx, "ORD-1")
	require.True(t, ok)
	assert.Equal(t, item{ID: 1, Name: "first"}, got)

	_, ok = s.Get(ctx, "ORD-missing")
	assert.False(t, ok)
}

func TestKeyedSetFallsBackToMirror(t *testing.T) {
	remote := newFakeRemote()
	mirror, err := store.NewMirror(t.TempDir())
	require.NoError(t, err)
	s := store.NewKeyedSet[item](remote, mirror, store.NewNotifier(), "orders", "taruvae-orders", 0)
	ctx := context.Background()

	s.Put(ctx, "ORD-2", item{ID: 2, Name: "second"})

	remote.failGet = true
	got, ok := s.Get(ctx, "ORD-2")
	require.True(t, ok)
	assert.Equal(t, item{ID: 2, Name: "second"}, got)

	all := s.LoadAll(ctx)
	assert.Len(t, all, 1)
}
