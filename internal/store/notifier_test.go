package store_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"taruvae/internal/store"
)

func TestNotifierDeliversToAllSubscribers(t *testing.T) {
	notifier := store.NewNotifier()

	var first, second []json.RawMessage
	notifier.Subscribe("products", func(data json.RawMessage) { first = append(first, data) })
	notifier.Subscribe("products", func(data json.RawMessage) { second = append(second, data) })

	notifier.Publish("products", []int{1, 2, 3})

	assert.Len(t, first, 1)
	assert.Len(t, second, 1)
	assert.JSONEq(t, "[1,2,3]", string(first[0]))
}

func TestNotifierScopesByCollection(t *testing.T) {
	notifier := store.NewNotifier()

	var got int
	notifier.Subscribe("blogs", func(json.RawMessage) { got++ })

	notifier.Publish("products", "ignored")
	notifier.Publish("blogs", "seen")

	assert.Equal(t, 1, got)
}

func TestNotifierUnsubscribeStopsDelivery(t *testing.T) {
	notifier := store.NewNotifier()

	var got int
	unsubscribe := notifier.Subscribe("orders", func(json.RawMessage) { got++ })

	notifier.Publish("orders", 1)
	unsubscribe()
	notifier.Publish("orders", 2)

	assert.Equal(t, 1, got)
}
