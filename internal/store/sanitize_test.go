package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"taruvae/internal/store"
)

func TestSanitizeStripsNilFields(t *testing.T) {
	in := map[string]interface{}{
		"name":  "Tulsi Drops",
		"size":  nil,
		"price": float64(299),
		"meta": map[string]interface{}{
			"origin": nil,
			"tags":   []interface{}{"herbal", nil, "organic"},
		},
	}

	out := store.Sanitize(in).(map[string]interface{})

	assert.Equal(t, "Tulsi Drops", out["name"])
	assert.Equal(t, float64(299), out["price"])
	assert.NotContains(t, out, "size")

	meta := out["meta"].(map[string]interface{})
	assert.NotContains(t, meta, "origin")
	assert.Equal(t, []interface{}{"herbal", "organic"}, meta["tags"])
}

func TestSanitizeIsIdempotent(t *testing.T) {
	in := map[string]interface{}{
		"a": nil,
		"b": []interface{}{nil, map[string]interface{}{"c": nil, "d": "x"}},
	}

	once := store.Sanitize(in)
	twice := store.Sanitize(once)

	assert.Equal(t, once, twice)
}

func TestSanitizePreservesScalars(t *testing.T) {
	assert.Equal(t, "plain", store.Sanitize("plain"))
	assert.Equal(t, float64(42), store.Sanitize(float64(42)))
	assert.Equal(t, true, store.Sanitize(true))
}
