package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taruvae/internal/store"
)

func TestMirrorRoundTrip(t *testing.T) {
	mirror, err := store.NewMirror(t.TempDir())
	require.NoError(t, err)

	mirror.Save("taruvae-admin-products", []string{"a", "b"})

	var got []string
	assert.True(t, mirror.Load("taruvae-admin-products", &got))
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestMirrorMissingKeyReadsAsEmpty(t *testing.T) {
	mirror, err := store.NewMirror(t.TempDir())
	require.NoError(t, err)

	var got []string
	assert.False(t, mirror.Load("never-written", &got))
	assert.Nil(t, got)
}

func TestMirrorCorruptFileReadsAsEmpty(t *testing.T) {
	dir := t.TempDir()
	mirror, err := store.NewMirror(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "taruvae-orders.json"), []byte("{not json"), 0o644))

	var got map[string]interface{}
	assert.False(t, mirror.Load("taruvae-orders", &got))
}
