package blob

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorePut(t *testing.T) {
	store := NewMemoryStore()

	url, err := store.Put(context.Background(), "medicquery/1-a.png", []byte("data"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "memory://medicquery/1-a.png", url)

	data, ok := store.Get("medicquery/1-a.png")
	require.True(t, ok)
	assert.Equal(t, []byte("data"), data)
	assert.Equal(t, 1, store.Len())
}

func TestMemoryStoreFailWith(t *testing.T) {
	store := NewMemoryStore()
	store.FailWith = ErrUpstream

	_, err := store.Put(context.Background(), "x", []byte("data"), "image/png")
	assert.ErrorIs(t, err, ErrUpstream)
	assert.Equal(t, 0, store.Len())
}
