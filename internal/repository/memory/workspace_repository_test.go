package memory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreateReturnsSameWorkspace(t *testing.T) {
	repo := NewWorkspaceRepository(time.Hour)

	first := repo.GetOrCreate("session-a")
	second := repo.GetOrCreate("session-a")
	assert.Same(t, first, second)

	other := repo.GetOrCreate("session-b")
	assert.NotSame(t, first, other)
}

func TestDeleteReleasesWorkspaceResources(t *testing.T) {
	repo := NewWorkspaceRepository(time.Hour)

	ws := repo.GetOrCreate("session-a")
	asset := ws.Registry.Register("xray.png", "image/png", []byte("png"))
	require.NoError(t, ws.Session.SelectImage(asset))

	repo.Delete("session-a")

	// Eviction revokes previews and drops the selection.
	assert.True(t, asset.Preview().Revoked())
	assert.Equal(t, 0, ws.Registry.Len())
	selected, _, _ := ws.Session.Snapshot()
	assert.Nil(t, selected)

	// A fresh workspace comes back for the same id.
	next := repo.GetOrCreate("session-a")
	assert.NotSame(t, ws, next)
}

func TestCatalogSeedIsDeterministic(t *testing.T) {
	a := NewSeededCatalogRepository().AllItems()
	b := NewSeededCatalogRepository().AllItems()

	require.Equal(t, len(a), len(b))
	seen := make(map[string]bool, len(a))
	for i := range a {
		assert.Equal(t, a[i].Id, b[i].Id)
		assert.False(t, seen[a[i].Id], "catalog ids must be unique")
		seen[a[i].Id] = true
	}
}
