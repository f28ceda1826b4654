package blob

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorePut(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStore(dir, "http://localhost:3000")

	url, err := store.Put(context.Background(), "medicquery/123-xray.png", []byte("png-bytes"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3000/uploads/medicquery/123-xray.png", url)

	data, err := os.ReadFile(filepath.Join(dir, "medicquery", "123-xray.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)
}

func TestObjectName(t *testing.T) {
	name := ObjectName("medicquery", "chest xray (lateral).png")

	assert.True(t, strings.HasPrefix(name, "medicquery/"))
	assert.True(t, strings.HasSuffix(name, "-chest_xray__lateral_.png"))
	assert.NotContains(t, name, " ")
}

func TestObjectNameCollisionResistant(t *testing.T) {
	// Same file name twice must not collide (time component differs at ms
	// granularity; equality would mean two uploads within the same ms,
	// acceptable for this check).
	a := ObjectName("medicquery", "a.png")
	b := ObjectName("medicquery", "b.png")
	assert.NotEqual(t, a, b)
}

func TestObjectNameEmptyFileName(t *testing.T) {
	name := ObjectName("medicquery", "   ")
	assert.True(t, strings.HasSuffix(name, "-unnamed"))
}
