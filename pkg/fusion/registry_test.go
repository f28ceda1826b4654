package fusion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterPreviewOnlyForImages(t *testing.T) {
	r := NewRegistry()

	xray := r.Register("xray.png", "image/png", []byte("png-bytes"))
	report := r.Register("report.pdf", "application/pdf", []byte("pdf-bytes"))

	assert.Equal(t, 2, r.Len())
	assert.NotEqual(t, xray.ID, report.ID)

	require.NotNil(t, xray.Preview())
	assert.Nil(t, report.Preview())

	data, err := xray.Preview().Bytes()
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)
}

func TestReleaseRevokesExactlyOnce(t *testing.T) {
	r := NewRegistry()
	asset := r.Register("xray.png", "image/png", []byte("data"))
	handle := asset.Preview()

	require.NoError(t, r.Release(asset.ID))
	assert.True(t, handle.Revoked())
	assert.Equal(t, 0, r.Len())

	// A second release surfaces the double free instead of hiding it.
	assert.ErrorIs(t, r.Release(asset.ID), ErrNotFound)
}

func TestReleaseUnknownAsset(t *testing.T) {
	r := NewRegistry()
	assert.ErrorIs(t, r.Release("nope"), ErrNotFound)
}

func TestClearRevokesAllAndEmptiesRegistry(t *testing.T) {
	r := NewRegistry()
	a := r.Register("a.png", "image/png", []byte("a"))
	b := r.Register("b.jpg", "image/jpeg", []byte("b"))
	r.Register("c.pdf", "application/pdf", []byte("c"))

	require.NoError(t, r.Clear())
	assert.Equal(t, 0, r.Len())
	assert.True(t, a.Preview().Revoked())
	assert.True(t, b.Preview().Revoked())
}

func TestClearReportsRevokeFailuresButStillEmpties(t *testing.T) {
	r := NewRegistry()
	a := r.Register("a.png", "image/png", []byte("a"))
	r.Register("b.png", "image/png", []byte("b"))

	// Revoke one handle behind the registry's back to force a failure.
	require.NoError(t, a.Preview().Revoke())

	err := r.Clear()
	assert.ErrorIs(t, err, ErrHandleRevoked)
	assert.Equal(t, 0, r.Len())
}

func TestDoubleRevokeFails(t *testing.T) {
	r := NewRegistry()
	asset := r.Register("a.png", "image/png", []byte("a"))
	handle := asset.Preview()

	require.NoError(t, handle.Revoke())
	assert.ErrorIs(t, handle.Revoke(), ErrHandleRevoked)

	_, err := handle.Bytes()
	assert.ErrorIs(t, err, ErrHandleRevoked)
}

func TestAttachRemoteURL(t *testing.T) {
	r := NewRegistry()
	asset := r.Register("a.png", "image/png", []byte("a"))

	require.NoError(t, r.AttachRemoteURL(asset.ID, "https://blob/a.png"))
	assert.Equal(t, "https://blob/a.png", asset.RemoteURL())
}

func TestAttachRemoteURLAfterReleaseDoesNotResurrect(t *testing.T) {
	r := NewRegistry()
	asset := r.Register("a.png", "image/png", []byte("a"))

	// The user clears the registry while the upload is still in flight;
	// the late completion must not bring the asset back.
	require.NoError(t, r.Release(asset.ID))
	assert.ErrorIs(t, r.AttachRemoteURL(asset.ID, "https://blob/a.png"), ErrNotFound)
	assert.Equal(t, 0, r.Len())
	_, err := r.Get(asset.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListKeepsRegistrationOrder(t *testing.T) {
	r := NewRegistry()
	a := r.Register("a.png", "image/png", []byte("a"))
	b := r.Register("b.pdf", "application/pdf", []byte("b"))
	c := r.Register("c.png", "image/png", []byte("c"))

	require.NoError(t, r.Release(b.ID))

	list := r.List()
	require.Len(t, list, 2)
	assert.Equal(t, a.ID, list[0].ID)
	assert.Equal(t, c.ID, list[1].ID)
}

func TestRenderable(t *testing.T) {
	r := NewRegistry()

	image := r.Register("a.png", "image/png", []byte("a"))
	assert.True(t, image.Renderable())

	doc := r.Register("b.pdf", "application/pdf", []byte("b"))
	assert.False(t, doc.Renderable())

	// A remote URL makes a non-image renderable too.
	require.NoError(t, r.AttachRemoteURL(doc.ID, "https://blob/b.pdf"))
	assert.True(t, doc.Renderable())

	// A revoked preview with no remote URL is not renderable.
	require.NoError(t, image.Preview().Revoke())
	assert.False(t, image.Renderable())
}
