package service

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharan022005/medic-query-knowledge-assistant/internal/repository/memory"
	"github.com/sharan022005/medic-query-knowledge-assistant/pkg/blob"
)

type testFile struct {
	name        string
	contentType string
	data        []byte
}

func makeFileHeaders(t *testing.T, files []testFile) []*multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="files"; filename="%s"`, f.name))
		h.Set("Content-Type", f.contentType)
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(f.data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	return form.File["files"]
}

func TestUploadRegistersAndStoresFiles(t *testing.T) {
	workspaces := memory.NewWorkspaceRepository(time.Hour)
	store := blob.NewMemoryStore()
	svc := NewUploadService(workspaces, store, nopLogger{})

	headers := makeFileHeaders(t, []testFile{
		{name: "xray.png", contentType: "image/png", data: []byte("png-bytes")},
		{name: "report.pdf", contentType: "application/pdf", data: []byte("pdf-bytes")},
	})

	res, err := svc.Upload(context.Background(), testSession, headers)
	require.NoError(t, err)
	require.Len(t, res.Files, 2)
	assert.Empty(t, res.Failed)
	assert.Equal(t, "xray.png", res.Files[0].Name)
	assert.Equal(t, "report.pdf", res.Files[1].Name)
	assert.Equal(t, 2, store.Len())

	// Registry holds both; only the image got a preview handle.
	ws := workspaces.GetOrCreate(testSession)
	assets := ws.Registry.List()
	require.Len(t, assets, 2)
	assert.NotNil(t, assets[0].Preview())
	assert.Nil(t, assets[1].Preview())

	// Remote URLs were attached after the store accepted the objects.
	assert.NotEmpty(t, assets[0].RemoteURL())
	assert.NotEmpty(t, assets[1].RemoteURL())
}

func TestUploadPerFileFailureSparesSiblings(t *testing.T) {
	workspaces := memory.NewWorkspaceRepository(time.Hour)
	store := blob.NewMemoryStore()
	store.FailWith = blob.ErrUpstream
	svc := NewUploadService(workspaces, store, nopLogger{})

	headers := makeFileHeaders(t, []testFile{
		{name: "a.png", contentType: "image/png", data: []byte("a")},
		{name: "b.png", contentType: "image/png", data: []byte("b")},
	})

	res, err := svc.Upload(context.Background(), testSession, headers)
	require.NoError(t, err)
	assert.Empty(t, res.Files)
	require.Len(t, res.Failed, 2)
	assert.Equal(t, "a.png", res.Failed[0].Name)

	// Failed uploads stay registered locally: they still have previews.
	ws := workspaces.GetOrCreate(testSession)
	assets := ws.Registry.List()
	require.Len(t, assets, 2)
	for _, asset := range assets {
		assert.Empty(t, asset.RemoteURL())
		assert.NotNil(t, asset.Preview())
	}
}
