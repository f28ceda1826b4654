package fusion

import (
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// PreviewHandle is a local, revocable reference to an image asset's bytes,
// used to render the file before (or without) any remote storage URL. It is
// owned by the Registry and must be revoked exactly once, on release or clear.
type PreviewHandle struct {
	id          string
	contentType string

	mu      sync.Mutex
	data    []byte
	revoked bool
}

func (h *PreviewHandle) ID() string {
	return h.id
}

func (h *PreviewHandle) ContentType() string {
	return h.contentType
}

// Bytes returns the preview content. Fails once the handle is revoked.
func (h *PreviewHandle) Bytes() ([]byte, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.revoked {
		return nil, ErrHandleRevoked
	}
	return h.data, nil
}

// Revoke releases the preview. A second Revoke fails with ErrHandleRevoked
// rather than silently succeeding, to surface double-free bugs.
func (h *PreviewHandle) Revoke() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.revoked {
		return ErrHandleRevoked
	}
	h.revoked = true
	h.data = nil
	return nil
}

func (h *PreviewHandle) Revoked() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.revoked
}

// Asset is a file registered for the session. The registry exclusively owns
// the raw bytes until the asset is released. RemoteURL stays empty until an
// upload completes; a preview handle exists only for image content types.
type Asset struct {
	ID          string
	Name        string
	Size        int64
	ContentType string

	data    []byte
	preview *PreviewHandle

	mu        sync.RWMutex
	remoteURL string
}

func (a *Asset) Bytes() []byte {
	return a.data
}

// Preview returns the asset's preview handle, or nil for non-image assets.
func (a *Asset) Preview() *PreviewHandle {
	return a.preview
}

func (a *Asset) RemoteURL() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.remoteURL
}

func (a *Asset) setRemoteURL(url string) {
	a.mu.Lock()
	a.remoteURL = url
	a.mu.Unlock()
}

// Renderable reports whether the asset can back an image selection: it must
// expose a live preview handle or a remote URL.
func (a *Asset) Renderable() bool {
	if a.preview != nil && !a.preview.Revoked() {
		return true
	}
	return a.RemoteURL() != ""
}

// Registry tracks the session's uploaded assets. Registration is synchronous
// and never touches the network; remote URLs are attached later, when (and
// if) the upload gateway succeeds.
type Registry struct {
	mu     sync.Mutex
	assets map[string]*Asset
	order  []string
}

func NewRegistry() *Registry {
	return &Registry{
		assets: make(map[string]*Asset),
	}
}

// Register stores the file under a fresh id and, for image content types,
// eagerly derives a preview handle.
func (r *Registry) Register(name, contentType string, data []byte) *Asset {
	asset := &Asset{
		ID:          uuid.NewString(),
		Name:        name,
		Size:        int64(len(data)),
		ContentType: contentType,
		data:        data,
	}
	if strings.HasPrefix(contentType, "image/") {
		asset.preview = &PreviewHandle{
			id:          uuid.NewString(),
			contentType: contentType,
			data:        data,
		}
	}

	r.mu.Lock()
	r.assets[asset.ID] = asset
	r.order = append(r.order, asset.ID)
	r.mu.Unlock()

	return asset
}

// Get looks up an asset by id.
func (r *Registry) Get(id string) (*Asset, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	asset, ok := r.assets[id]
	if !ok {
		return nil, ErrNotFound
	}
	return asset, nil
}

// Release revokes the asset's preview handle (if any) and removes it. A
// second release on the same id fails with ErrNotFound.
func (r *Registry) Release(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	asset, ok := r.assets[id]
	if !ok {
		return ErrNotFound
	}
	r.remove(id)
	if asset.preview != nil {
		return asset.preview.Revoke()
	}
	return nil
}

// Clear releases every asset. The registry always ends empty; individual
// revoke failures are joined and reported, never fatal to the caller.
func (r *Registry) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var errs []error
	for _, id := range r.order {
		asset := r.assets[id]
		if asset.preview != nil {
			if err := asset.preview.Revoke(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	r.assets = make(map[string]*Asset)
	r.order = nil
	return errors.Join(errs...)
}

// AttachRemoteURL records the stored object's URL after an upload succeeds.
// If the asset was released while the upload was in flight, the call fails
// with ErrNotFound instead of resurrecting the asset.
func (r *Registry) AttachRemoteURL(id, url string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	asset, ok := r.assets[id]
	if !ok {
		return ErrNotFound
	}
	asset.setRemoteURL(url)
	return nil
}

// List returns the registered assets in registration order.
func (r *Registry) List() []*Asset {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*Asset, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.assets[id])
	}
	return out
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.assets)
}

// caller must hold r.mu
func (r *Registry) remove(id string) {
	delete(r.assets, id)
	for i, other := range r.order {
		if other == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}
