package fusion

import "errors"

// Domain errors surfaced by the asset registry and the fusion session.
var (
	// ErrNotFound indicates a reference to an asset that is not (or no
	// longer) registered. A release racing an in-flight upload lands here.
	ErrNotFound = errors.New("asset not found")

	// ErrAssetNotRenderable indicates an attempt to select an asset that
	// exposes neither a preview handle nor a remote URL.
	ErrAssetNotRenderable = errors.New("asset is not renderable")

	// ErrNoImageSelected indicates an annotation was submitted while no
	// image is selected.
	ErrNoImageSelected = errors.New("no image selected")

	// ErrHandleRevoked indicates a preview handle was revoked twice.
	// Surfacing this instead of ignoring it is deliberate: a double
	// revoke means an ownership bug somewhere upstream.
	ErrHandleRevoked = errors.New("preview handle already revoked")
)
