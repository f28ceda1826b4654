package fusion

import "sync"

// Annotation is a point on the selected image, in pixel coordinates relative
// to the image's rendered bounding box at click time.
type Annotation struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Session binds one selected image, its annotations, and free-text notes into
// a single working context. All transitions are applied under one mutex so an
// annotation can never be appended against a since-replaced selection.
//
// The state machine has two states: no selection (selected == nil, no
// annotations) and a selection with its annotation list. Notes are
// independent of the selection.
type Session struct {
	mu          sync.Mutex
	selected    *Asset
	annotations []Annotation
	notes       string
}

func NewSession() *Session {
	return &Session{}
}

// SelectImage moves the session to the given asset and resets annotations,
// regardless of the previous state. Re-selecting the current image also
// resets annotations. Fails with ErrAssetNotRenderable unless the asset
// exposes a preview or a remote URL.
func (s *Session) SelectImage(asset *Asset) error {
	if asset == nil || !asset.Renderable() {
		return ErrAssetNotRenderable
	}
	s.mu.Lock()
	s.selected = asset
	s.annotations = nil
	s.mu.Unlock()
	return nil
}

// ClearSelection returns to the no-selection state, discarding annotations.
func (s *Session) ClearSelection() {
	s.mu.Lock()
	s.selected = nil
	s.annotations = nil
	s.mu.Unlock()
}

// AddAnnotation appends a point in arrival order. Fails with
// ErrNoImageSelected when no image is selected; the UI is expected to gate
// this, the session still rejects it.
func (s *Session) AddAnnotation(point Annotation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return ErrNoImageSelected
	}
	s.annotations = append(s.annotations, point)
	return nil
}

// SetNotes replaces the notes text. Valid in any state.
func (s *Session) SetNotes(text string) {
	s.mu.Lock()
	s.notes = text
	s.mu.Unlock()
}

// Snapshot returns a consistent view of the session state. The returned
// annotation slice is a copy.
func (s *Session) Snapshot() (selected *Asset, annotations []Annotation, notes string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	annotations = make([]Annotation, len(s.annotations))
	copy(annotations, s.annotations)
	return s.selected, annotations, s.notes
}
