package designs

import (
	"sync"

	"github.com/pkg/errors"
)

// Store holds the in-progress design state for the customizer: one layer
// per area, the currently selected area, and the garment being customised.
// The four layers always exist; editing never creates or destroys one.
type Store struct {
	mu           sync.Mutex
	garmentID    *int64
	selectedArea Area
	layers       map[Area]Layer
}

// NewStore returns a Store populated with default layers for all four
// areas, FRONT selected and no garment association.
func NewStore() *Store {
	s := &Store{}
	s.resetLocked()
	return s
}

// SelectArea changes which area is being edited. Stored layer values are
// unaffected.
func (s *Store) SelectArea(area Area) error {
	if !area.Valid() {
		return errors.Errorf("[Store.SelectArea] unknown area %q", area)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedArea = area
	return nil
}

// SelectedArea returns the area currently being edited.
func (s *Store) SelectedArea() Area {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedArea
}

// UpdateLayer merges the given fields into the named area's layer. All
// other areas and all untouched fields keep their prior values.
func (s *Store) UpdateLayer(area Area, update LayerUpdate) error {
	if !area.Valid() {
		return errors.Errorf("[Store.UpdateLayer] unknown area %q", area)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.layers[area] = update.applyTo(s.layers[area])
	return nil
}

// Layer returns the current layer for the given area.
func (s *Store) Layer(area Area) (Layer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.layers[area]
	return l, ok
}

// Layers returns a snapshot of all four layers in render order, suitable
// for serialising into a customization submission.
func (s *Store) Layers() []Layer {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Layer, 0, len(s.layers))
	for _, area := range Areas() {
		out = append(out, s.layers[area])
	}
	return out
}

// SetGarment associates the in-progress design with a catalogue item.
// Passing nil clears the association. Layer content is unrelated.
func (s *Store) SetGarment(id *int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.garmentID = id
}

// GarmentID returns the associated catalogue item, or false when none is
// selected.
func (s *Store) GarmentID() (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.garmentID == nil {
		return 0, false
	}
	return *s.garmentID, true
}

// Reset restores all four layers to their defaults, clears the selected
// garment and returns the cursor to FRONT.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
}

func (s *Store) resetLocked() {
	s.garmentID = nil
	s.selectedArea = AreaFront
	s.layers = make(map[Area]Layer, 4)
	for _, area := range Areas() {
		s.layers[area] = defaultLayer(area)
	}
}
