// Package selector tracks the floors of one business and which of them is
// under edit. Selecting a floor is the only way the canvas is reinitialized.
package selector

import (
	"slices"

	"floorplan/internal/domains/floor/canvas"
	"floorplan/internal/domains/floor/model"
	"floorplan/shared/failure"
)

var ErrFloorNotFound = failure.NotFound("floor not found")

type Selector struct {
	business model.Business
	floors   []model.Floor
	active   string
	canvas   *canvas.Canvas
}

// New loads the floors of business and selects the first one. A business
// without floors starts with an empty canvas.
func New(business model.Business, opts ...canvas.Option) *Selector {
	s := &Selector{
		business: business,
		floors:   slices.Clone(business.Floors),
	}

	s.business.Floors = nil
	s.canvas = canvas.New("", nil, opts...)

	if len(s.floors) > 0 {
		s.load(s.floors[0])
	}

	return s
}

func (s *Selector) BusinessID() string {
	return s.business.ID
}

func (s *Selector) BusinessName() string {
	return s.business.Name
}

// ListFloors returns the floors in the order the backend supplied them.
func (s *Selector) ListFloors() []model.Floor {
	return slices.Clone(s.floors)
}

// Active returns the selected floor, ok=false when there is none.
func (s *Selector) Active() (model.Floor, bool) {
	idx := s.index(s.active)
	if idx < 0 {
		return model.Floor{}, false
	}

	return s.floors[idx], true
}

// NeedsFirstFloor reports the empty state where the user must create a floor
// before placing tables.
func (s *Selector) NeedsFirstFloor() bool {
	return len(s.floors) == 0
}

func (s *Selector) Canvas() *canvas.Canvas {
	return s.canvas
}

// SelectFloor makes id the active floor and reinitializes the canvas from
// its persisted tables. Reselecting the active floor changes nothing and
// reports false.
func (s *Selector) SelectFloor(id string) (bool, error) {
	idx := s.index(id)
	if idx < 0 {
		return false, ErrFloorNotFound
	}

	if id == s.active {
		return false, nil
	}

	s.load(s.floors[idx])

	return true, nil
}

// AddFloor appends a newly created floor. It becomes active when no floor was.
func (s *Selector) AddFloor(floor model.Floor) {
	if floor.BusinessID == "" {
		floor.BusinessID = s.business.ID
	}

	s.floors = append(s.floors, floor)

	if s.active == "" {
		s.load(floor)
	}
}

// RemoveFloor forgets a deleted floor. Removing the active floor selects the
// first remaining one, or empties the canvas.
func (s *Selector) RemoveFloor(id string) error {
	idx := s.index(id)
	if idx < 0 {
		return ErrFloorNotFound
	}

	s.floors = slices.Delete(s.floors, idx, idx+1)

	if id != s.active {
		return nil
	}

	if len(s.floors) == 0 {
		s.active = ""
		s.canvas.Initialize("", nil)

		return nil
	}

	s.load(s.floors[0])

	return nil
}

// SetTables records the persisted tables of a floor after a save. The canvas
// is left alone.
func (s *Selector) SetTables(floorID string, tables []model.Table) {
	idx := s.index(floorID)
	if idx < 0 {
		return
	}

	s.floors[idx].Tables = slices.Clone(tables)
}

func (s *Selector) load(floor model.Floor) {
	s.active = floor.ID
	s.canvas.Initialize(floor.ID, floor.Tables)
}

func (s *Selector) index(id string) int {
	if id == "" {
		return -1
	}

	return slices.IndexFunc(s.floors, func(f model.Floor) bool { return f.ID == id })
}
