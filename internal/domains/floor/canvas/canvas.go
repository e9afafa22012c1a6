// Package canvas holds the tables of the floor under edit as two snapshots:
// current, mutated by every user action, and baseline, the last state known
// to match the backend. A Canvas is not safe for concurrent use; callers
// serialise access.
package canvas

import (
	"errors"
	"math"
	"slices"

	"floorplan/internal/domains/floor/model"
	"floorplan/shared/failure"
	"floorplan/shared/validator"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrTableNotFound   = failure.NotFound("table not found")
	ErrCreatedMismatch = errors.New("backend returned a different number of created tables than submitted")
	ErrStaleSnapshot   = errors.New("canvas was reinitialized while the snapshot was in flight")
)

type Option func(*Canvas)

// WithIDGenerator replaces the generator of temporary identifiers.
func WithIDGenerator(fn func() string) Option {
	return func(c *Canvas) {
		c.newID = fn
	}
}

type Canvas struct {
	floorID    string
	baseline   []model.Table
	current    []model.Table
	pending    bool
	generation uint64
	newID      func() string
}

func New(floorID string, tables []model.Table, opts ...Option) *Canvas {
	c := &Canvas{
		newID: func() string { return model.TempIDPrefix + uuid.NewString() },
	}

	for _, opt := range opts {
		opt(c)
	}

	c.Initialize(floorID, tables)

	return c
}

// Initialize resets both snapshots to copies of tables and clears the
// pending flag. Tables repeating an identifier are dropped.
func (c *Canvas) Initialize(floorID string, tables []model.Table) {
	seen := make(map[string]struct{}, len(tables))
	baseline := make([]model.Table, 0, len(tables))

	for _, table := range tables {
		key := table.Key()
		if _, dup := seen[key]; dup || key == "" {
			log.Warn().Str("floorID", floorID).Str("table", key).Msg("dropping table with duplicate or empty identifier")

			continue
		}

		seen[key] = struct{}{}

		if table.FloorID == "" {
			table.FloorID = floorID
		}

		baseline = append(baseline, table)
	}

	c.floorID = floorID
	c.baseline = baseline
	c.current = slices.Clone(baseline)
	c.pending = false
	c.generation++
}

func (c *Canvas) FloorID() string {
	return c.floorID
}

// Current returns a copy of the live snapshot.
func (c *Canvas) Current() []model.Table {
	return slices.Clone(c.current)
}

// Baseline returns a copy of the last synced snapshot.
func (c *Canvas) Baseline() []model.Table {
	return slices.Clone(c.baseline)
}

func (c *Canvas) HasChanges() bool {
	return c.pending
}

func (c *Canvas) index(key string) int {
	return slices.IndexFunc(c.current, func(t model.Table) bool { return t.Key() == key })
}

// Move repositions a table. Unknown keys and non-finite coordinates are ignored.
func (c *Canvas) Move(key string, x, y float64) bool {
	if !finite(x) || !finite(y) {
		return false
	}

	idx := c.index(key)
	if idx < 0 {
		return false
	}

	c.current[idx].CoordX = x
	c.current[idx].CoordY = y
	c.pending = true

	return true
}

// Create validates spec and appends a pending table at the default position.
func (c *Canvas) Create(spec model.TableSpec) (model.Table, error) {
	if err := validator.ValidateStruct(&spec); err != nil {
		return model.Table{}, err
	}

	table := model.Table{
		FloorID:  c.floorID,
		Name:     spec.Name,
		CoordX:   model.DefaultCoordX,
		CoordY:   model.DefaultCoordY,
		Capacity: spec.Capacity,
		Shape:    spec.Shape,
		Color:    spec.Color,
		Status:   model.DefaultStatus,
	}

	switch {
	case spec.Shape.IsWall():
		table.Color = model.WallColor
		table.Capacity = 0
	case spec.Capacity < 1:
		return model.Table{}, failure.InvalidField("capacity", "capacity must be greater than or equal to 1")
	case table.Color == "":
		table.Color = model.DefaultColor
	}

	table.Identity = model.Pending{TempID: c.uniqueID()}

	c.current = append(c.current, table)
	c.pending = true

	return table, nil
}

func (c *Canvas) uniqueID() string {
	for {
		id := c.newID()
		if c.index(id) < 0 {
			return id
		}
	}
}

// Remove deletes a table from the live snapshot.
func (c *Canvas) Remove(key string) bool {
	idx := c.index(key)
	if idx < 0 {
		return false
	}

	c.current = slices.Delete(c.current, idx, idx+1)
	c.pending = true

	return true
}

func (c *Canvas) Rename(key, name string) error {
	if err := validator.ValidateStruct(&struct {
		Name string `json:"name" validate:"notblank,max=50"`
	}{Name: name}); err != nil {
		return err
	}

	idx := c.index(key)
	if idx < 0 {
		return ErrTableNotFound
	}

	c.current[idx].Name = name
	c.pending = true

	return nil
}

// Discard drops every local edit.
func (c *Canvas) Discard() {
	c.current = slices.Clone(c.baseline)
	c.pending = false
	c.generation++
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
