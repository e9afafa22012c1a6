package model

import (
	"slices"
)

type Shape string

const (
	ShapeSquare     Shape = "square"
	ShapeCircle     Shape = "circle"
	ShapeRectangleV Shape = "rectangle-v"
	ShapeRectangleH Shape = "rectangle-h"
	ShapeWall       Shape = "wall"
)

// Shapes lists every shape a table may take.
var Shapes = []Shape{ShapeSquare, ShapeCircle, ShapeRectangleV, ShapeRectangleH, ShapeWall}

func (s Shape) Valid() bool {
	return slices.Contains(Shapes, s)
}

// IsWall reports whether capacity and color are meaningless for the shape.
func (s Shape) IsWall() bool {
	return s == ShapeWall
}

const (
	DefaultCoordX   = 50.0
	DefaultCoordY   = 50.0
	DefaultColor    = "#98FF98"
	WallColor       = "#555555"
	DefaultCapacity = 4
	DefaultStatus   = "Disponible"
	TempIDPrefix    = "temp-"
)

// Identity is either Persisted or Pending. Only persisted identifiers are
// ever sent to the backend.
type Identity interface {
	Key() string
	isIdentity()
}

// Persisted identifies a table the backend knows about.
type Persisted struct {
	ID string
}

func (p Persisted) Key() string { return p.ID }

func (Persisted) isIdentity() {}

// Pending identifies a table created locally and not yet saved.
type Pending struct {
	TempID string
}

func (p Pending) Key() string { return p.TempID }

func (Pending) isIdentity() {}

// Table is a placement on a floor.
type Table struct {
	Identity Identity
	FloorID  string
	Name     string
	CoordX   float64
	CoordY   float64
	Capacity int
	Shape    Shape
	Color    string
	Status   string
}

func (t Table) Key() string {
	if t.Identity == nil {
		return ""
	}

	return t.Identity.Key()
}

// IsNew reports whether the table has never been saved.
func (t Table) IsNew() bool {
	_, ok := t.Identity.(Pending)

	return ok
}

// PersistedID returns the server identifier, ok=false for pending tables.
func (t Table) PersistedID() (string, bool) {
	p, ok := t.Identity.(Persisted)

	return p.ID, ok
}

type Floor struct {
	ID         string
	Name       string
	BusinessID string
	Tables     []Table
}

type Business struct {
	ID       string
	Name     string
	Address  string
	Phone    string
	Currency string
	TaxRate  float64
	Status   string
	Floors   []Floor
}

// TableSpec is the user input for a new table.
type TableSpec struct {
	Name     string `json:"name"     validate:"notblank,max=50"`
	Shape    Shape  `json:"shape"    validate:"required,oneof=square circle rectangle-v rectangle-h wall"`
	Capacity int    `json:"capacity" validate:"gte=0,lte=100"`
	Color    string `json:"color"    validate:"omitempty,hexcolor,len=7"`
}
