package dto

import (
	"floorplan/internal/domains/floor/model"
)

// TableBatchUpdateInput is the variable of the manageFloorTables mutation.
type TableBatchUpdateInput struct {
	FloorID          string             `json:"floorId"`
	TablesToCreate   []CreateTableInput `json:"tablesToCreate"`
	TablesToUpdate   []UpdateTableInput `json:"tablesToUpdate"`
	TableIdsToDelete []string           `json:"tableIdsToDelete"`
}

// CreateTableInput has no identifier: the backend assigns one.
type CreateTableInput struct {
	FloorID  string  `json:"floorId"`
	Name     string  `json:"name"`
	CoordX   float64 `json:"coordX"`
	CoordY   float64 `json:"coordY"`
	Capacity int     `json:"capacity"`
	Shape    string  `json:"shape"`
	Color    string  `json:"color"`
}

type UpdateTableInput struct {
	ID     string  `json:"id"`
	CoordX float64 `json:"coordX"`
	CoordY float64 `json:"coordY"`
	Name   string  `json:"name"`
}

// TableBatchUpdateResult lists the created rows in submission order.
type TableBatchUpdateResult struct {
	CreatedTables []CreatedTable `json:"createdTables"`
}

type CreatedTable struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CreatedIDs returns the server identifiers in submission order.
func (r TableBatchUpdateResult) CreatedIDs() []string {
	ids := make([]string, len(r.CreatedTables))
	for i, created := range r.CreatedTables {
		ids[i] = created.ID
	}

	return ids
}

type CreateFloorInput struct {
	Name       string `json:"name"`
	BusinessID string `json:"businessId"`
}

type DeleteFloorInput struct {
	ID string `json:"id"`
}

type TablePayload struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	CoordX   float64 `json:"coordX"`
	CoordY   float64 `json:"coordY"`
	Capacity int     `json:"capacity"`
	Status   string  `json:"status"`
	Shape    string  `json:"shape"`
	Color    string  `json:"color"`
}

type FloorPayload struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	BusinessID string         `json:"businessId,omitempty"`
	Tables     []TablePayload `json:"tables"`
}

type BusinessPayload struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Address  string         `json:"address"`
	Phone    string         `json:"phone"`
	Currency string         `json:"currency"`
	TaxRate  float64        `json:"taxRate"`
	Status   string         `json:"status"`
	Floors   []FloorPayload `json:"floors"`
}

func (t TablePayload) ToModel(floorID string) model.Table {
	return model.Table{
		Identity: model.Persisted{ID: t.ID},
		FloorID:  floorID,
		Name:     t.Name,
		CoordX:   t.CoordX,
		CoordY:   t.CoordY,
		Capacity: t.Capacity,
		Shape:    model.Shape(t.Shape),
		Color:    t.Color,
		Status:   t.Status,
	}
}

func (f FloorPayload) ToModel(businessID string) model.Floor {
	if f.BusinessID != "" {
		businessID = f.BusinessID
	}

	floor := model.Floor{
		ID:         f.ID,
		Name:       f.Name,
		BusinessID: businessID,
		Tables:     make([]model.Table, len(f.Tables)),
	}

	for i, table := range f.Tables {
		floor.Tables[i] = table.ToModel(f.ID)
	}

	return floor
}

func (b BusinessPayload) ToModel() model.Business {
	business := model.Business{
		ID:       b.ID,
		Name:     b.Name,
		Address:  b.Address,
		Phone:    b.Phone,
		Currency: b.Currency,
		TaxRate:  b.TaxRate,
		Status:   b.Status,
		Floors:   make([]model.Floor, len(b.Floors)),
	}

	for i, floor := range b.Floors {
		business.Floors[i] = floor.ToModel(b.ID)
	}

	return business
}

func (t *TablePayload) FromModel(table model.Table) {
	t.ID, _ = table.PersistedID()
	t.Name = table.Name
	t.CoordX = table.CoordX
	t.CoordY = table.CoordY
	t.Capacity = table.Capacity
	t.Status = table.Status
	t.Shape = string(table.Shape)
	t.Color = table.Color
}

// FromModel keeps persisted tables only.
func (f *FloorPayload) FromModel(floor model.Floor) {
	f.ID = floor.ID
	f.Name = floor.Name
	f.BusinessID = floor.BusinessID
	f.Tables = make([]TablePayload, 0, len(floor.Tables))

	for _, table := range floor.Tables {
		if table.IsNew() {
			continue
		}

		var payload TablePayload
		payload.FromModel(table)
		f.Tables = append(f.Tables, payload)
	}
}

func (b *BusinessPayload) FromModel(business model.Business) {
	b.ID = business.ID
	b.Name = business.Name
	b.Address = business.Address
	b.Phone = business.Phone
	b.Currency = business.Currency
	b.TaxRate = business.TaxRate
	b.Status = business.Status
	b.Floors = make([]FloorPayload, len(business.Floors))

	for i, floor := range business.Floors {
		b.Floors[i].FromModel(floor)
	}
}
