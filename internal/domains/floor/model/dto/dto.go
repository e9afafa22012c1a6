package dto

import (
	"encoding/json"

	"floorplan/internal/domains/floor/model"
	"floorplan/shared"
	gDto "floorplan/shared/dto"
)

const (
	SaveStatusSaved         = "saved"
	SaveStatusNothingToSave = "nothing_to_save"
)

type OpenSessionRequest struct {
	BusinessID string `json:"businessId" validate:"notblank"`
}

type SelectFloorRequest struct {
	FloorID string `json:"floorId" validate:"notblank"`
}

type CreateTableRequest struct {
	Name     string `json:"name"     validate:"notblank,max=50"`
	Shape    string `json:"shape"    validate:"required,oneof=square circle rectangle-v rectangle-h wall"`
	Capacity int    `json:"capacity" validate:"gte=0,lte=100"`
	Color    string `json:"color"    validate:"omitempty,hexcolor,len=7"`
}

func (r CreateTableRequest) ToSpec() model.TableSpec {
	return model.TableSpec{
		Name:     r.Name,
		Shape:    model.Shape(r.Shape),
		Capacity: r.Capacity,
		Color:    r.Color,
	}
}

type MoveTableRequest struct {
	CoordX *float64 `json:"coordX" validate:"required,finite"`
	CoordY *float64 `json:"coordY" validate:"required,finite"`
}

type RenameTableRequest struct {
	Name string `json:"name" validate:"notblank,max=50"`
}

type CreateFloorRequest struct {
	Name string `json:"name" validate:"notblank,min=3,max=30"`
}

type TableResponse struct {
	ID       string  `json:"id"`
	IsNew    bool    `json:"isNew"`
	FloorID  string  `json:"floorId"`
	Name     string  `json:"name"`
	CoordX   float64 `json:"coordX"`
	CoordY   float64 `json:"coordY"`
	Capacity int     `json:"capacity"`
	Shape    string  `json:"shape"`
	Color    string  `json:"color"`
	Status   string  `json:"status"`
}

func (t *TableResponse) FromModel(table model.Table) {
	t.ID = table.Key()
	t.IsNew = table.IsNew()
	t.FloorID = table.FloorID
	t.Name = table.Name
	t.CoordX = table.CoordX
	t.CoordY = table.CoordY
	t.Capacity = table.Capacity
	t.Shape = string(table.Shape)
	t.Color = table.Color
	t.Status = table.Status
}

func TablesFromModels(tables []model.Table) []TableResponse {
	res := make([]TableResponse, len(tables))
	for i, table := range tables {
		res[i].FromModel(table)
	}

	return res
}

type FloorResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	BusinessID string `json:"businessId"`
	TableCount int    `json:"tableCount"`
}

func (f *FloorResponse) FromModel(floor model.Floor) {
	f.ID = floor.ID
	f.Name = floor.Name
	f.BusinessID = floor.BusinessID
	f.TableCount = len(floor.Tables)
}

func FloorsFromModels(floors []model.Floor) []FloorResponse {
	res := make([]FloorResponse, len(floors))
	for i, floor := range floors {
		res[i].FromModel(floor)
	}

	return res
}

// SessionResponse is the editor state shown to the client. NeedsFirstFloor
// asks the client to offer floor creation instead of an empty canvas.
type SessionResponse struct {
	ID              string          `json:"id"`
	BusinessID      string          `json:"businessId"`
	BusinessName    string          `json:"businessName"`
	Floors          []FloorResponse `json:"floors"`
	ActiveFloorID   string          `json:"activeFloorId,omitempty"`
	NeedsFirstFloor bool            `json:"needsFirstFloor"`
	Tables          []TableResponse `json:"tables"`
	HasChanges      bool            `json:"hasChanges"`
	Saving          bool            `json:"saving"`
}

type DeltaResponse struct {
	TableBatchUpdateInput
	IsEmpty bool `json:"isEmpty"`
}

type SaveResponse struct {
	Status  string          `json:"status"`
	Created int             `json:"created"`
	Updated int             `json:"updated"`
	Deleted int             `json:"deleted"`
	Session SessionResponse `json:"session"`
}

type ExportResponse struct {
	URL string `json:"url"`
}

// LayoutExport is the document uploaded when a layout is exported.
type LayoutExport struct {
	BusinessID string          `json:"businessId"`
	FloorID    string          `json:"floorId"`
	FloorName  string          `json:"floorName"`
	ExportedAt string          `json:"exportedAt"`
	ExportedBy string          `json:"exportedBy"`
	Tables     []TableResponse `json:"tables"`
}

type SyncLogResponse struct {
	ID           string          `json:"id"`
	FloorID      string          `json:"floorId"`
	BusinessID   string          `json:"businessId"`
	Operation    string          `json:"operation"`
	CreatedCount int             `json:"createdCount"`
	UpdatedCount int             `json:"updatedCount"`
	DeletedCount int             `json:"deletedCount"`
	Payload      json.RawMessage `json:"payload,omitempty"`
	gDto.Metadata
}

func (s *SyncLogResponse) FromModel(log model.SyncLog) {
	s.ID = log.ID
	s.FloorID = log.FloorID
	s.BusinessID = log.BusinessID
	s.Operation = string(log.Operation)
	s.CreatedCount = log.CreatedCount
	s.UpdatedCount = log.UpdatedCount
	s.DeletedCount = log.DeletedCount

	if json.Valid([]byte(log.Payload)) {
		s.Payload = json.RawMessage(log.Payload)
	}

	s.Metadata.FromModel(log.Metadata)
}

type GetSyncLogsResponse struct {
	SyncLogs  []SyncLogResponse `json:"sync_logs"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetSyncLogsResponse) FromModels(models []model.SyncLog, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.SyncLogs = make([]SyncLogResponse, len(models))
	for i, mod := range models {
		r.SyncLogs[i].FromModel(mod)
	}
}
