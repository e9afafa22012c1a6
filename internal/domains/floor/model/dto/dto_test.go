package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"floorplan/internal/domains/floor/model"
	"floorplan/internal/domains/floor/model/dto"
	gModel "floorplan/shared/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusinessPayload_ToModel(t *testing.T) {
	raw := `{
		"id": "b-1", "name": "La Cevicheria", "currency": "PEN", "taxRate": 18,
		"floors": [
			{"id": "f-1", "name": "Salon", "tables": [
				{"id": "t-1", "name": "M1", "coordX": 10.5, "coordY": 20, "capacity": 4, "status": "Disponible", "shape": "circle", "color": "#98FF98"}
			]},
			{"id": "f-2", "name": "Terraza", "tables": []}
		]
	}`

	var payload dto.BusinessPayload
	require.NoError(t, json.Unmarshal([]byte(raw), &payload))

	business := payload.ToModel()

	require.Len(t, business.Floors, 2)
	assert.Equal(t, "b-1", business.Floors[0].BusinessID)
	assert.Equal(t, "Terraza", business.Floors[1].Name)

	table := business.Floors[0].Tables[0]
	assert.Equal(t, model.Persisted{ID: "t-1"}, table.Identity)
	assert.Equal(t, "f-1", table.FloorID)
	assert.Equal(t, model.ShapeCircle, table.Shape)
	assert.InDelta(t, 10.5, table.CoordX, 0)
	assert.False(t, table.IsNew())
}

func TestCreateTableInput_HasNoIdentifier(t *testing.T) {
	encoded, err := json.Marshal(dto.CreateTableInput{FloorID: "f-1", Name: "T2", Capacity: 4, Shape: "circle", Color: "#98FF98"})
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(encoded, &fields))

	assert.NotContains(t, fields, "id")
	assert.ElementsMatch(t, []string{"floorId", "name", "coordX", "coordY", "capacity", "shape", "color"}, keys(fields))
}

func TestTableBatchUpdateResult_CreatedIDs(t *testing.T) {
	result := dto.TableBatchUpdateResult{CreatedTables: []dto.CreatedTable{{ID: "s-1"}, {ID: "s-2"}}}

	assert.Equal(t, []string{"s-1", "s-2"}, result.CreatedIDs())
	assert.Empty(t, dto.TableBatchUpdateResult{}.CreatedIDs())
}

func TestTableResponse_FromModel(t *testing.T) {
	var res dto.TableResponse
	res.FromModel(model.Table{Identity: model.Pending{TempID: "temp-1"}, Name: "T2", Shape: model.ShapeWall})

	assert.Equal(t, "temp-1", res.ID)
	assert.True(t, res.IsNew)
	assert.Equal(t, "wall", res.Shape)
}

func TestGetSyncLogsResponse_FromModels(t *testing.T) {
	logs := []model.SyncLog{
		{ID: "l-1", Operation: model.OperationSyncTables, Payload: `{"floorId":"f-1"}`, Metadata: gModel.Metadata{CreatedAt: time.Now()}},
		{ID: "l-2", Operation: model.OperationDeleteFloor, Payload: "not json"},
	}

	var res dto.GetSyncLogsResponse
	res.FromModels(logs, 21, 10)

	assert.Equal(t, 3, res.TotalPage)
	assert.Equal(t, 21, res.TotalData)
	require.Len(t, res.SyncLogs, 2)
	assert.JSONEq(t, `{"floorId":"f-1"}`, string(res.SyncLogs[0].Payload))
	assert.Nil(t, res.SyncLogs[1].Payload)
	assert.Equal(t, "delete_floor", res.SyncLogs[1].Operation)
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}

	return out
}
