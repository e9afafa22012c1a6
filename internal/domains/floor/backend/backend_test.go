package backend_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"floorplan/infras/graphql"
	gqlMocks "floorplan/infras/graphql/mocks"
	otelMocks "floorplan/infras/otel/mocks"
	"floorplan/internal/domains/floor/backend"
	"floorplan/internal/domains/floor/model"
	"floorplan/internal/domains/floor/model/dto"
	"floorplan/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func respond(data string) func(context.Context, string, string, map[string]any, any) error {
	return func(_ context.Context, _, _ string, _ map[string]any, out any) error {
		if out == nil {
			return nil
		}

		return json.Unmarshal([]byte(data), out)
	}
}

func setup(t *testing.T) (backend.Backend, *gqlMocks.MockClient) {
	t.Helper()

	ctrl := gomock.NewController(t)
	client := gqlMocks.NewMockClient(ctrl)

	return backend.New(client, otelMocks.NewOtel()), client
}

func TestGetBusiness(t *testing.T) {
	b, client := setup(t)
	ctx := context.Background()

	client.EXPECT().
		Do(gomock.Any(), "GetBusiness", gomock.Any(), map[string]any{"id": "b-1"}, gomock.Any()).
		DoAndReturn(respond(`{"business":{"id":"b-1","name":"Cevicheria","floors":[
			{"id":"f-1","name":"Salon","tables":[{"id":"t-1","name":"M1","coordX":1,"coordY":2,"capacity":4,"shape":"square","color":"#98FF98","status":"Disponible"}]}
		]}}`))

	business, err := b.GetBusiness(ctx, "b-1")

	require.NoError(t, err)
	assert.Equal(t, "Cevicheria", business.Name)
	require.Len(t, business.Floors, 1)
	assert.Equal(t, "b-1", business.Floors[0].BusinessID)
	assert.Equal(t, model.Persisted{ID: "t-1"}, business.Floors[0].Tables[0].Identity)
}

func TestGetBusiness_NotFound(t *testing.T) {
	tests := []struct {
		name  string
		setup func(client *gqlMocks.MockClient)
	}{
		{
			name: "null business",
			setup: func(client *gqlMocks.MockClient) {
				client.EXPECT().Do(gomock.Any(), "GetBusiness", gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(respond(`{"business":null}`))
			},
		},
		{
			name: "null data",
			setup: func(client *gqlMocks.MockClient) {
				client.EXPECT().Do(gomock.Any(), "GetBusiness", gomock.Any(), gomock.Any(), gomock.Any()).
					Return(graphql.ErrEmptyData)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, client := setup(t)
			tt.setup(client)

			_, err := b.GetBusiness(context.Background(), "b-404")

			require.ErrorIs(t, err, backend.ErrBusinessNotFound)
			assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
		})
	}
}

func TestManageFloorTables(t *testing.T) {
	b, client := setup(t)

	input := dto.TableBatchUpdateInput{
		FloorID:          "f-1",
		TablesToCreate:   []dto.CreateTableInput{{FloorID: "f-1", Name: "T2"}, {FloorID: "f-1", Name: "T3"}},
		TablesToUpdate:   []dto.UpdateTableInput{},
		TableIdsToDelete: []string{"t-9"},
	}

	client.EXPECT().
		Do(gomock.Any(), "ManageFloorTables", gomock.Any(), map[string]any{"input": input}, gomock.Any()).
		DoAndReturn(respond(`{"manageFloorTables":{"createdTables":[{"id":"s-1","name":"T2"},{"id":"s-2","name":"T3"}]}}`))

	result, err := b.ManageFloorTables(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, []string{"s-1", "s-2"}, result.CreatedIDs())
}

func TestManageFloorTables_Failure(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "rejected", err: graphql.Errors{{Message: "floor not found"}}},
		{name: "server error", err: &graphql.StatusError{Code: http.StatusServiceUnavailable}},
		{name: "timeout", err: context.DeadlineExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, client := setup(t)

			client.EXPECT().Do(gomock.Any(), "ManageFloorTables", gomock.Any(), gomock.Any(), gomock.Any()).
				Return(tt.err).Times(1)

			_, err := b.ManageFloorTables(context.Background(), dto.TableBatchUpdateInput{FloorID: "f-1"})

			require.Error(t, err)
			assert.Equal(t, http.StatusBadGateway, failure.GetCode(err))
		})
	}
}

func TestCreateFloor(t *testing.T) {
	b, client := setup(t)
	input := dto.CreateFloorInput{Name: "Terraza", BusinessID: "b-1"}

	client.EXPECT().
		Do(gomock.Any(), "CreateFloor", gomock.Any(), map[string]any{"createFloorInput": input}, gomock.Any()).
		DoAndReturn(respond(`{"createFloor":{"id":"f-7","name":"Terraza"}}`))

	floor, err := b.CreateFloor(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, model.Floor{ID: "f-7", Name: "Terraza", BusinessID: "b-1", Tables: []model.Table{}}, floor)
}

func TestCreateFloor_MissingFloor(t *testing.T) {
	b, client := setup(t)

	client.EXPECT().Do(gomock.Any(), "CreateFloor", gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(respond(`{"createFloor":null}`))

	_, err := b.CreateFloor(context.Background(), dto.CreateFloorInput{Name: "Terraza", BusinessID: "b-1"})

	assert.Equal(t, http.StatusBadGateway, failure.GetCode(err))
}

func TestDeleteFloor(t *testing.T) {
	b, client := setup(t)

	client.EXPECT().
		Do(gomock.Any(), "DeleteFloor", gomock.Any(), map[string]any{"deleteFloorInput": dto.DeleteFloorInput{ID: "f-1"}}, nil).
		Return(nil)

	require.NoError(t, b.DeleteFloor(context.Background(), "f-1"))

	client.EXPECT().Do(gomock.Any(), "DeleteFloor", gomock.Any(), gomock.Any(), nil).
		Return(errors.New("connection refused"))

	err := b.DeleteFloor(context.Background(), "f-2")
	assert.Equal(t, http.StatusBadGateway, failure.GetCode(err))
}
