// Package backend wraps the GraphQL operations the floor editor consumes.
package backend

//go:generate go run go.uber.org/mock/mockgen -source=./backend.go -destination=../mocks/backend_mock.go -package=mocks

import (
	"context"
	"errors"

	"floorplan/infras/graphql"
	"floorplan/infras/otel"
	"floorplan/internal/domains/floor/model"
	"floorplan/internal/domains/floor/model/dto"
	"floorplan/shared/constant"
	"floorplan/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	getBusinessQuery = `query GetBusiness($id: ID!) {
  business(id: $id) {
    id
    name
    address
    phone
    currency
    taxRate
    status
    floors {
      id
      name
      tables {
        id
        name
        coordX
        coordY
        capacity
        status
        shape
        color
      }
    }
  }
}`

	manageFloorTablesMutation = `mutation ManageFloorTables($input: TableBatchUpdateInput!) {
  manageFloorTables(input: $input) {
    createdTables {
      id
      name
    }
  }
}`

	createFloorMutation = `mutation CreateFloor($createFloorInput: CreateFloorInput!) {
  createFloor(createFloorInput: $createFloorInput) {
    id
    name
    businessId
  }
}`

	deleteFloorMutation = `mutation DeleteFloor($deleteFloorInput: DeleteFloorInput!) {
  deleteFloor(deleteFloorInput: $deleteFloorInput) {
    id
  }
}`
)

var ErrBusinessNotFound = failure.NotFound("business not found")

type Backend interface {
	GetBusiness(ctx context.Context, id string) (model.Business, error)
	// ManageFloorTables submits one atomic batch. Created tables come back
	// in submission order.
	ManageFloorTables(ctx context.Context, input dto.TableBatchUpdateInput) (dto.TableBatchUpdateResult, error)
	CreateFloor(ctx context.Context, input dto.CreateFloorInput) (model.Floor, error)
	DeleteFloor(ctx context.Context, id string) error
}

type backendImpl struct {
	client graphql.Client
	otel   otel.Otel
}

func New(client graphql.Client, otel otel.Otel) Backend {
	return &backendImpl{
		client: client,
		otel:   otel,
	}
}

func (b *backendImpl) GetBusiness(ctx context.Context, id string) (business model.Business, err error) {
	ctx, scope := b.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".GetBusiness")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var data struct {
		Business *dto.BusinessPayload `json:"business"`
	}

	err = b.client.Do(ctx, "GetBusiness", getBusinessQuery, map[string]any{"id": id}, &data)
	if err != nil {
		if errors.Is(err, graphql.ErrEmptyData) {
			return model.Business{}, ErrBusinessNotFound
		}

		return model.Business{}, upstream(err)
	}

	if data.Business == nil {
		return model.Business{}, ErrBusinessNotFound
	}

	return data.Business.ToModel(), nil
}

func (b *backendImpl) ManageFloorTables(ctx context.Context, input dto.TableBatchUpdateInput) (result dto.TableBatchUpdateResult, err error) {
	ctx, scope := b.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".ManageFloorTables")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		"floor.id":      input.FloorID,
		"tables.create": len(input.TablesToCreate),
		"tables.update": len(input.TablesToUpdate),
		"tables.delete": len(input.TableIdsToDelete),
	})

	var data struct {
		ManageFloorTables *dto.TableBatchUpdateResult `json:"manageFloorTables"`
	}

	err = b.client.Do(ctx, "ManageFloorTables", manageFloorTablesMutation, map[string]any{"input": input}, &data)
	if err != nil {
		return dto.TableBatchUpdateResult{}, upstream(err)
	}

	if data.ManageFloorTables == nil {
		return dto.TableBatchUpdateResult{}, nil
	}

	return *data.ManageFloorTables, nil
}

func (b *backendImpl) CreateFloor(ctx context.Context, input dto.CreateFloorInput) (floor model.Floor, err error) {
	ctx, scope := b.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".CreateFloor")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var data struct {
		CreateFloor *dto.FloorPayload `json:"createFloor"`
	}

	err = b.client.Do(ctx, "CreateFloor", createFloorMutation, map[string]any{"createFloorInput": input}, &data)
	if err != nil {
		return model.Floor{}, upstream(err)
	}

	if data.CreateFloor == nil || data.CreateFloor.ID == "" {
		err = failure.BadGateway(errors.New("backend did not return the created floor"))

		return model.Floor{}, err
	}

	return data.CreateFloor.ToModel(input.BusinessID), nil
}

func (b *backendImpl) DeleteFloor(ctx context.Context, id string) (err error) {
	ctx, scope := b.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".DeleteFloor")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = b.client.Do(ctx, "DeleteFloor", deleteFloorMutation, map[string]any{"deleteFloorInput": dto.DeleteFloorInput{ID: id}}, nil)
	if err != nil && !errors.Is(err, graphql.ErrEmptyData) {
		return upstream(err)
	}

	return nil
}

// upstream turns a transport or GraphQL error into a 502 the caller can retry.
func upstream(err error) error {
	log.Error().Err(err).Msg("backend call failed")

	return failure.BadGateway(err)
}
