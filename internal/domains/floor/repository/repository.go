package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"floorplan/infras/otel"
	"floorplan/infras/postgres"
	"floorplan/internal/domains/floor/model"
	gDto "floorplan/shared/dto"
	gRepo "floorplan/shared/repository"
)

type SyncLog interface {
	Insert(ctx context.Context, model model.SyncLog) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.SyncLog, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.SyncLog]
}

func New(db *postgres.Connection, otel otel.Otel) SyncLog {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.SyncLog](model.EntityNameSyncLog, model.TableNameSyncLog, model.FieldID, db, otel),
	}
}
