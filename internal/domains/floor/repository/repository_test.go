package repository_test

import (
	"context"
	"testing"
	"time"

	"floorplan/infras/otel/mocks"
	"floorplan/infras/postgres"
	"floorplan/internal/domains/floor/model"
	"floorplan/internal/domains/floor/repository"
	gDto "floorplan/shared/dto"
	gModel "floorplan/shared/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (sqlmock.Sqlmock, repository.SyncLog) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	conn := sqlx.NewDb(db, "postgres")

	return mock, repository.New(&postgres.Connection{Read: conn, Write: conn}, mocks.NewOtel())
}

var columns = []string{
	"id", "floor_id", "business_id", "operation",
	"created_count", "updated_count", "deleted_count", "payload",
	"created_at", "created_by",
}

func TestSyncLog_Insert(t *testing.T) {
	mock, repo := setup(t)

	now := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	entry := model.SyncLog{
		ID:           "log-1",
		FloorID:      "f-1",
		BusinessID:   "biz-1",
		Operation:    model.OperationSyncTables,
		CreatedCount: 1,
		UpdatedCount: 2,
		Payload:      `{"create":[],"update":[],"delete":[]}`,
		Metadata:     gModel.Metadata{CreatedAt: now, CreatedBy: "user-1"},
	}

	mock.ExpectExec(`INSERT INTO floor_sync_logs \(id, floor_id, business_id, operation, created_count, updated_count, deleted_count, payload, created_at, created_by\)`).
		WithArgs("log-1", "f-1", "biz-1", "sync_tables", 1, 2, 0, entry.Payload, now, "user-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Insert(context.Background(), entry))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSyncLog_GetAllAndCount(t *testing.T) {
	mock, repo := setup(t)

	now := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldFloorID, Operator: gDto.FilterOperatorEq, Value: "f-1", Table: model.TableNameSyncLog},
			gDto.Filter{Field: model.FieldOperation, Operator: gDto.FilterOperatorEq, Value: string(model.OperationSyncTables), Table: model.TableNameSyncLog},
		},
	}

	mock.ExpectPrepare(`SELECT COUNT\(floor_sync_logs.id\) FROM floor_sync_logs`).
		ExpectQuery().
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	count, err := repo.Count(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	mock.ExpectPrepare(`SELECT .* FROM floor_sync_logs .*ORDER BY created_at DESC LIMIT`).
		ExpectQuery().
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("log-1", "f-1", "biz-1", "sync_tables", 1, 0, 0, `{}`, now, "user-1"))

	params := gDto.QueryParams{Page: 1, Limit: 10, SortBy: model.FieldCreatedAt, SortDir: gDto.SortDirDesc}

	logs, err := repo.GetAll(context.Background(), params, filter)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, model.OperationSyncTables, logs[0].Operation)
	assert.Equal(t, "user-1", logs[0].CreatedBy)

	require.NoError(t, mock.ExpectationsWereMet())
}
