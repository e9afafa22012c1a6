package model

import (
	"floorplan/shared/model"
)

const (
	EntityNameSyncLog = "sync_log"
	TableNameSyncLog  = "floor_sync_logs"

	FieldID        = "id"
	FieldFloorID   = "floor_id"
	FieldOperation = "operation"
	FieldCreatedAt = "created_at"
)

type Operation string

const (
	OperationSyncTables  Operation = "sync_tables"
	OperationCreateFloor Operation = "create_floor"
	OperationDeleteFloor Operation = "delete_floor"
)

// SyncLog records one change the service pushed to the backend.
type SyncLog struct {
	ID           string    `db:"id"`
	FloorID      string    `db:"floor_id"`
	BusinessID   string    `db:"business_id"`
	Operation    Operation `db:"operation"`
	CreatedCount int       `db:"created_count"`
	UpdatedCount int       `db:"updated_count"`
	DeletedCount int       `db:"deleted_count"`
	Payload      string    `db:"payload"`
	model.Metadata
}
