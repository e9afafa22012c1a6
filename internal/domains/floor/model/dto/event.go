package dto

import (
	"time"
)

const (
	EventTablesSynced = "floor.tables.synced"
	EventFloorCreated = "floor.created"
	EventFloorDeleted = "floor.deleted"
)

// FloorEvent is published on the floor events topic, keyed by floor id.
type FloorEvent struct {
	Type       string    `json:"type"`
	BusinessID string    `json:"businessId"`
	FloorID    string    `json:"floorId"`
	FloorName  string    `json:"floorName,omitempty"`
	Created    int       `json:"created,omitempty"`
	Updated    int       `json:"updated,omitempty"`
	Deleted    int       `json:"deleted,omitempty"`
	CreatedIDs []string  `json:"createdIds,omitempty"`
	Actor      string    `json:"actor"`
	OccurredAt time.Time `json:"occurredAt"`
}
