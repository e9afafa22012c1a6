package model

import "time"

// Metadata holds the audit columns shared by append-only tables.
type Metadata struct {
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	CreatedBy string    `db:"created_by" json:"created_by"`
}
