package helper

import (
	"testing"

	"floorplan/config"

	"github.com/stretchr/testify/assert"
)

func TestRunner_UnknownAction(t *testing.T) {
	err := Runner(&config.Config{}, "sideways")

	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestConnectionString(t *testing.T) {
	cfg := &config.Config{}
	cfg.DB.Postgres.Prefix = "dev_"
	cfg.DB.Postgres.Write.Username = "floor"
	cfg.DB.Postgres.Write.Password = "secret"
	cfg.DB.Postgres.Write.Host = "db"
	cfg.DB.Postgres.Write.Port = "5432"
	cfg.DB.Postgres.Write.Name = "floorplan"
	cfg.DB.Postgres.Write.SSLMode = "disable"

	assert.Equal(t, "postgres://floor:secret@db:5432/dev_floorplan?sslmode=disable", connectionString(cfg))

	cfg.DB.Postgres.MigrationTable = "floor_migrations"

	assert.Equal(t,
		"postgres://floor:secret@db:5432/dev_floorplan?sslmode=disable&x-migrations-table=floor_migrations",
		connectionString(cfg))
}
