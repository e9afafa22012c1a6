package postgres

//nolint:revive
import (
	"fmt"
	"net"
	"time"

	"floorplan/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
	postgresConnMaxLifetime   = 30 * time.Minute
)

// Connection splits traffic between a read replica and the primary.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

type endpoint struct {
	name     string
	username string
	password string
	host     string
	port     string
	dbName   string
	sslMode  string
}

func (e endpoint) dsn() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		e.username,
		e.password,
		net.JoinHostPort(e.host, e.port),
		e.dbName,
		e.sslMode,
	)
}

func New(cfg *config.Config) *Connection {
	pg := cfg.DB.Postgres

	write := endpoint{
		name:     "write",
		username: pg.Write.Username,
		password: pg.Write.Password,
		host:     pg.Write.Host,
		port:     pg.Write.Port,
		dbName:   dbName(pg.Prefix, pg.Write.Name),
		sslMode:  pg.Write.SSLMode,
	}

	read := endpoint{
		name:     "read",
		username: pg.Read.Username,
		password: pg.Read.Password,
		host:     pg.Read.Host,
		port:     pg.Read.Port,
		dbName:   dbName(pg.Prefix, pg.Read.Name),
		sslMode:  pg.Read.SSLMode,
	}

	conn := &Connection{
		Write: connect(write, pg.MaxRetry, pg.RetryWaitTime),
	}

	if read.host == "" {
		conn.Read = conn.Write
	} else {
		conn.Read = connect(read, pg.MaxRetry, pg.RetryWaitTime)
	}

	if conn.Write == nil || conn.Read == nil {
		log.Fatal().Msg("Failed to connect to database after all retries")
	}

	return conn
}

// WriteDSN returns the connection string of the primary, used by migrations.
func WriteDSN(cfg *config.Config) string {
	pg := cfg.DB.Postgres

	return endpoint{
		username: pg.Write.Username,
		password: pg.Write.Password,
		host:     pg.Write.Host,
		port:     pg.Write.Port,
		dbName:   dbName(pg.Prefix, pg.Write.Name),
		sslMode:  pg.Write.SSLMode,
	}.dsn()
}

func dbName(prefix, baseName string) string {
	return prefix + baseName
}

func connect(target endpoint, maxRetry, waitTime int) *sqlx.DB {
	for retry := range max(maxRetry, 1) {
		sqlDB, err := sqlx.Connect("postgres", target.dsn())
		if err == nil {
			log.
				Info().
				Str("name", target.name).
				Str("host", target.host).
				Str("port", target.port).
				Str("dbName", target.dbName).
				Msg("Connected to database")

			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)
			sqlDB.SetConnMaxLifetime(postgresConnMaxLifetime)

			return sqlDB
		}

		log.
			Error().
			Err(err).
			Str("name", target.name).
			Str("host", target.host).
			Str("dbName", target.dbName).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	return nil
}
