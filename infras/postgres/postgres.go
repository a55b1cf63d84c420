package postgres

import (
	"fmt"
	"net"
	"time"

	"garage/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	maxIdleConns    = 10
	maxOpenConns    = 10
	connMaxLifetime = 30 * time.Minute
)

// Connection holds the read and write database handles. Repositories
// route SELECTs through Read and mutations through Write.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func New(cfg *config.Config) *Connection {
	return &Connection{
		Read:  connect("read", cfg, cfg.DB.Postgres.Read),
		Write: connect("write", cfg, cfg.DB.Postgres.Write),
	}
}

func connect(role string, cfg *config.Config, conn config.DBConn) *sqlx.DB {
	dbName := conn.Name
	if cfg.DB.Postgres.Prefix != "" {
		dbName = cfg.DB.Postgres.Prefix + dbName
	}

	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		conn.Username,
		conn.Password,
		net.JoinHostPort(conn.Host, conn.Port),
		dbName,
		conn.SSLMode,
	)

	wait := time.Duration(cfg.DB.Postgres.RetryWaitTime) * time.Second
	for attempt := 1; attempt <= cfg.DB.Postgres.MaxRetry; attempt++ {
		db, err := sqlx.Connect("postgres", dsn)
		if err == nil {
			db.SetMaxIdleConns(maxIdleConns)
			db.SetMaxOpenConns(maxOpenConns)
			db.SetConnMaxLifetime(connMaxLifetime)

			log.Info().
				Str("role", role).
				Str("host", conn.Host).
				Str("port", conn.Port).
				Str("dbName", dbName).
				Msg("Connected to database")

			return db
		}

		log.Error().
			Err(err).
			Str("role", role).
			Str("host", conn.Host).
			Str("dbName", dbName).
			Int("attempt", attempt).
			Msg("Failed connecting to database, retrying")

		time.Sleep(wait)
	}

	return nil
}
