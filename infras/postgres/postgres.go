package postgres

//nolint:revive
import (
	"context"
	"errors"
	"net"
	"net/url"
	"time"

	"hotel/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	driverName     = "postgres"
	connectTimeout = 10 * time.Second
)

// Connection is the pooled handle pair shared by every repository. Reads go
// to the replica, writes to the primary; both may point at the same server.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func New(cfg *config.Config) *Connection {
	conn := &Connection{
		Read:  connect(cfg, "read", cfg.DB.Postgres.Read),
		Write: connect(cfg, "write", cfg.DB.Postgres.Write),
	}

	if conn.Read == nil || conn.Write == nil {
		log.Fatal().Int("maxRetry", cfg.DB.Postgres.MaxRetry).Msg("Could not connect to database")
	}

	return conn
}

// Close releases both pools.
func (c *Connection) Close() error {
	var errs []error

	for _, db := range []*sqlx.DB{c.Read, c.Write} {
		if db == nil {
			continue
		}

		if err := db.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// DSN builds the connection URL of node. The optional DB_POSTGRES_PREFIX is
// prepended to the database name so several environments can share a server.
func DSN(cfg *config.Config, node config.PostgresNode, params url.Values) string {
	query := url.Values{}
	for key, values := range params {
		query[key] = values
	}

	if node.SSLMode != "" {
		query.Set("sslmode", node.SSLMode)
	}

	dsn := url.URL{
		Scheme:   driverName,
		User:     url.UserPassword(node.Username, node.Password),
		Host:     net.JoinHostPort(node.Host, node.Port),
		Path:     cfg.DB.Postgres.Prefix + node.Name,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

func connect(cfg *config.Config, name string, node config.PostgresNode) *sqlx.DB {
	descriptor := DSN(cfg, node, nil)
	dbName := cfg.DB.Postgres.Prefix + node.Name
	pool := cfg.DB.Postgres.Pool
	maxRetry := max(cfg.DB.Postgres.MaxRetry, 1)

	for retry := range maxRetry {
		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		sqlDB, err := sqlx.ConnectContext(ctx, driverName, descriptor)
		cancel()

		if err == nil {
			sqlDB.SetMaxOpenConns(pool.MaxOpen)
			sqlDB.SetMaxIdleConns(pool.MaxIdle)
			sqlDB.SetConnMaxLifetime(time.Duration(pool.MaxLifetimeMinutes) * time.Minute)

			log.Info().
				Str("name", name).
				Str("host", node.Host).
				Str("port", node.Port).
				Str("dbName", dbName).
				Msg("Connected to database")

			return sqlDB
		}

		log.Error().
			Err(err).
			Str("name", name).
			Str("host", node.Host).
			Str("dbName", dbName).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(cfg.DB.Postgres.RetryWaitTime) * time.Second)
	}

	return nil
}
