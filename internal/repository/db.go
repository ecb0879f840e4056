package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/ttbcheck/labelverify/gen/ent"
)

type Config struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// Open creates a pgx pool, wraps it for Ent, and returns both.
func Open(ctx context.Context, cfg Config, logger *slog.Logger) (*ent.Client, *pgxpool.Pool, error) {
	logger.Info("connecting to database", "dsn", cfg.DSN)
	pc, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		logger.Error("failed to parse database config", "error", err)
		return nil, nil, err
	}

	pc.MaxConns = cfg.MaxConns
	pc.MinConns = cfg.MinConns
	pc.MaxConnLifetime = cfg.MaxConnLifetime
	pc.MaxConnIdleTime = cfg.MaxConnIdleTime
	pc.ConnConfig.RuntimeParams["application_name"] = "labelverify"
	if cfg.StatementTimeout > 0 {
		pc.ConnConfig.RuntimeParams["statement_timeout"] = cfg.StatementTimeout.String()
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.DialTimeout)
	defer cancel()
	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		return nil, nil, err
	}

	// Wrap pool as *sql.DB for Ent
	db := stdlib.OpenDBFromPool(pool)
	drv := entsql.OpenDB(dialect.Postgres, db)
	client := ent.NewClient(ent.Driver(drv))

	logger.Info("successfully connected to database")
	return client, pool, nil
}

// OpenSQLiteInMemory opens an in-memory SQLite database and creates the
// schema. Used by the local batch CLI and development setups where no
// Postgres is available.
func OpenSQLiteInMemory(ctx context.Context, logger *slog.Logger) (*ent.Client, error) {
	db, err := sql.Open("sqlite", "file:labelverify?mode=memory&cache=shared&_pragma=foreign_keys(1)")
	if err != nil {
		logger.Error("failed to open in-memory sqlite", "error", err)
		return nil, err
	}
	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))

	if err := client.Schema.Create(ctx); err != nil {
		logger.Error("failed to create sqlite schema", "error", err)
		return nil, err
	}
	logger.Info("in-memory sqlite database ready")
	return client, nil
}

// Close closes the database connections gracefully
func Close(entc *ent.Client, pool *pgxpool.Pool, logger *slog.Logger) {
	logger.Info("closing database connections")
	if pool != nil {
		pool.Close()
	}
	if entc != nil {
		err := entc.Close()
		if err != nil {
			logger.Error("failed to close ent client", "error", err)
		}
	}
	logger.Info("database connections closed")
}

// HealthCheck pings the pool to catch DSN issues early.
func HealthCheck(ctx context.Context, pool *pgxpool.Pool, timeout time.Duration, logger *slog.Logger) error {
	logger.Debug("pinging database")
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return pool.Ping(ctx)
}

// Database bundles the opened client with its cleanup for CLI wiring.
type Database struct {
	Client  *ent.Client
	Pool    *pgxpool.Pool // nil in sqlite mode
	Cleanup func()
}

// InitDatabase opens either the configured Postgres database or an
// in-memory SQLite one.
func InitDatabase(ctx context.Context, cfg Config, inmem bool, logger *slog.Logger) (*Database, error) {
	if inmem {
		client, err := OpenSQLiteInMemory(ctx, logger)
		if err != nil {
			return nil, err
		}
		return &Database{
			Client: client,
			Cleanup: func() {
				if err := client.Close(); err != nil {
					logger.Error("failed to close ent client", "error", err)
				}
			},
		}, nil
	}

	client, pool, err := Open(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	if err := HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		Close(client, pool, logger)
		return nil, err
	}
	return &Database{
		Client:  client,
		Pool:    pool,
		Cleanup: func() { Close(client, pool, logger) },
	}, nil
}
