// Package db opens the shared store handle used by every repository.
package db

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/huandu/go-sqlbuilder"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/jeffoo713/lightBnB/internal/config"
	"github.com/jeffoo713/lightBnB/internal/dberr"
)

// database/sql driver names registered by the imports above.
const (
	pgxDriver    = "pgx"
	sqliteDriver = "sqlite3"
)

// Open connects to the configured store and verifies the connection.
// The schema is expected to exist already.
func Open(ctx context.Context, cfg config.DBConfig) (*sqlx.DB, error) {
	name, err := driverName(cfg.Driver)
	if err != nil {
		return nil, err
	}

	if cfg.Driver == config.DriverSQLite {
		dir := filepath.Dir(cfg.Path)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory %s: %w", dir, err)
		}
	}

	db, err := sqlx.Open(name, cfg.DSN())
	if err != nil {
		return nil, dberr.Classify("opening database", err)
	}

	if err := db.PingContext(ctx); err != nil {
		closeErr := db.Close()
		if closeErr != nil {
			return nil, fmt.Errorf("%w (also failed to close: %v)", dberr.Classify("connecting to database", err), closeErr)
		}
		return nil, dberr.Classify("connecting to database", err)
	}

	return db, nil
}

// Flavor returns the SQL dialect matching the handle's driver.
func Flavor(db *sqlx.DB) sqlbuilder.Flavor {
	if db.DriverName() == sqliteDriver {
		return sqlbuilder.SQLite
	}
	return sqlbuilder.PostgreSQL
}

func driverName(driver string) (string, error) {
	switch driver {
	case config.DriverPostgres:
		return pgxDriver, nil
	case config.DriverSQLite:
		return sqliteDriver, nil
	}
	return "", fmt.Errorf("unsupported driver %q", driver)
}
