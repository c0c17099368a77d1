// Package dbtest provides a throwaway SQLite store with the LightBnB schema
// for use in tests.
package dbtest

import (
	"context"
	_ "embed"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"

	"github.com/jeffoo713/lightBnB/internal/config"
	"github.com/jeffoo713/lightBnB/internal/db"
)

//go:embed schema.sql
var schema string

// Config returns a SQLite config pointing at a fresh file under t.TempDir().
func Config(t *testing.T) config.DBConfig {
	t.Helper()
	return config.DBConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "lightbnb.db"),
	}
}

// Open returns a handle to a new store with the schema applied.
// The handle is closed when the test ends.
func Open(t *testing.T) *sqlx.DB {
	t.Helper()
	return open(t, Config(t))
}

// NewFile creates a store with the schema applied, closes it, and returns
// its config. Useful for code that opens the store itself.
func NewFile(t *testing.T) config.DBConfig {
	t.Helper()
	cfg := Config(t)
	d, err := db.Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if _, err := d.Exec(schema); err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	if err := d.Close(); err != nil {
		t.Fatalf("close db: %v", err)
	}
	return cfg
}

func open(t *testing.T, cfg config.DBConfig) *sqlx.DB {
	t.Helper()
	d, err := db.Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() {
		if cerr := d.Close(); cerr != nil {
			t.Errorf("close db: %v", cerr)
		}
	})

	if _, err := d.Exec(schema); err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	return d
}

// InsertUser adds a user row directly and returns its ID.
func InsertUser(t *testing.T, d *sqlx.DB, name, email string) int64 {
	t.Helper()
	var id int64
	err := d.QueryRowx(
		d.Rebind("INSERT INTO users (name, email, password) VALUES (?, ?, ?) RETURNING id"),
		name, email, "password",
	).Scan(&id)
	if err != nil {
		t.Fatalf("insert user %s: %v", email, err)
	}
	return id
}

// InsertProperty adds a minimal property row and returns its ID.
func InsertProperty(t *testing.T, d *sqlx.DB, ownerID int64, title, city string, costPerNight int64) int64 {
	t.Helper()
	var id int64
	err := d.QueryRowx(
		d.Rebind(`INSERT INTO properties (owner_id, title, cost_per_night, country, street, city)
			VALUES (?, ?, ?, ?, ?, ?) RETURNING id`),
		ownerID, title, costPerNight, "Canada", "1 Test St", city,
	).Scan(&id)
	if err != nil {
		t.Fatalf("insert property %s: %v", title, err)
	}
	return id
}

// InsertReview adds a review row.
func InsertReview(t *testing.T, d *sqlx.DB, guestID, propertyID int64, rating int) {
	t.Helper()
	_, err := d.Exec(
		d.Rebind("INSERT INTO property_reviews (guest_id, property_id, rating, message) VALUES (?, ?, ?, ?)"),
		guestID, propertyID, rating, "",
	)
	if err != nil {
		t.Fatalf("insert review: %v", err)
	}
}
