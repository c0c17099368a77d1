package user

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jeffoo713/lightBnB/internal/dberr"
)

// Repository provides data access for users.
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates a user repository.
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

const selectColumns = `id, name, email, password`

// GetByEmail returns the first user whose email matches exactly.
func (r *Repository) GetByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	query := r.db.Rebind("SELECT " + selectColumns + " FROM users WHERE email = ?")
	if err := r.db.GetContext(ctx, &u, query, email); err != nil {
		return nil, dberr.Classify(fmt.Sprintf("getting user by email %q", email), err)
	}
	return &u, nil
}

// GetByID returns the user with the given ID.
func (r *Repository) GetByID(ctx context.Context, id int64) (*User, error) {
	var u User
	query := r.db.Rebind("SELECT " + selectColumns + " FROM users WHERE id = ?")
	if err := r.db.GetContext(ctx, &u, query, id); err != nil {
		return nil, dberr.Classify(fmt.Sprintf("getting user %d", id), err)
	}
	return &u, nil
}

// Add inserts a user and returns the stored row. Duplicate emails are
// rejected by the store, not checked here.
func (r *Repository) Add(ctx context.Context, nu NewUser) (*User, error) {
	var u User
	query := r.db.Rebind(
		"INSERT INTO users (name, email, password) VALUES (?, ?, ?) RETURNING " + selectColumns,
	)
	if err := r.db.GetContext(ctx, &u, query, nu.Name, nu.Email, nu.Password); err != nil {
		return nil, dberr.Classify("adding user", err)
	}
	return &u, nil
}
