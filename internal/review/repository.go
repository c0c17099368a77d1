package review

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jeffoo713/lightBnB/internal/dberr"
)

// Repository provides data access for property reviews.
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates a review repository.
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

const selectColumns = `id, guest_id, property_id, rating, COALESCE(message, '') AS message`

// Add stores a review and returns it.
func (r *Repository) Add(ctx context.Context, nr NewReview) (*Review, error) {
	if err := dberr.Validate("adding review", nr); err != nil {
		return nil, err
	}

	query := r.db.Rebind(
		"INSERT INTO property_reviews (guest_id, property_id, rating, message) VALUES (?, ?, ?, ?) RETURNING " + selectColumns,
	)

	var rv Review
	if err := r.db.GetContext(ctx, &rv, query, nr.GuestID, nr.PropertyID, nr.Rating, nr.Message); err != nil {
		return nil, dberr.Classify("adding review", err)
	}

	return &rv, nil
}

// ListByProperty returns all reviews for a property, newest first.
func (r *Repository) ListByProperty(ctx context.Context, propertyID int64) ([]*Review, error) {
	query := r.db.Rebind(
		"SELECT " + selectColumns + " FROM property_reviews WHERE property_id = ? ORDER BY id DESC",
	)

	reviews := []*Review{}
	if err := r.db.SelectContext(ctx, &reviews, query, propertyID); err != nil {
		return nil, dberr.Classify(fmt.Sprintf("listing reviews for property %d", propertyID), err)
	}

	return reviews, nil
}
