package reservation

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jeffoo713/lightBnB/internal/dberr"
)

// DefaultLimit caps ListByGuest when no positive limit is given.
const DefaultLimit = 10

// Repository provides data access for reservations.
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates a reservation repository.
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

const selectColumns = `id, guest_id, property_id, start_date, end_date`

// ListByGuest returns up to limit reservations for a guest, earliest first.
// The limit is bound as a query argument.
func (r *Repository) ListByGuest(ctx context.Context, guestID int64, limit int) ([]*Reservation, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	query := r.db.Rebind(
		"SELECT " + selectColumns + " FROM reservations WHERE guest_id = ? ORDER BY start_date, id LIMIT ?",
	)

	reservations := []*Reservation{}
	if err := r.db.SelectContext(ctx, &reservations, query, guestID, limit); err != nil {
		return nil, dberr.Classify(fmt.Sprintf("listing reservations for guest %d", guestID), err)
	}

	return reservations, nil
}

// Add records a reservation. The end date must not precede the start date.
func (r *Repository) Add(ctx context.Context, nr NewReservation) (*Reservation, error) {
	if err := dberr.Validate("adding reservation", nr); err != nil {
		return nil, err
	}

	insert := r.db.Rebind(
		"INSERT INTO reservations (guest_id, property_id, start_date, end_date) VALUES (?, ?, ?, ?) RETURNING id",
	)

	var id int64
	err := r.db.QueryRowxContext(ctx, insert,
		nr.GuestID, nr.PropertyID,
		nr.StartDate.Format(DateLayout), nr.EndDate.Format(DateLayout),
	).Scan(&id)
	if err != nil {
		return nil, dberr.Classify("adding reservation", err)
	}

	// Read back through a plain SELECT so the driver sees the DATE columns.
	var res Reservation
	query := r.db.Rebind("SELECT " + selectColumns + " FROM reservations WHERE id = ?")
	if err := r.db.GetContext(ctx, &res, query, id); err != nil {
		return nil, dberr.Classify("reading back reservation", err)
	}

	return &res, nil
}
