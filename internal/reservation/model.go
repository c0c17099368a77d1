// Package reservation provides the reservation domain model and data access.
package reservation

import "time"

// DateLayout is the wire format for reservation dates.
const DateLayout = "2006-01-02"

// Reservation is a guest's booking of a property.
type Reservation struct {
	ID         int64     `db:"id" json:"id"`
	GuestID    int64     `db:"guest_id" json:"guest_id"`
	PropertyID int64     `db:"property_id" json:"property_id"`
	StartDate  time.Time `db:"start_date" json:"start_date"`
	EndDate    time.Time `db:"end_date" json:"end_date"`
}

// NewReservation is the input for creating a reservation.
type NewReservation struct {
	GuestID    int64     `validate:"required,gt=0"`
	PropertyID int64     `validate:"required,gt=0"`
	StartDate  time.Time `validate:"required"`
	EndDate    time.Time `validate:"required,gtefield=StartDate"`
}
