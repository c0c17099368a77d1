// Package review provides the property review model and data access.
package review

// Review is a guest's rating of a property, with an optional message.
type Review struct {
	ID         int64  `db:"id" json:"id"`
	GuestID    int64  `db:"guest_id" json:"guest_id"`
	PropertyID int64  `db:"property_id" json:"property_id"`
	Rating     int    `db:"rating" json:"rating"`
	Message    string `db:"message" json:"message"`
}

// NewReview is the input for leaving a review.
type NewReview struct {
	GuestID    int64  `json:"guest_id" validate:"required,gt=0"`
	PropertyID int64  `json:"property_id" validate:"required,gt=0"`
	Rating     int    `json:"rating" validate:"min=1,max=5"`
	Message    string `json:"message"`
}
