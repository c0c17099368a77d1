// Package property provides the property listing model, filtered search and
// data access.
package property

// Property is a rental listing. CostPerNight is in cents.
// AverageRating is only populated by Search and is nil when the property
// has no reviews.
type Property struct {
	ID                int64    `db:"id" json:"id"`
	OwnerID           int64    `db:"owner_id" json:"owner_id"`
	Title             string   `db:"title" json:"title"`
	Description       string   `db:"description" json:"description"`
	ThumbnailPhotoURL string   `db:"thumbnail_photo_url" json:"thumbnail_photo_url"`
	CoverPhotoURL     string   `db:"cover_photo_url" json:"cover_photo_url"`
	CostPerNight      int64    `db:"cost_per_night" json:"cost_per_night"`
	Street            string   `db:"street" json:"street"`
	City              string   `db:"city" json:"city"`
	Province          string   `db:"province" json:"province"`
	PostCode          string   `db:"post_code" json:"post_code"`
	Country           string   `db:"country" json:"country"`
	ParkingSpaces     int      `db:"parking_spaces" json:"parking_spaces"`
	NumberOfBathrooms int      `db:"number_of_bathrooms" json:"number_of_bathrooms"`
	NumberOfBedrooms  int      `db:"number_of_bedrooms" json:"number_of_bedrooms"`
	AverageRating     *float64 `db:"average_rating" json:"average_rating,omitempty"`
}

// NewProperty is the input for creating a listing. CostPerNight is in cents.
type NewProperty struct {
	OwnerID           int64  `json:"owner_id" validate:"required,gt=0"`
	Title             string `json:"title" validate:"required"`
	Description       string `json:"description"`
	ThumbnailPhotoURL string `json:"thumbnail_photo_url" validate:"omitempty,url"`
	CoverPhotoURL     string `json:"cover_photo_url" validate:"omitempty,url"`
	CostPerNight      int64  `json:"cost_per_night" validate:"gte=0"`
	Street            string `json:"street" validate:"required"`
	City              string `json:"city" validate:"required"`
	Province          string `json:"province"`
	PostCode          string `json:"post_code"`
	Country           string `json:"country" validate:"required"`
	ParkingSpaces     int    `json:"parking_spaces" validate:"gte=0"`
	NumberOfBathrooms int    `json:"number_of_bathrooms" validate:"gte=0"`
	NumberOfBedrooms  int    `json:"number_of_bedrooms" validate:"gte=0"`
}

// column pairs a table column with the value written to it.
type column struct {
	name  string
	value interface{}
}

// columns lists every inserted column next to the field that feeds it.
func (p NewProperty) columns() []column {
	return []column{
		{"owner_id", p.OwnerID},
		{"title", p.Title},
		{"description", p.Description},
		{"thumbnail_photo_url", p.ThumbnailPhotoURL},
		{"cover_photo_url", p.CoverPhotoURL},
		{"cost_per_night", p.CostPerNight},
		{"street", p.Street},
		{"city", p.City},
		{"province", p.Province},
		{"post_code", p.PostCode},
		{"country", p.Country},
		{"parking_spaces", p.ParkingSpaces},
		{"number_of_bathrooms", p.NumberOfBathrooms},
		{"number_of_bedrooms", p.NumberOfBedrooms},
	}
}
