package property

import (
	"math"
	"strings"

	"github.com/huandu/go-sqlbuilder"
)

// DefaultLimit caps Search when no positive limit is given.
const DefaultLimit = 10

// MaxPricePerNight is the largest whole-unit price bound whose value in
// cents fits in an int64.
const MaxPricePerNight = math.MaxInt64 / 100

// likeEscaper escapes LIKE metacharacters for an ESCAPE '\' clause.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// SearchOptions are the optional filters for Search. Zero values and nil
// pointers leave a filter off.
type SearchOptions struct {
	// City matches case-insensitively anywhere in the city name.
	City string
	// OwnerID matches the listing owner exactly.
	OwnerID int64
	// Price bounds are whole currency units and only apply when both are set.
	MinimumPricePerNight *int64 `validate:"omitempty,gte=0,lte=92233720368547758"`
	MaximumPricePerNight *int64 `validate:"omitempty,gte=0,lte=92233720368547758"`
	// MinimumRating filters on the average review rating.
	MinimumRating *float64
}

// propertyColumns is the select list shared by Search and reads by ID.
// Nullable columns are coalesced so they scan into plain strings and ints.
var propertyColumns = []string{
	"p.id",
	"COALESCE(p.owner_id, 0) AS owner_id",
	"p.title",
	"COALESCE(p.description, '') AS description",
	"p.thumbnail_photo_url",
	"p.cover_photo_url",
	"p.cost_per_night",
	"p.street",
	"p.city",
	"p.province",
	"p.post_code",
	"p.country",
	"p.parking_spaces",
	"p.number_of_bathrooms",
	"p.number_of_bedrooms",
}

// BuildSearchQuery renders the search statement for flavor. Arguments are
// in the order their filters were appended: city, owner, price range,
// minimum rating, limit. Price bounds must already be within
// [0, MaxPricePerNight]; Search checks this.
func BuildSearchQuery(flavor sqlbuilder.Flavor, opts SearchOptions, limit int) (string, []interface{}) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	sb := flavor.NewSelectBuilder()
	sb.Select(append(propertyColumns, "AVG(pr.rating) AS average_rating")...)
	sb.From("properties p")
	sb.JoinWithOption(sqlbuilder.LeftJoin, "property_reviews pr", "pr.property_id = p.id")

	if opts.City != "" {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(opts.City)) + "%"
		sb.Where("LOWER(p.city) LIKE " + sb.Var(pattern) + ` ESCAPE '\'`)
	}

	if opts.OwnerID != 0 {
		sb.Where(sb.Equal("p.owner_id", opts.OwnerID))
	}

	if opts.MinimumPricePerNight != nil && opts.MaximumPricePerNight != nil {
		sb.Where(sb.Between("p.cost_per_night",
			toCents(*opts.MinimumPricePerNight),
			toCents(*opts.MaximumPricePerNight),
		))
	}

	sb.GroupBy("p.id")

	if opts.MinimumRating != nil {
		sb.Having(sb.GreaterEqualThan("AVG(pr.rating)", *opts.MinimumRating))
	}

	sb.OrderBy("p.cost_per_night").Asc()
	sb.SQL("LIMIT " + sb.Var(limit))

	return sb.BuildWithFlavor(flavor)
}

func toCents(units int64) int64 {
	return units * 100
}
