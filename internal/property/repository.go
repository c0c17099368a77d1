package property

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jmoiron/sqlx"

	"github.com/jeffoo713/lightBnB/internal/db"
	"github.com/jeffoo713/lightBnB/internal/dberr"
)

// Repository provides search and insertion for properties.
type Repository struct {
	db     *sqlx.DB
	flavor sqlbuilder.Flavor
}

// NewRepository creates a property repository using the handle's SQL flavor.
func NewRepository(d *sqlx.DB) *Repository {
	return &Repository{db: d, flavor: db.Flavor(d)}
}

// Search returns up to limit properties matching opts, cheapest first,
// each with its average review rating.
func (r *Repository) Search(ctx context.Context, opts SearchOptions, limit int) ([]*Property, error) {
	if err := dberr.Validate("searching properties", opts); err != nil {
		return nil, err
	}

	query, args := BuildSearchQuery(r.flavor, opts, limit)
	slog.DebugContext(ctx, "property search", "query", query, "args", args)

	properties := []*Property{}
	if err := r.db.SelectContext(ctx, &properties, query, args...); err != nil {
		return nil, dberr.Classify("searching properties", err)
	}

	return properties, nil
}

// GetByID returns a single property without its rating.
func (r *Repository) GetByID(ctx context.Context, id int64) (*Property, error) {
	sb := r.flavor.NewSelectBuilder()
	sb.Select(propertyColumns...)
	sb.From("properties p")
	sb.Where(sb.Equal("p.id", id))
	query, args := sb.Build()

	var p Property
	if err := r.db.GetContext(ctx, &p, query, args...); err != nil {
		return nil, dberr.Classify(fmt.Sprintf("getting property %d", id), err)
	}

	return &p, nil
}

// Add validates and inserts a property and returns the stored row.
func (r *Repository) Add(ctx context.Context, np NewProperty) (*Property, error) {
	if err := dberr.Validate("adding property", np); err != nil {
		return nil, err
	}

	cols := np.columns()
	names := make([]string, len(cols))
	values := make([]interface{}, len(cols))
	for i, c := range cols {
		names[i] = c.name
		values[i] = c.value
	}

	ib := r.flavor.NewInsertBuilder()
	ib.InsertInto("properties")
	ib.Cols(names...)
	ib.Values(values...)
	ib.SQL("RETURNING id, " + strings.Join(names, ", "))
	query, args := ib.Build()

	var p Property
	if err := r.db.GetContext(ctx, &p, query, args...); err != nil {
		return nil, dberr.Classify("adding property", err)
	}

	return &p, nil
}
