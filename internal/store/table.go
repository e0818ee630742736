package store

import (
	"context"

	"github.com/phrazzld/folio-api/internal/domain"
)

// Table is the gateway to one remote table whose rows decode into T.
//
// Get and Update return an entity-specific ErrNotFound when no row has the
// id. Delete does not distinguish a missing row. Every other failure wraps
// ErrData.
type Table[T any] interface {
	List(ctx context.Context, q Query) ([]T, error)
	Get(ctx context.Context, id int64) (T, error)
	Insert(ctx context.Context, values domain.Assignments) (T, error)
	// Update writes values to the row and returns it. With no values the
	// current row is returned unchanged.
	Update(ctx context.Context, id int64, values domain.Assignments) (T, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context, filters ...Filter) (int64, error)
}

// Filter is an equality predicate on one column.
type Filter struct {
	Column string
	Value  any
}

// Eq returns a Filter matching rows where column = value.
func Eq(column string, value any) Filter {
	return Filter{Column: column, Value: value}
}

// Order sorts results by one column.
type Order struct {
	Column string
	Desc   bool
}

// Asc sorts by column ascending.
func Asc(column string) Order { return Order{Column: column} }

// Desc sorts by column descending.
func Desc(column string) Order { return Order{Column: column, Desc: true} }

// Query narrows and sorts a List call.
type Query struct {
	Filters []Filter
	Order   []Order
}

// Where returns a copy of q with an extra filter.
func (q Query) Where(column string, value any) Query {
	filters := make([]Filter, len(q.Filters), len(q.Filters)+1)
	copy(filters, q.Filters)
	q.Filters = append(filters, Eq(column, value))
	return q
}
