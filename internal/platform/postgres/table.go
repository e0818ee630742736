package postgres

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/phrazzld/folio-api/internal/domain"
	"github.com/phrazzld/folio-api/internal/platform/logger"
	"github.com/phrazzld/folio-api/internal/store"
)

// TableSpec names a remote table and how its failures are reported.
type TableSpec struct {
	// Name is the table name in the database.
	Name string
	// Entity is the singular noun used in errors and logs.
	Entity string
	// NotFound is returned by Get and Update when no row has the id.
	NotFound error
}

// Table implements store.Table for rows of type T. T must be a struct whose
// db tags name the selected columns.
type Table[T any] struct {
	db      DBTX
	spec    TableSpec
	columns []string
	timeout time.Duration
	logger  *slog.Logger
}

// NewTable creates a Table over db. Every call runs under timeout; zero means
// the caller's context alone bounds it. If logger is nil, a default logger
// will be used.
func NewTable[T any](db DBTX, spec TableSpec, timeout time.Duration, logger *slog.Logger) *Table[T] {
	if db == nil {
		panic("db cannot be nil")
	}
	if spec.NotFound == nil {
		spec.NotFound = store.ErrNotFound
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Table[T]{
		db:      db,
		spec:    spec,
		columns: columnsOf[T](),
		timeout: timeout,
		logger:  logger.With(slog.String("component", "table"), slog.String("table", spec.Name)),
	}
}

func (t *Table[T]) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if t.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, t.timeout)
}

// fail converts a pgx error into the store taxonomy and logs it.
func (t *Table[T]) fail(ctx context.Context, op string, err error) error {
	log := logger.FromContextOrDefault(ctx, t.logger)

	mapped := MapError(err)
	if errors.Is(mapped, store.ErrNotFound) {
		log.Debug("no row matched", slog.String("operation", op))
		return t.spec.NotFound
	}

	log.Error("table operation failed",
		slog.String("operation", op),
		slog.String("error", err.Error()))
	return store.NewStoreError(t.spec.Entity, op, "query failed", mapped)
}

// List implements store.Table.List.
func (t *Table[T]) List(ctx context.Context, q store.Query) ([]T, error) {
	ctx, cancel := t.withTimeout(ctx)
	defer cancel()

	query, args := buildSelect(t.spec.Name, t.columns, q)
	rows, err := t.db.Query(ctx, query, args...)
	if err != nil {
		return nil, t.fail(ctx, "list", err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, t.fail(ctx, "list", err)
	}
	return items, nil
}

// Get implements store.Table.Get.
func (t *Table[T]) Get(ctx context.Context, id int64) (T, error) {
	ctx, cancel := t.withTimeout(ctx)
	defer cancel()

	return t.one(ctx, "get", buildGet(t.spec.Name, t.columns), id)
}

// Insert implements store.Table.Insert.
func (t *Table[T]) Insert(ctx context.Context, values domain.Assignments) (T, error) {
	ctx, cancel := t.withTimeout(ctx)
	defer cancel()

	query, args := buildInsert(t.spec.Name, t.columns, values)
	item, err := t.one(ctx, "insert", query, args...)
	if err != nil {
		return item, err
	}

	logger.FromContextOrDefault(ctx, t.logger).Debug("row inserted")
	return item, nil
}

// Update implements store.Table.Update.
func (t *Table[T]) Update(ctx context.Context, id int64, values domain.Assignments) (T, error) {
	if len(values) == 0 {
		return t.Get(ctx, id)
	}

	ctx, cancel := t.withTimeout(ctx)
	defer cancel()

	query, args := buildUpdate(t.spec.Name, t.columns, id, values)
	return t.one(ctx, "update", query, args...)
}

// Delete implements store.Table.Delete. Deleting a missing row is not an error.
func (t *Table[T]) Delete(ctx context.Context, id int64) error {
	ctx, cancel := t.withTimeout(ctx)
	defer cancel()

	tag, err := t.db.Exec(ctx, buildDelete(t.spec.Name), id)
	if err != nil {
		return t.fail(ctx, "delete", err)
	}

	logger.FromContextOrDefault(ctx, t.logger).Debug("delete executed",
		slog.Int64("id", id),
		slog.Int64("rows_affected", tag.RowsAffected()))
	return nil
}

// Count implements store.Table.Count.
func (t *Table[T]) Count(ctx context.Context, filters ...store.Filter) (int64, error) {
	ctx, cancel := t.withTimeout(ctx)
	defer cancel()

	query, args := buildCount(t.spec.Name, filters)
	var n int64
	if err := t.db.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, t.fail(ctx, "count", err)
	}
	return n, nil
}

func (t *Table[T]) one(ctx context.Context, op, query string, args ...any) (T, error) {
	var zero T

	rows, err := t.db.Query(ctx, query, args...)
	if err != nil {
		return zero, t.fail(ctx, op, err)
	}

	item, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		return zero, t.fail(ctx, op, err)
	}
	return item, nil
}
