package mocks

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"github.com/phrazzld/folio-api/internal/domain"
	"github.com/phrazzld/folio-api/internal/store"
)

// Ensure MockTable implements store.Table
var _ store.Table[domain.Skill] = (*MockTable[domain.Skill])(nil)

// TableCall records one invocation of a MockTable method.
type TableCall struct {
	Op      string
	ID      int64
	Values  domain.Assignments
	Query   store.Query
	Filters []store.Filter
}

// MockTable implements store.Table for testing.
//
// Without function overrides it behaves as a small in-memory table: rows are
// kept in insertion order, assignments are applied to fields by their db tag,
// and equality filters are honored. Order clauses are recorded but ignored.
type MockTable[T any] struct {
	ListFn   func(ctx context.Context, q store.Query) ([]T, error)
	GetFn    func(ctx context.Context, id int64) (T, error)
	InsertFn func(ctx context.Context, values domain.Assignments) (T, error)
	UpdateFn func(ctx context.Context, id int64, values domain.Assignments) (T, error)
	DeleteFn func(ctx context.Context, id int64) error
	CountFn  func(ctx context.Context, filters ...store.Filter) (int64, error)

	// Rows is the default data set.
	Rows []T
	// NotFound is returned for unknown ids. Defaults to store.ErrNotFound.
	NotFound error
	// Err, when set, is returned by every method without an override.
	Err error

	mu     sync.Mutex
	calls  []TableCall
	nextID int64
}

// NewMockTable creates an empty MockTable returning notFound for unknown ids.
func NewMockTable[T any](notFound error, rows ...T) *MockTable[T] {
	m := &MockTable[T]{NotFound: notFound}
	for _, r := range rows {
		m.Rows = append(m.Rows, r)
		if id := idOf(r); id > m.nextID {
			m.nextID = id
		}
	}
	return m
}

// Calls returns the recorded invocations in order.
func (m *MockTable[T]) Calls() []TableCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]TableCall, len(m.calls))
	copy(out, m.calls)
	return out
}

// CallsTo returns the recorded invocations of op.
func (m *MockTable[T]) CallsTo(op string) []TableCall {
	var out []TableCall
	for _, c := range m.Calls() {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

func (m *MockTable[T]) record(c TableCall) {
	m.mu.Lock()
	m.calls = append(m.calls, c)
	m.mu.Unlock()
}

func (m *MockTable[T]) notFound() error {
	if m.NotFound != nil {
		return m.NotFound
	}
	return store.ErrNotFound
}

// List implements store.Table.
func (m *MockTable[T]) List(ctx context.Context, q store.Query) ([]T, error) {
	m.record(TableCall{Op: "list", Query: q})
	if m.ListFn != nil {
		return m.ListFn(ctx, q)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	out := []T{}
	for _, r := range m.Rows {
		if matches(r, q.Filters) {
			out = append(out, r)
		}
	}
	return out, nil
}

// Get implements store.Table.
func (m *MockTable[T]) Get(ctx context.Context, id int64) (T, error) {
	m.record(TableCall{Op: "get", ID: id})
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	var zero T
	if m.Err != nil {
		return zero, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.Rows {
		if idOf(r) == id {
			return r, nil
		}
	}
	return zero, m.notFound()
}

// Insert implements store.Table.
func (m *MockTable[T]) Insert(ctx context.Context, values domain.Assignments) (T, error) {
	m.record(TableCall{Op: "insert", Values: values})
	if m.InsertFn != nil {
		return m.InsertFn(ctx, values)
	}
	var row T
	if m.Err != nil {
		return row, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	if err := assign(&row, domain.Assignments{{Column: "id", Value: m.nextID}}); err != nil {
		return row, err
	}
	if err := assign(&row, values); err != nil {
		return row, err
	}
	m.Rows = append(m.Rows, row)
	return row, nil
}

// Update implements store.Table.
func (m *MockTable[T]) Update(ctx context.Context, id int64, values domain.Assignments) (T, error) {
	m.record(TableCall{Op: "update", ID: id, Values: values})
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, values)
	}
	var zero T
	if m.Err != nil {
		return zero, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.Rows {
		if idOf(m.Rows[i]) == id {
			if err := assign(&m.Rows[i], values); err != nil {
				return zero, err
			}
			return m.Rows[i], nil
		}
	}
	return zero, m.notFound()
}

// Delete implements store.Table.
func (m *MockTable[T]) Delete(ctx context.Context, id int64) error {
	m.record(TableCall{Op: "delete", ID: id})
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	if m.Err != nil {
		return m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.Rows[:0]
	for _, r := range m.Rows {
		if idOf(r) != id {
			kept = append(kept, r)
		}
	}
	m.Rows = kept
	return nil
}

// Count implements store.Table.
func (m *MockTable[T]) Count(ctx context.Context, filters ...store.Filter) (int64, error) {
	m.record(TableCall{Op: "count", Filters: filters})
	if m.CountFn != nil {
		return m.CountFn(ctx, filters...)
	}
	if m.Err != nil {
		return 0, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, r := range m.Rows {
		if matches(r, filters) {
			n++
		}
	}
	return n, nil
}

// field returns the addressable field of v tagged db:column.
func field(v reflect.Value, column string) (reflect.Value, bool) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).Tag.Get("db") == column {
			return v.Field(i), true
		}
	}
	return reflect.Value{}, false
}

func idOf[T any](row T) int64 {
	f, ok := field(reflect.ValueOf(row), "id")
	if !ok || !f.CanInt() {
		return 0
	}
	return f.Int()
}

func matches[T any](row T, filters []store.Filter) bool {
	v := reflect.ValueOf(row)
	for _, flt := range filters {
		f, ok := field(v, flt.Column)
		if !ok {
			return false
		}
		got := f.Interface()
		if f.Kind() == reflect.Pointer {
			if f.IsNil() {
				return flt.Value == nil
			}
			got = f.Elem().Interface()
		}
		if !reflect.DeepEqual(got, flt.Value) {
			return false
		}
	}
	return true
}

// assign writes values into the fields of row by db tag. Nil clears a field;
// a value is stored behind a fresh pointer for pointer fields.
func assign[T any](row *T, values domain.Assignments) error {
	v := reflect.ValueOf(row).Elem()
	for _, a := range values {
		f, ok := field(v, a.Column)
		if !ok {
			return fmt.Errorf("%w: unknown column %q", store.ErrConstraint, a.Column)
		}
		if a.Value == nil {
			f.SetZero()
			continue
		}

		val := reflect.ValueOf(a.Value)
		target := f.Type()
		if target.Kind() == reflect.Pointer && val.Type() != target {
			target = target.Elem()
		}
		switch {
		case val.Type().AssignableTo(target):
		case val.Type().ConvertibleTo(target):
			val = val.Convert(target)
		default:
			return fmt.Errorf("%w: cannot store %T in %q", store.ErrConstraint, a.Value, a.Column)
		}

		if f.Kind() == reflect.Pointer && target != f.Type() {
			p := reflect.New(target)
			p.Elem().Set(val)
			val = p
		}
		f.Set(val)
	}
	return nil
}
