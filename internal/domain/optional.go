package domain

import (
	"bytes"
	"encoding/json"
)

var jsonNull = []byte("null")

// Optional records whether a JSON field was present in a payload, and whether
// it was an explicit null. Absent, null and the zero value are three
// different things to a partial update:
//
//	{}                  -> Set=false            (leave the column alone)
//	{"phone": null}     -> Set=true, Null=true  (write NULL)
//	{"phone": ""}       -> Set=true, Value=""   (write the empty string)
type Optional[T any] struct {
	Value T
	Set   bool
	Null  bool
}

// Some returns a present, non-null Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

// Null returns a present Optional carrying an explicit null.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true, Null: true}
}

// UnmarshalJSON is only invoked when the key is present in the payload.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		o.Null = true
		var zero T
		o.Value = zero
		return nil
	}
	o.Null = false
	return json.Unmarshal(data, &o.Value)
}

// MarshalJSON encodes the value, or null when unset or null.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Null {
		return jsonNull, nil
	}
	return json.Marshal(o.Value)
}

// column returns the value to write for o: nil for an explicit null.
func (o Optional[T]) column() any {
	if o.Null {
		return nil
	}
	return o.Value
}

// Assignment is a single column write produced by a create or update shape.
type Assignment struct {
	Column string
	Value  any
}

// Assignments is an ordered list of column writes.
type Assignments []Assignment

// Columns returns the column names in order.
func (a Assignments) Columns() []string {
	cols := make([]string, len(a))
	for i, as := range a {
		cols[i] = as.Column
	}
	return cols
}

// Args returns the values in column order.
func (a Assignments) Args() []any {
	args := make([]any, len(a))
	for i, as := range a {
		args[i] = as.Value
	}
	return args
}

// setIfPresent appends column=o to a when o was present in the payload.
func setIfPresent[T any](a Assignments, column string, o Optional[T]) Assignments {
	if !o.Set {
		return a
	}
	return append(a, Assignment{Column: column, Value: o.column()})
}

// requireNonNull rejects an explicit null for a NOT NULL column.
func requireNonNull[T any](field string, o Optional[T]) error {
	if o.Set && o.Null {
		return NewValidationError(field, "cannot be null", nil)
	}
	return nil
}
