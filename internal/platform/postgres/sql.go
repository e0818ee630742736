package postgres

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/phrazzld/folio-api/internal/domain"
	"github.com/phrazzld/folio-api/internal/store"
)

// columnsOf lists the db-tagged fields of T in declaration order.
func columnsOf[T any]() []string {
	typ := reflect.TypeFor[T]()
	cols := make([]string, 0, typ.NumField())
	for i := range typ.NumField() {
		tag := typ.Field(i).Tag.Get("db")
		if tag == "" || tag == "-" {
			continue
		}
		cols = append(cols, tag)
	}
	return cols
}

func ident(name string) string {
	return pgx.Identifier{name}.Sanitize()
}

func identList(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = ident(n)
	}
	return strings.Join(quoted, ", ")
}

// whereClause renders filters as "WHERE a = $n AND ..." numbering parameters
// from offset+1, and returns the matching args.
func whereClause(filters []store.Filter, offset int) (string, []any) {
	if len(filters) == 0 {
		return "", nil
	}
	parts := make([]string, len(filters))
	args := make([]any, len(filters))
	for i, f := range filters {
		parts[i] = fmt.Sprintf("%s = $%d", ident(f.Column), offset+i+1)
		args[i] = f.Value
	}
	return " WHERE " + strings.Join(parts, " AND "), args
}

func orderClause(order []store.Order) string {
	if len(order) == 0 {
		return ""
	}
	parts := make([]string, len(order))
	for i, o := range order {
		dir := "ASC"
		if o.Desc {
			dir = "DESC"
		}
		parts[i] = ident(o.Column) + " " + dir
	}
	return " ORDER BY " + strings.Join(parts, ", ")
}

func buildSelect(table string, cols []string, q store.Query) (string, []any) {
	where, args := whereClause(q.Filters, 0)
	return "SELECT " + identList(cols) + " FROM " + ident(table) + where + orderClause(q.Order), args
}

func buildGet(table string, cols []string) string {
	return "SELECT " + identList(cols) + " FROM " + ident(table) + " WHERE " + ident("id") + " = $1"
}

func buildInsert(table string, cols []string, values domain.Assignments) (string, []any) {
	placeholders := make([]string, len(values))
	for i := range values {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	query := "INSERT INTO " + ident(table) +
		" (" + identList(values.Columns()) + ") VALUES (" + strings.Join(placeholders, ", ") + ")" +
		" RETURNING " + identList(cols)
	return query, values.Args()
}

func buildUpdate(table string, cols []string, id int64, values domain.Assignments) (string, []any) {
	sets := make([]string, len(values))
	for i, v := range values {
		sets[i] = fmt.Sprintf("%s = $%d", ident(v.Column), i+1)
	}
	args := append(values.Args(), id)
	query := "UPDATE " + ident(table) + " SET " + strings.Join(sets, ", ") +
		fmt.Sprintf(" WHERE %s = $%d", ident("id"), len(args)) +
		" RETURNING " + identList(cols)
	return query, args
}

func buildDelete(table string) string {
	return "DELETE FROM " + ident(table) + " WHERE " + ident("id") + " = $1"
}

func buildCount(table string, filters []store.Filter) (string, []any) {
	where, args := whereClause(filters, 0)
	return "SELECT count(*) FROM " + ident(table) + where, args
}
