// Package postgres implements the store.Table gateway against the provider's
// PostgreSQL endpoint using pgx. A single generic Table serves every portfolio
// table; the named constructors in tables.go bind it to a table, its row type
// and its not-found error.
package postgres
