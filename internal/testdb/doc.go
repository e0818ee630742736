//go:build integration

// Package testdb provides utilities for database integration tests.
//
// Each test gets a pool connected to DATABASE_URL with the portfolio schema
// applied by goose, and runs its work inside a transaction that is rolled
// back when the test finishes:
//
//	func TestSomething(t *testing.T) {
//	    pool := testdb.GetTestDBWithT(t)
//	    testdb.WithTx(t, pool, func(t *testing.T, tx pgx.Tx) {
//	        tables := postgres.NewTables(tx, testdb.TestTimeout, nil)
//	        ...
//	    })
//	}
//
// Tests are skipped when DATABASE_URL (or FOLIO_TEST_DB_URL) is unset.
package testdb
