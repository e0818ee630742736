//go:build integration

package testdb

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/phrazzld/folio-api/internal/platform/postgres"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
)

// TestTimeout defines a default timeout for test database operations.
const TestTimeout = 5 * time.Second

var schemaOnce sync.Once
var schemaErr error

// GetTestDatabaseURL returns the database URL for tests.
func GetTestDatabaseURL() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	return os.Getenv("FOLIO_TEST_DB_URL")
}

// GetTestDBWithT returns a pool for the test database with the schema applied.
// It skips the test if no database URL is configured.
func GetTestDBWithT(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dbURL := GetTestDatabaseURL()
	if dbURL == "" {
		t.Skip("DATABASE_URL or FOLIO_TEST_DB_URL not set - skipping integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	pool, err := pgxpool.New(ctx, dbURL)
	require.NoError(t, err, "Failed to create connection pool")
	t.Cleanup(pool.Close)

	require.NoError(t, pool.Ping(ctx), "Database ping failed")

	schemaOnce.Do(func() { schemaErr = applySchema(pool) })
	require.NoError(t, schemaErr, "Failed to apply schema")

	return pool
}

func applySchema(pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer func() { _ = db.Close() }()

	goose.SetLogger(goose.NopLogger())
	goose.SetTableName("schema_migrations")
	goose.SetBaseFS(postgres.Schema)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// WithTx runs fn inside a transaction that is always rolled back afterwards.
func WithTx(t *testing.T, pool *pgxpool.Pool, fn func(t *testing.T, tx pgx.Tx)) {
	t.Helper()

	ctx := context.Background()
	tx, err := pool.Begin(ctx)
	require.NoError(t, err, "Failed to begin transaction")

	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			t.Logf("Warning: failed to rollback transaction: %v", err)
		}
	}()

	fn(t, tx)
}

// SeedSingletons inserts the site settings and about-me rows inside tx.
func SeedSingletons(t *testing.T, tx pgx.Tx) {
	t.Helper()

	statements := []string{
		`INSERT INTO site_settings (id, full_name, title, tagline, bio, phone, social_links,
			years_experience, projects_completed, lines_of_code, site_title)
		 VALUES (1, 'Jane Doe', 'Engineer', 'Builds things', 'Bio', '+1 555 0100',
			'[{"platform":"GitHub","url":"https://github.com/jane"}]', '5', '20', '100k', 'Jane')`,
		`INSERT INTO about_me (id, journey_title, journey_text, highlights)
		 VALUES (1, 'My journey', 'Started early', '[]')`,
	}
	for _, stmt := range statements {
		_, err := tx.Exec(context.Background(), strings.TrimSpace(stmt))
		require.NoError(t, err, "Failed to seed singleton")
	}
}
