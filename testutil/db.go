// Package testutil holds the database fixtures shared by the spot map's
// integration tests: a pool or database/sql handle on TEST_DATABASE_URL, the
// locations schema applied through goose, and collision-free location names.
// Every helper that needs a database skips the test when TEST_DATABASE_URL is
// unset, so `go test ./...` runs without Postgres.
package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/leggiero/spotmap/migrations"
)

// DSNEnv names the environment variable integration tests read.
const DSNEnv = "TEST_DATABASE_URL"

// NewPool returns a pgx pool on the test database, the same kind of handle
// repo.NewLocationRepo takes in production. It is closed when the test ends.
func NewPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	pool, err := pgxpool.New(context.Background(), requireDSN(t))
	if err != nil {
		t.Fatalf("testutil.NewPool: open pool: %v", err)
	}
	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		t.Fatalf("testutil.NewPool: ping: %v", err)
	}

	t.Cleanup(pool.Close)
	return pool
}

// NewSQLDB returns a database/sql handle on the test database for code that
// drives goose directly, such as the migration round-trip test.
func NewSQLDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := openSQL(requireDSN(t))
	if err != nil {
		t.Fatalf("testutil.NewSQLDB: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// MigrateLocations brings the locations schema at dsn up to date. It is
// meant for TestMain, which has no *testing.T; the caller decides how to
// report the error.
func MigrateLocations(ctx context.Context, dsn string) (applied int, err error) {
	db, err := openSQL(dsn)
	if err != nil {
		return 0, err
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return 0, fmt.Errorf("testutil.MigrateLocations: create goose provider: %w", err)
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("testutil.MigrateLocations: up: %w", err)
	}
	return len(results), nil
}

// UniqueName returns prefix with a random suffix. Location names carry no
// unique constraint, but tests that look a row up by name must not see rows
// left by a concurrent run.
func UniqueName(t *testing.T, prefix string) string {
	t.Helper()
	return prefix + "-" + uuid.NewString()[:8]
}

func openSQL(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return db, nil
}

func requireDSN(t *testing.T) string {
	t.Helper()
	dsn := os.Getenv(DSNEnv)
	if dsn == "" {
		t.Skip(DSNEnv + " not set; skipping integration test")
	}
	return dsn
}
