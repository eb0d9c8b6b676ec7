// Package pgtest starts a throwaway Postgres with the schema from migrations/
// applied, for repository integration tests.
package pgtest

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// DB is a migrated test database
type DB struct {
	Pool      *pgxpool.Pool
	Container testcontainers.Container
	ConnStr   string
}

// Start skips under -short, otherwise runs postgres:16-alpine, applies every
// migration and registers cleanup on t.
func Start(t *testing.T) *DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("lawfirm_test"),
		postgres.WithUsername("lawfirm"),
		postgres.WithPassword("secret"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	db := &DB{Container: container}
	t.Cleanup(func() { db.close(t) })

	db.ConnStr, err = container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	m, err := migrate.New("file://"+migrationsDir(), db.ConnStr)
	if err != nil {
		t.Fatalf("failed to create migrate instance: %v", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		t.Fatalf("failed to run migrations: %v", err)
	}
	m.Close()

	db.Pool, err = pgxpool.New(ctx, db.ConnStr)
	if err != nil {
		t.Fatalf("failed to create pool: %v", err)
	}
	if err := db.Pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}
	return db
}

// Truncate empties tables between subtests
func (db *DB) Truncate(t *testing.T, tables ...string) {
	t.Helper()
	for _, table := range tables {
		if _, err := db.Pool.Exec(context.Background(), fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)); err != nil {
			t.Fatalf("failed to truncate %s: %v", table, err)
		}
	}
}

func (db *DB) close(t *testing.T) {
	if db.Pool != nil {
		db.Pool.Close()
	}
	if err := db.Container.Terminate(context.Background()); err != nil {
		t.Logf("failed to terminate container: %v", err)
	}
}

// migrationsDir resolves <repo>/migrations from this file's location
func migrationsDir() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "..", "migrations")
}
