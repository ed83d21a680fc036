package migrations_test

import (
	"context"
	"database/sql"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/devlink-app/devlink/internal/repository/sqlite/migrations"
	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func countEmbeddedMigrations(t *testing.T) int {
	t.Helper()
	entries, err := fs.ReadDir(migrations.FS, ".")
	if err != nil {
		t.Fatalf("read embedded FS: %v", err)
	}
	n := 0
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".sql") {
			n++
		}
	}
	return n
}

func TestRun_AppliesAndRecordsAllMigrations(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	if err := migrations.Run(ctx, db); err != nil {
		t.Fatalf("Run: %v", err)
	}

	var recorded int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM schema_migrations").Scan(&recorded); err != nil {
		t.Fatalf("count schema_migrations: %v", err)
	}
	if want := countEmbeddedMigrations(t); recorded != want {
		t.Fatalf("expected %d recorded migrations, got %d", want, recorded)
	}

	// The initial schema is in place.
	for _, table := range []string{"users", "profiles", "posts"} {
		var name string
		err := db.QueryRowContext(ctx,
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("expected table %s after migrations: %v", table, err)
		}
	}
}

func TestRun_SecondRunIsNoOp(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	if err := migrations.Run(ctx, db); err != nil {
		t.Fatalf("first Run: %v", err)
	}
	if err := migrations.Run(ctx, db); err != nil {
		t.Fatalf("second Run: %v", err)
	}

	var recorded int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM schema_migrations").Scan(&recorded); err != nil {
		t.Fatalf("count schema_migrations: %v", err)
	}
	if want := countEmbeddedMigrations(t); recorded != want {
		t.Fatalf("expected %d recorded migrations after rerun, got %d", want, recorded)
	}
}
